package videogen

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// encodeSegment renders one slide into a standalone MP4 segment: the
// static frame looped for the slide duration, with the slide's audio
// when the output format carries sound. -t bounds both streams, which
// is what enforces the trim policy.
func (g *implVideoGenerator) encodeSegment(ctx context.Context, framePath, audioPath string, duration float64, segPath string, withAudio bool) error {
	args := []string{
		"-y",
		"-loop", "1",
		"-framerate", strconv.Itoa(g.cfg.Video.FPS),
		"-i", framePath,
	}
	if withAudio {
		args = append(args, "-i", audioPath)
	}
	args = append(args,
		"-t", formatSeconds(duration),
		"-vf", fmt.Sprintf("scale=%d:%d", g.cfg.Video.Resolution.Width, g.cfg.Video.Resolution.Height),
		"-c:v", "libx264",
		"-pix_fmt", "yuv420p",
		"-r", strconv.Itoa(g.cfg.Video.FPS),
	)
	if withAudio {
		args = append(args, "-c:a", "aac", "-ar", "22050", "-ac", "1")
	} else {
		args = append(args, "-an")
	}
	args = append(args, segPath)

	if _, err := g.executor.Execute(ctx, "ffmpeg", args...); err != nil {
		return fmt.Errorf("%w: encode segment %s: %v", ErrMux, filepath.Base(segPath), err)
	}
	return nil
}

// concatSegments joins the per-slide segments without re-encoding. The
// list file uses names relative to workDir, so ffmpeg runs there; the
// output path must therefore be made absolute, or the child process
// would resolve it inside workDir.
func (g *implVideoGenerator) concatSegments(ctx context.Context, workDir string, segments []string, outputPath string) error {
	var list strings.Builder
	for _, seg := range segments {
		fmt.Fprintf(&list, "file '%s'\n", filepath.Base(seg))
	}
	listPath := filepath.Join(workDir, "concat.txt")
	if err := os.WriteFile(listPath, []byte(list.String()), 0644); err != nil {
		return fmt.Errorf("write concat list: %w", err)
	}

	absOut, err := filepath.Abs(outputPath)
	if err != nil {
		return fmt.Errorf("resolve output path %s: %w", outputPath, err)
	}

	_, err = g.executor.ExecuteInDir(ctx, workDir, "ffmpeg",
		"-y",
		"-f", "concat",
		"-safe", "0",
		"-i", "concat.txt",
		"-c", "copy",
		absOut,
	)
	if err != nil {
		return fmt.Errorf("%w: concat: %v", ErrMux, err)
	}
	return nil
}

// toGIF converts the assembled video to an animated GIF using a
// two-pass palette for acceptable colors. GIF output has no audio.
func (g *implVideoGenerator) toGIF(ctx context.Context, videoPath, gifPath string) error {
	filter := fmt.Sprintf(
		"fps=%d,scale=%d:-1:flags=lanczos,split[s0][s1];[s0]palettegen[p];[s1][p]paletteuse",
		g.cfg.Video.FPS, g.cfg.Video.Resolution.Width)

	_, err := g.executor.Execute(ctx, "ffmpeg",
		"-y",
		"-i", videoPath,
		"-vf", filter,
		gifPath,
	)
	if err != nil {
		return fmt.Errorf("%w: gif conversion: %v", ErrMux, err)
	}
	return nil
}
