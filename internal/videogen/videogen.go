package videogen

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/nguyentantai21042004/slidecast/pkg/pptx"
)

// Generate renders the narrated video for the deck at pptxPath. Each
// slide becomes one encoded segment; segments are concatenated and, for
// GIF output, converted with audio dropped.
func (g *implVideoGenerator) Generate(ctx context.Context, pptxPath, outputPath, workDir string) error {
	deck, err := pptx.Open(pptxPath)
	if err != nil {
		return fmt.Errorf("read presentation: %w", err)
	}
	g.logger.Info(ctx, "Generating %s video from %d slides",
		g.cfg.Video.OutputFormat, len(deck.Slides))

	withAudio := g.cfg.Video.OutputFormat == "mp4"

	var segments []string
	var totalSeconds float64
	for i, slide := range deck.Slides {
		seg, duration, err := g.renderSlideSegment(ctx, slide, i+1, workDir, withAudio)
		if err != nil {
			return err
		}
		segments = append(segments, seg)
		totalSeconds += duration
	}

	if g.cfg.Video.OutputFormat == "gif" {
		combined := filepath.Join(workDir, "combined.mp4")
		if err := g.concatSegments(ctx, workDir, segments, combined); err != nil {
			return err
		}
		if err := g.toGIF(ctx, combined, outputPath); err != nil {
			return err
		}
	} else {
		if err := g.concatSegments(ctx, workDir, segments, outputPath); err != nil {
			return err
		}
	}

	g.logger.Info(ctx, "Video written to %s (%.1fs)", outputPath, totalSeconds)
	return nil
}

// renderSlideSegment narrates one slide and encodes its segment. TTS
// failure degrades the slide to a silent caption frame rather than
// aborting the run.
func (g *implVideoGenerator) renderSlideSegment(ctx context.Context, slide pptx.SlideText, n int, workDir string, withAudio bool) (string, float64, error) {
	audioPath := filepath.Join(workDir, fmt.Sprintf("audio_%02d.wav", n))

	audioSeconds, caption := g.narrate(ctx, slide, n, audioPath)
	duration := g.frameDuration(audioSeconds)

	// Slides without real narration get silence covering the whole
	// frame duration so the concatenated audio track stays aligned.
	if withAudio && audioSeconds == 0 {
		if err := g.writeSilence(ctx, duration, audioPath); err != nil {
			return "", 0, err
		}
	}

	framePath := filepath.Join(workDir, fmt.Sprintf("frame_%02d.png", n))
	if err := g.renderFrame(slide, caption, framePath); err != nil {
		return "", 0, fmt.Errorf("slide %d: %w", n, err)
	}

	segPath := filepath.Join(workDir, fmt.Sprintf("segment_%02d.mp4", n))
	if err := g.encodeSegment(ctx, framePath, audioPath, duration, segPath, withAudio); err != nil {
		return "", 0, err
	}

	g.logger.Debug(ctx, "Slide %d: %.1fs audio, %.1fs on screen", n, audioSeconds, duration)
	return segPath, duration, nil
}

// narrate synthesizes the slide's speaker note and measures the result.
// It returns 0 seconds when the slide ends up silent, and reports
// whether the frame needs the caption strip.
func (g *implVideoGenerator) narrate(ctx context.Context, slide pptx.SlideText, n int, audioPath string) (float64, bool) {
	if slide.Notes == "" {
		g.logger.Debug(ctx, "Slide %d: no speaker note, staying silent", n)
		return 0, false
	}

	err := g.synthesize(ctx, slide.Notes, audioPath)
	if errors.Is(err, errTTSDisabled) {
		return 0, false
	}
	if err != nil {
		g.logger.Warn(ctx, "Slide %d: narration failed, using caption frame: %v", n, err)
		return 0, true
	}

	seconds, err := g.audioDuration(ctx, audioPath)
	if err != nil {
		g.logger.Warn(ctx, "Slide %d: cannot measure narration, using caption frame: %v", n, err)
		return 0, true
	}
	return seconds, false
}
