package videogen

import (
	"context"
	"errors"
	"fmt"
	"strconv"
)

// errTTSDisabled is returned when the provider is "none"; callers fall
// back to silent caption frames.
var errTTSDisabled = errors.New("tts disabled")

// synthesize renders text to a WAV file using the configured TTS
// provider.
func (g *implVideoGenerator) synthesize(ctx context.Context, text, wavPath string) error {
	name, args, err := ttsCommand(g.cfg.Video.TTSProvider, g.cfg.Video.TTSRate, text, wavPath)
	if err != nil {
		return err
	}
	if _, err := g.executor.Execute(ctx, name, args...); err != nil {
		return fmt.Errorf("%s synthesis: %w", name, err)
	}
	return nil
}

// ttsCommand maps a provider to its command line. espeak-ng and say
// honor the words-per-minute rate; flite has no equivalent flag.
func ttsCommand(provider string, rate int, text, wavPath string) (string, []string, error) {
	switch provider {
	case "espeak-ng":
		return "espeak-ng", []string{"-s", strconv.Itoa(rate), "-w", wavPath, text}, nil
	case "say":
		return "say", []string{"-r", strconv.Itoa(rate), "-o", wavPath, "--data-format=LEI16@22050", text}, nil
	case "flite":
		return "flite", []string{"-t", text, "-o", wavPath}, nil
	case "none":
		return "", nil, errTTSDisabled
	default:
		return "", nil, fmt.Errorf("unknown tts provider %q", provider)
	}
}

// writeSilence generates a silent mono WAV of the given duration, used
// to keep the audio track aligned when a slide has no narration.
func (g *implVideoGenerator) writeSilence(ctx context.Context, seconds float64, wavPath string) error {
	_, err := g.executor.Execute(ctx, "ffmpeg",
		"-y",
		"-f", "lavfi",
		"-i", "anullsrc=r=22050:cl=mono",
		"-t", formatSeconds(seconds),
		"-acodec", "pcm_s16le",
		wavPath,
	)
	if err != nil {
		return fmt.Errorf("generate silence: %w", err)
	}
	return nil
}

func formatSeconds(seconds float64) string {
	return strconv.FormatFloat(seconds, 'f', 3, 64)
}
