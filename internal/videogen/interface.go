package videogen

import (
	"context"
	"errors"
)

// ErrMux marks a failed mux of frames and audio into the output
// container. Partial segment files are left in the work directory for
// inspection.
var ErrMux = errors.New("video muxing failed")

// VideoGenerator renders a narrated video from a presentation file. It
// re-parses the file rather than reusing in-memory slide state, so it
// can also run against a pre-existing deck.
type VideoGenerator interface {
	// Generate reads the deck at pptxPath, synthesizes narration from
	// the speaker notes, and writes the video to outputPath. workDir
	// holds per-slide audio, frames and segments.
	Generate(ctx context.Context, pptxPath, outputPath, workDir string) error
}
