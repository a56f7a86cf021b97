package visualizer

import (
	"context"

	"github.com/nguyentantai21042004/slidecast/internal/summarizer"
)

// Visualizer produces an optional image for a slide. An empty path means
// no visual was generated for the slide; the deck remains valid either
// way.
type Visualizer interface {
	// Generate writes an image for the slide into outDir and returns
	// its path. It returns ("", nil) when the strategy produces nothing
	// for this slide.
	Generate(ctx context.Context, slide summarizer.SlideContent, index int, outDir string) (string, error)
}
