package summarizer

import (
	"context"

	"github.com/nguyentantai21042004/slidecast/internal/analyzer"
)

// SlideContent is the summarized form of one section: what ends up on
// the slide and what the narrator says.
type SlideContent struct {
	Title       string
	Bullets     []string
	SpeakerNote string
}

// Summarizer reduces ranked sections to slide content. Sections whose
// bullets all fail the quality filter are dropped with a warning rather
// than aborting the run.
type Summarizer interface {
	Summarize(ctx context.Context, sections []analyzer.RankedSection) ([]SlideContent, error)
}
