package assembler

import (
	"context"

	"github.com/nguyentantai21042004/slidecast/internal/summarizer"
)

// EnrichedSlide is slide content plus its optional visual. An empty
// VisualPath means the slide is text only.
type EnrichedSlide struct {
	summarizer.SlideContent
	VisualPath string
}

// Assembler renders enriched slides into a presentation file. The file
// is the durable handoff to video generation, which re-parses it rather
// than reusing in-memory state.
type Assembler interface {
	Assemble(ctx context.Context, slides []EnrichedSlide, outputPath string) error
}
