package visualizer

import (
	"context"
	"strings"

	"github.com/nguyentantai21042004/slidecast/internal/summarizer"
	"github.com/nguyentantai21042004/slidecast/internal/textutil"
)

// slideKeywordCount is how many concepts a visual illustrates.
const slideKeywordCount = 3

// Generate dispatches to the configured strategy. Slides without enough
// keyword material get no visual.
func (v *implVisualizer) Generate(ctx context.Context, slide summarizer.SlideContent, index int, outDir string) (string, error) {
	keywords := slideKeywords(slide)
	if len(keywords) == 0 {
		v.logger.Debug(ctx, "Slide %d: no keywords, skipping visual", index)
		return "", nil
	}

	switch v.cfg.Visuals.Strategy {
	case "diagram":
		return v.renderDiagram(ctx, slide, keywords, index, outDir)
	case "icons":
		return v.renderIcons(ctx, keywords, index, outDir)
	default: // none
		return "", nil
	}
}

// slideKeywords pulls the top concepts from the title and bullets.
func slideKeywords(slide summarizer.SlideContent) []string {
	var parts []string
	parts = append(parts, slide.Title)
	parts = append(parts, slide.Bullets...)
	return textutil.Keywords(strings.Join(parts, " "), slideKeywordCount)
}
