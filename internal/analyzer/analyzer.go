package analyzer

import (
	"context"
	"sort"

	"github.com/nguyentantai21042004/slidecast/internal/extractor"
	"github.com/nguyentantai21042004/slidecast/internal/textutil"
)

const (
	// Scores saturate at these reference points so one very long
	// section cannot drown out everything else.
	lengthSaturationWords = 100
	keywordSaturation     = 10
)

// Rank scores every section and selects the top max_slides, returned in
// original document order.
func (a *implAnalyzer) Rank(ctx context.Context, doc *extractor.Document) ([]RankedSection, error) {
	a.logger.Info(ctx, "Analyzing document structure...")

	if len(doc.Sections) == 0 {
		return nil, ErrNoSections
	}

	scored := a.score(doc.Sections)

	// Fewer sections than the floor: keep everything.
	if len(scored) <= a.cfg.Analysis.MinSlides {
		a.logger.Info(ctx, "Only %d sections, keeping all", len(scored))
		return scored, nil
	}

	selected := selectTop(scored, a.cfg.Analysis.MaxSlides)
	a.logger.Info(ctx, "Selected %d of %d sections for slides", len(selected), len(scored))

	return selected, nil
}

// score computes the weighted importance of each section: length,
// keyword richness, and document position.
func (a *implAnalyzer) score(sections []extractor.Section) []RankedSection {
	cfg := a.cfg.Analysis
	total := len(sections)

	ranked := make([]RankedSection, 0, total)
	for _, section := range sections {
		text := section.Text()

		lengthScore := capAt1(float64(textutil.WordCount(text)) / lengthSaturationWords)
		keywordScore := capAt1(float64(len(textutil.Keywords(text, keywordSaturation))) / keywordSaturation)
		positionScore := 1.0 - float64(section.OrderIndex)/float64(total)

		ranked = append(ranked, RankedSection{
			Section: section,
			ImportanceScore: cfg.LengthWeight*lengthScore +
				cfg.KeywordWeight*keywordScore +
				cfg.PositionWeight*positionScore,
		})
	}
	return ranked
}

// selectTop picks the maxSlides highest-scoring sections, then restores
// document order. Equal scores favour the earlier section.
func selectTop(scored []RankedSection, maxSlides int) []RankedSection {
	byScore := make([]RankedSection, len(scored))
	copy(byScore, scored)
	sort.SliceStable(byScore, func(i, j int) bool {
		if byScore[i].ImportanceScore != byScore[j].ImportanceScore {
			return byScore[i].ImportanceScore > byScore[j].ImportanceScore
		}
		return byScore[i].OrderIndex < byScore[j].OrderIndex
	})

	if len(byScore) > maxSlides {
		byScore = byScore[:maxSlides]
	}

	sort.Slice(byScore, func(i, j int) bool {
		return byScore[i].OrderIndex < byScore[j].OrderIndex
	})
	return byScore
}

func capAt1(f float64) float64 {
	if f > 1 {
		return 1
	}
	return f
}
