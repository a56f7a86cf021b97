package analyzer

import (
	"context"
	"errors"

	"github.com/nguyentantai21042004/slidecast/internal/extractor"
)

// ErrNoSections is returned when a document yields nothing to rank.
var ErrNoSections = errors.New("no sections survived ranking")

// RankedSection is a section plus its importance score. Ranking never
// reorders sections: output order follows the original OrderIndex.
type RankedSection struct {
	extractor.Section
	ImportanceScore float64
}

// Analyzer scores sections by importance and selects the top ones while
// preserving document order.
type Analyzer interface {
	Rank(ctx context.Context, doc *extractor.Document) ([]RankedSection, error)
}
