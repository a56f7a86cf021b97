package analyzer

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/nguyentantai21042004/slidecast/internal/config"
	"github.com/nguyentantai21042004/slidecast/internal/extractor"
	"github.com/nguyentantai21042004/slidecast/internal/logger"
)

func testAnalyzer(t *testing.T, maxSlides, minSlides int) Analyzer {
	t.Helper()
	cfg, err := config.Load("")
	if err != nil {
		t.Fatal(err)
	}
	cfg.Analysis.MaxSlides = maxSlides
	cfg.Analysis.MinSlides = minSlides
	return New(cfg, logger.New("error"))
}

// sectionWithWords builds a section whose body has roughly n words.
func sectionWithWords(order, n int) extractor.Section {
	words := make([]string, n)
	for i := range words {
		words[i] = fmt.Sprintf("topic%d", i%7)
	}
	return extractor.Section{
		Heading:    fmt.Sprintf("Section %d", order),
		Paragraphs: []string{strings.Join(words, " ")},
		OrderIndex: order,
	}
}

func TestRankSelectsTopAndPreservesOrder(t *testing.T) {
	a := testAnalyzer(t, 3, 1)
	ctx := context.Background()

	// Five sections: 0 and 2 are tiny, 1, 3 and 4 are substantial.
	doc := &extractor.Document{Sections: []extractor.Section{
		sectionWithWords(0, 5),
		sectionWithWords(1, 120),
		sectionWithWords(2, 4),
		sectionWithWords(3, 110),
		sectionWithWords(4, 100),
	}}

	ranked, err := a.Rank(ctx, doc)
	if err != nil {
		t.Fatalf("Rank() error = %v", err)
	}
	if len(ranked) != 3 {
		t.Fatalf("got %d sections, want 3", len(ranked))
	}

	// Order indices must be strictly increasing after selection.
	for i := 1; i < len(ranked); i++ {
		if ranked[i].OrderIndex <= ranked[i-1].OrderIndex {
			t.Errorf("order not preserved: %d after %d",
				ranked[i].OrderIndex, ranked[i-1].OrderIndex)
		}
	}

	want := []int{1, 3, 4}
	for i, r := range ranked {
		if r.OrderIndex != want[i] {
			t.Errorf("selected[%d].OrderIndex = %d, want %d", i, r.OrderIndex, want[i])
		}
	}
}

func TestRankOutputIsSubsequence(t *testing.T) {
	a := testAnalyzer(t, 4, 1)
	ctx := context.Background()

	var sections []extractor.Section
	for i := 0; i < 10; i++ {
		sections = append(sections, sectionWithWords(i, 20+i*13))
	}

	ranked, err := a.Rank(ctx, &extractor.Document{Sections: sections})
	if err != nil {
		t.Fatal(err)
	}
	if len(ranked) != 4 {
		t.Fatalf("got %d, want 4", len(ranked))
	}
	prev := -1
	for _, r := range ranked {
		if r.OrderIndex <= prev {
			t.Fatalf("not a subsequence: %d after %d", r.OrderIndex, prev)
		}
		prev = r.OrderIndex
	}
}

func TestRankFewerThanMinKeepsAll(t *testing.T) {
	a := testAnalyzer(t, 10, 3)
	ctx := context.Background()

	doc := &extractor.Document{Sections: []extractor.Section{
		sectionWithWords(0, 50),
		sectionWithWords(1, 50),
	}}

	ranked, err := a.Rank(ctx, doc)
	if err != nil {
		t.Fatal(err)
	}
	if len(ranked) != 2 {
		t.Errorf("got %d sections, want all 2", len(ranked))
	}
}

func TestRankEmptyDocument(t *testing.T) {
	a := testAnalyzer(t, 10, 3)
	_, err := a.Rank(context.Background(), &extractor.Document{})
	if !errors.Is(err, ErrNoSections) {
		t.Errorf("error = %v, want ErrNoSections", err)
	}
}

func TestRankHeadinglessSectionsScoreByPosition(t *testing.T) {
	a := testAnalyzer(t, 2, 1)
	ctx := context.Background()

	// Identical bodies, no headings: position alone must decide, and
	// earlier sections must win.
	body := strings.Repeat("identical content words ", 20)
	doc := &extractor.Document{Sections: []extractor.Section{
		{Paragraphs: []string{body}, OrderIndex: 0},
		{Paragraphs: []string{body}, OrderIndex: 1},
		{Paragraphs: []string{body}, OrderIndex: 2},
	}}

	ranked, err := a.Rank(ctx, doc)
	if err != nil {
		t.Fatal(err)
	}
	if len(ranked) != 2 {
		t.Fatalf("got %d, want 2", len(ranked))
	}
	if ranked[0].OrderIndex != 0 || ranked[1].OrderIndex != 1 {
		t.Errorf("position scoring picked %d,%d; want 0,1",
			ranked[0].OrderIndex, ranked[1].OrderIndex)
	}
}

func TestScoresMonotonicInLength(t *testing.T) {
	a := testAnalyzer(t, 10, 1).(*implAnalyzer)

	sections := []extractor.Section{
		sectionWithWords(0, 10),
		sectionWithWords(1, 90),
	}
	scored := a.score(sections)

	// Section 1 is longer; despite the worse position its length and
	// keyword scores should dominate a 10-word stub.
	if scored[1].ImportanceScore <= scored[0].ImportanceScore {
		t.Errorf("long section scored %.3f, short %.3f",
			scored[1].ImportanceScore, scored[0].ImportanceScore)
	}
}
