package extractor

import (
	"strings"
	"testing"

	"github.com/nguyentantai21042004/slidecast/internal/config"
	"github.com/nguyentantai21042004/slidecast/internal/logger"
)

func testExtractor(t *testing.T) *implExtractor {
	t.Helper()
	cfg, err := config.Load("")
	if err != nil {
		t.Fatal(err)
	}
	return New(cfg, logger.New("error")).(*implExtractor)
}

// mkLine builds a single-run line for tests.
func mkLine(text string, size float64, font string, page int, y float64) textLine {
	return textLine{
		runs: []textRun{{text: text, font: font, size: size}},
		page: page,
		y:    y,
	}
}

func TestAnalyzeFonts(t *testing.T) {
	lines := []textLine{
		mkLine("Heading", 18, "Helvetica-Bold", 1, 700),
		mkLine("body text line one which is much longer than the heading", 11, "Helvetica", 1, 680),
		mkLine("body text line two also quite long compared to headings", 11, "Helvetica", 1, 660),
		mkLine("body text line three keeps the mode firmly at eleven", 11, "Helvetica", 2, 700),
	}

	stats := analyzeFonts(lines, 5, 1.2)

	if stats.mode != 11 {
		t.Errorf("mode = %v, want 11", stats.mode)
	}
	if got, want := stats.threshold, 11*1.2; got != want {
		t.Errorf("threshold = %v, want %v", got, want)
	}
	if stats.max != 18 {
		t.Errorf("max = %v, want 18", stats.max)
	}
}

func TestAnalyzeFontsNoSizes(t *testing.T) {
	lines := []textLine{mkLine("text without font info", 0, "", 1, 700)}
	stats := analyzeFonts(lines, 5, 1.2)
	if stats.mode != fallbackBodySize {
		t.Errorf("mode = %v, want fallback %v", stats.mode, fallbackBodySize)
	}
}

func TestIsHeadingLine(t *testing.T) {
	stats := fontStats{mode: 11, threshold: 13.2}

	tests := []struct {
		name string
		line textLine
		want bool
	}{
		{"large font", mkLine("Introduction", 18, "Helvetica", 1, 700), true},
		{"bold font at body size", mkLine("Methods", 11, "Arial-BoldMT", 1, 700), true},
		{"plain body text", mkLine("This is a normal paragraph sentence, with punctuation in it.", 11, "Helvetica", 1, 700), false},
		{"too short", mkLine("ab", 18, "Helvetica", 1, 700), false},
		{"no font info all caps", mkLine("RESULTS AND DISCUSSION", 0, "", 1, 700), true},
		{"no font info long sentence", mkLine("This sentence has no font info, runs long, and contains commas inside.", 0, "", 1, 700), false},
		{"bold but very long", mkLine(strings.Repeat("word ", 40), 11, "Times-Bold", 1, 700), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := isHeadingLine(tt.line, stats); got != tt.want {
				t.Errorf("isHeadingLine() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSplitMixedLine(t *testing.T) {
	stats := fontStats{mode: 11, threshold: 13.2}
	line := textLine{
		page: 1,
		runs: []textRun{
			{text: "Section Title", font: "Helvetica-Bold", size: 18},
			{text: " and this body text follows on the same line", font: "Helvetica", size: 11},
		},
	}

	heading, remainder := splitMixedLine(line, stats)
	if heading != "Section Title" {
		t.Errorf("heading = %q", heading)
	}
	if remainder != "and this body text follows on the same line" {
		t.Errorf("remainder = %q", remainder)
	}
}

func TestBuildSections(t *testing.T) {
	e := testExtractor(t)
	stats := fontStats{mode: 11, threshold: 13.2}

	lines := []textLine{
		mkLine("Preamble text before any heading appears in this document.", 11, "Helvetica", 1, 720),
		mkLine("First Heading", 18, "Helvetica-Bold", 1, 690),
		mkLine("Body of the first section, long enough to survive the filter.", 11, "Helvetica", 1, 670),
		mkLine("Continues on the very next line of the same paragraph here.", 11, "Helvetica", 1, 655),
		mkLine("Second Heading", 18, "Helvetica-Bold", 2, 720),
		mkLine("Body of the second section, also long enough to be retained.", 11, "Helvetica", 2, 700),
	}

	sections := e.buildSections(lines, stats)

	if len(sections) != 3 {
		t.Fatalf("got %d sections, want 3", len(sections))
	}

	if sections[0].Heading != "" {
		t.Errorf("preamble section heading = %q, want empty", sections[0].Heading)
	}
	if sections[1].Heading != "First Heading" {
		t.Errorf("section 1 heading = %q", sections[1].Heading)
	}
	if sections[1].FontWeight != WeightBold {
		t.Errorf("section 1 weight = %q, want bold", sections[1].FontWeight)
	}
	if len(sections[1].Paragraphs) != 1 {
		t.Fatalf("section 1 paragraphs = %d, want 1 (lines merged)", len(sections[1].Paragraphs))
	}
	if !strings.Contains(sections[1].Paragraphs[0], "Continues on the very next line") {
		t.Errorf("paragraph merge failed: %q", sections[1].Paragraphs[0])
	}

	for i, s := range sections {
		if s.OrderIndex != i {
			t.Errorf("section %d has OrderIndex %d", i, s.OrderIndex)
		}
	}
}

func TestBuildSectionsParagraphGap(t *testing.T) {
	e := testExtractor(t)
	stats := fontStats{mode: 11, threshold: 13.2}

	lines := []textLine{
		mkLine("First paragraph line, padded to pass the minimum length filter.", 11, "Helvetica", 1, 700),
		// 50pt gap at 11pt font: clearly a new paragraph.
		mkLine("Second paragraph line, also padded to pass the length filter.", 11, "Helvetica", 1, 650),
	}

	sections := e.buildSections(lines, stats)
	if len(sections) != 1 {
		t.Fatalf("got %d sections, want 1", len(sections))
	}
	if len(sections[0].Paragraphs) != 2 {
		t.Errorf("got %d paragraphs, want 2", len(sections[0].Paragraphs))
	}
}

func TestBuildSectionsDropsShortFragments(t *testing.T) {
	e := testExtractor(t)
	stats := fontStats{mode: 11, threshold: 13.2}

	lines := []textLine{
		mkLine("Heading Here", 18, "Helvetica", 1, 700),
		mkLine("tiny", 11, "Helvetica", 1, 680),
	}

	sections := e.buildSections(lines, stats)
	if len(sections) != 1 {
		t.Fatalf("got %d sections, want 1", len(sections))
	}
	if len(sections[0].Paragraphs) != 0 {
		t.Errorf("short fragment should be dropped, got %v", sections[0].Paragraphs)
	}
}

func TestNoHeadingsMeansSingleSection(t *testing.T) {
	e := testExtractor(t)
	stats := fontStats{mode: 11, threshold: 13.2}

	lines := []textLine{
		mkLine("Uniform body text with punctuation, keeping everything at one size.", 11, "Helvetica", 1, 700),
		mkLine("More of the same body text, so no heading is ever detected here.", 11, "Helvetica", 1, 685),
	}

	sections := e.buildSections(lines, stats)
	if len(sections) != 1 {
		t.Fatalf("got %d sections, want 1", len(sections))
	}
	if sections[0].Heading != "" {
		t.Errorf("heading = %q, want empty", sections[0].Heading)
	}
}

func TestDocumentTitle(t *testing.T) {
	sections := []Section{
		{Heading: ""},
		{Heading: "Actual Title"},
	}
	if got := documentTitle(sections, nil); got != "Actual Title" {
		t.Errorf("documentTitle = %q", got)
	}

	lines := []textLine{mkLine("Fallback first line", 11, "Helvetica", 1, 700)}
	if got := documentTitle(nil, lines); got != "Fallback first line" {
		t.Errorf("documentTitle fallback = %q", got)
	}
}
