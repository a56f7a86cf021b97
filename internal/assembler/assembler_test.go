package assembler

import (
	"context"
	"image/color"
	"path/filepath"
	"strings"
	"testing"

	"github.com/nguyentantai21042004/slidecast/internal/config"
	"github.com/nguyentantai21042004/slidecast/internal/logger"
	"github.com/nguyentantai21042004/slidecast/internal/summarizer"
	"github.com/nguyentantai21042004/slidecast/pkg/canvas"
	"github.com/nguyentantai21042004/slidecast/pkg/pptx"
)

func testAssembler(t *testing.T) Assembler {
	t.Helper()
	cfg, err := config.Load("")
	if err != nil {
		t.Fatal(err)
	}
	return New(cfg, logger.New("error"))
}

func TestAssembleWritesReadableDeck(t *testing.T) {
	dir := t.TempDir()
	visual := filepath.Join(dir, "visual.png")
	if err := canvas.New(64, 48, color.White).SavePNG(visual); err != nil {
		t.Fatal(err)
	}

	slides := []EnrichedSlide{
		{
			SlideContent: summarizer.SlideContent{
				Title:       "Introduction",
				Bullets:     []string{"First key point of the talk", "Second key point follows"},
				SpeakerNote: "Welcome. This talk covers two points.",
			},
		},
		{
			SlideContent: summarizer.SlideContent{
				Title:       "Architecture",
				Bullets:     []string{"Components communicate over a shared bus"},
				SpeakerNote: "The architecture centers on a bus.",
			},
			VisualPath: visual,
		},
	}

	out := filepath.Join(dir, "deck.pptx")
	if err := testAssembler(t).Assemble(context.Background(), slides, out); err != nil {
		t.Fatalf("Assemble() error = %v", err)
	}

	deck, err := pptx.Open(out)
	if err != nil {
		t.Fatalf("reading deck back: %v", err)
	}
	if len(deck.Slides) != 2 {
		t.Fatalf("got %d slides, want 2", len(deck.Slides))
	}
	if deck.Slides[0].Title != "Introduction" {
		t.Errorf("slide 1 title = %q", deck.Slides[0].Title)
	}
	if deck.Slides[0].Notes != "Welcome. This talk covers two points." {
		t.Errorf("slide 1 notes = %q", deck.Slides[0].Notes)
	}
	for _, line := range deck.Slides[0].Body {
		if !strings.HasPrefix(line, bulletGlyph) && !strings.HasPrefix(line, "  ") {
			t.Errorf("body line %q lacks bullet prefix or indent", line)
		}
	}
	if deck.Slides[1].Title != "Architecture" {
		t.Errorf("slide 2 title = %q", deck.Slides[1].Title)
	}
}

func TestAssembleEmpty(t *testing.T) {
	err := testAssembler(t).Assemble(context.Background(), nil,
		filepath.Join(t.TempDir(), "deck.pptx"))
	if err == nil {
		t.Error("Assemble() with no slides should fail")
	}
}

func TestTitleFontPt(t *testing.T) {
	tests := []struct {
		title string
		want  int
	}{
		{"Intro", 32},
		{"A Slightly Longer Title Here", 32},
		{"A Title That Runs Past The Forty Character Mark", 28},
		{"One two three four five six seven", 28},                                // 7 words
		{"This title is so long that it clearly exceeds sixty characters easily", 24},
		{"One two three four five six seven eight nine", 24},                     // 9 words
	}
	for _, tt := range tests {
		if got := titleFontPt(tt.title); got != tt.want {
			t.Errorf("titleFontPt(%q) = %d, want %d", tt.title, got, tt.want)
		}
	}
}

func TestBulletFontPt(t *testing.T) {
	long := func(n int) string { return strings.Repeat("x", n) }

	tests := []struct {
		name    string
		bullets []string
		want    int
	}{
		{"short", []string{"tiny", "also small"}, 14},
		{"medium", []string{long(120)}, 13},
		{"long", []string{long(170)}, 12},
		{"very long", []string{"short", long(210)}, 11},
		{"empty", nil, 14},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := bulletFontPt(tt.bullets); got != tt.want {
				t.Errorf("bulletFontPt() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestBulletLinesWrapAndIndent(t *testing.T) {
	bullets := []string{
		"a very long bullet that has to wrap because the column is narrow and the words keep coming",
	}
	lines := bulletLines(bullets, 14, 3.0)

	if len(lines) < 2 {
		t.Fatalf("expected wrapping, got %d lines", len(lines))
	}
	if !strings.HasPrefix(lines[0].Text, bulletGlyph) {
		t.Errorf("first line %q should start with the glyph", lines[0].Text)
	}
	for _, line := range lines[1:] {
		if !strings.HasPrefix(line.Text, "  ") {
			t.Errorf("continuation %q should be indented", line.Text)
		}
	}
	for _, line := range lines {
		if line.SizePt != 14 {
			t.Errorf("line size = %d, want 14", line.SizePt)
		}
	}
}

func TestCharsPerLine(t *testing.T) {
	wide := charsPerLine(12, 14)
	narrow := charsPerLine(5, 14)
	if wide <= narrow {
		t.Errorf("wider column fits fewer chars: %d <= %d", wide, narrow)
	}
	if got := charsPerLine(0.1, 40); got != 10 {
		t.Errorf("floor = %d, want 10", got)
	}
}
