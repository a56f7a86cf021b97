package extractor

import (
	"sort"
	"strings"

	"github.com/ledongthuc/pdf"
)

// lineYTolerance is the max vertical distance (in points) between text
// fragments considered to be on the same line.
const lineYTolerance = 2.0

// textRun is a maximal stretch of same-font text within a line.
type textRun struct {
	text string
	font string
	size float64
	x    float64
}

type textLine struct {
	runs []textRun
	page int
	y    float64
}

func (l textLine) text() string {
	var sb strings.Builder
	for _, r := range l.runs {
		sb.WriteString(r.text)
	}
	return strings.TrimSpace(sb.String())
}

// fontSize returns the size of the line's leading run.
func (l textLine) fontSize() float64 {
	if len(l.runs) == 0 {
		return 0
	}
	return l.runs[0].size
}

func (l textLine) fontName() string {
	if len(l.runs) == 0 {
		return ""
	}
	return l.runs[0].font
}

// pageLines extracts positioned text from one page and groups it into
// lines ordered top to bottom. The pdf library panics on some malformed
// content streams; those pages are skipped.
func pageLines(page pdf.Page, pageNum int) (lines []textLine) {
	defer func() {
		if r := recover(); r != nil {
			lines = nil
		}
	}()

	if page.V.IsNull() {
		return nil
	}

	texts := page.Content().Text
	if len(texts) == 0 {
		return nil
	}

	// Top of page first (PDF Y grows upward), then left to right.
	sort.SliceStable(texts, func(i, j int) bool {
		if abs(texts[i].Y-texts[j].Y) > lineYTolerance {
			return texts[i].Y > texts[j].Y
		}
		return texts[i].X < texts[j].X
	})

	var current *textLine
	var prev pdf.Text

	for _, t := range texts {
		if t.S == "" {
			continue
		}

		if current == nil || abs(t.Y-current.y) > lineYTolerance {
			if current != nil && current.text() != "" {
				lines = append(lines, *current)
			}
			current = &textLine{page: pageNum, y: t.Y}
			current.runs = append(current.runs, textRun{text: t.S, font: t.Font, size: t.FontSize, x: t.X})
			prev = t
			continue
		}

		// Word gap: fragments further apart than a quarter of the font
		// size get a separating space.
		gap := t.X - (prev.X + prev.W)
		needSpace := gap > 0.25*t.FontSize && !strings.HasSuffix(current.runs[len(current.runs)-1].text, " ")

		last := &current.runs[len(current.runs)-1]
		if last.font == t.Font && last.size == t.FontSize {
			if needSpace {
				last.text += " "
			}
			last.text += t.S
		} else {
			text := t.S
			if needSpace {
				text = " " + text
			}
			current.runs = append(current.runs, textRun{text: text, font: t.Font, size: t.FontSize, x: t.X})
		}
		prev = t
	}

	if current != nil && current.text() != "" {
		lines = append(lines, *current)
	}

	return lines
}

func abs(f float64) float64 {
	if f < 0 {
		return -f
	}
	return f
}
