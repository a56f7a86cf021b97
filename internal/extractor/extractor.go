package extractor

import (
	"context"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"

	"github.com/nguyentantai21042004/slidecast/internal/textutil"
)

// paragraphGapFactor: a vertical gap above this many line heights
// starts a new paragraph.
const paragraphGapFactor = 1.6

// Extract parses the PDF and groups its text into sections delimited by
// detected headings.
func (e *implExtractor) Extract(ctx context.Context, pdfPath string) (*Document, error) {
	e.logger.Info(ctx, "Extracting text from: %s", pdfPath)

	f, reader, err := pdf.Open(pdfPath)
	if err != nil {
		return nil, fmt.Errorf("open pdf: %w", err)
	}
	defer f.Close()

	pageCount := reader.NumPage()
	var lines []textLine
	for pageNum := 1; pageNum <= pageCount; pageNum++ {
		pl := pageLines(reader.Page(pageNum), pageNum)
		if pl == nil {
			e.logger.Debug(ctx, "No text on page %d", pageNum)
			continue
		}
		lines = append(lines, pl...)
	}

	if len(lines) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNoTextLayer, pdfPath)
	}

	stats := analyzeFonts(lines, e.cfg.Extraction.SamplePages, e.cfg.Extraction.HeadingScale)
	e.logger.Debug(ctx, "Font stats: body mode %.1fpt, heading threshold %.1fpt, max %.1fpt",
		stats.mode, stats.threshold, stats.max)

	sections := e.buildSections(lines, stats)

	doc := &Document{
		Title:     documentTitle(sections, lines),
		PageCount: pageCount,
		Sections:  sections,
	}

	e.logger.Info(ctx, "Extracted %d sections from %d pages", len(sections), pageCount)
	return doc, nil
}

// buildSections walks the lines in reading order, opening a new section
// at every heading and grouping the rest into paragraphs by vertical
// gaps.
func (e *implExtractor) buildSections(lines []textLine, stats fontStats) []Section {
	minChars := e.cfg.Extraction.MinParagraphChars

	var sections []Section
	current := Section{}
	var para []string
	var prev *textLine

	flushPara := func() {
		if len(para) == 0 {
			return
		}
		text := textutil.Normalize(strings.Join(para, " "))
		para = nil
		if len(text) >= minChars {
			current.Paragraphs = append(current.Paragraphs, text)
		}
	}

	flushSection := func() {
		flushPara()
		if current.Heading != "" || len(current.Paragraphs) > 0 {
			current.OrderIndex = len(sections)
			sections = append(sections, current)
		}
	}

	for i := range lines {
		line := lines[i]

		if isHeadingLine(line, stats) {
			heading, remainder := splitMixedLine(line, stats)
			flushSection()
			current = Section{
				Heading:    textutil.Normalize(heading),
				FontSize:   line.fontSize(),
				FontWeight: headingWeight(line),
			}
			if remainder != "" {
				para = append(para, remainder)
			}
			current.Pages = appendPage(current.Pages, line.page)
			prev = &lines[i]
			continue
		}

		// Paragraph break on a large vertical gap within the same page.
		if prev != nil && prev.page == line.page {
			lineHeight := line.fontSize()
			if lineHeight <= 0 {
				lineHeight = stats.mode
			}
			if prev.y-line.y > paragraphGapFactor*lineHeight {
				flushPara()
			}
		} else if prev != nil {
			flushPara()
		}

		para = append(para, line.text())
		current.Pages = appendPage(current.Pages, line.page)
		prev = &lines[i]
	}

	flushSection()
	return sections
}

// splitMixedLine separates a heading line's leading heading-weight runs
// from trailing body-size runs so body text does not leak into titles.
func splitMixedLine(line textLine, stats fontStats) (heading, remainder string) {
	split := len(line.runs)
	for i, run := range line.runs {
		isHeadingRun := run.size > stats.threshold || (run.size > 0 && isBoldFont(run.font)) || run.size == 0
		if !isHeadingRun {
			split = i
			break
		}
	}
	if split == 0 {
		return line.text(), ""
	}

	var h, r strings.Builder
	for i, run := range line.runs {
		if i < split {
			h.WriteString(run.text)
		} else {
			r.WriteString(run.text)
		}
	}
	return strings.TrimSpace(h.String()), strings.TrimSpace(r.String())
}

func headingWeight(line textLine) FontWeight {
	if isBoldFont(line.fontName()) {
		return WeightBold
	}
	return WeightNormal
}

func appendPage(pages []int, page int) []int {
	if len(pages) > 0 && pages[len(pages)-1] == page {
		return pages
	}
	return append(pages, page)
}

// documentTitle picks the first heading, falling back to the first line
// of text.
func documentTitle(sections []Section, lines []textLine) string {
	for _, s := range sections {
		if s.Heading != "" {
			return s.Heading
		}
	}
	if len(lines) > 0 {
		title := lines[0].text()
		return textutil.TruncateWords(title, 20)
	}
	return ""
}
