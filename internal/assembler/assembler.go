package assembler

import (
	"context"
	"fmt"

	"github.com/nguyentantai21042004/slidecast/internal/textutil"
	"github.com/nguyentantai21042004/slidecast/pkg/pptx"
)

const bulletGlyph = "• "

// Assemble lays out each enriched slide and writes the deck to
// outputPath.
func (a *implAssembler) Assemble(ctx context.Context, slides []EnrichedSlide, outputPath string) error {
	a.logger.Info(ctx, "Assembling %d slides into %s", len(slides), outputPath)

	if len(slides) == 0 {
		return fmt.Errorf("no slides to assemble")
	}

	pres := pptx.New(a.cfg.Slides.AspectRatio)
	widthEMU, heightEMU := pres.SlideSize()
	slideW := emuToInches(widthEMU)
	slideH := emuToInches(heightEMU)

	for i, slide := range slides {
		a.layoutSlide(pres.AddSlide(), slide, slideW, slideH)
		a.logger.Debug(ctx, "Slide %d/%d: %q (visual: %t)",
			i+1, len(slides), slide.Title, slide.VisualPath != "")
	}

	if err := pres.Save(outputPath); err != nil {
		return fmt.Errorf("write presentation: %w", err)
	}
	return nil
}

// layoutSlide places title, bullets and the optional visual. With a
// visual the body shrinks to the left column and the image takes the
// right; without one the body spans the full width.
func (a *implAssembler) layoutSlide(dst *pptx.Slide, slide EnrichedSlide, slideW, slideH float64) {
	titlePt := titleFontPt(slide.Title)
	bodyPt := bulletFontPt(slide.Bullets)

	dst.SetTitle(slide.Title, titlePt, pptx.Box{
		X: pptx.Inches(0.5),
		Y: pptx.Inches(0.3),
		W: pptx.Inches(slideW - 1.0),
		H: pptx.Inches(1.1),
	})

	bodyW := slideW - 1.4
	if slide.VisualPath != "" {
		bodyW = slideW/2 - 0.9
	}
	dst.AddTextBox(pptx.Box{
		X: pptx.Inches(0.7),
		Y: pptx.Inches(1.6),
		W: pptx.Inches(bodyW),
		H: pptx.Inches(slideH - 2.1),
	}, bulletLines(slide.Bullets, bodyPt, bodyW))

	if slide.VisualPath != "" {
		dst.AddPicture(slide.VisualPath, pptx.Box{
			X: pptx.Inches(slideW/2 + 0.2),
			Y: pptx.Inches(1.8),
			W: pptx.Inches(slideW/2 - 0.9),
			H: pptx.Inches(slideH - 2.6),
		})
	}

	if slide.SpeakerNote != "" {
		dst.SetNotes(slide.SpeakerNote)
	}
}

// bulletLines prefixes each bullet with the glyph and word-wraps it to
// the column. Wrapped continuation lines are indented under the glyph.
func bulletLines(bullets []string, sizePt int, columnInches float64) []pptx.TextLine {
	maxChars := charsPerLine(columnInches, sizePt)

	var lines []pptx.TextLine
	for _, bullet := range bullets {
		wrapped := textutil.Wrap(bullet, maxChars-len(bulletGlyph))
		for j, part := range wrapped {
			text := "  " + part
			if j == 0 {
				text = bulletGlyph + part
			}
			lines = append(lines, pptx.TextLine{Text: text, SizePt: sizePt})
		}
	}
	return lines
}

// titleFontPt shrinks long titles: 32pt normally, down to 24pt for the
// longest.
func titleFontPt(title string) int {
	words := textutil.WordCount(title)
	switch {
	case len(title) > 60 || words > 8:
		return 24
	case len(title) > 40 || words > 6:
		return 28
	default:
		return 32
	}
}

// bulletFontPt sizes the body by its longest bullet, clamped to
// [11pt, 14pt].
func bulletFontPt(bullets []string) int {
	longest := 0
	for _, b := range bullets {
		if len(b) > longest {
			longest = len(b)
		}
	}
	switch {
	case longest > 200:
		return 11
	case longest > 150:
		return 12
	case longest > 100:
		return 13
	default:
		return 14
	}
}

// charsPerLine estimates how many characters of the given point size fit
// in a column. An average glyph is roughly 0.55 em wide.
func charsPerLine(columnInches float64, sizePt int) int {
	chars := int(columnInches * 72.0 / (float64(sizePt) * 0.55))
	if chars < 10 {
		return 10
	}
	return chars
}

func emuToInches(emu int64) float64 {
	return float64(emu) / 914400.0
}
