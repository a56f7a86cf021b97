package videogen

import (
	"fmt"
	"image/color"

	"golang.org/x/image/font"

	"github.com/nguyentantai21042004/slidecast/pkg/canvas"
	"github.com/nguyentantai21042004/slidecast/pkg/pptx"
)

var (
	frameBackground = color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
	frameTitleColor = color.RGBA{R: 0x1F, G: 0x2A, B: 0x44, A: 0xFF}
	frameBodyColor  = color.RGBA{R: 0x33, G: 0x33, B: 0x33, A: 0xFF}
	captionBarColor = color.RGBA{R: 0x58, G: 0x58, B: 0x58, A: 0xFF}
	captionTextCol  = color.RGBA{R: 0xF0, G: 0xF0, B: 0xF0, A: 0xFF}
)

const captionText = "Narration unavailable for this slide"

// renderFrame draws the static frame shown for a slide's whole duration:
// title, body lines, and a caption strip when narration failed.
func (g *implVideoGenerator) renderFrame(slide pptx.SlideText, caption bool, path string) error {
	width := g.cfg.Video.Resolution.Width
	height := g.cfg.Video.Resolution.Height

	titleFace, err := canvas.BoldFace(float64(height) / 14)
	if err != nil {
		return fmt.Errorf("title face: %w", err)
	}
	bodyFace, err := canvas.RegularFace(float64(height) / 26)
	if err != nil {
		return fmt.Errorf("body face: %w", err)
	}

	c := canvas.New(width, height, frameBackground)

	margin := width / 16
	y := height / 6
	c.DrawText(margin, y, fitLine(slide.Title, titleFace, width-2*margin), titleFace, frameTitleColor)

	// Accent rule under the title.
	c.FillRect(margin, y+height/40, width-margin, y+height/40+4, frameTitleColor)

	lineStep := height / 14
	y += lineStep + lineStep/2
	for _, line := range slide.Body {
		if y > height-height/6 {
			break
		}
		c.DrawText(margin, y, fitLine(line, bodyFace, width-2*margin), bodyFace, frameBodyColor)
		y += lineStep
	}

	if caption {
		g.drawCaptionStrip(c, width, height)
	}

	if err := c.SavePNG(path); err != nil {
		return fmt.Errorf("save frame: %w", err)
	}
	return nil
}

func (g *implVideoGenerator) drawCaptionStrip(c *canvas.Canvas, width, height int) {
	stripTop := height - height/10
	c.FillRect(0, stripTop, width, height, captionBarColor)

	face, err := canvas.RegularFace(float64(height) / 30)
	if err != nil {
		return
	}
	c.DrawTextCentered(width/2, stripTop+(height-stripTop)*2/3, captionText, face, captionTextCol)
}

// fitLine trims a line to the available pixel width, replacing the cut
// tail with an ellipsis.
func fitLine(text string, face font.Face, maxWidth int) string {
	if canvas.TextWidth(text, face) <= maxWidth {
		return text
	}
	runes := []rune(text)
	for len(runes) > 1 {
		runes = runes[:len(runes)-1]
		candidate := string(runes) + "…"
		if canvas.TextWidth(candidate, face) <= maxWidth {
			return candidate
		}
	}
	return "…"
}
