package visualizer

import (
	"context"
	"fmt"
	"image/color"
	"path/filepath"

	"github.com/nguyentantai21042004/slidecast/internal/summarizer"
	"github.com/nguyentantai21042004/slidecast/pkg/canvas"
)

// Node colors cycle through a fixed palette.
var nodePalette = []color.RGBA{
	{R: 0x4E, G: 0x79, B: 0xA7, A: 0xFF}, // blue
	{R: 0xF2, G: 0x8E, B: 0x2B, A: 0xFF}, // orange
	{R: 0x59, G: 0xA1, B: 0x4F, A: 0xFF}, // green
}

var (
	diagramBackground = color.RGBA{R: 0xFA, G: 0xFA, B: 0xFA, A: 0xFF}
	connectorColor    = color.RGBA{R: 0xB0, G: 0xB0, B: 0xB0, A: 0xFF}
	labelColor        = color.RGBA{R: 0x33, G: 0x33, B: 0x33, A: 0xFF}
)

// renderDiagram draws a simple concept diagram: one colored node per
// keyword, connected left to right, with the slide title above.
func (v *implVisualizer) renderDiagram(ctx context.Context, slide summarizer.SlideContent, keywords []string, index int, outDir string) (string, error) {
	width := v.cfg.Visuals.ImageWidth
	height := v.cfg.Visuals.ImageHeight

	titleFace, err := canvas.BoldFace(float64(height) / 18)
	if err != nil {
		return "", fmt.Errorf("diagram title face: %w", err)
	}
	labelFace, err := canvas.RegularFace(float64(height) / 24)
	if err != nil {
		return "", fmt.Errorf("diagram label face: %w", err)
	}

	c := canvas.New(width, height, diagramBackground)
	c.DrawTextCentered(width/2, height/8, slide.Title, titleFace, labelColor)

	centerY := height / 2
	radius := height / 8
	step := width / (len(keywords) + 1)

	// Connector line behind the nodes.
	if len(keywords) > 1 {
		c.FillRect(step, centerY-2, step*len(keywords), centerY+2, connectorColor)
	}

	for i, kw := range keywords {
		cx := step * (i + 1)
		c.FillCircle(cx, centerY, radius, nodePalette[i%len(nodePalette)])
		c.DrawTextCentered(cx, centerY+radius+radius/2, kw, labelFace, labelColor)
	}

	path := filepath.Join(outDir, fmt.Sprintf("visual_%02d.png", index))
	if err := c.SavePNG(path); err != nil {
		return "", fmt.Errorf("save diagram: %w", err)
	}

	v.logger.Debug(ctx, "Slide %d: diagram with %d nodes at %s", index, len(keywords), path)
	return path, nil
}
