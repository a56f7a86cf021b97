// Package canvas wraps image/draw with the small set of primitives the
// slide and diagram renderers need: filled shapes, anti-aliased text via
// opentype faces, and PNG output.
package canvas

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// Canvas is a mutable RGBA image with drawing helpers.
type Canvas struct {
	img *image.RGBA
}

// New creates a canvas of the given size filled with the background color.
func New(width, height int, bg color.Color) *Canvas {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.NewUniform(bg), image.Point{}, draw.Src)
	return &Canvas{img: img}
}

// Image exposes the underlying RGBA image.
func (c *Canvas) Image() *image.RGBA {
	return c.img
}

// FillRect fills the rectangle [x0,y0)-(x1,y1) with col.
func (c *Canvas) FillRect(x0, y0, x1, y1 int, col color.Color) {
	draw.Draw(c.img, image.Rect(x0, y0, x1, y1), image.NewUniform(col), image.Point{}, draw.Src)
}

// FillCircle fills a circle centered at (cx, cy) with radius r.
func (c *Canvas) FillCircle(cx, cy, r int, col color.Color) {
	for y := cy - r; y <= cy+r; y++ {
		for x := cx - r; x <= cx+r; x++ {
			dx, dy := x-cx, y-cy
			if dx*dx+dy*dy <= r*r {
				c.img.Set(x, y, col)
			}
		}
	}
}

// DrawImage copies src onto the canvas with its top-left corner at (x, y).
func (c *Canvas) DrawImage(x, y int, src image.Image) {
	b := src.Bounds()
	dst := image.Rect(x, y, x+b.Dx(), y+b.Dy())
	draw.Draw(c.img, dst, src, b.Min, draw.Over)
}

// DrawText renders s with the given face, placing the text baseline at
// (x, y).
func (c *Canvas) DrawText(x, y int, s string, face font.Face, col color.Color) {
	d := font.Drawer{
		Dst:  c.img,
		Src:  image.NewUniform(col),
		Face: face,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(s)
}

// DrawTextCentered renders s horizontally centered around x, baseline at y.
func (c *Canvas) DrawTextCentered(x, y int, s string, face font.Face, col color.Color) {
	w := TextWidth(s, face)
	c.DrawText(x-w/2, y, s, face, col)
}

// TextWidth returns the advance width of s in pixels for the face.
func TextWidth(s string, face font.Face) int {
	return font.MeasureString(face, s).Ceil()
}

// SavePNG writes the canvas to path as a PNG file.
func (c *Canvas) SavePNG(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	if err := png.Encode(f, c.img); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}

// RegularFace returns a Go Regular face at the given point size.
func RegularFace(size float64) (font.Face, error) {
	return newFace(goregular.TTF, size)
}

// BoldFace returns a Go Bold face at the given point size.
func BoldFace(size float64) (font.Face, error) {
	return newFace(gobold.TTF, size)
}

func newFace(ttf []byte, size float64) (font.Face, error) {
	ft, err := opentype.Parse(ttf)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}
	face, err := opentype.NewFace(ft, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("create face: %w", err)
	}
	return face, nil
}
