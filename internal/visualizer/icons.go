package visualizer

import (
	"context"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	xdraw "golang.org/x/image/draw"

	"github.com/nguyentantai21042004/slidecast/internal/textutil"
	"github.com/nguyentantai21042004/slidecast/pkg/canvas"
)

// renderIcons composes icons from the icon library that match the slide
// keywords by word stem. When no icon matches, the slide simply gets no
// visual.
func (v *implVisualizer) renderIcons(ctx context.Context, keywords []string, index int, outDir string) (string, error) {
	library, err := v.iconLibrary()
	if err != nil {
		v.logger.Warn(ctx, "Icon library unavailable: %v", err)
		return "", nil
	}

	type match struct {
		keyword string
		path    string
	}
	var matches []match
	for _, kw := range keywords {
		if path, ok := library[textutil.Stem(kw)]; ok {
			matches = append(matches, match{keyword: kw, path: path})
		}
	}
	if len(matches) == 0 {
		v.logger.Debug(ctx, "Slide %d: no icons match keywords %v", index, keywords)
		return "", nil
	}

	width := v.cfg.Visuals.ImageWidth
	height := v.cfg.Visuals.ImageHeight

	labelFace, err := canvas.RegularFace(float64(height) / 24)
	if err != nil {
		return "", fmt.Errorf("icon label face: %w", err)
	}

	c := canvas.New(width, height, diagramBackground)

	cell := width / len(matches)
	iconSize := min(cell-40, height*2/3)
	for i, m := range matches {
		icon, err := loadPNG(m.path)
		if err != nil {
			v.logger.Warn(ctx, "Skipping icon %s: %v", m.path, err)
			continue
		}
		scaled := scaleToFit(icon, iconSize)
		cx := cell*i + cell/2
		top := height/2 - scaled.Bounds().Dy()/2 - height/12
		c.DrawImage(cx-scaled.Bounds().Dx()/2, top, scaled)
		c.DrawTextCentered(cx, top+scaled.Bounds().Dy()+height/12, m.keyword, labelFace, labelColor)
	}

	path := filepath.Join(outDir, fmt.Sprintf("visual_%02d.png", index))
	if err := c.SavePNG(path); err != nil {
		return "", fmt.Errorf("save icons: %w", err)
	}

	v.logger.Debug(ctx, "Slide %d: %d icons at %s", index, len(matches), path)
	return path, nil
}

// iconLibrary indexes the configured icon directory by the stem of each
// PNG filename, so "network.png" serves "networks" and "networking".
func (v *implVisualizer) iconLibrary() (map[string]string, error) {
	entries, err := os.ReadDir(v.cfg.Visuals.IconDir)
	if err != nil {
		return nil, fmt.Errorf("read icon dir: %w", err)
	}

	library := make(map[string]string)
	for _, entry := range entries {
		if entry.IsDir() || !strings.EqualFold(filepath.Ext(entry.Name()), ".png") {
			continue
		}
		stem := textutil.Stem(strings.TrimSuffix(strings.ToLower(entry.Name()), filepath.Ext(entry.Name())))
		library[stem] = filepath.Join(v.cfg.Visuals.IconDir, entry.Name())
	}
	return library, nil
}

func loadPNG(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return png.Decode(f)
}

// scaleToFit resizes img so its longer side equals size, preserving
// aspect ratio.
func scaleToFit(img image.Image, size int) image.Image {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if w >= h {
		h = h * size / w
		w = size
	} else {
		w = w * size / h
		h = size
	}
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}

	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	xdraw.ApproxBiLinear.Scale(dst, dst.Bounds(), img, b, xdraw.Over, nil)
	return dst
}
