package overlay

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
)

// PatternKind names a repeating overlay pattern.
type PatternKind string

const (
	Checkerboard PatternKind = "checkerboard"
	Stripes      PatternKind = "stripes"
	Grid         PatternKind = "grid"
)

// PatternConfig controls pattern density and visibility.
type PatternConfig struct {
	Scale   float64 // cell/stripe size relative to the short image edge, default 0.1
	Opacity float64 // default 0.2
}

func (c *PatternConfig) fill() {
	if c.Scale == 0 {
		c.Scale = 0.1
	}
	if c.Opacity == 0 {
		c.Opacity = 0.2
	}
}

// Pattern composites a repeating black pattern over a copy of src.
func Pattern(src image.Image, kind PatternKind, cfg PatternConfig) (image.Image, error) {
	if err := checkBounds(src); err != nil {
		return nil, err
	}
	cfg.fill()

	bounds := src.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	layer := image.NewNRGBA(image.Rect(0, 0, w, h))
	ink := image.NewUniform(color.NRGBA{A: alpha8(cfg.Opacity)})

	short := min(w, h)
	switch kind {
	case Checkerboard:
		cell := max(1, int(float64(short)*cfg.Scale))
		for i := 0; i < w; i += cell * 2 {
			for j := 0; j < h; j += cell * 2 {
				fill(layer, i, j, i+cell, j+cell, ink)
				fill(layer, i+cell, j+cell, i+cell*2, j+cell*2, ink)
			}
		}
	case Stripes:
		stripe := max(1, int(float64(short)*cfg.Scale))
		for i := 0; i < w; i += stripe * 2 {
			fill(layer, i, 0, i+stripe, h, ink)
		}
	case Grid:
		line := max(1, int(float64(short)*cfg.Scale))
		spacing := max(line+1, int(float64(short)*cfg.Scale*5))
		for y := 0; y < h; y += spacing {
			fill(layer, 0, y, w, y+line, ink)
		}
		for x := 0; x < w; x += spacing {
			fill(layer, x, 0, x+line, h, ink)
		}
	default:
		return nil, fmt.Errorf("unknown pattern %q", kind)
	}

	return compose(src, layer), nil
}

func fill(dst draw.Image, x0, y0, x1, y1 int, src image.Image) {
	draw.Draw(dst, image.Rect(x0, y0, x1, y1), src, image.Point{}, draw.Src)
}
