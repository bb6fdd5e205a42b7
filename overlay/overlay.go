// Package overlay stamps visible layers onto images: semi-transparent text,
// regular patterns, and QR codes. Every function returns a new RGBA image
// and leaves the source untouched.
package overlay

import (
	"errors"
	"image"
	"image/draw"
)

var ErrInvalidImage = errors.New("image has zero extent")

// flatten copies src into a fresh RGBA canvas.
func flatten(src image.Image) *image.RGBA {
	bounds := src.Bounds()
	dist := image.NewRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	draw.Draw(dist, dist.Bounds(), src, bounds.Min, draw.Src)
	return dist
}

// compose alpha-composites layer over a copy of src.
func compose(src image.Image, layer image.Image) *image.RGBA {
	dist := flatten(src)
	draw.Draw(dist, dist.Bounds(), layer, image.Point{}, draw.Over)
	return dist
}

func checkBounds(src image.Image) error {
	if src.Bounds().Dx() <= 0 || src.Bounds().Dy() <= 0 {
		return ErrInvalidImage
	}
	return nil
}

func alpha8(opacity float64) uint8 {
	if opacity < 0 {
		opacity = 0
	}
	if opacity > 1 {
		opacity = 1
	}
	return uint8(255 * opacity)
}
