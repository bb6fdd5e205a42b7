// Package ycbcr separates images into a float64 luminance plane and two
// chroma planes, and recombines them after the luminance has been modified.
// The BT.601 full-range coefficients match what OpenCV uses for YCrCb
// (chroma order aside), so a luminance-only edit leaves chroma untouched.
package ycbcr

import (
	"image"
	"image/color"
	"math"
)

const delta = 128.0

const (
	yr  = 0.299
	yg  = 0.587
	yb  = 0.114
	cbf = 0.564
	crf = 0.713
)

// Split converts src into Y, Cb, Cr planes (row-major, one float64 per
// pixel) plus the original 8-bit alpha.
func Split(src image.Image) (y, cb, cr []float64, alpha []uint8) {
	bounds := src.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	area := w * h
	y = make([]float64, area)
	cb = make([]float64, area)
	cr = make([]float64, area)
	alpha = make([]uint8, area)

	idx := 0
	for py := bounds.Min.Y; py < bounds.Max.Y; py++ {
		for px := bounds.Min.X; px < bounds.Max.X; px++ {
			r32, g32, b32, a32 := src.At(px, py).RGBA()
			r := float64(r32 >> 8)
			g := float64(g32 >> 8)
			b := float64(b32 >> 8)

			yVal := yr*r + yg*g + yb*b
			y[idx] = yVal
			cb[idx] = cbf*(b-yVal) + delta
			cr[idx] = crf*(r-yVal) + delta
			alpha[idx] = uint8(a32 >> 8)
			idx++
		}
	}
	return y, cb, cr, alpha
}

const (
	rcr = 1.403
	gcb = -0.344
	gcr = -0.714
	bcb = 1.773
)

// Join recombines planes produced by Split into an 8-bit RGBA image with the
// given bounds. Out-of-range samples are clipped.
func Join(y, cb, cr []float64, alpha []uint8, bounds image.Rectangle) *image.RGBA {
	dist := image.NewRGBA(bounds)
	idx := 0
	for py := bounds.Min.Y; py < bounds.Max.Y; py++ {
		for px := bounds.Min.X; px < bounds.Max.X; px++ {
			yVal := y[idx]
			cbDelta := cb[idx] - delta
			crDelta := cr[idx] - delta

			r := yVal + rcr*crDelta
			g := yVal + gcb*cbDelta + gcr*crDelta
			b := yVal + bcb*cbDelta

			dist.SetRGBA(px, py, color.RGBA{
				R: Clip8(r),
				G: Clip8(g),
				B: Clip8(b),
				A: alpha[idx],
			})
			idx++
		}
	}
	return dist
}

// Clip8 rounds v to the nearest integer and clamps it to [0, 255].
func Clip8(v float64) uint8 {
	v = math.Round(v)
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}
