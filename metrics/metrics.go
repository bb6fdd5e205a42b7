// Package metrics quantifies how visible a perturbation is: mean squared
// error and peak signal-to-noise ratio over 8-bit RGB, plus a difference
// heatmap for eyeballing where pixels moved.
package metrics

import (
	"errors"
	"image"
	"image/color"
	"math"
)

var ErrSizeMismatch = errors.New("images have different dimensions")

// MSE returns the mean squared error between two images over their R, G and
// B channels on the 8-bit scale.
func MSE(a, b image.Image) (float64, error) {
	ab, bb := a.Bounds(), b.Bounds()
	if ab.Dx() != bb.Dx() || ab.Dy() != bb.Dy() {
		return 0, ErrSizeMismatch
	}

	var sum float64
	for y := 0; y < ab.Dy(); y++ {
		for x := 0; x < ab.Dx(); x++ {
			ar, ag, abl, _ := a.At(ab.Min.X+x, ab.Min.Y+y).RGBA()
			br, bg, bbl, _ := b.At(bb.Min.X+x, bb.Min.Y+y).RGBA()
			dr := float64(ar>>8) - float64(br>>8)
			dg := float64(ag>>8) - float64(bg>>8)
			db := float64(abl>>8) - float64(bbl>>8)
			sum += dr*dr + dg*dg + db*db
		}
	}
	return sum / float64(ab.Dx()*ab.Dy()*3), nil
}

// PSNR returns the peak signal-to-noise ratio in decibels. Identical images
// return +Inf.
func PSNR(a, b image.Image) (float64, error) {
	mse, err := MSE(a, b)
	if err != nil {
		return 0, err
	}
	if mse == 0 {
		return math.Inf(1), nil
	}
	return 10 * math.Log10(255*255/mse), nil
}

// Heatmap renders the per-pixel difference between two images as red
// intensity on black: untouched pixels stay black, modified pixels glow.
// Small differences are amplified so single-bit changes remain visible.
func Heatmap(a, b image.Image) (*image.RGBA, error) {
	ab, bb := a.Bounds(), b.Bounds()
	if ab.Dx() != bb.Dx() || ab.Dy() != bb.Dy() {
		return nil, ErrSizeMismatch
	}

	out := image.NewRGBA(image.Rect(0, 0, ab.Dx(), ab.Dy()))
	for y := 0; y < ab.Dy(); y++ {
		for x := 0; x < ab.Dx(); x++ {
			ar, ag, abl, _ := a.At(ab.Min.X+x, ab.Min.Y+y).RGBA()
			br, bg, bbl, _ := b.At(bb.Min.X+x, bb.Min.Y+y).RGBA()

			diff := max(
				absDiff(ar>>8, br>>8),
				absDiff(ag>>8, bg>>8),
				absDiff(abl>>8, bbl>>8),
			)
			// x8 amplification; LSB-level changes land at 8 instead of 1.
			v := min(diff*8, 255)
			out.SetRGBA(x, y, color.RGBA{R: uint8(v), A: 255})
		}
	}
	return out, nil
}

func absDiff(a, b uint32) uint32 {
	if a > b {
		return a - b
	}
	return b - a
}
