package ycbcr

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitJoin_RoundTrip(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 16, 16))
	for y := 0; y < 16; y++ {
		for x := 0; x < 16; x++ {
			img.SetRGBA(x, y, color.RGBA{
				R: uint8(x * 16),
				G: uint8(y * 16),
				B: uint8((x + y) * 8),
				A: 255,
			})
		}
	}

	yp, cb, cr, alpha := Split(img)
	require.Len(t, yp, 256)
	out := Join(yp, cb, cr, alpha, img.Bounds())

	for y := 0; y < 16; y++ {
		for x := 0; x < 16; x++ {
			want := img.RGBAAt(x, y)
			got := out.RGBAAt(x, y)
			assert.InDelta(t, float64(want.R), float64(got.R), 1.0, "R at (%d,%d)", x, y)
			assert.InDelta(t, float64(want.G), float64(got.G), 1.0, "G at (%d,%d)", x, y)
			assert.InDelta(t, float64(want.B), float64(got.B), 1.0, "B at (%d,%d)", x, y)
			assert.Equal(t, want.A, got.A, "A at (%d,%d)", x, y)
		}
	}
}

func TestSplit_GrayPixelsHaveNeutralChroma(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 4, 1))
	for x := 0; x < 4; x++ {
		v := uint8(x * 60)
		img.SetRGBA(x, 0, color.RGBA{R: v, G: v, B: v, A: 255})
	}

	yp, cb, cr, _ := Split(img)
	for i := range yp {
		assert.InDelta(t, float64(i*60), yp[i], 1e-9, "Y of gray pixel is the gray value")
		assert.InDelta(t, 128.0, cb[i], 1e-9)
		assert.InDelta(t, 128.0, cr[i], 1e-9)
	}
}

func TestClip8(t *testing.T) {
	assert.Equal(t, uint8(0), Clip8(-3.2))
	assert.Equal(t, uint8(255), Clip8(300))
	assert.Equal(t, uint8(128), Clip8(127.6))
	assert.Equal(t, uint8(127), Clip8(127.4))
}
