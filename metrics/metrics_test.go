package metrics

import (
	"image"
	"image/color"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func solid(w, h int, c color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, c)
		}
	}
	return img
}

func TestMSE(t *testing.T) {
	a := solid(8, 8, color.RGBA{R: 100, G: 100, B: 100, A: 255})

	t.Run("identical", func(t *testing.T) {
		mse, err := MSE(a, a)
		require.NoError(t, err)
		assert.Zero(t, mse)
	})

	t.Run("uniform_offset", func(t *testing.T) {
		b := solid(8, 8, color.RGBA{R: 110, G: 100, B: 100, A: 255})
		mse, err := MSE(a, b)
		require.NoError(t, err)
		// One channel off by 10 on every pixel: 100/3.
		assert.InDelta(t, 100.0/3.0, mse, 1e-9)
	})

	t.Run("size_mismatch", func(t *testing.T) {
		_, err := MSE(a, solid(8, 9, color.RGBA{A: 255}))
		assert.ErrorIs(t, err, ErrSizeMismatch)
	})
}

func TestPSNR(t *testing.T) {
	a := solid(8, 8, color.RGBA{R: 100, G: 100, B: 100, A: 255})

	t.Run("identical_is_inf", func(t *testing.T) {
		psnr, err := PSNR(a, a)
		require.NoError(t, err)
		assert.True(t, math.IsInf(psnr, 1))
	})

	t.Run("known_value", func(t *testing.T) {
		b := solid(8, 8, color.RGBA{R: 110, G: 100, B: 100, A: 255})
		psnr, err := PSNR(a, b)
		require.NoError(t, err)
		want := 10 * math.Log10(255*255/(100.0/3.0))
		assert.InDelta(t, want, psnr, 1e-9)
	})
}

func TestHeatmap(t *testing.T) {
	a := solid(4, 4, color.RGBA{R: 100, G: 100, B: 100, A: 255})
	b := solid(4, 4, color.RGBA{R: 100, G: 100, B: 100, A: 255})
	b.SetRGBA(2, 1, color.RGBA{R: 101, G: 100, B: 100, A: 255})

	hm, err := Heatmap(a, b)
	require.NoError(t, err)

	assert.Equal(t, color.RGBA{A: 255}, hm.RGBAAt(0, 0), "untouched pixel is black")
	assert.Equal(t, color.RGBA{R: 8, A: 255}, hm.RGBAAt(2, 1), "one-step diff amplified to 8")
}
