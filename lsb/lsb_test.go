package lsb

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func cover(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, color.RGBA{
				R: uint8(x * 3),
				G: uint8(y * 3),
				B: uint8(x + y),
				A: 255,
			})
		}
	}
	return img
}

func TestHideReveal_RoundTrip(t *testing.T) {
	src := cover(64, 64)
	const msg = "hidden note"

	stego, err := Hide(src, msg)
	require.NoError(t, err)
	assert.Equal(t, src.Bounds().Dx(), stego.Bounds().Dx())
	assert.Equal(t, src.Bounds().Dy(), stego.Bounds().Dy())

	got, err := Reveal(stego)
	require.NoError(t, err)
	assert.Equal(t, msg, got)
}

func TestHide_TooLarge(t *testing.T) {
	src := cover(4, 4)
	big := make([]byte, 4096)
	_, err := Hide(src, string(big))
	assert.ErrorIs(t, err, ErrTooLarge)
}
