package overlay

import (
	"fmt"
	"image"
	"image/color"

	qrcode "github.com/skip2/go-qrcode"
)

// QRConfig controls QR code placement. Zero values fall back to a code
// centered at 70%/70% of the image, a fifth of the image wide, at 80%
// opacity.
type QRConfig struct {
	RelX, RelY float64 // code center as a fraction of image size, defaults 0.7
	SizeFactor float64 // code width relative to image width, default 0.2
	Opacity    float64 // default 0.8
}

func (c *QRConfig) fill() {
	if c.RelX == 0 {
		c.RelX = 0.7
	}
	if c.RelY == 0 {
		c.RelY = 0.7
	}
	if c.SizeFactor == 0 {
		c.SizeFactor = 0.2
	}
	if c.Opacity == 0 {
		c.Opacity = 0.8
	}
}

// QR encodes content into a QR code and composites it over a copy of src.
func QR(src image.Image, content string, cfg QRConfig) (image.Image, error) {
	if err := checkBounds(src); err != nil {
		return nil, err
	}
	cfg.fill()

	code, err := qrcode.New(content, qrcode.Medium)
	if err != nil {
		return nil, fmt.Errorf("encode qr: %w", err)
	}

	bounds := src.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	qrWidth := max(1, int(float64(w)*cfg.SizeFactor))
	qrImg := code.Image(qrWidth)

	x := int(float64(w)*cfg.RelX) - qrWidth/2
	y := int(float64(h)*cfg.RelY) - qrWidth/2

	// Re-stamp the code with the requested opacity into a full-size layer.
	layer := image.NewNRGBA(image.Rect(0, 0, w, h))
	a := alpha8(cfg.Opacity)
	qb := qrImg.Bounds()
	for qy := 0; qy < qb.Dy(); qy++ {
		for qx := 0; qx < qb.Dx(); qx++ {
			px, py := x+qx, y+qy
			if px < 0 || py < 0 || px >= w || py >= h {
				continue
			}
			r, g, b, _ := qrImg.At(qb.Min.X+qx, qb.Min.Y+qy).RGBA()
			layer.SetNRGBA(px, py, color.NRGBA{
				R: uint8(r >> 8),
				G: uint8(g >> 8),
				B: uint8(b >> 8),
				A: a,
			})
		}
	}

	return compose(src, layer), nil
}
