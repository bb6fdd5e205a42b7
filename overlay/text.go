package overlay

import (
	"fmt"
	"image"
	"image/color"
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// Text anchor positions.
const (
	PositionTop    = "top"
	PositionBottom = "bottom"
	PositionCenter = "center"
)

// TextConfig controls text placement and style. Zero values fall back to the
// defaults noted per field.
type TextConfig struct {
	Position string       // "top", "bottom" (default) or "center"
	At       *image.Point // explicit top-left corner, overrides Position
	Opacity  float64      // 0 means default 0.4
	FontSize float64      // 0 means default 20
	Color    color.NRGBA  // alpha ignored; zero value means black
	FontPath string       // optional TTF/OTF path, embedded Go Regular otherwise
}

func (c *TextConfig) fill() {
	if c.Position == "" {
		c.Position = PositionBottom
	}
	if c.Opacity == 0 {
		c.Opacity = 0.4
	}
	if c.FontSize == 0 {
		c.FontSize = 20
	}
}

// Text draws text over a copy of src with the given opacity. The default
// placement tucks the line into the bottom-left corner.
func Text(src image.Image, text string, cfg TextConfig) (image.Image, error) {
	if err := checkBounds(src); err != nil {
		return nil, err
	}
	cfg.fill()

	face, err := newFace(cfg.FontPath, cfg.FontSize)
	if err != nil {
		return nil, err
	}
	defer face.Close()

	bounds := src.Bounds()
	w, h := bounds.Dx(), bounds.Dy()

	var at image.Point
	switch {
	case cfg.At != nil:
		at = *cfg.At
	case cfg.Position == PositionTop:
		at = image.Pt(10, 10)
	case cfg.Position == PositionCenter:
		at = image.Pt((w-font.MeasureString(face, text).Ceil())/2, h/2)
	default:
		at = image.Pt(10, h-int(cfg.FontSize)-20)
	}

	layer := image.NewNRGBA(image.Rect(0, 0, w, h))
	col := cfg.Color
	col.A = alpha8(cfg.Opacity)
	drawer := font.Drawer{
		Dst:  layer,
		Src:  image.NewUniform(col),
		Face: face,
		// Dot is the baseline; shift down so At is the top-left corner.
		Dot: fixed.P(at.X, at.Y+int(cfg.FontSize)),
	}
	drawer.DrawString(text)

	return compose(src, layer), nil
}

// newFace loads the font at path, falling back to the embedded Go Regular
// face when no path is given or the file cannot be read.
func newFace(path string, size float64) (font.Face, error) {
	data := goregular.TTF
	if path != "" {
		if custom, err := os.ReadFile(path); err == nil {
			data = custom
		}
	}
	parsed, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}
	face, err := opentype.NewFace(parsed, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("create font face: %w", err)
	}
	return face, nil
}
