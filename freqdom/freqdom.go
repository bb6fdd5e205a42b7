// Package freqdom hides message bits in the spatial-frequency domain of an
// image. The luminance plane is run through an orthonormal 2-D discrete
// cosine transform, mid-frequency coefficients are nudged up or down by a
// strength value to encode bits, and the plane is transformed back. Chroma
// is never touched.
package freqdom

import (
	"context"
	"errors"
	"image"

	"github.com/vizprobe/vizprobe/internal/dct"
	"github.com/vizprobe/vizprobe/internal/ycbcr"
	"github.com/vizprobe/vizprobe/message"
)

var (
	ErrInvalidImage = errors.New("image has zero extent")
	ErrTooLong      = errors.New("payload exceeds image capacity")
)

// DefaultStrength is the coefficient perturbation applied per bit. Larger
// values survive more post-processing at the cost of visible noise.
const DefaultStrength = 10.0

// transforms caches DCT basis matrices per plane size. Read-mostly and
// concurrency safe; every call still owns its own coefficient grid.
var transforms = dct.NewCache()

// Result reports how much of a payload actually landed in the image.
type Result struct {
	// Capacity is the maximum number of embeddable bits, rows*cols/2.
	Capacity int
	// EmbeddedBits is the number of payload bits written.
	EmbeddedBits int
	// DroppedBits counts payload bits beyond capacity, silently dropped.
	DroppedBits int
}

// Capacity returns the number of message bits an image of the given bounds
// can carry: half the coefficient count of its luminance plane.
func Capacity(bounds image.Rectangle) int {
	return bounds.Dx() * bounds.Dy() / 2
}

// Embed hides payload in src with the given options. This is a convenience
// wrapper around New and Embedder.Embed.
func Embed(ctx context.Context, src image.Image, payload *message.Payload, opts ...Option) (image.Image, Result, error) {
	e, err := New(opts...)
	if err != nil {
		return nil, Result{}, err
	}
	return e.Embed(ctx, src, payload)
}

// Embedder applies frequency-domain embedding with a fixed strength.
type Embedder struct {
	strength float64
}

func New(opts ...Option) (*Embedder, error) {
	e := &Embedder{strength: DefaultStrength}
	for _, opt := range opts {
		if err := opt(e); err != nil {
			return nil, err
		}
	}
	return e, nil
}

// Embed returns a new image of identical dimensions and color mode with
// payload bits encoded in mid-frequency luminance coefficients. The source
// image is never mutated; identical inputs produce identical outputs.
//
// Payload bits beyond capacity are dropped, reported via Result. An empty
// payload is a plain transform round trip, not an error.
func (e *Embedder) Embed(_ context.Context, src image.Image, payload *message.Payload) (image.Image, Result, error) {
	bounds := src.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w <= 0 || h <= 0 {
		return nil, Result{}, ErrInvalidImage
	}

	res := Result{Capacity: Capacity(bounds)}
	res.EmbeddedBits = min(payload.Len(), res.Capacity)
	res.DroppedBits = payload.Len() - res.EmbeddedBits

	if gray, ok := src.(*image.Gray); ok {
		plane := grayPlane(gray)
		e.embedPlane(plane, w, h, payload, res.EmbeddedBits)
		return buildGray(plane, bounds), res, nil
	}

	y, cb, cr, alpha := ycbcr.Split(src)
	e.embedPlane(y, w, h, payload, res.EmbeddedBits)
	return ycbcr.Join(y, cb, cr, alpha, bounds), res, nil
}

// embedPlane transforms plane in place: forward DCT, bit encoding at the
// mapped mid-band positions, inverse DCT, then clip and round to the 8-bit
// sample range.
func (e *Embedder) embedPlane(plane []float64, w, h int, payload *message.Payload, n int) {
	t := transforms.Get(w, h)
	coeffs := t.Forward(plane)

	rows, cols := h, w
	for i := range n {
		row, col := position(i, rows, cols)
		v := abs(coeffs.At(row, col))
		if payload.Bit(i) {
			v += e.strength
		} else {
			v -= e.strength
		}
		coeffs.Set(row, col, v)
	}

	rec := t.Inverse(coeffs)
	for i, v := range rec {
		plane[i] = float64(ycbcr.Clip8(v))
	}
}

// position maps a bit index to a mid-band coefficient, excluding the lowest
// and highest quarter of indices on each axis. The mapping is a fixed
// function of index and grid shape; a paired extractor depends on it.
func position(i, rows, cols int) (row, col int) {
	row = (i%rows)/2 + rows/4
	col = (i/rows)/2 + cols/4
	return row, col
}

// Extract recovers payload bits from a marked image by comparing its
// luminance coefficients against those of the unmarked original: a bit is 1
// where the marked coefficient exceeds the original's magnitude. Extraction
// is non-blind; without the original there is no reference magnitude.
//
// Note the position mapping assigns consecutive bit indices to a shared
// coefficient, so recovery is exact only where colliding bits agree.
func Extract(_ context.Context, original, marked image.Image, dec *message.Decoder) (message.Decoded, error) {
	ob, mb := original.Bounds(), marked.Bounds()
	w, h := ob.Dx(), ob.Dy()
	if w <= 0 || h <= 0 {
		return message.Decoded{}, ErrInvalidImage
	}
	if w != mb.Dx() || h != mb.Dy() {
		return message.Decoded{}, errors.New("original and marked dimensions differ")
	}
	if dec.Len() > Capacity(ob) {
		return message.Decoded{}, ErrTooLong
	}

	t := transforms.Get(w, h)
	origCoeffs := t.Forward(luminance(original))
	markCoeffs := t.Forward(luminance(marked))

	rows, cols := h, w
	bits := make([]bool, dec.Len())
	for i := range bits {
		row, col := position(i, rows, cols)
		bits[i] = markCoeffs.At(row, col) > abs(origCoeffs.At(row, col))
	}
	return dec.Decode(bits), nil
}

func luminance(src image.Image) []float64 {
	if gray, ok := src.(*image.Gray); ok {
		return grayPlane(gray)
	}
	y, _, _, _ := ycbcr.Split(src)
	return y
}

func grayPlane(src *image.Gray) []float64 {
	bounds := src.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	plane := make([]float64, w*h)
	idx := 0
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			plane[idx] = float64(src.GrayAt(x, y).Y)
			idx++
		}
	}
	return plane
}

func buildGray(plane []float64, bounds image.Rectangle) *image.Gray {
	dist := image.NewGray(bounds)
	idx := 0
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			dist.Pix[dist.PixOffset(x, y)] = uint8(plane[idx])
			idx++
		}
	}
	return dist
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
