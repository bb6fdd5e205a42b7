package vizprobe

import (
	"context"
	"image"

	"github.com/vizprobe/vizprobe/freqdom"
	"github.com/vizprobe/vizprobe/lsb"
	"github.com/vizprobe/vizprobe/message"
	"github.com/vizprobe/vizprobe/overlay"
)

// Step is one named perturbation in an Apply chain.
type Step struct {
	Name  string
	apply func(context.Context, image.Image) (image.Image, error)
}

// TextStep overlays semi-transparent text.
func TextStep(text string, cfg overlay.TextConfig) Step {
	return Step{
		Name: "text-overlay",
		apply: func(_ context.Context, img image.Image) (image.Image, error) {
			return overlay.Text(img, text, cfg)
		},
	}
}

// PatternStep overlays a low-opacity geometric pattern.
func PatternStep(kind overlay.PatternKind, cfg overlay.PatternConfig) Step {
	return Step{
		Name: "pattern-overlay",
		apply: func(_ context.Context, img image.Image) (image.Image, error) {
			return overlay.Pattern(img, kind, cfg)
		},
	}
}

// QRStep stamps a QR code holding content onto the image.
func QRStep(content string, cfg overlay.QRConfig) Step {
	return Step{
		Name: "qr-overlay",
		apply: func(_ context.Context, img image.Image) (image.Image, error) {
			return overlay.QR(img, content, cfg)
		},
	}
}

// LSBStep hides text in the least significant bits of the pixels.
func LSBStep(text string) Step {
	return Step{
		Name: "lsb-hide",
		apply: func(_ context.Context, img image.Image) (image.Image, error) {
			return lsb.Hide(img, text)
		},
	}
}

// FreqStep embeds a payload into the image's frequency domain. Truncation is
// reported by the lower level Embedder API; a chained step keeps whatever
// fit.
func FreqStep(payload *message.Payload, opts ...freqdom.Option) Step {
	return Step{
		Name: "freq-embed",
		apply: func(ctx context.Context, img image.Image) (image.Image, error) {
			e, err := freqdom.New(opts...)
			if err != nil {
				return nil, err
			}
			out, _, err := e.Embed(ctx, img, payload)
			return out, err
		},
	}
}
