// Package vizprobe is a toolkit for probing the robustness of multimodal
// models against visual and textual perturbations. It bundles frequency
// domain message embedding, pixel-level steganography, visible overlays and
// prompt text manipulation behind one session object that tracks what was
// applied and where results were written.
package vizprobe

import (
	"context"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/vizprobe/vizprobe/internal/fetch"
)

// Record is one applied perturbation in a session's history.
type Record struct {
	Step string
	At   time.Time
}

// Toolkit is a perturbation session. It remembers the most recent result and
// the sequence of steps applied. Safe for use from a single goroutine per
// image chain; history accessors are safe concurrently.
type Toolkit struct {
	outDir   string
	cacheDir string
	logger   zerolog.Logger
	fetcher  *fetch.Client

	mu      sync.Mutex
	last    image.Image
	history []Record
}

// New builds a Toolkit. By default results go to "./output" and logging is
// disabled.
func New(opts ...Option) (*Toolkit, error) {
	t := &Toolkit{
		outDir: "output",
		logger: zerolog.Nop(),
	}
	for _, opt := range opts {
		if err := opt(t); err != nil {
			return nil, err
		}
	}
	if t.cacheDir == "" {
		t.cacheDir = filepath.Join(t.outDir, ".cache")
	}
	t.fetcher = fetch.New(t.cacheDir, time.Second)
	if err := os.MkdirAll(t.outDir, 0o755); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}
	return t, nil
}

// Load reads an image from a local path or fetches it from an http(s) URL.
func (t *Toolkit) Load(ctx context.Context, source string) (image.Image, error) {
	if u, err := url.Parse(source); err == nil && (u.Scheme == "http" || u.Scheme == "https") {
		t.logger.Debug().Str("url", source).Msg("fetching remote image")
		return t.fetcher.Image(source)
	}

	f, err := os.Open(source)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", source, err)
	}
	defer f.Close()
	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", source, err)
	}
	return img, nil
}

// Fit center-crops img to the target aspect ratio and scales it to width x
// height.
func (t *Toolkit) Fit(img image.Image, width, height int) image.Image {
	return fetch.Fit(img, width, height)
}

// Save writes img under the output directory, as JPEG for a .jpg/.jpeg name
// and PNG otherwise. An empty name gets a generated PNG one. Returns the
// written path. Note JPEG recompression destroys LSB and frequency-domain
// payloads.
func (t *Toolkit) Save(img image.Image, name string) (string, error) {
	if name == "" {
		name = uuid.NewString() + ".png"
	}
	// Strip any directory part so names cannot escape the output dir.
	name = filepath.Base(name)
	ext := strings.ToLower(filepath.Ext(name))
	if ext != ".png" && ext != ".jpg" && ext != ".jpeg" {
		name += ".png"
		ext = ".png"
	}
	path := filepath.Join(t.outDir, name)
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	switch ext {
	case ".jpg", ".jpeg":
		err = jpeg.Encode(f, img, &jpeg.Options{Quality: 95})
	default:
		err = png.Encode(f, img)
	}
	if err != nil {
		return "", fmt.Errorf("encode %s: %w", path, err)
	}
	t.logger.Info().Str("path", path).Msg("saved image")
	return path, nil
}

// Apply runs steps in order over img, recording each in the session history.
// It stops at the first failing step.
func (t *Toolkit) Apply(ctx context.Context, img image.Image, steps ...Step) (image.Image, error) {
	current := img
	for _, step := range steps {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		next, err := step.apply(ctx, current)
		if err != nil {
			return nil, fmt.Errorf("apply %s: %w", step.Name, err)
		}
		t.logger.Debug().Str("step", step.Name).Msg("applied")
		t.record(step.Name)
		current = next
	}
	t.mu.Lock()
	t.last = current
	t.mu.Unlock()
	return current, nil
}

// Last returns the result of the most recent Apply, or nil.
func (t *Toolkit) Last() image.Image {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.last
}

// History returns a copy of the applied step records.
func (t *Toolkit) History() []Record {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make([]Record, len(t.history))
	copy(out, t.history)
	return out
}

// Reset clears the session history and last image.
func (t *Toolkit) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.last = nil
	t.history = nil
}

func (t *Toolkit) record(name string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.history = append(t.history, Record{Step: name, At: time.Now()})
}
