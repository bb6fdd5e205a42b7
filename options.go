package vizprobe

import (
	"errors"

	"github.com/rs/zerolog"
)

type Option func(*Toolkit) error

// WithOutputDir sets where Save writes images.
func WithOutputDir(dir string) Option {
	return func(t *Toolkit) error {
		if dir == "" {
			return errors.New("output dir must not be empty")
		}
		t.outDir = dir
		return nil
	}
}

// WithCacheDir sets the directory for cached remote image responses.
func WithCacheDir(dir string) Option {
	return func(t *Toolkit) error {
		if dir == "" {
			return errors.New("cache dir must not be empty")
		}
		t.cacheDir = dir
		return nil
	}
}

// WithLogger attaches a logger. The default discards everything.
func WithLogger(logger zerolog.Logger) Option {
	return func(t *Toolkit) error {
		t.logger = logger
		return nil
	}
}
