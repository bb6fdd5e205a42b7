package freqdom

import "errors"

type Option func(*Embedder) error

// WithStrength sets the coefficient perturbation magnitude. Zero keeps every
// coefficient magnitude in place; negative values are rejected.
func WithStrength(strength float64) Option {
	return func(e *Embedder) error {
		if strength < 0 {
			return errors.New("strength must not be negative")
		}
		e.strength = strength
		return nil
	}
}
