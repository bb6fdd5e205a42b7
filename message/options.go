package message

// DefaultShuffleSeed seeds the deterministic shuffle used by WithGolay when
// callers have no reason to pick their own.
var DefaultShuffleSeed int64 = 1234567890

// Option selects the payload encoding algorithm.
type Option func(*config)

type config struct {
	enc encoder
}

func apply(opts []Option) encoder {
	var c config
	for _, opt := range opts {
		opt(&c)
	}
	if c.enc == nil {
		c.enc = plain{}
	}
	return c.enc
}

// WithoutECC uses the payload bits as-is. This is the default; extraction
// then requires every embedded bit to survive.
func WithoutECC() Option {
	return func(c *config) {
		c.enc = plain{}
	}
}

// WithGolay encodes the payload with a Golay code and deterministically
// shuffles the encoded bits with seed, spreading burst damage across
// codewords. Embedder and extractor must agree on the seed.
func WithGolay(seed int64) Option {
	return func(c *config) {
		c.enc = shuffledGolay(seed)
	}
}
