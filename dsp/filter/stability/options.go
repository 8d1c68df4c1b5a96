package stability

import (
	"math/rand/v2"

	"github.com/cwbudde/algo-bilinear/internal/polyroot"
)

type config struct {
	src polyroot.Source
}

// Option configures an analysis.
type Option func(*config)

// WithSeed makes root finding reproducible: equal seeds on equal inputs give
// identical root sets.
func WithSeed(seed uint64) Option {
	return func(cfg *config) {
		cfg.src = rand.New(rand.NewPCG(seed, seed))
	}
}

// WithSource draws starting points from src. A nil source is ignored.
func WithSource(src polyroot.Source) Option {
	return func(cfg *config) {
		if src != nil {
			cfg.src = src
		}
	}
}

func applyOptions(opts ...Option) config {
	var cfg config

	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	if cfg.src == nil {
		cfg.src = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}

	return cfg
}
