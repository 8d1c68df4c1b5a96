package digitize

import (
	"github.com/cwbudde/algo-bilinear/dsp/filter/stability"
	"github.com/cwbudde/algo-bilinear/internal/polyroot"
)

// DefaultCriticalFrequency is the automatic pre-warping frequency in rad/s.
const DefaultCriticalFrequency = 1.0

type config struct {
	omegaD   float64
	prewarp  bool
	analysis []stability.Option
}

// Option configures Run.
type Option func(*config)

func defaultConfig() config {
	return config{
		omegaD:  DefaultCriticalFrequency,
		prewarp: true,
	}
}

// WithCriticalFrequency sets the frequency ω_d that pre-warping keeps
// exact. Non-positive values keep the default.
func WithCriticalFrequency(omegaD float64) Option {
	return func(cfg *config) {
		if omegaD > 0 {
			cfg.omegaD = omegaD
		}
	}
}

// WithoutPreWarp maps manual coefficients without rescaling them first.
func WithoutPreWarp() Option {
	return func(cfg *config) {
		cfg.prewarp = false
	}
}

// WithSeed makes the stability analysis reproducible.
func WithSeed(seed uint64) Option {
	return func(cfg *config) {
		cfg.analysis = append(cfg.analysis, stability.WithSeed(seed))
	}
}

// WithSource draws root-finding starting points from src.
func WithSource(src polyroot.Source) Option {
	return func(cfg *config) {
		cfg.analysis = append(cfg.analysis, stability.WithSource(src))
	}
}

func applyOptions(opts ...Option) config {
	cfg := defaultConfig()

	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}
