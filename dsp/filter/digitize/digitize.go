package digitize

import (
	"fmt"

	"github.com/cwbudde/algo-bilinear/dsp/filter/bilinear"
	"github.com/cwbudde/algo-bilinear/dsp/filter/design/analog"
	"github.com/cwbudde/algo-bilinear/dsp/filter/rational"
	"github.com/cwbudde/algo-bilinear/dsp/filter/stability"
)

// Request selects the analog source and the sampling period.
type Request struct {
	// Numerator and Denominator are analog coefficients, highest power
	// first. They are ignored when Design is set.
	Numerator   []float64
	Denominator []float64

	// Design, when non-nil, synthesises the analog prototype instead.
	Design *analog.Spec

	// SamplingPeriod is T in seconds.
	SamplingPeriod float64
}

// Result is the outcome of Run.
type Result struct {
	Analog    rational.TransferFunction
	PreWarped rational.TransferFunction
	Discrete  rational.TransferFunction

	// CriticalFrequency is ω_d and PreWarpedFrequency the matching ω_a,
	// both in rad/s. PreWarpedFrequency is zero when pre-warping is off.
	CriticalFrequency  float64
	PreWarpedFrequency float64

	Poles  []complex128
	Zeros  []complex128
	Stable bool
	// Complete is false when root finding stopped before every pole and
	// zero was found; Stable then judges the poles found so far.
	Complete bool

	designed bool
}

// Designed reports whether the result came from an analog.Spec.
func (r Result) Designed() bool { return r.designed }

// Run executes the request.
func Run(req Request, opts ...Option) (Result, error) {
	cfg := applyOptions(opts...)

	res := Result{CriticalFrequency: cfg.omegaD}

	var err error

	if req.Design != nil {
		res.designed = true

		res.Discrete, err = analog.Design(*req.Design, req.SamplingPeriod)
		if err != nil {
			return Result{}, fmt.Errorf("digitize: design %v: %w", req.Design.Family, err)
		}

		res.Analog, err = res.Discrete.WithVariable(rational.VarS)
		if err != nil {
			return Result{}, err
		}
	} else {
		res.Analog, err = rational.New(req.Numerator, req.Denominator, rational.VarS)
		if err != nil {
			return Result{}, fmt.Errorf("digitize: analog coefficients: %w", err)
		}
	}

	res.PreWarped = res.Analog

	if cfg.prewarp {
		res.PreWarpedFrequency, err = bilinear.PreWarpedFrequency(cfg.omegaD, req.SamplingPeriod)
		if err != nil {
			return Result{}, fmt.Errorf("digitize: pre-warp: %w", err)
		}

		res.PreWarped, err = bilinear.ApplyPreWarping(res.Analog, cfg.omegaD, res.PreWarpedFrequency)
		if err != nil {
			return Result{}, fmt.Errorf("digitize: pre-warp: %w", err)
		}
	}

	if !res.designed {
		res.Discrete, err = bilinear.Transform(res.PreWarped, req.SamplingPeriod)
		if err != nil {
			return Result{}, fmt.Errorf("digitize: bilinear transform: %w", err)
		}
	}

	a := stability.New(res.Discrete, cfg.analysis...)
	res.Poles = a.Poles()
	res.Zeros = a.Zeros()
	res.Stable = a.IsStable()
	res.Complete = a.Complete()

	return res, nil
}
