package analog

import (
	"errors"
	"math"

	"github.com/cwbudde/algo-bilinear/dsp/filter/rational"
)

// Spec describes a lowpass prototype.
type Spec struct {
	Family Family
	Order  int
	// Cutoff is the analog cutoff frequency in rad/s.
	Cutoff float64
	// Ripple is the passband ripple in dB. Required by ChebyshevI,
	// ChebyshevII and Elliptic.
	Ripple float64
	// StopbandAttenuation is in dB. Required by ChebyshevII and Elliptic.
	StopbandAttenuation float64
}

// NeedsRipple reports whether the family reads Spec.Ripple.
func (f Family) NeedsRipple() bool {
	return f == ChebyshevI || f == ChebyshevII || f == Elliptic
}

// NeedsStopband reports whether the family reads Spec.StopbandAttenuation.
func (f Family) NeedsStopband() bool {
	return f == ChebyshevII || f == Elliptic
}

// Validate checks every field and joins one *rational.SpecError per
// violation. The result matches rational.ErrInvalidSpecification.
func (s Spec) Validate() error {
	var errs []error

	if !s.Family.Valid() {
		errs = append(errs, rational.Invalidf("family", "unknown filter family %d", int(s.Family)))
	}

	if s.Order < 1 {
		errs = append(errs, rational.Invalidf("order", "%d must be at least 1", s.Order))
	}

	if !positive(s.Cutoff) {
		errs = append(errs, rational.Invalidf("cutoff", "%v must be positive and finite", s.Cutoff))
	}

	if s.Family.NeedsRipple() && !positive(s.Ripple) {
		errs = append(errs, rational.Invalidf("ripple", "%v dB must be positive for %v", s.Ripple, s.Family))
	}

	if s.Family.NeedsStopband() && !positive(s.StopbandAttenuation) {
		errs = append(errs, rational.Invalidf("stopband attenuation",
			"%v dB must be positive for %v", s.StopbandAttenuation, s.Family))
	}

	return errors.Join(errs...)
}

func positive(v float64) bool {
	return v > 0 && !math.IsInf(v, 1)
}
