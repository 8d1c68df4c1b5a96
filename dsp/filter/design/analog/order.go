package analog

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/algo-bilinear/dsp/filter/rational"
	"github.com/cwbudde/algo-bilinear/internal/ellipticmath"
)

// ErrNoOrderEstimate is returned by MinimumOrder for families without a
// closed-form order formula.
var ErrNoOrderEstimate = errors.New("analog: no order estimate for family")

// Requirement is a lowpass tolerance scheme: at most PassbandRipple dB of
// loss up to the passband edge and at least StopbandAttenuation dB from
// Selectivity times the passband edge on.
type Requirement struct {
	PassbandRipple      float64
	StopbandAttenuation float64
	// Selectivity is ω_stop/ω_pass and must exceed 1.
	Selectivity float64
}

// Validate joins one *rational.SpecError per violated field.
func (r Requirement) Validate() error {
	var errs []error

	if !positive(r.PassbandRipple) {
		errs = append(errs, rational.Invalidf("ripple", "%v dB must be positive", r.PassbandRipple))
	}

	if !positive(r.StopbandAttenuation) || r.StopbandAttenuation <= r.PassbandRipple {
		errs = append(errs, rational.Invalidf("stopband attenuation",
			"%v dB must exceed the passband ripple", r.StopbandAttenuation))
	}

	if !(r.Selectivity > 1) || math.IsInf(r.Selectivity, 1) {
		errs = append(errs, rational.Invalidf("selectivity", "%v must be finite and above 1", r.Selectivity))
	}

	return errors.Join(errs...)
}

// discrimination is (10^(As/10) - 1) / (10^(Ap/10) - 1).
func (r Requirement) discrimination() float64 {
	return math.Expm1(r.StopbandAttenuation*math.Ln10/10) / math.Expm1(r.PassbandRipple*math.Ln10/10)
}

// MinimumOrder returns the smallest order of family f meeting r.
func MinimumOrder(f Family, r Requirement) (int, error) {
	if !f.Valid() {
		return 0, rational.Invalidf("family", "unknown filter family %d", int(f))
	}

	if err := r.Validate(); err != nil {
		return 0, err
	}

	d := r.discrimination()

	var n float64

	switch f {
	case Butterworth:
		n = math.Log(d) / (2 * math.Log(r.Selectivity))
	case ChebyshevI, ChebyshevII:
		n = math.Acosh(math.Sqrt(d)) / math.Acosh(r.Selectivity)
	case Elliptic:
		n = ellipticmath.Ratio(1/r.Selectivity) / ellipticmath.Ratio(1/math.Sqrt(d))
	default:
		return 0, fmt.Errorf("%w %v", ErrNoOrderEstimate, f)
	}

	// Absorb rounding when the requirement sits exactly on an order.
	return max(1, int(math.Ceil(n-1e-9))), nil
}
