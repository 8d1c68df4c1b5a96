package analog

import (
	"math"

	"github.com/cwbudde/algo-bilinear/dsp/filter/bilinear"
	"github.com/cwbudde/algo-bilinear/dsp/filter/rational"
)

// poleFunc returns the k-th prototype pole, k = 1..order.
type poleFunc func(k int) complex128

// Prototype returns the analog prototype for s in the variable 's'.
func Prototype(s Spec) (rational.TransferFunction, error) {
	if err := s.Validate(); err != nil {
		return rational.TransferFunction{}, err
	}

	var num, den []float64

	switch s.Family {
	case Butterworth:
		num = []float64{math.Pow(s.Cutoff, float64(s.Order))}
		den = poleDenominator(s.Order, butterworthPole(s))
	case ChebyshevI:
		num = []float64{chebyshev1Gain(s)}
		den = poleDenominator(s.Order, chebyshev1Pole(s))
	case ChebyshevII:
		num = gainNumerator(s.Order, chebyshev2Gain(s))
		den = poleDenominator(s.Order, chebyshev2Pole(s))
	case Elliptic:
		num = gainNumerator(s.Order, ellipticGain(s))
		den = poleDenominator(s.Order, ellipticPole(s))
	case Bessel:
		num = []float64{math.Pow(s.Cutoff, float64(s.Order))}
		den = besselDenominator(s.Order, s.Cutoff)
	}

	return rational.New(num, den, rational.VarS)
}

// Design builds the prototype for s and maps it to the z-domain with
// sampling period T.
func Design(s Spec, T float64) (rational.TransferFunction, error) {
	proto, err := Prototype(s)
	if err != nil {
		return rational.TransferFunction{}, err
	}

	return bilinear.Transform(proto, T)
}

// poleDenominator assigns one scalar per pole: the slot of power k receives
// |p_k|² for even k and -2·Re(p_k) for odd k. The leading slot starts at 1
// and is replaced by the k = order entry; the constant slot is left at zero.
func poleDenominator(order int, pole poleFunc) []float64 {
	den := make([]float64, order+1)
	den[0] = 1

	for k := 1; k <= order; k++ {
		p := pole(k)

		if k%2 == 0 {
			den[order-k] = real(p)*real(p) + imag(p)*imag(p)
		} else {
			den[order-k] = -2 * real(p)
		}
	}

	return den
}

// gainNumerator returns an order+1 numerator whose only non-zero entry is
// the constant term.
func gainNumerator(order int, gain float64) []float64 {
	num := make([]float64, order+1)
	num[order] = gain

	return num
}

// poleAngle is θ_k = π(2k-1)/(2·order).
func poleAngle(k, order int) float64 {
	return math.Pi * float64(2*k-1) / float64(2*order)
}

// rippleEpsilon converts a dB ripple to ε = √(10^(r/10) - 1).
func rippleEpsilon(rippleDB float64) float64 {
	return math.Sqrt(math.Pow(10, rippleDB/10) - 1)
}
