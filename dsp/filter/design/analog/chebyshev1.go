package analog

import "math"

// chebyshev1Pole places poles on an ellipse:
// p_k = cutoff·(-sinh v·sin θ_k + j·cosh v·cos θ_k), v = asinh(1/ε)/order.
func chebyshev1Pole(s Spec) poleFunc {
	v := math.Asinh(1/rippleEpsilon(s.Ripple)) / float64(s.Order)
	sh, ch := math.Sinh(v), math.Cosh(v)

	return func(k int) complex128 {
		theta := poleAngle(k, s.Order)
		return complex(-s.Cutoff*sh*math.Sin(theta), s.Cutoff*ch*math.Cos(theta))
	}
}

// chebyshev1Gain is 10^(-r/20), further divided by √(1+ε²) for odd orders.
func chebyshev1Gain(s Spec) float64 {
	gain := math.Pow(10, -s.Ripple/20)
	if s.Order%2 != 0 {
		eps := rippleEpsilon(s.Ripple)
		gain /= math.Sqrt(1 + eps*eps)
	}

	return gain
}
