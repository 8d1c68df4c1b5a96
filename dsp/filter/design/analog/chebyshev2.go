package analog

import "math"

// chebyshev2Pole uses ε = 1/√(10^(A/10) - 1) and v = asinh(1/ε)/order:
// p_k = cutoff·(-sin θ_k / sinh v + j·cos θ_k / cosh v).
func chebyshev2Pole(s Spec) poleFunc {
	eps := 1 / math.Sqrt(math.Pow(10, s.StopbandAttenuation/10)-1)
	v := math.Asinh(1/eps) / float64(s.Order)
	sh, ch := math.Sinh(v), math.Cosh(v)

	return func(k int) complex128 {
		theta := poleAngle(k, s.Order)
		return complex(-s.Cutoff*math.Sin(theta)/sh, s.Cutoff*math.Cos(theta)/ch)
	}
}

// chebyshev2Gain is 1/√(10^(A/10)).
func chebyshev2Gain(s Spec) float64 {
	return 1 / math.Sqrt(math.Pow(10, s.StopbandAttenuation/10))
}
