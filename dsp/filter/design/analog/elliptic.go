package analog

import "math"

// ellipticPole scales the unit-circle angles by the passband ε and the
// stopband ξ = 1/√(10^(A/10) - 1): p_k = cutoff·(-ε·sin θ_k + j·ξ·cos θ_k).
func ellipticPole(s Spec) poleFunc {
	eps := rippleEpsilon(s.Ripple)
	xi := 1 / math.Sqrt(math.Pow(10, s.StopbandAttenuation/10)-1)

	return func(k int) complex128 {
		theta := poleAngle(k, s.Order)
		return complex(-s.Cutoff*eps*math.Sin(theta), s.Cutoff*xi*math.Cos(theta))
	}
}

// ellipticGain is 10^(-r/20).
func ellipticGain(s Spec) float64 {
	return math.Pow(10, -s.Ripple/20)
}
