package analog

import "math"

// butterworthPole places poles on a circle of radius cutoff:
// p_k = cutoff·(-sin θ_k + j·cos θ_k).
func butterworthPole(s Spec) poleFunc {
	return func(k int) complex128 {
		theta := poleAngle(k, s.Order)
		return complex(-s.Cutoff*math.Sin(theta), s.Cutoff*math.Cos(theta))
	}
}
