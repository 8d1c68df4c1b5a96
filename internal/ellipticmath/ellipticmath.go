// Package ellipticmath evaluates complete elliptic integrals of the first
// kind for elliptic filter order estimation.
package ellipticmath

import "math"

const (
	// landenTol ends the descending Landen sequence once the modulus falls
	// below it.
	landenTol = 1e-15

	// kMin bounds the moduli handled by the Landen product; closer to 0
	// or 1 the logarithmic asymptote is used.
	kMin = 1e-6
)

// landen returns the descending Landen moduli of k.
func landen(k float64) []float64 {
	if k == 0 || k == 1 {
		return []float64{k}
	}

	var v []float64

	for k > landenTol {
		t := k / (1 + math.Sqrt((1-k)*(1+k)))
		k = t * t
		v = append(v, k)
	}

	return v
}

// landenK is K = (π/2)·∏(1 + v_i).
func landenK(v []float64) float64 {
	prod := 1.0
	for _, x := range v {
		prod *= 1 + x
	}

	return prod * math.Pi / 2
}

// complement is k' = √(1 - k²).
func complement(k float64) float64 { return math.Sqrt((1 - k) * (1 + k)) }

// asymptote is K for a modulus whose complement m is tiny:
// K ≈ L + (L - 1)·m²/4 with L = ln(4/m).
func asymptote(m float64) float64 {
	l := -math.Log(m / 4)
	return l + (l-1)*m*m/4
}

// K returns the complete elliptic integral K(k) and its complement
// K'(k) = K(√(1-k²)) for a modulus in [0, 1]. K(1) and K'(0) are +Inf.
func K(k float64) (kk, kp float64) {
	kMax := complement(kMin)

	switch {
	case k == 1:
		kk = math.Inf(1)
	case k > kMax:
		kk = asymptote(complement(k))
	default:
		kk = landenK(landen(k))
	}

	switch {
	case k == 0:
		kp = math.Inf(1)
	case k < kMin:
		kp = asymptote(k)
	default:
		kp = landenK(landen(complement(k)))
	}

	return kk, kp
}

// Ratio returns K(k)/K'(k), the quantity elliptic degree equations are
// written in.
func Ratio(k float64) float64 {
	kk, kp := K(k)
	return kk / kp
}
