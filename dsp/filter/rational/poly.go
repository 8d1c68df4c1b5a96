package rational

import "math"

// Epsilon is the magnitude below which a coefficient is treated as zero.
const Epsilon = 1e-10

// Trim returns a copy of c without leading coefficients whose magnitude is
// below Epsilon. At least one coefficient is always kept, so Trim of an
// all-zero polynomial is its constant term. Trim(nil) returns nil.
func Trim(c []float64) []float64 {
	if len(c) == 0 {
		return nil
	}

	start := 0
	for start < len(c)-1 && math.Abs(c[start]) < Epsilon {
		start++
	}

	out := make([]float64, len(c)-start)
	copy(out, c[start:])

	return out
}

// PolyMul multiplies two polynomials given highest degree first.
func PolyMul(a, b []float64) []float64 {
	if len(a) == 0 || len(b) == 0 {
		return nil
	}

	out := make([]float64, len(a)+len(b)-1)
	for i := range a {
		for j := range b {
			out[i+j] += a[i] * b[j]
		}
	}

	return out
}

// PolyPow raises p to the non-negative power k. PolyPow(p, 0) is [1].
func PolyPow(p []float64, k int) []float64 {
	out := []float64{1}
	for range k {
		out = PolyMul(out, p)
	}

	return out
}

// Binomial returns the binomial coefficient C(n, k) as a float64.
// It is zero when k < 0 or k > n.
func Binomial(n, k int) float64 {
	if k < 0 || k > n {
		return 0
	}

	if k > n-k {
		k = n - k
	}

	result := 1.0
	for i := range k {
		result *= float64(n - i)
		result /= float64(i + 1)
	}

	return result
}

// evalPoly evaluates c (highest degree first) at x using Horner's method.
func evalPoly(c []float64, x complex128) complex128 {
	var v complex128
	for _, ci := range c {
		v = v*x + complex(ci, 0)
	}

	return v
}
