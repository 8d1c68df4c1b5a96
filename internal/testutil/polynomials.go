package testutil

import "math/rand/v2"

// RandomCoefficients returns n values drawn uniformly from [lo, hi).
func RandomCoefficients(rng *rand.Rand, n int, lo, hi float64) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = lo + rng.Float64()*(hi-lo)
	}

	return out
}
