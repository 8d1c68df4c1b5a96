package analog

import "math"

// besselDenominator fills slot k (power order-k) with the reverse Bessel
// coefficient (2n-k)! / (2^(n-k)·k!·(n-k)!) scaled by cutoff^(order-k).
func besselDenominator(order int, cutoff float64) []float64 {
	den := make([]float64, order+1)

	for k := 0; k <= order; k++ {
		den[k] = besselCoefficient(order, k) * math.Pow(cutoff, float64(order-k))
	}

	return den
}

// besselCoefficient evaluates (2n-k)! / (2^(n-k)·k!·(n-k)!) in floating
// point. Large orders overflow and New rejects the non-finite result.
func besselCoefficient(n, k int) float64 {
	return factorial(2*n-k) / (math.Pow(2, float64(n-k)) * factorial(k) * factorial(n-k))
}

func factorial(n int) float64 {
	f := 1.0
	for i := 2; i <= n; i++ {
		f *= float64(i)
	}

	return f
}
