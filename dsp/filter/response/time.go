package response

import (
	"math"

	"github.com/cwbudde/algo-bilinear/dsp/filter/rational"
)

// DefaultSamples is the length of Impulse and Step.
const DefaultSamples = 50

// Simulate runs x through the causal difference equation of the discrete
// tf. The numerator degree must not exceed the denominator degree and the
// leading denominator coefficient must not vanish.
func Simulate(tf rational.TransferFunction, x []float64) ([]float64, error) {
	b, a, err := differenceCoefficients(tf)
	if err != nil {
		return nil, err
	}

	y := make([]float64, len(x))

	for n := range x {
		acc := 0.0

		for k, bk := range b {
			if n-k < 0 {
				break
			}

			acc += bk * x[n-k]
		}

		for k := 1; k < len(a); k++ {
			if n-k < 0 {
				break
			}

			acc -= a[k] * y[n-k]
		}

		y[n] = acc
	}

	return y, nil
}

// Impulse returns the first n samples of the impulse response; n <= 0
// selects DefaultSamples.
func Impulse(tf rational.TransferFunction, n int) ([]float64, error) {
	if n <= 0 {
		n = DefaultSamples
	}

	x := make([]float64, n)
	x[0] = 1

	return Simulate(tf, x)
}

// Step returns the first n samples of the step response; n <= 0 selects
// DefaultSamples.
func Step(tf rational.TransferFunction, n int) ([]float64, error) {
	if n <= 0 {
		n = DefaultSamples
	}

	x := make([]float64, n)
	for i := range x {
		x[i] = 1
	}

	return Simulate(tf, x)
}

// differenceCoefficients returns b and a in powers of z^-1, normalised so
// that a[0] = 1 (the leading a[0] is dropped from the recursion).
func differenceCoefficients(tf rational.TransferFunction) (b, a []float64, err error) {
	num := tf.Numerator()
	den := tf.Denominator()

	if len(num) > len(den) {
		return nil, nil, rational.Invalidf("numerator",
			"degree %d exceeds denominator degree %d, system is not causal", len(num)-1, len(den)-1)
	}

	a0 := den[0]
	if math.Abs(a0) < rational.Epsilon {
		return nil, nil, rational.Invalidf("denominator", "leading coefficient %g vanishes", a0)
	}

	// Dividing by z^N aligns the numerator to the denominator's delays.
	b = make([]float64, len(den))
	offset := len(den) - len(num)

	for i, v := range num {
		b[offset+i] = v / a0
	}

	a = make([]float64, len(den))
	for i, v := range den {
		a[i] = v / a0
	}

	return b, a, nil
}
