package bilinear

import (
	"math"

	"github.com/cwbudde/algo-bilinear/dsp/filter/rational"
	"github.com/cwbudde/algo-vecmath"
)

// PreWarpedFrequency returns the analog frequency (2/T)·tan(omegaD·T/2)
// that the bilinear transform maps onto the digital frequency omegaD.
func PreWarpedFrequency(omegaD, T float64) (float64, error) {
	if !(omegaD >= 0) || math.IsInf(omegaD, 1) {
		return 0, rational.Invalidf("critical frequency", "%v must be non-negative and finite", omegaD)
	}

	if err := checkPeriod(T); err != nil {
		return 0, err
	}

	return 2 / T * math.Tan(omegaD*T/2), nil
}

// ApplyPreWarping rescales the frequency axis of tf by omegaA/omegaD: the
// coefficient of s^k in both polynomials is multiplied by (omegaD/omegaA)^k.
func ApplyPreWarping(tf rational.TransferFunction, omegaD, omegaA float64) (rational.TransferFunction, error) {
	if !(omegaD > 0) || math.IsInf(omegaD, 1) {
		return rational.TransferFunction{}, rational.Invalidf("critical frequency", "%v must be positive and finite", omegaD)
	}

	if !(omegaA > 0) || math.IsInf(omegaA, 1) {
		return rational.TransferFunction{}, rational.Invalidf("pre-warped frequency", "%v must be positive and finite", omegaA)
	}

	inv := omegaD / omegaA

	return rational.New(
		scalePowers(tf.Numerator(), inv),
		scalePowers(tf.Denominator(), inv),
		tf.Variable(),
	)
}

// scalePowers multiplies the power k coefficient of c by f^k.
func scalePowers(c []float64, f float64) []float64 {
	weights := make([]float64, len(c))

	w := 1.0
	for i := len(c) - 1; i >= 0; i-- {
		weights[i] = w
		w *= f
	}

	out := make([]float64, len(c))
	vecmath.MulBlock(out, c, weights)

	return out
}
