package bilinear

import (
	"math"

	"github.com/cwbudde/algo-bilinear/dsp/filter/rational"
)

// Inverse maps the discrete tf back to the analog domain by substituting
// z = (2+sT)/(2-sT). The common factor (2-sT)^m cancels, so the power k
// coefficient contributes c_k·(2+sT)^k·(2-sT)^(m-k). The result is scaled
// so the s^m coefficient of the denominator is one; it fails when that
// coefficient vanishes, which happens for a discrete pole at z = -1.
func Inverse(tf rational.TransferFunction, T float64) (rational.TransferFunction, error) {
	if err := checkInput(tf, T); err != nil {
		return rational.TransferFunction{}, err
	}

	m := tf.Degree()

	plus := binomialPowers([]float64{T, 2}, m)
	minus := binomialPowers([]float64{-T, 2}, m)

	num := substitute(tf.Numerator(), m, plus, minus)
	den := substitute(tf.Denominator(), m, plus, minus)

	lead := den[0]
	if math.Abs(lead) < rational.Epsilon {
		return rational.TransferFunction{}, rational.Invalidf("denominator",
			"leading s^%d coefficient %g vanishes after inverse mapping", m, lead)
	}

	for i := range num {
		num[i] /= lead
		den[i] /= lead
	}

	return rational.New(num, den, rational.VarS)
}

func substitute(c []float64, m int, plus, minus [][]float64) []float64 {
	out := make([]float64, m+1)
	deg := len(c) - 1

	for idx, coeff := range c {
		if coeff == 0 {
			continue
		}

		k := deg - idx

		term := rational.PolyMul(plus[k], minus[m-k])
		for j, v := range term {
			out[j] += coeff * v
		}
	}

	return out
}
