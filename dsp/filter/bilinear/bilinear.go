package bilinear

import (
	"math"

	"github.com/cwbudde/algo-bilinear/dsp/filter/rational"
)

// Transform maps the analog tf to the discrete domain with sampling period
// T. Both polynomials of the result have degree m = tf.Degree() before
// leading near-zero coefficients are stripped. The result uses 'z'.
func Transform(tf rational.TransferFunction, T float64) (rational.TransferFunction, error) {
	if err := checkInput(tf, T); err != nil {
		return rational.TransferFunction{}, err
	}

	m := tf.Degree()
	k := 2 / T

	plus := binomialPowers([]float64{1, 1}, m)
	minus := binomialPowers([]float64{1, -1}, m)

	num := expand(tf.Numerator(), k, m, minus, plus)
	den := expand(tf.Denominator(), k, m, minus, plus)

	return rational.New(num, den, rational.VarZ)
}

// binomialPowers returns base^0 .. base^m built by repeated multiplication.
func binomialPowers(base []float64, m int) [][]float64 {
	out := make([][]float64, m+1)

	out[0] = []float64{1}
	for i := 1; i <= m; i++ {
		out[i] = rational.PolyMul(out[i-1], base)
	}

	return out
}

// expand sums c_i·k^i·(z-1)^i·(z+1)^(m-i) over the coefficients of c.
func expand(c []float64, k float64, m int, minus, plus [][]float64) []float64 {
	out := make([]float64, m+1)
	deg := len(c) - 1

	for idx, coeff := range c {
		if coeff == 0 {
			continue
		}

		i := deg - idx
		scale := coeff * math.Pow(k, float64(i))

		term := rational.PolyMul(minus[i], plus[m-i])
		for j, v := range term {
			out[j] += scale * v
		}
	}

	return out
}

// TransformClosedForm is Transform with each output coefficient evaluated
// directly:
//
//	[z^j] = Σ_i c_i·(2/T)^i · Σ_a C(i,a)·(-1)^(i-a)·C(m-i, j-a)
func TransformClosedForm(tf rational.TransferFunction, T float64) (rational.TransferFunction, error) {
	if err := checkInput(tf, T); err != nil {
		return rational.TransferFunction{}, err
	}

	m := tf.Degree()
	k := 2 / T

	num := closedForm(tf.Numerator(), k, m)
	den := closedForm(tf.Denominator(), k, m)

	return rational.New(num, den, rational.VarZ)
}

func closedForm(c []float64, k float64, m int) []float64 {
	out := make([]float64, m+1)
	deg := len(c) - 1

	for j := 0; j <= m; j++ {
		sum := 0.0

		for idx, coeff := range c {
			i := deg - idx
			inner := 0.0

			for a := max(0, j-(m-i)); a <= min(i, j); a++ {
				sign := 1.0
				if (i-a)%2 == 1 {
					sign = -1
				}

				inner += sign * rational.Binomial(i, a) * rational.Binomial(m-i, j-a)
			}

			sum += coeff * math.Pow(k, float64(i)) * inner
		}

		out[m-j] = sum
	}

	return out
}

// checkInput rejects a bad period and the zero TransferFunction, which has
// no coefficients to map.
func checkInput(tf rational.TransferFunction, T float64) error {
	if err := checkPeriod(T); err != nil {
		return err
	}

	if tf.NumDegree() < 0 || tf.DenDegree() < 0 {
		return rational.Invalidf("transfer function", "no coefficients")
	}

	return nil
}

func checkPeriod(T float64) error {
	if !(T > 0) || math.IsInf(T, 1) {
		return rational.Invalidf("sampling period", "%v must be positive and finite", T)
	}

	return nil
}
