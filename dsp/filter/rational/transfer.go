package rational

import "math"

// Display variables for analog and discrete transfer functions.
const (
	VarS = 's'
	VarZ = 'z'
)

// TransferFunction is an immutable ratio of two real polynomials, both stored
// highest degree first. Use [New] to construct one; the zero value has no
// coefficients.
type TransferFunction struct {
	num      []float64
	den      []float64
	variable rune
}

// New returns a normalised transfer function. Leading coefficients with
// magnitude below [Epsilon] are stripped from both polynomials, keeping at
// least the constant term. It fails if either sequence is empty, contains
// NaN or Inf, or if variable is neither [VarS] nor [VarZ].
func New(num, den []float64, variable rune) (TransferFunction, error) {
	if len(num) == 0 {
		return TransferFunction{}, Invalidf("numerator", "coefficient sequence is empty")
	}

	if len(den) == 0 {
		return TransferFunction{}, Invalidf("denominator", "coefficient sequence is empty")
	}

	if err := checkFinite("numerator", num); err != nil {
		return TransferFunction{}, err
	}

	if err := checkFinite("denominator", den); err != nil {
		return TransferFunction{}, err
	}

	if variable != VarS && variable != VarZ {
		return TransferFunction{}, Invalidf("variable", "%q is not 's' or 'z'", variable)
	}

	return TransferFunction{
		num:      Trim(num),
		den:      Trim(den),
		variable: variable,
	}, nil
}

// MustNew is like New but panics on error. Intended for tests and package
// level literals with known-good coefficients.
func MustNew(num, den []float64, variable rune) TransferFunction {
	tf, err := New(num, den, variable)
	if err != nil {
		panic(err)
	}

	return tf
}

func checkFinite(field string, c []float64) error {
	for i, v := range c {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return Invalidf(field, "coefficient %d is not finite (%v)", i, v)
		}
	}

	return nil
}

// Numerator returns a copy of the numerator coefficients.
func (tf TransferFunction) Numerator() []float64 {
	return append([]float64(nil), tf.num...)
}

// Denominator returns a copy of the denominator coefficients.
func (tf TransferFunction) Denominator() []float64 {
	return append([]float64(nil), tf.den...)
}

// Variable returns the display variable, 's' or 'z'.
func (tf TransferFunction) Variable() rune { return tf.variable }

// NumDegree returns the numerator degree.
func (tf TransferFunction) NumDegree() int { return len(tf.num) - 1 }

// DenDegree returns the denominator degree.
func (tf TransferFunction) DenDegree() int { return len(tf.den) - 1 }

// Degree returns max(NumDegree, DenDegree).
func (tf TransferFunction) Degree() int {
	return max(tf.NumDegree(), tf.DenDegree())
}

// WithVariable returns a copy of tf displayed with a different variable.
// The coefficients are not transformed.
func (tf TransferFunction) WithVariable(variable rune) (TransferFunction, error) {
	return New(tf.num, tf.den, variable)
}

// Eval returns N(x)/D(x). The result is NaN or Inf when D(x) is zero.
func (tf TransferFunction) Eval(x complex128) complex128 {
	return evalPoly(tf.num, x) / evalPoly(tf.den, x)
}

// EvalParts returns N(x) and D(x) separately so callers can guard the
// division themselves.
func (tf TransferFunction) EvalParts(x complex128) (num, den complex128) {
	return evalPoly(tf.num, x), evalPoly(tf.den, x)
}
