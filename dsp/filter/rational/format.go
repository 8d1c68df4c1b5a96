package rational

import (
	"math"
	"strconv"
	"strings"
)

// Precision bounds for coefficient formatting, in decimal places.
const (
	MinPrecision     = 1
	MaxPrecision     = 6
	DefaultPrecision = 4
)

// ValidatePrecision checks that precision lies in [MinPrecision, MaxPrecision].
func ValidatePrecision(precision int) error {
	if precision < MinPrecision || precision > MaxPrecision {
		return Invalidf("precision", "%d is outside [%d, %d]", precision, MinPrecision, MaxPrecision)
	}

	return nil
}

// FormatCoefficients renders c as "[c0, c1, ...]" with exactly precision
// decimal places per value.
func FormatCoefficients(c []float64, precision int) (string, error) {
	if err := ValidatePrecision(precision); err != nil {
		return "", err
	}

	var sb strings.Builder

	sb.WriteByte('[')

	for i, v := range c {
		if i > 0 {
			sb.WriteString(", ")
		}

		sb.WriteString(strconv.FormatFloat(v, 'f', precision, 64))
	}

	sb.WriteByte(']')

	return sb.String(), nil
}

// FormatNumerator formats the numerator coefficients, see FormatCoefficients.
func (tf TransferFunction) FormatNumerator(precision int) (string, error) {
	return FormatCoefficients(tf.num, precision)
}

// FormatDenominator formats the denominator coefficients, see FormatCoefficients.
func (tf TransferFunction) FormatDenominator(precision int) (string, error) {
	return FormatCoefficients(tf.den, precision)
}

// RenderPolynomial renders c (highest degree first) in the variable v, e.g.
// "2.0000s^2 - s + 0.5000". Terms below Epsilon are omitted, unit
// coefficients of non-constant terms print without a numeral and an
// all-zero polynomial renders as "0".
func RenderPolynomial(c []float64, v rune, precision int) (string, error) {
	if err := ValidatePrecision(precision); err != nil {
		return "", err
	}

	var sb strings.Builder

	first := true

	for i, coeff := range c {
		if math.Abs(coeff) < Epsilon {
			continue
		}

		switch {
		case !first && coeff > 0:
			sb.WriteString(" + ")
		case !first:
			sb.WriteString(" - ")
		case coeff < 0:
			sb.WriteByte('-')
		}

		power := len(c) - 1 - i
		if math.Abs(math.Abs(coeff)-1) > Epsilon || power == 0 {
			sb.WriteString(strconv.FormatFloat(math.Abs(coeff), 'f', precision, 64))
		}

		if power > 0 {
			sb.WriteRune(v)

			if power > 1 {
				sb.WriteByte('^')
				sb.WriteString(strconv.Itoa(power))
			}
		}

		first = false
	}

	if first {
		return "0", nil
	}

	return sb.String(), nil
}

// Render returns "H(v) = (numerator) / (denominator)" at the given precision.
func (tf TransferFunction) Render(precision int) (string, error) {
	num, err := RenderPolynomial(tf.num, tf.variable, precision)
	if err != nil {
		return "", err
	}

	den, err := RenderPolynomial(tf.den, tf.variable, precision)
	if err != nil {
		return "", err
	}

	return "H(" + string(tf.variable) + ") = (" + num + ") / (" + den + ")", nil
}

// String renders tf at DefaultPrecision.
func (tf TransferFunction) String() string {
	s, _ := tf.Render(DefaultPrecision)
	return s
}
