package stability

import (
	"math"
	"strconv"
	"strings"

	"github.com/cwbudde/algo-bilinear/dsp/filter/rational"
)

// FormatRoot renders z as "a", "bj", "a + jb" or "a - jb" with precision
// decimals. Parts below 1e-10 are dropped; zero renders as the real part.
func FormatRoot(z complex128, precision int) (string, error) {
	if err := rational.ValidatePrecision(precision); err != nil {
		return "", err
	}

	re, im := real(z), imag(z)
	f := func(v float64) string { return strconv.FormatFloat(v, 'f', precision, 64) }

	switch {
	case math.Abs(im) < Tolerance:
		return f(re), nil
	case math.Abs(re) < Tolerance:
		return f(im) + "j", nil
	case im > 0:
		return f(re) + " + j" + f(im), nil
	default:
		return f(re) + " - j" + f(-im), nil
	}
}

// FormatRoots renders roots as a comma separated list in brackets.
func FormatRoots(roots []complex128, precision int) (string, error) {
	parts := make([]string, len(roots))

	for i, r := range roots {
		s, err := FormatRoot(r, precision)
		if err != nil {
			return "", err
		}

		parts[i] = s
	}

	return "[" + strings.Join(parts, ", ") + "]", nil
}
