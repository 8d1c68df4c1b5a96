package digitize

import (
	"strconv"
	"strings"

	"github.com/cwbudde/algo-bilinear/dsp/filter/rational"
	"github.com/cwbudde/algo-bilinear/dsp/filter/stability"
)

// Report renders the result as plain text with precision decimals.
func (r Result) Report(precision int) (string, error) {
	if err := rational.ValidatePrecision(precision); err != nil {
		return "", err
	}

	f := func(v float64) string { return strconv.FormatFloat(v, 'f', precision, 64) }

	analogText, _ := r.Analog.Render(precision)
	warpedText, _ := r.PreWarped.Render(precision)
	discreteText, _ := r.Discrete.Render(precision)
	num, _ := r.Discrete.FormatNumerator(precision)
	den, _ := r.Discrete.FormatDenominator(precision)
	poles, _ := stability.FormatRoots(r.Poles, precision)
	zeros, _ := stability.FormatRoots(r.Zeros, precision)

	var sb strings.Builder

	sb.WriteString("Analog transfer function:\n  " + analogText + "\n\n")
	sb.WriteString("Pre-warped transfer function:\n  " + warpedText + "\n\n")

	if r.PreWarpedFrequency > 0 {
		sb.WriteString("Pre-warped frequency: " + f(r.PreWarpedFrequency) +
			" rad/s (critical frequency " + f(r.CriticalFrequency) + " rad/s)\n\n")
	} else {
		sb.WriteString("Pre-warping: off\n\n")
	}

	sb.WriteString("Discrete transfer function:\n  " + discreteText + "\n\n")
	sb.WriteString("Numerator:   " + num + "\n")
	sb.WriteString("Denominator: " + den + "\n")
	sb.WriteString("Poles:       " + poles + "\n")
	sb.WriteString("Zeros:       " + zeros + "\n\n")
	sb.WriteString("Stability: " + r.Verdict() + "\n")

	return sb.String(), nil
}

// Verdict is "Stable" or "Unstable", qualified when the root sets are
// partial. Missing poles with none found outside the unit circle give
// "Undetermined".
func (r Result) Verdict() string {
	if r.Stable && len(r.Poles) < r.Discrete.DenDegree() {
		return "Undetermined (incomplete root set)"
	}

	v := "Unstable"
	if r.Stable {
		v = "Stable"
	}

	if !r.Complete {
		v += " (incomplete root set)"
	}

	return v
}
