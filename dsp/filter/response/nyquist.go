package response

import (
	"math"
	"math/cmplx"
	"slices"

	"github.com/cwbudde/algo-bilinear/dsp/filter/rational"
)

// NyquistLocus is H(e^{jω}) traced over ω ∈ [-π, π].
type NyquistLocus struct {
	Omega []float64
	Real  []float64
	Imag  []float64
}

// Curve returns a copy of the locus as Imag over Real.
func (l NyquistLocus) Curve() Curve {
	return Curve{X: slices.Clone(l.Real), Y: slices.Clone(l.Imag)}
}

// Nyquist samples the locus at n points; n below two selects
// DefaultDigitalPoints. Points where |D|² < 1e-10 are reported as the
// origin.
func Nyquist(tf rational.TransferFunction, n int) NyquistLocus {
	if n < 2 {
		n = DefaultDigitalPoints
	}

	l := NyquistLocus{
		Omega: make([]float64, n),
		Real:  make([]float64, n),
		Imag:  make([]float64, n),
	}

	spacing := 2 * math.Pi / float64(n-1)

	for i := range n {
		w := -math.Pi + float64(i)*spacing
		h := eval(tf, cmplx.Rect(1, w))

		l.Omega[i] = w
		l.Real[i] = real(h)
		l.Imag[i] = imag(h)
	}

	return l
}
