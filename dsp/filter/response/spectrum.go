package response

import (
	"fmt"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-bilinear/dsp/filter/rational"
)

// Spectrum returns |H[k]| for k = 0..n/2 from the FFT of the first n
// impulse response samples. n must be a power of two of at least two.
// For a fast-decaying response it approximates the magnitude of Digital on
// the bin frequencies 2πk/n.
func Spectrum(tf rational.TransferFunction, n int) ([]float64, error) {
	if n < 2 || n&(n-1) != 0 {
		return nil, rational.Invalidf("fft size", "%d is not a power of two >= 2", n)
	}

	h, err := Impulse(tf, n)
	if err != nil {
		return nil, err
	}

	plan, err := algofft.NewPlan64(n)
	if err != nil {
		return nil, fmt.Errorf("response: NewPlan64: %w", err)
	}

	in := make([]complex128, n)
	for i, v := range h {
		in[i] = complex(v, 0)
	}

	out := make([]complex128, n)
	if err := plan.Forward(out, in); err != nil {
		return nil, fmt.Errorf("response: forward FFT: %w", err)
	}

	bins := n/2 + 1
	re := make([]float64, bins)
	im := make([]float64, bins)

	for k := range bins {
		re[k] = real(out[k])
		im[k] = imag(out[k])
	}

	mag := make([]float64, bins)
	vecmath.Magnitude(mag, re, im)

	return mag, nil
}
