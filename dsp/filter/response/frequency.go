package response

import (
	"math"
	"math/cmplx"
	"slices"

	"github.com/cwbudde/algo-bilinear/dsp/filter/rational"
)

const (
	// DefaultDigitalPoints is the grid size of Digital and Nyquist.
	DefaultDigitalPoints = 512
	// DefaultAnalogPoints is the grid size of Analog.
	DefaultAnalogPoints = 100
	// DefaultAnalogMaxOmega is the upper end of the Analog grid in rad/s.
	DefaultAnalogMaxOmega = 10.0

	// magnitudeFloor keeps 20·log10 finite at zeros of H.
	magnitudeFloor = 1e-10
	// delayStep is the group delay difference step relative to the grid spacing.
	delayStep = 0.01
)

// FrequencyResponse samples H on a frequency grid. Omega is in rad/sample
// for Digital and rad/s for Analog. GroupDelay is in samples resp. seconds.
type FrequencyResponse struct {
	Omega       []float64
	Response    []complex128
	MagnitudeDB []float64
	PhaseDeg    []float64
	GroupDelay  []float64
}

// Magnitude returns a copy of the magnitude curve in dB.
func (r FrequencyResponse) Magnitude() Curve {
	return Curve{X: slices.Clone(r.Omega), Y: slices.Clone(r.MagnitudeDB)}
}

// Phase returns a copy of the phase curve in degrees, wrapped to
// (-180, 180].
func (r FrequencyResponse) Phase() Curve {
	return Curve{X: slices.Clone(r.Omega), Y: slices.Clone(r.PhaseDeg)}
}

// UnwrappedPhase returns the phase curve in degrees with 360° jumps removed.
func (r FrequencyResponse) UnwrappedPhase() Curve {
	out := make([]float64, len(r.PhaseDeg))
	offset := 0.0

	for i, p := range r.PhaseDeg {
		if i > 0 {
			switch d := p - r.PhaseDeg[i-1]; {
			case d > 180:
				offset -= 360
			case d < -180:
				offset += 360
			}
		}

		out[i] = p + offset
	}

	return Curve{X: slices.Clone(r.Omega), Y: out}
}

// GroupDelayCurve returns a copy of the group delay curve.
func (r FrequencyResponse) GroupDelayCurve() Curve {
	return Curve{X: slices.Clone(r.Omega), Y: slices.Clone(r.GroupDelay)}
}

// Digital evaluates tf at z = e^{jω} for n points on [0, π]. n below two
// selects DefaultDigitalPoints.
func Digital(tf rational.TransferFunction, n int) FrequencyResponse {
	if n < 2 {
		n = DefaultDigitalPoints
	}

	return sample(tf, 0, math.Pi, n, unitCircle)
}

// Analog evaluates tf at s = jω for n points on [0, maxOmega]. n below two
// selects DefaultAnalogPoints and a non-positive maxOmega selects
// DefaultAnalogMaxOmega.
func Analog(tf rational.TransferFunction, maxOmega float64, n int) FrequencyResponse {
	if n < 2 {
		n = DefaultAnalogPoints
	}

	if !(maxOmega > 0) || math.IsInf(maxOmega, 1) {
		maxOmega = DefaultAnalogMaxOmega
	}

	return sample(tf, 0, maxOmega, n, imaginaryAxis)
}

func unitCircle(w float64) complex128 { return cmplx.Rect(1, w) }

func imaginaryAxis(w float64) complex128 { return complex(0, w) }

// eval returns N(x)/D(x), or zero where |D(x)|² < magnitudeFloor.
func eval(tf rational.TransferFunction, x complex128) complex128 {
	num, den := tf.EvalParts(x)

	if real(den)*real(den)+imag(den)*imag(den) < magnitudeFloor {
		return 0
	}

	return num / den
}

func sample(tf rational.TransferFunction, lo, hi float64, n int, at func(float64) complex128) FrequencyResponse {
	r := FrequencyResponse{
		Omega:       make([]float64, n),
		Response:    make([]complex128, n),
		MagnitudeDB: make([]float64, n),
		PhaseDeg:    make([]float64, n),
		GroupDelay:  make([]float64, n),
	}

	spacing := (hi - lo) / float64(n-1)
	delta := delayStep * spacing

	for i := range n {
		w := lo + float64(i)*spacing
		h := eval(tf, at(w))

		r.Omega[i] = w
		r.Response[i] = h
		r.MagnitudeDB[i] = 20 * math.Log10(cmplx.Abs(h)+magnitudeFloor)
		r.PhaseDeg[i] = cmplx.Phase(h) * 180 / math.Pi

		// The phase difference is taken as arg(H(ω+δ)/H(ω)) so it never
		// crosses the ±π wrap.
		next := eval(tf, at(w+delta))
		if h != 0 && next != 0 {
			r.GroupDelay[i] = -cmplx.Phase(next/h) / delta
		}
	}

	return r
}
