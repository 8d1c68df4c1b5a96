package response

import (
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/algo-bilinear/dsp/filter/rational"
)

func TestSpectrum_MatchesDigital(t *testing.T) {
	const n = 64

	tf := rational.MustNew([]float64{1, 0}, []float64{1, -0.5}, rational.VarZ)

	mag, err := Spectrum(tf, n)
	if err != nil {
		t.Fatal(err)
	}

	if len(mag) != n/2+1 {
		t.Fatalf("len = %d", len(mag))
	}

	r := Digital(tf, n/2+1)
	for k := range mag {
		want := math.Pow(10, r.MagnitudeDB[k]/20) - magnitudeFloor
		if !almostEqual(mag[k], want, 1e-9) {
			t.Fatalf("bin %d = %v, want %v", k, mag[k], want)
		}
	}
}

func TestSpectrum_InvalidSize(t *testing.T) {
	tf := rational.MustNew([]float64{1}, []float64{1}, rational.VarZ)

	for _, n := range []int{0, 1, 3, 48} {
		if _, err := Spectrum(tf, n); !errors.Is(err, rational.ErrInvalidSpecification) {
			t.Errorf("n=%d: err = %v", n, err)
		}
	}
}

func TestSpectrum_PropagatesSimulationError(t *testing.T) {
	tf := rational.MustNew([]float64{1, 0, 0}, []float64{1, 0}, rational.VarZ)

	if _, err := Spectrum(tf, 8); !errors.Is(err, rational.ErrInvalidSpecification) {
		t.Fatalf("err = %v", err)
	}
}
