package stability

import (
	"errors"
	"fmt"
	"math"
	"math/cmplx"

	"github.com/cwbudde/algo-bilinear/dsp/filter/rational"
	"github.com/cwbudde/algo-bilinear/internal/polyroot"
)

// Tolerance is the distance inside the unit circle a pole must keep to count
// as stable.
const Tolerance = 1e-10

// ErrIncomplete is returned by Verify when fewer poles than the denominator
// degree were found.
var ErrIncomplete = errors.New("stability: incomplete pole set")

// Analysis holds the poles and zeros of one transfer function.
type Analysis struct {
	poles     []complex128
	zeros     []complex128
	denDegree int
	numDegree int
}

// New finds the poles (denominator roots) and zeros (numerator roots) of tf.
// The denominator is searched first; both searches share one random stream.
func New(tf rational.TransferFunction, opts ...Option) Analysis {
	cfg := applyOptions(opts...)
	finder := polyroot.NewFinder(cfg.src)

	den := tf.Denominator()
	num := tf.Numerator()

	return Analysis{
		poles:     finder.Roots(den),
		zeros:     finder.Roots(num),
		denDegree: significantDegree(den),
		numDegree: significantDegree(num),
	}
}

// Roots returns the roots of coeffs (highest degree first).
func Roots(coeffs []float64, opts ...Option) []complex128 {
	cfg := applyOptions(opts...)
	return polyroot.NewFinder(cfg.src).Roots(coeffs)
}

// Poles returns a copy of the poles found.
func (a Analysis) Poles() []complex128 {
	return append([]complex128(nil), a.poles...)
}

// Zeros returns a copy of the zeros found.
func (a Analysis) Zeros() []complex128 {
	return append([]complex128(nil), a.zeros...)
}

// IsStable reports whether every pole found lies strictly inside the circle
// of radius 1 - Tolerance. It judges only the poles that were found; see
// Verify for a verdict that also checks completeness.
func (a Analysis) IsStable() bool {
	for _, p := range a.poles {
		if cmplx.Abs(p) >= 1-Tolerance {
			return false
		}
	}

	return true
}

// MaxPoleRadius returns the largest pole magnitude, or 0 without poles.
func (a Analysis) MaxPoleRadius() float64 {
	r := 0.0
	for _, p := range a.poles {
		r = math.Max(r, cmplx.Abs(p))
	}

	return r
}

// Margin returns 1 - MaxPoleRadius. It is negative for poles outside the
// unit circle.
func (a Analysis) Margin() float64 {
	return 1 - a.MaxPoleRadius()
}

// Complete reports whether every pole and zero was found.
func (a Analysis) Complete() bool {
	return len(a.poles) == a.denDegree && len(a.zeros) == a.numDegree
}

// Verify is IsStable for callers that need the full pole set. It fails with
// ErrIncomplete, wrapping polyroot.ErrNumericInstability, when the search
// stopped early.
func (a Analysis) Verify() (bool, error) {
	if len(a.poles) != a.denDegree {
		return false, fmt.Errorf("%w: found %d of %d poles: %w",
			ErrIncomplete, len(a.poles), a.denDegree, polyroot.ErrNumericInstability)
	}

	return a.IsStable(), nil
}

func significantDegree(c []float64) int {
	for i, v := range c {
		if math.Abs(v) >= polyroot.Tol {
			return len(c) - 1 - i
		}
	}

	return 0
}
