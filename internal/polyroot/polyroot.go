// Package polyroot finds the complex roots of real polynomials with
// Laguerre's method and sequential deflation. It is shared by the stability
// analysis and the command front end.
package polyroot

import (
	"errors"
	"math"
)

var (
	// ErrNumericInstability is returned when a Laguerre step would divide by
	// a value whose squared magnitude is below Tol.
	ErrNumericInstability = errors.New("polyroot: numeric instability")

	// ErrNoConvergence is returned when a Laguerre attempt exhausts MaxIter.
	ErrNoConvergence = errors.New("polyroot: no convergence")
)

const (
	// Tol is the shared threshold for leading-coefficient trimming,
	// convergence and the division guard.
	Tol = 1e-10

	// MaxIter bounds a single Laguerre attempt.
	MaxIter = 100

	// guessScale sets the radius of the random starting point.
	guessScale = 0.1
)

// PolyEval evaluates a polynomial at x using Horner's method. Coefficients
// are in descending power order: coeff[0]*x^n + ... + coeff[n].
func PolyEval(coeff []complex128, x complex128) complex128 {
	if len(coeff) == 0 {
		return 0
	}

	v := coeff[0]
	for i := 1; i < len(coeff); i++ {
		v = v*x + coeff[i]
	}

	return v
}

// evalDerivs returns p(x), p'(x) and p''(x) in a single Horner pass.
func evalDerivs(coeff []complex128, x complex128) (p, d1, d2 complex128) {
	p = coeff[0]
	for i := 1; i < len(coeff); i++ {
		d2 = d2*x + d1
		d1 = d1*x + p
		p = p*x + coeff[i]
	}

	return p, d1, 2 * d2
}

// deflate divides coeff by (x - root) with synthetic division and drops the
// remainder.
func deflate(coeff []complex128, root complex128) []complex128 {
	n := len(coeff) - 1
	out := make([]complex128, n)

	out[0] = coeff[0]
	for i := 1; i < n; i++ {
		out[i] = coeff[i] + out[i-1]*root
	}

	return out
}

// normalize strips leading coefficients below Tol and scales the rest to a
// monic polynomial. A polynomial with no significant coefficient yields nil.
func normalize(coeff []complex128) []complex128 {
	start := 0
	for start < len(coeff) && abs(coeff[start]) < Tol {
		start++
	}

	if start == len(coeff) {
		return nil
	}

	lead := coeff[start]
	out := make([]complex128, len(coeff)-start)

	for i, c := range coeff[start:] {
		out[i] = c / lead
	}

	return out
}

func abs(z complex128) float64 {
	return math.Hypot(real(z), imag(z))
}
