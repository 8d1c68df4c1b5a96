package polyroot

import "fmt"

// Source supplies uniformly distributed values in [0, 1). *rand.Rand from
// math/rand/v2 satisfies it.
type Source interface {
	Float64() float64
}

// Finder extracts polynomial roots one at a time. Each attempt starts from a
// random point near the origin drawn from its Source. A Finder is not safe
// for concurrent use; build one per goroutine.
type Finder struct {
	src Source
}

// NewFinder returns a Finder drawing its starting points from src.
func NewFinder(src Source) *Finder {
	return &Finder{src: src}
}

// Roots returns the roots of the real polynomial coeffs (highest degree
// first). Leading coefficients below Tol are ignored; a constant or empty
// polynomial has no roots.
//
// Each root is refined with Laguerre and divided out of the polynomial
// before the next one is searched. The first failed attempt ends the search,
// so the result may hold fewer roots than the degree. Every returned value
// is a converged root.
func (f *Finder) Roots(coeffs []float64) []complex128 {
	poly := make([]complex128, len(coeffs))
	for i, c := range coeffs {
		poly[i] = complex(c, 0)
	}

	poly = normalize(poly)
	if len(poly) < 2 {
		return []complex128{}
	}

	roots := make([]complex128, 0, len(poly)-1)

	for len(poly) > 1 {
		root, err := f.Laguerre(poly)
		if err != nil {
			break
		}

		roots = append(roots, root)

		poly = normalize(deflate(poly, root))
	}

	return roots
}

// Laguerre runs a single attempt on poly (highest degree first, degree at
// least one). It fails with ErrNumericInstability when a guarded division
// would blow up and with ErrNoConvergence after MaxIter steps.
//
//nolint:cyclop
func (f *Finder) Laguerre(poly []complex128) (complex128, error) {
	n := len(poly) - 1
	if n < 1 {
		return 0, fmt.Errorf("laguerre: degree %d: %w", n, ErrNoConvergence)
	}

	nf := complex(float64(n), 0)
	x := complex(guessScale*f.src.Float64(), guessScale*f.src.Float64())

	for iter := range MaxIter {
		p, d1, d2 := evalDerivs(poly, x)
		if abs(p) < Tol {
			return x, nil
		}

		g, ok := DivideSafe(d1, p)
		if !ok {
			return 0, fmt.Errorf("laguerre: p'(x)/p(x) at iteration %d: %w", iter, ErrNumericInstability)
		}

		q, ok := DivideSafe(d2, p)
		if !ok {
			return 0, fmt.Errorf("laguerre: p''(x)/p(x) at iteration %d: %w", iter, ErrNumericInstability)
		}

		h := g*g - q
		sq := Sqrt((nf - 1) * (nf*h - g*g))

		den := g + sq
		if alt := g - sq; abs(alt) > abs(den) {
			den = alt
		}

		if abs(den) < Tol {
			return 0, fmt.Errorf("laguerre: vanishing denominator at iteration %d: %w", iter, ErrNumericInstability)
		}

		step := nf / den
		x -= step

		if abs(step) < Tol {
			return x, nil
		}
	}

	return 0, fmt.Errorf("laguerre: %d iterations: %w", MaxIter, ErrNoConvergence)
}
