package response

import (
	"iter"
	"slices"
)

// Curve is a sampled function y(x).
type Curve struct {
	X []float64
	Y []float64
}

// Len returns the number of points.
func (c Curve) Len() int { return min(len(c.X), len(c.Y)) }

// Points yields (x, y) pairs in order. Each range over the sequence starts
// again from the first point.
func (c Curve) Points() iter.Seq2[float64, float64] {
	return func(yield func(float64, float64) bool) {
		for i := range c.Len() {
			if !yield(c.X[i], c.Y[i]) {
				return
			}
		}
	}
}

// Reveal yields growing prefixes of c, adding step points each time and
// ending with the full curve. A step below one is treated as one. Each
// prefix owns its storage.
func (c Curve) Reveal(step int) iter.Seq[Curve] {
	step = max(step, 1)

	return func(yield func(Curve) bool) {
		n := c.Len()

		for end := min(step, n); end > 0; end = min(end+step, n) {
			if !yield(Curve{X: slices.Clone(c.X[:end]), Y: slices.Clone(c.Y[:end])}) || end == n {
				return
			}
		}
	}
}
