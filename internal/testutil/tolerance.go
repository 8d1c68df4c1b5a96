package testutil

import (
	"fmt"
	"math"
	"math/cmplx"
	"testing"
)

// RequireRelClose fails t if got and want differ in length or if any
// element pair differs by more than tol times the largest magnitude in
// want (at least one).
func RequireRelClose(t *testing.T, want, got []float64, tol float64) {
	t.Helper()

	if len(want) != len(got) {
		t.Fatalf("length mismatch: want %d, got %d (%v vs %v)", len(want), len(got), want, got)
	}

	scale := 1.0
	for _, v := range want {
		scale = math.Max(scale, math.Abs(v))
	}

	for i := range want {
		if math.Abs(want[i]-got[i]) > tol*scale {
			t.Fatalf("index %d: want %v, got %v (tol %v)", i, want[i], got[i], tol*scale)
		}
	}
}

// RequireRootsNearlyEqual fails t unless every root in want is matched by
// a distinct root in got within eps. Order is ignored.
func RequireRootsNearlyEqual(t *testing.T, got, want []complex128, eps float64) {
	t.Helper()

	if len(got) != len(want) {
		t.Fatalf("root count: got %d %v, want %d %v", len(got), got, len(want), want)
	}

	used := make([]bool, len(got))

	for _, w := range want {
		best := -1

		for j, g := range got {
			if used[j] || cmplx.Abs(g-w) > eps {
				continue
			}

			if best < 0 || cmplx.Abs(g-w) < cmplx.Abs(got[best]-w) {
				best = j
			}
		}

		if best < 0 {
			t.Fatalf("root %v not found in %v (eps %v)", w, got, eps)
		}

		used[best] = true
	}
}

// MaxAbsDiff returns the maximum absolute difference between two slices.
// Returns an error if the slices differ in length.
func MaxAbsDiff(a, b []float64) (float64, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("length mismatch: %d vs %d", len(a), len(b))
	}

	maxDiff := 0.0
	for i := range a {
		maxDiff = math.Max(maxDiff, math.Abs(a[i]-b[i]))
	}

	return maxDiff, nil
}
