package stability

import (
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/algo-bilinear/dsp/filter/rational"
	"github.com/cwbudde/algo-bilinear/internal/polyroot"
	"github.com/cwbudde/algo-bilinear/internal/testutil"
)

type zeroSource struct{}

func (zeroSource) Float64() float64 { return 0 }

func TestIsStable(t *testing.T) {
	tests := []struct {
		name string
		den  []float64
		want bool
	}{
		{"pole at 0.5", []float64{1, -0.5}, true},
		{"pole at 2", []float64{1, -2}, false},
		{"pole on unit circle", []float64{1, -1}, false},
		{"complex pair inside", []float64{1, -1.143, 0.4128}, true},
		{"complex pair outside", []float64{1, 0, 1.21}, false},
		{"no poles", []float64{3}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tf := rational.MustNew([]float64{1}, tt.den, rational.VarZ)

			a := New(tf, WithSeed(1))
			if got := a.IsStable(); got != tt.want {
				t.Fatalf("IsStable() = %v, want %v (poles %v)", got, tt.want, a.Poles())
			}

			if !a.Complete() {
				t.Fatalf("expected a complete analysis, got poles %v", a.Poles())
			}
		})
	}
}

func TestAnalysis_PolesAndZeros(t *testing.T) {
	// (z - 0.25) / ((z - 0.5)(z + 0.5))
	tf := rational.MustNew([]float64{1, -0.25}, []float64{1, 0, -0.25}, rational.VarZ)
	a := New(tf, WithSeed(9))

	poles := a.Poles()
	testutil.RequireRootsNearlyEqual(t, poles, []complex128{0.5, -0.5}, 1e-9)
	testutil.RequireRootsNearlyEqual(t, a.Zeros(), []complex128{0.25}, 1e-9)

	if got := a.MaxPoleRadius(); math.Abs(got-0.5) > 1e-9 {
		t.Fatalf("MaxPoleRadius = %v", got)
	}

	if got := a.Margin(); math.Abs(got-0.5) > 1e-9 {
		t.Fatalf("Margin = %v", got)
	}

	poles[0] = 99
	if a.Poles()[0] == 99 {
		t.Fatal("Poles exposes internal storage")
	}
}

func TestVerify(t *testing.T) {
	tf := rational.MustNew([]float64{1}, []float64{1, -0.5}, rational.VarZ)

	ok, err := New(tf, WithSeed(3)).Verify()
	if err != nil || !ok {
		t.Fatalf("Verify() = %v, %v", ok, err)
	}
}

func TestVerify_Incomplete(t *testing.T) {
	// Starting at the origin, |p(0)|^2 = 1e-12 trips the division guard.
	tf := rational.MustNew([]float64{1}, []float64{1, -1e-6}, rational.VarZ)
	a := New(tf, WithSource(zeroSource{}))

	if a.Complete() {
		t.Fatalf("expected an incomplete analysis, got poles %v", a.Poles())
	}

	if !a.IsStable() {
		t.Fatal("IsStable judges found poles only")
	}

	_, err := a.Verify()
	if !errors.Is(err, ErrIncomplete) {
		t.Fatalf("err = %v, want ErrIncomplete", err)
	}

	if !errors.Is(err, polyroot.ErrNumericInstability) {
		t.Fatalf("err = %v, want wrapped ErrNumericInstability", err)
	}
}

func TestRoots(t *testing.T) {
	roots := Roots([]float64{1, -3, 2}, WithSeed(5))
	if len(roots) != 2 {
		t.Fatalf("roots = %v", roots)
	}

	testutil.RequireRootsNearlyEqual(t, roots, []complex128{1, 2}, 1e-6)

	if got := Roots([]float64{0, 0, 7}); len(got) != 0 {
		t.Fatalf("constant polynomial roots = %v", got)
	}
}

func TestWithSeed_Reproducible(t *testing.T) {
	tf := rational.MustNew([]float64{1, 0.5}, []float64{1, -0.9, 0.2}, rational.VarZ)

	a := New(tf, WithSeed(77)).Poles()
	b := New(tf, WithSeed(77)).Poles()

	if len(a) != len(b) {
		t.Fatalf("lengths differ: %v vs %v", a, b)
	}

	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("pole %d differs: %v vs %v", i, a[i], b[i])
		}
	}
}
