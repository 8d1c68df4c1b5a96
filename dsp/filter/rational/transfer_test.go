package rational

import (
	"errors"
	"math"
	"math/cmplx"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestNew_Normalizes(t *testing.T) {
	tests := []struct {
		name    string
		num     []float64
		den     []float64
		wantNum []float64
		wantDen []float64
	}{
		{
			name:    "untouched",
			num:     []float64{1},
			den:     []float64{1, 1},
			wantNum: []float64{1},
			wantDen: []float64{1, 1},
		},
		{
			name:    "leading zeros stripped",
			num:     []float64{0, 1e-12, 2, 3},
			den:     []float64{-1e-11, 1, 0.5},
			wantNum: []float64{2, 3},
			wantDen: []float64{1, 0.5},
		},
		{
			name:    "sole constant kept",
			num:     []float64{0, 0, 0},
			den:     []float64{1e-20},
			wantNum: []float64{0},
			wantDen: []float64{1e-20},
		},
		{
			name:    "interior zeros kept",
			num:     []float64{1, 0, 0},
			den:     []float64{1, 0, 1},
			wantNum: []float64{1, 0, 0},
			wantDen: []float64{1, 0, 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tf, err := New(tt.num, tt.den, VarS)
			if err != nil {
				t.Fatal(err)
			}

			if diff := cmp.Diff(tt.wantNum, tf.Numerator()); diff != "" {
				t.Errorf("numerator mismatch (-want +got):\n%s", diff)
			}

			if diff := cmp.Diff(tt.wantDen, tf.Denominator()); diff != "" {
				t.Errorf("denominator mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestNew_Invalid(t *testing.T) {
	tests := []struct {
		name      string
		num       []float64
		den       []float64
		variable  rune
		wantField string
	}{
		{"empty numerator", nil, []float64{1}, VarS, "numerator"},
		{"empty denominator", []float64{1}, []float64{}, VarZ, "denominator"},
		{"nan numerator", []float64{math.NaN()}, []float64{1}, VarS, "numerator"},
		{"inf denominator", []float64{1}, []float64{1, math.Inf(-1)}, VarS, "denominator"},
		{"bad variable", []float64{1}, []float64{1}, 'x', "variable"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.num, tt.den, tt.variable)
			if !errors.Is(err, ErrInvalidSpecification) {
				t.Fatalf("err = %v, want ErrInvalidSpecification", err)
			}

			var specErr *SpecError
			if !errors.As(err, &specErr) {
				t.Fatalf("err = %T, want *SpecError", err)
			}

			if specErr.Field != tt.wantField {
				t.Fatalf("field = %q, want %q", specErr.Field, tt.wantField)
			}
		})
	}
}

func TestTransferFunction_DefensiveCopies(t *testing.T) {
	num := []float64{1, 2}
	tf := MustNew(num, []float64{1, 3}, VarZ)

	num[0] = 99

	got := tf.Numerator()
	if got[0] != 1 {
		t.Fatalf("constructor aliased input slice: %v", got)
	}

	got[1] = -5
	if tf.Numerator()[1] != 2 {
		t.Fatal("Numerator exposes internal storage")
	}

	den := tf.Denominator()
	den[0] = 42

	if tf.Denominator()[0] != 1 {
		t.Fatal("Denominator exposes internal storage")
	}
}

func TestTransferFunction_Degrees(t *testing.T) {
	tf := MustNew([]float64{1, 0, 2}, []float64{3, 1}, VarS)

	if tf.NumDegree() != 2 || tf.DenDegree() != 1 || tf.Degree() != 2 {
		t.Fatalf("degrees = (%d, %d, %d), want (2, 1, 2)", tf.NumDegree(), tf.DenDegree(), tf.Degree())
	}

	if tf.Variable() != VarS {
		t.Fatalf("variable = %q", tf.Variable())
	}
}

func TestTransferFunction_WithVariable(t *testing.T) {
	tf := MustNew([]float64{1}, []float64{1, 1}, VarZ)

	relabelled, err := tf.WithVariable(VarS)
	if err != nil {
		t.Fatal(err)
	}

	if relabelled.Variable() != VarS || tf.Variable() != VarZ {
		t.Fatalf("variables = %q, %q", relabelled.Variable(), tf.Variable())
	}

	if diff := cmp.Diff(tf.Denominator(), relabelled.Denominator()); diff != "" {
		t.Errorf("coefficients changed (-want +got):\n%s", diff)
	}

	if _, err := tf.WithVariable('w'); !errors.Is(err, ErrInvalidSpecification) {
		t.Fatalf("err = %v, want ErrInvalidSpecification", err)
	}
}

func TestTransferFunction_Eval(t *testing.T) {
	// H(s) = 1/(s+1) at s = j gives (1 - j)/2.
	tf := MustNew([]float64{1}, []float64{1, 1}, VarS)

	got := tf.Eval(complex(0, 1))
	if cmplx.Abs(got-complex(0.5, -0.5)) > 1e-15 {
		t.Fatalf("H(j) = %v", got)
	}

	num, den := tf.EvalParts(0)
	if num != 1 || den != 1 {
		t.Fatalf("parts at 0 = %v, %v", num, den)
	}
}

func TestPolyMul(t *testing.T) {
	// (x + 1)(x - 2) = x^2 - x - 2
	got := PolyMul([]float64{1, 1}, []float64{1, -2})
	if diff := cmp.Diff([]float64{1, -1, -2}, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}

	if PolyMul(nil, []float64{1}) != nil {
		t.Error("expected nil for empty operand")
	}
}

func TestPolyPow(t *testing.T) {
	got := PolyPow([]float64{1, -1}, 3)
	want := []float64{1, -3, 3, -1}

	if diff := cmp.Diff(want, got, cmpopts.EquateApprox(0, 1e-12)); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}

	if diff := cmp.Diff([]float64{1}, PolyPow([]float64{2, 3}, 0)); diff != "" {
		t.Errorf("zero power mismatch (-want +got):\n%s", diff)
	}
}

func TestBinomial(t *testing.T) {
	tests := []struct {
		n, k int
		want float64
	}{
		{0, 0, 1},
		{5, 0, 1},
		{5, 2, 10},
		{5, 3, 10},
		{10, 5, 252},
		{4, 5, 0},
		{4, -1, 0},
	}

	for _, tt := range tests {
		if got := Binomial(tt.n, tt.k); got != tt.want {
			t.Errorf("Binomial(%d, %d) = %v, want %v", tt.n, tt.k, got, tt.want)
		}
	}
}

func TestTrim(t *testing.T) {
	if Trim(nil) != nil {
		t.Error("Trim(nil) should be nil")
	}

	in := []float64{0, 0, 1, 0}
	out := Trim(in)
	out[0] = 7

	if in[2] != 1 {
		t.Error("Trim aliased its input")
	}
}
