package digitize

import (
	"errors"
	"math"
	"math/cmplx"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/cwbudde/algo-bilinear/dsp/filter/design/analog"
	"github.com/cwbudde/algo-bilinear/dsp/filter/rational"
)

func TestRun_ManualWithoutPreWarp(t *testing.T) {
	res, err := Run(Request{
		Numerator:      []float64{1},
		Denominator:    []float64{1, 1},
		SamplingPeriod: 0.1,
	}, WithoutPreWarp(), WithSeed(1))
	if err != nil {
		t.Fatal(err)
	}

	opt := cmpopts.EquateApprox(0, 1e-12)

	if diff := cmp.Diff([]float64{1, 1}, res.Discrete.Numerator(), opt); diff != "" {
		t.Errorf("numerator (-want +got):\n%s", diff)
	}

	if diff := cmp.Diff([]float64{21, -19}, res.Discrete.Denominator(), opt); diff != "" {
		t.Errorf("denominator (-want +got):\n%s", diff)
	}

	if res.PreWarpedFrequency != 0 {
		t.Errorf("PreWarpedFrequency = %v, want 0", res.PreWarpedFrequency)
	}

	if !res.Stable || !res.Complete {
		t.Fatalf("stable=%v complete=%v poles=%v", res.Stable, res.Complete, res.Poles)
	}

	if len(res.Poles) != 1 || cmplx.Abs(res.Poles[0]-complex(19.0/21, 0)) > 1e-9 {
		t.Errorf("poles = %v", res.Poles)
	}

	if len(res.Zeros) != 1 || cmplx.Abs(res.Zeros[0]+1) > 1e-9 {
		t.Errorf("zeros = %v", res.Zeros)
	}

	if res.Designed() {
		t.Error("manual request reported as designed")
	}
}

func TestRun_ManualPreWarpDefault(t *testing.T) {
	const T = 0.1

	res, err := Run(Request{
		Numerator:      []float64{1},
		Denominator:    []float64{1, 1},
		SamplingPeriod: T,
	}, WithSeed(2))
	if err != nil {
		t.Fatal(err)
	}

	if res.CriticalFrequency != DefaultCriticalFrequency {
		t.Fatalf("CriticalFrequency = %v", res.CriticalFrequency)
	}

	if math.Abs(res.PreWarpedFrequency-20*math.Tan(0.05)) > 1e-12 {
		t.Fatalf("PreWarpedFrequency = %v", res.PreWarpedFrequency)
	}

	// The digital response at ω_d·T reproduces the analog response at ω_d.
	want := res.Analog.Eval(complex(0, res.CriticalFrequency))
	got := res.Discrete.Eval(cmplx.Exp(complex(0, res.CriticalFrequency*T)))

	if cmplx.Abs(got-want) > 1e-9 {
		t.Fatalf("H_d = %v, H_a = %v", got, want)
	}
}

func TestRun_CriticalFrequency(t *testing.T) {
	res, err := Run(Request{
		Numerator:      []float64{1},
		Denominator:    []float64{1, 1},
		SamplingPeriod: 0.1,
	}, WithCriticalFrequency(2), WithCriticalFrequency(-5), WithSeed(2))
	if err != nil {
		t.Fatal(err)
	}

	if res.CriticalFrequency != 2 {
		t.Fatalf("CriticalFrequency = %v", res.CriticalFrequency)
	}

	if math.Abs(res.PreWarpedFrequency-20*math.Tan(0.1)) > 1e-12 {
		t.Fatalf("PreWarpedFrequency = %v", res.PreWarpedFrequency)
	}
}

func TestRun_Design(t *testing.T) {
	spec := analog.Spec{Family: analog.Butterworth, Order: 2, Cutoff: 1}

	res, err := Run(Request{Design: &spec, SamplingPeriod: 0.1}, WithSeed(4))
	if err != nil {
		t.Fatal(err)
	}

	want, err := analog.Design(spec, 0.1)
	if err != nil {
		t.Fatal(err)
	}

	if diff := cmp.Diff(want.Denominator(), res.Discrete.Denominator()); diff != "" {
		t.Errorf("discrete denominator (-want +got):\n%s", diff)
	}

	if res.Analog.Variable() != rational.VarS {
		t.Errorf("analog variable = %q", res.Analog.Variable())
	}

	if diff := cmp.Diff(res.Discrete.Denominator(), res.Analog.Denominator()); diff != "" {
		t.Errorf("analog is not the relabelled discrete result (-discrete +analog):\n%s", diff)
	}

	if !res.Designed() {
		t.Error("design request not reported as designed")
	}

	// The prototype's zero constant term puts a pole on z = 1.
	if res.Stable {
		t.Errorf("expected unstable result, poles %v", res.Poles)
	}
}

func TestRun_Errors(t *testing.T) {
	bad := analog.Spec{Family: analog.ChebyshevI, Order: 2, Cutoff: 1}

	tests := []struct {
		name string
		req  Request
	}{
		{"zero period", Request{Numerator: []float64{1}, Denominator: []float64{1, 1}}},
		{"empty denominator", Request{Numerator: []float64{1}, SamplingPeriod: 0.1}},
		{"invalid design", Request{Design: &bad, SamplingPeriod: 0.1}},
	}

	for _, tt := range tests {
		if _, err := Run(tt.req, WithSeed(1)); !errors.Is(err, rational.ErrInvalidSpecification) {
			t.Errorf("%s: err = %v", tt.name, err)
		}
	}
}

func TestResult_Report(t *testing.T) {
	res, err := Run(Request{
		Numerator:      []float64{1},
		Denominator:    []float64{1, 1},
		SamplingPeriod: 0.1,
	}, WithSeed(1))
	if err != nil {
		t.Fatal(err)
	}

	text, err := res.Report(4)
	if err != nil {
		t.Fatal(err)
	}

	for _, want := range []string{
		"Analog transfer function:\n  H(s) = (1.0000) / (s + 1.0000)",
		"Pre-warped frequency: 1.0008 rad/s (critical frequency 1.0000 rad/s)",
		"Discrete transfer function:\n  H(z) = ",
		"Numerator:   [",
		"Stability: Stable\n",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("report missing %q:\n%s", want, text)
		}
	}

	if _, err := res.Report(7); !errors.Is(err, rational.ErrInvalidSpecification) {
		t.Fatalf("err = %v", err)
	}
}

func TestResult_Verdict(t *testing.T) {
	// (z-1)(z-2)(z-3)(z-4)
	quartic := rational.MustNew([]float64{1}, []float64{1, -10, 35, -50, 24}, rational.VarZ)

	tests := []struct {
		r    Result
		want string
	}{
		{Result{Stable: true, Complete: true}, "Stable"},
		{Result{Stable: false, Complete: true}, "Unstable"},
		{Result{Stable: true}, "Stable (incomplete root set)"},
		{Result{Stable: true, Discrete: quartic}, "Undetermined (incomplete root set)"},
		{Result{Stable: true, Discrete: quartic, Poles: []complex128{0.5}}, "Undetermined (incomplete root set)"},
		{Result{Stable: false, Discrete: quartic, Poles: []complex128{2}}, "Unstable (incomplete root set)"},
		{Result{Stable: true, Complete: true, Discrete: quartic, Poles: make([]complex128, 4)}, "Stable"},
	}

	for _, tt := range tests {
		if got := tt.r.Verdict(); got != tt.want {
			t.Errorf("Verdict() = %q, want %q", got, tt.want)
		}
	}
}
