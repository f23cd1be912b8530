package fourier

import (
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/algo-fourier/dsp/core"
	"github.com/cwbudde/algo-fourier/internal/testutil"
)

func TestAnalyzeRecoversCosineHarmonic(t *testing.T) {
	for k := 1; k <= 3; k++ {
		f := testutil.CosineWave(float64(k) * DefaultBaseFrequency)

		c, err := Analyze(f, 5)
		if err != nil {
			t.Fatalf("Analyze() error = %v", err)
		}

		for n := range c.Cos {
			want := 0.0
			if n == k-1 {
				want = 1
			}
			if math.Abs(c.Cos[n]-want) > 0.05 {
				t.Fatalf("k=%d: Cos[%d] = %v, want %v", k, n, c.Cos[n], want)
			}
			if math.Abs(c.Sin[n]) > 0.05 {
				t.Fatalf("k=%d: Sin[%d] = %v, want 0", k, n, c.Sin[n])
			}
		}
		if math.Abs(c.A0) > 0.05 {
			t.Fatalf("k=%d: A0 = %v, want 0", k, c.A0)
		}
	}
}

func TestAnalyzeRecoversSineHarmonic(t *testing.T) {
	c, err := Analyze(testutil.SineWave(2*DefaultBaseFrequency), 4)
	if err != nil {
		t.Fatalf("Analyze() error = %v", err)
	}

	want := []float64{0, 1, 0, 0}
	testutil.RequireSliceNearlyEqual(t, c.Sin, want, 1e-9)
	testutil.RequireSliceNearlyEqual(t, c.Cos, make([]float64, 4), 1e-9)
}

func TestAnalyzeDCTerm(t *testing.T) {
	c, err := Analyze(testutil.Constant(1/math.Sqrt2), 2)
	if err != nil {
		t.Fatalf("Analyze() error = %v", err)
	}
	if math.Abs(c.A0-1) > 1e-12 {
		t.Fatalf("A0 = %v, want 1", c.A0)
	}
}

func TestAnalyzeLinearity(t *testing.T) {
	f := testutil.CosineWave(DefaultBaseFrequency)
	g := testutil.SineWave(3 * DefaultBaseFrequency)
	sum := func(t float64) float64 { return 2*f(t) + g(t) + 0.5 }

	cf, err := Analyze(f, 5)
	if err != nil {
		t.Fatalf("Analyze(f) error = %v", err)
	}
	cg, err := Analyze(g, 5)
	if err != nil {
		t.Fatalf("Analyze(g) error = %v", err)
	}
	cdc, err := Analyze(testutil.Constant(0.5), 5)
	if err != nil {
		t.Fatalf("Analyze(dc) error = %v", err)
	}
	cs, err := Analyze(sum, 5)
	if err != nil {
		t.Fatalf("Analyze(sum) error = %v", err)
	}

	want, err := cf.Add(cf)
	if err != nil {
		t.Fatalf("Add() error = %v", err)
	}
	if want, err = want.Add(cg); err != nil {
		t.Fatalf("Add() error = %v", err)
	}
	if want, err = want.Add(cdc); err != nil {
		t.Fatalf("Add() error = %v", err)
	}

	if math.Abs(cs.A0-want.A0) > 1e-9 {
		t.Fatalf("A0 = %v, want %v", cs.A0, want.A0)
	}
	testutil.RequireSliceNearlyEqual(t, cs.Cos, want.Cos, 1e-9)
	testutil.RequireSliceNearlyEqual(t, cs.Sin, want.Sin, 1e-9)
}

func TestAnalyzeZeroHarmonics(t *testing.T) {
	c, err := Analyze(testutil.Constant(1), 0)
	if err != nil {
		t.Fatalf("Analyze() error = %v", err)
	}
	if len(c.Cos) != 0 || len(c.Sin) != 0 {
		t.Fatalf("len(Cos)=%d len(Sin)=%d, want 0", len(c.Cos), len(c.Sin))
	}
	if math.Abs(c.A0-math.Sqrt2) > 1e-12 {
		t.Fatalf("A0 = %v, want sqrt(2)", c.A0)
	}
}

func TestAnalyzeLengthInvariant(t *testing.T) {
	for _, n := range []int{1, 5, 17} {
		c, err := Analyze(testutil.SineWave(DefaultBaseFrequency), n)
		if err != nil {
			t.Fatalf("Analyze() error = %v", err)
		}
		if len(c.Cos) != n || len(c.Sin) != n {
			t.Fatalf("n=%d: len(Cos)=%d len(Sin)=%d", n, len(c.Cos), len(c.Sin))
		}
		if c.BaseFrequency != DefaultBaseFrequency {
			t.Fatalf("BaseFrequency = %v, want %v", c.BaseFrequency, DefaultBaseFrequency)
		}
	}
}

func TestAnalyzeRejectsInvalidInput(t *testing.T) {
	f := testutil.SineWave(DefaultBaseFrequency)

	tests := []struct {
		name string
		run  func() error
		want error
	}{
		{
			name: "negative harmonics",
			run:  func() error { _, err := Analyze(f, -1); return err },
			want: core.ErrInvalidArgument,
		},
		{
			name: "zero steps",
			run:  func() error { _, err := Analyze(f, 5, WithBaseFrequency(441), WithIntegrationSteps(0)); return err },
			want: core.ErrInvalidArgument,
		},
		{
			name: "nil function",
			run:  func() error { _, err := Analyze(nil, 5); return err },
			want: core.ErrInvalidArgument,
		},
		{
			name: "zero base frequency",
			run:  func() error { _, err := Analyze(f, 5, WithBaseFrequency(0)); return err },
			want: core.ErrNumericDegeneracy,
		},
		{
			name: "negative base frequency",
			run:  func() error { _, err := Analyze(f, 5, WithBaseFrequency(-1)); return err },
			want: core.ErrNumericDegeneracy,
		},
		{
			name: "nan base frequency",
			run:  func() error { _, err := Analyze(f, 5, WithBaseFrequency(math.NaN())); return err },
			want: core.ErrInvalidArgument,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.run(); !errors.Is(err, tt.want) {
				t.Fatalf("error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestInnerProduct(t *testing.T) {
	one := testutil.Constant(1)

	got, err := InnerProduct(one, one, 10)
	if err != nil {
		t.Fatalf("InnerProduct() error = %v", err)
	}
	if math.Abs(got-2) > 1e-12 {
		t.Fatalf("InnerProduct(1, 1) = %v, want 2", got)
	}

	if _, err := InnerProduct(one, nil, 10); !errors.Is(err, core.ErrInvalidArgument) {
		t.Fatalf("InnerProduct(nil) error = %v, want ErrInvalidArgument", err)
	}
	if _, err := InnerProduct(one, one, 0); !errors.Is(err, core.ErrInvalidArgument) {
		t.Fatalf("InnerProduct(steps=0) error = %v, want ErrInvalidArgument", err)
	}
}

func TestInnerProductEvaluatesLeftEndpoints(t *testing.T) {
	var seen []float64
	record := func(t float64) float64 {
		seen = append(seen, t)
		return 1
	}

	if _, err := InnerProduct(record, testutil.Constant(1), 4); err != nil {
		t.Fatalf("InnerProduct() error = %v", err)
	}

	testutil.RequireSliceNearlyEqual(t, seen, []float64{0, 0.25, 0.5, 0.75}, 0)
}

func TestNewAnalyzerWithConfig(t *testing.T) {
	cfg := core.ApplyOptions(core.WithBaseFrequency(100), core.WithIntegrationSteps(400))

	a, err := NewAnalyzer(WithConfig(cfg))
	if err != nil {
		t.Fatalf("NewAnalyzer() error = %v", err)
	}
	if a.BaseFrequency() != 100 || a.IntegrationSteps() != 400 {
		t.Fatalf("analyzer = (%v, %d), want (100, 400)", a.BaseFrequency(), a.IntegrationSteps())
	}

	c, err := a.Analyze(testutil.CosineWave(200), 3)
	if err != nil {
		t.Fatalf("Analyze() error = %v", err)
	}
	testutil.RequireSliceNearlyEqual(t, c.Cos, []float64{0, 1, 0}, 1e-9)
}
