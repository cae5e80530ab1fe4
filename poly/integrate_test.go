package poly

import (
	"errors"
	"math"
	"testing"
)

func TestTrapezoidReusesSum(t *testing.T) {
	calls := 0
	f := func(x float64) float64 {
		calls++
		return x * x
	}
	tr := NewTrapezoid(f, 0, 1)
	diff(t, 0.5, tr.Next())
	diff(t, 2, calls)
	// Second refinement only evaluates the midpoint.
	diff(t, 0.375, tr.Next())
	diff(t, 3, calls)

	var est float64
	for range 8 {
		est = tr.Next()
	}
	diff(t, 10, tr.Refinements())
	// 2 + 1 + 2 + 4 + … + 256
	diff(t, 2+511, calls)
	diff(t, 1.0/3.0, est, approx(1e-5))
}

func TestSimpson(t *testing.T) {
	diff(t, 2.0, Simpson(math.Sin, 0, math.Pi), approx(1e-7))
	diff(t, math.E-1, Simpson(math.Exp, 0, 1), approx(1e-7))

	// Simpson's rule is exact for cubics.
	cubic := func(x float64) float64 { return x*x*x - 2*x + 1 }
	diff(t, 3.75, Simpson(cubic, -1, 2), approx(1e-12))

	zero := func(float64) float64 { return 0 }
	diff(t, 0.0, Simpson(zero, 0, 1))
}

func TestRomberg(t *testing.T) {
	diff(t, math.E-1, Romberg(math.Exp, 0, 1), approx(1e-6))
	diff(t, math.Pi/4, Romberg(func(x float64) float64 { return 1 / (1 + x*x) }, 0, 1), approx(1e-6))

	p := FromReals(1, -3, 0, 4)
	want := p.Integral(Real(-1), Real(2)).Re
	diff(t, want, Romberg(p.EvalReal, -1, 2), approx(1e-9))
}

func TestInterpolate(t *testing.T) {
	xs := []float64{0, 1, 2, 3}
	ys := make([]float64, len(xs))
	for i, x := range xs {
		ys[i] = x*x + 1
	}
	y, dy := Interpolate(xs, ys, 1.5)
	diff(t, 3.25, y, approx(1e-12))
	diff(t, 0.0, dy, approx(1e-12))

	y, _ = Interpolate([]float64{2}, []float64{7}, 10)
	diff(t, 7.0, y)

	y, _ = Interpolate(xs, ys, 2)
	diff(t, 5.0, y)

	defer func() {
		if recover() == nil {
			t.Error("expected panic for mismatched lengths")
		}
	}()
	Interpolate(xs, ys[:2], 0)
}

func TestBisection(t *testing.T) {
	f := func(x float64) float64 { return x*x - 2 }
	x, err := Bisection(f, 0, 2, 0)
	if err != nil {
		t.Fatal(err)
	}
	diff(t, math.Sqrt2, x, approx(1e-14))

	// Reversed bounds and a decreasing function.
	g := func(x float64) float64 { return math.Cos(x) }
	x, err = Bisection(g, 3, 0, 10)
	if err != nil {
		t.Fatal(err)
	}
	diff(t, math.Pi/2, x, approx(1e-10))

	// A root at an endpoint is returned as is.
	x, err = Bisection(f, math.Sqrt2, 3, 0)
	if err != nil {
		t.Fatal(err)
	}
	diff(t, math.Sqrt2, x)

	if _, err := Bisection(f, 2, 3, 0); !errors.Is(err, ErrNoBracket) {
		t.Errorf("got error %v, want %v", err, ErrNoBracket)
	}
}
