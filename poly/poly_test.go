package poly

import (
	"testing"
)

func TestPolynomialArithmetic(t *testing.T) {
	a := FromReals(1, 1)  // x + 1
	b := FromReals(-1, 1) // x - 1
	diff(t, FromReals(-1, 0, 1), a.Mul(b))
	diff(t, FromReals(1, 1, 3), a.Add(FromReals(0, 0, 3)))
	diff(t, FromReals(-1, -1, 3), FromReals(0, 0, 3).Sub(a))
	diff(t, FromReals(1, 3, 3, 1), a.Pow(3))
	diff(t, FromReals(1), a.Pow(0))
	diff(t, FromReals(-1, -1), a.Neg())
	diff(t, New(C(0, 1), C(0, 1)), a.MulScalar(C(0, 1)))
	diff(t, a, Polynomial(nil).Add(a))
}

func TestPolynomialPowNegative(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected a panic")
		}
	}()
	FromReals(1, 1).Pow(-1)
}

func TestPolynomialFromReals(t *testing.T) {
	diff(t, Polynomial{Real(1.5), Real(-2)}, FromReals(1.5, -2.0))
	diff(t, Polynomial{Real(3)}, FromReals[int8](3))
	diff(t, Polynomial{{}}, FromReals[float64]())
	diff(t, Polynomial{{}}, New())
}

func TestPolynomialFromRoots(t *testing.T) {
	diff(t, FromReals(-1, 0, 1), FromRoots(Real(1), Real(-1)))
	diff(t, FromReals(1, 0, 1), FromRoots(C(0, 1), C(0, -1)))
}

func TestPolynomialEval(t *testing.T) {
	// 2x³ − 6x² + 2x − 1
	p := FromReals(-1, 2, -6, 2)
	diff(t, Real(5), p.Eval(Real(3)))
	diff(t, 5.0, p.EvalReal(3))
	diff(t, Real(-1), p.Evaluate(Real(0)))

	// x² + 1 at i
	q := FromReals(1, 0, 1)
	diff(t, Complex{}, q.Eval(C(0, 1)))
	diff(t, 0.0, Polynomial(nil).EvalReal(2))
}

func TestPolynomialDifferentiate(t *testing.T) {
	p := FromReals(5, 3, 0, 2) // 2x³ + 3x + 5
	diff(t, FromReals(3, 0, 6), p.Differentiate())
	diff(t, Polynomial{{}}, FromReals(7).Differentiate())
}

func TestPolynomialIntegrate(t *testing.T) {
	p := FromReals(3, 0, 6)
	diff(t, FromReals(5, 3, 0, 2), p.Integrate(Real(5)))

	for _, p := range []Polynomial{
		FromReals(1, 2, 3, 4, 5),
		New(C(1, 1), C(-2, 0.5), C(0, 3)),
		FromReals(0.25),
	} {
		back := p.Integrate(C(42, -1)).Differentiate()
		diff(t, p, back, approx(1e-14))
	}

	// ∫₀¹ x² dx
	sq := FromReals(0, 0, 1)
	diff(t, Real(1.0/3.0), sq.Integral(Real(0), Real(1)), approx(1e-15))
}

func TestPolynomialClean(t *testing.T) {
	p := FromReals(1, 2, 0, 0)
	p.Clean()
	diff(t, FromReals(1, 2), p)
	diff(t, 1, p.Degree())

	z := FromReals(0, 0, 0)
	z.Clean()
	diff(t, Polynomial{{}}, z)
	if !z.IsZero() {
		t.Errorf("%s isn't zero", z)
	}

	var empty Polynomial
	empty.Clean()
	diff(t, Polynomial{{}}, empty)
}

func TestPolynomialNormalize(t *testing.T) {
	for _, p := range []Polynomial{
		FromReals(3, 7, 0.1),
		FromReals(1, 2, 3, 0),
		New(C(1, 1), C(0, 3)),
		FromReals(1e-9, 3, 1e9),
	} {
		p.Normalize()
		if lead := p.Lead(); lead != Real(1) {
			t.Errorf("%s: got leading coefficient %s, want exactly 1", p, lead)
		}
	}

	z := FromReals(0, 0)
	z.Normalize()
	diff(t, Polynomial{{}}, z)
}

func TestPolynomialSimplify(t *testing.T) {
	p := New(C(1, 1e-14), C(2e-13, 3), C(1e-15, -1e-13))
	p.Simplify(1e-12)
	diff(t, New(C(1, 0), C(0, 3)), p)
}

func TestPolynomialDivide(t *testing.T) {
	p := FromReals(2, 4, 6)
	p.Divide(Real(2))
	diff(t, FromReals(1, 2, 3), p)
}

func TestPolynomialDivMod(t *testing.T) {
	tests := []struct {
		p, d     Polynomial
		quo, rem Polynomial
	}{
		// (x³ − 1) / (x − 1) = x² + x + 1
		{FromReals(-1, 0, 0, 1), FromReals(-1, 1), FromReals(1, 1, 1), Polynomial{{}}},
		// (x² + 1) / (x + 1) = x − 1, remainder 2
		{FromReals(1, 0, 1), FromReals(1, 1), FromReals(-1, 1), FromReals(2)},
		{FromReals(1, 2), FromReals(0, 0, 1), Polynomial{{}}, FromReals(1, 2)},
	}
	for _, tt := range tests {
		quo, rem := tt.p.DivMod(tt.d)
		diff(t, tt.quo, quo)
		diff(t, tt.rem, rem)
	}
}

func TestPolynomialEqual(t *testing.T) {
	if !FromReals(1, 2).Equal(FromReals(1, 2, 0)) {
		t.Error("trailing zeros affect equality")
	}
	if FromReals(1, 2).Equal(FromReals(1, 2.0000001)) {
		t.Error("different polynomials are equal")
	}
	if !FromReals(1, 2).ApproxEqual(FromReals(1, 2.0000001), 1e-6) {
		t.Error("close polynomials aren't approximately equal")
	}
}

func TestPolynomialString(t *testing.T) {
	tests := []struct {
		p    Polynomial
		want string
	}{
		{FromReals(-1, 0, 1), "x^2 + (-1)"},
		{FromReals(2, -3, 0, 1), "x^3 + (-3)x + 2"},
		{FromReals(0, 2), "2x"},
		{FromReals(0, 1), "x"},
		{New(C(1, 1)), "(1+1i)"},
		{Polynomial{{}}, "0"},
	}
	for _, tt := range tests {
		diff(t, tt.want, tt.p.String())
	}
}
