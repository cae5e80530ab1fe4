package bezier

import (
	"math"
	"testing"
)

func TestNewBezier3Panics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for a single control point")
		}
	}()
	NewBezier3(V3(1, 2, 3))
}

func TestBezier3(t *testing.T) {
	b := NewBezier3(V3(0, 0, 0), V3(1, 2, 0), V3(2, 0, 3), V3(3, 3, 1))
	if b.Order() != 3 {
		t.Errorf("got order %d, want 3", b.Order())
	}
	diff(t, V3(0, 0, 0), b.Compute(0))
	diff(t, V3(3, 3, 1), b.Compute(1))
	// (1/8)·(0 + 3·⟨1,2,0⟩ + 3·⟨2,0,3⟩ + ⟨3,3,1⟩)
	diff(t, V3(1.5, 9.0/8, 10.0/8), b.Compute(0.5), approx(1e-12))

	left, right := b.Split(0.5)
	diff(t, left.Compute(1), right.Compute(0))
	diff(t, b.Compute(0.25), left.Compute(0.5), approx(1e-12))
	diff(t, b.Compute(0.75), right.Compute(0.5), approx(1e-12))

	for _, ts := range []float64{0, 0.3, 0.7} {
		n := b.Normal(ts)
		if l := n.Hypot(); math.Abs(l-1) > 1e-9 {
			t.Errorf("normal at t = %g has length %g", ts, l)
		}
		if d := n.Dot(b.Derivative(ts)); math.Abs(d) > 1e-9 {
			t.Errorf("normal at t = %g isn't perpendicular to the tangent", ts)
		}
	}
}

func TestBezier3Line(t *testing.T) {
	l := NewBezier3(V3(0, 0, 0), V3(1, 2, 2))
	if got := l.Length(); math.Abs(got-3) > 1e-12 {
		t.Errorf("got length %g, want 3", got)
	}
	diff(t, V3(1, 2, 2), l.Derivative(0.5))
	n := l.Normal(0.5)
	if !math.IsNaN(n.X) {
		t.Errorf("got normal %s for a straight line, want NaN", n)
	}
}
