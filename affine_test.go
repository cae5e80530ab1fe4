package bezier

import (
	"math"
	"testing"
)

func assertNear(t *testing.T, p0 Point, p1 Point, epsilon float64) {
	t.Helper()
	if d := p1.Sub(p0).Hypot(); d > epsilon {
		t.Fatalf("got %s, expected %s", p0, p1)
	}
}

func TestAffineBasic(t *testing.T) {
	const epsilon = 1e-9
	p := Pt(3, 4)

	assertNear(t, p.Transform(Rotate(0)), p, epsilon)
	assertNear(t, p.Transform(Rotate(math.Pi/2)), Pt(-4, 3), epsilon)
	assertNear(t, p.Transform(Translate(Vec(5, 6))), Pt(8, 10), epsilon)
	assertNear(t, p.Transform(Translate(Vec(1, 0)).ThenRotate(math.Pi)), Pt(-4, -4), epsilon)
}

func TestAffineMul(t *testing.T) {
	const epsilon = 1e-9
	a1 := Affine{XX: 1, YX: 2, XY: 3, YY: 4, X0: 5, Y0: 6}
	a2 := Affine{XX: 0.1, YX: 1.2, XY: 2.3, YY: 3.4, X0: 4.5, Y0: 5.6}

	for _, p := range []Point{Pt(1, 0), Pt(0, 1), Pt(1, 1)} {
		assertNear(t, p.Transform(a2).Transform(a1), p.Transform(a1.Mul(a2)), epsilon)
	}
}

func TestAlignLine(t *testing.T) {
	const epsilon = 1e-9
	l := Line{Pt(1, 1), Pt(4, 5)}
	aff := AlignLine(l)
	assertNear(t, l.P0.Transform(aff), Pt(0, 0), epsilon)
	assertNear(t, l.P1.Transform(aff), Pt(5, 0), epsilon)
	assertNear(t, l.Eval(0.3).Transform(aff), Pt(1.5, 0), epsilon)

	// Points to the left of the line end up above the x axis.
	if y := Pt(0, 3).Transform(aff).Y; y <= 0 {
		t.Errorf("got y = %g, want > 0", y)
	}
}
