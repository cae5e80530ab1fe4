package bezier

import (
	"math"
	"testing"
)

func checkClosed(t *testing.T, curves []Bezier, eps float64) {
	t.Helper()
	for i, c := range curves {
		next := curves[(i+1)%len(curves)]
		if d := c.End().Distance(next.Start()); d > eps {
			t.Errorf("curve %d ends at %s, curve %d starts at %s", i, c.End(), (i+1)%len(curves), next.Start())
		}
	}
}

func TestOutlineLinear(t *testing.T) {
	l := Linear(Pt(0, 0), Pt(10, 0))
	out, st := l.Outline(1, 2)
	if st != StatusOK {
		t.Fatalf("got status %s", st)
	}
	want := [][]Point{
		{Pt(0, -2), Pt(0, -0.5), Pt(0, 1)},
		{Pt(0, 1), Pt(5, 1), Pt(10, 1)},
		{Pt(10, 1), Pt(10, -0.5), Pt(10, -2)},
		{Pt(10, -2), Pt(5, -2), Pt(0, -2)},
	}
	var got [][]Point
	for _, c := range out {
		got = append(got, c.Points())
	}
	diff(t, want, got, approx(1e-12))

	// d2 defaults to d1
	out, _ = l.Outline(1, 0)
	diff(t, []Point{Pt(10, -1), Pt(5, -1), Pt(0, -1)}, out[3].Points(), approx(1e-12))
}

func TestOutline(t *testing.T) {
	b := Cubic(Pt(0, 0), Pt(10, 20), Pt(20, 20), Pt(30, 0))
	out, st := b.Outline(2, 1)
	if st != StatusOK {
		t.Fatalf("got status %s", st)
	}
	pieces := b.Reduce()
	if len(out) != 2*len(pieces)+2 {
		t.Fatalf("got %d curves, want %d", len(out), 2*len(pieces)+2)
	}
	checkClosed(t, out, 1e-6)

	n := len(out)
	startCap := out[0]
	endCap := out[n/2]
	diff(t, b.OffsetAt(0, -1).P, startCap.Start(), approx(1e-9))
	diff(t, b.OffsetAt(0, 2).P, startCap.End(), approx(1e-9))
	diff(t, b.OffsetAt(1, 2).P, endCap.Start(), approx(1e-9))
	diff(t, b.OffsetAt(1, -1).P, endCap.End(), approx(1e-9))
	for _, c := range []Bezier{startCap, endCap} {
		if !c.IsLinear() {
			t.Errorf("cap %s isn't straight", c)
		}
	}
}

func TestOutlineGraduated(t *testing.T) {
	l := Linear(Pt(0, 0), Pt(10, 0))
	out, st := l.OutlineGraduated(1, 1, 3, 3)
	if st != StatusOK {
		t.Fatalf("got status %s", st)
	}
	diff(t, []Point{Pt(0, 1), Pt(5, 2), Pt(10, 3)}, out[1].Points(), approx(1e-12))
	diff(t, []Point{Pt(10, -3), Pt(5, -2), Pt(0, -1)}, out[3].Points(), approx(1e-12))

	b := Cubic(Pt(0, 0), Pt(10, 20), Pt(20, 20), Pt(30, 0))
	out, st = b.OutlineGraduated(1, 1, 3, 3)
	if st != StatusOK {
		t.Fatalf("got status %s", st)
	}
	checkClosed(t, out, 1e-6)
	n := len(out)
	if l := out[0].Start().Distance(out[0].End()); math.Abs(l-2) > 1e-9 {
		t.Errorf("got start cap of length %g, want 2", l)
	}
	if l := out[n/2].Start().Distance(out[n/2].End()); math.Abs(l-6) > 1e-3 {
		t.Errorf("got end cap of length %g, want 6", l)
	}
}

func TestOutlineShapes(t *testing.T) {
	b := Cubic(Pt(0, 0), Pt(10, 20), Pt(20, 20), Pt(30, 0))
	shapes, st := b.OutlineShapes(2, 2, 0)
	if st != StatusOK {
		t.Fatalf("got status %s", st)
	}
	pieces := b.Reduce()
	if len(shapes) != len(pieces) {
		t.Fatalf("got %d shapes for %d pieces", len(shapes), len(pieces))
	}
	if len(shapes) < 2 {
		t.Fatalf("expected several shapes, got %d", len(shapes))
	}
	for i, s := range shapes {
		if got, want := s.StartCap.Virtual, i > 0; got != want {
			t.Errorf("shape %d: got virtual start cap = %t, want %t", i, got, want)
		}
		if got, want := s.EndCap.Virtual, i < len(shapes)-1; got != want {
			t.Errorf("shape %d: got virtual end cap = %t, want %t", i, got, want)
		}
		checkClosed(t, []Bezier{s.StartCap.Bezier, s.Forward, s.EndCap.Bezier, s.Back}, 1e-9)

		box := s.Box.Expand(1e-9)
		for _, e := range []Bezier{s.Forward, s.Back} {
			for j := range 11 {
				if p := e.Compute(float64(j) / 10); !box.Contains(p) {
					t.Errorf("shape %d: %s isn't in %s", i, p, box)
				}
			}
		}
		// the shape covers its piece of the curve
		diff(t, pieces[i].OffsetAt(0, 2).P, s.Forward.Start(), approx(1e-9))
		diff(t, pieces[i].OffsetAt(1, -2).P, s.Back.Start(), approx(1e-9))
	}
}

func TestShapeIntersections(t *testing.T) {
	h, _ := Linear(Pt(0, 0), Pt(10, 0)).OutlineShapes(1, 1, 0.5)
	v, _ := Linear(Pt(5, -5), Pt(5, 5)).OutlineShapes(1, 1, 0.5)
	if len(h) != 1 || len(v) != 1 {
		t.Fatalf("got %d and %d shapes, want 1 each", len(h), len(v))
	}
	if h[0].StartCap.Virtual || h[0].EndCap.Virtual {
		t.Error("shape of a single piece has virtual caps")
	}

	// The long sides of each shape cross the long sides of the other.
	hits := h[0].Intersections(v[0])
	if len(hits) != 4 {
		t.Fatalf("got %d intersecting edge pairs, want 4", len(hits))
	}
	for _, sh := range hits {
		if len(sh.Hits) != 1 {
			t.Errorf("got %d hits between %s and %s, want 1", len(sh.Hits), sh.C1, sh.C2)
			continue
		}
		hit := sh.Hits[0]
		p1 := sh.C1.Compute(hit.T1)
		p2 := sh.C2.Compute(hit.T2)
		if d := p1.Distance(p2); d > 0.5 {
			t.Errorf("hit points %s and %s are %g apart", p1, p2, d)
		}
		if math.Abs(math.Abs(p1.X-5)-1) > 0.25 || math.Abs(math.Abs(p1.Y)-1) > 0.25 {
			t.Errorf("unexpected hit at %s", p1)
		}
	}

	far, _ := Linear(Pt(50, 50), Pt(60, 50)).OutlineShapes(1, 1, 0.5)
	if hits := h[0].Intersections(far[0]); len(hits) != 0 {
		t.Errorf("got %d hits for distant shapes", len(hits))
	}
}
