package bezier

import (
	"testing"
)

func checkReduction(t *testing.T, b Bezier, pieces []Bezier) {
	t.Helper()
	if len(pieces) == 0 {
		t.Fatalf("%s has no simple reduction", b)
	}
	prev := 0.0
	for i, p := range pieces {
		if !p.Simple() {
			t.Errorf("piece %d (%s) isn't simple", i, p)
		}
		t1, t2 := p.Range()
		if t1 != prev {
			t.Errorf("piece %d starts at %g, want %g", i, t1, prev)
		}
		if t2 <= t1 {
			t.Errorf("piece %d has empty range [%g, %g]", i, t1, t2)
		}
		prev = t2
		// pieces are the parts of the curve their ranges say they are
		diff(t, b.Compute(t1), p.Start(), approx(1e-9))
		diff(t, b.Compute(t2), p.End(), approx(1e-9))
		diff(t, b.Compute((t1+t2)/2), p.Compute(0.5), approx(1e-9))
	}
	if prev != 1 {
		t.Errorf("last piece ends at %g, want 1", prev)
	}
}

func TestReduce(t *testing.T) {
	curves := []Bezier{
		Linear(Pt(0, 0), Pt(10, 5)),
		Quad(Pt(0, 0), Pt(5, 10), Pt(10, 0)),
		Cubic(Pt(0, 0), Pt(0, 1), Pt(1, 1), Pt(1, 0)),
		Cubic(Pt(0, 0), Pt(10, 20), Pt(20, 20), Pt(30, 0)),
		Cubic(Pt(0, 0), Pt(10, 30), Pt(20, -30), Pt(30, 0)),
		// loop
		Cubic(Pt(0, 0), Pt(30, 30), Pt(-10, 30), Pt(20, 0)),
		NewBezier(Pt(0, 0), Pt(1, 3), Pt(2, -1), Pt(3, 3), Pt(4, 0)),
		// endpoints that coincide with their neighbours
		Cubic(Pt(0, 0), Pt(50, 100), Pt(100, 0), Pt(100, 0)),
		Cubic(Pt(0, 0), Pt(0, 0), Pt(50, 100), Pt(100, 0)),
		Cubic(Pt(0, 0), Pt(0, 0), Pt(100, 100), Pt(100, 100)),
	}
	for _, b := range curves {
		t.Run(b.String(), func(t *testing.T) {
			checkReduction(t, b, b.Reduce())
		})
	}
}

func TestReduceSimple(t *testing.T) {
	// A curve that is already simple and has no extrema is its own
	// reduction.
	b := Cubic(Pt(0, 0), Pt(10, 1), Pt(20, 3), Pt(30, 6))
	pieces := b.Reduce()
	if len(pieces) != 1 {
		t.Fatalf("got %d pieces, want 1", len(pieces))
	}
	diff(t, b, pieces[0], cmpBezier)
}

func TestReduceSplitsAtExtrema(t *testing.T) {
	b := Cubic(Pt(0, 0), Pt(0, 1), Pt(1, 1), Pt(1, 0))
	pieces := b.Reduce()
	checkReduction(t, b, pieces)
	var found bool
	for _, p := range pieces {
		if _, t2 := p.Range(); t2 == 0.5 {
			found = true
		}
	}
	if !found {
		t.Errorf("no piece ends at the extremum at t = 0.5")
	}
}

func TestReduceOfPiece(t *testing.T) {
	// Reducing part of a curve reports ranges relative to the whole curve.
	b := Cubic(Pt(0, 0), Pt(10, 30), Pt(20, -30), Pt(30, 0))
	part := b.SplitRange(0.25, 0.75)
	pieces := part.Reduce()
	if len(pieces) == 0 {
		t.Fatal("no simple reduction")
	}
	first, _ := pieces[0].Range()
	_, last := pieces[len(pieces)-1].Range()
	diff(t, [2]float64{0.25, 0.75}, [2]float64{first, last}, approx(1e-12))
	for _, p := range pieces {
		t1, t2 := p.Range()
		diff(t, b.Compute((t1+t2)/2), p.Compute(0.5), approx(1e-9))
	}
}
