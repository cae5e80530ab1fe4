package bezier

import (
	"slices"
)

// lineCurve returns the straight quadratic from p1 to p2.
func lineCurve(p1, p2 Point) Bezier {
	return newBezier([]Point{p1, p1.Midpoint(p2), p2}, 0, 1)
}

// Outline returns the closed boundary of the area within d1 of the curve
// on the side its normals point to and within d2 on the other side. A d2 of
// zero means d2 = d1.
//
// The boundary is the start cap, the forward offset curves, the end cap and
// the backward offset curves, in that order, such that each curve starts
// where the previous one ends. Caps are straight lines.
func (b Bezier) Outline(d1, d2 float64) ([]Bezier, Status) {
	if d2 == 0 {
		d2 = d1
	}
	return b.outline(d1, d2, d1, d2, false)
}

// OutlineGraduated is like [Bezier.Outline], but the distances taper
// linearly along the arc length of the curve: from d1 to d3 on the side of
// the normals, and from d2 to d4 on the other side.
func (b Bezier) OutlineGraduated(d1, d2, d3, d4 float64) ([]Bezier, Status) {
	return b.outline(d1, d2, d3, d4, true)
}

func (b Bezier) outline(d1, d2, d3, d4 float64, graduated bool) ([]Bezier, Status) {
	if b.linear {
		n0 := b.Normal(0)
		n1 := b.Normal(1)
		start := b.Start()
		end := b.End()

		s := start.Translate(n0.Mul(d1))
		e := end.Translate(n1.Mul(d3))
		fline := newBezier([]Point{s, s.Midpoint(e), e}, 0, 1)

		s = start.Translate(n0.Mul(-d2))
		e = end.Translate(n1.Mul(-d4))
		bline := newBezier([]Point{e, s.Midpoint(e), s}, 0, 1)

		return []Bezier{
			lineCurve(bline.End(), fline.Start()),
			fline,
			lineCurve(fline.End(), bline.Start()),
			bline,
		}, StatusOK
	}

	pieces := b.Reduce()
	if pieces == nil {
		return nil, StatusNone
	}
	tlen := b.Length()
	var alen float64
	fcurves := make([]Bezier, 0, len(pieces))
	bcurves := make([]Bezier, 0, len(pieces))
	for _, s := range pieces {
		slen := s.Length()
		var fc, bc Bezier
		var fst, bst Status
		if graduated {
			fc, fst = s.ScaleFunc(taper(d1, d3, tlen, alen, slen))
			bc, bst = s.ScaleFunc(taper(-d2, -d4, tlen, alen, slen))
		} else {
			fc, fst = s.Scale(d1)
			bc, bst = s.Scale(-d2)
		}
		if fst != StatusOK || bst != StatusOK {
			return nil, StatusDegenerate
		}
		fcurves = append(fcurves, fc)
		bcurves = append(bcurves, bc.Reverse())
		alen += slen
	}
	slices.Reverse(bcurves)

	fs := fcurves[0].Start()
	fe := fcurves[len(fcurves)-1].End()
	bs := bcurves[len(bcurves)-1].End()
	be := bcurves[0].Start()

	out := make([]Bezier, 0, 2*len(pieces)+2)
	out = append(out, lineCurve(bs, fs))
	out = append(out, fcurves...)
	out = append(out, lineCurve(fe, be))
	out = append(out, bcurves...)
	return out, StatusOK
}

// taper returns the distance function for a piece of length slen that
// starts alen into a curve of length tlen, on which the distance changes
// linearly from s to e.
func taper(s, e, tlen, alen, slen float64) func(float64) float64 {
	f1 := alen / tlen
	f2 := (alen + slen) / tlen
	d := e - s
	return func(v float64) float64 {
		return remap(v, 0, 1, s+f1*d, s+f2*d)
	}
}

// Cap is a straight edge closing a [Shape]. A virtual cap lies in the
// interior of an outline, where it touches the neighbouring shape.
type Cap struct {
	Bezier
	Virtual bool
}

// Shape is the part of an outline that belongs to one simple piece of the
// outlined curve.
type Shape struct {
	StartCap Cap
	Forward  Bezier
	Back     Bezier
	EndCap   Cap
	Box      BBox
	// Threshold is used when intersecting the shape's edges, see
	// [IntersectOptions].
	Threshold float64
}

// ShapeHit is a set of intersections between one edge of each of two shapes.
type ShapeHit struct {
	C1, C2 Bezier
	Hits   []Hit
}

func newShape(forward, back Bezier, threshold float64) Shape {
	start := lineCurve(back.End(), forward.Start())
	end := lineCurve(forward.End(), back.Start())
	box := start.BBox().Union(forward.BBox()).Union(back.BBox()).Union(end.BBox())
	return Shape{
		StartCap:  Cap{Bezier: start},
		Forward:   forward,
		Back:      back,
		EndCap:    Cap{Bezier: end},
		Box:       box,
		Threshold: threshold,
	}
}

// OutlineShapes splits the outline of the curve, see [Bezier.Outline], into
// one shape per forward and backward offset pair. Caps between neighbouring
// shapes are virtual. threshold is used for intersecting shapes and
// defaults to [DefaultThreshold] if it is not positive.
func (b Bezier) OutlineShapes(d1, d2, threshold float64) ([]Shape, Status) {
	if d2 == 0 {
		d2 = d1
	}
	if threshold <= 0 {
		threshold = DefaultThreshold
	}
	outline, st := b.Outline(d1, d2)
	if st != StatusOK {
		return nil, st
	}
	n := len(outline)
	var shapes []Shape
	for i := 1; i < n/2; i++ {
		s := newShape(outline[i], outline[n-i], threshold)
		s.StartCap.Virtual = i > 1
		s.EndCap.Virtual = i < n/2-1
		shapes = append(shapes, s)
	}
	return shapes, StatusOK
}

func (s Shape) edges() []Cap {
	return []Cap{s.StartCap, {Bezier: s.Forward}, {Bezier: s.Back}, s.EndCap}
}

// Intersections intersects every real edge of s with every real edge of o.
func (s Shape) Intersections(o Shape) []ShapeHit {
	if !s.Box.Overlaps(o.Box) {
		return nil
	}
	opts := IntersectOptions{Threshold: s.Threshold}
	var out []ShapeHit
	for _, e1 := range s.edges() {
		if e1.Virtual {
			continue
		}
		for _, e2 := range o.edges() {
			if e2.Virtual {
				continue
			}
			if hits := e1.IntersectsOpt(e2.Bezier, opts); len(hits) > 0 {
				out = append(out, ShapeHit{C1: e1.Bezier, C2: e2.Bezier, Hits: hits})
			}
		}
	}
	return out
}
