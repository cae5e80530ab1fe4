package bezier

// OffsetPoint is a point on a curve together with its normal and the point
// offset along that normal.
type OffsetPoint struct {
	// The point on the curve.
	C Point
	// The unit normal at C.
	N Vec2
	// C moved along N by the offset distance.
	P Point
}

// OffsetAt returns the point at t and the point d units along the normal.
func (b Bezier) OffsetAt(t, d float64) OffsetPoint {
	c := b.Compute(t)
	n := b.Normal(t)
	return OffsetPoint{
		C: c,
		N: n,
		P: c.Translate(n.Mul(d)),
	}
}

// Offset returns curves that run at distance d from b, on the side its
// normals point to. Negative distances offset to the other side.
//
// Linear curves are moved along their normals. All other curves are
// reduced to simple pieces, which are offset with [Bezier.Scale]. If the
// curve can't be reduced, Offset returns [StatusNone]. If a piece can't be
// scaled, it returns [StatusDegenerate].
func (b Bezier) Offset(d float64) ([]Bezier, Status) {
	if b.linear {
		return []Bezier{b.translateGraduated(d, d)}, StatusOK
	}
	pieces := b.Reduce()
	if pieces == nil {
		return nil, StatusNone
	}
	out := make([]Bezier, 0, len(pieces))
	for _, s := range pieces {
		c, st := s.Scale(d)
		if st != StatusOK {
			return nil, st
		}
		out = append(out, c)
	}
	return out, StatusOK
}

// translateGraduated offsets a linear curve. Control point i moves along
// the normal by the distance interpolated between d1 and d2. The normal is
// interpolated between the end normals, which only differ for curves that
// are nearly, but not exactly, straight.
func (b Bezier) translateGraduated(d1, d2 float64) Bezier {
	n0 := b.Normal(0)
	n1 := b.Normal(1)
	o := float64(b.Order())
	np := make([]Point, len(b.points))
	for i, p := range b.points {
		f := float64(i) / o
		n := n0.Lerp(n1, f)
		if n.Hypot2() < 1e-12 {
			// the curve doubles back on itself
			n = n0
		}
		np[i] = p.Translate(n.Normalize().Mul((1-f)*d1 + f*d2))
	}
	return newBezier(np, b.t1, b.t2)
}

// pivot returns the point where the normal lines at both ends of the curve
// cross.
func (b Bezier) pivot() (Point, Status) {
	v0 := b.OffsetAt(0, 10)
	v1 := b.OffsetAt(1, 10)
	return Line{v0.P, v0.C}.CrossingPoint(Line{v1.P, v1.C})
}

// Scale returns a curve at distance d from b. It is meant for simple
// curves, see [Bezier.Reduce].
//
// The endpoints are moved along their normals. Interior control points are
// moved so that the tangents at the ends keep their direction, using the
// point where the end normals cross as the center of scaling. If the end
// normals are parallel there is no such point and Scale returns
// [StatusDegenerate].
func (b Bezier) Scale(d float64) (Bezier, Status) {
	if b.linear {
		return b.translateGraduated(d, d), StatusOK
	}
	o, st := b.pivot()
	if st != StatusOK {
		return Bezier{}, StatusDegenerate
	}
	order := b.Order()
	if order > 3 {
		return b.scaleAlongRays(o, func(float64) float64 { return d }), StatusOK
	}

	np := make([]Point, order+1)
	np[0] = b.OffsetAt(0, d).P
	np[order] = b.OffsetAt(1, d).P
	for t := range 2 {
		if order == 2 && t == 1 {
			break
		}
		p := np[t*order]
		tan := Line{p, p.Translate(b.tangent(float64(t)))}
		c, st := tan.CrossingPoint(Line{o, b.points[t+1]})
		if st != StatusOK {
			return Bezier{}, StatusDegenerate
		}
		np[t+1] = c
	}
	return newBezier(np, b.t1, b.t2), StatusOK
}

// ScaleFunc is like [Bezier.Scale], but with a distance that varies along
// the curve. fn maps a parameter in [0, 1] to a distance. Quadratic curves
// are raised to cubics first.
func (b Bezier) ScaleFunc(fn func(t float64) float64) (Bezier, Status) {
	if b.Order() == 2 {
		return b.Raise().ScaleFunc(fn)
	}
	if b.linear {
		return b.translateGraduated(fn(0), fn(1)), StatusOK
	}
	o, st := b.pivot()
	if st != StatusOK {
		return Bezier{}, StatusDegenerate
	}
	return b.scaleAlongRays(o, fn), StatusOK
}

// scaleAlongRays moves the endpoints along their normals by fn(0) and fn(1)
// and each interior control point i directly away from o by fn(i/order),
// towards o for counter-clockwise curves.
func (b Bezier) scaleAlongRays(o Point, fn func(float64) float64) Bezier {
	order := b.Order()
	np := make([]Point, order+1)
	np[0] = b.OffsetAt(0, fn(0)).P
	np[order] = b.OffsetAt(1, fn(1)).P
	for i := 1; i < order; i++ {
		p := b.points[i]
		rc := fn(float64(i) / float64(order))
		if !b.clockwise {
			rc = -rc
		}
		np[i] = p.Translate(p.Sub(o).Normalize().Mul(rc))
	}
	return newBezier(np, b.t1, b.t2)
}
