package bezier

import (
	"fmt"
	"math"
)

// Line represents a line segment.
type Line struct {
	// The line's start point.
	P0 Point
	// The line's end point.
	P1 Point
}

// LineHit is the intersection of two line segments.
type LineHit struct {
	// Parameter on the receiver.
	T0 float64
	// Parameter on the other line.
	T1 float64
	// The intersection point.
	Point Point
}

func (l Line) String() string {
	return fmt.Sprintf("%s→%s", l.P0, l.P1)
}

// Length returns the length of the line.
func (l Line) Length() float64 {
	return l.P1.Sub(l.P0).Hypot()
}

func (l Line) Eval(t float64) Point {
	return l.P0.Lerp(l.P1, t)
}

// Midpoint returns the point halfway between P0 and P1.
func (l Line) Midpoint() Point {
	return l.P0.Midpoint(l.P1)
}

func (l Line) IsInf() bool {
	return l.P0.IsInf() || l.P1.IsInf()
}

func (l Line) IsNaN() bool {
	return l.P0.IsNaN() || l.P1.IsNaN()
}

func (l Line) Translate(v Vec2) Line {
	return Line{
		P0: l.P0.Translate(v),
		P1: l.P1.Translate(v),
	}
}

func (l Line) Transform(aff Affine) Line {
	return Line{
		P0: l.P0.Transform(aff),
		P1: l.P1.Transform(aff),
	}
}

func (l Line) Subsegment(start, end float64) Line {
	return Line{l.Eval(start), l.Eval(end)}
}

// BBox returns the line's bounding box.
func (l Line) BBox() BBox {
	return BBoxOf(l.P0, l.P1)
}

// Bezier returns the line as a first order curve.
func (l Line) Bezier() Bezier {
	return Linear(l.P0, l.P1)
}

// CrossingPoint computes the point where two lines, if extended to infinity,
// would cross.
//
// Parallel lines result in [StatusNone]. Coincident lines, and lines of zero
// length, result in [StatusDegenerate].
func (l Line) CrossingPoint(o Line) (Point, Status) {
	ab := l.P1.Sub(l.P0)
	cd := o.P1.Sub(o.P0)
	if ab == (Vec2{}) || cd == (Vec2{}) {
		return Point{}, StatusDegenerate
	}
	pcd := ab.Cross(cd)
	if pcd == 0 {
		if ab.Cross(o.P0.Sub(l.P0)) == 0 {
			return Point{}, StatusDegenerate
		}
		return Point{}, StatusNone
	}
	h := ab.Cross(l.P0.Sub(o.P0)) / pcd
	return o.P0.Translate(cd.Mul(h)), StatusOK
}

// Intersect intersects two line segments. Segments that don't touch result
// in [StatusNone]. Parallel segments are [StatusDegenerate] if they lie on
// the same line and [StatusNone] otherwise.
func (l Line) Intersect(o Line) (LineHit, Status) {
	const epsilon = 1e-9
	p0 := o.P0
	p1 := o.P1
	dx := p1.X - p0.X
	dy := p1.Y - p0.Y

	det := dx*(l.P1.Y-l.P0.Y) - dy*(l.P1.X-l.P0.X)
	if math.Abs(det) < epsilon {
		if math.Abs(dx*(p0.Y-l.P0.Y)-dy*(p0.X-l.P0.X)) < epsilon {
			return LineHit{}, StatusDegenerate
		}
		return LineHit{}, StatusNone
	}
	// position on l
	t := dx*(p0.Y-l.P0.Y) - dy*(p0.X-l.P0.X)
	t /= det
	if t < -epsilon || t > 1+epsilon {
		return LineHit{}, StatusNone
	}
	// position on o
	u := (l.P0.X-p0.X)*(l.P1.Y-l.P0.Y) - (l.P0.Y-p0.Y)*(l.P1.X-l.P0.X)
	u /= det
	if u < -epsilon || u > 1+epsilon {
		return LineHit{}, StatusNone
	}
	t = clamp(t, 0, 1)
	u = clamp(u, 0, 1)
	return LineHit{T0: t, T1: u, Point: l.Eval(t)}, StatusOK
}
