package bezier

import (
	"fmt"
	"slices"
)

// Bezier3 is a Bézier curve in three dimensions. It supports the subset of
// [Bezier]'s operations that don't depend on the curve lying in a plane.
type Bezier3 struct {
	points  []Vec3
	dpoints []Vec3
}

// NewBezier3 returns the curve with the given control points. It panics if
// fewer than two points are given.
func NewBezier3(points ...Vec3) Bezier3 {
	if len(points) < 2 {
		panic(fmt.Sprintf("bezier: need at least 2 control points, got %d", len(points)))
	}
	b := Bezier3{points: slices.Clone(points)}
	c := float64(len(points) - 1)
	b.dpoints = make([]Vec3, len(points)-1)
	for i := range b.dpoints {
		b.dpoints[i] = points[i+1].Sub(points[i]).Mul(c)
	}
	return b
}

func (b Bezier3) String() string {
	return fmt.Sprintf("Bezier3%v", b.points)
}

// Points returns a copy of the control points.
func (b Bezier3) Points() []Vec3 {
	return slices.Clone(b.points)
}

func (b Bezier3) Order() int {
	return len(b.points) - 1
}

func casteljau3(pts []Vec3, t float64) Vec3 {
	if len(pts) == 1 {
		return pts[0]
	}
	var buf [8]Vec3
	tmp := append(buf[:0], pts...)
	for k := len(tmp) - 1; k > 0; k-- {
		for i := range k {
			tmp[i] = tmp[i].Lerp(tmp[i+1], t)
		}
	}
	return tmp[0]
}

// Compute evaluates the curve at t. The endpoints are returned exactly for
// t = 0 and t = 1.
func (b Bezier3) Compute(t float64) Vec3 {
	switch t {
	case 0:
		return b.points[0]
	case 1:
		return b.points[len(b.points)-1]
	}
	return casteljau3(b.points, t)
}

// Derivative evaluates the first derivative at t.
func (b Bezier3) Derivative(t float64) Vec3 {
	return casteljau3(b.dpoints, t)
}

// Length returns the arc length of the curve, using 24-point Gauss-Legendre
// quadrature.
func (b Bezier3) Length() float64 {
	return gaussLegendre24(func(t float64) float64 {
		return b.Derivative(t).Hypot()
	}, 0, 1)
}

// Split splits the curve at t.
func (b Bezier3) Split(t float64) (left, right Bezier3) {
	n := len(b.points)
	l := make([]Vec3, n)
	r := make([]Vec3, n)
	tmp := slices.Clone(b.points)
	for k := range n {
		l[k] = tmp[0]
		r[n-1-k] = tmp[len(tmp)-1]
		for i := range len(tmp) - 1 {
			tmp[i] = tmp[i].Lerp(tmp[i+1], t)
		}
		tmp = tmp[:len(tmp)-1]
	}
	return NewBezier3(l...), NewBezier3(r...)
}

// Normal returns a unit normal at t. The curve's plane of curvature is
// estimated from the derivatives at t and at t + 0.01, and the tangent is
// rotated by 90° within that plane. The result is NaN where the curve is
// straight.
func (b Bezier3) Normal(t float64) Vec3 {
	r1 := b.Derivative(t).Normalize()
	r2 := b.Derivative(t + 0.01).Normalize()
	c := r2.Cross(r1).Normalize()
	// rotation by 90° about c
	r := [9]float64{
		c.X * c.X, c.X*c.Y - c.Z, c.X*c.Z + c.Y,
		c.X*c.Y + c.Z, c.Y * c.Y, c.Y*c.Z - c.X,
		c.X*c.Z - c.Y, c.Y*c.Z + c.X, c.Z * c.Z,
	}
	return Vec3{
		X: r[0]*r1.X + r[1]*r1.Y + r[2]*r1.Z,
		Y: r[3]*r1.X + r[4]*r1.Y + r[5]*r1.Z,
		Z: r[6]*r1.X + r[7]*r1.Y + r[8]*r1.Z,
	}
}
