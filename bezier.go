package bezier

import (
	"fmt"
	"math"
	"slices"
	"strings"

	"honnef.co/go/bezier/poly"
)

const (
	// ReduceStep is the parameter increment by which [Bezier.Reduce] grows
	// candidate segments.
	ReduceStep = 0.01
	// SimpleAngle is the largest angle between the end normals of a curve
	// that [Bezier.Simple] accepts.
	SimpleAngle = math.Pi / 3
)

// Bezier is a Bézier curve of arbitrary order, described by its control
// points. Orders one to three are the common cases and have fast paths.
//
// A Bezier is immutable. Derived data, such as the control points of its
// derivatives, is computed once by [NewBezier].
//
// Every curve remembers the parameter range it covers on the curve it was
// split from. Curves created with [NewBezier] cover [0, 1].
type Bezier struct {
	points []Point
	// dpoints[k] holds the control points of the (k+1)th derivative.
	dpoints   [][]Vec2
	linear    bool
	clockwise bool
	t1, t2    float64
}

// NewBezier returns the curve with the given control points, in order. The
// curve's order is len(points)−1. It panics if fewer than two points are
// given.
func NewBezier(points ...Point) Bezier {
	if len(points) < 2 {
		panic(fmt.Sprintf("bezier: need at least 2 control points, got %d", len(points)))
	}
	return newBezier(slices.Clone(points), 0, 1)
}

// Linear returns the first-order curve from p0 to p1.
func Linear(p0, p1 Point) Bezier { return NewBezier(p0, p1) }

// Quad returns the quadratic curve with control points p0, p1 and p2.
func Quad(p0, p1, p2 Point) Bezier { return NewBezier(p0, p1, p2) }

// Cubic returns the cubic curve with control points p0 through p3.
func Cubic(p0, p1, p2, p3 Point) Bezier { return NewBezier(p0, p1, p2, p3) }

// newBezier takes ownership of points.
func newBezier(points []Point, t1, t2 float64) Bezier {
	b := Bezier{
		points: points,
		t1:     t1,
		t2:     t2,
	}
	b.dpoints = derive(points)

	order := len(points) - 1
	chord := Line{points[0], points[order]}
	aff := AlignLine(chord)
	var dev float64
	for _, p := range points {
		dev += math.Abs(p.Transform(aff).Y)
	}
	b.linear = dev < chord.Length()/50
	// the first control point that differs from the start decides the
	// direction of the turn
	first := points[1]
	for _, p := range points[1:order] {
		if p != points[0] {
			first = p
			break
		}
	}
	b.clockwise = angleAt(points[0], points[order], first) > 0
	return b
}

// derive computes the control points of every derivative, down to the
// constant one.
func derive(points []Point) [][]Vec2 {
	var out [][]Vec2
	prev := make([]Vec2, len(points))
	for i, p := range points {
		prev[i] = Vec2(p)
	}
	for c := len(prev) - 1; c > 0; c-- {
		d := make([]Vec2, c)
		for j := range d {
			d[j] = prev[j+1].Sub(prev[j]).Mul(float64(c))
		}
		out = append(out, d)
		prev = d
	}
	return out
}

// withRange returns b with the parameter range replaced.
func (b Bezier) withRange(t1, t2 float64) Bezier {
	b.t1 = t1
	b.t2 = t2
	return b
}

// abs maps a parameter of b onto the curve b was split from. The endpoints
// map exactly.
func (b Bezier) abs(t float64) float64 {
	switch t {
	case 0:
		return b.t1
	case 1:
		return b.t2
	default:
		return remap(t, 0, 1, b.t1, b.t2)
	}
}

func (b Bezier) String() string {
	var sb strings.Builder
	sb.WriteString("Bezier[")
	for i, p := range b.points {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(p.String())
	}
	sb.WriteByte(']')
	return sb.String()
}

// Points returns a copy of the control points.
func (b Bezier) Points() []Point {
	return slices.Clone(b.points)
}

// Point returns the ith control point.
func (b Bezier) Point(i int) Point {
	return b.points[i]
}

// Order returns the order of the curve, which is one less than the number of
// control points.
func (b Bezier) Order() int {
	return len(b.points) - 1
}

func (b Bezier) Start() Point { return b.points[0] }
func (b Bezier) End() Point   { return b.points[len(b.points)-1] }

// Range returns the parameter range b covers on the curve it was split from.
func (b Bezier) Range() (t1, t2 float64) {
	return b.t1, b.t2
}

// IsLinear reports whether the control points deviate from the chord by so
// little that the curve can be treated as a straight line.
func (b Bezier) IsLinear() bool {
	return b.linear
}

// Clockwise reports whether the first control point turns clockwise
// relative to the chord, in a y-up coordinate system.
func (b Bezier) Clockwise() bool {
	return b.clockwise
}

func (b Bezier) IsInf() bool {
	return slices.ContainsFunc(b.points, Point.IsInf)
}

func (b Bezier) IsNaN() bool {
	return slices.ContainsFunc(b.points, Point.IsNaN)
}

type vector interface {
	~struct{ X, Y float64 }
}

// bernstein evaluates the Bézier curve with control points pts at t.
func bernstein[T vector](pts []T, t float64) Vec2 {
	mt := 1 - t
	switch len(pts) {
	case 1:
		return Vec2(pts[0])
	case 2:
		return Vec2(pts[0]).Mul(mt).Add(Vec2(pts[1]).Mul(t))
	case 3:
		a := mt * mt
		b := 2 * mt * t
		c := t * t
		return Vec2(pts[0]).Mul(a).
			Add(Vec2(pts[1]).Mul(b)).
			Add(Vec2(pts[2]).Mul(c))
	case 4:
		a := mt * mt * mt
		b := 3 * mt * mt * t
		c := 3 * mt * t * t
		d := t * t * t
		return Vec2(pts[0]).Mul(a).
			Add(Vec2(pts[1]).Mul(b)).
			Add(Vec2(pts[2]).Mul(c)).
			Add(Vec2(pts[3]).Mul(d))
	default:
		// de Casteljau
		tmp := make([]Vec2, len(pts))
		for i, p := range pts {
			tmp[i] = Vec2(p)
		}
		for k := len(tmp) - 1; k > 0; k-- {
			for i := range k {
				tmp[i] = tmp[i].Lerp(tmp[i+1], t)
			}
		}
		return tmp[0]
	}
}

// Compute evaluates the curve at t. The endpoints are returned exactly for
// t = 0 and t = 1.
func (b Bezier) Compute(t float64) Point {
	switch t {
	case 0:
		return b.points[0]
	case 1:
		return b.points[len(b.points)-1]
	}
	return Point(bernstein(b.points, t))
}

// Eval is an alias for [Bezier.Compute].
func (b Bezier) Eval(t float64) Point {
	return b.Compute(t)
}

// Derivative evaluates the first derivative at t.
func (b Bezier) Derivative(t float64) Vec2 {
	return bernstein(b.dpoints[0], t)
}

// SecondDerivative evaluates the second derivative at t. It is zero for
// linear curves.
func (b Bezier) SecondDerivative(t float64) Vec2 {
	if len(b.dpoints) < 2 {
		return Vec2{}
	}
	return bernstein(b.dpoints[1], t)
}

// Hodograph returns the derivative of b as a curve one order lower. The
// hodograph of a first-order curve is the constant curve whose two control
// points are both the derivative.
func (b Bezier) Hodograph() Bezier {
	d := b.dpoints[0]
	pts := make([]Point, max(len(d), 2))
	for i := range pts {
		pts[i] = Point(d[min(i, len(d)-1)])
	}
	return newBezier(pts, 0, 1)
}

// tangent returns the direction of the curve at t. Where the derivative
// vanishes at an end, because the endpoint coincides with its neighbouring
// control points, the curve leaves or arrives along the nearest distinct
// control point. In the interior it falls back to the second derivative,
// and for curves whose points all coincide to the chord.
func (b Bezier) tangent(t float64) Vec2 {
	const eps = 1e-12
	d := b.Derivative(t)
	if d.Hypot2() > eps*eps {
		return d
	}
	n := len(b.points) - 1
	switch t {
	case 0:
		for _, p := range b.points[1:] {
			if v := p.Sub(b.points[0]); v.Hypot2() > eps*eps {
				return v
			}
		}
	case 1:
		for i := n - 1; i >= 0; i-- {
			if v := b.points[n].Sub(b.points[i]); v.Hypot2() > eps*eps {
				return v
			}
		}
	default:
		if dd := b.SecondDerivative(t); dd.Hypot2() > eps*eps {
			return dd
		}
	}
	return b.End().Sub(b.Start())
}

// Normal returns the unit normal at t, which is the tangent rotated by 90°,
// turning the positive x direction into the positive y direction.
func (b Bezier) Normal(t float64) Vec2 {
	return b.tangent(t).Perp().Normalize()
}

func (b Bezier) speed(t float64) float64 {
	return b.Derivative(t).Hypot()
}

// Length returns the arc length of the curve, using 24-point Gauss-Legendre
// quadrature over the speed of the curve. There is no adaptive refinement,
// see [Bezier.Arclen] for that.
func (b Bezier) Length() float64 {
	return gaussLegendre24(b.speed, 0, 1)
}

// Arclen returns the arc length of the curve, integrating the speed of the
// curve with Romberg's method. The speed is smooth between extrema, so
// each monotonic range is integrated on its own.
func (b Bezier) Arclen() float64 {
	_, _, all := b.Extrema()
	var sum float64
	t0 := 0.0
	for _, t := range append(all, 1) {
		if t > t0 {
			sum += poly.Romberg(b.speed, t0, t)
			t0 = t
		}
	}
	return sum
}

// SolveForLength returns the parameter t at which the arc length from the
// start of the curve is l, found by bisection to within accuracy. Lengths
// beyond the ends of the curve clamp to 0 and 1.
func (b Bezier) SolveForLength(l, accuracy float64) float64 {
	if l <= 0 {
		return 0
	}
	total := b.Length()
	if l >= total {
		return 1
	}
	if accuracy <= 0 {
		accuracy = DefaultAccuracy
	}
	digits := int(math.Ceil(-math.Log10(accuracy / total)))
	digits = min(max(digits, 1), poly.DefaultBisectionAccuracy)
	f := func(t float64) float64 {
		return gaussLegendre24(b.speed, 0, t) - l
	}
	t, err := poly.Bisection(f, 0, 1, digits)
	if err != nil {
		// f(0) < 0 < f(1) unless the quadrature is badly off.
		return l / total
	}
	return t
}

// powerBasis converts the one-dimensional Bernstein control values to the
// coefficients of the same polynomial in the power basis.
func powerBasis(vals []float64) poly.Polynomial {
	n := len(vals) - 1
	p := make(poly.Polynomial, n+1)
	for k := range p {
		var sum float64
		for i := 0; i <= k; i++ {
			term := binomial(k, i) * vals[i]
			if (k-i)%2 == 1 {
				term = -term
			}
			sum += term
		}
		p[k] = poly.Real(binomial(n, k) * sum)
	}
	return p
}

func binomial(n, k int) float64 {
	r := 1.0
	for i := 1; i <= k; i++ {
		r = r * float64(n-k+i) / float64(i)
	}
	return r
}

// axisRoots returns the roots in [0, 1] of one coordinate of a curve given
// by its control points.
func axisRoots(pts []Vec2, y bool) []float64 {
	vals := make([]float64, len(pts))
	for i, p := range pts {
		if y {
			vals[i] = p.Y
		} else {
			vals[i] = p.X
		}
	}
	var out []float64
	for _, t := range powerBasis(vals).RealRoots(1e-9) {
		if t >= 0 && t <= 1 {
			out = append(out, t)
		}
	}
	return out
}

// Extrema returns the parameters in [0, 1] at which the x and y coordinates
// of the curve have a vanishing derivative, and the union of both. For
// cubics, the roots of the second derivative are included as well. All
// three slices are sorted and free of duplicates.
func (b Bezier) Extrema() (x, y, all []float64) {
	levels := b.dpoints
	if b.Order() != 3 {
		levels = levels[:1]
	} else {
		levels = levels[:2]
	}
	for _, d := range levels {
		x = append(x, axisRoots(d, false)...)
		y = append(y, axisRoots(d, true)...)
	}
	slices.Sort(x)
	x = slices.Compact(x)
	slices.Sort(y)
	y = slices.Compact(y)
	all = append(slices.Clone(x), y...)
	slices.Sort(all)
	all = slices.Compact(all)
	return x, y, all
}

// BBox returns the tight bounding box of the curve.
func (b Bezier) BBox() BBox {
	_, _, all := b.Extrema()
	pts := make([]Point, 0, len(all)+2)
	pts = append(pts, b.Start(), b.End())
	for _, t := range all {
		pts = append(pts, b.Compute(t))
	}
	return BBoxOf(pts...)
}

// Overlaps reports whether the bounding boxes of b and o overlap.
func (b Bezier) Overlaps(o Bezier) bool {
	return b.BBox().Overlaps(o.BBox())
}

// hull returns every level of de Casteljau's construction at t, starting
// with the control points.
func (b Bezier) hull(t float64) [][]Point {
	levels := [][]Point{b.points}
	for p := b.points; len(p) > 1; {
		next := make([]Point, len(p)-1)
		for i := range next {
			next[i] = p[i].Lerp(p[i+1], t)
		}
		levels = append(levels, next)
		p = next
	}
	return levels
}

// Hull returns all points constructed by de Casteljau's algorithm at t,
// level by level. The last point is the point on the curve.
func (b Bezier) Hull(t float64) []Point {
	var out []Point
	for _, level := range b.hull(t) {
		out = append(out, level...)
	}
	return out
}

// Split is the result of splitting a curve at one parameter.
type Split struct {
	Left, Right Bezier
	// Span is the hull at the split parameter, see [Bezier.Hull].
	Span []Point
}

// Split splits the curve at t into two curves of the same order.
func (b Bezier) Split(t float64) Split {
	levels := b.hull(t)
	n := b.Order()
	left := make([]Point, n+1)
	right := make([]Point, n+1)
	for k := range n + 1 {
		left[k] = levels[k][0]
		lvl := levels[n-k]
		right[k] = lvl[len(lvl)-1]
	}
	tm := b.abs(t)
	var span []Point
	for _, level := range levels {
		span = append(span, level...)
	}
	return Split{
		Left:  newBezier(left, b.t1, tm),
		Right: newBezier(right, tm, b.t2),
		Span:  span,
	}
}

// SplitRange returns the part of the curve between t1 and t2.
func (b Bezier) SplitRange(t1, t2 float64) Bezier {
	var out Bezier
	switch {
	case t1 == 0:
		out = b.Split(t2).Left
	case t2 == 1:
		out = b.Split(t1).Right
	default:
		out = b.Split(t1).Right.Split(remap(t2, t1, 1, 0, 1)).Left
	}
	return out.withRange(b.abs(t1), b.abs(t2))
}

// Simple reports whether the curve is simple enough to be offset by
// scaling. For cubics both interior control points have to lie on the same
// side of the chord. For all curves the end normals have to be less than
// [SimpleAngle] apart.
func (b Bezier) Simple() bool {
	if b.Order() == 3 {
		p := b.points
		a1 := angleAt(p[0], p[3], p[1])
		a2 := angleAt(p[0], p[3], p[2])
		if (a1 > 0 && a2 < 0) || (a1 < 0 && a2 > 0) {
			return false
		}
	}
	n1 := b.Normal(0)
	n2 := b.Normal(1)
	s := clamp(n1.Dot(n2), -1, 1)
	return math.Abs(math.Acos(s)) < SimpleAngle
}

// Raise returns the same curve with one more control point.
func (b Bezier) Raise() Bezier {
	p := b.points
	k := len(p)
	np := make([]Point, k+1)
	np[0] = p[0]
	for i := 1; i < k; i++ {
		w := float64(i) / float64(k)
		np[i] = Point(Vec2(p[i]).Mul(1 - w).Add(Vec2(p[i-1]).Mul(w)))
	}
	np[k] = p[k-1]
	return newBezier(np, b.t1, b.t2)
}

// Reverse returns the curve traversed in the opposite direction. The
// parameter range is kept.
func (b Bezier) Reverse() Bezier {
	np := slices.Clone(b.points)
	slices.Reverse(np)
	return newBezier(np, b.t1, b.t2)
}

func (b Bezier) Translate(v Vec2) Bezier {
	np := make([]Point, len(b.points))
	for i, p := range b.points {
		np[i] = p.Translate(v)
	}
	return newBezier(np, b.t1, b.t2)
}

func (b Bezier) Transform(aff Affine) Bezier {
	np := make([]Point, len(b.points))
	for i, p := range b.points {
		np[i] = p.Transform(aff)
	}
	return newBezier(np, b.t1, b.t2)
}
