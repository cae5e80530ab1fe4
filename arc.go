package bezier

import (
	"fmt"
	"math"
)

// MaxArcIterations limits the search for the end of each arc in
// [Bezier.Arcs].
const MaxArcIterations = 100

// Arc is a circular arc, from angle Start to angle End around Center. The
// sign of End − Start is the direction of travel: positive angles rotate
// the positive x direction into the positive y direction.
type Arc struct {
	Center Point
	Radius float64
	Start  float64
	End    float64
	// Interval is the parameter range of the curve the arc approximates,
	// if the arc was produced by [Bezier.Arcs].
	Interval [2]float64
}

func (a Arc) String() string {
	return fmt.Sprintf("arc(%s, r=%g, %g→%g)", a.Center, a.Radius, a.Start, a.End)
}

// Sweep returns the signed angle the arc covers.
func (a Arc) Sweep() float64 {
	return a.End - a.Start
}

// Eval returns the point at fraction t of the way from the start to the end
// of the arc.
func (a Arc) Eval(t float64) Point {
	th := a.Start + t*a.Sweep()
	return a.Center.Translate(VecFromAngle(th).Mul(a.Radius))
}

// Length returns the length of the arc.
func (a Arc) Length() float64 {
	return math.Abs(a.Sweep()) * a.Radius
}

func mod2Pi(th float64) float64 {
	th = math.Mod(th, 2*math.Pi)
	if th < 0 {
		th += 2 * math.Pi
	}
	return th
}

// Contains reports whether the ray from the center at angle th passes
// through the arc.
func (a Arc) Contains(th float64) bool {
	sweep := a.Sweep()
	if math.Abs(sweep) >= 2*math.Pi {
		return true
	}
	if sweep >= 0 {
		return mod2Pi(th-a.Start) <= sweep
	}
	return mod2Pi(a.Start-th) <= -sweep
}

// BBox returns the tight bounding box of the arc.
func (a Arc) BBox() BBox {
	pts := []Point{a.Eval(0), a.Eval(1)}
	for k := range 4 {
		th := float64(k) * math.Pi / 2
		if a.Contains(th) {
			pts = append(pts, a.Center.Translate(VecFromAngle(th).Mul(a.Radius)))
		}
	}
	return BBoxOf(pts...)
}

func (a Arc) Translate(v Vec2) Arc {
	a.Center = a.Center.Translate(v)
	return a
}

// Cubics approximates the arc with cubic Béziers that deviate from it by at
// most tolerance.
func (a Arc) Cubics(tolerance float64) []Bezier {
	sweep := a.Sweep()
	scaledError := a.Radius / tolerance
	// Number of subdivisions per circle based on error tolerance.
	nError := max(math.Pow(1.1163*scaledError, 1.0/6.0), 3.999_999)
	n := int(math.Ceil(nError * math.Abs(sweep) * (1.0 / (2.0 * math.Pi))))
	angleStep := sweep / float64(n)
	armLen := math.Copysign((4.0/3.0)*math.Tan(math.Abs(0.25*angleStep)), sweep)

	sample := func(th float64) Vec2 {
		return VecFromAngle(th).Mul(a.Radius)
	}
	angle0 := a.Start
	p0 := sample(angle0)
	out := make([]Bezier, 0, n)
	for range n {
		angle1 := angle0 + angleStep
		p1 := p0.Add(sample(angle0 + math.Pi/2).Mul(armLen))
		p3 := sample(angle1)
		p2 := p3.Sub(sample(angle1 + math.Pi/2).Mul(armLen))
		out = append(out, Cubic(
			a.Center.Translate(p0),
			a.Center.Translate(p1),
			a.Center.Translate(p2),
			a.Center.Translate(p3),
		))
		angle0 = angle1
		p0 = p3
	}
	return out
}

// CircleThrough returns the arc of the circle through p1, p2 and p3 that
// starts at p1 and passes through p2 on its way to p3. Collinear or
// coincident points result in [StatusDegenerate].
func CircleThrough(p1, p2, p3 Point) (Arc, Status) {
	d1 := p2.Sub(p1)
	d2 := p3.Sub(p2)
	m1 := p1.Midpoint(p2)
	m2 := p2.Midpoint(p3)
	bis1 := Line{m1, m1.Translate(d1.Perp())}
	bis2 := Line{m2, m2.Translate(d2.Perp())}
	c, st := bis1.CrossingPoint(bis2)
	if st != StatusOK {
		return Arc{}, StatusDegenerate
	}

	s := p1.Sub(c).Angle()
	e := p3.Sub(c).Angle()
	if d1.Cross(d2) > 0 {
		// counter-clockwise, angles increase
		e = s + mod2Pi(e-s)
	} else {
		e = s - mod2Pi(s-e)
	}
	return Arc{
		Center: c,
		Radius: c.Distance(p1),
		Start:  s,
		End:    e,
	}, StatusOK
}

// arcError measures how far the curve strays from the circle of a between
// s and e, at the quarter points.
func (b Bezier) arcError(a Arc, np1 Point, s, e float64) float64 {
	q := (e - s) / 4
	c1 := b.Compute(s + q)
	c2 := b.Compute(e - q)
	ref := a.Center.Distance(np1)
	d1 := a.Center.Distance(c1)
	d2 := a.Center.Distance(c2)
	return math.Abs(d1-ref) + math.Abs(d2-ref)
}

// Arcs approximates the curve with circular arcs. Each arc deviates from
// the curve by less than errorThreshold, which defaults to 0.5 if it isn't
// positive.
//
// Arcs are found greedily from the start of the curve. For each arc, the
// end parameter is searched for the widest range that still fits a circle
// through the start, middle and end of the range. The search for a single
// arc is limited to [MaxArcIterations] steps; if it runs out, the arcs
// found so far are returned. Straight curves fit no circle and produce no
// arcs.
func (b Bezier) Arcs(errorThreshold float64) []Arc {
	if errorThreshold <= 0 {
		errorThreshold = 0.5
	}
	var arcs []Arc
	ts := 0.0
	te := 1.0
	for {
		te = 1
		np1 := b.Compute(ts)
		var arc, prevArc Arc
		var currGood, prevGood bool
		prevE := 1.0
		found := false
		for range MaxArcIterations {
			prevGood = currGood
			prevArc = arc
			tm := (ts + te) / 2
			a, st := CircleThrough(np1, b.Compute(tm), b.Compute(te))
			a.Interval = [2]float64{ts, te}
			arc = a
			currGood = st == StatusOK && b.arcError(arc, np1, ts, te) <= errorThreshold
			done := prevGood && !currGood
			if !done {
				prevE = te
			}
			if currGood {
				if te >= 1 {
					arc.Interval[1] = 1
					prevE = 1
					if te > 1 {
						// The arc overshoots, end it at the end of the curve.
						arc.End += angleAt(arc.Center, arc.Eval(1), b.End())
					}
					prevArc = arc
					found = true
					break
				}
				te += (te - ts) / 2
			} else {
				te = tm
			}
			if done {
				found = true
				break
			}
		}
		if !found {
			break
		}
		arcs = append(arcs, prevArc)
		ts = prevE
		if te >= 1 {
			break
		}
	}
	return arcs
}
