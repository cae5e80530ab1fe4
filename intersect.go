package bezier

import (
	"math"
	"slices"
)

const (
	// DefaultThreshold is the default for IntersectOptions.Threshold.
	DefaultThreshold = 0.5
	// DefaultMaxDepth is the default for IntersectOptions.MaxDepth.
	DefaultMaxDepth = 32

	// Boxes closer than this count as overlapping, so that curves touching
	// at the edge of a box aren't lost to rounding.
	overlapSlack = 1e-6
)

// IntersectOptions controls curve-curve intersection. Zero fields use their
// defaults.
type IntersectOptions struct {
	// Subdivision stops once the bounding boxes of both curves measure less
	// than Threshold in width plus height.
	Threshold float64
	// Subdivision also stops after MaxDepth halvings. Overlapping curves
	// would otherwise never get below the threshold.
	MaxDepth int
	// Hits whose points are closer than MergeTolerance on both curves are
	// merged into one, transitively. It defaults to Threshold, the
	// resolution of the search. A negative value reports every hit.
	MergeTolerance float64
}

func (opts IntersectOptions) withDefaults() IntersectOptions {
	if opts.Threshold <= 0 {
		opts.Threshold = DefaultThreshold
	}
	if opts.MaxDepth <= 0 {
		opts.MaxDepth = DefaultMaxDepth
	}
	if opts.MergeTolerance == 0 {
		opts.MergeTolerance = opts.Threshold
	}
	return opts
}

// Hit is an intersection of two curves, given by a parameter on each.
type Hit struct {
	T1, T2 float64
}

// approximately is the fixed absolute tolerance used by LineIntersects.
func approximately(a, b float64) bool {
	const epsilon = 1e-6
	return math.Abs(a-b) <= epsilon
}

func between(v, lo, hi float64) bool {
	return (lo <= v && v <= hi) || approximately(v, lo) || approximately(v, hi)
}

// LineIntersects returns the parameters at which the curve crosses the
// line segment l, in increasing order.
//
// The curve is transformed so that l lies on the x axis, which turns the
// problem into finding the roots of the curve's y coordinate. Orders up to
// three are solved in closed form. Roots are kept if they lie in [0, 1] and
// their point lies within the bounding box of l.
func (b Bezier) LineIntersects(l Line) []float64 {
	aff := AlignLine(l)
	ys := make([]float64, len(b.points))
	for i, p := range b.points {
		ys[i] = p.Transform(aff).Y
	}

	var roots []float64
	switch b.Order() {
	case 1:
		roots = linearRoots(ys[0], ys[1]-ys[0])
	case 2:
		roots = quadRoots(ys[0], ys[1], ys[2])
	case 3:
		roots = cubicRoots(ys[0], ys[1], ys[2], ys[3])
	default:
		roots = powerBasis(ys).RealRoots(1e-9)
	}

	box := l.BBox()
	var out []float64
	for _, t := range roots {
		if !(0 <= t && t <= 1) {
			continue
		}
		p := b.Compute(t)
		if between(p.X, box.X.Min, box.X.Max) && between(p.Y, box.Y.Min, box.Y.Max) {
			out = append(out, t)
		}
	}
	slices.Sort(out)
	return slices.Compact(out)
}

// linearRoots solves c + bt = 0.
func linearRoots(c, b float64) []float64 {
	if b == 0 {
		return nil
	}
	return []float64{-c / b}
}

// quadRoots finds the roots of the quadratic Bernstein polynomial with
// coefficients a, b and c.
func quadRoots(a, b, c float64) []float64 {
	d := a - 2*b + c
	if d != 0 {
		m1 := -math.Sqrt(b*b - a*c)
		m2 := -a + b
		v1 := -(m1 + m2) / d
		v2 := -(-m1 + m2) / d
		return []float64{v1, v2}
	} else if b != c {
		return []float64{(2*b - c) / (2*b - 2*c)}
	}
	return nil
}

// crt returns the real cube root of v.
func crt(v float64) float64 {
	if v < 0 {
		return -math.Pow(-v, 1.0/3.0)
	}
	return math.Pow(v, 1.0/3.0)
}

// cubicRoots finds the real roots of the cubic Bernstein polynomial with
// coefficients pa through pd with Cardano's method.
func cubicRoots(pa, pb, pc, pd float64) []float64 {
	d := -pa + 3*pb - 3*pc + pd
	a := 3*pa - 6*pb + 3*pc
	b := -3*pa + 3*pb
	c := pa

	if approximately(d, 0) {
		// not a cubic
		if approximately(a, 0) {
			// not a quadratic either
			if approximately(b, 0) {
				return nil
			}
			return []float64{-c / b}
		}
		q := math.Sqrt(b*b - 4*a*c)
		a2 := 2 * a
		return []float64{(q - b) / a2, (-b - q) / a2}
	}

	// x³ + ax² + bx + c, substituting x = t − a/3 gives t³ + pt + q.
	a /= d
	b /= d
	c /= d
	p := (3*b - a*a) / 3
	p3 := p / 3
	q := (2*a*a*a - 9*a*b + 27*c) / 27
	q2 := q / 2
	discriminant := q2*q2 + p3*p3*p3

	switch {
	case discriminant < 0:
		mp3 := -p / 3
		r := math.Sqrt(mp3 * mp3 * mp3)
		t := -q / (2 * r)
		phi := math.Acos(clamp(t, -1, 1))
		t1 := 2 * crt(r)
		const tau = 2 * math.Pi
		return []float64{
			t1*math.Cos(phi/3) - a/3,
			t1*math.Cos((phi+tau)/3) - a/3,
			t1*math.Cos((phi+2*tau)/3) - a/3,
		}
	case discriminant == 0:
		var u1 float64
		if q2 < 0 {
			u1 = crt(-q2)
		} else {
			u1 = -crt(q2)
		}
		return []float64{2*u1 - a/3, -u1 - a/3}
	default:
		sd := math.Sqrt(discriminant)
		u1 := crt(-q2 + sd)
		v1 := crt(q2 + sd)
		return []float64{u1 - v1 - a/3}
	}
}

// Intersects returns the intersections of b and o, using the default
// options. See [Bezier.IntersectsOpt].
func (b Bezier) Intersects(o Bezier) []Hit {
	return b.IntersectsOpt(o, IntersectOptions{})
}

// IntersectsOpt returns the intersections of b and o, sorted by T1.
//
// Both curves are reduced to simple pieces. Each pair of pieces whose
// bounding boxes overlap is halved recursively, keeping the sub-pairs that
// still overlap, until both boxes are smaller than opts.Threshold. The
// centers of the parameter ranges of such a pair make up a hit. Tangential
// intersections produce clusters of hits, which are merged according to
// opts.MergeTolerance, reporting the mean of each cluster.
//
// Hits are approximations whose error depends on opts.Threshold. Curves
// without a simple reduction have no reported intersections.
func (b Bezier) IntersectsOpt(o Bezier, opts IntersectOptions) []Hit {
	opts = opts.withDefaults()
	hits := intersectPieces(b.Reduce(), o.Reduce(), opts)
	return b.finishHits(o, hits, opts)
}

// SelfIntersects returns the points at which the curve crosses itself. Each
// hit has T1 < T2.
//
// Every simple piece of the curve is intersected with the pieces that
// follow it, skipping its direct neighbour. Loops shorter than twice
// opts.Threshold are below the resolution of the search and aren't
// reported.
func (b Bezier) SelfIntersects(opts IntersectOptions) []Hit {
	opts = opts.withDefaults()
	pieces := b.Reduce()
	var hits []Hit
	for i := 0; i < len(pieces)-2; i++ {
		hits = append(hits, intersectPieces(pieces[i:i+1], pieces[i+2:], opts)...)
	}
	hits = b.finishHits(b, hits, opts)
	// pieces two apart meet within the threshold where the piece between
	// them is short
	return slices.DeleteFunc(hits, func(h Hit) bool {
		return h.T2 <= h.T1 || b.SplitRange(h.T1, h.T2).Length() < 2*opts.Threshold
	})
}

// finishHits converts hits from the frames of the curves b and o were split
// from to the frames of b and o, then merges and sorts them.
func (b Bezier) finishHits(o Bezier, hits []Hit, opts IntersectOptions) []Hit {
	for i, h := range hits {
		hits[i] = Hit{
			T1: remap(h.T1, b.t1, b.t2, 0, 1),
			T2: remap(h.T2, o.t1, o.t2, 0, 1),
		}
	}
	slices.SortFunc(hits, compareHits)
	if opts.MergeTolerance > 0 {
		hits = clusterHits(hits, b, o, opts.MergeTolerance)
		slices.SortFunc(hits, compareHits)
	}
	return hits
}

func intersectPieces(c1, c2 []Bezier, opts IntersectOptions) []Hit {
	var out []Hit
	for _, l := range c1 {
		lb := l.BBox().Expand(overlapSlack)
		for _, r := range c2 {
			if lb.Overlaps(r.BBox()) {
				out = pairIteration(out, l, r, 0, opts)
			}
		}
	}
	return out
}

func pairIteration(out []Hit, c1, c2 Bezier, depth int, opts IntersectOptions) []Hit {
	c1b := c1.BBox()
	c2b := c2.BBox()
	if (c1b.HalfPerimeter() < opts.Threshold && c2b.HalfPerimeter() < opts.Threshold) || depth >= opts.MaxDepth {
		return append(out, Hit{
			T1: 0.5 * (c1.t1 + c1.t2),
			T2: 0.5 * (c2.t1 + c2.t2),
		})
	}
	cc1 := c1.Split(0.5)
	cc2 := c2.Split(0.5)
	pairs := [...][2]Bezier{
		{cc1.Left, cc2.Left},
		{cc1.Left, cc2.Right},
		{cc1.Right, cc2.Right},
		{cc1.Right, cc2.Left},
	}
	for _, pair := range pairs {
		if pair[0].BBox().Expand(overlapSlack).Overlaps(pair[1].BBox()) {
			out = pairIteration(out, pair[0], pair[1], depth+1, opts)
		}
	}
	return out
}

func compareHits(x, y Hit) int {
	switch {
	case x.T1 < y.T1:
		return -1
	case x.T1 > y.T1:
		return 1
	case x.T2 < y.T2:
		return -1
	case x.T2 > y.T2:
		return 1
	default:
		return 0
	}
}

// clusterHits merges hits whose points on c1 and c2 both lie within tol of
// each other. Merging is transitive, so a chain of close hits forms a
// single cluster, which is reported as its mean.
func clusterHits(hits []Hit, c1, c2 Bezier, tol float64) []Hit {
	p1 := make([]Point, len(hits))
	p2 := make([]Point, len(hits))
	for i, h := range hits {
		p1[i] = c1.Compute(h.T1)
		p2[i] = c2.Compute(h.T2)
	}

	parent := make([]int, len(hits))
	for i := range parent {
		parent[i] = i
	}
	var find func(i int) int
	find = func(i int) int {
		if parent[i] != i {
			parent[i] = find(parent[i])
		}
		return parent[i]
	}
	for i := range hits {
		for j := i + 1; j < len(hits); j++ {
			if p1[i].Distance(p1[j]) <= tol && p2[i].Distance(p2[j]) <= tol {
				parent[find(j)] = find(i)
			}
		}
	}

	sums := make(map[int]Hit)
	counts := make(map[int]int)
	var roots []int
	for i, h := range hits {
		r := find(i)
		if counts[r] == 0 {
			roots = append(roots, r)
		}
		s := sums[r]
		sums[r] = Hit{s.T1 + h.T1, s.T2 + h.T2}
		counts[r]++
	}
	out := make([]Hit, len(roots))
	for i, r := range roots {
		n := float64(counts[r])
		out[i] = Hit{sums[r].T1 / n, sums[r].T2 / n}
	}
	return out
}
