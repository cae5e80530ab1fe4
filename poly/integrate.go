package poly

import (
	"fmt"
	"math"
)

const (
	// SimpsonTolerance is the relative change between successive estimates at
	// which Simpson stops refining.
	SimpsonTolerance = 1e-7
	// RombergTolerance is the relative error estimate at which Romberg stops
	// refining.
	RombergTolerance = 1e-6
	// MaxRefinements bounds the number of trapezoid refinements performed by
	// Simpson and Romberg.
	MaxRefinements = 20
)

// rombergOrder is the number of trapezoid estimates Romberg extrapolates from.
const rombergOrder = 5

// Trapezoid computes successive refinements of the composite trapezoidal rule.
//
// The first call to Next evaluates f at both endpoints; every subsequent call
// doubles the number of intervals, evaluating f only at the new midpoints and
// reusing the previous sum.
type Trapezoid struct {
	f    func(float64) float64
	a, b float64
	n    int
	sum  float64
}

// NewTrapezoid returns a trapezoid refiner for the integral of f over [a, b].
func NewTrapezoid(f func(float64) float64, a, b float64) *Trapezoid {
	return &Trapezoid{f: f, a: a, b: b}
}

// Next performs one refinement and returns the new estimate.
func (tr *Trapezoid) Next() float64 {
	tr.n++
	if tr.n == 1 {
		tr.sum = 0.5 * (tr.b - tr.a) * (tr.f(tr.a) + tr.f(tr.b))
		return tr.sum
	}
	pts := 1 << (tr.n - 2)
	del := (tr.b - tr.a) / float64(pts)
	x := tr.a + 0.5*del
	var s float64
	for range pts {
		s += tr.f(x)
		x += del
	}
	tr.sum = 0.5 * (tr.sum + (tr.b-tr.a)*s/float64(pts))
	return tr.sum
}

// Refinements returns the number of refinements performed so far.
func (tr *Trapezoid) Refinements() int {
	return tr.n
}

// Simpson integrates f over [a, b] with Simpson's rule, obtained from
// successive trapezoid refinements as S = (4·T_fine − T_coarse) / 3.
//
// It stops once two successive estimates agree within [SimpsonTolerance]
// relative to the previous one, or after [MaxRefinements] refinements, in
// which case the last estimate is returned.
func Simpson(f func(float64) float64, a, b float64) float64 {
	tr := NewTrapezoid(f, a, b)
	var prevS, prevT float64
	var s float64
	for j := 1; j <= MaxRefinements; j++ {
		t := tr.Next()
		s = (4*t - prevT) / 3
		// Early refinements are too coarse to be trusted, even if they
		// happen to agree.
		if j > 5 {
			if math.Abs(s-prevS) < SimpsonTolerance*math.Abs(prevS) || (s == 0 && prevS == 0) {
				return s
			}
		}
		prevS = s
		prevT = t
	}
	return s
}

// Romberg integrates f over [a, b] with Romberg's method. Trapezoid estimates
// at halving step sizes are extrapolated to a step size of zero with
// [Interpolate].
//
// It stops once the extrapolation's error estimate is within
// [RombergTolerance] relative to the estimate, or after [MaxRefinements]
// rows, in which case the last estimate is returned.
func Romberg(f func(float64) float64, a, b float64) float64 {
	tr := NewTrapezoid(f, a, b)
	h := make([]float64, 0, MaxRefinements)
	s := make([]float64, 0, MaxRefinements)
	step := 1.0
	var est float64
	for j := 1; j <= MaxRefinements; j++ {
		h = append(h, step)
		s = append(s, tr.Next())
		if j >= rombergOrder {
			var dy float64
			est, dy = Interpolate(h[j-rombergOrder:], s[j-rombergOrder:], 0)
			if math.Abs(dy) <= RombergTolerance*math.Abs(est) {
				return est
			}
		} else {
			est = s[j-1]
		}
		// The error series of the trapezoid rule is in h², and every
		// refinement halves h.
		step *= 0.25
	}
	return est
}

// Interpolate evaluates the polynomial through the points (xs[i], ys[i]) at x
// using Neville's algorithm. It returns the interpolated value and an
// estimate of its error.
//
// Interpolate panics if xs and ys have different lengths or are empty.
func Interpolate(xs, ys []float64, x float64) (y, dy float64) {
	n := len(xs)
	if n != len(ys) || n == 0 {
		panic(fmt.Sprintf("poly: Interpolate called with %d abscissae and %d ordinates", len(xs), len(ys)))
	}
	c := make([]float64, n)
	d := make([]float64, n)
	copy(c, ys)
	copy(d, ys)

	ns := 0
	dif := math.Abs(x - xs[0])
	for i := 1; i < n; i++ {
		if dift := math.Abs(x - xs[i]); dift < dif {
			ns = i
			dif = dift
		}
	}
	y = ys[ns]
	ns--
	for m := 1; m < n; m++ {
		for i := 0; i < n-m; i++ {
			ho := xs[i] - x
			hp := xs[i+m] - x
			w := c[i+1] - d[i]
			den := ho - hp
			if den == 0 {
				// Two identical abscissae; the interpolating polynomial
				// isn't defined.
				return math.NaN(), math.NaN()
			}
			den = w / den
			d[i] = hp * den
			c[i] = ho * den
		}
		if 2*(ns+1) < n-m {
			dy = c[ns+1]
		} else {
			dy = d[ns]
			ns--
		}
		y += dy
	}
	return y, dy
}
