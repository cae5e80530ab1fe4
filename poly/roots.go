package poly

import (
	"fmt"
	"math"
	"slices"
)

const (
	// DefaultTolerance is the residual below which Roots considers the root
	// estimates converged.
	DefaultTolerance = 1e-12
	// DefaultMaxIterations is the number of convergence checks Roots performs
	// before giving up.
	DefaultMaxIterations = 30
	// DefaultInnerIterations is the number of Weierstrass updates performed
	// between two convergence checks.
	DefaultInnerIterations = 10
	// DefaultDigits is the number of decimal digits roots are rounded to.
	DefaultDigits = 12
)

// seedPhase rotates the initial guesses off the real axis. Guesses that are
// symmetric about the real axis never leave it for real polynomials.
const seedPhase = 0.4

// RootOptions configures [Polynomial.RootsOpt]. Zero fields use the
// package defaults.
type RootOptions struct {
	// Tolerance is the largest |p(z)| accepted for every root estimate z.
	Tolerance float64
	// MaxIterations bounds the number of outer iterations.
	MaxIterations int
	// InnerIterations is the number of simultaneous updates per outer
	// iteration.
	InnerIterations int
	// Digits is the number of decimal digits to round results to. Negative
	// values disable rounding.
	Digits int
}

func (opts RootOptions) withDefaults() RootOptions {
	if opts.Tolerance <= 0 {
		opts.Tolerance = DefaultTolerance
	}
	if opts.MaxIterations <= 0 {
		opts.MaxIterations = DefaultMaxIterations
	}
	if opts.InnerIterations <= 0 {
		opts.InnerIterations = DefaultInnerIterations
	}
	if opts.Digits == 0 {
		opts.Digits = DefaultDigits
	}
	return opts
}

// Roots returns all complex roots of p, using the default options.
//
// See [Polynomial.RootsOpt] for details.
func (p Polynomial) Roots() []Complex {
	return p.RootsOpt(RootOptions{})
}

// RootsOpt finds all complex roots of p simultaneously, using the
// Weierstrass (Durand-Kerner) iteration on the monic version of p.
//
// Initial guesses are spread evenly on the unit circle. Every outer iteration
// first checks whether max |p(zₖ)| is within the tolerance and otherwise
// performs a fixed number of simultaneous updates
//
//	zₖ ← zₖ − p(zₖ) / ∏_{j≠k} (zₖ − zⱼ)
//
// where every product uses the estimates of the previous update.
//
// Not converging within MaxIterations is not an error; the current estimates
// are returned as they are. Callers that need a guarantee must check the
// residuals themselves. Repeated roots converge slowly, and two estimates
// that coincide exactly make the correction undefined, producing NaNs.
//
// The polynomial of degree zero has no roots and yields nil.
func (p Polynomial) RootsOpt(opts RootOptions) []Complex {
	opts = opts.withDefaults()
	q := p.Clone()
	q.Normalize()
	n := q.Degree()
	if n < 1 || q.IsZero() {
		return nil
	}

	z := make([]Complex, n)
	for k := range z {
		z[k] = Exp(C(0, 2*math.Pi*float64(k)/float64(n)+seedPhase))
	}
	next := make([]Complex, n)

	for range opts.MaxIterations {
		if q.residual(z) <= opts.Tolerance {
			break
		}
		for range opts.InnerIterations {
			for k := range z {
				w := q.Eval(z[k]).Div(weierNull(z, k))
				next[k] = z[k].Sub(w)
			}
			z, next = next, z
		}
	}

	if opts.Digits > 0 {
		for k, r := range z {
			z[k] = Complex{
				Re: roundTo(r.Re, opts.Digits),
				Im: roundTo(r.Im, opts.Digits),
			}
		}
	}
	return z
}

// residual returns max |p(zₖ)|.
func (p Polynomial) residual(z []Complex) float64 {
	var worst float64
	for _, zk := range z {
		worst = max(worst, p.Eval(zk).Abs())
	}
	return worst
}

// weierNull computes ∏_{j≠k} (z[k] − z[j]).
func weierNull(z []Complex, k int) Complex {
	if k < 0 || k >= len(z) {
		panic(fmt.Sprintf("poly: root index %d out of range [0, %d)", k, len(z)))
	}
	prod := Real(1)
	for j, zj := range z {
		if j == k {
			continue
		}
		prod = prod.Mul(z[k].Sub(zj))
	}
	return prod
}

// RealRoots returns the real roots of p in ascending order. It only
// considers the real parts of p's coefficients.
//
// Polynomials up to degree two are solved in closed form with
// [SolveQuadratic]. Higher degrees use [Polynomial.Roots] and keep the roots
// whose imaginary part is at most eps in magnitude.
func (p Polynomial) RealRoots(eps float64) []float64 {
	q := make(Polynomial, len(p))
	for i, c := range p {
		q[i] = Real(c.Re)
	}
	q.Clean()
	switch q.Degree() {
	case 0:
		return nil
	case 1, 2:
		roots, n := SolveQuadratic(q.coeff(0).Re, q.coeff(1).Re, q.coeff(2).Re)
		return slices.Clone(roots[:n])
	}
	var out []float64
	for _, r := range q.Roots() {
		if math.Abs(r.Im) <= eps {
			out = append(out, r.Re)
		}
	}
	slices.Sort(out)
	return out
}

// SolveQuadratic finds real roots of a quadratic equation.
//
// Returns values of x for which c0 + c1 x + c2 x² = 0.0
//
// If the equation is nearly linear, it returns the root ignoring the
// quadratic term; the other root might be out of representable range. In the
// degenerate case where all coefficients are zero, a single 0.0 is returned.
// The second return value states how many roots were found, and roots are
// sorted.
func SolveQuadratic(c0, c1, c2 float64) ([2]float64, int) {
	sc0 := c0 / c2
	sc1 := c1 / c2
	if math.IsInf(sc0, 0) || math.IsInf(sc1, 0) || math.IsNaN(sc0) {
		// c2 is zero or very small, treat as linear eqn
		root := -c0 / c1
		if !math.IsInf(root, 0) && !math.IsNaN(root) {
			return [2]float64{root}, 1
		} else if c0 == 0.0 && c1 == 0.0 {
			return [2]float64{0}, 1
		} else {
			return [2]float64{}, 0
		}
	}
	arg := sc1*sc1 - 4.0*sc0
	var root1 float64
	if math.IsInf(arg, 0) {
		// sc1² overflowed. Find one root using sc1 x + x² = 0, the other as
		// sc0 / root1.
		root1 = -sc1
	} else {
		if arg < 0.0 {
			return [2]float64{}, 0
		} else if arg == 0.0 {
			return [2]float64{-0.5 * sc1}, 1
		}
		root1 = -0.5 * (sc1 + math.Copysign(math.Sqrt(arg), sc1))
	}
	root2 := sc0 / root1
	if math.IsInf(root2, 0) || math.IsNaN(root2) {
		return [2]float64{root1}, 1
	}
	if root2 > root1 {
		return [2]float64{root1, root2}, 2
	}
	return [2]float64{root2, root1}, 2
}
