package poly

import "math"

// DefaultMergeTolerance is the distance below which Factorize treats two
// roots as the same root.
const DefaultMergeTolerance = 1e-5

// Factor is a polynomial raised to a power.
type Factor struct {
	Poly  Polynomial
	Power int
}

// Factorization is the result of [Polynomial.Factorize].
//
// The product Scale · ∏ Factors[i].Poly^Factors[i].Power reconstructs the
// factored polynomial, up to the accuracy of the root finder.
type Factorization struct {
	Scale   Complex
	Factors []Factor
}

// FactorOptions configures [Polynomial.FactorizeOpt].
type FactorOptions struct {
	Root RootOptions
	// MergeTolerance is the largest distance between two roots that are
	// merged into a double root. Larger clusters merge over larger
	// distances, see [Polynomial.FactorizeOpt]. Zero uses
	// DefaultMergeTolerance, negative values disable merging.
	MergeTolerance float64
}

// Factorize factors p into linear factors, using the default options.
func (p Polynomial) Factorize() Factorization {
	return p.FactorizeOpt(FactorOptions{})
}

// FactorizeOpt factors p into linear factors x − r, one per distinct root r.
//
// Polynomials of degree one or less are returned as a single factor of power
// one. Roots that lie close together are combined into one factor, using
// their mean, whose power is the number of merged roots.
//
// The root finder resolves a root of multiplicity m only to about the mth
// root of its precision, so the distance at which roots merge grows with
// the size of the cluster: m roots merge when they lie within tol^(2/m) of
// each other, tol being the merge tolerance. Two roots merge within tol.
func (p Polynomial) FactorizeOpt(opts FactorOptions) Factorization {
	q := p.Clone()
	q.Clean()
	if q.Degree() <= 1 {
		return Factorization{
			Scale:   Real(1),
			Factors: []Factor{{Poly: q, Power: 1}},
		}
	}

	tol := opts.MergeTolerance
	if tol == 0 {
		tol = DefaultMergeTolerance
	}
	roots := q.RootsOpt(opts.Root)
	n := len(roots)
	radius := func(m int) float64 {
		return math.Pow(tol, 2/float64(m))
	}

	// mult[i] estimates the multiplicity of the root roots[i] belongs to:
	// the largest m such that m roots lie within radius(m) of it.
	mult := make([]int, n)
	for i, r := range roots {
		mult[i] = 1
		if tol < 0 {
			continue
		}
		for m := n; m >= 2; m-- {
			rad := radius(m)
			k := 0
			for _, o := range roots {
				if o.Sub(r).Abs() <= rad {
					k++
				}
			}
			if k >= m {
				mult[i] = m
				break
			}
		}
	}

	parent := make([]int, n)
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
	for i := range roots {
		for j := i + 1; j < n; j++ {
			m := min(mult[i], mult[j])
			if m >= 2 && roots[i].Sub(roots[j]).Abs() <= radius(m) {
				parent[find(j)] = find(i)
			}
		}
	}

	type cluster struct {
		sum Complex
		n   int
	}
	index := make(map[int]int)
	var clusters []cluster
	for i, r := range roots {
		root := find(i)
		ci, ok := index[root]
		if !ok {
			ci = len(clusters)
			index[root] = ci
			clusters = append(clusters, cluster{})
		}
		clusters[ci].sum = clusters[ci].sum.Add(r)
		clusters[ci].n++
	}

	out := Factorization{
		Scale:   q.Lead(),
		Factors: make([]Factor, len(clusters)),
	}
	for ci, c := range clusters {
		root := c.sum.Scale(1 / float64(c.n))
		out.Factors[ci] = Factor{
			Poly:  Polynomial{root.Neg(), Real(1)},
			Power: c.n,
		}
	}
	return out
}

// Expand multiplies out the factorization.
func (f Factorization) Expand() Polynomial {
	out := Polynomial{f.Scale}
	for _, fac := range f.Factors {
		out = out.Mul(fac.Poly.Pow(fac.Power))
	}
	return out
}
