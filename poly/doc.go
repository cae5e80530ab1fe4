// Package poly implements polynomials with complex coefficients, a
// simultaneous root finder, and a handful of scalar numeric routines
// (quadrature, interpolation and bisection) used by the curve kernel in
// [honnef.co/go/bezier].
//
// # Polynomials
//
// A [Polynomial] stores its coefficients in increasing order of degree, so
// p[i] is the coefficient of xⁱ. Arithmetic returns new polynomials, while
// [Polynomial.Clean], [Polynomial.Normalize], [Polynomial.Simplify] and
// [Polynomial.Divide] modify the polynomial in place.
//
// [Polynomial.Roots] uses the Weierstrass (Durand-Kerner) method, refining
// all roots at once. It never fails: if the iteration doesn't converge
// within its budget, the best estimates are returned.
//
// # Numeric integration
//
// [Simpson] and [Romberg] are built on top of the refinable [Trapezoid] rule.
// Like the root finder, they return their best estimate when they run out of
// refinements.
package poly
