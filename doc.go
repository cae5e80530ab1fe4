// Package bezier provides Bézier curves of arbitrary order and the geometry
// built on top of them: evaluation, arc length, splitting, offsetting,
// outlines, intersections, and approximation with circular arcs.
//
// # Curves
//
// [Bezier] is an immutable curve, described by two or more control points.
// Orders one to three are the common cases and are evaluated directly,
// higher orders use de Casteljau's algorithm. Derived data, such as the
// control points of the curve's derivatives, is computed once when the curve
// is constructed, which makes curves cheap to query repeatedly and safe to
// share between goroutines.
//
// Every curve knows the parameter range it covers on the curve it was split
// from, see [Bezier.Range]. Operations that split curves, such as
// [Bezier.Reduce], use this to report results in terms of the original
// curve.
//
// # Simple curves
//
// Many operations only work well on curves that don't bend too much. A curve
// is simple, as reported by [Bezier.Simple], if its end normals are less
// than [SimpleAngle] apart and, for cubics, if both interior control points
// lie on the same side of the chord. [Bezier.Reduce] splits arbitrary curves
// into simple pieces. Offsetting with [Bezier.Offset] and [Bezier.Outline]
// and curve-curve intersection with [Bezier.Intersects] are built on top of
// reduction.
//
// # Failures
//
// Geometric constructions that can fail, such as intersecting parallel
// lines or offsetting a curve whose end normals never meet, report a
// [Status] next to their result. Invalid arguments, such as constructing a
// curve from a single point, are programming errors and cause panics.
//
// Iterative algorithms don't fail when they run out of iterations. They
// return their best result instead.
//
// # Polynomials
//
// The companion package [honnef.co/go/bezier/poly] implements polynomials
// with complex coefficients, simultaneous root finding, and numeric
// integration. This package uses it for finding extrema and for integrating
// arc lengths.
//
// # Literature
//
// This package makes use of the following ideas:
//   - [A Primer on Bézier Curves]
//   - [Approximate a circle with cubic Bézier curves] by Spencer Mortensen
//
// [A Primer on Bézier Curves]: https://pomax.github.io/bezierinfo/
// [Approximate a circle with cubic Bézier curves]: https://spencermortensen.com/articles/bezier-circle/
package bezier
