// Package interp provides generic interpolation curves: Bézier curves,
// B-splines, their rational counterparts (NURBS), and piecewise linear
// interpolation. It was designed to serve the needs of gradients, animation
// and path construction, but it is intended to be general enough to be useful
// for other applications.
//
// # Points and scalars
//
// Curves are generic over two types: the scalar type T, used for parameters,
// knots and weights, and the point type V that gets blended. Any type that
// implements [Vector] can be used as a point type. This package provides
// several:
//
//   - [Float] for curves through plain numbers
//   - [Vec2] for curves in the plane, together with [Affine] transforms
//   - [VecN] for vectors of arbitrary dimension
//   - [RGBA] for color gradients
//   - [Homogeneous] for points in homogeneous coordinates
//
// Because Go cannot infer T from V's methods, constructors are usually called
// with T spelled out, as in NewBezier[float64](points).
//
// # Curves and generators
//
// [Generator] describes anything that maps parameters to values, and [Curve]
// describes generators with a domain. All curves in this package are
// immutable after construction and safe for concurrent use. Evaluation never
// fails. For point types that are plain values, such as [Float], [Vec2] and
// [RGBA], it doesn't allocate for curves with up to 16 control points; [VecN]
// allocates in every operation.
//
// This package includes the following curves:
//   - [Bezier], evaluated with De Casteljau's algorithm
//   - [BSpline], evaluated with De Boor's algorithm over [Knots]
//   - [Rational], for rational Béziers and NURBS
//   - [Linear]
//
// Curves can be composed with [Chain] and sampled with [Sample], [Steps] and
// [Take].
//
// # Construction
//
// Constructors validate their input and either return a valid curve or an
// error wrapping one of the sentinel errors, such as [ErrUnsortedKnots].
// Errors about knot vectors also wrap [ErrInvalidKnots], and errors about
// weights also wrap [ErrInvalidWeights].
//
// [Build] constructs any curve from a [Params] description and wraps it in an
// [Extrapolation] policy.
//
// # Extrapolation
//
// Evaluating a curve outside of its domain extends its first or last
// polynomial piece. [Extrapolate] wraps a curve with a different policy:
// clamping the parameter to the domain, wrapping it around periodically, or
// refusing to evaluate.
//
// # Literature
//
// This package makes use of the following ideas:
//   - [A Primer on Bézier Curves]
//   - [The NURBS Book] by Les Piegl and Wayne Tiller
//   - [B-spline Basis Functions] by C.-K. Shene
//
// [A Primer on Bézier Curves]: https://pomax.github.io/bezierinfo/
// [The NURBS Book]: https://doi.org/10.1007/978-3-642-59223-2
// [B-spline Basis Functions]: https://pages.mtu.edu/~shene/COURSES/cs3621/NOTES/spline/B-spline/bspline-basis.html
package interp
