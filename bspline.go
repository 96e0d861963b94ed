package interp

import (
	"slices"
)

var _ Curve[float64, Vec2] = (*BSpline[float64, Vec2])(nil)

// BSpline is a B-spline curve of arbitrary degree over a [Knots] vector.
//
// A B-spline with N control points, degree d = N-1 and the knot vector
// [0, …, 0, 1, …, 1] (each value repeated d+1 times) is the Bézier curve
// with the same control points.
//
// Within its domain, the curve is a convex combination of at most d+1
// neighboring control points. Eval extends the first and last polynomial
// pieces beyond the domain.
type BSpline[T Real, V Vector[T, V]] struct {
	points []V
	knots  *Knots[T]
}

// NewBSpline returns the B-spline with the given control points, knots and
// degree. The inputs are copied. See [NewKnots] for the rules the knots have
// to follow.
func NewBSpline[T Real, V Vector[T, V]](points []V, knots []T, degree int) (*BSpline[T, V], error) {
	k, err := NewKnots(knots, degree, len(points))
	if err != nil {
		return nil, err
	}
	return &BSpline[T, V]{
		points: slices.Clone(points),
		knots:  k,
	}, nil
}

// NewClampedBSpline returns the B-spline of the given degree with clamped,
// equidistant knots over [lo, hi]. See [ClampedKnots].
func NewClampedBSpline[T Real, V Vector[T, V]](points []V, degree int, lo, hi T) (*BSpline[T, V], error) {
	return NewBSpline(points, ClampedKnots(len(points), degree, lo, hi), degree)
}

// Eval evaluates the curve at t using De Boor's algorithm.
func (s *BSpline[T, V]) Eval(t T) V {
	d := s.knots.degree
	k := s.knots.FindSpan(t)
	u := s.knots.values

	var stack [scratchSize]V
	buf := scratch(stack[:], d+1)
	copy(buf, s.points[k-d:k+1])
	for r := 1; r <= d; r++ {
		for j := d; j >= r; j-- {
			lo := u[k-d+j]
			den := u[k+1+j-r] - lo
			// Repeated knots produce empty intervals; their terms collapse
			// onto the lower point.
			var alpha T
			if den != 0 {
				alpha = (t - lo) / den
			}
			buf[j] = blend(buf[j-1], buf[j], alpha)
		}
	}
	return buf[d]
}

// Domain returns the curve's domain, [knot[d], knot[N]].
func (s *BSpline[T, V]) Domain() (T, T) { return s.knots.Domain() }

// Degree returns the curve's degree.
func (s *BSpline[T, V]) Degree() int { return s.knots.degree }

// Knots returns the curve's knot vector.
func (s *BSpline[T, V]) Knots() *Knots[T] { return s.knots }

// Points returns a copy of the control points.
func (s *BSpline[T, V]) Points() []V { return slices.Clone(s.points) }

// IsClamped reports whether the curve's knot vector is clamped. Clamped
// curves interpolate their first and last control points.
func (s *BSpline[T, V]) IsClamped() bool { return s.knots.IsClamped() }

// Derivative returns the derivative of the curve, a B-spline of one degree
// less over the knot vector without its first and last knot. The derivative
// of a curve of degree 0 is the zero curve.
func (s *BSpline[T, V]) Derivative() *BSpline[T, V] {
	d := s.knots.degree
	if d == 0 {
		return &BSpline[T, V]{
			points: make([]V, len(s.points)),
			knots:  s.knots,
		}
	}
	u := s.knots.values
	out := make([]V, len(s.points)-1)
	for i := range out {
		den := u[i+d+1] - u[i+1]
		if den == 0 {
			// The basis function vanishes; so does its coefficient.
			continue
		}
		out[i] = sub[T](s.points[i+1], s.points[i]).Mul(T(d) / den)
	}
	// The derivative may have knots of full multiplicity in the interior,
	// which NewKnots rejects for user input but which evaluate fine.
	return &BSpline[T, V]{
		points: out,
		knots: &Knots[T]{
			values: slices.Clone(u[1 : len(u)-1]),
			degree: d - 1,
		},
	}
}

// Map returns the curve whose control points are f applied to the control
// points of s, over the same knots. If f is an affine map, then the new curve
// evaluates to f of the old curve's values.
func (s *BSpline[T, V]) Map(f func(V) V) *BSpline[T, V] {
	out := make([]V, len(s.points))
	for i, p := range s.points {
		out[i] = f(p)
	}
	return &BSpline[T, V]{points: out, knots: s.knots}
}
