package interp

// Homogeneous is a point in homogeneous coordinates: a point scaled by its
// weight, together with the weight. Blending homogeneous points and
// projecting the result yields rational curves.
//
// The zero value is the additive identity, not a valid point.
type Homogeneous[T Real, V Vector[T, V]] struct {
	// Point is the weighted point, that is, the Euclidean point multiplied
	// by Weight.
	Point  V
	Weight T
}

// Lift returns the homogeneous representation of p with weight w.
func Lift[T Real, V Vector[T, V]](p V, w T) Homogeneous[T, V] {
	return Homogeneous[T, V]{
		Point:  p.Mul(w),
		Weight: w,
	}
}

func (h Homogeneous[T, V]) Add(o Homogeneous[T, V]) Homogeneous[T, V] {
	return Homogeneous[T, V]{
		Point:  h.Point.Add(o.Point),
		Weight: h.Weight + o.Weight,
	}
}

func (h Homogeneous[T, V]) Mul(f T) Homogeneous[T, V] {
	return Homogeneous[T, V]{
		Point:  h.Point.Mul(f),
		Weight: h.Weight * f,
	}
}

// Project returns the Euclidean point, dividing by the weight. A zero weight
// describes a point at infinity and produces infinities or NaNs.
func (h Homogeneous[T, V]) Project() V {
	return h.Point.Mul(1 / h.Weight)
}

var _ Curve[float64, Vec2] = (*Rational[float64, Vec2])(nil)

// Rational is a rational curve. It evaluates a curve over homogeneous points
// and projects the result.
//
// Rational B-splines are commonly called NURBS.
type Rational[T Real, V Vector[T, V]] struct {
	inner Curve[T, Homogeneous[T, V]]
}

// NewRational returns the rational curve that projects the values of inner.
// This allows using homogeneous data directly, including points at infinity.
func NewRational[T Real, V Vector[T, V]](inner Curve[T, Homogeneous[T, V]]) *Rational[T, V] {
	return &Rational[T, V]{inner: inner}
}

// NewRationalBezier returns the rational Bézier curve with the given control
// points and weights. Weights must be positive.
func NewRationalBezier[T Real, V Vector[T, V]](points []V, weights []T) (*Rational[T, V], error) {
	lifted, err := liftAll(points, weights)
	if err != nil {
		return nil, err
	}
	inner, err := NewBezier[T](lifted)
	if err != nil {
		return nil, err
	}
	return NewRational[T, V](inner), nil
}

// NewNURBS returns the rational B-spline with the given control points,
// weights, knots and degree. Weights must be positive. See [NewKnots] for the
// rules the knots have to follow.
func NewNURBS[T Real, V Vector[T, V]](points []V, weights []T, knots []T, degree int) (*Rational[T, V], error) {
	lifted, err := liftAll(points, weights)
	if err != nil {
		return nil, err
	}
	inner, err := NewBSpline(lifted, knots, degree)
	if err != nil {
		return nil, err
	}
	return NewRational[T, V](inner), nil
}

// liftAll validates the weights and lifts the points into homogeneous
// coordinates.
func liftAll[T Real, V Vector[T, V]](points []V, weights []T) ([]Homogeneous[T, V], error) {
	if len(points) == 0 {
		return nil, ErrTooFewPoints
	}
	if len(weights) != len(points) {
		return nil, weightErrorf("%w: got %d weights for %d control points",
			ErrLengthMismatch, len(weights), len(points))
	}
	out := make([]Homogeneous[T, V], len(points))
	for i, w := range weights {
		switch {
		case w == 0:
			return nil, weightErrorf("%w: control point %d", ErrZeroWeight, i)
		case !(w > 0):
			return nil, weightErrorf("%w: control point %d has weight %v", ErrNegativeWeight, i, w)
		}
		out[i] = Lift(points[i], w)
	}
	return out, nil
}

// Eval evaluates the curve at t.
//
// With positive weights the blended weight is positive everywhere in the
// domain. Outside the domain, polynomial continuation may reach a blended
// weight of zero.
func (r *Rational[T, V]) Eval(t T) V {
	return r.inner.Eval(t).Project()
}

// Domain returns the domain of the underlying curve.
func (r *Rational[T, V]) Domain() (T, T) { return r.inner.Domain() }

// Homogeneous returns the underlying curve over homogeneous points.
func (r *Rational[T, V]) Homogeneous() Curve[T, Homogeneous[T, V]] { return r.inner }

// IsClamped reports whether the underlying curve is clamped. Curves that
// don't report it are assumed to be.
func (r *Rational[T, V]) IsClamped() bool {
	if c, ok := r.inner.(clamper); ok {
		return c.IsClamped()
	}
	return true
}
