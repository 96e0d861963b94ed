package interp

import (
	"slices"
)

// scratchSize is the number of points that evaluators blend in a stack
// allocated buffer. Larger curves allocate their buffer on the heap.
const scratchSize = 16

// scratch returns a buffer of n points, using stack if it is large enough.
func scratch[V any](stack []V, n int) []V {
	if n <= len(stack) {
		return stack[:n]
	}
	return make([]V, n)
}

var _ Curve[float64, Vec2] = (*Bezier[float64, Vec2])(nil)

// Bezier is a Bézier curve of arbitrary degree. A curve with N control points
// has degree N-1.
//
// The curve's domain is [0, 1], where it is a convex combination of its
// control points. Outside of the domain, Eval computes the polynomial
// continuation of the curve.
type Bezier[T Real, V Vector[T, V]] struct {
	points []V
}

// NewBezier returns the Bézier curve with the given control points. The
// points are copied. At least one point is required.
func NewBezier[T Real, V Vector[T, V]](points []V) (*Bezier[T, V], error) {
	if len(points) == 0 {
		return nil, ErrTooFewPoints
	}
	return &Bezier[T, V]{points: slices.Clone(points)}, nil
}

// Eval evaluates the curve at t using De Casteljau's algorithm.
//
// A curve with a single control point evaluates to that point for all t.
func (b *Bezier[T, V]) Eval(t T) V {
	n := len(b.points)
	if n == 1 {
		return b.points[0]
	}
	var stack [scratchSize]V
	buf := scratch(stack[:], n)
	copy(buf, b.points)
	for r := 1; r < n; r++ {
		for i := range n - r {
			buf[i] = blend(buf[i], buf[i+1], t)
		}
	}
	return buf[0]
}

// Domain returns [0, 1].
func (b *Bezier[T, V]) Domain() (T, T) { return 0, 1 }

// Degree returns the curve's degree, which is one less than the number of
// control points.
func (b *Bezier[T, V]) Degree() int { return len(b.points) - 1 }

// Points returns a copy of the control points.
func (b *Bezier[T, V]) Points() []V { return slices.Clone(b.points) }

// IsClamped always returns true. Bézier curves interpolate their end points.
func (b *Bezier[T, V]) IsClamped() bool { return true }

// Start returns the first control point.
func (b *Bezier[T, V]) Start() V { return b.points[0] }

// End returns the last control point.
func (b *Bezier[T, V]) End() V { return b.points[len(b.points)-1] }

// Derivative returns the derivative (hodograph) of the curve, a Bézier curve
// of one degree less. The derivative of a curve of degree 0 is the zero
// curve.
func (b *Bezier[T, V]) Derivative() *Bezier[T, V] {
	n := len(b.points) - 1
	if n == 0 {
		var zero V
		return &Bezier[T, V]{points: []V{zero}}
	}
	out := make([]V, n)
	for i := range out {
		out[i] = sub[T](b.points[i+1], b.points[i]).Mul(T(n))
	}
	return &Bezier[T, V]{points: out}
}

// Split subdivides the curve at t, returning the curves for [0, t] and [t, 1],
// each reparametrized to [0, 1].
func (b *Bezier[T, V]) Split(t T) (*Bezier[T, V], *Bezier[T, V]) {
	n := len(b.points)
	left := make([]V, n)
	right := make([]V, n)
	buf := slices.Clone(b.points)
	left[0] = buf[0]
	right[n-1] = buf[n-1]
	for r := 1; r < n; r++ {
		for i := range n - r {
			buf[i] = blend(buf[i], buf[i+1], t)
		}
		left[r] = buf[0]
		right[n-1-r] = buf[n-1-r]
	}
	return &Bezier[T, V]{points: left}, &Bezier[T, V]{points: right}
}

// Raise raises the degree by 1.
//
// Returns a Bézier curve that exactly represents this one.
func (b *Bezier[T, V]) Raise() *Bezier[T, V] {
	n := len(b.points)
	out := make([]V, n+1)
	out[0] = b.points[0]
	out[n] = b.points[n-1]
	for i := 1; i < n; i++ {
		alpha := T(i) / T(n)
		out[i] = blend(b.points[i], b.points[i-1], alpha)
	}
	return &Bezier[T, V]{points: out}
}

// Map returns the curve whose control points are f applied to the control
// points of b. If f is an affine map, then the new curve evaluates to f of
// the old curve's values.
func (b *Bezier[T, V]) Map(f func(V) V) *Bezier[T, V] {
	out := make([]V, len(b.points))
	for i, p := range b.points {
		out[i] = f(p)
	}
	return &Bezier[T, V]{points: out}
}
