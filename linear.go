package interp

import (
	"slices"
	"sort"
)

var _ Curve[float64, Vec2] = (*Linear[float64, Vec2])(nil)

// Linear is a piecewise linear interpolation through the points
// (knot[i], point[i]).
//
// Its domain is [knot[0], knot[N-1]]. Outside of it, the first and last
// segments are extended. Where knots coincide the curve jumps, taking the
// later point at the knot itself.
type Linear[T Real, V Vector[T, V]] struct {
	knots  []T
	points []V
}

// NewLinear returns the linear interpolation of points at knots. The inputs
// are copied. There must be one non-decreasing knot per point.
func NewLinear[T Real, V Vector[T, V]](points []V, knots []T) (*Linear[T, V], error) {
	if len(points) == 0 {
		return nil, ErrTooFewPoints
	}
	if len(knots) != len(points) {
		return nil, knotErrorf("%w: got %d knots for %d points, want one per point",
			ErrLengthMismatch, len(knots), len(points))
	}
	for i := range len(knots) - 1 {
		if !(knots[i] <= knots[i+1]) {
			return nil, knotErrorf("%w: knot %d (%v) > knot %d (%v)",
				ErrUnsortedKnots, i, knots[i], i+1, knots[i+1])
		}
	}
	return &Linear[T, V]{
		knots:  slices.Clone(knots),
		points: slices.Clone(points),
	}, nil
}

// NewEquidistantLinear returns the linear interpolation of points at
// equidistant knots spanning [lo, hi].
func NewEquidistantLinear[T Real, V Vector[T, V]](points []V, lo, hi T) (*Linear[T, V], error) {
	return NewLinear(points, Equidistant(len(points), lo, hi))
}

func (l *Linear[T, V]) Eval(t T) V {
	n := len(l.points)
	if n == 1 {
		return l.points[0]
	}
	i := sort.Search(n, func(i int) bool { return l.knots[i] > t }) - 1
	i = min(max(i, 0), n-2)
	k0, k1 := l.knots[i], l.knots[i+1]
	if k0 == k1 {
		if t < k0 {
			return l.points[i]
		}
		return l.points[i+1]
	}
	return blend(l.points[i], l.points[i+1], (t-k0)/(k1-k0))
}

// Domain returns [knot[0], knot[N-1]].
func (l *Linear[T, V]) Domain() (T, T) {
	return l.knots[0], l.knots[len(l.knots)-1]
}

// Knots returns a copy of the knots.
func (l *Linear[T, V]) Knots() []T { return slices.Clone(l.knots) }

// Points returns a copy of the points.
func (l *Linear[T, V]) Points() []V { return slices.Clone(l.points) }
