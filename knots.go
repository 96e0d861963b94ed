package interp

import (
	"fmt"
	"slices"
	"sort"
)

// Knots is a validated knot vector for a B-spline of a given degree with a
// given number of control points.
//
// For N control points and degree d, the knot vector has N+d+1
// non-decreasing values. The curve's domain is [knot[d], knot[N]]; knots
// outside of that range only influence the blending near the ends.
//
// Knots is immutable and safe for concurrent use.
type Knots[T Real] struct {
	values []T
	degree int
}

// KnotRun is a maximal run of equal knot values.
type KnotRun[T Real] struct {
	Value T
	Count int
}

// NewKnots validates values as the knot vector of a B-spline of the given
// degree with the given number of control points. The values are copied.
//
// NewKnots enforces these rules:
//
//   - there is at least one control point,
//   - 0 ≤ degree < points,
//   - len(values) == points + degree + 1,
//   - values are non-decreasing (NaN is never ordered),
//   - no value repeats more than degree+1 times, and no value strictly inside
//     the domain repeats more than max(degree, 1) times.
//
// Violations of the latter three rules wrap [ErrInvalidKnots].
func NewKnots[T Real](values []T, degree, points int) (*Knots[T], error) {
	if points < 1 {
		return nil, ErrTooFewPoints
	}
	if degree < 0 || degree >= points {
		return nil, fmt.Errorf("%w: degree %d with %d control points", ErrDegreeTooHigh, degree, points)
	}
	if want := points + degree + 1; len(values) != want {
		return nil, knotErrorf("%w: got %d knots for %d control points of degree %d, want %d",
			ErrLengthMismatch, len(values), points, degree, want)
	}
	for i := range len(values) - 1 {
		if !(values[i] <= values[i+1]) {
			return nil, knotErrorf("%w: knot %d (%v) > knot %d (%v)",
				ErrUnsortedKnots, i, values[i], i+1, values[i+1])
		}
	}

	k := &Knots[T]{
		values: slices.Clone(values),
		degree: degree,
	}
	lo, hi := k.Domain()
	interior := max(degree, 1)
	for _, run := range k.Multiplicities() {
		if run.Count > degree+1 {
			return nil, knotErrorf("%w: knot %v repeats %d times, at most %d allowed for degree %d",
				ErrKnotMultiplicity, run.Value, run.Count, degree+1, degree)
		}
		if run.Value > lo && run.Value < hi && run.Count > interior {
			return nil, knotErrorf("%w: interior knot %v repeats %d times, at most %d allowed for degree %d",
				ErrKnotMultiplicity, run.Value, run.Count, interior, degree)
		}
	}
	return k, nil
}

// Degree returns the degree of the B-spline the knots belong to.
func (k *Knots[T]) Degree() int { return k.degree }

// Len returns the number of knots.
func (k *Knots[T]) Len() int { return len(k.values) }

// Points returns the number of control points the knots were validated for.
func (k *Knots[T]) Points() int { return len(k.values) - k.degree - 1 }

// At returns the ith knot.
func (k *Knots[T]) At(i int) T { return k.values[i] }

// Values returns a copy of the knot values.
func (k *Knots[T]) Values() []T { return slices.Clone(k.values) }

// Domain returns the curve's domain, [knot[d], knot[N]].
func (k *Knots[T]) Domain() (T, T) {
	return k.values[k.degree], k.values[k.Points()]
}

// FindSpan returns the index i of the knot span that contains t, that is, the
// i in [d, N-1] with knot[i] ≤ t < knot[i+1]. When several knots equal t, the
// highest such span is used.
//
// Parameters at or beyond the upper bound of the domain map to the last
// non-empty span, so that the domain is closed on both ends. Likewise,
// parameters below the domain map to the first non-empty span. Evaluating
// those spans' polynomial pieces extends the curve beyond its domain.
func (k *Knots[T]) FindSpan(t T) int {
	d, n := k.degree, k.Points()
	lo, hi := k.Domain()
	if t >= hi {
		for i := n - 1; i > d; i-- {
			if k.values[i] < k.values[i+1] {
				return i
			}
		}
		return d
	}
	if t < lo {
		for i := d; i < n-1; i++ {
			if k.values[i] < k.values[i+1] {
				return i
			}
		}
		return n - 1
	}
	// The span starts right before the first of knot[d..n-1] that is greater
	// than t. knot[d] ≤ t < knot[n] holds here.
	return d + sort.Search(n-d, func(i int) bool {
		return k.values[d+i] > t
	}) - 1
}

// Multiplicity returns how often t occurs in the knot vector.
func (k *Knots[T]) Multiplicity(t T) int {
	var n int
	for _, v := range k.values {
		if v == t {
			n++
		}
	}
	return n
}

// Multiplicities returns the runs of equal values in the knot vector, in
// order.
func (k *Knots[T]) Multiplicities() []KnotRun[T] {
	var runs []KnotRun[T]
	for _, v := range k.values {
		if len(runs) > 0 && runs[len(runs)-1].Value == v {
			runs[len(runs)-1].Count++
		} else {
			runs = append(runs, KnotRun[T]{Value: v, Count: 1})
		}
	}
	return runs
}

// IsClamped reports whether the first and last d+1 knots are each equal, in
// which case the curve interpolates its first and last control points.
func (k *Knots[T]) IsClamped() bool {
	d := k.degree
	head := k.values[:d+1]
	tail := k.values[len(k.values)-d-1:]
	for _, v := range head {
		if v != head[0] {
			return false
		}
	}
	for _, v := range tail {
		if v != tail[0] {
			return false
		}
	}
	return true
}

// Equidistant returns n equidistant values from lo to hi, inclusive.
func Equidistant[T Real](n int, lo, hi T) []T {
	return slices.Collect(Steps(lo, hi, n))
}

// ClampedKnots returns a clamped knot vector with domain [lo, hi] for the
// given number of control points and degree. The end knots are repeated
// degree+1 times and the interior knots are equidistant.
//
// It returns nil if degree isn't in [0, points).
func ClampedKnots[T Real](points, degree int, lo, hi T) []T {
	if degree < 0 || degree >= points {
		return nil
	}
	out := make([]T, 0, points+degree+1)
	for range degree + 1 {
		out = append(out, lo)
	}
	segments := points - degree
	for i := 1; i < segments; i++ {
		out = append(out, lo+(hi-lo)*T(i)/T(segments))
	}
	for range degree + 1 {
		out = append(out, hi)
	}
	return out
}

// UniformKnots returns an open, uniform knot vector with domain [lo, hi] for
// the given number of control points and degree. All knots are equidistant,
// including those outside the domain.
//
// It returns nil if degree isn't in [0, points).
func UniformKnots[T Real](points, degree int, lo, hi T) []T {
	if degree < 0 || degree >= points {
		return nil
	}
	step := (hi - lo) / T(points-degree)
	out := make([]T, points+degree+1)
	for i := range out {
		out[i] = lo + T(i-degree)*step
	}
	out[degree] = lo
	out[points] = hi
	return out
}

// StepKnots returns n knots spaced step apart, starting at start.
func StepKnots[T Real](n int, start, step T) []T {
	if n <= 0 {
		return nil
	}
	out := make([]T, n)
	for i := range out {
		out[i] = start + T(i)*step
	}
	return out
}

// OpenKnots completes an open knot vector, which lacks the first and last
// knot, by repeating its first and last value. For curves of degree 1 or
// higher, those two knots never influence the curve, so any value is as good
// as any other.
//
// For N control points and degree d, an open knot vector has N+d-1 values.
// It returns nil if knots is empty.
func OpenKnots[T Real](knots []T) []T {
	if len(knots) == 0 {
		return nil
	}
	out := make([]T, 0, len(knots)+2)
	out = append(out, knots[0])
	out = append(out, knots...)
	out = append(out, knots[len(knots)-1])
	return out
}

// ClampKnots completes the breakpoints of a clamped curve to a full knot
// vector, repeating the first and last breakpoint degree more times each. The
// resulting curve interpolates its first and last control points.
//
// For N control points and degree d, there are N-d+1 breakpoints. It returns
// nil if breakpoints is empty or degree is negative.
func ClampKnots[T Real](breakpoints []T, degree int) []T {
	if len(breakpoints) == 0 || degree < 0 {
		return nil
	}
	out := make([]T, 0, len(breakpoints)+2*degree)
	for range degree {
		out = append(out, breakpoints[0])
	}
	out = append(out, breakpoints...)
	for range degree {
		out = append(out, breakpoints[len(breakpoints)-1])
	}
	return out
}
