package interp

import (
	"iter"
)

// Generator describes anything that maps parameters to values. All curves in
// this package are generators, as are the wrappers that modify them, which
// allows composing them freely.
//
// Evaluation must not modify the generator. All generators in this package
// are safe for concurrent use.
type Generator[T, V any] interface {
	// Eval evaluates the generator at t.
	Eval(t T) V
}

// Curve describes generators that have a domain of definition, [t_min,
// t_max]. Evaluating a curve outside its domain is allowed but its meaning
// depends on the curve; see [Extrapolate] for choosing a policy.
type Curve[T Real, V any] interface {
	Generator[T, V]
	// Domain returns the bounds of the curve's domain.
	Domain() (T, T)
}

// Func adapts an ordinary function to the [Generator] interface.
type Func[T, V any] func(t T) V

func (fn Func[T, V]) Eval(t T) V { return fn(t) }

// Chained is the composition of two generators. It is created by [Chain].
type Chained[T, U, V any] struct {
	first  Generator[T, U]
	second Generator[U, V]
}

var _ Generator[float64, Vec2] = (*Chained[float64, float64, Vec2])(nil)

// Chain returns the generator that evaluates second at the value produced by
// first. This is useful for reparametrizing curves, for example to apply an
// easing function to the parameter of a gradient.
func Chain[T, U, V any](first Generator[T, U], second Generator[U, V]) *Chained[T, U, V] {
	return &Chained[T, U, V]{first: first, second: second}
}

func (c *Chained[T, U, V]) Eval(t T) V {
	return c.second.Eval(c.first.Eval(t))
}

// Sample evaluates g at each parameter produced by params.
//
// The returned sequence is lazy and can be iterated multiple times if params
// can; each iteration evaluates anew.
func Sample[T, V any](g Generator[T, V], params iter.Seq[T]) iter.Seq[V] {
	return func(yield func(V) bool) {
		for t := range params {
			if !yield(g.Eval(t)) {
				return
			}
		}
	}
}

// Steps returns n equidistant values, starting at lo and ending at hi. A
// single step yields lo.
func Steps[T Real](lo, hi T, n int) iter.Seq[T] {
	return func(yield func(T) bool) {
		if n <= 0 {
			return
		}
		if n == 1 {
			yield(lo)
			return
		}
		step := (hi - lo) / T(n-1)
		for i := range n {
			t := lo + T(i)*step
			if i == n-1 {
				// Avoid rounding error at the end of the range.
				t = hi
			}
			if !yield(t) {
				return
			}
		}
	}
}

// Take evaluates c at n equidistant parameters spanning its domain, yielding
// pairs of parameter and value.
func Take[T Real, V any](c Curve[T, V], n int) iter.Seq2[T, V] {
	return func(yield func(T, V) bool) {
		lo, hi := c.Domain()
		for t := range Steps(lo, hi, n) {
			if !yield(t, c.Eval(t)) {
				return
			}
		}
	}
}
