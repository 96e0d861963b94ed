package interp

import (
	"fmt"
	"math"
)

// Extrapolation is a policy for evaluating curves outside of their domain.
type Extrapolation uint8

const (
	// Extend evaluates the curve's polynomial pieces beyond the domain. This
	// is always valid for Bézier curves. B-splines must be clamped, so that
	// the first and last pieces are the ones meeting the domain's bounds.
	Extend Extrapolation = iota
	// Clamp evaluates the curve at the nearest bound of the domain.
	Clamp
	// Wrap maps the parameter into the domain, repeating the curve
	// periodically.
	Wrap
	// Strict refuses to evaluate outside the domain.
	Strict
)

func (e Extrapolation) String() string {
	switch e {
	case Extend:
		return "extend"
	case Clamp:
		return "clamp"
	case Wrap:
		return "wrap"
	case Strict:
		return "strict"
	default:
		return fmt.Sprintf("Extrapolation(%d)", uint8(e))
	}
}

// ParseExtrapolation parses the names returned by [Extrapolation.String]. The
// empty string parses as [Extend].
func ParseExtrapolation(s string) (Extrapolation, error) {
	switch s {
	case "extend", "":
		return Extend, nil
	case "clamp":
		return Clamp, nil
	case "wrap":
		return Wrap, nil
	case "strict":
		return Strict, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownExtrapolation, s)
	}
}

// clamper is implemented by curves that know whether they interpolate their
// end points.
type clamper interface {
	IsClamped() bool
}

var _ Curve[float64, Vec2] = (*Extrapolated[float64, Vec2])(nil)

// Extrapolated wraps a curve with an [Extrapolation] policy. It is itself a
// curve, with the same domain as the wrapped curve.
type Extrapolated[T Real, V any] struct {
	curve Curve[T, V]
	mode  Extrapolation
}

// Extrapolate wraps c with the given policy.
//
// Using [Extend] with a curve that reports not being clamped fails with
// [ErrNotClamped].
func Extrapolate[T Real, V any](c Curve[T, V], mode Extrapolation) (*Extrapolated[T, V], error) {
	switch mode {
	case Extend:
		if cl, ok := c.(clamper); ok && !cl.IsClamped() {
			return nil, fmt.Errorf("%w: extending the end pieces needs clamped end knots; use clamp, wrap or strict extrapolation", ErrNotClamped)
		}
	case Clamp, Wrap, Strict:
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownExtrapolation, mode)
	}
	return &Extrapolated[T, V]{curve: c, mode: mode}, nil
}

// Mode returns the extrapolation policy.
func (x *Extrapolated[T, V]) Mode() Extrapolation { return x.mode }

// Curve returns the wrapped curve.
func (x *Extrapolated[T, V]) Curve() Curve[T, V] { return x.curve }

// Domain returns the wrapped curve's domain.
func (x *Extrapolated[T, V]) Domain() (T, T) { return x.curve.Domain() }

// Remap returns the parameter at which the wrapped curve gets evaluated for
// t. It returns false if the policy is [Strict] and t is outside of the
// domain. Parameters inside the domain are never changed.
func (x *Extrapolated[T, V]) Remap(t T) (T, bool) {
	lo, hi := x.curve.Domain()
	if t >= lo && t <= hi {
		return t, true
	}
	switch x.mode {
	case Clamp:
		if t < lo {
			return lo, true
		} else if t > hi {
			return hi, true
		}
		return t, true
	case Wrap:
		w := hi - lo
		if !(w > 0) {
			return lo, true
		}
		m := T(math.Mod(float64(t-lo), float64(w)))
		if m < 0 {
			m += w
		}
		return lo + m, true
	case Strict:
		return t, false
	default:
		return t, true
	}
}

// TryEval evaluates the curve at t according to the policy. It returns an
// error wrapping [ErrOutOfDomain] if the policy is [Strict] and t is outside
// of the domain.
func (x *Extrapolated[T, V]) TryEval(t T) (V, error) {
	u, ok := x.Remap(t)
	if !ok {
		var zero V
		lo, hi := x.curve.Domain()
		return zero, fmt.Errorf("%w: %v not in [%v, %v]", ErrOutOfDomain, t, lo, hi)
	}
	return x.curve.Eval(u), nil
}

// Eval evaluates the curve at t according to the policy. Where [Extrapolated.TryEval]
// would fail, Eval returns the zero value.
func (x *Extrapolated[T, V]) Eval(t T) V {
	v, _ := x.TryEval(t)
	return v
}

// IsClamped reports whether the wrapped curve is clamped.
func (x *Extrapolated[T, V]) IsClamped() bool {
	if c, ok := x.curve.(clamper); ok {
		return c.IsClamped()
	}
	return true
}
