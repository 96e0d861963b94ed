package interp

import (
	"fmt"
)

// Kind selects the family of curve built by [Build].
type Kind uint8

const (
	KindBSpline Kind = iota
	KindBezier
	KindLinear
)

func (k Kind) String() string {
	switch k {
	case KindBSpline:
		return "bspline"
	case KindBezier:
		return "bezier"
	case KindLinear:
		return "linear"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// ParseKind parses the names returned by [Kind.String].
func ParseKind(s string) (Kind, error) {
	switch s {
	case "bspline":
		return KindBSpline, nil
	case "bezier":
		return KindBezier, nil
	case "linear":
		return KindLinear, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownKind, s)
	}
}

// KnotMode selects how [Params.Knots] of a B-spline are interpreted.
type KnotMode uint8

const (
	// KnotsLegacy takes the full knot vector of N+d+1 values, as accepted
	// by [NewKnots].
	KnotsLegacy KnotMode = iota
	// KnotsOpen takes the N+d-1 knots that influence the curve, leaving out
	// the first and last knot. See [OpenKnots]. It requires degree 1 or
	// higher.
	KnotsOpen
	// KnotsClamped takes the N-d+1 breakpoints of a clamped curve. See
	// [ClampKnots].
	KnotsClamped
)

func (m KnotMode) String() string {
	switch m {
	case KnotsLegacy:
		return "legacy"
	case KnotsOpen:
		return "open"
	case KnotsClamped:
		return "clamped"
	default:
		return fmt.Sprintf("KnotMode(%d)", uint8(m))
	}
}

// ParseKnotMode parses the names returned by [KnotMode.String]. The empty
// string parses as [KnotsLegacy].
func ParseKnotMode(s string) (KnotMode, error) {
	switch s {
	case "legacy", "":
		return KnotsLegacy, nil
	case "open":
		return KnotsOpen, nil
	case "clamped":
		return KnotsClamped, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownKnotMode, s)
	}
}

// knotCount returns the number of knots the mode takes for a B-spline.
func (m KnotMode) knotCount(points, degree int) int {
	switch m {
	case KnotsOpen:
		return points + degree - 1
	case KnotsClamped:
		return points - degree + 1
	default:
		return points + degree + 1
	}
}

// Params describes a curve for [Build].
type Params[T Real, V Vector[T, V]] struct {
	Kind Kind
	// Points are the control points. At least one is required.
	Points []V
	// Knots are the knots of B-splines and linear interpolations. B-splines
	// take as many knots as KnotMode asks for, linear interpolations one per
	// point. Bézier curves have no knots.
	//
	// If nil and Step is zero, knots spanning Domain are generated: clamped
	// ones for B-splines, unless KnotMode is KnotsOpen, and equidistant ones
	// for linear interpolations.
	Knots []T
	// KnotMode selects how the knots of B-splines are interpreted. It is
	// ignored for other kinds.
	KnotMode KnotMode
	// Step, if positive and Knots is nil, generates knots spaced Step apart,
	// starting at Domain[0]. The knot mode decides how many knots there are,
	// so the domain of the resulting curve generally isn't Domain.
	Step T
	// Weights, if not nil, make the curve rational. There must be one
	// positive weight per point.
	Weights []T
	// Degree is the degree of B-splines. Bézier curves have degree
	// len(Points)-1 and linear interpolations degree 1, so it is ignored
	// for them.
	Degree int
	// Domain is the domain used for generated knots. The zero value means
	// [0, 1]. Bézier curves always have the domain [0, 1].
	Domain [2]T
	// Extrapolation is the policy for parameters outside the domain. The
	// zero value, [Extend], fails for B-splines whose knots aren't clamped;
	// those need one of the other policies.
	Extrapolation Extrapolation
}

func (p *Params[T, V]) domain() (T, T) {
	if p.Domain == [2]T{} {
		return 0, 1
	}
	return p.Domain[0], p.Domain[1]
}

// Build validates p and builds the curve it describes, wrapped in its
// extrapolation policy. All validation happens here; the returned curve
// cannot fail to evaluate, except for parameters rejected by [Strict].
func Build[T Real, V Vector[T, V]](p Params[T, V]) (*Extrapolated[T, V], error) {
	c, err := p.curve()
	if err != nil {
		return nil, fmt.Errorf("building %s: %w", p.Kind, err)
	}
	x, err := Extrapolate(c, p.Extrapolation)
	if err != nil {
		return nil, fmt.Errorf("building %s: %w", p.Kind, err)
	}
	return x, nil
}

func (p *Params[T, V]) curve() (Curve[T, V], error) {
	if len(p.Points) == 0 {
		return nil, ErrTooFewPoints
	}
	lo, hi := p.domain()
	rational := p.Weights != nil

	switch p.Kind {
	case KindBezier:
		if p.Knots != nil {
			return nil, knotErrorf("%w: Bézier curves take no knots, got %d", ErrLengthMismatch, len(p.Knots))
		}
		if rational {
			c, err := NewRationalBezier(p.Points, p.Weights)
			if err != nil {
				return nil, err
			}
			return c, nil
		}
		c, err := NewBezier[T](p.Points)
		if err != nil {
			return nil, err
		}
		return c, nil

	case KindBSpline:
		knots, err := p.bsplineKnots(lo, hi)
		if err != nil {
			return nil, err
		}
		if rational {
			c, err := NewNURBS(p.Points, p.Weights, knots, p.Degree)
			if err != nil {
				return nil, err
			}
			return c, nil
		}
		c, err := NewBSpline(p.Points, knots, p.Degree)
		if err != nil {
			return nil, err
		}
		return c, nil

	case KindLinear:
		knots := p.Knots
		if knots == nil {
			if p.Step > 0 {
				knots = StepKnots(len(p.Points), lo, p.Step)
			} else {
				knots = Equidistant(len(p.Points), lo, hi)
			}
		}
		if rational {
			lifted, err := liftAll(p.Points, p.Weights)
			if err != nil {
				return nil, err
			}
			inner, err := NewLinear(lifted, knots)
			if err != nil {
				return nil, err
			}
			return NewRational[T, V](inner), nil
		}
		c, err := NewLinear(p.Points, knots)
		if err != nil {
			return nil, err
		}
		return c, nil

	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownKind, p.Kind)
	}
}

// bsplineKnots returns the full knot vector of a B-spline, converting or
// generating knots according to the knot mode.
func (p *Params[T, V]) bsplineKnots(lo, hi T) ([]T, error) {
	n, d := len(p.Points), p.Degree
	switch p.KnotMode {
	case KnotsLegacy, KnotsClamped:
	case KnotsOpen:
		if d < 1 {
			return nil, fmt.Errorf("%w: open knots need degree 1 or higher, got %d", ErrDegreeTooHigh, d)
		}
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownKnotMode, p.KnotMode)
	}
	if d < 0 || d >= n {
		return nil, fmt.Errorf("%w: degree %d with %d control points", ErrDegreeTooHigh, d, n)
	}

	knots := p.Knots
	if knots == nil {
		switch {
		case p.Step > 0:
			knots = StepKnots(p.KnotMode.knotCount(n, d), lo, p.Step)
		case p.KnotMode == KnotsOpen:
			return UniformKnots(n, d, lo, hi), nil
		default:
			return ClampedKnots(n, d, lo, hi), nil
		}
	} else if want := p.KnotMode.knotCount(n, d); len(knots) != want {
		return nil, knotErrorf("%w: got %d %s knots for %d control points of degree %d, want %d",
			ErrLengthMismatch, len(knots), p.KnotMode, n, d, want)
	}

	switch p.KnotMode {
	case KnotsOpen:
		return OpenKnots(knots), nil
	case KnotsClamped:
		return ClampKnots(knots, d), nil
	default:
		return knots, nil
	}
}
