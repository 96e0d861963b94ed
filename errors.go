package interp

import (
	"errors"
	"fmt"
)

// Construction errors. Constructors never return a partially valid curve;
// they either succeed or return an error wrapping one of these sentinels.
// Match them with [errors.Is].
//
// Errors about knot vectors additionally wrap [ErrInvalidKnots], and errors
// about weights additionally wrap [ErrInvalidWeights], so that callers can
// check for the class of problem as well as the precise cause.
var (
	// ErrInvalidKnots is the class of all knot vector errors.
	ErrInvalidKnots = errors.New("interp: invalid knot vector")

	// ErrInvalidWeights is the class of all weight errors.
	ErrInvalidWeights = errors.New("interp: invalid weights")

	// ErrLengthMismatch indicates that the number of knots or weights does
	// not match the number of control points and the degree.
	ErrLengthMismatch = errors.New("interp: length mismatch")

	// ErrUnsortedKnots indicates a knot vector that is not non-decreasing.
	ErrUnsortedKnots = errors.New("interp: knots are not non-decreasing")

	// ErrKnotMultiplicity indicates a knot that repeats more often than the
	// degree allows.
	ErrKnotMultiplicity = errors.New("interp: knot multiplicity too high")

	// ErrTooFewPoints indicates that no control points were given.
	ErrTooFewPoints = errors.New("interp: too few control points")

	// ErrDegreeTooHigh indicates a degree that is negative, not smaller
	// than the number of control points, or too low for open knots.
	ErrDegreeTooHigh = errors.New("interp: invalid degree")

	// ErrZeroWeight indicates a control point with weight zero.
	ErrZeroWeight = errors.New("interp: zero weight")

	// ErrNegativeWeight indicates a control point with a negative or NaN
	// weight. Only positive weights guarantee a non-zero blended weight.
	ErrNegativeWeight = errors.New("interp: weight is not positive")

	// ErrNotClamped indicates that polynomial extrapolation was requested
	// for a curve whose end knots aren't clamped.
	ErrNotClamped = errors.New("interp: curve is not clamped")

	// ErrUnknownKind indicates an unsupported [Kind] in [Params].
	ErrUnknownKind = errors.New("interp: unknown curve kind")

	// ErrUnknownExtrapolation indicates an unsupported [Extrapolation].
	ErrUnknownExtrapolation = errors.New("interp: unknown extrapolation")

	// ErrUnknownKnotMode indicates an unsupported [KnotMode].
	ErrUnknownKnotMode = errors.New("interp: unknown knot mode")
)

// ErrOutOfDomain is returned by [Extrapolated.TryEval] under the [Strict]
// strategy when the parameter lies outside the curve's domain.
var ErrOutOfDomain = errors.New("interp: parameter out of domain")

// classError attaches a class sentinel to a more specific error, so that
// errors.Is matches both.
type classError struct {
	class error
	err   error
}

func (e *classError) Error() string   { return e.err.Error() }
func (e *classError) Unwrap() []error { return []error{e.class, e.err} }

func knotErrorf(format string, args ...any) error {
	return &classError{class: ErrInvalidKnots, err: fmt.Errorf(format, args...)}
}

func weightErrorf(format string, args ...any) error {
	return &classError{class: ErrInvalidWeights, err: fmt.Errorf(format, args...)}
}
