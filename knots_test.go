package interp

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewKnotsErrors(t *testing.T) {
	tests := []struct {
		name   string
		values []float64
		degree int
		points int
		errs   []error
	}{
		{"no points", nil, 0, 0, []error{ErrTooFewPoints}},
		{"degree too high", []float64{0, 0, 1, 1}, 2, 2, []error{ErrDegreeTooHigh}},
		{"negative degree", []float64{0, 1}, -1, 2, []error{ErrDegreeTooHigh}},
		{"too few knots", []float64{0, 0, 1}, 1, 2, []error{ErrInvalidKnots, ErrLengthMismatch}},
		{"too many knots", []float64{0, 0, 1, 1, 1}, 1, 2, []error{ErrInvalidKnots, ErrLengthMismatch}},
		{"decreasing", []float64{0, 0, 1, 0.5, 2, 2}, 1, 4, []error{ErrInvalidKnots, ErrUnsortedKnots}},
		{"NaN", []float64{0, 0, math.NaN(), 1, 1}, 1, 3, []error{ErrInvalidKnots, ErrUnsortedKnots}},
		{"end multiplicity", []float64{0, 0, 0, 1, 1}, 1, 3, []error{ErrInvalidKnots, ErrKnotMultiplicity}},
		{"interior multiplicity", []float64{0, 0, 0, 0.5, 0.5, 0.5, 1, 1, 1}, 2, 6, []error{ErrInvalidKnots, ErrKnotMultiplicity}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			k, err := NewKnots(tt.values, tt.degree, tt.points)
			require.Nil(t, k)
			for _, want := range tt.errs {
				require.ErrorIs(t, err, want)
			}
		})
	}
}

func TestNewKnotsErrorClasses(t *testing.T) {
	// Degree and point count problems aren't knot problems.
	_, err := NewKnots([]float64{0, 0, 1, 1}, 3, 1)
	require.ErrorIs(t, err, ErrDegreeTooHigh)
	assert.NotErrorIs(t, err, ErrInvalidKnots)
}

func TestKnotsDomain(t *testing.T) {
	k, err := NewKnots([]float64{0, 0, 1, 1}, 1, 2)
	require.NoError(t, err)
	lo, hi := k.Domain()
	diff(t, [2]float64{0, 1}, [2]float64{lo, hi})

	k, err = NewKnots([]float64{-2, -1, 0, 1, 2, 3, 4}, 2, 4)
	require.NoError(t, err)
	lo, hi = k.Domain()
	diff(t, [2]float64{0, 2}, [2]float64{lo, hi})
	assert.False(t, k.IsClamped())
	assert.Equal(t, 4, k.Points())
	assert.Equal(t, 7, k.Len())
}

func TestKnotsFindSpan(t *testing.T) {
	// Degree 2, 6 points, double interior knot at 0.5.
	k, err := NewKnots([]float64{0, 0, 0, 0.25, 0.5, 0.5, 1, 1, 1}, 2, 6)
	require.NoError(t, err)

	tests := []struct {
		t    float64
		span int
	}{
		{-1, 2},
		{0, 2},
		{0.1, 2},
		{0.25, 3},
		{0.3, 3},
		// Equal knots resolve to the highest span.
		{0.5, 5},
		{0.75, 5},
		{1, 5},
		{2, 5},
	}
	for _, tt := range tests {
		if got := k.FindSpan(tt.t); got != tt.span {
			t.Errorf("FindSpan(%v) = %d, want %d", tt.t, got, tt.span)
		}
	}
}

func TestKnotsMultiplicities(t *testing.T) {
	k, err := NewKnots([]float64{0, 0, 0, 0.5, 0.5, 1, 1, 1}, 2, 5)
	require.NoError(t, err)
	diff(t, []KnotRun[float64]{{0, 3}, {0.5, 2}, {1, 3}}, k.Multiplicities())
	assert.Equal(t, 2, k.Multiplicity(0.5))
	assert.Equal(t, 0, k.Multiplicity(0.7))
	assert.True(t, k.IsClamped())
}

func TestKnotsDegreeZero(t *testing.T) {
	// Step functions may have any interior knot once.
	k, err := NewKnots([]float64{0, 1, 2, 3}, 0, 3)
	require.NoError(t, err)
	assert.True(t, k.IsClamped())
	assert.Equal(t, 0, k.FindSpan(0.5))
	assert.Equal(t, 1, k.FindSpan(1))
	assert.Equal(t, 2, k.FindSpan(3))
}

func TestKnotsCopy(t *testing.T) {
	in := []float64{0, 0, 1, 1}
	k, err := NewKnots(in, 1, 2)
	require.NoError(t, err)
	in[0] = -5
	out := k.Values()
	out[1] = 7
	diff(t, []float64{0, 0, 1, 1}, k.Values())
}

func TestKnotGenerators(t *testing.T) {
	diff(t, []float64{0, 0.25, 0.5, 0.75, 1}, Equidistant(5, 0.0, 1))
	diff(t, []float64{3}, Equidistant(1, 3.0, 4))
	diff(t, []float64(nil), Equidistant(0, 0.0, 1))

	diff(t, []float64{0, 0, 0, 0.5, 1, 1, 1}, ClampedKnots(4, 2, 0.0, 1))
	diff(t, []float64{2, 2, 4, 4}, ClampedKnots(2, 1, 2.0, 4))
	diff(t, []float64{0, 1.0 / 3, 2.0 / 3, 1}, ClampedKnots(3, 0, 0.0, 1), approx(1e-15))
	assert.Nil(t, ClampedKnots(2, 2, 0.0, 1))

	diff(t, []float64{-2, -1, 0, 1, 2, 3, 4}, UniformKnots(4, 2, 0.0, 2))
	assert.Nil(t, UniformKnots(2, -1, 0.0, 1))

	for _, tc := range []struct{ points, degree int }{{1, 0}, {2, 1}, {5, 2}, {7, 3}, {4, 3}} {
		_, err := NewKnots(ClampedKnots(tc.points, tc.degree, 0.0, 1), tc.degree, tc.points)
		assert.NoError(t, err, "clamped %+v", tc)
		_, err = NewKnots(UniformKnots(tc.points, tc.degree, 0.0, 1), tc.degree, tc.points)
		assert.NoError(t, err, "uniform %+v", tc)
	}
}

func TestKnotCompletion(t *testing.T) {
	diff(t, []float64{0, 0, 0, 1, 1, 1}, OpenKnots([]float64{0, 0, 1, 1}))
	diff(t, []float64{1, 1, 2, 3, 3}, OpenKnots([]float64{1, 2, 3}))
	assert.Nil(t, OpenKnots[float64](nil))

	diff(t, []float64{0, 0, 0, 1, 1, 1}, ClampKnots([]float64{0, 1}, 2))
	diff(t, []float64{0, 0.5, 2}, ClampKnots([]float64{0, 0.5, 2}, 0))
	assert.Nil(t, ClampKnots([]float64{0, 1}, -1))
	assert.Nil(t, ClampKnots[float64](nil, 2))

	diff(t, []float64{1, 1.5, 2, 2.5}, StepKnots(4, 1.0, 0.5))
	assert.Nil(t, StepKnots(0, 1.0, 0.5))

	// Clamping breakpoints matches the generated clamped knots.
	for _, tc := range []struct{ points, degree int }{{1, 0}, {3, 1}, {5, 2}, {7, 3}} {
		breaks := Equidistant(tc.points-tc.degree+1, 0.0, 1)
		diff(t, ClampedKnots(tc.points, tc.degree, 0.0, 1), ClampKnots(breaks, tc.degree), approx(1e-15))
	}
}
