package interp

import (
	"fmt"
	"math"
	"strings"

	"golang.org/x/exp/constraints"
)

// Real describes the scalar types used for parameters, knots and weights.
type Real interface {
	constraints.Float
}

// Vector describes the types that curves can blend. Control points, evaluated
// points and homogeneous points all satisfy it.
//
// Implementations must behave like elements of a vector space over T: Add is
// associative and commutative, and Mul distributes over Add. The zero value of
// V must be the additive identity.
type Vector[T Real, V any] interface {
	Add(o V) V
	Mul(f T) V
}

var _ Vector[float64, Float] = Float(0)
var _ Vector[float64, VecN] = VecN(nil)

// Float is a one-dimensional point, for curves through plain numbers.
type Float float64

func (f Float) Add(o Float) Float { return f + o }
func (f Float) Mul(s float64) Float {
	return Float(float64(f) * s)
}

// VecN is a vector of arbitrary dimension.
//
// Vectors of different lengths can be added; missing components are treated
// as zero. In particular, the nil vector is the zero vector of every
// dimension.
type VecN []float64

// Add adds two vectors and returns the resulting vector. The result has the
// length of the longer operand.
func (v VecN) Add(o VecN) VecN {
	if len(o) > len(v) {
		v, o = o, v
	}
	out := make(VecN, len(v))
	copy(out, v)
	for i, x := range o {
		out[i] += x
	}
	return out
}

func (v VecN) Mul(f float64) VecN {
	if v == nil {
		return nil
	}
	out := make(VecN, len(v))
	for i, x := range v {
		out[i] = x * f
	}
	return out
}

// Dim returns the number of components.
func (v VecN) Dim() int { return len(v) }

// IsNaN reports whether at least one component is NaN.
func (v VecN) IsNaN() bool {
	for _, x := range v {
		if math.IsNaN(x) {
			return true
		}
	}
	return false
}

func (v VecN) String() string {
	sb := &strings.Builder{}
	sb.WriteString("⟨")
	for i, x := range v {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(sb, "%g", x)
	}
	sb.WriteString("⟩")
	return sb.String()
}

// sub computes a−b using only the operations of the vector contract.
func sub[T Real, V Vector[T, V]](a, b V) V {
	return a.Add(b.Mul(-1))
}

// blend computes (1−α)·a + α·b.
//
// The endpoints are reproduced exactly: α = 0 yields a and α = 1 yields b,
// as long as the points are finite.
func blend[T Real, V Vector[T, V]](a, b V, alpha T) V {
	return a.Mul(1 - alpha).Add(b.Mul(alpha))
}
