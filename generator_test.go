package interp

import (
	"iter"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSteps(t *testing.T) {
	diff(t, []float64{0, 0.25, 0.5, 0.75, 1}, slices.Collect(Steps(0.0, 1, 5)))
	diff(t, []float64{2}, slices.Collect(Steps(2.0, 5, 1)))
	diff(t, []float64(nil), slices.Collect(Steps(2.0, 5, 0)))
	diff(t, []float64(nil), slices.Collect(Steps(2.0, 5, -3)))
	diff(t, []float64{1, 0.5, 0}, slices.Collect(Steps(1.0, 0, 3)))

	// The last value is exact even when the step isn't representable.
	got := slices.Collect(Steps(0.0, 0.7, 11))
	assert.Equal(t, 0.7, got[len(got)-1])

	// Stopping early.
	var n int
	for range Steps(0.0, 1, 100) {
		n++
		if n == 3 {
			break
		}
	}
	assert.Equal(t, 3, n)
}

func TestSample(t *testing.T) {
	l := line(t)
	seq := Sample[float64, Float](l, slices.Values([]float64{0, 0.5, 1}))
	diff(t, []Float{0, 5, 10}, slices.Collect(seq))
	// Sequences can be restarted.
	diff(t, []Float{0, 5, 10}, slices.Collect(seq))
}

func TestTake(t *testing.T) {
	b, err := NewBezier[float64]([]Float{2, 4})
	require.NoError(t, err)
	var ts []float64
	var vs []Float
	for tt, v := range Take[float64, Float](b, 3) {
		ts = append(ts, tt)
		vs = append(vs, v)
	}
	diff(t, []float64{0, 0.5, 1}, ts)
	diff(t, []Float{2, 3, 4}, vs)
}

func TestChain(t *testing.T) {
	// Ease the parameter of a color gradient.
	ease := Func[float64, float64](func(t float64) float64 { return t * t })
	grad, err := NewEquidistantLinear([]RGBA{{A: 1}, {R: 1, G: 1, B: 1, A: 1}}, 0.0, 1)
	require.NoError(t, err)
	g := Chain[float64, float64, RGBA](ease, grad)
	diff(t, RGBA{R: 0.25, G: 0.25, B: 0.25, A: 1}, g.Eval(0.5))

	// Chains compose further.
	half := Func[float64, float64](func(t float64) float64 { return t / 2 })
	gg := Chain[float64, float64, RGBA](half, g)
	diff(t, RGBA{R: 0.25, G: 0.25, B: 0.25, A: 1}, gg.Eval(1))
}

func TestGeneratorsAreCurves(t *testing.T) {
	pts := []Float{0, 1, 3}
	var curves []Curve[float64, Float]
	b, err := NewBezier[float64](pts)
	require.NoError(t, err)
	s, err := NewClampedBSpline(pts, 2, 0.0, 1)
	require.NoError(t, err)
	r, err := NewRationalBezier(pts, []float64{1, 1, 1})
	require.NoError(t, err)
	x, err := Extrapolate[float64, Float](s, Clamp)
	require.NoError(t, err)
	curves = append(curves, b, s, r, x)

	var seqs []iter.Seq[Float]
	for _, c := range curves {
		seqs = append(seqs, Sample[float64, Float](c, Steps(0.0, 1, 7)))
	}
	want := slices.Collect(seqs[0])
	for _, seq := range seqs[1:] {
		diff(t, want, slices.Collect(seq), approx(1e-12))
	}
}
