package interp

import (
	"math"
	"testing"
)

func TestAffineBasic(t *testing.T) {
	const epsilon = 1e-9
	p := Vec(3, 4)

	assertNear(t, p.Transform(Identity), p, epsilon)
	assertNear(t, p.Transform(Scale(2, 2)), Vec(6, 8), epsilon)
	assertNear(t, p.Transform(Rotate(0)), p, epsilon)
	assertNear(t, p.Transform(Rotate(math.Pi/2)), Vec(-4, 3), epsilon)
	assertNear(t, p.Transform(Translate(Vec(5, 6))), Vec(8, 10), epsilon)
	assertNear(t, p.Transform(Skew(0, 0)), p, epsilon)
	assertNear(t, p.Transform(Skew(2, 4)), Vec(11, 16), epsilon)
	assertNear(t, p.Transform(FlipY), Vec(3, -4), epsilon)
}

func TestAffineMul(t *testing.T) {
	const epsilon = 1e-9
	a1 := Affine{1, 2, 3, 4, 5, 6}
	a2 := Affine{0.1, 1.2, 2.3, 3.4, 4.5, 5.6}

	px := Vec(1, 0)
	py := Vec(0, 1)
	pxy := Vec(1, 1)

	assertNear(t, px.Transform(a2).Transform(a1), px.Transform(a1.Mul(a2)), epsilon)
	assertNear(t, py.Transform(a2).Transform(a1), py.Transform(a1.Mul(a2)), epsilon)
	assertNear(t, pxy.Transform(a2).Transform(a1), pxy.Transform(a1.Mul(a2)), epsilon)
}

func TestAffineInvert(t *testing.T) {
	const epsilon = 1e-9
	a := Affine{0.1, 1.2, 2.3, 3.4, 4.5, 5.6}
	aInv := a.Invert()

	px := Vec(1, 0)
	py := Vec(0, 1)
	pxy := Vec(1, 1)

	assertNear(t, px.Transform(aInv).Transform(a), px, epsilon)
	assertNear(t, py.Transform(aInv).Transform(a), py, epsilon)
	assertNear(t, pxy.Transform(aInv).Transform(a), pxy, epsilon)
	assertNear(t, px.Transform(a).Transform(aInv), px, epsilon)
	assertNear(t, py.Transform(a).Transform(aInv), py, epsilon)
	assertNear(t, pxy.Transform(a).Transform(aInv), pxy, epsilon)
}

func TestAffineThen(t *testing.T) {
	const epsilon = 1e-9
	p := Vec(1, 2)
	a := Identity.ThenScale(2, 3).ThenRotate(math.Pi / 2).ThenTranslate(Vec(10, 0))

	assertNear(t, a.Apply(p), Vec(4, 2), epsilon)
	diff(t, Vec(10, 0), a.Translation())
}

func TestAffineCoefficients(t *testing.T) {
	a := Identity.ThenScale(2, 3).ThenTranslate(Vec(5, 6))
	diff(t, [6]float64{2, 0, 0, 3, 5, 6}, a.Coefficients())
	diff(t, [6]float64{1, 0, 0, -1, 0, 0}, FlipY.Coefficients())
	if d := a.Determinant(); d != 6 {
		t.Errorf("got determinant %v, want 6", d)
	}
}
