package interp

import (
	"fmt"
	"image/color"
	"math"
)

var _ Vector[float64, RGBA] = RGBA{}

// RGBA is a color with non-premultiplied components, nominally in [0, 1].
//
// Blending happens component-wise in whatever space the components are
// expressed in; convert to a linear space first if that matters for the
// gradient being built.
type RGBA struct {
	R, G, B, A float64
}

// ColorOf converts c to an RGBA.
func ColorOf(c color.Color) RGBA {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return RGBA{
		R: float64(n.R) / 0xff,
		G: float64(n.G) / 0xff,
		B: float64(n.B) / 0xff,
		A: float64(n.A) / 0xff,
	}
}

func (c RGBA) Add(o RGBA) RGBA {
	return RGBA{c.R + o.R, c.G + o.G, c.B + o.B, c.A + o.A}
}

func (c RGBA) Mul(f float64) RGBA {
	return RGBA{c.R * f, c.G * f, c.B * f, c.A * f}
}

// NRGBA converts the color to 8 bits per channel, clamping components to
// [0, 1].
func (c RGBA) NRGBA() color.NRGBA {
	conv := func(x float64) uint8 {
		return uint8(math.Round(min(max(x, 0), 1) * 0xff))
	}
	return color.NRGBA{
		R: conv(c.R),
		G: conv(c.G),
		B: conv(c.B),
		A: conv(c.A),
	}
}

// RGBA implements [color.Color].
func (c RGBA) RGBA() (r, g, b, a uint32) {
	return c.NRGBA().RGBA()
}

func (c RGBA) String() string {
	return fmt.Sprintf("rgba(%g, %g, %g, %g)", c.R, c.G, c.B, c.A)
}
