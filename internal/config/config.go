// Package config reads and writes YAML descriptions of curves.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"slices"

	"gopkg.in/yaml.v3"

	"honnef.co/go/interp"
)

// DefaultSamples is the number of samples taken when neither the
// description nor the command line specify it.
const DefaultSamples = 11

// ErrInvalidDomain indicates a domain that doesn't consist of exactly two
// values.
var ErrInvalidDomain = errors.New("config: domain must have two values")

// Curve is the YAML form of a curve over points of arbitrary dimension.
//
//	kind: bspline
//	degree: 2
//	points: [[0, 0], [1, 2], [3, 2], [4, 0]]
//	knots: [0, 0, 0, 0.5, 1, 1, 1]
//	extrapolation: clamp
type Curve struct {
	// One of bezier, bspline and linear. Empty means bspline.
	Kind   string `yaml:"kind"`
	Degree int    `yaml:"degree,omitempty"`
	// Each point is a list of coordinates. Points of lower dimension are
	// padded with zeros.
	Points [][]float64 `yaml:"points"`
	// Empty knots and weights are the same as leaving them out.
	Knots []float64 `yaml:"knots,omitempty"`
	// One of legacy, open and clamped. Empty means legacy, the full knot
	// vector.
	KnotMode string    `yaml:"knotMode,omitempty"`
	Weights  []float64 `yaml:"weights,omitempty"`
	// The domain used for generated knots, as [lo, hi].
	Domain []float64 `yaml:"domain,omitempty"`
	// Spacing of generated knots, starting at the start of the domain.
	Step float64 `yaml:"step,omitempty"`
	// One of extend, clamp, wrap and strict. Empty means extend, which
	// fails for B-splines whose knots aren't clamped, such as open knots;
	// those need one of the other policies.
	Extrapolation string `yaml:"extrapolation,omitempty"`

	// Number of equidistant samples to take over the domain.
	Samples int `yaml:"samples,omitempty"`
	// Explicit parameters to sample at, instead of equidistant ones.
	Params []float64 `yaml:"params,omitempty"`
}

// Read decodes a curve description. Unknown fields are an error.
func Read(r io.Reader) (*Curve, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	var c Curve
	if err := dec.Decode(&c); err != nil {
		return nil, err
	}
	return &c, nil
}

// ReadFile decodes the curve description in the named file.
func ReadFile(name string) (*Curve, error) {
	if name == "" {
		return nil, errors.New("missing curve file")
	}
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	c, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", name, err)
	}
	return c, nil
}

// Marshal encodes the description as YAML. Floating point values are
// written with full precision, so reading the result yields the same curve.
func (c *Curve) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}

// SampleCount returns the number of samples to take, falling back to
// [DefaultSamples].
func (c *Curve) SampleCount() int {
	if c.Samples > 0 {
		return c.Samples
	}
	return DefaultSamples
}

// Dim returns the highest dimension of the control points.
func (c *Curve) Dim() int {
	var n int
	for _, p := range c.Points {
		n = max(n, len(p))
	}
	return n
}

// Build converts the description to construction parameters. Only the
// names it contains are checked; the curve itself is validated by
// [interp.Build].
func (c *Curve) Build() (interp.Params[float64, interp.VecN], error) {
	var p interp.Params[float64, interp.VecN]
	kind := c.Kind
	if kind == "" {
		kind = interp.KindBSpline.String()
	}
	k, err := interp.ParseKind(kind)
	if err != nil {
		return p, err
	}
	x, err := interp.ParseExtrapolation(c.Extrapolation)
	if err != nil {
		return p, err
	}
	m, err := interp.ParseKnotMode(c.KnotMode)
	if err != nil {
		return p, err
	}
	switch len(c.Domain) {
	case 0:
	case 2:
		p.Domain = [2]float64{c.Domain[0], c.Domain[1]}
	default:
		return p, fmt.Errorf("%w, got %d", ErrInvalidDomain, len(c.Domain))
	}

	p.Kind = k
	p.Degree = c.Degree
	p.Extrapolation = x
	p.KnotMode = m
	p.Step = c.Step
	if len(c.Knots) > 0 {
		p.Knots = slices.Clone(c.Knots)
	}
	if len(c.Weights) > 0 {
		p.Weights = slices.Clone(c.Weights)
	}
	if c.Points != nil {
		p.Points = make([]interp.VecN, len(c.Points))
		for i, pt := range c.Points {
			p.Points[i] = interp.VecN(slices.Clone(pt))
		}
	}
	return p, nil
}

// FromParams returns the description of p.
func FromParams(p interp.Params[float64, interp.VecN]) *Curve {
	c := &Curve{
		Kind:    p.Kind.String(),
		Degree:  p.Degree,
		Knots:   slices.Clone(p.Knots),
		Weights: slices.Clone(p.Weights),
		Step:    p.Step,
	}
	if p.Extrapolation != interp.Extend {
		c.Extrapolation = p.Extrapolation.String()
	}
	if p.KnotMode != interp.KnotsLegacy {
		c.KnotMode = p.KnotMode.String()
	}
	if p.Domain != [2]float64{} {
		c.Domain = p.Domain[:]
	}
	if p.Points != nil {
		c.Points = make([][]float64, len(p.Points))
		for i, pt := range p.Points {
			c.Points[i] = slices.Clone([]float64(pt))
		}
	}
	return c
}
