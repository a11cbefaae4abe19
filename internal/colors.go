package internal

import (
	"fmt"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

const darker = 0.7

// LinearColorScale maps a numeric domain onto an RGB gradient. Values outside
// the domain extrapolate the same way a linear scale does; the resulting
// color is clamped into gamut.
type LinearColorScale struct {
	domain [2]float64
	from   colorful.Color
	to     colorful.Color
}

func NewLinearColorScale(d0, d1 float64, from, to string) (*LinearColorScale, error) {
	c0, err := colorful.Hex(from)

	if err != nil {
		return nil, fmt.Errorf("color scale: %v", err)
	}

	c1, err := colorful.Hex(to)

	if err != nil {
		return nil, fmt.Errorf("color scale: %v", err)
	}

	return &LinearColorScale{domain: [2]float64{d0, d1}, from: c0, to: c1}, nil
}

func (s *LinearColorScale) color(v float64) colorful.Color {
	span := s.domain[1] - s.domain[0]

	t := 0.5
	if span != 0 {
		t = (v - s.domain[0]) / span
	}

	return s.from.BlendRgb(s.to, t).Clamped()
}

func (s *LinearColorScale) At(v float64) string {
	return s.color(v).Hex()
}

// Stops returns the two ends of the gradient, used for legend swatches.
func (s *LinearColorScale) Stops() (string, string) {
	return s.from.Hex(), s.to.Hex()
}

// Brighter lightens a hex color in HSL space by k steps of 1/0.7.
func Brighter(hex string, k float64) (string, error) {
	c, err := colorful.Hex(hex)

	if err != nil {
		return "", err
	}

	h, s, l := c.Hsl()

	l = l * math.Pow(1/darker, k)

	return colorful.Hsl(h, s, math.Min(l, 1)).Clamped().Hex(), nil
}

// HueShift is the hover treatment for pie slices: rotate hue by 25 degrees,
// saturate slightly and darken slightly, never below 0.2 lightness.
func HueShift(hex string) (string, error) {
	c, err := colorful.Hex(hex)

	if err != nil {
		return "", err
	}

	h, s, l := c.Hsl()

	h = math.Mod(h+25, 360)
	s = math.Min(1, s*1.05)
	l = math.Max(0.2, l*0.95)

	return colorful.Hsl(h, s, l).Clamped().Hex(), nil
}
