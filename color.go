package fractal

import (
	"image/color"
)

// Interior is the color of every bounded point.
var Interior = color.RGBA{A: 0xff}

// ColorMapper turns iteration results into pixels.
type ColorMapper struct {
	Palette  Palette
	Interior color.RGBA
	// Smooth feeds the continuous escape estimate to the palette instead of
	// the integer step.
	Smooth bool
}

// NewColorMapper returns a mapper with the default opaque black interior.
func NewColorMapper(p Palette, smooth bool) ColorMapper {
	return ColorMapper{Palette: p, Interior: Interior, Smooth: smooth}
}

// Color maps r through the palette at N / MaxIter. The alpha channel is
// always opaque.
func (m ColorMapper) Color(r Result, p Params) color.RGBA {
	if !r.Escaped {
		c := m.Interior
		c.A = 0xff
		return c
	}
	v := float64(r.N)
	if m.Smooth {
		v = r.Smooth(p.EscapeRadius)
	}
	c := m.Palette.At(clamp01(v / float64(p.MaxIter)))
	c.A = 0xff
	return c
}

// Pixel computes the color of pixel (x, y): map, iterate, color.
func Pixel(x, y int, vp Viewport, p Params, m ColorMapper) color.RGBA {
	return m.Color(Evaluate(vp.Map(x, y), p), p)
}
