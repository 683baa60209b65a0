package fractal

import (
	"fmt"
	"image/color"
	"math"
	"sort"
	"strings"
	"sync"

	"github.com/gogpu/gg"
)

// Palette maps a normalized escape value t in [0, 1] to an opaque color.
// Implementations must be deterministic and defined for every t in range.
type Palette interface {
	At(t float64) color.RGBA
}

const gradientLUTSize = 1024

// GradientPalette is a piecewise-linear gradient through color stops,
// sampled once into a lookup table.
type GradientPalette struct {
	lut [gradientLUTSize]color.RGBA
}

// NewGradientPalette bakes the gradient through stops. Offsets outside
// [0, 1] are padded with the nearest stop; no stops yields black.
func NewGradientPalette(stops ...gg.ColorStop) *GradientPalette {
	g := gg.NewLinearGradientBrush(0, 0, 1, 0)
	for _, s := range stops {
		g.AddColorStop(s.Offset, s.Color)
	}

	p := &GradientPalette{}
	for i := range p.lut {
		p.lut[i] = opaque(g.ColorAt(float64(i)/(gradientLUTSize-1), 0))
	}
	return p
}

// At implements Palette.
func (p *GradientPalette) At(t float64) color.RGBA {
	return p.lut[int(clamp01(t)*(gradientLUTSize-1)+0.5)]
}

// HSVPalette walks the hue circle Cycles times over [0, 1], starting at
// hue Offset (both in turns).
type HSVPalette struct {
	Cycles     float64
	Offset     float64
	Saturation float64
	Value      float64
}

// At implements Palette.
func (p HSVPalette) At(t float64) color.RGBA {
	return hsv(p.Offset+clamp01(t)*p.Cycles, p.Saturation, p.Value)
}

// TablePalette is a caller supplied color table. A table of MaxIter+1
// entries is indexed exactly by the iteration count.
type TablePalette []color.RGBA

// At implements Palette.
func (p TablePalette) At(t float64) color.RGBA {
	if len(p) == 0 {
		return color.RGBA{A: 0xff}
	}
	c := p[int(clamp01(t)*float64(len(p)-1)+0.5)]
	c.A = 0xff
	return c
}

// Simple HSV → RGB
func hsv(h, s, v float64) color.RGBA {
	h = math.Mod(h, 1)
	if h < 0 {
		h++
	}
	s, v = clamp01(s), clamp01(v)
	i := int(h * 6)
	f := h*6 - float64(i)
	p := v * (1 - s)
	q := v * (1 - f*s)
	t := v * (1 - (1-f)*s)

	var r, g, b float64
	switch i % 6 {
	case 0:
		r, g, b = v, t, p
	case 1:
		r, g, b = q, v, p
	case 2:
		r, g, b = p, v, t
	case 3:
		r, g, b = p, q, v
	case 4:
		r, g, b = t, p, v
	case 5:
		r, g, b = v, p, q
	}
	return color.RGBA{uint8(r * 255), uint8(g * 255), uint8(b * 255), 255}
}

func opaque(c gg.RGBA) color.RGBA {
	return color.RGBA{
		R: uint8(clamp01(c.R)*255 + 0.5),
		G: uint8(clamp01(c.G)*255 + 0.5),
		B: uint8(clamp01(c.B)*255 + 0.5),
		A: 0xff,
	}
}

func clamp01(x float64) float64 {
	if !(x > 0) {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}

func hexStops(offsets []float64, hexes ...string) []gg.ColorStop {
	stops := make([]gg.ColorStop, len(hexes))
	for i, h := range hexes {
		stops[i] = gg.ColorStop{Offset: offsets[i], Color: gg.Hex(h)}
	}
	return stops
}

// DefaultPalette is used when a request names no palette.
const DefaultPalette = "classic"

// Presets are built on first use and shared by every render.
var palettes = map[string]func() Palette{
	"classic": sync.OnceValue(func() Palette {
		return NewGradientPalette(hexStops(
			[]float64{0, 0.16, 0.42, 0.6425, 0.8575, 1},
			"#000764", "#206bcb", "#edffff", "#ffaa00", "#000200", "#000764")...)
	}),
	"fire": sync.OnceValue(func() Palette {
		return NewGradientPalette(hexStops(
			[]float64{0, 0.3, 0.6, 1},
			"#000000", "#800000", "#ff8000", "#ffff80")...)
	}),
	"ocean": sync.OnceValue(func() Palette {
		return NewGradientPalette(hexStops(
			[]float64{0, 0.5, 1},
			"#001028", "#0080c0", "#e0ffff")...)
	}),
	"grayscale": sync.OnceValue(func() Palette {
		return NewGradientPalette(hexStops([]float64{0, 1}, "#000000", "#ffffff")...)
	}),
	"rainbow": sync.OnceValue(func() Palette {
		stops := make([]gg.ColorStop, 7)
		for i := range stops {
			stops[i] = gg.ColorStop{Offset: float64(i) / 6, Color: gg.HSL(float64(i)*60, 1, 0.5)}
		}
		return NewGradientPalette(stops...)
	}),
	"hsv": sync.OnceValue(func() Palette {
		return HSVPalette{Cycles: 1, Saturation: 1, Value: 1}
	}),
}

// LookupPalette returns the named preset palette. The empty name selects
// DefaultPalette.
func LookupPalette(name string) (Palette, error) {
	if name == "" {
		name = DefaultPalette
	}
	preset, ok := palettes[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("unknown palette %q (known: %s)", name, strings.Join(PaletteNames(), ", "))
	}
	return preset(), nil
}

// PaletteNames lists the preset palettes in sorted order.
func PaletteNames() []string {
	names := make([]string, 0, len(palettes))
	for n := range palettes {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
