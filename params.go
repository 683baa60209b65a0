package fractal

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/marben/irpc/irpcgen"
)

// Mode selects which operand of z = z^2 + c is seeded per pixel.
type Mode uint8

const (
	// Mandelbrot seeds c with the pixel.
	Mandelbrot Mode = iota
	// Julia seeds z0 with the pixel; c is fixed by Params.C.
	Julia
)

func (m Mode) String() string {
	switch m {
	case Mandelbrot:
		return "mandelbrot"
	case Julia:
		return "julia"
	}
	return fmt.Sprintf("Mode(%d)", uint8(m))
}

// ParseMode parses "mandelbrot" or "julia" (case insensitive).
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "mandelbrot", "m", "":
		return Mandelbrot, nil
	case "julia", "j":
		return Julia, nil
	}
	return 0, fmt.Errorf("unknown fractal mode %q", s)
}

func (m Mode) MarshalText() ([]byte, error) {
	if m > Julia {
		return nil, fmt.Errorf("unknown fractal mode %d", uint8(m))
	}
	return []byte(m.String()), nil
}

func (m *Mode) UnmarshalText(b []byte) error {
	v, err := ParseMode(string(b))
	if err != nil {
		return err
	}
	*m = v
	return nil
}

// Set implements flag.Value.
func (m *Mode) Set(s string) error { return m.UnmarshalText([]byte(s)) }

// Params are the fractal parameters shared by every pixel of a render.
type Params struct {
	MaxIter      int
	EscapeRadius float64
	Mode         Mode
	// C is the fixed constant in Julia mode. Ignored for Mandelbrot.
	C complex128
	// SkipInterior classifies points of the main cardioid and the period-2
	// bulb as bounded without iterating. Mandelbrot mode only.
	SkipInterior bool
}

// DefaultParams returns Mandelbrot parameters with 256 iterations and
// escape radius 2.
func DefaultParams() Params {
	return Params{
		MaxIter:      256,
		EscapeRadius: 2,
		Mode:         Mandelbrot,
	}
}

// Threshold is the squared escape radius.
func (p Params) Threshold() float64 {
	return p.EscapeRadius * p.EscapeRadius
}

func (p Params) Validate() error {
	switch {
	case p.MaxIter <= 0:
		return invalidf("max iterations %d must be positive", p.MaxIter)
	case !finite(p.EscapeRadius) || p.EscapeRadius <= 0:
		return invalidf("escape radius %g must be positive and finite", p.EscapeRadius)
	case !finite(p.Threshold()):
		return invalidf("escape radius %g overflows when squared", p.EscapeRadius)
	case p.Mode > Julia:
		return invalidf("unknown fractal mode %d", uint8(p.Mode))
	case p.Mode == Julia && !finite(real(p.C), imag(p.C)):
		return invalidf("julia constant %v must be finite", p.C)
	}
	return nil
}

type paramsJSON struct {
	MaxIter      int     `json:"max_iter"`
	EscapeRadius float64 `json:"escape_radius"`
	Mode         Mode    `json:"mode"`
	CRe          float64 `json:"c_re,omitempty"`
	CIm          float64 `json:"c_im,omitempty"`
	SkipInterior bool    `json:"skip_interior,omitempty"`
}

func (p Params) MarshalJSON() ([]byte, error) {
	return json.Marshal(paramsJSON{
		MaxIter:      p.MaxIter,
		EscapeRadius: p.EscapeRadius,
		Mode:         p.Mode,
		CRe:          real(p.C),
		CIm:          imag(p.C),
		SkipInterior: p.SkipInterior,
	})
}

// UnmarshalJSON fills missing fields from DefaultParams.
func (p *Params) UnmarshalJSON(b []byte) error {
	d := DefaultParams()
	v := paramsJSON{MaxIter: d.MaxIter, EscapeRadius: d.EscapeRadius, Mode: d.Mode}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	*p = Params{
		MaxIter:      v.MaxIter,
		EscapeRadius: v.EscapeRadius,
		Mode:         v.Mode,
		C:            complex(v.CRe, v.CIm),
		SkipInterior: v.SkipInterior,
	}
	return nil
}

// MarshalBinary encodes p for the render services. C travels as its real
// and imaginary parts.
func (p Params) MarshalBinary() ([]byte, error) {
	var buf bytes.Buffer
	enc := irpcgen.NewEncoder(&buf)
	err := errors.Join(
		irpcgen.EncInt(enc, p.MaxIter),
		irpcgen.EncFloat64(enc, p.EscapeRadius),
		irpcgen.EncUint8(enc, p.Mode),
		irpcgen.EncFloat64(enc, real(p.C)),
		irpcgen.EncFloat64(enc, imag(p.C)),
		irpcgen.EncBool(enc, p.SkipInterior),
		enc.Flush(),
	)
	if err != nil {
		return nil, fmt.Errorf("encode params: %w", err)
	}
	return buf.Bytes(), nil
}

func (p *Params) UnmarshalBinary(data []byte) error {
	var (
		v      Params
		cr, ci float64
	)
	dec := irpcgen.NewDecoder(bytes.NewReader(data))
	err := errors.Join(
		irpcgen.DecInt(dec, &v.MaxIter),
		irpcgen.DecFloat64(dec, &v.EscapeRadius),
		irpcgen.DecUint8(dec, &v.Mode),
		irpcgen.DecFloat64(dec, &cr),
		irpcgen.DecFloat64(dec, &ci),
		irpcgen.DecBool(dec, &v.SkipInterior),
	)
	if err != nil {
		return fmt.Errorf("decode params: %w", err)
	}
	v.C = complex(cr, ci)
	*p = v
	return nil
}
