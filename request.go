package fractal

// MaxSupersample bounds the per-axis supersampling factor.
const MaxSupersample = 8

// Request is everything a single render needs.
type Request struct {
	Viewport Viewport `json:"viewport"`
	Params   Params   `json:"params"`
	// Palette names a preset, see PaletteNames. Empty selects DefaultPalette.
	Palette string `json:"palette,omitempty"`
	Smooth  bool   `json:"smooth,omitempty"`
	// Supersample renders k x k samples per pixel when > 1.
	Supersample int `json:"supersample,omitempty"`
}

// NewRequest returns a request for region at width x height with default
// parameters.
func NewRequest(region Region, width, height int) Request {
	return Request{
		Viewport: region.Viewport(width, height),
		Params:   DefaultParams(),
	}
}

// Validate checks the request eagerly; every error wraps ErrInvalidParameters.
// The palette name is resolved by the Engine, which may override it.
func (r Request) Validate() error {
	if err := r.Viewport.Validate(); err != nil {
		return err
	}
	if err := r.Params.Validate(); err != nil {
		return err
	}
	if r.Supersample < 0 || r.Supersample > MaxSupersample {
		return invalidf("supersample %d out of range [0, %d]", r.Supersample, MaxSupersample)
	}
	return nil
}

func (r Request) samples() int {
	if r.Supersample < 1 {
		return 1
	}
	return r.Supersample
}
