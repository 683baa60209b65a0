package fractal

// MaxDimension bounds the width and height of a single render.
const MaxDimension = 16384

// Viewport is a rectangle of the complex plane mapped onto an image of
// Width x Height pixels. Pixel (0, 0) maps to (ReMin, ImMin) and pixel
// (Width-1, Height-1) maps to (ReMax, ImMax).
type Viewport struct {
	ReMin  float64 `json:"re_min"`
	ReMax  float64 `json:"re_max"`
	ImMin  float64 `json:"im_min"`
	ImMax  float64 `json:"im_max"`
	Width  int     `json:"width"`
	Height int     `json:"height"`
}

// Region drops the image dimensions.
func (v Viewport) Region() Region {
	return Region{ReMin: v.ReMin, ReMax: v.ReMax, ImMin: v.ImMin, ImMax: v.ImMax}
}

// Map converts pixel (x, y) to a point of the complex plane.
// An axis one pixel wide maps to its minimum bound.
func (v Viewport) Map(x, y int) complex128 {
	re := v.ReMin
	if v.Width > 1 {
		re += (float64(x) / float64(v.Width-1)) * (v.ReMax - v.ReMin)
	}
	im := v.ImMin
	if v.Height > 1 {
		im += (float64(y) / float64(v.Height-1)) * (v.ImMax - v.ImMin)
	}
	return complex(re, im)
}

// Pixel is the inverse of Map: it returns the (possibly out of range)
// pixel coordinates closest to point p.
func (v Viewport) Pixel(p complex128) (x, y float64) {
	if v.Width > 1 {
		x = (real(p) - v.ReMin) / (v.ReMax - v.ReMin) * float64(v.Width-1)
	}
	if v.Height > 1 {
		y = (imag(p) - v.ImMin) / (v.ImMax - v.ImMin) * float64(v.Height-1)
	}
	return x, y
}

// scaled returns the viewport covering the same region with k times as many
// pixels along each axis.
func (v Viewport) scaled(k int) Viewport {
	v.Width *= k
	v.Height *= k
	return v
}

// Validate reports whether the viewport describes a non-empty image of a
// non-degenerate region.
func (v Viewport) Validate() error {
	switch {
	case v.Width <= 0 || v.Height <= 0:
		return invalidf("image size %dx%d must be positive", v.Width, v.Height)
	case v.Width > MaxDimension || v.Height > MaxDimension:
		return invalidf("image size %dx%d exceeds %d", v.Width, v.Height, MaxDimension)
	case !finite(v.ReMin, v.ReMax, v.ImMin, v.ImMax):
		return invalidf("viewport bounds must be finite")
	case !(v.ReMax > v.ReMin):
		return invalidf("real range [%g, %g] is empty or inverted", v.ReMin, v.ReMax)
	case !(v.ImMax > v.ImMin):
		return invalidf("imaginary range [%g, %g] is empty or inverted", v.ImMin, v.ImMax)
	case !finite(v.ReMax-v.ReMin, v.ImMax-v.ImMin):
		return invalidf("viewport span overflows")
	}
	return nil
}
