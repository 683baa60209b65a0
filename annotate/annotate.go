// Package annotate draws overlays on rendered fractal images: a caption box
// describing the render and a crosshair marking a point of the complex plane.
package annotate

import (
	"fmt"
	"image"
	"image/draw"
	"math"
	"sync"
	"time"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	fractal "github.com/marben/escapetime"
)

// DefaultFontSize is the caption size in points.
const DefaultFontSize = 14

var (
	fontOnce   sync.Once
	fontSource *text.FontSource
	fontErr    error
)

func font() (*text.FontSource, error) {
	fontOnce.Do(func() {
		fontSource, fontErr = text.NewFontSource(goregular.TTF)
	})
	return fontSource, fontErr
}

// drawOn runs f on a gg context initialized from img and copies the result
// back into img.
func drawOn(img *image.RGBA, f func(dc *gg.Context) error) error {
	dc := gg.NewContextForImage(img)
	defer func() {
		_ = dc.Close()
	}()

	if err := f(dc); err != nil {
		return err
	}
	draw.Draw(img, img.Bounds(), dc.Image(), image.Point{}, draw.Src)
	return nil
}

// Caption draws lines in a translucent box at the top-left corner of img.
func Caption(img *image.RGBA, size float64, lines ...string) error {
	if len(lines) == 0 {
		return nil
	}
	src, err := font()
	if err != nil {
		return fmt.Errorf("load caption font: %w", err)
	}
	if size <= 0 {
		size = DefaultFontSize
	}

	return drawOn(img, func(dc *gg.Context) error {
		dc.SetFont(src.Face(size))

		var boxW, lineH float64
		for _, l := range lines {
			w, h := dc.MeasureString(l)
			boxW = math.Max(boxW, w)
			lineH = math.Max(lineH, h)
		}
		pad := lineH / 2

		dc.SetRGBA(0, 0, 0, 0.6)
		dc.DrawRectangle(0, 0, boxW+2*pad, lineH*float64(len(lines))+2*pad)
		if err := dc.Fill(); err != nil {
			return fmt.Errorf("caption box: %w", err)
		}

		dc.SetRGB(1, 1, 1)
		for i, l := range lines {
			dc.DrawString(l, pad, pad+lineH*float64(i+1)-lineH/4)
		}
		return nil
	})
}

// Marker draws a crosshair at point p. Points outside the viewport are
// silently skipped.
func Marker(img *image.RGBA, vp fractal.Viewport, p complex128) error {
	x, y := vp.Pixel(p)
	if x < 0 || y < 0 || x > float64(vp.Width-1) || y > float64(vp.Height-1) {
		return nil
	}
	x, y = x+0.5, y+0.5

	const r = 6.0
	return drawOn(img, func(dc *gg.Context) error {
		dc.SetRGB(1, 1, 1)
		dc.SetLineWidth(2)
		dc.DrawCircle(x, y, r)
		if err := dc.Stroke(); err != nil {
			return fmt.Errorf("marker circle: %w", err)
		}
		dc.DrawLine(x-2*r, y, x+2*r, y)
		dc.DrawLine(x, y-2*r, x, y+2*r)
		if err := dc.Stroke(); err != nil {
			return fmt.Errorf("marker cross: %w", err)
		}
		return nil
	})
}

// Describe returns caption lines for req.
func Describe(req fractal.Request, elapsed time.Duration) []string {
	p := message.NewPrinter(language.English)
	vp := req.Viewport

	lines := []string{
		p.Sprintf("%s  %d×%d  %d iterations", req.Params.Mode, vp.Width, vp.Height, req.Params.MaxIter),
		p.Sprintf("re [%.6g, %.6g]  im [%.6g, %.6g]", vp.ReMin, vp.ReMax, vp.ImMin, vp.ImMax),
	}
	if req.Params.Mode == fractal.Julia {
		lines = append(lines, p.Sprintf("c = %.6g %+.6gi", real(req.Params.C), imag(req.Params.C)))
	}
	if elapsed > 0 {
		lines = append(lines, p.Sprintf("rendered in %v", elapsed.Round(time.Millisecond)))
	}
	return lines
}
