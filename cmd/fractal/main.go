// Command fractal renders a Mandelbrot or Julia set to a PNG file, either
// locally, on a fractal server or spread over several of them.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/png"
	"log"
	"log/slog"
	"os"
	"strings"
	"time"

	fractal "github.com/marben/escapetime"
	"github.com/marben/escapetime/annotate"
)

type options struct {
	req      fractal.Request
	workers  int
	output   string
	remote   string
	farm     []string
	caption  bool
	mark     bool
	markAt   complex128
	verbose  bool
	listOnly bool
}

// main is the entry point for the CLI.
// It runs the client logic and logs any fatal errors.
func main() {
	opts, err := parseFlags(os.Args[1:])
	if err != nil {
		log.Fatalf("FATAL: %v", err)
	}
	if err := run(opts); err != nil {
		log.Fatalf("FATAL: %v", err)
	}
}

func parseFlags(args []string) (options, error) {
	fs := flag.NewFlagSet("fractal", flag.ContinueOnError)

	var o options
	var (
		mode        = fractal.Mandelbrot
		width       = fs.Int("width", 1024, "image width")
		height      = fs.Int("height", 768, "image height")
		region      = fs.String("region", "", "landmark region (default: full set for the mode)")
		bounds      = fs.String("bounds", "", "explicit viewport re_min,re_max,im_min,im_max")
		cRe         = fs.Float64("c-re", -0.8, "julia constant, real part")
		cIm         = fs.Float64("c-im", 0.156, "julia constant, imaginary part")
		maxIter     = fs.Int("iter", 256, "maximum iterations")
		radius      = fs.Float64("radius", 2, "escape radius")
		palette     = fs.String("palette", fractal.DefaultPalette, "palette: "+strings.Join(fractal.PaletteNames(), ", "))
		smooth      = fs.Bool("smooth", true, "smooth coloring")
		supersample = fs.Int("ss", 1, "supersampling factor per axis")
		skip        = fs.Bool("skip-interior", true, "skip the main cardioid and period-2 bulb")
	)
	fs.Var(&mode, "mode", "mandelbrot or julia")
	fs.IntVar(&o.workers, "workers", 0, "render goroutines (0 = GOMAXPROCS)")
	fs.StringVar(&o.output, "o", "fractal.png", "output file")
	fs.StringVar(&o.remote, "remote", "", "render on the fractal server at this tcp address")
	fs.Func("farm", "comma separated fractal server addresses to spread tiles over", func(s string) error {
		for _, addr := range strings.Split(s, ",") {
			if addr = strings.TrimSpace(addr); addr != "" {
				o.farm = append(o.farm, addr)
			}
		}
		return nil
	})
	fs.BoolVar(&o.caption, "caption", false, "draw a caption describing the render")
	fs.BoolVar(&o.mark, "mark", false, "mark the julia constant on a mandelbrot render")
	fs.BoolVar(&o.verbose, "v", false, "log engine diagnostics")
	fs.BoolVar(&o.listOnly, "list", false, "list regions and palettes and exit")

	if err := fs.Parse(args); err != nil {
		return options{}, err
	}
	if o.remote != "" && len(o.farm) > 0 {
		return options{}, fmt.Errorf("-remote and -farm are mutually exclusive")
	}

	if *region == "" {
		*region = mode.String()
	}
	r, err := fractal.LookupRegion(*region)
	if err != nil {
		return options{}, err
	}
	if *bounds != "" {
		if r, err = parseBounds(*bounds); err != nil {
			return options{}, err
		}
	}

	o.req = fractal.NewRequest(r, *width, *height)
	o.req.Params = fractal.Params{
		MaxIter:      *maxIter,
		EscapeRadius: *radius,
		Mode:         mode,
		C:            complex(*cRe, *cIm),
		SkipInterior: *skip,
	}
	o.req.Palette = *palette
	o.req.Smooth = *smooth
	o.req.Supersample = *supersample
	o.markAt = complex(*cRe, *cIm)
	return o, nil
}

func parseBounds(s string) (fractal.Region, error) {
	var r fractal.Region
	if _, err := fmt.Sscanf(s, "%g,%g,%g,%g", &r.ReMin, &r.ReMax, &r.ImMin, &r.ImMax); err != nil {
		return fractal.Region{}, fmt.Errorf("bounds %q: %w", s, err)
	}
	return r, nil
}

// run renders the request and saves it as a PNG file.
func run(o options) error {
	if o.listOnly {
		fmt.Println("regions: ", strings.Join(fractal.RegionNames(), ", "))
		fmt.Println("palettes:", strings.Join(fractal.PaletteNames(), ", "))
		return nil
	}
	if o.verbose {
		fractal.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	start := time.Now()
	var (
		img *image.RGBA
		err error
	)
	switch {
	case o.remote != "":
		log.Printf("Rendering on %s...", o.remote)
		img, err = renderRemote(o.remote, o.req)
	case len(o.farm) > 0:
		log.Printf("Rendering on %s...", strings.Join(o.farm, ", "))
		img, err = renderFarm(o.farm, o.req)
	default:
		eng := fractal.Engine{Workers: o.workers}
		img, err = eng.Render(o.req)
	}
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}
	elapsed := time.Since(start)
	log.Printf("Rendered %dx%d in %s", img.Rect.Dx(), img.Rect.Dy(), elapsed)

	if o.mark && o.req.Params.Mode == fractal.Mandelbrot {
		if err := annotate.Marker(img, o.req.Viewport, o.markAt); err != nil {
			return fmt.Errorf("marker: %w", err)
		}
	}
	if o.caption {
		if err := annotate.Caption(img, annotate.DefaultFontSize, annotate.Describe(o.req, elapsed)...); err != nil {
			return fmt.Errorf("caption: %w", err)
		}
	}

	return save(o.output, img)
}

func save(filename string, img image.Image) error {
	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("failed to encode PNG: %w", err)
	}

	log.Printf("Rendered image saved to %q", filename)
	return nil
}
