package fractal

import (
	"errors"
	"image"
	"runtime"

	xdraw "golang.org/x/image/draw"
)

// Engine renders requests by splitting the image into tiles and handing
// each tile to exactly one worker goroutine. The zero value is ready to use.
type Engine struct {
	// Workers is the number of render goroutines; <= 0 uses GOMAXPROCS.
	// With Renderers set it is the number of goroutines per renderer and
	// <= 0 uses one.
	Workers int
	// TileSize is the tile edge length in pixels; <= 0 uses DefaultTileSize.
	TileSize int
	// Palette overrides the palette named by the request. It cannot be
	// combined with Renderers.
	Palette Palette
	// Renderers render the tiles in place of local goroutines, typically
	// remote render servers. A tile that fails is handed to the next
	// worker; the worker that failed stops.
	Renderers []TileRenderer
	// OnTile is called from worker goroutines as soon as a tile of the final
	// image is complete. The tile shares its pixels with the image and must
	// not be modified.
	OnTile func(tile *image.RGBA)
}

// Render renders req with a default Engine.
func Render(req Request) (*image.RGBA, error) {
	var e Engine
	return e.Render(req)
}

// Render validates req, renders every pixel and returns the image. Its Pix
// slice is the row-major RGBA buffer of Width*Height*4 bytes. Nothing is
// allocated when validation fails.
func (e *Engine) Render(req Request) (*image.RGBA, error) {
	job, err := e.Start(req)
	if err != nil {
		return nil, err
	}
	return job.GetImage()
}

// RenderImage implements ImageProvider.
func (e *Engine) RenderImage(req Request) (image.RGBA, error) {
	img, err := e.Render(req)
	if err != nil {
		return image.RGBA{}, err
	}
	return *img, nil
}

// Start validates req and starts rendering in the background.
func (e *Engine) Start(req Request) (*Job, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if e.Palette != nil && len(e.Renderers) > 0 {
		return nil, errPaletteWithRenderers
	}
	mapper, err := e.colorMapper(req)
	if err != nil {
		return nil, err
	}

	tileSize := e.TileSize
	if tileSize <= 0 {
		tileSize = DefaultTileSize
	}

	job := newJob(req, mapper, tileSize, e.OnTile)
	if len(e.Renderers) > 0 {
		job.start(job.remoteWorkers(e.Renderers, max(e.Workers, 1)))
		return job, nil
	}

	workers := e.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	job.start(job.localWorkers(min(workers, job.TotalTiles())))
	return job, nil
}

var errPaletteWithRenderers = errors.New("fractal: a palette override cannot be sent to renderers")

// RenderTile renders only the pixels of tile. The returned image has global
// coordinates (tile.Min .. tile.Max).
func (e *Engine) RenderTile(req Request, tile image.Rectangle) (image.RGBA, error) {
	if err := req.Validate(); err != nil {
		return image.RGBA{}, err
	}
	bounds := image.Rect(0, 0, req.Viewport.Width, req.Viewport.Height)
	if tile.Empty() || !tile.In(bounds) {
		return image.RGBA{}, invalidf("tile %s is not inside image %s", tile, bounds)
	}
	mapper, err := e.colorMapper(req)
	if err != nil {
		return image.RGBA{}, err
	}

	img := image.NewRGBA(tile)
	renderTile(img, req, mapper)
	return *img, nil
}

// colorMapper resolves the palette once per render. The request's palette
// name only matters when there is no override.
func (e *Engine) colorMapper(req Request) (ColorMapper, error) {
	p := e.Palette
	if p == nil {
		var err error
		if p, err = LookupPalette(req.Palette); err != nil {
			return ColorMapper{}, invalidf("%v", err)
		}
	}
	return NewColorMapper(p, req.Smooth), nil
}

// renderTile fills dst, whose bounds are in global image coordinates.
func renderTile(dst *image.RGBA, req Request, m ColorMapper) {
	k := req.samples()
	if k == 1 {
		fill(dst, req.Viewport, req.Params, m)
		return
	}

	b := dst.Bounds()
	scratch := image.NewRGBA(image.Rect(b.Min.X*k, b.Min.Y*k, b.Max.X*k, b.Max.Y*k))
	fill(scratch, req.Viewport.scaled(k), req.Params, m)
	xdraw.BiLinear.Scale(dst, b, scratch, scratch.Bounds(), xdraw.Src, nil)

	// filter rounding must not leak into alpha
	for y := b.Min.Y; y < b.Max.Y; y++ {
		row := dst.Pix[dst.PixOffset(b.Min.X, y):][:b.Dx()*4]
		for i := 3; i < len(row); i += 4 {
			row[i] = 0xff
		}
	}
}

func fill(dst *image.RGBA, vp Viewport, p Params, m ColorMapper) {
	b := dst.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		row := dst.Pix[dst.PixOffset(b.Min.X, y):][:b.Dx()*4]
		for x := b.Min.X; x < b.Max.X; x++ {
			c := Pixel(x, y, vp, p, m)
			i := (x - b.Min.X) * 4
			row[i+0] = c.R
			row[i+1] = c.G
			row[i+2] = c.B
			row[i+3] = c.A
		}
	}
}
