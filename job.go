package fractal

import (
	"fmt"
	"image"
	"sync"
	"time"

	xdraw "golang.org/x/image/draw"
)

// Job tracks one render in progress. Tiles are handed out once each, so no
// pixel is written by more than one worker.
type Job struct {
	req    Request
	mapper ColorMapper
	img    *image.RGBA
	onTile func(*image.RGBA)

	totalTiles  int
	totalPixels int
	started     time.Time

	unstarted      []image.Rectangle
	inFlight       int
	finishedTiles  int
	finishedPixels int
	err            error // first tile failure
	m              sync.Mutex
	tilesChanged   *sync.Cond

	wg   sync.WaitGroup
	done chan struct{}
}

// renderFunc fills dst, whose bounds are a tile in global coordinates.
type renderFunc func(dst *image.RGBA) error

func newJob(req Request, mapper ColorMapper, tileSize int, onTile func(*image.RGBA)) *Job {
	img := image.NewRGBA(image.Rect(0, 0, req.Viewport.Width, req.Viewport.Height))
	tiles := splitRect(img.Bounds(), tileSize, tileSize)
	j := &Job{
		req:         req,
		mapper:      mapper,
		img:         img,
		onTile:      onTile,
		totalTiles:  len(tiles),
		totalPixels: req.Viewport.Width * req.Viewport.Height,
		unstarted:   tiles,
		done:        make(chan struct{}),
	}
	j.tilesChanged = sync.NewCond(&j.m)
	return j
}

func (j *Job) localWorkers(n int) []renderFunc {
	workers := make([]renderFunc, n)
	for i := range workers {
		workers[i] = j.renderLocal
	}
	return workers
}

func (j *Job) remoteWorkers(renderers []TileRenderer, perRenderer int) []renderFunc {
	workers := make([]renderFunc, 0, len(renderers)*perRenderer)
	for _, r := range renderers {
		for range perRenderer {
			workers = append(workers, j.renderWith(r))
		}
	}
	return workers
}

func (j *Job) start(workers []renderFunc) {
	j.started = time.Now()
	j.wg.Add(len(workers))
	for _, render := range workers {
		go j.work(render)
	}
	go func() {
		j.wg.Wait()
		Logger().Debug("render finished",
			"width", j.req.Viewport.Width,
			"height", j.req.Viewport.Height,
			"mode", j.req.Params.Mode,
			"tiles", j.totalTiles,
			"workers", len(workers),
			"elapsed", time.Since(j.started))
		close(j.done)
	}()
}

// work renders unstarted tiles until none are left or render fails.
func (j *Job) work(render renderFunc) {
	defer j.wg.Done()

	for {
		tile, found := j.popTile()
		if !found {
			return
		}
		dst := j.img.SubImage(tile).(*image.RGBA)
		if err := render(dst); err != nil {
			Logger().Warn("tile failed", "tile", tile, "err", err)
			j.tileFailed(tile, err)
			return
		}
		j.tileFinished(tile)
		if j.onTile != nil {
			j.onTile(dst)
		}
	}
}

func (j *Job) renderLocal(dst *image.RGBA) error {
	renderTile(dst, j.req, j.mapper)
	return nil
}

// renderWith has r render the tile and copies the result into dst.
func (j *Job) renderWith(r TileRenderer) renderFunc {
	return func(dst *image.RGBA) error {
		tile := dst.Bounds()
		img, err := r.RenderTile(j.req, tile)
		if err != nil {
			return fmt.Errorf("RenderTile(%s): %w", tile, err)
		}
		if !coversTile(&img, tile) {
			return fmt.Errorf("RenderTile(%s): got %s with stride %d and %d bytes", tile, img.Rect, img.Stride, len(img.Pix))
		}
		xdraw.Draw(dst, tile, &img, tile.Min, xdraw.Src)
		return nil
	}
}

// coversTile reports whether img holds exactly the pixels of tile.
func coversTile(img *image.RGBA, tile image.Rectangle) bool {
	if img.Rect != tile || img.Stride < 4*tile.Dx() {
		return false
	}
	return len(img.Pix) >= (tile.Dy()-1)*img.Stride+4*tile.Dx()
}

// popTile waits while other workers still hold tiles that may come back.
func (j *Job) popTile() (tile image.Rectangle, found bool) {
	j.m.Lock()
	defer j.m.Unlock()

	for len(j.unstarted) == 0 && j.inFlight > 0 {
		j.tilesChanged.Wait()
	}
	if len(j.unstarted) == 0 {
		return image.Rectangle{}, false
	}
	tile = j.unstarted[0]
	j.unstarted = j.unstarted[1:]
	j.inFlight++
	return tile, true
}

func (j *Job) tileFinished(tile image.Rectangle) {
	j.m.Lock()
	defer j.m.Unlock()

	j.inFlight--
	j.finishedTiles++
	j.finishedPixels += tile.Dx() * tile.Dy()
	j.tilesChanged.Broadcast()
}

func (j *Job) tileFailed(tile image.Rectangle, err error) {
	j.m.Lock()
	defer j.m.Unlock()

	j.inFlight--
	j.unstarted = append(j.unstarted, tile)
	if j.err == nil {
		j.err = err
	}
	j.tilesChanged.Broadcast()
}

// Done is closed once all workers have exited.
func (j *Job) Done() <-chan struct{} {
	return j.done
}

// Wait blocks until the render is complete.
func (j *Job) Wait() {
	<-j.done
}

// GetImage waits for the render and returns the image. It fails when every
// worker stopped before all tiles were rendered.
func (j *Job) GetImage() (*image.RGBA, error) {
	j.Wait()

	j.m.Lock()
	defer j.m.Unlock()
	if j.finishedTiles < j.totalTiles {
		return nil, fmt.Errorf("rendered %d of %d tiles: %w", j.finishedTiles, j.totalTiles, j.err)
	}
	return j.img, nil
}

// Progress reports the fraction of pixels rendered so far.
func (j *Job) Progress() float32 {
	j.m.Lock()
	defer j.m.Unlock()
	return float32(j.finishedPixels) / float32(j.totalPixels)
}

// TotalTiles is the number of tiles the image was split into.
func (j *Job) TotalTiles() int {
	return j.totalTiles
}

// FinishedTiles is the number of tiles rendered so far.
func (j *Job) FinishedTiles() int {
	j.m.Lock()
	defer j.m.Unlock()
	return j.finishedTiles
}

// Request returns the validated request being rendered.
func (j *Job) Request() Request {
	return j.req
}
