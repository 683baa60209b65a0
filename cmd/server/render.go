package main

import (
	"context"
	"image"
	"log"
	"sync"
	"time"

	"github.com/marben/irpc"

	fractal "github.com/marben/escapetime"
)

// renderServer implements fractal.ImageProvider and fractal.TileRenderer
// for every connected client.
type renderServer struct {
	workers int

	m       sync.Mutex
	clients int
}

var (
	_ fractal.ImageProvider = (*renderServer)(nil)
	_ fractal.TileRenderer  = (*renderServer)(nil)
)

// newIrpcServer returns an irpc server exposing srv over every listener it
// serves.
func newIrpcServer(srv *renderServer) *irpc.Server {
	imageProviderService := fractal.NewImageProviderIrpcService(srv)
	tileRendererService := fractal.NewTileRendererIrpcService(srv)

	return irpc.NewServer(
		irpc.WithServices(imageProviderService, tileRendererService),
		irpc.WithOnConnect(func(ep *irpc.Endpoint) {
			log.Printf("got connection from: %s", ep.RemoteAddr())
			srv.incClients()
			context.AfterFunc(ep.Context(), srv.decClients)
		}),
	)
}

// RenderImage renders a complete request with the server's workers.
func (s *renderServer) RenderImage(req fractal.Request) (image.RGBA, error) {
	eng := fractal.Engine{Workers: s.workers}
	job, err := eng.Start(req)
	if err != nil {
		log.Printf("err: RenderImage: %v", err)
		return image.RGBA{}, err
	}

	start := time.Now()
	go logProgress(job, time.Second)
	img, err := job.GetImage()
	if err != nil {
		log.Printf("err: RenderImage: %v", err)
		return image.RGBA{}, err
	}
	log.Printf("rendered %dx%d %s in %d tiles (%s)",
		req.Viewport.Width, req.Viewport.Height, req.Params.Mode, job.TotalTiles(), time.Since(start))
	return *img, nil
}

// RenderTile renders one tile for a client distributing its own render.
func (s *renderServer) RenderTile(req fractal.Request, tile image.Rectangle) (image.RGBA, error) {
	var eng fractal.Engine
	img, err := eng.RenderTile(req, tile)
	if err != nil {
		log.Printf("err: RenderTile %s: %v", tile, err)
	}
	return img, err
}

// logProgress reports job progress every interval until the job is done.
func logProgress(job *fractal.Job, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-job.Done():
			return
		case <-ticker.C:
			log.Printf("progress: %d/%d tiles", job.FinishedTiles(), job.TotalTiles())
		}
	}
}

func (s *renderServer) incClients() {
	s.m.Lock()
	s.clients++
	c := s.clients
	s.m.Unlock()

	log.Printf("clients: %d", c)
}

func (s *renderServer) decClients() {
	s.m.Lock()
	s.clients--
	c := s.clients
	s.m.Unlock()

	log.Printf("clients: %d", c)
}

func (s *renderServer) connectedClients() int {
	s.m.Lock()
	defer s.m.Unlock()
	return s.clients
}
