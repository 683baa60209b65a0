package main

import (
	"fmt"
	"image"
	"log"
	"net"

	"github.com/marben/irpc"

	fractal "github.com/marben/escapetime"
)

// renderRemote has the fractal server at addr render the whole of req.
// The request is validated before connecting.
func renderRemote(addr string, req fractal.Request) (*image.RGBA, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	conn, err := net.Dial("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to server: %w", err)
	}
	ep := irpc.NewEndpoint(conn)
	defer ep.Close()

	client, err := fractal.NewImageProviderIrpcClient(ep)
	if err != nil {
		return nil, fmt.Errorf("failed to create ImageProvider client: %w", err)
	}

	log.Printf("Requesting fully rendered image from server...")
	img, err := client.RenderImage(req)
	if err != nil {
		return nil, fmt.Errorf("client.RenderImage: %w", err)
	}
	want := image.Rect(0, 0, req.Viewport.Width, req.Viewport.Height)
	if img.Rect != want || img.Stride != 4*want.Dx() || len(img.Pix) != 4*want.Dx()*want.Dy() {
		return nil, fmt.Errorf("server returned %s image with stride %d, want %s", img.Rect, img.Stride, want)
	}
	return &img, nil
}

// renderFarm splits req into tiles and spreads them over the fractal
// servers at addrs. A server that fails stops receiving tiles; its tiles
// go to the others.
func renderFarm(addrs []string, req fractal.Request) (*image.RGBA, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	renderers := make([]fractal.TileRenderer, 0, len(addrs))
	for _, addr := range addrs {
		conn, err := net.Dial("tcp", addr)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to %s: %w", addr, err)
		}
		ep := irpc.NewEndpoint(conn)
		defer ep.Close()

		client, err := fractal.NewTileRendererIrpcClient(ep)
		if err != nil {
			return nil, fmt.Errorf("failed to create TileRenderer client for %s: %w", addr, err)
		}
		renderers = append(renderers, client)
	}

	// each server executes this many calls at once
	eng := fractal.Engine{Renderers: renderers, Workers: irpc.DefaultParallelWorkers}
	return eng.Render(req)
}
