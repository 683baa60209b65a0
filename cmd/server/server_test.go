package main

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/png"
	"net"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/coder/websocket"
	"github.com/marben/irpc"

	fractal "github.com/marben/escapetime"
)

func smallRequest() fractal.Request {
	req := fractal.NewRequest(fractal.FullMandelbrot, 40, 30)
	req.Params.MaxIter = 32
	return req
}

// waitFor polls cond until it holds or the test times out.
func waitFor(t *testing.T, what string, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(5 * time.Second)
	for !cond() {
		if time.Now().After(deadline) {
			t.Fatalf("timed out waiting for %s", what)
		}
		time.Sleep(10 * time.Millisecond)
	}
}

func TestRequestFromQueryDefaults(t *testing.T) {
	req, err := requestFromQuery(url.Values{})
	if err != nil {
		t.Fatalf("requestFromQuery: %v", err)
	}
	if req.Viewport.Width != 800 || req.Viewport.Height != 600 {
		t.Errorf("size %dx%d, want 800x600", req.Viewport.Width, req.Viewport.Height)
	}
	if req.Viewport.Region() != fractal.FullMandelbrot {
		t.Errorf("region %+v, want the full mandelbrot set", req.Viewport.Region())
	}
	if req.Params.Mode != fractal.Mandelbrot || req.Params.MaxIter != fractal.DefaultParams().MaxIter {
		t.Errorf("params %+v", req.Params)
	}
}

func TestRequestFromQueryOverrides(t *testing.T) {
	q, _ := url.ParseQuery("mode=julia&width=64&height=48&max_iter=100&c_re=-0.4&c_im=0.6&smooth=true&palette=fire&supersample=2&re_min=-1")
	req, err := requestFromQuery(q)
	if err != nil {
		t.Fatalf("requestFromQuery: %v", err)
	}
	if req.Params.Mode != fractal.Julia || req.Params.C != complex(-0.4, 0.6) {
		t.Errorf("params %+v", req.Params)
	}
	if req.Viewport.Width != 64 || req.Viewport.Height != 48 || req.Viewport.ReMin != -1 {
		t.Errorf("viewport %+v", req.Viewport)
	}
	if req.Viewport.ReMax != fractal.FullJulia.ReMax {
		t.Errorf("re_max %g, want the julia default %g", req.Viewport.ReMax, fractal.FullJulia.ReMax)
	}
	if !req.Smooth || req.Palette != "fire" || req.Supersample != 2 || req.Params.MaxIter != 100 {
		t.Errorf("request %+v", req)
	}
}

func TestRequestFromQueryErrors(t *testing.T) {
	for _, raw := range []string{
		"mode=newton",
		"region=nowhere",
		"width=wide",
		"re_min=left",
		"smooth=maybe",
	} {
		q, _ := url.ParseQuery(raw)
		if _, err := requestFromQuery(q); err == nil {
			t.Errorf("requestFromQuery(%q) succeeded", raw)
		}
	}
}

func TestPNGHandler(t *testing.T) {
	mux := newMux(NewWSListener(context.Background(), "test"), &renderServer{workers: 2})

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/render.png?width=40&height=30&max_iter=32", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status %d: %s", rec.Code, rec.Body)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "image/png" {
		t.Errorf("content type %q", ct)
	}
	img, err := png.Decode(rec.Body)
	if err != nil {
		t.Fatalf("png.Decode: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 40 || b.Dy() != 30 {
		t.Errorf("image bounds %s, want 40x30", b)
	}

	for _, q := range []string{"width=0", "max_iter=0", "mode=newton", "palette=nope"} {
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/render.png?"+q, nil))
		if rec.Code != http.StatusBadRequest {
			t.Errorf("%s: status %d, want 400", q, rec.Code)
		}
	}
}

func TestIrpcServerTCP(t *testing.T) {
	srv := &renderServer{workers: 3}
	irpcServer := newIrpcServer(srv)
	defer irpcServer.Close()

	l, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("net.Listen: %v", err)
	}
	go func() { _ = irpcServer.Serve(l) }()

	conn, err := net.Dial("tcp", l.Addr().String())
	if err != nil {
		t.Fatalf("net.Dial: %v", err)
	}
	ep := irpc.NewEndpoint(conn)
	waitFor(t, "the connection to register", func() bool { return srv.connectedClients() == 1 })

	images, err := fractal.NewImageProviderIrpcClient(ep)
	if err != nil {
		t.Fatalf("NewImageProviderIrpcClient: %v", err)
	}
	tiles, err := fractal.NewTileRendererIrpcClient(ep)
	if err != nil {
		t.Fatalf("NewTileRendererIrpcClient: %v", err)
	}

	req := smallRequest()
	want, err := fractal.Render(req)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}

	img, err := images.RenderImage(req)
	if err != nil {
		t.Fatalf("RenderImage: %v", err)
	}
	if img.Rect != want.Rect || !bytes.Equal(img.Pix, want.Pix) {
		t.Error("RenderImage differs from a local render")
	}

	tile := image.Rect(10, 5, 30, 25)
	part, err := tiles.RenderTile(req, tile)
	if err != nil {
		t.Fatalf("RenderTile: %v", err)
	}
	if part.Rect != tile {
		t.Fatalf("tile bounds %s, want %s", part.Rect, tile)
	}
	for y := tile.Min.Y; y < tile.Max.Y; y++ {
		for x := tile.Min.X; x < tile.Max.X; x++ {
			if part.RGBAAt(x, y) != want.RGBAAt(x, y) {
				t.Fatalf("tile pixel (%d,%d) differs from a local render", x, y)
			}
		}
	}

	// an invalid request is answered with an error and the connection stays up
	bad := smallRequest()
	bad.Viewport.Width = -1
	if _, err := images.RenderImage(bad); err == nil || !strings.Contains(err.Error(), "invalid parameters") {
		t.Errorf("RenderImage error = %v, want invalid parameters", err)
	}
	if _, err := tiles.RenderTile(req, image.Rect(0, 0, 41, 10)); err == nil {
		t.Error("RenderTile accepted a tile outside the image")
	}
	if _, err := images.RenderImage(req); err != nil {
		t.Errorf("connection did not survive the invalid request: %v", err)
	}

	ep.Close()
	waitFor(t, "the connection to go away", func() bool { return srv.connectedClients() == 0 })
}

func TestWebsocketSession(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	l := NewWSListener(ctx, "test")
	srv := &renderServer{workers: 2}
	ts := httptest.NewServer(newMux(l, srv))
	defer ts.Close()

	irpcServer := newIrpcServer(srv)
	served := make(chan error, 1)
	go func() { served <- irpcServer.Serve(l) }()

	c, _, err := websocket.Dial(ctx, "ws"+strings.TrimPrefix(ts.URL, "http")+"/ws", nil)
	if err != nil {
		t.Fatalf("websocket.Dial: %v", err)
	}
	c.SetReadLimit(1 << 22)
	ep := irpc.NewEndpoint(websocket.NetConn(ctx, c, websocket.MessageBinary))
	defer ep.Close()

	client, err := fractal.NewImageProviderIrpcClient(ep)
	if err != nil {
		t.Fatalf("NewImageProviderIrpcClient: %v", err)
	}
	req := fractal.NewRequest(fractal.SeahorseValley, 150, 70)
	req.Params.MaxIter = 64
	img, err := client.RenderImage(req)
	if err != nil {
		t.Fatalf("RenderImage: %v", err)
	}
	want, err := fractal.Render(req)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !bytes.Equal(img.Pix, want.Pix) {
		t.Error("image received over the websocket differs from a local render")
	}

	if err := irpcServer.Close(); err != nil {
		t.Errorf("Close: %v", err)
	}
	if err := <-served; !errors.Is(err, irpc.ErrServerClosed) {
		t.Errorf("Serve returned %v, want irpc.ErrServerClosed", err)
	}
}

func TestLogProgressStopsWithJob(t *testing.T) {
	eng := fractal.Engine{Workers: 2}
	job, err := eng.Start(smallRequest())
	if err != nil {
		t.Fatal(err)
	}

	done := make(chan struct{})
	go func() {
		logProgress(job, time.Millisecond)
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("logProgress did not return after the job finished")
	}
}
