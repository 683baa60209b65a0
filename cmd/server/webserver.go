package main

import (
	"context"
	"errors"
	"fmt"
	"image/png"
	"log"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/coder/websocket"

	fractal "github.com/marben/escapetime"
)

// webServer initializes the websocket and png endpoints and returns
// net.Listener accepting websocket connections
func webServer(ctx context.Context, port int, srv *renderServer) (net.Listener, *http.Server) {
	l := NewWSListener(ctx, fmt.Sprintf(":%d/ws", port))
	httpServer := &http.Server{
		Addr:              fmt.Sprintf(":%d", port),
		Handler:           newMux(l, srv),
		ReadHeaderTimeout: 5 * time.Second,
	}

	log.Printf("listening on http://localhost:%d", port)
	return l, httpServer
}

func newMux(l *WebsocketListener, srv *renderServer) *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", websocketHandler(l))
	mux.HandleFunc("GET /render.png", pngHandler(srv))
	return mux
}

// websocketHandler handles the http ws endpoint
// if websocket is succesfully initialized it is passed to WebsocketListener so it can be accepted
func websocketHandler(l *WebsocketListener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c, err := websocket.Accept(w, r, &websocket.AcceptOptions{
			OriginPatterns: []string{"*"}, // TODO: restrict to the page origin once the server is deployed behind a known host
		})
		if err != nil {
			log.Println(err)
			return
		}
		c.SetReadLimit(1 << 20)

		select {
		case l.ch <- c:
		case <-l.ctx.Done():
			_ = c.Close(websocket.StatusGoingAway, "server shutting down")
		}
	}
}

// pngHandler renders the request described by the query string and
// responds with a PNG image.
func pngHandler(srv *renderServer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req, err := requestFromQuery(r.URL.Query())
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		img, err := srv.RenderImage(req)
		if err != nil {
			status := http.StatusInternalServerError
			if errors.Is(err, fractal.ErrInvalidParameters) {
				status = http.StatusBadRequest
			}
			http.Error(w, err.Error(), status)
			return
		}

		w.Header().Set("Content-Type", "image/png")
		if err := png.Encode(w, &img); err != nil {
			log.Printf("encode png: %v", err)
		}
	}
}

// requestFromQuery starts from the named region (default: the full set for
// the mode) and overrides any field present in q.
func requestFromQuery(q url.Values) (fractal.Request, error) {
	mode, err := fractal.ParseMode(q.Get("mode"))
	if err != nil {
		return fractal.Request{}, err
	}

	regionName := q.Get("region")
	if regionName == "" {
		regionName = mode.String()
	}
	region, err := fractal.LookupRegion(regionName)
	if err != nil {
		return fractal.Request{}, err
	}

	req := fractal.NewRequest(region, 800, 600)
	req.Params.Mode = mode
	req.Palette = q.Get("palette")

	ints := map[string]*int{
		"width":       &req.Viewport.Width,
		"height":      &req.Viewport.Height,
		"max_iter":    &req.Params.MaxIter,
		"supersample": &req.Supersample,
	}
	for k, dst := range ints {
		if v := q.Get(k); v != "" {
			if *dst, err = strconv.Atoi(v); err != nil {
				return fractal.Request{}, fmt.Errorf("%s: %w", k, err)
			}
		}
	}

	var cRe, cIm float64
	floats := map[string]*float64{
		"re_min":        &req.Viewport.ReMin,
		"re_max":        &req.Viewport.ReMax,
		"im_min":        &req.Viewport.ImMin,
		"im_max":        &req.Viewport.ImMax,
		"escape_radius": &req.Params.EscapeRadius,
		"c_re":          &cRe,
		"c_im":          &cIm,
	}
	for k, dst := range floats {
		if v := q.Get(k); v != "" {
			if *dst, err = strconv.ParseFloat(v, 64); err != nil {
				return fractal.Request{}, fmt.Errorf("%s: %w", k, err)
			}
		}
	}
	req.Params.C = complex(cRe, cIm)

	bools := map[string]*bool{
		"smooth":        &req.Smooth,
		"skip_interior": &req.Params.SkipInterior,
	}
	for k, dst := range bools {
		if v := q.Get(k); v != "" {
			if *dst, err = strconv.ParseBool(v); err != nil {
				return fractal.Request{}, fmt.Errorf("%s: %w", k, err)
			}
		}
	}

	return req, nil
}

// WebsocketListener implements net.Listener
// it's a wrapper around websocket.Conn
type WebsocketListener struct {
	ch     chan *websocket.Conn
	ctx    context.Context
	cancel context.CancelFunc
	addr   wsAddr
}

func NewWSListener(ctx context.Context, addr string) *WebsocketListener {
	ctx, cancel := context.WithCancel(ctx)
	return &WebsocketListener{
		ch:     make(chan *websocket.Conn),
		ctx:    ctx,
		cancel: cancel,
		addr:   wsAddr{addr: addr},
	}
}

func (l *WebsocketListener) Accept() (net.Conn, error) {
	select {
	case c := <-l.ch:
		return websocket.NetConn(l.ctx, c, websocket.MessageBinary), nil
	case <-l.ctx.Done():
		return nil, net.ErrClosed
	}
}

func (l *WebsocketListener) Addr() net.Addr {
	return l.addr
}

func (l *WebsocketListener) Close() error {
	l.cancel()
	return nil
}

// wsAddr implements net.Addr
type wsAddr struct {
	addr string
}

func (a wsAddr) Network() string {
	return "ws"
}

func (a wsAddr) String() string {
	return a.addr
}
