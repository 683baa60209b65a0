package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"net"
	"net/http"

	fractal "github.com/marben/escapetime"
)

// main is the entry point for the fractal server.
// Clients connect over plain TCP or a websocket and call the
// fractal.ImageProvider and fractal.TileRenderer services.
func main() {
	if err := run(); err != nil {
		log.Fatalf("run: %+v", err)
	}
}

func run() error {
	var (
		tcpAddr  = flag.String("tcp", ":8081", "tcp listen address")
		httpPort = flag.Int("http", 8080, "http port serving /ws and /render.png")
		workers  = flag.Int("workers", 0, "render goroutines per image (0 = GOMAXPROCS)")
		verbose  = flag.Bool("v", false, "log engine diagnostics")
	)
	flag.Parse()

	if *verbose {
		fractal.SetLogger(slog.New(slog.NewTextHandler(log.Writer(), &slog.HandlerOptions{Level: slog.LevelDebug})))
	} else {
		fractal.SetLogger(slog.Default())
	}

	srv := &renderServer{workers: *workers}

	// both render services are backed by srv
	irpcServer := newIrpcServer(srv)
	defer irpcServer.Close()

	// TCP
	log.Printf("tcp listening on %s", *tcpAddr)
	tcpListener, err := net.Listen("tcp", *tcpAddr)
	if err != nil {
		return fmt.Errorf("net.Listen: %w", err)
	}

	// WEBSOCKET
	websocketListener, httpServer := webServer(context.Background(), *httpPort, srv)

	errc := make(chan error, 3)

	// httpServer provides /render.png along with websocket endpoint
	go func() {
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errc <- fmt.Errorf("httpServer: %w", err)
		}
	}()

	// irpcServer can serve multiple listeners. In this case both tcp and websocket
	go func() {
		errc <- fmt.Errorf("server.Serve tcp: %w", irpcServer.Serve(tcpListener))
	}()
	go func() {
		errc <- fmt.Errorf("server.Serve ws: %w", irpcServer.Serve(websocketListener))
	}()

	log.Printf("fractal server waiting for tcp and websocket connections")
	return <-errc
}
