package fractal

import (
	"image"
)

//go:generate go run github.com/marben/irpc/cmd/irpc

// ImageProvider renders complete images.
type ImageProvider interface {
	RenderImage(req Request) (image.RGBA, error)
}

// TileRenderer renders a single tile of the image described by a request.
// The returned image has global coordinates (tile.Min .. tile.Max).
type TileRenderer interface {
	RenderTile(req Request, tile image.Rectangle) (image.RGBA, error)
}

var (
	_ ImageProvider = (*Engine)(nil)
	_ TileRenderer  = (*Engine)(nil)
)
