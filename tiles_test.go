package fractal

import (
	"image"
	"testing"
)

func TestSplitRect(t *testing.T) {
	tests := []struct {
		name      string
		r         image.Rectangle
		tw, th    int
		wantTiles int
	}{
		{"exact", image.Rect(0, 0, 128, 64), 64, 64, 2},
		{"ragged", image.Rect(0, 0, 100, 70), 64, 64, 4},
		{"smaller than tile", image.Rect(0, 0, 3, 2), 64, 64, 1},
		{"offset", image.Rect(10, 20, 30, 25), 8, 8, 3},
		{"single pixels", image.Rect(0, 0, 3, 3), 1, 1, 9},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tiles := splitRect(tt.r, tt.tw, tt.th)
			if len(tiles) != tt.wantTiles {
				t.Fatalf("got %d tiles, want %d", len(tiles), tt.wantTiles)
			}

			covered := make(map[image.Point]int)
			for _, tile := range tiles {
				if !tile.In(tt.r) {
					t.Errorf("tile %s outside %s", tile, tt.r)
				}
				if tile.Dx() > tt.tw || tile.Dy() > tt.th {
					t.Errorf("tile %s larger than %dx%d", tile, tt.tw, tt.th)
				}
				for y := tile.Min.Y; y < tile.Max.Y; y++ {
					for x := tile.Min.X; x < tile.Max.X; x++ {
						covered[image.Pt(x, y)]++
					}
				}
			}
			if len(covered) != tt.r.Dx()*tt.r.Dy() {
				t.Errorf("tiles cover %d pixels, want %d", len(covered), tt.r.Dx()*tt.r.Dy())
			}
			for p, n := range covered {
				if n != 1 {
					t.Errorf("pixel %v covered %d times", p, n)
				}
			}
		})
	}
}

func TestSplitRectPanicsOnBadTile(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("splitRect with zero tile width should panic")
		}
	}()
	splitRect(image.Rect(0, 0, 4, 4), 0, 4)
}
