package renderer

import (
	"image"
	"math/rand"
)

// Tile represents a rectangular region of the image to be rendered
type Tile struct {
	ID     int             // Index in row-major tile order
	Bounds image.Rectangle // Pixel bounds in image coordinates (row 0 at the top)
	Random *rand.Rand      // Tile-specific generator for deterministic results
}

// NewTile creates a tile whose generator is derived from the render seed and tile id
func NewTile(id int, bounds image.Rectangle, seed int64) *Tile {
	return &Tile{
		ID:     id,
		Bounds: bounds,
		Random: rand.New(rand.NewSource(tileSeed(seed, id))),
	}
}

// tileSeed mixes the render seed and tile id so neighbouring tiles get
// unrelated streams
func tileSeed(seed int64, id int) int64 {
	return seed*1_000_003 + int64(id)*7_919 + 1
}

// NewTileGrid creates a grid of tiles covering the entire image
func NewTileGrid(width, height, tileSize int, seed int64) []*Tile {
	tilesX := (width + tileSize - 1) / tileSize
	tilesY := (height + tileSize - 1) / tileSize
	tiles := make([]*Tile, 0, tilesX*tilesY)

	for tileY := 0; tileY < tilesY; tileY++ {
		for tileX := 0; tileX < tilesX; tileX++ {
			x0 := tileX * tileSize
			y0 := tileY * tileSize
			x1 := min(x0+tileSize, width)
			y1 := min(y0+tileSize, height)

			tiles = append(tiles, NewTile(len(tiles), image.Rect(x0, y0, x1, y1), seed))
		}
	}

	return tiles
}
