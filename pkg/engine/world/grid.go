package world

import (
	"errors"
	"fmt"
)

// ErrInvalidDimension is returned when a grid is requested with a
// non-positive width or height.
var ErrInvalidDimension = errors.New("invalid grid dimension")

// Grid is a width x height arena of tiles stored row-major (y, then x).
// Every coordinate in range holds exactly one tile.
type Grid struct {
	tiles  []Tile
	width  int
	height int
}

// NewGrid creates a grid of the given dimensions filled with None tiles
func NewGrid(width, height int) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimension, width, height)
	}

	g := &Grid{
		tiles:  make([]Tile, width*height),
		width:  width,
		height: height,
	}
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			g.tiles[g.index(x, y)] = NewTile(None, x, y)
		}
	}
	return g, nil
}

// Width returns the number of columns in the grid
func (g *Grid) Width() int {
	return g.width
}

// Height returns the number of rows in the grid
func (g *Grid) Height() int {
	return g.height
}

// Size returns the total number of tiles
func (g *Grid) Size() int {
	return len(g.tiles)
}

func (g *Grid) index(x, y int) int {
	return y*g.width + x
}

// IsValidPosition checks if an x/y position is within grid bounds
func (g *Grid) IsValidPosition(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// IsOnPerimeter checks if a position is on the edge of the grid
func (g *Grid) IsOnPerimeter(x, y int) bool {
	return g.IsValidPosition(x, y) && (x == 0 || y == 0 || x == g.width-1 || y == g.height-1)
}

// TileAt returns the tile at the given position, or false if out of bounds
func (g *Grid) TileAt(x, y int) (Tile, bool) {
	if !g.IsValidPosition(x, y) {
		return Tile{}, false
	}
	return g.tiles[g.index(x, y)], true
}

// SetTile replaces the tile at the given position with a fresh tile of
// type t. Returns false if out of bounds.
func (g *Grid) SetTile(x, y int, t TileType) bool {
	if !g.IsValidPosition(x, y) {
		return false
	}
	g.tiles[g.index(x, y)] = NewTile(t, x, y)
	return true
}

// ForEachTile iterates over all tiles in row-major order
func (g *Grid) ForEachTile(fn func(t Tile)) {
	for _, t := range g.tiles {
		fn(t)
	}
}

// Tiles returns a copy of the tile arena in row-major order
func (g *Grid) Tiles() []Tile {
	out := make([]Tile, len(g.tiles))
	copy(out, g.tiles)
	return out
}

// Count returns the number of tiles of the given type
func (g *Grid) Count(t TileType) int {
	n := 0
	for _, tile := range g.tiles {
		if tile.Type == t {
			n++
		}
	}
	return n
}

// CenterPosition returns the x and y of the grid center
func (g *Grid) CenterPosition() (int, int) {
	return g.width / 2, g.height / 2
}
