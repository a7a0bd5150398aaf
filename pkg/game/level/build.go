package level

import (
	"fmt"

	"slimecrawl/pkg/engine/world"
	"slimecrawl/pkg/game/layout"
)

// BuildGrid converts a generator layout into a tile grid of the given size.
//
// The layout matrix is indexed Tiles[x][y] while the grid stores rows
// first; the swap happens here and nowhere else.
func BuildGrid(width, height int, l *layout.Layout) (*world.Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimension, width, height)
	}
	if l == nil {
		return nil, fmt.Errorf("%w: no layout", ErrMalformedLayout)
	}
	if len(l.Tiles) < width {
		return nil, fmt.Errorf("%w: %d columns, need %d", ErrMalformedLayout, len(l.Tiles), width)
	}
	for x := 0; x < width; x++ {
		if len(l.Tiles[x]) < height {
			return nil, fmt.Errorf("%w: column %d has %d rows, need %d", ErrMalformedLayout, x, len(l.Tiles[x]), height)
		}
	}

	grid, err := world.NewGrid(width, height)
	if err != nil {
		return nil, err
	}
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if l.Tiles[x][y].IsWall() {
				grid.SetTile(x, y, world.Wall)
			}
		}
	}
	return grid, nil
}
