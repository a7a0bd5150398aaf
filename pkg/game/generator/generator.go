// Package generator provides layout generators that satisfy layout.Generator.
package generator

import (
	"fmt"

	"slimecrawl/pkg/engine/world"
	"slimecrawl/pkg/game/layout"
)

// newColumns allocates a width x height cell matrix indexed [x][y], every
// cell a wall.
func newColumns(width, height int) [][]layout.Cell {
	cols := make([][]layout.Cell, width)
	for x := range cols {
		cols[x] = make([]layout.Cell, height)
		for y := range cols[x] {
			cols[x][y] = layout.Cell{Type: layout.CellWall}
		}
	}
	return cols
}

// New returns a fresh generator of the named kind ("bsp" or "linewalker")
// driven by r.
func New(name string, r world.Rand) (layout.Generator, error) {
	switch name {
	case "", "bsp":
		return NewBSPGenerator(r), nil
	case "linewalker":
		return NewLineWalkerGenerator(r), nil
	default:
		return nil, fmt.Errorf("unknown generator %q", name)
	}
}
