package level

import (
	"slimecrawl/pkg/game/layout"
)

// sequenceRand returns its values in order, each reduced modulo n.
type sequenceRand struct {
	values []int
	next   int
}

func (s *sequenceRand) IntN(n int) int {
	v := s.values[s.next%len(s.values)]
	s.next++
	return v % n
}

// layoutFromRows builds a layout from text rows, where rows[y][x] == '#' marks
// a wall. The result is indexed Tiles[x][y] like generator output.
func layoutFromRows(rooms []layout.Room, rows ...string) *layout.Layout {
	width, height := len(rows[0]), len(rows)
	tiles := make([][]layout.Cell, width)
	for x := range tiles {
		tiles[x] = make([]layout.Cell, height)
		for y := range tiles[x] {
			if rows[y][x] == '#' {
				tiles[x][y] = layout.Cell{Type: layout.CellWall}
			} else {
				tiles[x][y] = layout.Cell{Type: layout.CellFloor}
			}
		}
	}
	return &layout.Layout{Width: width, Height: height, Tiles: tiles, Rooms: rooms}
}

// stubGenerator returns a fixed layout or error.
type stubGenerator struct {
	layout *layout.Layout
	err    error
	calls  int
}

func (g *stubGenerator) Generate(width, height int) (*layout.Layout, error) {
	g.calls++
	return g.layout, g.err
}

func (g *stubGenerator) Name() string {
	return "stub"
}
