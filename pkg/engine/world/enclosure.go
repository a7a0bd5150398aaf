package world

// FindEnclosed returns the positions of all enclosed wall tiles in
// row-major order without modifying the grid.
func FindEnclosed(g *Grid) []Point {
	var enclosed []Point
	g.ForEachTile(func(t Tile) {
		if t.IsEnclosed(g) {
			enclosed = append(enclosed, t.Position())
		}
	})
	return enclosed
}

// RepairEnclosures replaces every enclosed wall tile with a None tile and
// returns the repaired positions.
//
// Enclosure is decided for the whole grid before any tile is replaced, so
// the result does not depend on scan order.
func RepairEnclosures(g *Grid) []Point {
	enclosed := FindEnclosed(g)
	for _, p := range enclosed {
		g.SetTile(p.X, p.Y, None)
	}
	return enclosed
}
