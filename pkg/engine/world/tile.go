// Package world provides generic 2D tile grid primitives.
// These are engine-level constructs usable by any tile-based game.
package world

// TileType classifies a single tile
type TileType int

const (
	None TileType = iota // Open floor, or anything that is not a wall
	Wall
)

// String returns the string representation of a tile type
func (t TileType) String() string {
	switch t {
	case Wall:
		return "Wall"
	case None:
		return "None"
	default:
		return "Unknown"
	}
}

// Point is an (x, y) tile coordinate
type Point struct {
	X int
	Y int
}

// TileLookup resolves neighbouring tiles. Grid implements it.
type TileLookup interface {
	TileAt(x, y int) (Tile, bool)
}

// Tile is a single grid cell. Tiles are values; changing a tile's type
// means storing a new Tile in its grid slot.
type Tile struct {
	Type TileType
	X    int
	Y    int
}

// NewTile creates a tile of the given type at (x, y)
func NewTile(t TileType, x, y int) Tile {
	return Tile{Type: t, X: x, Y: y}
}

// Position returns the tile's coordinate
func (t Tile) Position() Point {
	return Point{X: t.X, Y: t.Y}
}

// IsWall returns true if the tile is a wall
func (t Tile) IsWall() bool {
	return t.Type == Wall
}

// Neighbor returns the adjacent tile in the given direction, or false when
// it falls outside the grid.
func (t Tile) Neighbor(lookup TileLookup, dir Direction) (Tile, bool) {
	if !dir.IsValid() {
		return Tile{}, false
	}
	dx, dy := dir.Delta()
	return lookup.TileAt(t.X+dx, t.Y+dy)
}

// WallMask returns a bitmask with bit d set when the neighbour in
// Direction d is a wall. Neighbours outside the grid count as walls.
func (t Tile) WallMask(lookup TileLookup) uint8 {
	var mask uint8
	for _, dir := range AllDirections() {
		n, ok := t.Neighbor(lookup, dir)
		if !ok || n.IsWall() {
			mask |= 1 << uint(dir)
		}
	}
	return mask
}

// enclosedMask has a bit set for every direction
const enclosedMask uint8 = 0xFF

// IsEnclosed returns true if the tile is a wall and all eight neighbours
// are walls or lie outside the grid.
func (t Tile) IsEnclosed(lookup TileLookup) bool {
	return t.IsWall() && t.WallMask(lookup) == enclosedMask
}
