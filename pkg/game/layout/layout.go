// Package layout defines the contract between a dungeon layout generator
// and the level builder: a cell-type matrix plus the generated rooms.
package layout

// Cell type discriminators produced by generators
const (
	CellWall  = "wall"
	CellFloor = "floor"
	CellDoor  = "door"
)

// Cell describes one cell of a generated layout
type Cell struct {
	Type string
}

// IsWall returns true if the generator marked the cell as a wall
func (c Cell) IsWall() bool {
	return c.Type == CellWall
}

// Room is a rectangular region reported by a generator. X and Y are the
// top-left corner.
type Room struct {
	X      int
	Y      int
	Width  int
	Height int
}

// Center returns the room's centre, rounded down
func (r Room) Center() (int, int) {
	return r.X + r.Width/2, r.Y + r.Height/2
}

// Contains returns true if (x, y) lies inside the room's bounding box
func (r Room) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.Width && y >= r.Y && y < r.Y+r.Height
}

// Layout is a generator's output. Tiles is indexed Tiles[x][y]: the outer
// slice is columns, the inner slice rows.
type Layout struct {
	Width  int
	Height int
	Tiles  [][]Cell
	Rooms  []Room
}

// Generator produces layouts of a requested size
type Generator interface {
	Generate(width, height int) (*Layout, error)
	Name() string
}
