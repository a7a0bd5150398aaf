package generator

import (
	"fmt"
	"math/rand/v2"

	"slimecrawl/pkg/engine/world"
	"slimecrawl/pkg/game/layout"
)

// Constants for BSP generation
const (
	minNodeSize = 8 // Minimum size of a BSP node
	minRoomSize = 4 // Minimum size of a room
	roomPadding = 2 // Wall kept between a room and its node edge (one each side)
)

// MinLayoutSize is the smallest width or height the BSP generator accepts:
// one room plus its padding plus the perimeter wall.
const MinLayoutSize = minRoomSize + roomPadding + 2

// BSPGenerator generates layouts using Binary Space Partitioning
type BSPGenerator struct {
	// Rand drives every random choice. A nil Rand is replaced with a
	// randomly seeded generator on each Generate call.
	Rand world.Rand
	// MinNodeSize overrides the minimum node size when positive.
	MinNodeSize int
}

// NewBSPGenerator creates a BSP generator using the given random source
func NewBSPGenerator(r world.Rand) *BSPGenerator {
	return &BSPGenerator{Rand: r}
}

// Name returns the name of this generator
func (g *BSPGenerator) Name() string {
	return "BSP Tree"
}

// bspNode represents a node in the BSP tree
type bspNode struct {
	x, y, width, height int
	left, right         *bspNode
	room                *layout.Room
}

func (n *bspNode) isLeaf() bool {
	return n.left == nil && n.right == nil
}

// Generate creates a new layout using the BSP algorithm
func (g *BSPGenerator) Generate(width, height int) (*layout.Layout, error) {
	if width < MinLayoutSize || height < MinLayoutSize {
		return nil, fmt.Errorf("%w: BSP layout needs at least %dx%d, got %dx%d",
			world.ErrInvalidDimension, MinLayoutSize, MinLayoutSize, width, height)
	}

	r := g.Rand
	if r == nil {
		r = world.NewRand(rand.Uint64())
	}

	minSize := g.MinNodeSize
	if minSize <= 0 {
		minSize = minNodeSize
	}
	if minSize < minRoomSize+roomPadding {
		minSize = minRoomSize + roomPadding
	}

	// Leave a 1 cell border for perimeter walls
	root := &bspNode{
		x:      1,
		y:      1,
		width:  width - 2,
		height: height - 2,
	}

	splitBSP(r, root, minSize)
	createRooms(r, root)

	l := &layout.Layout{
		Width:  width,
		Height: height,
		Tiles:  newColumns(width, height),
		Rooms:  collectRooms(root),
	}

	for _, room := range l.Rooms {
		carveRoom(l, room)
	}
	connectRooms(r, l, root)
	markDoors(l)

	return l, nil
}

// splitBSP recursively splits a BSP node
func splitBSP(r world.Rand, node *bspNode, minSize int) {
	canSplitWidth := node.width >= minSize*2
	canSplitHeight := node.height >= minSize*2

	// Decide split direction
	var splitHorizontal bool
	switch {
	case !canSplitWidth && !canSplitHeight:
		return // Too small to split
	case node.width > node.height && canSplitWidth:
		splitHorizontal = false
	case node.height > node.width && canSplitHeight:
		splitHorizontal = true
	case canSplitWidth && canSplitHeight:
		splitHorizontal = r.IntN(2) == 0
	default:
		splitHorizontal = canSplitHeight
	}

	if splitHorizontal {
		// Split horizontally (top and bottom)
		splitPoint := minSize + r.IntN(node.height-minSize*2+1)
		node.left = &bspNode{x: node.x, y: node.y, width: node.width, height: splitPoint}
		node.right = &bspNode{x: node.x, y: node.y + splitPoint, width: node.width, height: node.height - splitPoint}
	} else {
		// Split vertically (left and right)
		splitPoint := minSize + r.IntN(node.width-minSize*2+1)
		node.left = &bspNode{x: node.x, y: node.y, width: splitPoint, height: node.height}
		node.right = &bspNode{x: node.x + splitPoint, y: node.y, width: node.width - splitPoint, height: node.height}
	}

	splitBSP(r, node.left, minSize)
	splitBSP(r, node.right, minSize)
}

// createRooms creates a room in every leaf node, keeping one wall cell
// between the room and each node edge.
func createRooms(r world.Rand, node *bspNode) {
	if !node.isLeaf() {
		if node.left != nil {
			createRooms(r, node.left)
		}
		if node.right != nil {
			createRooms(r, node.right)
		}
		return
	}

	roomWidth := minRoomSize + r.IntN(node.width-minRoomSize-roomPadding+1)
	roomHeight := minRoomSize + r.IntN(node.height-minRoomSize-roomPadding+1)

	node.room = &layout.Room{
		X:      node.x + 1 + r.IntN(node.width-roomWidth-1),
		Y:      node.y + 1 + r.IntN(node.height-roomHeight-1),
		Width:  roomWidth,
		Height: roomHeight,
	}
}

// carveRoom marks every cell of the room as floor
func carveRoom(l *layout.Layout, room layout.Room) {
	for x := room.X; x < room.X+room.Width; x++ {
		for y := room.Y; y < room.Y+room.Height; y++ {
			l.Tiles[x][y] = layout.Cell{Type: layout.CellFloor}
		}
	}
}

// connectRooms joins sibling subtrees with L-shaped corridors
func connectRooms(r world.Rand, l *layout.Layout, node *bspNode) {
	if node.left == nil || node.right == nil {
		return
	}

	leftRoom := getRoom(r, node.left)
	rightRoom := getRoom(r, node.right)

	if leftRoom != nil && rightRoom != nil {
		leftX, leftY := leftRoom.Center()
		rightX, rightY := rightRoom.Center()

		if r.IntN(2) == 0 {
			// Horizontal first, then vertical
			carveCorridorHorizontal(l, leftY, leftX, rightX)
			carveCorridorVertical(l, rightX, leftY, rightY)
		} else {
			// Vertical first, then horizontal
			carveCorridorVertical(l, leftX, leftY, rightY)
			carveCorridorHorizontal(l, rightY, leftX, rightX)
		}
	}

	connectRooms(r, l, node.left)
	connectRooms(r, l, node.right)
}

// carveCorridorHorizontal carves a one cell wide horizontal corridor
func carveCorridorHorizontal(l *layout.Layout, y, startX, endX int) {
	if startX > endX {
		startX, endX = endX, startX
	}
	for x := startX; x <= endX; x++ {
		l.Tiles[x][y] = layout.Cell{Type: layout.CellFloor}
	}
}

// carveCorridorVertical carves a one cell wide vertical corridor
func carveCorridorVertical(l *layout.Layout, x, startY, endY int) {
	if startY > endY {
		startY, endY = endY, startY
	}
	for y := startY; y <= endY; y++ {
		l.Tiles[x][y] = layout.Cell{Type: layout.CellFloor}
	}
}

// markDoors turns corridor cells that touch a room's edge from outside
// into doors.
func markDoors(l *layout.Layout) {
	for _, room := range l.Rooms {
		for x := room.X; x < room.X+room.Width; x++ {
			markDoor(l, x, room.Y-1)
			markDoor(l, x, room.Y+room.Height)
		}
		for y := room.Y; y < room.Y+room.Height; y++ {
			markDoor(l, room.X-1, y)
			markDoor(l, room.X+room.Width, y)
		}
	}
}

func markDoor(l *layout.Layout, x, y int) {
	if x < 0 || x >= l.Width || y < 0 || y >= l.Height {
		return
	}
	if l.Tiles[x][y].Type == layout.CellFloor && !insideAnyRoom(l.Rooms, x, y) {
		l.Tiles[x][y] = layout.Cell{Type: layout.CellDoor}
	}
}

func insideAnyRoom(rooms []layout.Room, x, y int) bool {
	for _, room := range rooms {
		if room.Contains(x, y) {
			return true
		}
	}
	return false
}

// getRoom returns a room from a subtree (picks randomly from leaves)
func getRoom(r world.Rand, node *bspNode) *layout.Room {
	if node.room != nil {
		return node.room
	}

	var leftRoom, rightRoom *layout.Room
	if node.left != nil {
		leftRoom = getRoom(r, node.left)
	}
	if node.right != nil {
		rightRoom = getRoom(r, node.right)
	}

	if leftRoom != nil && rightRoom != nil {
		if r.IntN(2) == 0 {
			return leftRoom
		}
		return rightRoom
	}

	if leftRoom != nil {
		return leftRoom
	}
	return rightRoom
}

// collectRooms collects all rooms from the BSP tree, left subtree first
func collectRooms(node *bspNode) []layout.Room {
	var rooms []layout.Room

	if node.room != nil {
		rooms = append(rooms, *node.room)
	}
	if node.left != nil {
		rooms = append(rooms, collectRooms(node.left)...)
	}
	if node.right != nil {
		rooms = append(rooms, collectRooms(node.right)...)
	}

	return rooms
}
