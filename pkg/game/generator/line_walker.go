package generator

import (
	"fmt"
	"math/rand/v2"

	"slimecrawl/pkg/engine/world"
	"slimecrawl/pkg/game/layout"
)

// chamberSize is the width and height of the chambers the line walker
// carves at its start and at the end of each main line.
const chamberSize = 4

// LineWalkerGenerator generates layouts by walking one tile wide corridors
// in random directions with branching probability
type LineWalkerGenerator struct {
	// Rand drives every random choice. A nil Rand is replaced with a
	// randomly seeded generator on each Generate call.
	Rand world.Rand
	// BranchPercent is the initial chance, per step, of starting a branch.
	// Zero selects the default.
	BranchPercent int
}

// NewLineWalkerGenerator creates a line walker using the given random source
func NewLineWalkerGenerator(r world.Rand) *LineWalkerGenerator {
	return &LineWalkerGenerator{Rand: r}
}

// Name returns the name of this generator
func (g *LineWalkerGenerator) Name() string {
	return "Line Walker"
}

type lineWalk struct {
	r      world.Rand
	layout *layout.Layout
	minLen int
	maxLen int
}

// Generate creates a new layout. The walk starts at the centre and sends a
// main corridor in each cardinal direction, each ending in a chamber.
func (g *LineWalkerGenerator) Generate(width, height int) (*layout.Layout, error) {
	if width < MinLayoutSize || height < MinLayoutSize {
		return nil, fmt.Errorf("%w: line walker layout needs at least %dx%d, got %dx%d",
			world.ErrInvalidDimension, MinLayoutSize, MinLayoutSize, width, height)
	}

	r := g.Rand
	if r == nil {
		r = world.NewRand(rand.Uint64())
	}
	branchPercent := g.BranchPercent
	if branchPercent <= 0 {
		branchPercent = 25
	}

	// Corridor length scales with the smaller side
	side := min(width, height)
	minLen := max(2, side/6)
	maxLen := max(minLen, side/3)

	w := &lineWalk{
		r: r,
		layout: &layout.Layout{
			Width:  width,
			Height: height,
			Tiles:  newColumns(width, height),
		},
		minLen: minLen,
		maxLen: maxLen,
	}

	x, y := width/2, height/2
	w.carveChamber(x, y)

	for _, dir := range world.CardinalDirections() {
		endX, endY := w.walk(x, y, dir, branchPercent)
		w.carveChamber(endX, endY)
	}

	return w.layout, nil
}

// isPlayable checks if a position is inside the perimeter wall
func (w *lineWalk) isPlayable(x, y int) bool {
	return x >= 1 && x < w.layout.Width-1 && y >= 1 && y < w.layout.Height-1
}

func (w *lineWalk) carve(x, y int) {
	if w.isPlayable(x, y) {
		w.layout.Tiles[x][y] = layout.Cell{Type: layout.CellFloor}
	}
}

// carveChamber carves a chamber centred on (x, y), shifted to stay inside
// the perimeter, and records it as a room.
func (w *lineWalk) carveChamber(x, y int) {
	room := layout.Room{
		X:      clamp(x-chamberSize/2, 1, w.layout.Width-1-chamberSize),
		Y:      clamp(y-chamberSize/2, 1, w.layout.Height-1-chamberSize),
		Width:  chamberSize,
		Height: chamberSize,
	}
	for cx := room.X; cx < room.X+room.Width; cx++ {
		for cy := room.Y; cy < room.Y+room.Height; cy++ {
			w.carve(cx, cy)
		}
	}
	w.layout.Rooms = append(w.layout.Rooms, room)
}

// walk carves a corridor from (x, y) in dir, occasionally branching off in
// a random direction with a lower branch chance. Returns where it stopped.
func (w *lineWalk) walk(x, y int, dir world.Direction, branchPercent int) (int, int) {
	dx, dy := dir.Delta()
	distance := world.Between(w.r, w.minLen, w.maxLen)

	for step := 0; step < distance; step++ {
		w.carve(x, y)

		// If the next cell would be outside the playable area, stop here
		if !w.isPlayable(x+dx, y+dy) {
			return x, y
		}

		if branchPercent > 0 && w.r.IntN(100) < branchPercent {
			branch := world.CardinalDirections()[w.r.IntN(4)]
			w.walk(x, y, branch, branchPercent-10)
		}

		x += dx
		y += dy
	}

	w.carve(x, y)
	return x, y
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
