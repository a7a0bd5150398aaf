package level

import (
	"slimecrawl/pkg/engine/world"
	"slimecrawl/pkg/game/layout"
)

// Slime is the starting position of an enemy. Everything beyond placement
// belongs to the scene layer.
type Slime struct {
	X int
	Y int
}

// Position returns the slime's tile coordinate
func (s Slime) Position() world.Point {
	return world.Point{X: s.X, Y: s.Y}
}

// CanHoldSlimes returns true if the room is large enough for slimes under cfg
func CanHoldSlimes(room layout.Room, cfg Config) bool {
	return room.Height >= cfg.MinRoomSize && room.Width >= cfg.MinRoomSize
}

// PlaceSlimes places between cfg.MinSlimes and cfg.MaxSlimes slimes in every
// room that is big enough. Slimes are returned in room order, then draw order.
//
// Coordinates are drawn from [X+1, X+Width-1) and [Y+1, Y+Height-1): the
// room's outer bound minus one is the exclusive limit, so a slime never
// starts on the room's first or last column or row.
func PlaceSlimes(rooms []layout.Room, cfg Config, r world.Rand) []Slime {
	var slimes []Slime
	for _, room := range rooms {
		if !CanHoldSlimes(room, cfg) {
			continue
		}

		minX, limitX := room.X+1, room.X+room.Width-1
		minY, limitY := room.Y+1, room.Y+room.Height-1

		count := world.Between(r, cfg.MinSlimes, cfg.MaxSlimes)
		for i := 0; i < count; i++ {
			slimes = append(slimes, Slime{
				X: world.Between(r, minX, limitX-1),
				Y: world.Between(r, minY, limitY-1),
			})
		}
	}
	return slimes
}
