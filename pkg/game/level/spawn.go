package level

import (
	"slimecrawl/pkg/engine/world"
	"slimecrawl/pkg/game/layout"
)

// SelectSpawn picks a room uniformly at random and returns its centre as
// the player's starting position. The position is not checked for
// walkability.
func SelectSpawn(rooms []layout.Room, r world.Rand) (x, y int, err error) {
	if len(rooms) == 0 {
		return 0, 0, ErrNoRoomsAvailable
	}
	room := rooms[r.IntN(len(rooms))]
	x, y = room.Center()
	return x, y, nil
}
