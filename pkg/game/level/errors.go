package level

import (
	"errors"

	"slimecrawl/pkg/engine/world"
)

// Construction errors. Each one aborts Map construction as a whole.
var (
	// ErrInvalidDimension is returned for a non-positive width or height.
	ErrInvalidDimension = world.ErrInvalidDimension
	// ErrMalformedLayout is returned when the generator's cell matrix does
	// not cover every coordinate of the requested grid.
	ErrMalformedLayout = errors.New("malformed layout")
	// ErrNoRoomsAvailable is returned when there is no room to spawn in.
	ErrNoRoomsAvailable = errors.New("no rooms available")
)
