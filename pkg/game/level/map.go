// Package level turns a generated dungeon layout into a playable level:
// the tile grid, the player's starting position and the initial slimes.
package level

import (
	"fmt"
	"math/rand/v2"

	"github.com/rs/zerolog"

	"slimecrawl/pkg/engine/world"
	"slimecrawl/pkg/game/layout"
)

// Map is a fully constructed level. It owns its grid and slime list.
type Map struct {
	grid   *world.Grid
	rooms  []layout.Room
	startX int
	startY int
	slimes []Slime
}

type options struct {
	rand   world.Rand
	config Config
	logger zerolog.Logger
}

// Option configures Map construction
type Option func(*options)

// WithRand sets the random source for spawn selection and slime placement
func WithRand(r world.Rand) Option {
	return func(o *options) {
		o.rand = r
	}
}

// WithConfig overrides the slime placement rules
func WithConfig(cfg Config) Option {
	return func(o *options) {
		o.config = cfg
	}
}

// WithLogger sets the logger used to report construction steps
func WithLogger(logger zerolog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

func buildOptions(opts []Option) options {
	o := options{
		config: DefaultConfig(),
		logger: zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.rand == nil {
		o.rand = world.NewRand(rand.Uint64())
	}
	return o
}

// NewMap requests a width x height layout from gen and builds a Map from it
func NewMap(width, height int, gen layout.Generator, opts ...Option) (*Map, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimension, width, height)
	}
	l, err := gen.Generate(width, height)
	if err != nil {
		return nil, fmt.Errorf("%s generator failed: %w", gen.Name(), err)
	}
	return FromLayout(width, height, l, opts...)
}

// FromLayout builds a Map from an already generated layout. Construction
// runs grid building, enclosure repair, spawn selection and slime
// placement in that order; any failure aborts it and no Map is returned.
func FromLayout(width, height int, l *layout.Layout, opts ...Option) (*Map, error) {
	o := buildOptions(opts)
	if err := o.config.Validate(); err != nil {
		return nil, err
	}

	grid, err := BuildGrid(width, height, l)
	if err != nil {
		return nil, err
	}

	repaired := world.RepairEnclosures(grid)
	o.logger.Debug().
		Int("width", width).
		Int("height", height).
		Int("repaired", len(repaired)).
		Msg("built tile grid")

	startX, startY, err := SelectSpawn(l.Rooms, o.rand)
	if err != nil {
		return nil, err
	}

	slimes := PlaceSlimes(l.Rooms, o.config, o.rand)
	o.logger.Debug().
		Int("rooms", len(l.Rooms)).
		Int("start_x", startX).
		Int("start_y", startY).
		Int("slimes", len(slimes)).
		Msg("populated level")

	rooms := make([]layout.Room, len(l.Rooms))
	copy(rooms, l.Rooms)

	return &Map{
		grid:   grid,
		rooms:  rooms,
		startX: startX,
		startY: startY,
		slimes: slimes,
	}, nil
}

// Width returns the number of columns in the map
func (m *Map) Width() int {
	return m.grid.Width()
}

// Height returns the number of rows in the map
func (m *Map) Height() int {
	return m.grid.Height()
}

// Grid returns the map's tile grid
func (m *Map) Grid() *world.Grid {
	return m.grid
}

// Rooms returns the rooms the map was built from
func (m *Map) Rooms() []layout.Room {
	return m.rooms
}

// Start returns the player's starting position
func (m *Map) Start() (x, y int) {
	return m.startX, m.startY
}

// Slimes returns the placed slimes in placement order
func (m *Map) Slimes() []Slime {
	return m.slimes
}

// TileAt returns the tile at (x, y), or false when the position is outside
// the map.
func (m *Map) TileAt(x, y int) (world.Tile, bool) {
	if y < 0 || y >= m.grid.Height() || x < 0 || x >= m.grid.Width() {
		return world.Tile{}, false
	}
	return m.grid.TileAt(x, y)
}
