// Package devtools provides developer tools for inspecting generated levels.
package devtools

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/gookit/color"
	"github.com/leonelquinteros/gotext"
	"github.com/zyedidia/generic/mapset"

	"slimecrawl/pkg/engine/world"
	"slimecrawl/pkg/game/level"
)

const mapDumpFilename = "map.txt"

// Map symbols
const (
	SymbolWall  = '#'
	SymbolFloor = '.'
	SymbolStart = '@'
	SymbolSlime = 's'
)

var (
	colorWall  = color.Style{color.FgWhite}
	colorFloor = color.Style{color.FgGray}
	colorStart = color.Style{color.FgGreen, color.OpBold}
	colorSlime = color.Style{color.FgRed, color.OpBold}
)

// DumpOptions controls map rendering
type DumpOptions struct {
	// Color wraps symbols in ANSI colour codes.
	Color bool
}

// tileSymbol returns the symbol for a tile with no overlay
func tileSymbol(t world.Tile) rune {
	if t.IsWall() {
		return SymbolWall
	}
	return SymbolFloor
}

func styleFor(symbol rune) color.Style {
	switch symbol {
	case SymbolWall:
		return colorWall
	case SymbolStart:
		return colorStart
	case SymbolSlime:
		return colorSlime
	default:
		return colorFloor
	}
}

// slimePositions collects every tile occupied by at least one slime
func slimePositions(m *level.Map) mapset.Set[world.Point] {
	positions := mapset.New[world.Point]()
	for _, s := range m.Slimes() {
		positions.Put(s.Position())
	}
	return positions
}

// WriteMap writes the map one row per line. The start position takes
// precedence over slimes, slimes over the tile underneath.
func WriteMap(w io.Writer, m *level.Map, opts DumpOptions) error {
	bw := bufio.NewWriter(w)
	slimes := slimePositions(m)
	startX, startY := m.Start()

	for y := 0; y < m.Height(); y++ {
		for x := 0; x < m.Width(); x++ {
			tile, _ := m.TileAt(x, y)
			symbol := tileSymbol(tile)
			switch {
			case x == startX && y == startY:
				symbol = SymbolStart
			case slimes.Has(world.Point{X: x, Y: y}):
				symbol = SymbolSlime
			}

			if opts.Color {
				bw.WriteString(styleFor(symbol).Sprint(string(symbol)))
			} else {
				bw.WriteRune(symbol)
			}
		}
		bw.WriteByte('\n')
	}
	return bw.Flush()
}

// Summary returns a one line, translatable description of the map
func Summary(m *level.Map) string {
	startX, startY := m.Start()
	return gotext.Get("%dx%d level: start at (%d,%d), %d slimes in %d rooms",
		m.Width(), m.Height(), startX, startY, len(m.Slimes()), len(m.Rooms()))
}

// DumpMapToFile writes a debug dump to map.txt: metadata, legend, the map
// and the slime list. Returns the absolute path written.
func DumpMapToFile(m *level.Map, seed uint64) (string, error) {
	absPath, err := filepath.Abs(mapDumpFilename)
	if err != nil {
		return "", err
	}

	f, err := os.Create(absPath)
	if err != nil {
		return "", err
	}
	defer f.Close()

	if err := WriteDebugDump(f, m, seed); err != nil {
		return "", err
	}
	return absPath, nil
}

// WriteDebugDump writes the full debug dump used by DumpMapToFile
func WriteDebugDump(w io.Writer, m *level.Map, seed uint64) error {
	startX, startY := m.Start()

	fmt.Fprintln(w, "=== MAP DUMP ===")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "--- Metadata ---")
	fmt.Fprintf(w, "seed: %d\n", seed)
	fmt.Fprintf(w, "width: %d\n", m.Width())
	fmt.Fprintf(w, "height: %d\n", m.Height())
	fmt.Fprintf(w, "coordinate_system: x,y (0-based, x=horizontal, y=vertical)\n")
	fmt.Fprintf(w, "start: %d,%d\n", startX, startY)
	fmt.Fprintf(w, "walls: %d\n", m.Grid().Count(world.Wall))
	fmt.Fprintf(w, "rooms: %d\n", len(m.Rooms()))
	fmt.Fprintf(w, "slimes: %d\n", len(m.Slimes()))
	fmt.Fprintln(w, "")

	fmt.Fprintln(w, "--- Legend ---")
	fmt.Fprintf(w, "%c wall, %c floor, %c start, %c slime\n", SymbolWall, SymbolFloor, SymbolStart, SymbolSlime)
	fmt.Fprintln(w, "")

	fmt.Fprintln(w, "--- Map ---")
	if err := WriteMap(w, m, DumpOptions{}); err != nil {
		return err
	}
	fmt.Fprintln(w, "")

	fmt.Fprintln(w, "--- Rooms ---")
	for i, room := range m.Rooms() {
		fmt.Fprintf(w, "room %d: x=%d y=%d width=%d height=%d\n", i, room.X, room.Y, room.Width, room.Height)
	}
	fmt.Fprintln(w, "")

	fmt.Fprintln(w, "--- Slimes ---")
	for i, s := range m.Slimes() {
		fmt.Fprintf(w, "slime %d: %d,%d\n", i, s.X, s.Y)
	}

	_, err := fmt.Fprintln(w, "")
	return err
}
