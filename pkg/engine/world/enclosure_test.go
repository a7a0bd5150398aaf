package world

import (
	"strings"
	"testing"
)

// gridFromRows builds a grid from text rows: '#' is a wall, anything else is None.
func gridFromRows(t *testing.T, rows ...string) *Grid {
	t.Helper()
	g, err := NewGrid(len(rows[0]), len(rows))
	if err != nil {
		t.Fatalf("NewGrid: %v", err)
	}
	for y, row := range rows {
		for x, ch := range row {
			if ch == '#' {
				g.SetTile(x, y, Wall)
			}
		}
	}
	return g
}

// gridRows renders a grid back into text rows.
func gridRows(g *Grid) []string {
	rows := make([]string, g.Height())
	for y := 0; y < g.Height(); y++ {
		var b strings.Builder
		for x := 0; x < g.Width(); x++ {
			tile, _ := g.TileAt(x, y)
			if tile.IsWall() {
				b.WriteByte('#')
			} else {
				b.WriteByte('.')
			}
		}
		rows[y] = b.String()
	}
	return rows
}

func assertRows(t *testing.T, g *Grid, want ...string) {
	t.Helper()
	got := gridRows(g)
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("grid =\n%s\nwant\n%s", strings.Join(got, "\n"), strings.Join(want, "\n"))
			return
		}
	}
}

func TestRepairEnclosures_SolidBlockClearsOnlyCentre(t *testing.T) {
	// A 3x3 wall block inside open floor: only the centre has eight wall neighbours.
	g := gridFromRows(t,
		".....",
		".###.",
		".###.",
		".###.",
		".....",
	)
	repaired := RepairEnclosures(g)
	if len(repaired) != 1 || repaired[0] != (Point{2, 2}) {
		t.Fatalf("repaired = %v, want [(2,2)]", repaired)
	}
	assertRows(t, g,
		".....",
		".###.",
		".#.#.",
		".###.",
		".....",
	)
}

func TestRepairEnclosures_DecidesAgainstUnmodifiedGrid(t *testing.T) {
	// A 4x4 wall block has a 2x2 enclosed core. Clearing (2,2) first must not
	// stop (3,2), (2,3) and (3,3) from being cleared in the same pass.
	g := gridFromRows(t,
		"......",
		".####.",
		".####.",
		".####.",
		".####.",
		"......",
	)
	repaired := RepairEnclosures(g)
	if len(repaired) != 4 {
		t.Fatalf("len(repaired) = %d, want 4 (%v)", len(repaired), repaired)
	}
	assertRows(t, g,
		"......",
		".####.",
		".#..#.",
		".#..#.",
		".####.",
		"......",
	)
}

func TestRepairEnclosures_OutOfGridCountsAsWall(t *testing.T) {
	// An all-wall grid: every tile's in-grid neighbours are walls and the rest
	// lie outside the grid, so every tile is enclosed, corners and edges included.
	g := gridFromRows(t,
		"###",
		"###",
	)
	repaired := RepairEnclosures(g)
	if len(repaired) != 6 {
		t.Fatalf("len(repaired) = %d, want 6", len(repaired))
	}
	if g.Count(Wall) != 0 {
		t.Errorf("Count(Wall) = %d, want 0", g.Count(Wall))
	}
}

func TestRepairEnclosures_BorderWallsNextToFloorSurvive(t *testing.T) {
	g := gridFromRows(t,
		"#####",
		"#...#",
		"#...#",
		"#####",
	)
	if repaired := RepairEnclosures(g); len(repaired) != 0 {
		t.Errorf("repaired = %v, want none", repaired)
	}
}

func TestRepairEnclosures_ThickBorderClearsOuterRing(t *testing.T) {
	// Outer ring tiles only touch walls and the outside of the grid.
	g := gridFromRows(t,
		"######",
		"######",
		"##..##",
		"######",
		"######",
	)
	RepairEnclosures(g)
	assertRows(t, g,
		"......",
		".####.",
		".#..#.",
		".####.",
		"......",
	)
}

func TestRepairEnclosures_Idempotent(t *testing.T) {
	g := gridFromRows(t,
		"########",
		"########",
		"###..###",
		"########",
		"#.######",
		"########",
	)
	RepairEnclosures(g)
	before := gridRows(g)
	if second := RepairEnclosures(g); len(second) != 0 {
		t.Errorf("second repair changed %v, want nothing", second)
	}
	after := gridRows(g)
	for i := range before {
		if before[i] != after[i] {
			t.Fatalf("second repair modified row %d: %q -> %q", i, before[i], after[i])
		}
	}
}

func TestRepairEnclosures_NeverTouchesNoneOrExposedWalls(t *testing.T) {
	rows := []string{
		"#######",
		"#######",
		"##.####",
		"#######",
		"####.##",
		"#######",
	}
	snapshot := gridFromRows(t, rows...)
	g := gridFromRows(t, rows...)
	RepairEnclosures(g)

	snapshot.ForEachTile(func(before Tile) {
		after, _ := g.TileAt(before.X, before.Y)
		switch {
		case before.Type == None && after.Type != None:
			t.Errorf("None tile at (%d,%d) became %v", before.X, before.Y, after.Type)
		case before.Type == Wall && !before.IsEnclosed(snapshot) && after.Type != Wall:
			t.Errorf("exposed wall at (%d,%d) was cleared", before.X, before.Y)
		case before.IsEnclosed(snapshot) && after.Type != None:
			t.Errorf("enclosed wall at (%d,%d) was kept", before.X, before.Y)
		}
	})
}

func TestTile_WallMask(t *testing.T) {
	g := gridFromRows(t,
		"#.#",
		"###",
		"...",
	)
	centre, _ := g.TileAt(1, 1)
	mask := centre.WallMask(g)
	want := uint8(1<<NorthEast | 1<<East | 1<<West | 1<<NorthWest)
	if mask != want {
		t.Errorf("WallMask = %08b, want %08b", mask, want)
	}
	if centre.IsEnclosed(g) {
		t.Error("centre IsEnclosed = true, want false")
	}

	corner, _ := g.TileAt(0, 0)
	// N, NE, NW, W, SW lie outside the grid; S (0,1) and SE (1,1) are walls; E (1,0) is floor.
	wantCorner := uint8(0xFF &^ (1 << East))
	if got := corner.WallMask(g); got != wantCorner {
		t.Errorf("corner WallMask = %08b, want %08b", got, wantCorner)
	}
}

func TestTile_NoneIsNeverEnclosed(t *testing.T) {
	g := gridFromRows(t,
		"###",
		"#.#",
		"###",
	)
	centre, _ := g.TileAt(1, 1)
	if centre.IsEnclosed(g) {
		t.Error("None tile reported as enclosed")
	}
}
