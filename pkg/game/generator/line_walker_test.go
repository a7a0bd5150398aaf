package generator

import (
	"errors"
	"testing"

	"slimecrawl/pkg/engine/world"
	"slimecrawl/pkg/game/layout"
)

func TestLineWalkerGenerate_ChambersAndConnectivity(t *testing.T) {
	for seed := uint64(1); seed <= 5; seed++ {
		g := NewLineWalkerGenerator(world.NewRand(seed))
		l, err := g.Generate(40, 24)
		if err != nil {
			t.Fatalf("seed %d: Generate: %v", seed, err)
		}
		if len(l.Rooms) != 5 {
			t.Fatalf("seed %d: len(Rooms) = %d, want 5 (centre plus one per direction)", seed, len(l.Rooms))
		}
		for i, room := range l.Rooms {
			if room.X < 1 || room.Y < 1 || room.X+room.Width > l.Width-1 || room.Y+room.Height > l.Height-1 {
				t.Errorf("seed %d: room %d %+v overlaps the perimeter", seed, i, room)
			}
			for x := room.X; x < room.X+room.Width; x++ {
				for y := room.Y; y < room.Y+room.Height; y++ {
					if l.Tiles[x][y].Type != layout.CellFloor {
						t.Fatalf("seed %d: room %d cell (%d,%d) is %q", seed, i, x, y, l.Tiles[x][y].Type)
					}
				}
			}
		}

		cx, cy := l.Rooms[0].Center()
		if reachable, total := countReachableOpenCells(l, cx, cy), countOpenCells(l); reachable != total {
			t.Errorf("seed %d: reachable open cells %d != total %d", seed, reachable, total)
		}
	}
}

func TestLineWalkerGenerate_PerimeterIsWall(t *testing.T) {
	g := NewLineWalkerGenerator(world.NewRand(9))
	g.BranchPercent = 50
	l, err := g.Generate(20, 12)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	for x := 0; x < l.Width; x++ {
		if !l.Tiles[x][0].IsWall() || !l.Tiles[x][l.Height-1].IsWall() {
			t.Errorf("perimeter cell in column %d is not a wall", x)
		}
	}
	for y := 0; y < l.Height; y++ {
		if !l.Tiles[0][y].IsWall() || !l.Tiles[l.Width-1][y].IsWall() {
			t.Errorf("perimeter cell in row %d is not a wall", y)
		}
	}
}

func TestLineWalkerGenerate_TooSmall(t *testing.T) {
	_, err := NewLineWalkerGenerator(world.NewRand(1)).Generate(5, 30)
	if !errors.Is(err, world.ErrInvalidDimension) {
		t.Errorf("Generate(5, 30) err = %v, want ErrInvalidDimension", err)
	}
}
