package main

import (
	"testing"

	"github.com/mossling/clamber/common"
)

func TestParseLevelSpawn(t *testing.T) {
	l := parseLevel([]string{
		"####",
		"# P#",
		"####",
	})
	if l.Width != 4 || l.Height != 3 {
		t.Fatalf("size = %dx%d, want 4x3", l.Width, l.Height)
	}
	if l.SpawnX != 2*common.TileSize || l.SpawnY != 1*common.TileSize {
		t.Fatalf("spawn = (%v, %v), want tile (2,1)", l.SpawnX, l.SpawnY)
	}
	if l.solid(2, 1) {
		t.Fatalf("spawn tile must not be solid")
	}
	if !l.solid(0, 0) || !l.solid(3, 2) {
		t.Fatalf("border tiles must be solid")
	}
	if l.solid(-1, 0) || l.solid(0, 99) {
		t.Fatalf("out-of-bounds must read as empty")
	}
}

func TestSolidRectsMerging(t *testing.T) {
	cases := []struct {
		name      string
		rows      []string
		wantRects int
	}{
		{"horizontal_strip", []string{"#####"}, 1},
		{"vertical_column", []string{"#", "#", "#"}, 1},
		{"full_block", []string{"##", "##"}, 1},
		{"ring", []string{"###", "# #", "###"}, 4},
		{"two_islands", []string{"#  #"}, 2},
		{"empty", []string{"   "}, 0},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			l := parseLevel(c.rows)
			rects := l.SolidRects()
			if len(rects) != c.wantRects {
				t.Fatalf("got %d rects %v, want %d", len(rects), rects, c.wantRects)
			}
			assertRectsCoverSolids(t, l, rects)
		})
	}
}

// assertRectsCoverSolids checks the merge is exact: every solid tile inside
// exactly one rect, no rect covering an empty tile.
func assertRectsCoverSolids(t *testing.T, l *Level, rects []common.Rect) {
	t.Helper()
	for y := 0; y < l.Height; y++ {
		for x := 0; x < l.Width; x++ {
			px := float64(x*common.TileSize) + common.TileSize/2
			py := float64(y*common.TileSize) + common.TileSize/2
			covered := 0
			for _, r := range rects {
				if px > r.X && px < r.X+r.W && py > r.Y && py < r.Y+r.H {
					covered++
				}
			}
			if l.solid(x, y) && covered != 1 {
				t.Fatalf("solid tile (%d,%d) covered by %d rects", x, y, covered)
			}
			if !l.solid(x, y) && covered != 0 {
				t.Fatalf("empty tile (%d,%d) covered by %d rects", x, y, covered)
			}
		}
	}
}

func TestBuiltinLevel(t *testing.T) {
	l := BuiltinLevel()
	if l.SpawnX == 0 && l.SpawnY == 0 {
		t.Fatalf("builtin level must place a spawn point")
	}
	rects := l.SolidRects()
	if len(rects) == 0 {
		t.Fatalf("builtin level must produce solids")
	}
	assertRectsCoverSolids(t, l, rects)
}
