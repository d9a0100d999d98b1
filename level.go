package main

import (
	"strings"

	"github.com/mossling/clamber/common"
)

// Level is a built-in tile grid: '#' is solid environment, 'P' the spawn
// point. One deterministic layout is enough for the demo: flat ground, a
// climbing shaft, and a ceiling overhang exercise all three probes.
type Level struct {
	Width  int
	Height int
	tiles  []bool

	SpawnX float64
	SpawnY float64
}

var builtinRows = []string{
	"########################################",
	"#                                      #",
	"#                                      #",
	"#                                      #",
	"#        ########                      #",
	"#                                      #",
	"#                                      #",
	"#                                 ######",
	"#                                      #",
	"#                                      #",
	"#            ####                      #",
	"#                                      #",
	"#                                      #",
	"#     ###                         #    #",
	"#                                 #    #",
	"#                                 #    #",
	"#  P                              #    #",
	"#                                 #    #",
	"#          ##                     #    #",
	"#                                      #",
	"#                                      #",
	"########################################",
}

func BuiltinLevel() *Level {
	return parseLevel(builtinRows)
}

func parseLevel(rows []string) *Level {
	h := len(rows)
	w := 0
	for _, r := range rows {
		if len(r) > w {
			w = len(r)
		}
	}

	l := &Level{Width: w, Height: h, tiles: make([]bool, w*h)}
	for y, row := range rows {
		for x := 0; x < len(row); x++ {
			switch row[x] {
			case '#':
				l.tiles[y*w+x] = true
			case 'P':
				l.SpawnX = float64(x * common.TileSize)
				l.SpawnY = float64(y * common.TileSize)
			}
		}
	}
	return l
}

func (l *Level) solid(x, y int) bool {
	if x < 0 || y < 0 || x >= l.Width || y >= l.Height {
		return false
	}
	return l.tiles[y*l.Width+x]
}

// SolidRects merges solid tiles into the fewest boxes it can greedily find:
// grow each unprocessed run rightward, then extend the strip downward while
// every tile below is solid and unprocessed.
func (l *Level) SolidRects() []common.Rect {
	processed := make([]bool, len(l.tiles))
	var out []common.Rect

	for y := 0; y < l.Height; y++ {
		for x := 0; x < l.Width; x++ {
			idx := y*l.Width + x
			if processed[idx] || !l.tiles[idx] {
				processed[idx] = true
				continue
			}

			w := 1
			for x+w < l.Width {
				next := y*l.Width + (x + w)
				if processed[next] || !l.tiles[next] {
					break
				}
				w++
			}

			h := 1
		heightLoop:
			for y+h < l.Height {
				for xi := x; xi < x+w; xi++ {
					next := (y+h)*l.Width + xi
					if processed[next] || !l.tiles[next] {
						break heightLoop
					}
				}
				h++
			}

			out = append(out, common.Rect{
				X: float64(x * common.TileSize),
				Y: float64(y * common.TileSize),
				W: float64(w * common.TileSize),
				H: float64(h * common.TileSize),
			})
			for yy := y; yy < y+h; yy++ {
				for xx := x; xx < x+w; xx++ {
					processed[yy*l.Width+xx] = true
				}
			}
		}
	}
	return out
}

func (l *Level) String() string {
	var b strings.Builder
	for y := 0; y < l.Height; y++ {
		for x := 0; x < l.Width; x++ {
			if l.solid(x, y) {
				b.WriteByte('#')
			} else {
				b.WriteByte(' ')
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
