// Package optimizer reduces a grid of independently placed tiles to a coarser
// covering of non-overlapping rectangles by fusing pairs that share a full edge.
//
// The pass is greedy and index-ordered: for a fixed input it is deterministic,
// but the covering it finds depends on slot order and is not guaranteed to be
// the one with the fewest rectangles.
package optimizer

import (
	"github.com/lixenwraith/tilegrid/core"
)

// Summary describes a covering
type Summary struct {
	Rects int // Occupied slots
	Area  int // Sum of width*height over occupied slots
}

// Optimize returns the fused covering of cells
// Output has the same slot count as input; absorbed slots are Empty
func Optimize(cells []core.Cell) []core.Cell {
	work := make([]core.Cell, len(cells))
	for i, c := range cells {
		if c.Occupied && c.Tile.Valid() {
			work[i] = c
		}
	}

	fuse(work, core.TouchesX, core.UnionX)
	fuse(work, core.TouchesY, core.UnionY)

	return work
}

// MergeAdjacent runs the same passes over a plain tile list
// Invalid tiles act as holes; result holds surviving rectangles in slot order
func MergeAdjacent(tiles []core.Tile) []core.Tile {
	cells := make([]core.Cell, len(tiles))
	for i, t := range tiles {
		cells[i] = core.Occupy(t)
	}

	fused := Optimize(cells)

	out := make([]core.Tile, 0, len(tiles))
	for _, c := range fused {
		if c.Occupied {
			out = append(out, c.Tile)
		}
	}
	return out
}

// Stats counts occupied slots and their total area
func Stats(cells []core.Cell) Summary {
	var s Summary
	for _, c := range cells {
		if !c.Occupied {
			continue
		}
		s.Rects++
		s.Area += c.Tile.Area()
	}
	return s
}

// fuse runs one directional pass in place
// Slot i absorbs every touching slot j and keeps scanning with its grown
// rectangle, so chains collapse within a single outer iteration
func fuse(work []core.Cell, touches func(a, b core.Tile) bool, union func(a, b core.Tile) core.Tile) {
	for i := range work {
		if !work[i].Occupied {
			continue
		}
		a := work[i].Tile

		for j := range work {
			if i == j || !work[j].Occupied {
				continue
			}
			b := work[j].Tile
			if !touches(a, b) {
				continue
			}

			a = union(a, b)
			work[i].Tile = a
			work[j] = core.Empty
		}
	}
}
