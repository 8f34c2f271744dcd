// Package editor holds the only writer of grid contents: it maps pointer
// positions to grid slots, cycles the selected shape and paints it.
package editor

import (
	"fmt"

	"github.com/lixenwraith/tilegrid/core"
)

// CyclePolicy decides where a press advances the selected shape from
type CyclePolicy uint8

const (
	// CycleSession advances the per-session selection by one
	CycleSession CyclePolicy = iota
	// CycleHovered selects the shape after the one under the pointer
	CycleHovered
)

// String returns the config name of the policy
func (p CyclePolicy) String() string {
	switch p {
	case CycleSession:
		return "session"
	case CycleHovered:
		return "hovered"
	default:
		return "unknown"
	}
}

// ParseCyclePolicy resolves a config name
func ParseCyclePolicy(s string) (CyclePolicy, error) {
	switch s {
	case "", "session":
		return CycleSession, nil
	case "hovered":
		return CycleHovered, nil
	default:
		return CycleSession, fmt.Errorf("unknown cycle policy %q", s)
	}
}

// Sample is one frame of pointer input in pixel coordinates
type Sample struct {
	X, Y    int
	Pressed bool // Primary button went down since the previous frame
	Held    bool // Primary button is down this frame
}

// Change reports what one Update did
type Change struct {
	Index      int  // Hovered slot, -1 when the pointer is outside the grid
	ShapeMoved bool // Selection changed
	Written    bool // Slot was overwritten
}

// Controller translates pointer samples into grid mutations
type Controller struct {
	grid     *core.Grid
	policy   CyclePolicy
	selected core.Shape
}

// NewController creates a controller writing into grid
func NewController(grid *core.Grid, policy CyclePolicy) *Controller {
	return &Controller{
		grid:     grid,
		policy:   policy,
		selected: core.ShapeEmpty,
	}
}

// Grid returns the store the controller writes into
func (c *Controller) Grid() *core.Grid {
	return c.grid
}

// Selected returns the shape painted while the button is held
func (c *Controller) Selected() core.Shape {
	return c.selected
}

// Policy returns the active cycle policy
func (c *Controller) Policy() CyclePolicy {
	return c.policy
}

// Select sets the current shape directly
func (c *Controller) Select(s core.Shape) bool {
	if s >= core.ShapeCount {
		return false
	}
	c.selected = s
	return true
}

// Index maps a pixel position to a grid slot
// Positions outside the grid are rejected rather than wrapped or clamped
func (c *Controller) Index(px, py int) (int, bool) {
	if px < 0 || py < 0 {
		return 0, false
	}
	t := c.grid.TileSize()
	return c.grid.Index(px/t, py/t)
}

// Update applies one frame of input
func (c *Controller) Update(s Sample) Change {
	ch := Change{Index: -1}

	index, ok := c.Index(s.X, s.Y)
	if !ok {
		return ch
	}
	ch.Index = index

	if s.Pressed {
		prev := c.selected
		c.selected = c.nextShape(index)
		ch.ShapeMoved = c.selected != prev
	}

	if s.Held {
		col, row, _ := c.grid.Coord(index)
		tile := core.PlaceShape(c.selected, c.grid.TileSize(), col, row)
		ch.Written = c.grid.Set(index, tile)
	}

	return ch
}

// Clear empties the whole grid, selection is kept
func (c *Controller) Clear() {
	c.grid.Clear()
}

func (c *Controller) nextShape(index int) core.Shape {
	if c.policy == CycleHovered {
		cell, _ := c.grid.Get(index)
		hovered := core.ShapeEmpty
		if cell.Occupied {
			hovered = core.Classify(cell.Tile, c.grid.TileSize())
		}
		return hovered.Next()
	}
	return c.selected.Next()
}
