package render

import (
	"github.com/lixenwraith/tilegrid/core"
	"github.com/lixenwraith/tilegrid/editor"
	"github.com/lixenwraith/tilegrid/optimizer"
)

// Frame is everything drawn in one pass
// Tiles and Covering are read in slot order; empty slots are skipped
type Frame struct {
	Tiles    []core.Cell
	Covering []core.Cell
	Summary  optimizer.Summary

	TileCount int
	Selected  core.Shape
	Policy    editor.CyclePolicy
	Muted     bool

	ShowTiles   bool
	ShowOverlay bool

	// Pointer position in terminal cells
	PointerX, PointerY int
	PointerVisible     bool
}
