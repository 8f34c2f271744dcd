package constant

import "time"

// Grid Geometry (pixel space)
const (
	// TileSize is the side length T of one grid cell; must be even so half tiles stay integral
	TileSize = 50

	// HalfTile is the extent of a half-cell shape
	HalfTile = TileSize / 2

	// ScreenWidth is the editable surface width in pixels
	ScreenWidth = 800

	// ScreenHeight is the editable surface height in pixels
	ScreenHeight = 600

	// GridCols is the number of grid cells per row
	GridCols = ScreenWidth / TileSize

	// GridRows is the number of grid rows
	GridRows = ScreenHeight / TileSize

	// CellCount is the fixed capacity of the grid store
	CellCount = GridCols * GridRows
)

// Terminal Scale
// One grid cell is drawn as a ColsPerTile x RowsPerTile block of terminal cells.
// Both must be even so half-cell shapes land on whole terminal cells.
const (
	ColsPerTile = 4
	RowsPerTile = 2

	// StatusBarHeight is the number of terminal rows reserved below the grid
	StatusBarHeight = 1
)

// Frame Timing
const (
	// FrameUpdateInterval is the rendering frame rate interval (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond

	// EventQueueSize is the capacity of the terminal event channel
	EventQueueSize = 256
)
