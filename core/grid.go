package core

// Cell is one grid slot: either empty or occupied by a tile
type Cell struct {
	Tile     Tile
	Occupied bool
}

// Empty is the unoccupied cell
var Empty = Cell{}

// Occupy wraps a tile into a cell; tiles without extent yield Empty
func Occupy(t Tile) Cell {
	if !t.Valid() {
		return Empty
	}
	return Cell{Tile: t, Occupied: true}
}

// Grid is a fixed-capacity store of cells addressed by row-major index
// Capacity never changes after creation; cells are overwritten in place
type Grid struct {
	cols     int
	rows     int
	tileSize int
	cells    []Cell
}

// NewGrid creates an all-empty grid of cols x rows cells of side tileSize
func NewGrid(cols, rows, tileSize int) *Grid {
	return &Grid{
		cols:     cols,
		rows:     rows,
		tileSize: tileSize,
		cells:    make([]Cell, cols*rows),
	}
}

// Cols returns the number of cells per row
func (g *Grid) Cols() int {
	return g.cols
}

// Rows returns the number of rows
func (g *Grid) Rows() int {
	return g.rows
}

// TileSize returns the side length of one cell in pixels
func (g *Grid) TileSize() int {
	return g.tileSize
}

// Len returns the number of slots
func (g *Grid) Len() int {
	return len(g.cells)
}

// Index converts a cell coordinate to a linear index
func (g *Grid) Index(col, row int) (int, bool) {
	if col < 0 || col >= g.cols || row < 0 || row >= g.rows {
		return 0, false
	}
	return col + row*g.cols, true
}

// Coord converts a linear index back to a cell coordinate
func (g *Grid) Coord(index int) (col, row int, ok bool) {
	if index < 0 || index >= len(g.cells) {
		return 0, 0, false
	}
	return index % g.cols, index / g.cols, true
}

// Get returns the cell at index
func (g *Grid) Get(index int) (Cell, bool) {
	if index < 0 || index >= len(g.cells) {
		return Empty, false
	}
	return g.cells[index], true
}

// Set stores a tile at index, an invalid tile empties the slot
func (g *Grid) Set(index int, t Tile) bool {
	if index < 0 || index >= len(g.cells) {
		return false
	}
	g.cells[index] = Occupy(t)
	return true
}

// Remove empties the slot at index
func (g *Grid) Remove(index int) bool {
	if index < 0 || index >= len(g.cells) {
		return false
	}
	g.cells[index] = Empty
	return true
}

// Clear empties every slot
func (g *Grid) Clear() {
	for i := range g.cells {
		g.cells[i] = Empty
	}
}

// Count returns the number of occupied slots
func (g *Grid) Count() int {
	n := 0
	for _, c := range g.cells {
		if c.Occupied {
			n++
		}
	}
	return n
}

// Cells returns the backing slice for read-only iteration in slot order
// Callers must not retain it across mutations
func (g *Grid) Cells() []Cell {
	return g.cells
}

// Snapshot returns a copy of all cells
func (g *Grid) Snapshot() []Cell {
	snap := make([]Cell, len(g.cells))
	copy(snap, g.cells)
	return snap
}
