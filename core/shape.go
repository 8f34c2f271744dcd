package core

// Shape identifies a palette entry
// Order is the cycle order used by the edit controller
type Shape uint8

const (
	ShapeEmpty Shape = iota
	ShapeFull
	ShapeLeftHalf
	ShapeTopHalf
	ShapeRightHalf
	ShapeBottomHalf

	ShapeCount
)

// String returns human-readable shape name
func (s Shape) String() string {
	switch s {
	case ShapeEmpty:
		return "Empty"
	case ShapeFull:
		return "Full"
	case ShapeLeftHalf:
		return "LeftHalf"
	case ShapeTopHalf:
		return "TopHalf"
	case ShapeRightHalf:
		return "RightHalf"
	case ShapeBottomHalf:
		return "BottomHalf"
	default:
		return "Unknown"
	}
}

// Next returns the following palette entry, wrapping after the last one
func (s Shape) Next() Shape {
	return (s + 1) % ShapeCount
}

// ShapeTile returns the shape's template relative to a cell origin for tile size t
func ShapeTile(s Shape, t int) Tile {
	half := t / 2
	switch s {
	case ShapeFull:
		return Tile{X: 0, Y: 0, Width: t, Height: t}
	case ShapeLeftHalf:
		return Tile{X: 0, Y: 0, Width: half, Height: t}
	case ShapeTopHalf:
		return Tile{X: 0, Y: 0, Width: t, Height: half}
	case ShapeRightHalf:
		return Tile{X: half, Y: 0, Width: half, Height: t}
	case ShapeBottomHalf:
		return Tile{X: 0, Y: half, Width: t, Height: half}
	default:
		return Tile{}
	}
}

// PlaceShape returns the shape translated to the origin of grid cell (col, row)
func PlaceShape(s Shape, t, col, row int) Tile {
	tile := ShapeTile(s, t)
	if !tile.Valid() {
		return tile
	}
	return tile.Translate(col*t, row*t)
}

// Classify derives the shape of a tile from its geometry alone
// Width is checked before height, so a quarter tile reads as a vertical half
func Classify(tile Tile, t int) Shape {
	if !tile.Valid() {
		return ShapeEmpty
	}

	half := t / 2
	if tile.Width == half {
		if mod(tile.X, t) == 0 {
			return ShapeLeftHalf
		}
		return ShapeRightHalf
	}

	if tile.Height == half {
		if mod(tile.Y, t) == 0 {
			return ShapeTopHalf
		}
		return ShapeBottomHalf
	}

	return ShapeFull
}

// mod is the non-negative remainder
func mod(a, b int) int {
	r := a % b
	if r < 0 {
		r += b
	}
	return r
}
