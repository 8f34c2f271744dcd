package core

// Tile is an axis-aligned rectangle in pixel space
// The all-zero tile carries no geometry and is treated as absent
type Tile struct {
	X, Y          int // Top-left corner
	Width, Height int // Dimensions (non-negative)
}

// Valid reports whether the tile has any extent
func (t Tile) Valid() bool {
	return t.Width != 0 || t.Height != 0
}

// Area returns width times height
func (t Tile) Area() int {
	return t.Width * t.Height
}

// Translate returns the tile moved by (dx, dy)
func (t Tile) Translate(dx, dy int) Tile {
	t.X += dx
	t.Y += dy
	return t
}

// Contains checks if a pixel lies inside the tile (right/bottom edges exclusive)
func (t Tile) Contains(px, py int) bool {
	return px >= t.X && px < t.X+t.Width &&
		py >= t.Y && py < t.Y+t.Height
}

// TouchesX reports whether a and b share their full vertical edge:
// same y and height, and one's right edge meets the other's left edge
func TouchesX(a, b Tile) bool {
	return a.Y == b.Y && a.Height == b.Height &&
		(a.X == b.X+b.Width || b.X == a.X+a.Width)
}

// TouchesY reports whether a and b share their full horizontal edge:
// same x and width, and one's bottom edge meets the other's top edge
func TouchesY(a, b Tile) bool {
	return a.X == b.X && a.Width == b.Width &&
		(a.Y == b.Y+b.Height || b.Y == a.Y+a.Height)
}

// UnionX fuses two tiles that satisfy TouchesX
func UnionX(a, b Tile) Tile {
	return Tile{
		X:      min(a.X, b.X),
		Y:      a.Y,
		Width:  a.Width + b.Width,
		Height: a.Height,
	}
}

// UnionY fuses two tiles that satisfy TouchesY
func UnionY(a, b Tile) Tile {
	return Tile{
		X:      a.X,
		Y:      min(a.Y, b.Y),
		Width:  a.Width,
		Height: a.Height + b.Height,
	}
}
