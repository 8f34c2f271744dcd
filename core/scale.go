package core

// Scale projects pixel space onto terminal cells
// One grid tile spans Cols x Rows terminal cells
type Scale struct {
	TileSize int
	Cols     int
	Rows     int
}

// ToPixel maps a terminal cell to the pixel at its center
func (s Scale) ToPixel(termX, termY int) (int, int) {
	px := (2*termX + 1) * s.TileSize / (2 * s.Cols)
	py := (2*termY + 1) * s.TileSize / (2 * s.Rows)
	return px, py
}

// ToTerm maps a pixel coordinate to the terminal cell containing it
func (s Scale) ToTerm(px, py int) (int, int) {
	return floorDiv(px*s.Cols, s.TileSize), floorDiv(py*s.Rows, s.TileSize)
}

// TermRect returns the terminal cell span [x0, x1) x [y0, y1) covered by a tile
func (s Scale) TermRect(t Tile) (x0, y0, x1, y1 int) {
	x0, y0 = s.ToTerm(t.X, t.Y)
	x1, y1 = s.ToTerm(t.X+t.Width, t.Y+t.Height)
	return x0, y0, x1, y1
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
