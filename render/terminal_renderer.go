package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/tilegrid/core"
)

// Outline glyphs
const (
	glyphTopLeft     = '┏'
	glyphTopRight    = '┓'
	glyphBottomLeft  = '┗'
	glyphBottomRight = '┛'
	glyphHorizontal  = '━'
	glyphVertical    = '┃'
	glyphSingle      = '■'
	glyphRowStart    = '╺'
	glyphRowEnd      = '╸'
	glyphColStart    = '╻'
	glyphColEnd      = '╹'
	glyphPointer     = '+'
)

// TerminalRenderer draws frames onto a tcell screen
type TerminalRenderer struct {
	screen tcell.Screen
	scale  core.Scale
	cols   int // Grid cells per row
	rows   int // Grid rows
}

// NewTerminalRenderer creates a renderer for a cols x rows grid
func NewTerminalRenderer(screen tcell.Screen, scale core.Scale, cols, rows int) *TerminalRenderer {
	return &TerminalRenderer{
		screen: screen,
		scale:  scale,
		cols:   cols,
		rows:   rows,
	}
}

// GridSize returns the grid area in terminal cells
func (r *TerminalRenderer) GridSize() (int, int) {
	return r.cols * r.scale.Cols, r.rows * r.scale.Rows
}

// RenderFrame draws the checker grid, raw tiles, covering outlines and status bar
func (r *TerminalRenderer) RenderFrame(f Frame) {
	defaultStyle := tcell.StyleDefault.Background(RgbBackground)
	r.screen.SetStyle(defaultStyle)
	r.screen.Clear()

	r.drawGrid()

	if f.ShowTiles {
		for _, c := range f.Tiles {
			if c.Occupied {
				r.fillTile(c.Tile)
			}
		}
	}

	if f.ShowOverlay {
		for _, c := range f.Covering {
			if c.Occupied {
				r.outlineTile(c.Tile)
			}
		}
	}

	if f.PointerVisible {
		r.drawPointer(f.PointerX, f.PointerY)
	}

	r.drawStatusBar(f, defaultStyle)

	r.screen.Show()
}

func (r *TerminalRenderer) drawGrid() {
	for row := 0; row < r.rows; row++ {
		for col := 0; col < r.cols; col++ {
			style := tcell.StyleDefault.Background(checkerColor(col, row))
			x0, y0 := col*r.scale.Cols, row*r.scale.Rows
			for y := y0; y < y0+r.scale.Rows; y++ {
				for x := x0; x < x0+r.scale.Cols; x++ {
					r.screen.SetContent(x, y, ' ', nil, style)
				}
			}
		}
	}
}

func (r *TerminalRenderer) fillTile(t core.Tile) {
	x0, y0, x1, y1 := r.scale.TermRect(t)
	style := tcell.StyleDefault.Background(RgbTile)
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			r.screen.SetContent(x, y, ' ', nil, style)
		}
	}
}

// outlineTile draws the border of t over whatever background is already there
func (r *TerminalRenderer) outlineTile(t core.Tile) {
	x0, y0, x1, y1 := r.scale.TermRect(t)
	if x1 <= x0 || y1 <= y0 {
		return
	}
	right, bottom := x1-1, y1-1

	for y := y0; y <= bottom; y++ {
		for x := x0; x <= right; x++ {
			if x != x0 && x != right && y != y0 && y != bottom {
				continue
			}
			r.setOutline(x, y, outlineGlyph(x, y, x0, y0, right, bottom))
		}
	}
}

// outlineGlyph picks the border rune for (x, y) on a box spanning [x0, right] x [y0, bottom]
func outlineGlyph(x, y, x0, y0, right, bottom int) rune {
	switch {
	case x0 == right && y0 == bottom:
		return glyphSingle
	case y0 == bottom:
		switch x {
		case x0:
			return glyphRowStart
		case right:
			return glyphRowEnd
		}
		return glyphHorizontal
	case x0 == right:
		switch y {
		case y0:
			return glyphColStart
		case bottom:
			return glyphColEnd
		}
		return glyphVertical
	}

	switch {
	case x == x0 && y == y0:
		return glyphTopLeft
	case x == right && y == y0:
		return glyphTopRight
	case x == x0 && y == bottom:
		return glyphBottomLeft
	case x == right && y == bottom:
		return glyphBottomRight
	case y == y0 || y == bottom:
		return glyphHorizontal
	}
	return glyphVertical
}

func (r *TerminalRenderer) setOutline(x, y int, glyph rune) {
	_, _, existing, _ := r.screen.GetContent(x, y)
	_, bg, _ := existing.Decompose()
	r.screen.SetContent(x, y, glyph, nil, tcell.StyleDefault.Foreground(RgbOutline).Background(bg).Bold(true))
}

func (r *TerminalRenderer) drawPointer(x, y int) {
	gw, gh := r.GridSize()
	if x < 0 || y < 0 || x >= gw || y >= gh {
		return
	}
	mainc, _, existing, _ := r.screen.GetContent(x, y)
	_, bg, _ := existing.Decompose()
	if mainc == ' ' || mainc == 0 {
		mainc = glyphPointer
	}
	r.screen.SetContent(x, y, mainc, nil, tcell.StyleDefault.Foreground(RgbPointer).Background(bg).Bold(true))
}

func (r *TerminalRenderer) drawStatusBar(f Frame, defaultStyle tcell.Style) {
	_, gh := r.GridSize()
	width, height := r.screen.Size()
	if gh >= height {
		return
	}

	barStyle := defaultStyle.Foreground(RgbStatusText).Background(RgbStatusBar)
	for x := 0; x < width; x++ {
		r.screen.SetContent(x, gh, ' ', nil, barStyle)
	}

	x := r.drawText(0, gh, fmt.Sprintf(" %s ", f.Selected), barStyle.Background(RgbPreview).Bold(true))
	x = r.drawText(x, gh, fmt.Sprintf(" tiles:%d rects:%d area:%d cycle:%s ",
		f.TileCount, f.Summary.Rects, f.Summary.Area, f.Policy), barStyle)

	if f.Muted {
		x = r.drawText(x, gh, " MUTED ", barStyle.Background(RgbMutedBg))
	}

	r.drawText(x, gh, " [0-5]shape [c]lear [o]verlay [t]iles [m]ute [q]uit", barStyle)
}

// drawText writes s starting at (x, y) and returns the column after it
func (r *TerminalRenderer) drawText(x, y int, s string, style tcell.Style) int {
	for _, ch := range s {
		r.screen.SetContent(x, y, ch, nil, style)
		x++
	}
	return x
}
