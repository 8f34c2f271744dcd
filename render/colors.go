package render

import (
	"github.com/gdamore/tcell/v2"
)

// RGB color definitions
var (
	RgbBackground = tcell.NewRGBColor(26, 27, 38) // Tokyo Night background
	RgbGridLight  = tcell.NewRGBColor(36, 40, 59) // Checker cell, even
	RgbGridDark   = tcell.NewRGBColor(31, 33, 48) // Checker cell, odd

	RgbTile    = tcell.NewRGBColor(86, 95, 137)  // Raw tile fill
	RgbOutline = tcell.NewRGBColor(50, 255, 50)  // Covering outline
	RgbPointer = tcell.NewRGBColor(255, 165, 0)  // Orange pointer marker
	RgbPreview = tcell.NewRGBColor(122, 162, 247) // Selected shape in status bar

	RgbStatusBar  = tcell.NewRGBColor(135, 206, 250) // Light sky blue
	RgbStatusText = tcell.NewRGBColor(0, 0, 0)       // Dark text for status
	RgbMutedBg    = tcell.NewRGBColor(200, 50, 50)   // Red mute indicator
)

// checkerColor returns the background for an empty grid cell
func checkerColor(col, row int) tcell.Color {
	if (col+row)%2 == 0 {
		return RgbGridLight
	}
	return RgbGridDark
}
