package input

import "github.com/lixenwraith/tilegrid/core"

// IntentType discriminates semantic actions
type IntentType uint8

const (
	IntentNone IntentType = iota

	// System-level intents
	IntentQuit   // Esc, Ctrl+C, q
	IntentResize // Terminal resize event

	// Editing
	IntentClear       // c - empty the whole grid
	IntentSelectShape // 0-5 - pick a palette entry directly

	// View
	IntentToggleOverlay // o - covering outlines on/off
	IntentToggleTiles   // t - raw tile fill on/off
	IntentToggleMute    // m - feedback sounds on/off
)

// Intent is a parsed key or terminal event
type Intent struct {
	Type  IntentType
	Shape core.Shape // IntentSelectShape only
}

// String returns human-readable intent name
func (t IntentType) String() string {
	switch t {
	case IntentQuit:
		return "Quit"
	case IntentResize:
		return "Resize"
	case IntentClear:
		return "Clear"
	case IntentSelectShape:
		return "SelectShape"
	case IntentToggleOverlay:
		return "ToggleOverlay"
	case IntentToggleTiles:
		return "ToggleTiles"
	case IntentToggleMute:
		return "ToggleMute"
	default:
		return "None"
	}
}
