package input

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/tilegrid/core"
)

// KeyTable maps keys to intents
type KeyTable struct {
	// Special keys (Ctrl+*, Esc)
	SpecialKeys map[tcell.Key]Intent

	// Plain rune bindings
	Runes map[rune]Intent
}

// DefaultKeyTable returns the default key bindings
func DefaultKeyTable() *KeyTable {
	kt := &KeyTable{
		SpecialKeys: map[tcell.Key]Intent{
			tcell.KeyEscape: {Type: IntentQuit},
			tcell.KeyCtrlC:  {Type: IntentQuit},
			tcell.KeyCtrlQ:  {Type: IntentQuit},
		},
		Runes: map[rune]Intent{
			'q': {Type: IntentQuit},
			'c': {Type: IntentClear},
			'o': {Type: IntentToggleOverlay},
			't': {Type: IntentToggleTiles},
			'm': {Type: IntentToggleMute},
		},
	}

	// Digits select palette entries in cycle order
	for s := core.ShapeEmpty; s < core.ShapeCount; s++ {
		kt.Runes['0'+rune(s)] = Intent{Type: IntentSelectShape, Shape: s}
	}

	return kt
}

// Lookup resolves a key event, ok is false for unbound keys
func (kt *KeyTable) Lookup(ev *tcell.EventKey) (Intent, bool) {
	if ev.Key() == tcell.KeyRune {
		intent, ok := kt.Runes[ev.Rune()]
		return intent, ok
	}
	intent, ok := kt.SpecialKeys[ev.Key()]
	return intent, ok
}
