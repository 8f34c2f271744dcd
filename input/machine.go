package input

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/tilegrid/core"
)

// Machine routes terminal events: keys become intents, mouse events feed the pointer
type Machine struct {
	keys    *KeyTable
	pointer *Pointer
}

// NewMachine creates a machine with the default key table
func NewMachine(scale core.Scale) *Machine {
	return &Machine{
		keys:    DefaultKeyTable(),
		pointer: NewPointer(scale),
	}
}

// Pointer returns the mouse state accumulator
func (m *Machine) Pointer() *Pointer {
	return m.pointer
}

// Process parses a terminal event and returns an Intent
// Returns nil for events that carry no action (mouse, unbound keys)
func (m *Machine) Process(ev tcell.Event) *Intent {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		return &Intent{Type: IntentResize}
	case *tcell.EventKey:
		if intent, ok := m.keys.Lookup(ev); ok {
			return &intent
		}
	case *tcell.EventMouse:
		m.pointer.Observe(ev)
	case *tcell.EventFocus:
		if !ev.Focused {
			m.pointer.Release()
		}
	}
	return nil
}
