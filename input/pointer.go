package input

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/tilegrid/core"
	"github.com/lixenwraith/tilegrid/editor"
)

// Pointer folds mouse events between frames into one editor.Sample
type Pointer struct {
	scale   core.Scale
	termX   int
	termY   int
	seen    bool
	down    bool
	pressed bool
}

// NewPointer creates a pointer that has not reported a position yet
func NewPointer(scale core.Scale) *Pointer {
	return &Pointer{scale: scale, termX: -1, termY: -1}
}

// Observe records a mouse event
// A press edge is latched until the next Sample so short clicks are not lost
func (p *Pointer) Observe(ev *tcell.EventMouse) {
	p.termX, p.termY = ev.Position()
	p.seen = true

	down := ev.Buttons()&tcell.Button1 != 0
	if down && !p.down {
		p.pressed = true
	}
	p.down = down
}

// Position returns the last terminal cell reported, ok is false before any event
func (p *Pointer) Position() (int, int, bool) {
	return p.termX, p.termY, p.seen
}

// Sample consumes the latched press edge and returns this frame's input
func (p *Pointer) Sample() editor.Sample {
	if !p.seen {
		return editor.Sample{X: -1, Y: -1}
	}

	px, py := p.scale.ToPixel(p.termX, p.termY)
	s := editor.Sample{
		X:       px,
		Y:       py,
		Pressed: p.pressed,
		Held:    p.down || p.pressed,
	}
	p.pressed = false
	return s
}

// Release forgets button state, used when the terminal loses the pointer
func (p *Pointer) Release() {
	p.down = false
	p.pressed = false
}
