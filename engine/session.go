// Package engine runs the per-frame pipeline: pointer sample, grid mutation,
// optimizer pass, render. All state below is owned by the main loop goroutine.
package engine

import (
	"log"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/tilegrid/audio"
	"github.com/lixenwraith/tilegrid/constant"
	"github.com/lixenwraith/tilegrid/core"
	"github.com/lixenwraith/tilegrid/editor"
	"github.com/lixenwraith/tilegrid/input"
	"github.com/lixenwraith/tilegrid/optimizer"
	"github.com/lixenwraith/tilegrid/render"
)

// Options configures a Session
type Options struct {
	Policy      editor.CyclePolicy
	ShowTiles   bool
	ShowOverlay bool

	// Sound may be nil, in which case feedback is silent
	Sound *audio.SoundManager
}

// Session owns the grid and everything that reads or writes it
type Session struct {
	screen     tcell.Screen
	grid       *core.Grid
	controller *editor.Controller
	input      *input.Machine
	renderer   *render.TerminalRenderer
	sound      *audio.SoundManager

	showTiles   bool
	showOverlay bool

	frameNumber  int64
	crashHandler func(any)
}

// DefaultScale maps one grid cell to a ColsPerTile x RowsPerTile terminal block
func DefaultScale() core.Scale {
	return core.Scale{
		TileSize: constant.TileSize,
		Cols:     constant.ColsPerTile,
		Rows:     constant.RowsPerTile,
	}
}

// NewSession creates an empty GridCols x GridRows editor drawing onto screen
func NewSession(screen tcell.Screen, opts Options) *Session {
	scale := DefaultScale()
	grid := core.NewGrid(constant.GridCols, constant.GridRows, constant.TileSize)

	sound := opts.Sound
	if sound == nil {
		sound = audio.NewSoundManager(0)
	}

	return &Session{
		screen:      screen,
		grid:        grid,
		controller:  editor.NewController(grid, opts.Policy),
		input:       input.NewMachine(scale),
		renderer:    render.NewTerminalRenderer(screen, scale, constant.GridCols, constant.GridRows),
		sound:       sound,
		showTiles:   opts.ShowTiles,
		showOverlay: opts.ShowOverlay,
	}
}

// Grid returns the session's store
func (s *Session) Grid() *core.Grid {
	return s.grid
}

// Controller returns the edit controller
func (s *Session) Controller() *editor.Controller {
	return s.controller
}

// FrameNumber returns the number of frames stepped so far
func (s *Session) FrameNumber() int64 {
	return s.frameNumber
}

// SetCrashHandler installs the panic handler used by the event poller goroutine
func (s *Session) SetCrashHandler(handler func(any)) {
	s.crashHandler = handler
}

// Step runs one frame pipeline on sample and returns what should be drawn
func (s *Session) Step(sample editor.Sample) render.Frame {
	s.frameNumber++

	ch := s.controller.Update(sample)
	if ch.ShapeMoved {
		s.sound.PlayCycle(s.controller.Selected())
	}

	tiles := s.grid.Cells()
	covering := optimizer.Optimize(tiles)

	f := render.Frame{
		Tiles:       tiles,
		Covering:    covering,
		Summary:     optimizer.Stats(covering),
		TileCount:   s.grid.Count(),
		Selected:    s.controller.Selected(),
		Policy:      s.controller.Policy(),
		Muted:       s.sound.Muted(),
		ShowTiles:   s.showTiles,
		ShowOverlay: s.showOverlay,
	}
	f.PointerX, f.PointerY, f.PointerVisible = s.input.Pointer().Position()

	return f
}

// Tick samples the pointer, steps one frame and renders it
func (s *Session) Tick() render.Frame {
	f := s.Step(s.input.Pointer().Sample())
	s.renderer.RenderFrame(f)
	return f
}

// HandleEvent routes a terminal event, returns false when the session should end
func (s *Session) HandleEvent(ev tcell.Event) bool {
	intent := s.input.Process(ev)
	if intent == nil {
		return true
	}
	return s.HandleIntent(*intent)
}

// HandleIntent applies a keyboard or terminal action, returns false on quit
func (s *Session) HandleIntent(intent input.Intent) bool {
	switch intent.Type {
	case input.IntentQuit:
		log.Printf("quit after %d frames", s.frameNumber)
		return false

	case input.IntentResize:
		s.screen.Sync()

	case input.IntentClear:
		log.Printf("clear: %d tiles removed", s.grid.Count())
		s.controller.Clear()
		s.sound.PlayClear()

	case input.IntentSelectShape:
		prev := s.controller.Selected()
		if s.controller.Select(intent.Shape) && intent.Shape != prev {
			s.sound.PlayCycle(intent.Shape)
		}

	case input.IntentToggleOverlay:
		s.showOverlay = !s.showOverlay

	case input.IntentToggleTiles:
		s.showTiles = !s.showTiles

	case input.IntentToggleMute:
		muted := s.sound.ToggleMute()
		log.Printf("audio muted: %v", muted)
	}
	return true
}
