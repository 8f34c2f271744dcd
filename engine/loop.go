package engine

import (
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/tilegrid/constant"
)

// Run draws the first frame and then alternates between terminal events and
// frame ticks until a quit intent arrives or the screen stops delivering events
func (s *Session) Run() {
	s.Tick()

	frameTicker := time.NewTicker(constant.FrameUpdateInterval)
	defer frameTicker.Stop()

	eventChan := make(chan tcell.Event, constant.EventQueueSize)
	go s.pollEvents(eventChan)

	for {
		select {
		case ev, ok := <-eventChan:
			if !ok {
				return
			}
			if !s.HandleEvent(ev) {
				return
			}
			// Resize redraws immediately instead of waiting for the next tick
			if _, resized := ev.(*tcell.EventResize); resized {
				s.Tick()
			}

		case <-frameTicker.C:
			s.Tick()
		}
	}
}

// pollEvents feeds eventChan until the screen is finalized
func (s *Session) pollEvents(eventChan chan<- tcell.Event) {
	defer func() {
		if r := recover(); r != nil && s.crashHandler != nil {
			s.crashHandler(r)
		} else if r != nil {
			panic(r)
		}
	}()
	defer close(eventChan)

	for {
		ev := s.screen.PollEvent()
		if ev == nil {
			return
		}
		eventChan <- ev
	}
}
