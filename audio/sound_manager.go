package audio

import (
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/lixenwraith/tilegrid/core"
)

const (
	sampleRate = beep.SampleRate(48000)
)

// SoundManager plays editor feedback sounds
// All Play methods are no-ops until Initialize succeeds, or while muted
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      float64
	muted       bool
	initialized bool
}

// NewSoundManager creates a new sound manager with linear volume in [0, 1]
func NewSoundManager(volume float64) *SoundManager {
	return &SoundManager{
		mixer:  &beep.Mixer{},
		volume: volume,
	}
}

// Initialize sets up the audio system
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	// Initialize speaker with sample rate and buffer size
	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100)); err != nil {
		return fmt.Errorf("speaker init: %w", err)
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Initialized reports whether the speaker is running
func (sm *SoundManager) Initialized() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.initialized
}

// Cleanup stops all sounds and closes the audio system
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Clear()
	sm.mixer.Clear()
	speaker.Close()
	sm.initialized = false
}

// SetMuted silences or restores playback
func (sm *SoundManager) SetMuted(muted bool) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.muted = muted
}

// ToggleMute flips the mute flag and returns the new state
func (sm *SoundManager) ToggleMute() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.muted = !sm.muted
	return sm.muted
}

// Muted reports the mute flag
func (sm *SoundManager) Muted() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.muted
}

// PlayCycle plays a tick pitched by the newly selected shape
func (sm *SoundManager) PlayCycle(shape core.Shape) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.active() {
		return
	}

	streamer, err := CreateTickSound(int(shape), sm.volume, sampleRate)
	if err != nil {
		log.Printf("audio: tick for %v: %v", shape, err)
		return
	}
	sm.add(streamer)
}

// PlayClear plays the grid-cleared sweep
func (sm *SoundManager) PlayClear() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.active() {
		return
	}

	sm.add(CreateSweepSound(sm.volume, sampleRate))
}

// active must be called with mu held
func (sm *SoundManager) active() bool {
	return sm.initialized && !sm.muted && sm.volume > 0
}

// add must be called with mu held
func (sm *SoundManager) add(s beep.Streamer) {
	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
}
