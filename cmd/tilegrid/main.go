package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/gdamore/tcell/v2"
	"github.com/google/uuid"
	"github.com/lixenwraith/tilegrid/audio"
	"github.com/lixenwraith/tilegrid/config"
	"github.com/lixenwraith/tilegrid/engine"
)

var (
	configFlag = flag.String("config", "", "Path to a YAML config file")
	debugFlag  = flag.Bool("debug", false, "Write debug log to logs/tilegrid.log")
	muteFlag   = flag.Bool("mute", false, "Start with feedback sounds muted")
)

func main() {
	flag.Parse()

	cfg, err := config.Load(*configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}
	if *debugFlag {
		cfg.Logging.Debug = true
	}

	if logFile := setupLogging(cfg.Logging.Debug); logFile != nil {
		defer logFile.Close()
	}

	sessionID := uuid.New()
	log.SetPrefix(fmt.Sprintf("[%s] ", sessionID.String()[:8]))
	log.Printf("session %s: cycle=%s audio=%v volume=%.2f", sessionID, cfg.Editor.Cycle, cfg.Audio.Enabled, cfg.Audio.Volume)

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize screen: %v\n", err)
		os.Exit(1)
	}
	// Normal exit terminal cleanup
	defer screen.Fini()

	// Panic recovery: restore the terminal before printing the trace
	crashScreen = screen
	defer func() {
		if r := recover(); r != nil {
			handleCrash(r)
		}
	}()

	screen.EnableMouse()
	screen.HideCursor()

	sound := audio.NewSoundManager(cfg.Audio.Volume)
	if cfg.Audio.Enabled {
		if err := sound.Initialize(); err != nil {
			// Non-fatal, the editor runs without sound
			log.Printf("Audio initialization failed: %v (continuing without audio)", err)
		} else {
			defer sound.Cleanup()
		}
	}
	sound.SetMuted(*muteFlag)

	session := engine.NewSession(screen, engine.Options{
		Policy:      cfg.CyclePolicy(),
		ShowTiles:   cfg.Editor.Tiles,
		ShowOverlay: cfg.Editor.Overlay,
		Sound:       sound,
	})
	session.SetCrashHandler(handleCrash)
	session.Run()

	log.Printf("session %s: exit after %d frames", sessionID, session.FrameNumber())
}
