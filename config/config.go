// Package config resolves runtime settings from defaults, an optional YAML
// file and TILEGRID_* environment variables, in that order.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/tilegrid/editor"
)

var (
	ErrInvalidCycle  = errors.New("invalid cycle policy")
	ErrInvalidVolume = errors.New("volume out of range")
)

// Config is the top-level configuration parsed from tilegrid.yaml
type Config struct {
	Audio   AudioConfig   `yaml:"audio"`
	Editor  EditorConfig  `yaml:"editor"`
	Logging LoggingConfig `yaml:"logging"`
}

type AudioConfig struct {
	Enabled bool    `yaml:"enabled"`
	Volume  float64 `yaml:"volume"` // 0.0 - 1.0
}

type EditorConfig struct {
	Cycle   string `yaml:"cycle"` // session | hovered
	Overlay bool   `yaml:"overlay"`
	Tiles   bool   `yaml:"tiles"`
}

type LoggingConfig struct {
	Debug bool `yaml:"debug"`
}

// Default returns the settings used when no file or environment overrides exist
func Default() *Config {
	return &Config{
		Audio: AudioConfig{
			Enabled: true,
			Volume:  0.5,
		},
		Editor: EditorConfig{
			Cycle:   editor.CycleSession.String(),
			Overlay: true,
			Tiles:   true,
		},
	}
}

// Load reads defaults, then path if non-empty, then the environment, and validates the result
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", path, err)
		}
	}

	cfg.ApplyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ApplyEnv overrides fields from TILEGRID_* variables; unparsable values are ignored
func (c *Config) ApplyEnv() {
	if enabled := os.Getenv("TILEGRID_AUDIO_ENABLED"); enabled != "" {
		if val, err := strconv.ParseBool(enabled); err == nil {
			c.Audio.Enabled = val
		}
	}

	// Volume is given as 0-100
	if volume := os.Getenv("TILEGRID_VOLUME"); volume != "" {
		if val, err := strconv.Atoi(volume); err == nil {
			c.Audio.Volume = float64(val) / 100.0
		}
	}

	if cycle := os.Getenv("TILEGRID_CYCLE"); cycle != "" {
		c.Editor.Cycle = cycle
	}

	if debug := os.Getenv("TILEGRID_DEBUG"); debug != "" {
		if val, err := strconv.ParseBool(debug); err == nil {
			c.Logging.Debug = val
		}
	}
}

// Validate checks value ranges and enum names
func (c *Config) Validate() error {
	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		return fmt.Errorf("%w: %v", ErrInvalidVolume, c.Audio.Volume)
	}
	if _, err := editor.ParseCyclePolicy(c.Editor.Cycle); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidCycle, err)
	}
	return nil
}

// CyclePolicy returns the parsed editor cycle policy
// Call after Validate; an unknown name falls back to the session policy
func (c *Config) CyclePolicy() editor.CyclePolicy {
	p, _ := editor.ParseCyclePolicy(c.Editor.Cycle)
	return p
}
