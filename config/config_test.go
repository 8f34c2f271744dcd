package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/lixenwraith/tilegrid/editor"
)

// clearEnv blanks every override so the host environment cannot leak into a test
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"TILEGRID_AUDIO_ENABLED", "TILEGRID_VOLUME", "TILEGRID_CYCLE", "TILEGRID_DEBUG"} {
		t.Setenv(k, "")
	}
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tilegrid.yaml")
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}
	return path
}

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Errorf("Expected default config to validate, got %v", err)
	}
	if cfg.CyclePolicy() != editor.CycleSession {
		t.Errorf("Expected session policy by default, got %v", cfg.CyclePolicy())
	}
	if !cfg.Editor.Overlay || !cfg.Editor.Tiles {
		t.Error("Expected overlay and tiles visible by default")
	}
}

func TestLoadWithoutFile(t *testing.T) {
	clearEnv(t)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if diff := cmp.Diff(Default(), cfg); diff != "" {
		t.Errorf("Expected defaults (-want +got):\n%s", diff)
	}
}

func TestLoadYAML(t *testing.T) {
	clearEnv(t)

	path := writeConfig(t, `
audio:
  enabled: false
  volume: 0.25
editor:
  cycle: hovered
  overlay: false
logging:
  debug: true
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	want := &Config{
		Audio:   AudioConfig{Enabled: false, Volume: 0.25},
		Editor:  EditorConfig{Cycle: "hovered", Overlay: false, Tiles: true},
		Logging: LoggingConfig{Debug: true},
	}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("Config mismatch (-want +got):\n%s", diff)
	}
	if cfg.CyclePolicy() != editor.CycleHovered {
		t.Errorf("Expected hovered policy, got %v", cfg.CyclePolicy())
	}
}

func TestEnvOverridesFile(t *testing.T) {
	clearEnv(t)

	path := writeConfig(t, "audio:\n  volume: 0.25\neditor:\n  cycle: hovered\n")

	t.Setenv("TILEGRID_AUDIO_ENABLED", "false")
	t.Setenv("TILEGRID_VOLUME", "80")
	t.Setenv("TILEGRID_CYCLE", "session")
	t.Setenv("TILEGRID_DEBUG", "1")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if cfg.Audio.Enabled {
		t.Error("Expected audio disabled by environment")
	}
	if cfg.Audio.Volume != 0.8 {
		t.Errorf("Expected volume 0.8, got %v", cfg.Audio.Volume)
	}
	if cfg.Editor.Cycle != "session" {
		t.Errorf("Expected cycle session, got %q", cfg.Editor.Cycle)
	}
	if !cfg.Logging.Debug {
		t.Error("Expected debug enabled by environment")
	}
}

func TestEnvIgnoresUnparsable(t *testing.T) {
	clearEnv(t)
	t.Setenv("TILEGRID_AUDIO_ENABLED", "maybe")
	t.Setenv("TILEGRID_VOLUME", "loud")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if !cfg.Audio.Enabled || cfg.Audio.Volume != 0.5 {
		t.Errorf("Expected defaults kept, got %+v", cfg.Audio)
	}
}

func TestValidateErrors(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr error
	}{
		{"volume below zero", func(c *Config) { c.Audio.Volume = -0.1 }, ErrInvalidVolume},
		{"volume above one", func(c *Config) { c.Audio.Volume = 1.5 }, ErrInvalidVolume},
		{"unknown cycle", func(c *Config) { c.Editor.Cycle = "random" }, ErrInvalidCycle},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			if err := cfg.Validate(); !errors.Is(err, tt.wantErr) {
				t.Errorf("Expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestLoadErrors(t *testing.T) {
	clearEnv(t)

	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Expected error for missing file")
	}

	if _, err := Load(writeConfig(t, "audio: [not, a, map]\n")); err == nil {
		t.Error("Expected error for malformed YAML")
	}

	t.Setenv("TILEGRID_VOLUME", "150")
	if _, err := Load(""); !errors.Is(err, ErrInvalidVolume) {
		t.Errorf("Expected ErrInvalidVolume from environment, got %v", err)
	}
}
