package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := parse(GetDefaultYAML())
	if err != nil {
		t.Fatalf("embedded defaults failed to parse: %v", err)
	}

	if cfg != DefaultMusouConfig() {
		t.Errorf("embedded YAML and DefaultMusouConfig() differ:\n%+v\n%+v", cfg, DefaultMusouConfig())
	}
}

func TestLoadMusouCustomPathOverlaysDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := "scoring:\n  start: 42\nbeam:\n  spread_count: 3\n"
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadMusou(path)
	if err != nil {
		t.Fatalf("LoadMusou() error = %v", err)
	}
	if cfg.Scoring.Start != 42 {
		t.Errorf("Scoring.Start = %d, expected 42", cfg.Scoring.Start)
	}
	if cfg.Beam.SpreadCount != 3 {
		t.Errorf("Beam.SpreadCount = %d, expected 3", cfg.Beam.SpreadCount)
	}
	// Untouched keys keep their defaults
	if cfg.Gravity.Cost != 200 {
		t.Errorf("Gravity.Cost = %d, expected default 200", cfg.Gravity.Cost)
	}
}

func TestLoadMusouMissingCustomPath(t *testing.T) {
	_, err := LoadMusou(filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil {
		t.Fatal("LoadMusou() should fail for a missing custom file")
	}
}

func TestLoadMusouRejectsSingleBeamSpread(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("beam:\n  spread_count: 1\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	_, err := LoadMusou(path)
	if err == nil {
		t.Fatal("LoadMusou() should reject spread_count < 2")
	}
	if !strings.Contains(err.Error(), "spread_count") {
		t.Errorf("error should mention spread_count, got %v", err)
	}
}

func TestValidateCollectsAllErrors(t *testing.T) {
	cfg := DefaultMusouConfig()
	cfg.World.TickRate = 0
	cfg.Enemy.DropMin = 500

	err := cfg.Validate()
	if err == nil {
		t.Fatal("Validate() should fail")
	}
	msg := err.Error()
	if !strings.Contains(msg, "tick_rate") || !strings.Contains(msg, "drop_min") {
		t.Errorf("Validate() should report both problems, got %q", msg)
	}
}

func TestApplyMusouPreset(t *testing.T) {
	tests := []struct {
		preset  DifficultyPreset
		enabled bool
		level   float64
	}{
		{DifficultyEasy, true, 0.0},
		{DifficultyNormal, true, 0.3},
		{DifficultyHard, true, 0.7},
		{DifficultyFixed, false, 0.0},
	}

	for _, tc := range tests {
		t.Run(string(tc.preset), func(t *testing.T) {
			cfg := DefaultMusouConfig()
			ApplyMusouPreset(&cfg, tc.preset)
			if cfg.Difficulty.Enabled != tc.enabled {
				t.Errorf("Enabled = %v, expected %v", cfg.Difficulty.Enabled, tc.enabled)
			}
			if cfg.Difficulty.InitialLevel != tc.level {
				t.Errorf("InitialLevel = %f, expected %f", cfg.Difficulty.InitialLevel, tc.level)
			}
		})
	}

	cfg := DefaultMusouConfig()
	ApplyMusouPreset(&cfg, "")
	if cfg != DefaultMusouConfig() {
		t.Error("empty preset should leave the config untouched")
	}
}

func TestParsePreset(t *testing.T) {
	if ParsePreset("hard") != DifficultyHard {
		t.Error("ParsePreset(hard) should return DifficultyHard")
	}
	if ParsePreset("nightmare") != "" {
		t.Error("ParsePreset should return empty for unknown presets")
	}
}
