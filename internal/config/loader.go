package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadMusou loads the game configuration.
// Search order: customPath -> ~/.musou/configs/musou.yaml -> ./configs/musou.yaml -> embedded default.
// Files are layered over the built-in defaults, so they only need the keys they change.
func LoadMusou(customPath string) (MusouConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return MusouConfig{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := parse(data)
		if err != nil {
			return MusouConfig{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("musou.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", "musou.yaml")); err == nil {
		if cfg, err := parse(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := parse(defaultMusouYAML)
	if err != nil {
		return DefaultMusouConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// parse decodes data over the defaults and validates the result.
func parse(data []byte) (MusouConfig, error) {
	cfg := DefaultMusouConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return MusouConfig{}, err
	}
	if err := cfg.Validate(); err != nil {
		return MusouConfig{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".musou", "configs", filename)
}

// Validate reports every value that would break the simulation.
func (c MusouConfig) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	check(c.World.Width > 0 && c.World.Height > 0, "world: size must be positive, got %gx%g", c.World.Width, c.World.Height)
	check(c.World.TickRate > 0, "world: tick_rate must be positive, got %d", c.World.TickRate)
	check(c.World.SpawnInterval > 0, "world: spawn_interval must be positive, got %d", c.World.SpawnInterval)
	check(c.World.GameOverPause >= 0, "world: game_over_pause must not be negative")
	check(c.Player.Width > 0 && c.Player.Height > 0, "player: size must be positive")
	check(c.Enemy.Width > 0 && c.Enemy.Height > 0, "enemy: size must be positive")
	check(c.Enemy.DropMin > 0 && c.Enemy.DropMin <= c.Enemy.DropMax,
		"enemy: need 0 < drop_min <= drop_max, got %d..%d", c.Enemy.DropMin, c.Enemy.DropMax)
	check(c.Enemy.StopMax == 0 || c.Enemy.StopMin <= c.Enemy.StopMax,
		"enemy: stop_min %d exceeds stop_max %d", c.Enemy.StopMin, c.Enemy.StopMax)
	check(c.Enemy.Durability > 0, "enemy: durability must be positive, got %d", c.Enemy.Durability)
	check(c.Enemy.ShieldChance >= 0 && c.Enemy.ShieldChance <= 100, "enemy: shield_chance must be 0..100")
	check(c.Bomb.RadiusMin > 0 && c.Bomb.RadiusMin <= c.Bomb.RadiusMax,
		"bomb: need 0 < radius_min <= radius_max, got %d..%d", c.Bomb.RadiusMin, c.Bomb.RadiusMax)
	check(c.Beam.SpreadCount >= 2, "beam: spread_count must be at least 2, got %d", c.Beam.SpreadCount)
	check(c.EMP.TintEvery > 0, "emp: tint_every must be positive, got %d", c.EMP.TintEvery)
	check(c.Explosion.FrameTicks > 0, "explosion: frame_ticks must be positive")
	check(c.Input.HoldTicks > 0, "input: hold_ticks must be positive")

	return errors.Join(errs...)
}

// ApplyMusouPreset modifies the config based on a difficulty preset.
func ApplyMusouPreset(cfg *MusouConfig, preset DifficultyPreset) {
	switch preset {
	case "":
		return
	case DifficultyFixed:
		cfg.Difficulty.Enabled = false
	default:
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}

	// Adjust the economy based on difficulty
	switch preset {
	case DifficultyEasy:
		cfg.Scoring.Start = 1500
		cfg.Enemy.ShieldChance = 10
	case DifficultyHard:
		cfg.Scoring.Start = 600
		cfg.Enemy.ShieldChance = 60
	}
}
