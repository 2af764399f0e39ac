package config

import (
	_ "embed"
)

//go:embed defaults/musou.yaml
var defaultMusouYAML []byte

// DefaultMusouConfig returns the built-in configuration.
func DefaultMusouConfig() MusouConfig {
	return MusouConfig{
		World: WorldConfig{
			Width:         1100,
			Height:        650,
			TickRate:      50,
			SpawnInterval: 200,
			GameOverPause: 2,
		},
		Scoring: ScoringConfig{
			Start:        1000,
			EnemyBeam:    10,
			BombBeam:     1,
			BombShield:   1,
			BombHyper:    1,
			EnemyGravity: 10,
			BombGravity:  0,
		},
		Player: PlayerConfig{
			X:          900,
			Y:          400,
			Width:      54,
			Height:     54,
			Speed:      10,
			BoostSpeed: 20,
			CheerTicks: 25,
		},
		Enemy: EnemyConfig{
			Width:        64,
			Height:       48,
			Speed:        6,
			StopMin:      50,
			StopMax:      0,
			DropMin:      50,
			DropMax:      300,
			Durability:   1,
			ShieldChance: 30,
		},
		Bomb: BombConfig{
			Speed:     6,
			RadiusMin: 10,
			RadiusMax: 50,
		},
		Beam: BeamConfig{
			Speed:       10,
			Width:       40,
			Height:      12,
			SpreadCount: 5,
			SpreadArc:   50,
		},
		Shield: ShieldConfig{
			Width: 20,
			Life:  400,
			Cost:  50,
		},
		Gravity: GravityConfig{
			Life: 400,
			Cost: 200,
		},
		Hyper: HyperConfig{
			Duration: 500,
			Cost:     100,
		},
		EMP: EMPConfig{
			Cost:      20,
			TintEvery: 5,
		},
		Explosion: ExplosionConfig{
			Width:      60,
			Height:     60,
			EnemyLife:  100,
			BombLife:   50,
			FrameTicks: 10,
		},
		Input: InputConfig{
			HoldTicks: 8,
		},
		Difficulty: DifficultyConfig{
			Enabled:      false,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "time",
				MaxAt: 15000, // 5 minutes at 50 ticks/s
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 0.5,
				SpawnReduction:  120,
			},
		},
	}
}

// GetDefaultYAML returns the embedded default YAML.
func GetDefaultYAML() []byte {
	return defaultMusouYAML
}
