// Package config provides YAML-based game configuration loading and
// difficulty management.
package config

// MusouConfig contains all tunables for the shooter.
type MusouConfig struct {
	World      WorldConfig      `yaml:"world"`
	Scoring    ScoringConfig    `yaml:"scoring"`
	Player     PlayerConfig     `yaml:"player"`
	Enemy      EnemyConfig      `yaml:"enemy"`
	Bomb       BombConfig       `yaml:"bomb"`
	Beam       BeamConfig       `yaml:"beam"`
	Shield     ShieldConfig     `yaml:"shield"`
	Gravity    GravityConfig    `yaml:"gravity"`
	Hyper      HyperConfig      `yaml:"hyper"`
	EMP        EMPConfig        `yaml:"emp"`
	Explosion  ExplosionConfig  `yaml:"explosion"`
	Input      InputConfig      `yaml:"input"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// WorldConfig defines the play field and scheduler cadence.
type WorldConfig struct {
	Width         float64 `yaml:"width"`
	Height        float64 `yaml:"height"`
	TickRate      int     `yaml:"tick_rate"`
	SpawnInterval int     `yaml:"spawn_interval"`  // Ticks between enemy spawns
	GameOverPause float64 `yaml:"game_over_pause"` // Seconds the final frame stays up
}

// ScoringConfig defines the starting balance and every reward.
type ScoringConfig struct {
	Start        int `yaml:"start"`
	EnemyBeam    int `yaml:"enemy_beam"`
	BombBeam     int `yaml:"bomb_beam"`
	BombShield   int `yaml:"bomb_shield"`
	BombHyper    int `yaml:"bomb_hyper"`
	EnemyGravity int `yaml:"enemy_gravity"`
	BombGravity  int `yaml:"bomb_gravity"`
}

// PlayerConfig defines the player sprite.
type PlayerConfig struct {
	X          float64 `yaml:"x"` // Initial centre
	Y          float64 `yaml:"y"`
	Width      float64 `yaml:"width"`
	Height     float64 `yaml:"height"`
	Speed      float64 `yaml:"speed"`
	BoostSpeed float64 `yaml:"boost_speed"`
	CheerTicks int     `yaml:"cheer_ticks"`
}

// EnemyConfig defines enemy spawning and behaviour.
type EnemyConfig struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	Speed        float64 `yaml:"speed"`
	StopMin      int     `yaml:"stop_min"`
	StopMax      int     `yaml:"stop_max"` // 0 = half the field height
	DropMin      int     `yaml:"drop_min"`
	DropMax      int     `yaml:"drop_max"`
	Durability   int     `yaml:"durability"`
	ShieldChance int     `yaml:"shield_chance"` // Percent
}

// BombConfig defines bombs.
type BombConfig struct {
	Speed     float64 `yaml:"speed"`
	RadiusMin int     `yaml:"radius_min"`
	RadiusMax int     `yaml:"radius_max"`
}

// BeamConfig defines beams and the spread shot.
type BeamConfig struct {
	Speed       float64 `yaml:"speed"`
	Width       float64 `yaml:"width"`
	Height      float64 `yaml:"height"`
	SpreadCount int     `yaml:"spread_count"`
	SpreadArc   float64 `yaml:"spread_arc"` // Half-angle in degrees
}

// ShieldConfig defines the shield wall.
type ShieldConfig struct {
	Width float64 `yaml:"width"`
	Life  int     `yaml:"life"`
	Cost  int     `yaml:"cost"`
}

// GravityConfig defines the gravity well.
type GravityConfig struct {
	Life int `yaml:"life"`
	Cost int `yaml:"cost"`
}

// HyperConfig defines the invulnerable mode.
type HyperConfig struct {
	Duration int `yaml:"duration"`
	Cost     int `yaml:"cost"`
}

// EMPConfig defines the electromagnetic pulse.
type EMPConfig struct {
	Cost      int `yaml:"cost"`
	TintEvery int `yaml:"tint_every"`
}

// ExplosionConfig defines explosion visuals.
type ExplosionConfig struct {
	Width      float64 `yaml:"width"`
	Height     float64 `yaml:"height"`
	EnemyLife  int     `yaml:"enemy_life"`
	BombLife   int     `yaml:"bomb_life"`
	FrameTicks int     `yaml:"frame_ticks"`
}

// InputConfig defines how the terminal emulates held keys.
type InputConfig struct {
	HoldTicks int `yaml:"hold_ticks"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Added to bomb speed factor at max difficulty
	SpawnReduction  int     `yaml:"spawn_reduction"`  // Spawn interval reduction at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a CLI value to a preset. Empty or unknown values yield "".
func ParsePreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s)
	default:
		return ""
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}
