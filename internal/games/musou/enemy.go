package musou

import (
	"math/rand"

	"github.com/vovakirdan/musou/internal/config"
	"github.com/vovakirdan/musou/internal/core"
)

// EnemyVariants is the number of distinct enemy looks.
const EnemyVariants = 3

// EnemyState is the movement phase of an enemy.
type EnemyState int

const (
	EnemyDescending EnemyState = iota
	EnemyHolding
)

// Enemy descends from the top edge to a random altitude, then holds and
// drops bombs periodically.
type Enemy struct {
	body

	VY           float64
	StopAltitude float64
	State        EnemyState

	// DropInterval is the number of ticks between bombs. Zero means never.
	DropInterval int
	Durability   int
	Shielded     bool
	Variant      int
}

// NewEnemy spawns an enemy at a random x along the top edge of a w×h field.
// The spawn box is kept inside the field horizontally.
func NewEnemy(cfg config.EnemyConfig, w, h float64, rng *rand.Rand) *Enemy {
	cx := rng.Float64() * w
	x := core.ClampF(cx-cfg.Width/2, 0, w-cfg.Width)

	stopMax := cfg.StopMax
	if stopMax <= 0 {
		stopMax = int(h / 2)
	}

	return &Enemy{
		body:         body{box: core.Box{X: x, Y: 0, W: cfg.Width, H: cfg.Height}},
		VY:           cfg.Speed,
		StopAltitude: float64(randRange(rng, cfg.StopMin, stopMax)),
		State:        EnemyDescending,
		DropInterval: randRange(rng, cfg.DropMin, cfg.DropMax),
		Durability:   max(cfg.Durability, 1),
		Shielded:     rng.Intn(100) < cfg.ShieldChance,
		Variant:      rng.Intn(EnemyVariants),
	}
}

// Kind implements Entity.
func (e *Enemy) Kind() Kind { return KindEnemy }

// update moves the enemy down until its centre passes the stop altitude.
func (e *Enemy) update(*World) {
	if e.State == EnemyDescending && e.box.Center().Y > e.StopAltitude {
		e.VY = 0
		e.State = EnemyHolding
	}
	e.box = e.box.Moved(core.Vec{Y: e.VY})
}

// CanDrop reports whether the enemy releases a bomb on the given tick.
func (e *Enemy) CanDrop(tick int) bool {
	return e.Alive() && e.State == EnemyHolding && e.DropInterval > 0 && tick%e.DropInterval == 0
}

// Hit applies one beam hit and reports whether the enemy is destroyed.
// A shield absorbs the first hit.
func (e *Enemy) Hit() bool {
	if e.Shielded {
		e.Shielded = false
		return false
	}
	e.Durability--
	return e.Durability <= 0
}

// randRange returns a uniform integer in [lo, hi].
func randRange(rng *rand.Rand, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + rng.Intn(hi-lo+1)
}
