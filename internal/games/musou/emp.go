package musou

import (
	"math/rand"

	"github.com/vovakirdan/musou/internal/config"
)

// EMP suppresses enemy bomb drops and halves bomb speed while active.
// Activate and Deactivate are idempotent.
type EMP struct {
	Active bool

	timer     int
	tintEvery int
	enemy     config.EnemyConfig
	rng       *rand.Rand
}

// NewEMP creates an inactive pulse. Deactivation draws fresh drop intervals
// from rng.
func NewEMP(cfg config.EMPConfig, enemy config.EnemyConfig, rng *rand.Rand) *EMP {
	return &EMP{
		tintEvery: max(cfg.TintEvery, 1),
		enemy:     enemy,
		rng:       rng,
	}
}

// Activate suppresses every enemy and slows every bomb in w.
// It returns false if the pulse was already active.
func (e *EMP) Activate(w *World) bool {
	if e.Active {
		return false
	}
	e.Active = true
	e.timer = 0
	for _, en := range w.Enemies {
		e.Suppress(en)
	}
	for _, b := range w.Bombs {
		e.Slow(b)
	}
	return true
}

// Deactivate gives every enemy a new random drop interval and restores the
// speed of slowed bombs. It returns false if the pulse was not active.
func (e *EMP) Deactivate(w *World) bool {
	if !e.Active {
		return false
	}
	e.Active = false
	e.timer = 0
	for _, en := range w.Enemies {
		en.DropInterval = randRange(e.rng, e.enemy.DropMin, e.enemy.DropMax)
	}
	for _, b := range w.Bombs {
		if b.Slowed {
			b.Speed *= 2
			b.Slowed = false
		}
	}
	return true
}

// Suppress stops en from dropping bombs.
func (e *EMP) Suppress(en *Enemy) {
	en.DropInterval = 0
}

// Slow halves the speed of b once.
func (e *EMP) Slow(b *Bomb) {
	if b.Slowed {
		return
	}
	b.Speed /= 2
	b.Slowed = true
}

// Update advances the tint timer and reports whether this tick shows the
// tint overlay.
func (e *EMP) Update() bool {
	if !e.Active {
		return false
	}
	e.timer++
	if e.timer%e.tintEvery == 0 {
		e.timer = 0
		return true
	}
	return false
}
