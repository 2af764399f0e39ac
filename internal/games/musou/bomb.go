package musou

import (
	"math/rand"

	"github.com/vovakirdan/musou/internal/config"
	"github.com/vovakirdan/musou/internal/core"
)

// BombVariants is the number of bomb colours.
const BombVariants = 6

// Bomb travels in a straight line from the enemy that dropped it toward the
// player's position at the time of the drop.
type Bomb struct {
	body

	Dir     core.Vec
	Speed   float64
	Radius  float64
	Variant int

	// Slowed is set while an EMP has halved the speed.
	Slowed bool
}

// NewBomb drops a bomb from the bottom centre of e aimed at target.
func NewBomb(e *Enemy, target core.Box, speed float64, cfg config.BombConfig, rng *rand.Rand) *Bomb {
	r := float64(randRange(rng, cfg.RadiusMin, cfg.RadiusMax))
	src := e.Bounds()
	origin := core.Vec{X: src.Center().X, Y: src.Bottom()}

	return &Bomb{
		body:    body{box: core.BoxAt(origin, 2*r, 2*r)},
		Dir:     core.Orientation(src, target),
		Speed:   speed,
		Radius:  r,
		Variant: rng.Intn(BombVariants),
	}
}

// Kind implements Entity.
func (b *Bomb) Kind() Kind { return KindBomb }

func (b *Bomb) update(*World) {
	b.box = b.box.Moved(b.Dir.Scale(b.Speed))
}
