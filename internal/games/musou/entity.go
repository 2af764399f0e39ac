package musou

import "github.com/vovakirdan/musou/internal/core"

// Kind identifies an entity variant.
type Kind int

const (
	KindPlayer Kind = iota
	KindEnemy
	KindBomb
	KindBeam
	KindShield
	KindGravity
	KindExplosion
)

// String returns the name of the entity kind.
func (k Kind) String() string {
	switch k {
	case KindPlayer:
		return "player"
	case KindEnemy:
		return "enemy"
	case KindBomb:
		return "bomb"
	case KindBeam:
		return "beam"
	case KindShield:
		return "shield"
	case KindGravity:
		return "gravity"
	case KindExplosion:
		return "explosion"
	default:
		return "unknown"
	}
}

// Entity is the lifecycle shared by every simulated object.
// The set of implementations is closed: update is unexported.
type Entity interface {
	Kind() Kind
	Bounds() core.Box
	Alive() bool
	Kill()

	// update advances the entity by one tick.
	update(w *World)
}

// body holds the position and alive flag embedded by every variant.
type body struct {
	box  core.Box
	dead bool
}

// Bounds returns the entity's bounding box.
func (b *body) Bounds() core.Box {
	return b.box
}

// Alive reports whether the entity is still in play.
func (b *body) Alive() bool {
	return !b.dead
}

// Kill marks the entity for removal at the end of the tick.
func (b *body) Kill() {
	b.dead = true
}
