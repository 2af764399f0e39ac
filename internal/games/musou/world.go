package musou

import (
	"slices"

	"github.com/vovakirdan/musou/internal/core"
)

// World owns every entity collection. The scheduler holds the only World and
// hands it to the resolver and the ability controllers explicitly.
type World struct {
	Width, Height float64

	Player     *Player
	Enemies    []*Enemy
	Bombs      []*Bomb
	Beams      []*Beam
	Shields    []*Shield
	Fields     []*GravityField
	Explosions []*Explosion
}

// NewWorld creates an empty field of the given size around a player.
func NewWorld(width, height float64, player *Player) *World {
	return &World{
		Width:  width,
		Height: height,
		Player: player,
	}
}

// Bounds returns the full play field.
func (w *World) Bounds() core.Box {
	return core.Box{W: w.Width, H: w.Height}
}

// InBounds reports whether b lies fully inside the play field.
func (w *World) InBounds(b core.Box) bool {
	return core.InBounds(b, w.Width, w.Height)
}

// Each calls fn for every entity other than the player, in update order.
func (w *World) Each(fn func(Entity)) {
	for _, b := range w.Beams {
		fn(b)
	}
	for _, e := range w.Enemies {
		fn(e)
	}
	for _, b := range w.Bombs {
		fn(b)
	}
	for _, x := range w.Explosions {
		fn(x)
	}
	for _, f := range w.Fields {
		fn(f)
	}
	for _, s := range w.Shields {
		fn(s)
	}
}

// Count returns the number of entities other than the player.
func (w *World) Count() int {
	return len(w.Enemies) + len(w.Bombs) + len(w.Beams) +
		len(w.Shields) + len(w.Fields) + len(w.Explosions)
}

// update advances every live entity by one tick.
func (w *World) update() {
	w.Player.update(w)
	w.Each(func(e Entity) {
		if e.Alive() {
			e.update(w)
		}
	})
}

// sweep kills entities that left the field and drops everything dead.
// Shields and gravity fields are overlays that expire by lifetime only.
func (w *World) sweep() {
	w.Enemies = sweepOut(w, w.Enemies)
	w.Bombs = sweepOut(w, w.Bombs)
	w.Beams = sweepOut(w, w.Beams)
	w.Explosions = sweepOut(w, w.Explosions)
	w.Shields = sweepDead(w.Shields)
	w.Fields = sweepDead(w.Fields)
}

func sweepDead[T Entity](items []T) []T {
	return slices.DeleteFunc(items, func(e T) bool {
		return !e.Alive()
	})
}

func sweepOut[T Entity](w *World, items []T) []T {
	return slices.DeleteFunc(items, func(e T) bool {
		if e.Alive() && !w.InBounds(e.Bounds()) {
			e.Kill()
		}
		return !e.Alive()
	})
}
