package musou

import (
	"encoding/binary"
	"hash/fnv"
	"math"

	"github.com/vovakirdan/musou/internal/core"
)

// Sprite is the plain-data view of one entity handed to the presentation
// layer.
type Sprite struct {
	Kind     Kind
	Box      core.Box
	Variant  int     // Enemy look, bomb colour or explosion image
	Angle    float64 // Beam and shield rotation in degrees
	Life     int     // Remaining lifetime for timed entities
	Shielded bool
}

// PlayerSprite is the plain-data view of the player.
type PlayerSprite struct {
	Box               core.Box
	Orientation       int // 0..7, counter-clockwise from right
	Mode              Mode
	Mood              Mood
	InvulnerableTicks int
}

// Frame is everything the presentation layer needs to draw one tick.
type Frame struct {
	Tick          int
	Score         int
	Width, Height float64
	Player        PlayerSprite
	Sprites       []Sprite

	Tint      bool // EMP tint shows on this tick
	EMPActive bool
	Paused    bool
	GameOver  bool
	Ended     bool
}

// Frame returns the renderable state of the current tick. Sprites are ordered
// back to front.
func (g *Game) Frame() Frame {
	w := g.world
	p := w.Player
	f := Frame{
		Tick:   g.tick,
		Score:  g.ledger.Balance(),
		Width:  w.Width,
		Height: w.Height,
		Player: PlayerSprite{
			Box:               p.Bounds(),
			Orientation:       p.Orientation(),
			Mode:              p.Mode,
			Mood:              p.Mood,
			InvulnerableTicks: p.InvulnerableTicks,
		},
		Sprites:   make([]Sprite, 0, w.Count()),
		Tint:      g.tint,
		EMPActive: g.emp.Active,
		Paused:    g.paused,
		GameOver:  g.gameOver,
		Ended:     g.ended,
	}

	for _, gf := range w.Fields {
		f.Sprites = append(f.Sprites, Sprite{Kind: KindGravity, Box: gf.Bounds(), Life: gf.Life})
	}
	for _, s := range w.Shields {
		f.Sprites = append(f.Sprites, Sprite{Kind: KindShield, Box: s.Bounds(), Angle: s.Angle, Life: s.Life})
	}
	for _, e := range w.Enemies {
		f.Sprites = append(f.Sprites, Sprite{Kind: KindEnemy, Box: e.Bounds(), Variant: e.Variant, Shielded: e.Shielded})
	}
	for _, b := range w.Bombs {
		f.Sprites = append(f.Sprites, Sprite{Kind: KindBomb, Box: b.Bounds(), Variant: b.Variant})
	}
	for _, b := range w.Beams {
		f.Sprites = append(f.Sprites, Sprite{Kind: KindBeam, Box: b.Bounds(), Angle: b.Angle})
	}
	for _, x := range w.Explosions {
		f.Sprites = append(f.Sprites, Sprite{Kind: KindExplosion, Box: x.Bounds(), Variant: x.Frame(), Life: x.Life})
	}
	return f
}

// Hash returns a digest of the frame, used to compare two runs.
func (f Frame) Hash() uint64 {
	h := fnv.New64a()
	var buf [8]byte
	putInt := func(v int) {
		binary.LittleEndian.PutUint64(buf[:], uint64(v))
		h.Write(buf[:])
	}
	putFloat := func(v float64) {
		binary.LittleEndian.PutUint64(buf[:], math.Float64bits(v))
		h.Write(buf[:])
	}
	putBox := func(b core.Box) {
		putFloat(b.X)
		putFloat(b.Y)
		putFloat(b.W)
		putFloat(b.H)
	}

	putInt(f.Tick)
	putInt(f.Score)
	putBox(f.Player.Box)
	putInt(f.Player.Orientation)
	putInt(int(f.Player.Mode))
	putInt(f.Player.InvulnerableTicks)
	for _, s := range f.Sprites {
		putInt(int(s.Kind))
		putBox(s.Box)
		putInt(s.Variant)
		putFloat(s.Angle)
		putInt(s.Life)
	}
	return h.Sum64()
}
