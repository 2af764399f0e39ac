package musou

import (
	"github.com/vovakirdan/musou/internal/config"
	"github.com/vovakirdan/musou/internal/core"
)

// Shield is a temporary wall in front of the player that absorbs bombs.
type Shield struct {
	body

	Angle float64
	Life  int
}

// NewShield places a shield one player size ahead of the player, rotated to
// its facing. The wall is cfg.Width thick and twice the player's width long.
func NewShield(p *Player, cfg config.ShieldConfig) *Shield {
	angle := p.FacingAngle()
	pb := p.Bounds()
	pc := pb.Center()
	origin := core.Vec{X: pc.X + pb.W*p.Facing.X, Y: pc.Y + pb.H*p.Facing.Y}
	w, h := core.RotatedExtent(cfg.Width, 2*pb.W, angle)

	return &Shield{
		body:  body{box: core.BoxAt(origin, w, h)},
		Angle: angle,
		Life:  cfg.Life,
	}
}

// Kind implements Entity.
func (s *Shield) Kind() Kind { return KindShield }

func (s *Shield) update(*World) {
	s.Life--
	if s.Life <= 0 {
		s.Kill()
	}
}

// GravityField covers the whole field and destroys every enemy and bomb that
// overlaps it while alive.
type GravityField struct {
	body

	Life int
}

// NewGravityField creates a field covering w.
func NewGravityField(w *World, cfg config.GravityConfig) *GravityField {
	return &GravityField{
		body: body{box: w.Bounds()},
		Life: cfg.Life,
	}
}

// Kind implements Entity.
func (g *GravityField) Kind() Kind { return KindGravity }

func (g *GravityField) update(*World) {
	g.Life--
	if g.Life <= 0 {
		g.Kill()
	}
}

// Explosion is a short-lived visual left where something was destroyed.
type Explosion struct {
	body

	Source     Kind
	Life       int
	frameTicks int
}

// NewExplosion centres an explosion on src, kept inside w.
func NewExplosion(w *World, src Entity, life int, cfg config.ExplosionConfig) *Explosion {
	box := core.BoxAt(src.Bounds().Center(), cfg.Width, cfg.Height)
	return &Explosion{
		body:       body{box: core.ClampInto(box, w.Width, w.Height)},
		Source:     src.Kind(),
		Life:       life,
		frameTicks: max(cfg.FrameTicks, 1),
	}
}

// Kind implements Entity.
func (x *Explosion) Kind() Kind { return KindExplosion }

// Frame returns which of the two explosion images is shown.
func (x *Explosion) Frame() int {
	return (x.Life / x.frameTicks) % 2
}

func (x *Explosion) update(*World) {
	x.Life--
	if x.Life <= 0 {
		x.Kill()
	}
}
