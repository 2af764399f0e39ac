package musou

import (
	"errors"
	"math"

	"github.com/vovakirdan/musou/internal/config"
	"github.com/vovakirdan/musou/internal/core"
)

// ErrSpreadCount is returned when a spread shot is asked for fewer than two
// beams.
var ErrSpreadCount = errors.New("spread shot needs at least two beams")

// Beam is a straight projectile fired from the player's nose.
type Beam struct {
	body

	Dir   core.Vec
	Angle float64 // Degrees, counter-clockwise with y up
	Speed float64
}

// NewBeam fires a beam along the player's facing rotated by offset degrees.
// The beam starts one player size ahead of the player's centre.
func NewBeam(p *Player, offset float64, cfg config.BeamConfig) *Beam {
	angle := p.FacingAngle() + offset
	rad := angle * math.Pi / 180
	dir := core.Vec{X: math.Cos(rad), Y: -math.Sin(rad)}

	pb := p.Bounds()
	pc := pb.Center()
	origin := core.Vec{X: pc.X + pb.W*dir.X, Y: pc.Y + pb.H*dir.Y}
	w, h := core.RotatedExtent(cfg.Width, cfg.Height, angle)

	return &Beam{
		body:  body{box: core.BoxAt(origin, w, h)},
		Dir:   dir,
		Angle: angle,
		Speed: cfg.Speed,
	}
}

// Kind implements Entity.
func (b *Beam) Kind() Kind { return KindBeam }

func (b *Beam) update(*World) {
	b.box = b.box.Moved(b.Dir.Scale(b.Speed))
}

// NeoBeam is a fan of beams spread evenly across ±Arc degrees around the
// player's facing.
type NeoBeam struct {
	player *Player
	count  int
	arc    float64
	cfg    config.BeamConfig
}

// NewNeoBeam prepares a spread of count beams.
func NewNeoBeam(p *Player, count int, cfg config.BeamConfig) (*NeoBeam, error) {
	if count < 2 {
		return nil, ErrSpreadCount
	}
	return &NeoBeam{player: p, count: count, arc: cfg.SpreadArc, cfg: cfg}, nil
}

// Angles returns the angular offsets of each beam, from -Arc to +Arc.
func (n *NeoBeam) Angles() []float64 {
	step := 2 * n.arc / float64(n.count-1)
	angles := make([]float64, n.count)
	for i := range angles {
		angles[i] = -n.arc + float64(i)*step
	}
	return angles
}

// Beams creates one beam per angle.
func (n *NeoBeam) Beams() []*Beam {
	angles := n.Angles()
	beams := make([]*Beam, 0, len(angles))
	for _, a := range angles {
		beams = append(beams, NewBeam(n.player, a, n.cfg))
	}
	return beams
}
