package musou

import (
	"math"

	"github.com/vovakirdan/musou/internal/config"
	"github.com/vovakirdan/musou/internal/core"
)

// Mode is the player's vulnerability state.
type Mode int

const (
	ModeNormal Mode = iota
	ModeInvulnerable
)

// String returns the mode name.
func (m Mode) String() string {
	if m == ModeInvulnerable {
		return "hyper"
	}
	return "normal"
}

// Mood is the player's expression, used only for presentation.
type Mood int

const (
	MoodNeutral Mood = iota
	MoodCheer
	MoodHurt
)

// Unit directions for the four movement inputs. Y grows downward.
var (
	DirUp    = core.Vec{X: 0, Y: -1}
	DirDown  = core.Vec{X: 0, Y: 1}
	DirLeft  = core.Vec{X: -1, Y: 0}
	DirRight = core.Vec{X: 1, Y: 0}
)

// Player is the controllable ship.
type Player struct {
	body

	// Facing is the last non-zero movement direction. Each component is
	// -1, 0 or 1, which gives eight orientations.
	Facing core.Vec

	Speed             float64
	Mode              Mode
	InvulnerableTicks int
	Mood              Mood

	moodTicks  int
	baseSpeed  float64
	boostSpeed float64
}

// NewPlayer creates the player at its configured start, facing right.
func NewPlayer(cfg config.PlayerConfig) *Player {
	return &Player{
		body:       body{box: core.BoxAt(core.Vec{X: cfg.X, Y: cfg.Y}, cfg.Width, cfg.Height)},
		Facing:     DirRight,
		Speed:      cfg.Speed,
		baseSpeed:  cfg.Speed,
		boostSpeed: cfg.BoostSpeed,
	}
}

// Kind implements Entity.
func (p *Player) Kind() Kind { return KindPlayer }

// SetBoost selects the boosted or the normal speed.
func (p *Player) SetBoost(on bool) {
	if on {
		p.Speed = p.boostSpeed
	} else {
		p.Speed = p.baseSpeed
	}
}

// Move displaces the player by the sum of the given unit directions scaled by
// the current speed. A move that would leave the w×h field is reverted, but a
// non-zero sum still updates the facing.
func (p *Player) Move(dirs []core.Vec, w, h float64) {
	var sum core.Vec
	for _, d := range dirs {
		sum = sum.Add(d)
	}
	if sum.IsZero() {
		return
	}

	moved := p.box.Moved(sum.Scale(p.Speed))
	if core.InBounds(moved, w, h) {
		p.box = moved
	}
	p.Facing = sum
}

// FacingAngle returns the facing direction in degrees, counter-clockwise from
// the positive x axis with y pointing up on screen.
func (p *Player) FacingAngle() float64 {
	y := -p.Facing.Y
	if y == 0 {
		y = 0 // avoid -0, which would turn facing left into -180
	}
	return math.Atan2(y, p.Facing.X) * 180 / math.Pi
}

// Orientation returns the facing as one of eight sectors, 0 = right, counting
// counter-clockwise in 45 degree steps.
func (p *Player) Orientation() int {
	a := p.FacingAngle()
	if a < 0 {
		a += 360
	}
	return int(math.Round(a/45)) % 8
}

// SetMode switches the vulnerability mode. Invulnerability lasts exactly
// duration ticks.
func (p *Player) SetMode(m Mode, duration int) {
	p.Mode = m
	if m == ModeInvulnerable {
		p.InvulnerableTicks = duration
	} else {
		p.InvulnerableTicks = 0
	}
}

// Invulnerable reports whether bombs are absorbed instead of ending the game.
func (p *Player) Invulnerable() bool {
	return p.Mode == ModeInvulnerable
}

// Cheer shows the cheering expression for the given number of ticks.
func (p *Player) Cheer(ticks int) {
	if p.Mood == MoodHurt {
		return
	}
	p.Mood = MoodCheer
	p.moodTicks = ticks
}

// Hurt shows the hurt expression until the session ends.
func (p *Player) Hurt() {
	p.Mood = MoodHurt
	p.moodTicks = 0
}

// update counts down invulnerability and the temporary mood.
func (p *Player) update(*World) {
	if p.Mode == ModeInvulnerable {
		p.InvulnerableTicks--
		if p.InvulnerableTicks <= 0 {
			p.SetMode(ModeNormal, 0)
		}
	}
	if p.moodTicks > 0 {
		p.moodTicks--
		if p.moodTicks == 0 {
			p.Mood = MoodNeutral
		}
	}
}
