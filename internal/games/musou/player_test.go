package musou

import (
	"testing"

	"github.com/vovakirdan/musou/internal/config"
	"github.com/vovakirdan/musou/internal/core"
)

func newTestPlayer() *Player {
	return NewPlayer(config.DefaultMusouConfig().Player)
}

func TestNewPlayer(t *testing.T) {
	p := newTestPlayer()

	c := p.Bounds().Center()
	if c.X != 900 || c.Y != 400 {
		t.Errorf("center = %v, expected (900, 400)", c)
	}
	if p.Facing != DirRight {
		t.Errorf("Facing = %v, expected right", p.Facing)
	}
	if p.Speed != 10 {
		t.Errorf("Speed = %f, expected 10", p.Speed)
	}
	if p.Mode != ModeNormal {
		t.Errorf("Mode = %v, expected normal", p.Mode)
	}
}

func TestPlayerMoveSumsDirections(t *testing.T) {
	p := newTestPlayer()
	start := p.Bounds()

	p.Move([]core.Vec{DirRight, DirDown}, 1100, 650)

	got := p.Bounds()
	if got.X != start.X+10 || got.Y != start.Y+10 {
		t.Errorf("box = (%f, %f), expected (%f, %f)", got.X, got.Y, start.X+10, start.Y+10)
	}
	if p.Facing != (core.Vec{X: 1, Y: 1}) {
		t.Errorf("Facing = %v, expected (1, 1)", p.Facing)
	}
}

func TestPlayerMoveRevertsOutOfBounds(t *testing.T) {
	cfg := config.DefaultMusouConfig().Player
	cfg.X = 1100 - cfg.Width/2 // flush with the right edge
	p := NewPlayer(cfg)
	p.Facing = DirUp
	start := p.Bounds()

	p.Move([]core.Vec{DirRight}, 1100, 650)

	if p.Bounds() != start {
		t.Errorf("box = %v, expected unchanged %v", p.Bounds(), start)
	}
	if p.Facing != DirRight {
		t.Errorf("Facing = %v, expected right even when blocked", p.Facing)
	}
}

func TestPlayerMoveZeroNetKeepsFacing(t *testing.T) {
	p := newTestPlayer()
	p.Facing = DirUp
	start := p.Bounds()

	p.Move([]core.Vec{DirLeft, DirRight}, 1100, 650)

	if p.Bounds() != start {
		t.Error("opposite directions should cancel out")
	}
	if p.Facing != DirUp {
		t.Errorf("Facing = %v, expected up", p.Facing)
	}
}

func TestPlayerBoost(t *testing.T) {
	p := newTestPlayer()

	p.SetBoost(true)
	if p.Speed != 20 {
		t.Errorf("boosted Speed = %f, expected 20", p.Speed)
	}
	p.SetBoost(false)
	if p.Speed != 10 {
		t.Errorf("normal Speed = %f, expected 10", p.Speed)
	}
}

func TestPlayerOrientation(t *testing.T) {
	tests := []struct {
		facing core.Vec
		want   int
	}{
		{core.Vec{X: 1, Y: 0}, 0},
		{core.Vec{X: 1, Y: -1}, 1},
		{core.Vec{X: 0, Y: -1}, 2},
		{core.Vec{X: -1, Y: -1}, 3},
		{core.Vec{X: -1, Y: 0}, 4},
		{core.Vec{X: -1, Y: 1}, 5},
		{core.Vec{X: 0, Y: 1}, 6},
		{core.Vec{X: 1, Y: 1}, 7},
	}

	p := newTestPlayer()
	for _, tc := range tests {
		p.Facing = tc.facing
		if got := p.Orientation(); got != tc.want {
			t.Errorf("Orientation(%v) = %d, expected %d", tc.facing, got, tc.want)
		}
	}
}

func TestPlayerInvulnerabilityLastsDuration(t *testing.T) {
	p := newTestPlayer()
	p.SetMode(ModeInvulnerable, 3)

	for i := 0; i < 2; i++ {
		p.update(nil)
		if !p.Invulnerable() {
			t.Fatalf("invulnerability ended after %d ticks, expected 3", i+1)
		}
	}
	p.update(nil)
	if p.Invulnerable() {
		t.Error("invulnerability should end after 3 ticks")
	}
	if p.InvulnerableTicks != 0 {
		t.Errorf("InvulnerableTicks = %d, expected 0", p.InvulnerableTicks)
	}
}

func TestPlayerMood(t *testing.T) {
	p := newTestPlayer()

	p.Cheer(2)
	if p.Mood != MoodCheer {
		t.Fatalf("Mood = %v, expected cheer", p.Mood)
	}
	p.update(nil)
	p.update(nil)
	if p.Mood != MoodNeutral {
		t.Errorf("Mood = %v, expected neutral after cheer expires", p.Mood)
	}

	p.Hurt()
	p.Cheer(5)
	if p.Mood != MoodHurt {
		t.Error("a hurt player should not cheer")
	}
}
