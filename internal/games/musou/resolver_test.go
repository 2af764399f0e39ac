package musou

import (
	"io"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/musou/internal/config"
	"github.com/vovakirdan/musou/internal/core"
)

func newTestWorld() *World {
	cfg := config.DefaultMusouConfig()
	return NewWorld(cfg.World.Width, cfg.World.Height, NewPlayer(cfg.Player))
}

func newTestResolver() *Resolver {
	return NewResolver(config.DefaultMusouConfig(), log.New(io.Discard))
}

func enemyAt(x, y float64) *Enemy {
	return &Enemy{body: body{box: core.Box{X: x, Y: y, W: 64, H: 48}}, Durability: 1}
}

func bombAt(x, y float64) *Bomb {
	return &Bomb{body: body{box: core.Box{X: x, Y: y, W: 20, H: 20}}, Speed: 6}
}

func beamAt(x, y float64) *Beam {
	return &Beam{body: body{box: core.Box{X: x, Y: y, W: 40, H: 12}}, Speed: 10}
}

func TestResolveEnemyBeam(t *testing.T) {
	w := newTestWorld()
	e := enemyAt(100, 100)
	b := beamAt(110, 110)
	w.Enemies = append(w.Enemies, e)
	w.Beams = append(w.Beams, b)
	ledger := NewLedger(1000)

	out := newTestResolver().Resolve(w, ledger)

	if e.Alive() || b.Alive() {
		t.Error("enemy and beam should both be destroyed")
	}
	if ledger.Balance() != 1010 || out.ScoreDelta != 10 {
		t.Errorf("balance = %d delta = %d, expected 1010 and 10", ledger.Balance(), out.ScoreDelta)
	}
	if out.EnemiesDestroyed != 1 {
		t.Errorf("EnemiesDestroyed = %d, expected 1", out.EnemiesDestroyed)
	}
	if len(w.Explosions) != 1 || w.Explosions[0].Life != 100 {
		t.Errorf("expected one enemy explosion with life 100, got %d", len(w.Explosions))
	}
	if w.Player.Mood != MoodCheer {
		t.Error("player should cheer after destroying an enemy")
	}
}

func TestResolveShieldedEnemySurvivesOneExtraHit(t *testing.T) {
	w := newTestWorld()
	e := enemyAt(100, 100)
	e.Shielded = true
	first := beamAt(110, 110)
	w.Enemies = append(w.Enemies, e)
	w.Beams = append(w.Beams, first)
	ledger := NewLedger(1000)
	r := newTestResolver()

	r.Resolve(w, ledger)
	if !e.Alive() {
		t.Fatal("shielded enemy should survive the first beam")
	}
	if first.Alive() {
		t.Error("the beam should be consumed by the shield")
	}
	if ledger.Balance() != 1000 {
		t.Errorf("balance = %d, expected no reward for breaking a shield", ledger.Balance())
	}

	w.Beams = append(w.Beams, beamAt(110, 110))
	r.Resolve(w, ledger)
	if e.Alive() {
		t.Error("enemy should die on the second beam")
	}
	if ledger.Balance() != 1010 {
		t.Errorf("balance = %d, expected 1010", ledger.Balance())
	}
}

func TestResolveBeamConsumesAtMostOneTarget(t *testing.T) {
	w := newTestWorld()
	// Two enemies and a bomb all overlapping a single beam.
	e1, e2 := enemyAt(100, 100), enemyAt(120, 100)
	bomb := bombAt(130, 105)
	b := beamAt(125, 110)
	w.Enemies = append(w.Enemies, e1, e2)
	w.Bombs = append(w.Bombs, bomb)
	w.Beams = append(w.Beams, b)
	ledger := NewLedger(0)

	out := newTestResolver().Resolve(w, ledger)

	if out.EnemiesDestroyed+out.BombsDestroyed != 1 {
		t.Errorf("beam destroyed %d targets, expected exactly 1", out.EnemiesDestroyed+out.BombsDestroyed)
	}
	if e1.Alive() || !e2.Alive() || !bomb.Alive() {
		t.Error("only the first enemy in iteration order should be destroyed")
	}
	if ledger.Balance() != 10 {
		t.Errorf("balance = %d, expected 10", ledger.Balance())
	}
}

func TestResolveTwoBeamsOneEnemy(t *testing.T) {
	w := newTestWorld()
	e := enemyAt(100, 100)
	b1, b2 := beamAt(110, 110), beamAt(110, 120)
	w.Enemies = append(w.Enemies, e)
	w.Beams = append(w.Beams, b1, b2)
	ledger := NewLedger(0)

	newTestResolver().Resolve(w, ledger)

	if ledger.Balance() != 10 {
		t.Errorf("balance = %d, expected 10 for a single kill", ledger.Balance())
	}
	if b1.Alive() {
		t.Error("first beam should be consumed")
	}
	if !b2.Alive() {
		t.Error("second beam should survive once the enemy is gone")
	}
}

func TestResolveBombBeam(t *testing.T) {
	w := newTestWorld()
	bomb := bombAt(300, 300)
	b := beamAt(290, 305)
	w.Bombs = append(w.Bombs, bomb)
	w.Beams = append(w.Beams, b)
	ledger := NewLedger(1000)

	out := newTestResolver().Resolve(w, ledger)

	if bomb.Alive() || b.Alive() {
		t.Error("bomb and beam should both be destroyed")
	}
	if ledger.Balance() != 1001 || out.BombsDestroyed != 1 {
		t.Errorf("balance = %d bombs = %d, expected 1001 and 1", ledger.Balance(), out.BombsDestroyed)
	}
	if len(w.Explosions) != 1 || w.Explosions[0].Life != 50 {
		t.Error("expected one bomb explosion with life 50")
	}
}

func TestResolveBombShield(t *testing.T) {
	w := newTestWorld()
	bomb := bombAt(300, 300)
	s := &Shield{body: body{box: core.Box{X: 305, Y: 280, W: 20, H: 108}}, Life: 400}
	w.Bombs = append(w.Bombs, bomb)
	w.Shields = append(w.Shields, s)
	ledger := NewLedger(1000)

	newTestResolver().Resolve(w, ledger)

	if bomb.Alive() || s.Alive() {
		t.Error("the shield should absorb the bomb and both should be destroyed")
	}
	if ledger.Balance() != 1001 {
		t.Errorf("balance = %d, expected 1001", ledger.Balance())
	}
	if len(w.Explosions) != 1 {
		t.Errorf("len(Explosions) = %d, expected 1", len(w.Explosions))
	}
}

func TestResolveEarlierRuleWins(t *testing.T) {
	w := newTestWorld()
	// The bomb overlaps a beam and a shield; the beam rule runs first.
	bomb := bombAt(300, 300)
	b := beamAt(290, 305)
	s := &Shield{body: body{box: core.Box{X: 305, Y: 280, W: 20, H: 108}}, Life: 400}
	w.Bombs = append(w.Bombs, bomb)
	w.Beams = append(w.Beams, b)
	w.Shields = append(w.Shields, s)
	ledger := NewLedger(0)

	newTestResolver().Resolve(w, ledger)

	if ledger.Balance() != 1 {
		t.Errorf("balance = %d, expected the bomb to be counted once", ledger.Balance())
	}
	if !s.Alive() {
		t.Error("shield should not be spent on an already destroyed bomb")
	}
}

func TestResolvePlayerBomb(t *testing.T) {
	t.Run("normal", func(t *testing.T) {
		w := newTestWorld()
		pb := w.Player.Bounds()
		bomb := bombAt(pb.X+10, pb.Y+10)
		w.Bombs = append(w.Bombs, bomb)
		ledger := NewLedger(1000)

		out := newTestResolver().Resolve(w, ledger)

		if !out.PlayerHit {
			t.Error("PlayerHit should be set")
		}
		if w.Player.Mood != MoodHurt {
			t.Error("player should look hurt")
		}
		if ledger.Balance() != 1000 {
			t.Errorf("balance = %d, expected unchanged 1000", ledger.Balance())
		}
	})

	t.Run("invulnerable", func(t *testing.T) {
		w := newTestWorld()
		w.Player.SetMode(ModeInvulnerable, 500)
		pb := w.Player.Bounds()
		bomb := bombAt(pb.X+10, pb.Y+10)
		w.Bombs = append(w.Bombs, bomb)
		ledger := NewLedger(1000)

		out := newTestResolver().Resolve(w, ledger)

		if out.PlayerHit {
			t.Error("invulnerable player should not be hit")
		}
		if bomb.Alive() {
			t.Error("bomb should be destroyed")
		}
		if ledger.Balance() != 1001 {
			t.Errorf("balance = %d, expected 1001", ledger.Balance())
		}
	})
}

func TestResolveGravityFieldIsNonConsuming(t *testing.T) {
	w := newTestWorld()
	f := NewGravityField(w, config.DefaultMusouConfig().Gravity)
	e1, e2 := enemyAt(100, 0), enemyAt(700, 200)
	e2.Shielded = true
	bomb := bombAt(500, 500)
	w.Fields = append(w.Fields, f)
	w.Enemies = append(w.Enemies, e1, e2)
	w.Bombs = append(w.Bombs, bomb)
	ledger := NewLedger(800)

	out := newTestResolver().Resolve(w, ledger)

	if e1.Alive() || e2.Alive() || bomb.Alive() {
		t.Error("everything under the field should be destroyed, shields included")
	}
	if !f.Alive() {
		t.Error("the field should persist")
	}
	if ledger.Balance() != 820 {
		t.Errorf("balance = %d, expected 820 (two enemies, bomb unscored)", ledger.Balance())
	}
	if out.EnemiesDestroyed != 2 || out.BombsDestroyed != 1 {
		t.Errorf("destroyed %d enemies %d bombs, expected 2 and 1", out.EnemiesDestroyed, out.BombsDestroyed)
	}
	if len(w.Explosions) != 3 {
		t.Errorf("len(Explosions) = %d, expected 3", len(w.Explosions))
	}
}

func TestExplosionClampedAndAnimated(t *testing.T) {
	w := newTestWorld()
	cfg := config.DefaultMusouConfig().Explosion
	x := NewExplosion(w, enemyAt(0, 0), 100, cfg)

	if !w.InBounds(x.Bounds()) {
		t.Errorf("explosion box %v should be clamped into the field", x.Bounds())
	}

	frames := map[int]bool{}
	for x.Alive() {
		frames[x.Frame()] = true
		x.update(w)
	}
	if !frames[0] || !frames[1] {
		t.Error("explosion should alternate between both images")
	}
	if x.Life != 0 {
		t.Errorf("Life = %d, expected 0 at expiry", x.Life)
	}
}

func TestWorldSweep(t *testing.T) {
	w := newTestWorld()
	inside := bombAt(500, 500)
	outside := bombAt(1095, 500)
	dead := beamAt(100, 100)
	dead.Kill()
	s := &Shield{body: body{box: core.Box{X: 1090, Y: 0, W: 20, H: 108}}, Life: 10}
	w.Bombs = append(w.Bombs, inside, outside)
	w.Beams = append(w.Beams, dead)
	w.Shields = append(w.Shields, s)

	w.sweep()

	if len(w.Bombs) != 1 || w.Bombs[0] != inside {
		t.Error("only the bomb inside the field should remain")
	}
	if len(w.Beams) != 0 {
		t.Error("dead beams should be swept")
	}
	if len(w.Shields) != 1 {
		t.Error("shields expire by lifetime only")
	}
}
