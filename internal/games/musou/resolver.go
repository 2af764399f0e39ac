package musou

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/musou/internal/config"
)

// Outcome summarises what one resolver pass did.
type Outcome struct {
	EnemiesDestroyed int
	BombsDestroyed   int
	ScoreDelta       int
	PlayerHit        bool
}

// Resolver applies the interaction rules between entity groups.
type Resolver struct {
	scoring   config.ScoringConfig
	explosion config.ExplosionConfig
	cheer     int
	logger    *log.Logger
}

// NewResolver creates a resolver with the given rewards and explosion visuals.
func NewResolver(cfg config.MusouConfig, logger *log.Logger) *Resolver {
	return &Resolver{
		scoring:   cfg.Scoring,
		explosion: cfg.Explosion,
		cheer:     cfg.Player.CheerTicks,
		logger:    logger,
	}
}

// Resolve checks every group pair in a fixed order:
// enemy×beam, bomb×beam, bomb×shield, player×bomb, enemy×gravity, bomb×gravity.
// Entities killed by an earlier rule take no further part in the pass.
// A player hit ends the pass immediately.
func (r *Resolver) Resolve(w *World, ledger *Ledger) Outcome {
	var out Outcome
	credit := func(n int) {
		ledger.Add(n)
		out.ScoreDelta += n
	}

	// Enemy × Beam: each beam is consumed by the first enemy it touches.
	for _, e := range w.Enemies {
		for _, b := range w.Beams {
			if !e.Alive() {
				break
			}
			if !b.Alive() || !e.Bounds().Intersects(b.Bounds()) {
				continue
			}
			b.Kill()
			if e.Hit() {
				e.Kill()
				r.explode(w, e)
				credit(r.scoring.EnemyBeam)
				out.EnemiesDestroyed++
				w.Player.Cheer(r.cheer)
			}
		}
	}

	// Bomb × Beam: both destroyed.
	for _, bomb := range w.Bombs {
		for _, b := range w.Beams {
			if !bomb.Alive() {
				break
			}
			if !b.Alive() || !bomb.Bounds().Intersects(b.Bounds()) {
				continue
			}
			b.Kill()
			bomb.Kill()
			r.explode(w, bomb)
			credit(r.scoring.BombBeam)
			out.BombsDestroyed++
		}
	}

	// Bomb × Shield: the shield absorbs one bomb.
	for _, bomb := range w.Bombs {
		for _, s := range w.Shields {
			if !bomb.Alive() {
				break
			}
			if !s.Alive() || !bomb.Bounds().Intersects(s.Bounds()) {
				continue
			}
			s.Kill()
			bomb.Kill()
			r.explode(w, bomb)
			credit(r.scoring.BombShield)
			out.BombsDestroyed++
		}
	}

	// Player × Bomb
	p := w.Player
	for _, bomb := range w.Bombs {
		if !bomb.Alive() || !p.Bounds().Intersects(bomb.Bounds()) {
			continue
		}
		bomb.Kill()
		if !p.Invulnerable() {
			p.Hurt()
			out.PlayerHit = true
			r.logger.Debug("player hit", "x", p.Bounds().X, "y", p.Bounds().Y)
			return out
		}
		r.explode(w, bomb)
		credit(r.scoring.BombHyper)
		out.BombsDestroyed++
	}

	// Gravity fields persist while destroying what they overlap.
	for _, f := range w.Fields {
		if !f.Alive() {
			continue
		}
		for _, e := range w.Enemies {
			if !e.Alive() || !f.Bounds().Intersects(e.Bounds()) {
				continue
			}
			e.Kill()
			r.explode(w, e)
			credit(r.scoring.EnemyGravity)
			out.EnemiesDestroyed++
		}
	}
	for _, f := range w.Fields {
		if !f.Alive() {
			continue
		}
		for _, bomb := range w.Bombs {
			if !bomb.Alive() || !f.Bounds().Intersects(bomb.Bounds()) {
				continue
			}
			bomb.Kill()
			r.explode(w, bomb)
			credit(r.scoring.BombGravity)
			out.BombsDestroyed++
		}
	}

	return out
}

func (r *Resolver) explode(w *World, src Entity) {
	life := r.explosion.BombLife
	if src.Kind() == KindEnemy {
		life = r.explosion.EnemyLife
	}
	w.Explosions = append(w.Explosions, NewExplosion(w, src, life, r.explosion))
}
