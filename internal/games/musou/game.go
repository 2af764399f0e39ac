// Package musou implements a top-down arcade shooter.
// The player's ship dodges descending enemies and their bombs, fires beams,
// and spends its score on abilities: shield, gravity well, hyper mode and an
// electromagnetic pulse. The package is a pure simulation; the platform layer
// feeds it input and draws its frames.
package musou

import (
	"io"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/musou/internal/config"
	"github.com/vovakirdan/musou/internal/core"
	"github.com/vovakirdan/musou/internal/registry"
)

// GameID is the registry identifier of the shooter.
const GameID = "musou"

// configPath stores the custom config path set via CLI
var configPath string
var difficultyPreset config.DifficultyPreset

var logger = log.New(io.Discard)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParsePreset(preset)
}

// SetLogger sets the logger used for gameplay events. Nil discards them.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	logger = l
}

// Game is the frame scheduler. It owns the world and every controller and
// advances them in a fixed order each tick.
type Game struct {
	runtime core.RuntimeConfig
	cfg     config.MusouConfig
	fixed   *config.MusouConfig // Used instead of loading when set

	rng        *rand.Rand
	world      *World
	ledger     *Ledger
	emp        *EMP
	resolver   *Resolver
	difficulty *config.DifficultyManager
	logger     *log.Logger

	tick      int
	nextSpawn int
	tint      bool
	last      Outcome

	paused    bool
	gameOver  bool
	ended     bool
	overTicks int // Ticks left on the final frame
}

// New creates a new shooter instance that loads its config on Reset.
func New() *Game {
	return &Game{}
}

// NewWithConfig creates a shooter that always uses cfg.
func NewWithConfig(cfg config.MusouConfig) *Game {
	return &Game{fixed: &cfg}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return GameID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Musou Kokaton"
}

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.logger = logger

	var cfg config.MusouConfig
	if g.fixed != nil {
		cfg = *g.fixed
	} else {
		var err error
		cfg, err = config.LoadMusou(configPath)
		if err != nil {
			g.logger.Warn("config load failed, using defaults", "err", err)
			cfg = config.DefaultMusouConfig()
		}
		if difficultyPreset != "" {
			config.ApplyMusouPreset(&cfg, difficultyPreset)
		}
	}
	g.cfg = cfg

	g.rng = rand.New(rand.NewSource(runtime.Seed))
	g.difficulty = config.NewDifficultyManager(cfg.Difficulty)
	g.world = NewWorld(cfg.World.Width, cfg.World.Height, NewPlayer(cfg.Player))
	g.ledger = NewLedger(cfg.Scoring.Start)
	g.emp = NewEMP(cfg.EMP, cfg.Enemy, g.rng)
	g.resolver = NewResolver(cfg, g.logger)

	g.tick = 0
	g.nextSpawn = 0
	g.tint = false
	g.last = Outcome{}
	g.paused = false
	g.gameOver = false
	g.ended = false
	g.overTicks = 0
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.gameOver {
		if in.Has(core.ActionRestart) {
			g.Reset(g.runtime)
			return core.StepResult{State: g.State()}
		}
		if g.overTicks > 0 {
			g.overTicks--
		}
		if g.overTicks == 0 {
			g.ended = true
		}
		return core.StepResult{State: g.State()}
	}

	// Handle pause toggle
	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}

	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.abilities(in)
	g.spawnEnemies()
	g.dropBombs()

	g.last = g.resolver.Resolve(g.world, g.ledger)
	if g.last.EnemiesDestroyed > 0 || g.last.BombsDestroyed > 0 {
		g.logger.Debug("collisions",
			"tick", g.tick,
			"enemies", g.last.EnemiesDestroyed,
			"bombs", g.last.BombsDestroyed,
			"delta", g.last.ScoreDelta,
			"score", g.ledger.Balance())
	}

	g.physics(in)

	if g.last.PlayerHit {
		g.gameOver = true
		g.overTicks = g.pauseTicks()
		if g.overTicks == 0 {
			g.ended = true
		}
		g.logger.Info("game over", "tick", g.tick, "score", g.ledger.Balance())
	}

	g.tick++
	return core.StepResult{State: g.State()}
}

// abilities handles activation requests in a fixed order:
// fire, shield, gravity, hyper, EMP.
func (g *Game) abilities(in core.InputFrame) {
	w, p := g.world, g.world.Player

	if in.Has(core.ActionFire) {
		g.fire(in.IsHeld(core.ActionSpread))
	}

	// The shield has no balance gate and may drive the score negative.
	if in.Has(core.ActionShield) {
		g.ledger.Charge(g.cfg.Shield.Cost)
		w.Shields = append(w.Shields, NewShield(p, g.cfg.Shield))
		g.logger.Debug("shield", "tick", g.tick, "score", g.ledger.Balance())
	}

	if in.Has(core.ActionGravity) {
		if g.ledger.Spend(g.cfg.Gravity.Cost) {
			w.Fields = append(w.Fields, NewGravityField(w, g.cfg.Gravity))
			g.logger.Debug("gravity", "tick", g.tick, "score", g.ledger.Balance())
		} else {
			g.reject("gravity", g.cfg.Gravity.Cost)
		}
	}

	if in.Has(core.ActionHyper) {
		if g.ledger.Spend(g.cfg.Hyper.Cost) {
			p.SetMode(ModeInvulnerable, g.cfg.Hyper.Duration)
			g.logger.Debug("hyper", "tick", g.tick, "score", g.ledger.Balance())
		} else {
			g.reject("hyper", g.cfg.Hyper.Cost)
		}
	}

	if in.Has(core.ActionEMP) {
		switch {
		case g.emp.Active:
			g.emp.Deactivate(w)
			g.logger.Debug("emp off", "tick", g.tick)
		case g.ledger.Spend(g.cfg.EMP.Cost):
			g.emp.Activate(w)
			g.logger.Debug("emp on", "tick", g.tick, "score", g.ledger.Balance())
		default:
			g.reject("emp", g.cfg.EMP.Cost)
		}
	}
}

// fire emits a single beam, or a spread when the modifier is held.
func (g *Game) fire(spread bool) {
	w, p := g.world, g.world.Player
	if spread {
		neo, err := NewNeoBeam(p, g.cfg.Beam.SpreadCount, g.cfg.Beam)
		if err == nil {
			w.Beams = append(w.Beams, neo.Beams()...)
			return
		}
		g.logger.Warn("spread rejected", "err", err)
	}
	w.Beams = append(w.Beams, NewBeam(p, 0, g.cfg.Beam))
}

func (g *Game) reject(ability string, cost int) {
	g.logger.Debug("ability rejected",
		"ability", ability,
		"cost", cost,
		"score", g.ledger.Balance())
}

// spawnEnemies adds an enemy whenever the spawn interval has elapsed.
func (g *Game) spawnEnemies() {
	if g.tick < g.nextSpawn {
		return
	}
	e := NewEnemy(g.cfg.Enemy, g.world.Width, g.world.Height, g.rng)
	if g.emp.Active {
		g.emp.Suppress(e)
	}
	g.world.Enemies = append(g.world.Enemies, e)

	interval := g.difficulty.SpawnInterval(g.cfg.World.SpawnInterval, g.ledger.Balance(), g.tick)
	g.nextSpawn = g.tick + max(interval, 1)
}

// dropBombs releases a bomb from every holding enemy whose interval divides
// the current tick.
func (g *Game) dropBombs() {
	w := g.world
	speed := g.difficulty.BombSpeed(g.cfg.Bomb.Speed, g.ledger.Balance(), g.tick)
	for _, e := range w.Enemies {
		if e.CanDrop(g.tick) {
			w.Bombs = append(w.Bombs, NewBomb(e, w.Player.Bounds(), speed, g.cfg.Bomb, g.rng))
		}
	}
}

// physics moves the player, advances every entity and removes what left the
// field or expired.
func (g *Game) physics(in core.InputFrame) {
	w := g.world

	var dirs []core.Vec
	if in.IsHeld(core.ActionUp) {
		dirs = append(dirs, DirUp)
	}
	if in.IsHeld(core.ActionDown) {
		dirs = append(dirs, DirDown)
	}
	if in.IsHeld(core.ActionLeft) {
		dirs = append(dirs, DirLeft)
	}
	if in.IsHeld(core.ActionRight) {
		dirs = append(dirs, DirRight)
	}
	w.Player.Move(dirs, w.Width, w.Height)
	w.Player.SetBoost(in.IsHeld(core.ActionBoost))

	w.update()
	g.tint = g.emp.Update()
	w.sweep()
}

// pauseTicks returns how long the final frame stays up.
func (g *Game) pauseTicks() int {
	rate := g.runtime.TickRate
	if rate <= 0 {
		rate = g.cfg.World.TickRate
	}
	return int(g.cfg.World.GameOverPause * float64(rate))
}

// Tick returns the number of simulated ticks since the last reset.
func (g *Game) Tick() int {
	return g.tick
}

// LastOutcome returns what the resolver did on the most recent tick.
func (g *Game) LastOutcome() Outcome {
	return g.last
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.ledger == nil {
		return core.GameState{}
	}
	return core.GameState{
		Score:    g.ledger.Balance(),
		GameOver: g.gameOver,
		Paused:   g.paused,
		Ended:    g.ended,
	}
}

// Register the game with the registry
func init() {
	registry.Register(GameID, func() registry.Game {
		return New()
	})
}
