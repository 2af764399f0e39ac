package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/musou/internal/config"
	"github.com/vovakirdan/musou/internal/core"
	"github.com/vovakirdan/musou/internal/games/musou"
	"github.com/vovakirdan/musou/internal/platform/tui"
	"github.com/vovakirdan/musou/internal/registry"
)

var (
	flagConfig     string
	flagDifficulty string
	flagLog        string
)

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Play in this terminal",
	Long: `Start a game in this terminal. The game defaults to musou.

Controls:
  Arrows         - Move (hold)
  Shift+Arrows   - Move at boost speed
  Space          - Fire a beam
  B              - Fire a spread of beams
  S              - Shield (costs 50, always granted)
  Enter          - Gravity well (costs 200)
  H              - Hyper mode, bombs cannot hurt you (costs 100)
  E              - Toggle EMP, enemies stop bombing (costs 20 to start)
  P/Esc          - Pause
  R              - Restart (after game over)
  Q/Ctrl+C       - Quit

Difficulty options:
  easy   - More starting score, fewer shielded enemies
  normal - Spawns speed up and bombs get faster over time
  hard   - Less starting score, more shielded enemies
  fixed  - No progression (the default config behaviour)

Examples:
  musou play
  musou play --difficulty hard
  musou play --config ./my-musou.yaml --log ./musou.log`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	playCmd.Flags().StringVar(&flagLog, "log", "", "Write a debug log of gameplay events to this file")
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := musou.GameID
	if len(args) == 1 {
		gameID = args[0]
	}

	// Check if game exists
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'musou list' to see available games.")
		os.Exit(1)
	}

	gameCfg, err := prepareGame()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger, closeLog, err := openGameLog(flagLog)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()
	musou.SetLogger(logger)

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	state, runErr := tui.Run(game, cfg, tui.Options{
		HoldTicks: gameCfg.Input.HoldTicks,
		Logger:    logger,
	})
	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}

	fmt.Printf("Final score: %d\n", state.Score)
}

// prepareGame validates the config and difficulty flags and hands them to
// the game package, which loads them again on every reset.
func prepareGame() (config.MusouConfig, error) {
	if flagDifficulty != "" && config.ParsePreset(flagDifficulty) == "" {
		return config.MusouConfig{}, fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", flagDifficulty)
	}

	cfg, err := config.LoadMusou(flagConfig)
	if err != nil {
		return config.MusouConfig{}, fmt.Errorf("load config: %w", err)
	}

	musou.SetConfigPath(flagConfig)
	musou.SetDifficultyPreset(flagDifficulty)
	return cfg, nil
}

// openGameLog returns a debug logger writing to path, or nil when path is
// empty so the game discards its events.
func openGameLog(path string) (*log.Logger, func(), error) {
	if path == "" {
		return nil, func() {}, nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}

	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "musou",
		Level:           log.DebugLevel,
	})
	return logger, func() { f.Close() }, nil
}
