// musou is a terminal arcade shooter: dodge descending enemies and their
// bombs, shoot them down, and spend your score on shields, gravity wells,
// hyper mode and electromagnetic pulses.
//
// Usage:
//
//	musou play               - Play in this terminal
//	musou serve              - Start SSH server for remote play
//	musou list               - List available games
//	musou config             - Print the default config
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 50)
//	--seed <value>  - Set RNG seed for reproducible gameplay
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/musou/internal/games/musou"
)

var (
	// Global flags
	flagFPS  int
	flagSeed int64
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "musou",
	Short: "Musou Kokaton - a terminal arcade shooter",
	Long: `Musou Kokaton is a top-down shooter that runs in your terminal.

Available commands:
  play     - Play in this terminal
  serve    - Start SSH server for remote play
  list     - Show all available games
  config   - Print the default configuration

Examples:
  musou play
  musou play --difficulty hard
  musou serve --ssh :2222
  musou config > ~/.musou/configs/musou.yaml`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 50, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(configCmd)
}
