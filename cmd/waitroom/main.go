// waitroom is a waiting-room mini-game arcade for the terminal.
//
// Usage:
//
//	waitroom list              - List available games
//	waitroom play [game]       - Play locally, optionally mirrored over HTTP
//	waitroom serve             - Start SSH server for remote play
//	waitroom render <game>     - Run a game headless and save a frame as PNG
//	waitroom history           - Show recorded session transitions
//
// Global flags:
//
//	--config <path>     - Config file (default: ~/.waitroom/config.yaml)
//	--fps <rate>        - Override the display refresh rate
//	--seed <value>      - Set RNG seed for reproducible gameplay
//	--db <path>         - Set journal path (default: ~/.waitroom/journal.db)
//	--log-level <level> - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/waitroom/internal/games/gridsnake"
	_ "github.com/vovakirdan/waitroom/internal/games/jump"
	_ "github.com/vovakirdan/waitroom/internal/games/paddleball"
)

var (
	// Global flags
	flagConfig   string
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "waitroom",
	Short: "Waitroom - mini-games for while you wait",
	Long: `Waitroom is a tiny arcade of mini-games meant to pass the time while
something else is loading.

Available commands:
  list     - Show all available games
  play     - Play in this terminal
  serve    - Start SSH server for remote play
  render   - Save a frame of a headless run as PNG
  history  - Show recorded session transitions

Examples:
  waitroom list
  waitroom play grid-snake
  waitroom play --http :8080
  waitroom serve --ssh :2222
  waitroom render paddle-ball --ticks 120 --out ball.png`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Display refresh rate (0 = from config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.waitroom/journal.db", "Path to journal database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level (default from config)")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(renderCmd)
	rootCmd.AddCommand(historyCmd)
}
