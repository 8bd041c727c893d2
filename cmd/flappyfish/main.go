// flappyfish is a terminal arcade game: swim a fish through gaps in the coral.
//
// Usage:
//
//	flappyfish               - Play (same as "flappyfish play")
//	flappyfish play          - Play the game
//	flappyfish best          - Show the best score
//	flappyfish best --reset  - Forget the best score
//	flappyfish config        - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: from config)
//	--seed <value>       - Set RNG seed for reproducible gameplay
//	--db <path>          - Set database path (default: XDG data dir)
//	--config <path>      - Use a custom config YAML
//	--log-level <level>  - debug, info, warn or error
//	--log-file <path>    - Set log file (default: XDG state dir)
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/flappy-fish/internal/logging"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagConfig   string
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "flappyfish",
	Short: "Flappy Fish - swim through the coral in your terminal",
	Long: `Flappy Fish is a one-button arcade game for the terminal.
Tap to swim up, slip through the gaps in the coral, and beat your best score.

Available commands:
  play     - Play the game (default)
  best     - Show or reset the best score
  config   - Print the effective configuration

Examples:
  flappyfish
  flappyfish play --seed 42
  flappyfish best
  flappyfish config > ~/.config/flappyfish/fish.yaml`,
	Run: runPlay,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate in frames per second (0 = from config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to best-score database (default: XDG data dir)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Path to log file (default: XDG state dir)")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(bestCmd)
	rootCmd.AddCommand(configCmd)
}

// openLogger sets up file logging. Failures are reported and logging is
// disabled; the game still runs.
func openLogger() (*log.Logger, io.Closer) {
	logger, closer, err := logging.Open(flagLogFile, flagLogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: logging disabled: %v\n", err)
		return logging.Discard(), io.NopCloser(nil)
	}
	return logger, closer
}
