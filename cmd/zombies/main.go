// zombies is a turn-based chase played in the terminal: lure every zombie
// into a hole before one of them catches you.
//
// Usage:
//
//	zombies                  - Play a game (same as 'zombies play')
//	zombies play             - Play a game
//	zombies board            - Print a starting board and exit
//	zombies config           - Print the effective configuration
//
// Global flags:
//
//	--seed <value>       - Set RNG seed for reproducible boards
//	--config <path>      - Path to a custom zombies.yaml
//	--log-file <path>    - Write logs to a file instead of stderr
//	--log-level <level>  - debug, info, warn or error (default: warn)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagSeed     int64
	flagConfig   string
	flagLogFile  string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "zombies",
	Short: "Zombies - lure the horde into the holes",
	Long: `Zombies is a turn-based chase on a bordered grid.

Every move you make, each zombie takes one step toward you. Zombies that
step into a hole fall in and the hole is used up. Lure all of them into
holes to win; get caught and you lose.

Available commands:
  play     - Play a game (default)
  board    - Print a starting board and exit
  config   - Print the effective configuration as YAML

Examples:
  zombies
  zombies play --seed 42
  zombies board --seed 42
  zombies config --config ./my-zombies.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom zombies config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file instead of stderr")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "warn", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(boardCmd)
	rootCmd.AddCommand(configCmd)
}
