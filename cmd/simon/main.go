// simon is a Simon effect reaction game for the terminal.
//
// Usage:
//
//	simon play               - Play a round locally
//	simon serve              - Start SSH server for remote play
//	simon scores [mode]      - Show the leaderboard for a mode
//	simon stats              - Show aggregate statistics per mode
//	simon modes              - List the game modes
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible challenges
//	--db <path>     - Set database path (default: ~/.simon/rounds.db)
//
// SIMON_DB and SIMON_CONFIG, from the environment or a .env file, supply
// defaults for --db and --config.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/simon-arcade/internal/games/simon"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "simon",
	Short: "Simon - a Simon effect reaction game in your terminal",
	Long: `Simon shows 左 (left) or 右 (right) on one side of the screen.
In text mode you answer with the character shown; in position mode
you answer with the side it appeared on. Rounds last 60 seconds.

Available commands:
  play     - Play a round locally
  serve    - Start SSH server for remote play
  scores   - View the leaderboard
  stats    - View aggregate statistics

Examples:
  simon play
  simon play --mode position --pace sprint
  simon serve --ssh :2222
  simon scores text`,
	SilenceUsage:      true,
	PersistentPreRunE: applyEnv,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.simon/rounds.db", "Path to rounds database")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(modesCmd)
}

// applyEnv loads .env and fills flags the user did not set from SIMON_*.
func applyEnv(cmd *cobra.Command, _ []string) error {
	// A missing .env file is fine
	_ = godotenv.Load()

	if v := os.Getenv("SIMON_DB"); v != "" && !cmd.Flags().Changed("db") {
		flagDBPath = v
	}
	if v := os.Getenv("SIMON_CONFIG"); v != "" && !cmd.Flags().Changed("config") {
		flagConfig = v
	}
	if flagFPS <= 0 {
		return fmt.Errorf("--fps must be positive, got %d", flagFPS)
	}
	return nil
}
