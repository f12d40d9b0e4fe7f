package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/simon-arcade/internal/config"
	"github.com/vovakirdan/simon-arcade/internal/core"
	"github.com/vovakirdan/simon-arcade/internal/games/simon"
	"github.com/vovakirdan/simon-arcade/internal/platform/tui"
	"github.com/vovakirdan/simon-arcade/internal/registry"
	"github.com/vovakirdan/simon-arcade/internal/storage"
)

var (
	flagConfig string
	flagMode   string
	flagPace   string
	flagPlayer string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a round",
	Long: `Start the game on the home screen, or straight into a round with --mode.

Controls:
  1/T        - Start text mode (answer the character shown)
  2/P        - Start position mode (answer the side it is on)
  Left/H/A   - Answer 左
  Right/L/D  - Answer 右
  Esc/B/E    - End the round and return home
  R/Enter    - Return home from the results
  Tab        - Scoreboard (home and results)
  Ctrl+S     - Save a screenshot to ~/.simon/screenshots
  Q/Ctrl+C   - Quit

Pace options:
  relaxed  - 90 second rounds, 800ms feedback
  standard - 60 second rounds, 500ms feedback
  sprint   - 30 second rounds, 300ms feedback

Examples:
  simon play
  simon play --mode text
  simon play --mode position --pace sprint
  simon play --config ./my-simon.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagMode, "mode", "", "Start directly in a mode: text, position")
	playCmd.Flags().StringVar(&flagPace, "pace", "", "Pace preset: relaxed, standard, sprint")
	playCmd.Flags().StringVar(&flagPlayer, "player", os.Getenv("USER"), "Player name stored with each round")
}

func runPlay(_ *cobra.Command, _ []string) {
	if err := applyGameSettings(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if flagMode != "" {
		mode, err := simon.ParseMode(flagMode)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		simon.SetStartMode(mode)
	}

	cfg := core.DefaultConfig()
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed

	game, err := registry.Create(simon.GameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open rounds database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	runErr := tui.Run(game, store, cfg, flagPlayer)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

// applyGameSettings hands --config and --pace to the games created next.
func applyGameSettings() error {
	pace, err := config.ParsePace(flagPace)
	if err != nil {
		return err
	}

	if flagConfig != "" {
		// Report bad files up front; the game would fall back to defaults
		if _, err := config.LoadSimon(flagConfig); err != nil {
			return err
		}
	}

	simon.SetConfigPath(flagConfig)
	simon.SetPace(pace)
	return nil
}
