package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/simon-arcade/internal/games/simon"
	"github.com/vovakirdan/simon-arcade/internal/platform/tui"
	"github.com/vovakirdan/simon-arcade/internal/storage"
)

var (
	flagLimit       int
	flagInteractive bool
	flagClear       bool
	flagRecent      bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [mode]",
	Short: "Show the leaderboard for a mode",
	Long: `Display the best rounds for text or position mode.
With no mode, rounds from both modes are listed together.

Examples:
  simon scores
  simon scores text
  simon scores position --limit 20
  simon scores --recent
  simon scores text --interactive
  simon scores position --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVarP(&flagLimit, "limit", "n", storage.DefaultLimit, "Number of rounds to show")
	scoresCmd.Flags().BoolVarP(&flagInteractive, "interactive", "i", false, "Browse scores in the scoreboard UI")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete the stored rounds instead of listing them")
	scoresCmd.Flags().BoolVar(&flagRecent, "recent", false, "List the latest rounds of all modes instead of the best")
}

func runScores(_ *cobra.Command, args []string) {
	mode := simon.ModeNone
	if len(args) == 1 {
		m, err := simon.ParseMode(args[0])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		mode = m
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening rounds database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	switch {
	case flagClear:
		clearRounds(store, mode)
	case flagInteractive:
		browseScores(store, mode)
	case flagRecent:
		if err := printRecent(os.Stdout, store, flagLimit); err != nil {
			fmt.Fprintf(os.Stderr, "Error retrieving rounds: %v\n", err)
			os.Exit(1)
		}
	default:
		if err := printScores(os.Stdout, store, mode, flagLimit); err != nil {
			fmt.Fprintf(os.Stderr, "Error retrieving rounds: %v\n", err)
			os.Exit(1)
		}
	}
}

func printScores(w io.Writer, store *storage.Store, mode simon.Mode, limit int) error {
	rounds, err := store.TopRounds(string(mode), limit)
	if err != nil {
		return err
	}

	title := "all modes"
	if mode != simon.ModeNone {
		title = mode.Title() + " mode"
	}
	fmt.Fprintf(w, "Leaderboard - %s\n", title)
	fmt.Fprintln(w)

	if len(rounds) == 0 {
		fmt.Fprintln(w, "No rounds recorded yet.")
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Play 'simon play' to set the first score!")
		return nil
	}
	writeRounds(w, rounds)

	if mode != simon.ModeNone {
		if best, err := store.BestScore(string(mode)); err == nil {
			fmt.Fprintln(w)
			fmt.Fprintf(w, "Best: %d\n", best)
		}
	}
	return nil
}

func printRecent(w io.Writer, store *storage.Store, limit int) error {
	rounds, err := store.RecentRounds(limit)
	if err != nil {
		return err
	}

	fmt.Fprintln(w, "Recent rounds")
	fmt.Fprintln(w)

	if len(rounds) == 0 {
		fmt.Fprintln(w, "No rounds recorded yet.")
		return nil
	}
	writeRounds(w, rounds)
	return nil
}

func writeRounds(w io.Writer, rounds []storage.RoundRecord) {
	fmt.Fprintf(w, "  %-4s  %-8s  %-5s  %-7s  %-4s  %-5s  %-7s  %-12s  %s\n",
		"#", "Mode", "Score", "Answers", "Acc", "s/ans", "Best RT", "Player", "Date")
	fmt.Fprintf(w, "  %-4s  %-8s  %-5s  %-7s  %-4s  %-5s  %-7s  %-12s  %s\n",
		"-", "----", "-----", "-------", "---", "-----", "-------", "------", "----")

	for i, r := range rounds {
		best := "-"
		if r.BestReaction > 0 {
			best = fmt.Sprintf("%dms", r.BestReaction.Milliseconds())
		}
		player := r.Player
		if player == "" {
			player = "-"
		}
		fmt.Fprintf(w, "  %-4d  %-8s  %-5d  %-7d  %3d%%  %5.1f  %-7s  %-12s  %s\n",
			i+1, r.Mode, r.Score, r.Total, r.Accuracy, r.SecsPerAnswer, best, player,
			r.CreatedAt.Format("2006-01-02 15:04"))
	}
}

func browseScores(store *storage.Store, mode simon.Mode) {
	if mode == simon.ModeNone {
		mode = simon.ModeText
	}

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	if err := tui.RunScoreboard(store, mode, width, height); err != nil {
		fmt.Fprintf(os.Stderr, "Error running scoreboard: %v\n", err)
		os.Exit(1)
	}
}

func clearRounds(store *storage.Store, mode simon.Mode) {
	n, err := store.ClearRounds(string(mode))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error clearing rounds: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Deleted %d rounds.\n", n)
}
