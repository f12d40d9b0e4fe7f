package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/simon-arcade/internal/games/simon"
	"github.com/vovakirdan/simon-arcade/internal/storage"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show aggregate statistics per mode",
	Long: `Display rounds played, best and average score, average accuracy,
answers given and fastest reaction for each mode.`,
	Args: cobra.NoArgs,
	Run:  runStats,
}

func runStats(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening rounds database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	all, err := store.GetAllModeStats()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving stats: %v\n", err)
		os.Exit(1)
	}

	if len(all) == 0 {
		fmt.Println("No rounds recorded yet.")
		return
	}

	fmt.Printf("  %-8s  %-6s  %-4s  %-6s  %-7s  %-7s  %-7s  %s\n",
		"Mode", "Rounds", "Best", "Avg", "Avg acc", "Answers", "Best RT", "Last played")
	fmt.Printf("  %-8s  %-6s  %-4s  %-6s  %-7s  %-7s  %-7s  %s\n",
		"----", "------", "----", "---", "-------", "-------", "-------", "-----------")

	for _, mode := range simon.Modes {
		st, ok := all[string(mode)]
		if !ok {
			continue
		}
		best := "-"
		if st.BestReaction > 0 {
			best = fmt.Sprintf("%dms", st.BestReaction.Milliseconds())
		}
		last := "-"
		if !st.LastPlayed.IsZero() {
			last = st.LastPlayed.Format("2006-01-02 15:04")
		}
		fmt.Printf("  %-8s  %-6d  %-4d  %-6.1f  %6.0f%%  %-7d  %-7s  %s\n",
			mode, st.Rounds, st.BestScore, st.AvgScore, st.AvgAccuracy, st.TotalAnswers, best, last)
	}
}
