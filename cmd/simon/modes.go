package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/simon-arcade/internal/games/simon"
	"github.com/vovakirdan/simon-arcade/internal/registry"
)

var modesCmd = &cobra.Command{
	Use:   "modes",
	Short: "List the game modes",
	Long:  `Shows the registered games and the modes a round can be played in.`,
	Args:  cobra.NoArgs,
	Run: func(_ *cobra.Command, _ []string) {
		writeModes(os.Stdout)
	},
}

var modeDescriptions = map[simon.Mode]string{
	simon.ModeText:     "answer with the character that is shown",
	simon.ModePosition: "answer with the side the character appears on",
}

func writeModes(w io.Writer) {
	fmt.Fprintln(w, "Available games:")
	fmt.Fprintln(w)
	for _, g := range registry.List() {
		fmt.Fprintf(w, "  %-8s  %s\n", g.ID, g.Title)
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Available modes:")
	fmt.Fprintln(w)

	maxIDLen := 4 // "Mode" header
	for _, m := range simon.Modes {
		maxIDLen = max(maxIDLen, len(m))
	}

	fmt.Fprintf(w, "  %-*s  %s\n", maxIDLen, "Mode", "Description")
	fmt.Fprintf(w, "  %-*s  %s\n", maxIDLen, "----", "-----------")

	for _, m := range simon.Modes {
		fmt.Fprintf(w, "  %-*s  %s\n", maxIDLen, m, modeDescriptions[m])
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'simon play --mode <mode>' to start a round.")
}
