package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/simon-arcade/internal/config"
	"github.com/vovakirdan/simon-arcade/internal/core"
	"github.com/vovakirdan/simon-arcade/internal/games/simon"
	"github.com/vovakirdan/simon-arcade/internal/registry"
	"github.com/vovakirdan/simon-arcade/internal/storage"
)

func resetGameSettings(t *testing.T) {
	t.Helper()
	// Keep a user config in ~/.simon from leaking in
	t.Setenv("HOME", t.TempDir())
	t.Cleanup(func() {
		flagConfig = ""
		flagPace = ""
		simon.SetConfigPath("")
		simon.SetPace(config.PaceStandard)
	})
}

func newHostedGame(t *testing.T) *simon.Game {
	t.Helper()
	game, err := registry.Create(simon.GameID)
	if err != nil {
		t.Fatalf("registry.Create() failed: %v", err)
	}
	g, ok := game.(*simon.Game)
	if !ok {
		t.Fatalf("registry.Create() returned %T", game)
	}
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, Seed: 1})
	return g
}

func TestServeUsesConfigFromEnv(t *testing.T) {
	resetGameSettings(t)

	path := filepath.Join(t.TempDir(), "simon.yaml")
	if err := os.WriteFile(path, []byte("round:\n  length_seconds: 45\n"), 0o600); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}
	t.Setenv("SIMON_CONFIG", path)

	if err := applyEnv(serveCmd, nil); err != nil {
		t.Fatalf("applyEnv() failed: %v", err)
	}
	if flagConfig != path {
		t.Fatalf("flagConfig = %q, expected %q", flagConfig, path)
	}
	if err := applyGameSettings(); err != nil {
		t.Fatalf("applyGameSettings() failed: %v", err)
	}

	if left := newHostedGame(t).Snapshot().TimeLeft; left != 45 {
		t.Errorf("hosted game TimeLeft = %d, expected 45 from the config file", left)
	}
}

func TestApplyGameSettings(t *testing.T) {
	tests := []struct {
		name     string
		config   string
		pace     string
		wantErr  bool
		timeLeft int
	}{
		{"defaults", "", "", false, 60},
		{"sprint pace", "", "sprint", false, 30},
		{"relaxed pace", "", "relaxed", false, 90},
		{"unknown pace", "", "warp", true, 0},
		{"missing config", "/nonexistent/simon.yaml", "", true, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			resetGameSettings(t)
			flagConfig = tc.config
			flagPace = tc.pace

			err := applyGameSettings()
			if tc.wantErr {
				if err == nil {
					t.Fatal("applyGameSettings() should fail")
				}
				return
			}
			if err != nil {
				t.Fatalf("applyGameSettings() failed: %v", err)
			}
			if left := newHostedGame(t).Snapshot().TimeLeft; left != tc.timeLeft {
				t.Errorf("TimeLeft = %d, expected %d", left, tc.timeLeft)
			}
		})
	}
}

func TestWriteModesListsRegisteredGames(t *testing.T) {
	var buf bytes.Buffer
	writeModes(&buf)
	out := buf.String()

	for _, want := range []string{"simon", "Simon Effect", "text", "position"} {
		if !strings.Contains(out, want) {
			t.Errorf("modes output missing %q:\n%s", want, out)
		}
	}
}

func openTestStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "rounds.db"))
	if err != nil {
		t.Fatalf("storage.Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func saveRound(t *testing.T, store *storage.Store, player, mode string, score int) {
	t.Helper()
	sum := core.RoundSummary{
		GameID:        simon.GameID,
		Mode:          mode,
		Score:         score,
		Total:         10,
		Accuracy:      score * 10,
		SecsPerAnswer: 6,
		BestReaction:  250 * time.Millisecond,
		RoundLength:   time.Minute,
	}
	if _, err := store.SaveRound(player, sum); err != nil {
		t.Fatalf("SaveRound() failed: %v", err)
	}
}

func TestPrintRecent(t *testing.T) {
	store := openTestStore(t)

	var buf bytes.Buffer
	if err := printRecent(&buf, store, 10); err != nil {
		t.Fatalf("printRecent() failed: %v", err)
	}
	if !strings.Contains(buf.String(), "No rounds recorded yet.") {
		t.Errorf("empty store output:\n%s", buf.String())
	}

	saveRound(t, store, "alice", "text", 9)
	saveRound(t, store, "bob", "position", 3)
	saveRound(t, store, "carol", "text", 5)

	buf.Reset()
	if err := printRecent(&buf, store, 2); err != nil {
		t.Fatalf("printRecent() failed: %v", err)
	}
	out := buf.String()

	carol := strings.Index(out, "carol")
	bob := strings.Index(out, "bob")
	if carol < 0 || bob < 0 || carol > bob {
		t.Errorf("recent rounds should list carol before bob:\n%s", out)
	}
	if strings.Contains(out, "alice") {
		t.Errorf("limit 2 should drop the oldest round:\n%s", out)
	}
}

func TestPrintScoresByMode(t *testing.T) {
	store := openTestStore(t)
	saveRound(t, store, "alice", "text", 9)
	saveRound(t, store, "bob", "position", 3)

	var buf bytes.Buffer
	if err := printScores(&buf, store, simon.ModeText, 10); err != nil {
		t.Fatalf("printScores() failed: %v", err)
	}
	out := buf.String()

	if !strings.Contains(out, "Text mode") || !strings.Contains(out, "alice") {
		t.Errorf("text leaderboard missing entries:\n%s", out)
	}
	if strings.Contains(out, "bob") {
		t.Errorf("text leaderboard should not list position rounds:\n%s", out)
	}
	if !strings.Contains(out, "Best: 9") {
		t.Errorf("text leaderboard missing best score:\n%s", out)
	}
}
