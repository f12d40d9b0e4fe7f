package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestDefaultSimonConfigValid(t *testing.T) {
	cfg := DefaultSimonConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config should be valid: %v", err)
	}
	if cfg.Round.Length() != 60*time.Second {
		t.Errorf("Length() = %v, expected 60s", cfg.Round.Length())
	}
	if cfg.Round.FeedbackDelay() != 500*time.Millisecond {
		t.Errorf("FeedbackDelay() = %v, expected 500ms", cfg.Round.FeedbackDelay())
	}
}

func TestEmbeddedDefaultMatchesHardcoded(t *testing.T) {
	cfg, err := parseSimon(defaultSimonYAML)
	if err != nil {
		t.Fatalf("embedded default failed to parse: %v", err)
	}
	if cfg != DefaultSimonConfig() {
		t.Errorf("embedded default %+v differs from hardcoded %+v", cfg, DefaultSimonConfig())
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*SimonConfig)
		wantErr string
	}{
		{"valid", func(*SimonConfig) {}, ""},
		{"zero length", func(c *SimonConfig) { c.Round.LengthSeconds = 0 }, "length_seconds"},
		{"zero countdown", func(c *SimonConfig) { c.Round.CountdownSeconds = 0 }, "countdown_seconds"},
		{"negative delay", func(c *SimonConfig) { c.Round.FeedbackDelayMs = -1 }, "feedback_delay_ms"},
		{"multi-rune glyph", func(c *SimonConfig) { c.Stimulus.LeftGlyph = "left" }, "left_glyph"},
		{"empty glyph", func(c *SimonConfig) { c.Stimulus.RightGlyph = "" }, "right_glyph"},
		{"same glyphs", func(c *SimonConfig) { c.Stimulus.RightGlyph = c.Stimulus.LeftGlyph }, "differ"},
		{"inverted offsets", func(c *SimonConfig) { c.Stimulus.OffsetMin, c.Stimulus.OffsetMax = 30, 10 }, "offsets"},
		{"offset too wide", func(c *SimonConfig) { c.Stimulus.OffsetMax = 70 }, "offsets"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultSimonConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if tc.wantErr == "" {
				if err != nil {
					t.Errorf("Validate() = %v, expected nil", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tc.wantErr) {
				t.Errorf("Validate() = %v, expected error mentioning %q", err, tc.wantErr)
			}
		})
	}
}

func TestValidateReportsAllFields(t *testing.T) {
	cfg := DefaultSimonConfig()
	cfg.Round.LengthSeconds = 0
	cfg.Round.CountdownSeconds = 0

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected error")
	}
	for _, field := range []string{"length_seconds", "countdown_seconds"} {
		if !strings.Contains(err.Error(), field) {
			t.Errorf("error %q should mention %s", err, field)
		}
	}
}

func TestLoadSimonCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	data := "round:\n  length_seconds: 45\nstimulus:\n  offset_max: 20\n"
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadSimon(path)
	if err != nil {
		t.Fatalf("LoadSimon() failed: %v", err)
	}
	if cfg.Round.LengthSeconds != 45 {
		t.Errorf("LengthSeconds = %d, expected 45", cfg.Round.LengthSeconds)
	}
	if cfg.Stimulus.OffsetMax != 20 {
		t.Errorf("OffsetMax = %d, expected 20", cfg.Stimulus.OffsetMax)
	}
	// Unset keys keep their defaults
	if cfg.Round.CountdownSeconds != 3 || cfg.Stimulus.LeftGlyph != "左" {
		t.Errorf("partial file should keep defaults, got %+v", cfg)
	}
}

func TestLoadSimonCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadSimon(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("missing custom file should be an error")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("round: [unclosed"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadSimon(bad); err == nil {
		t.Error("malformed YAML should be an error")
	}

	invalid := filepath.Join(dir, "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("round:\n  length_seconds: -5\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadSimon(invalid); err == nil {
		t.Error("invalid values should be an error")
	}
}

func TestLoadSimonUserDir(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	cfgDir := filepath.Join(home, ".simon", "configs")
	if err := os.MkdirAll(cfgDir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(cfgDir, "simon.yaml"), []byte("round:\n  countdown_seconds: 5\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadSimon("")
	if err != nil {
		t.Fatalf("LoadSimon() failed: %v", err)
	}
	if cfg.Round.CountdownSeconds != 5 {
		t.Errorf("CountdownSeconds = %d, expected 5 from user config", cfg.Round.CountdownSeconds)
	}
}

func TestLoadSimonFallsBackToEmbedded(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := LoadSimon("")
	if err != nil {
		t.Fatalf("LoadSimon() failed: %v", err)
	}
	if cfg != DefaultSimonConfig() {
		t.Errorf("LoadSimon() = %+v, expected defaults", cfg)
	}
}

func TestParsePace(t *testing.T) {
	tests := []struct {
		in      string
		want    Pace
		wantErr bool
	}{
		{"", PaceStandard, false},
		{"standard", PaceStandard, false},
		{"relaxed", PaceRelaxed, false},
		{"sprint", PaceSprint, false},
		{"ludicrous", "", true},
	}

	for _, tc := range tests {
		got, err := ParsePace(tc.in)
		if (err != nil) != tc.wantErr {
			t.Errorf("ParsePace(%q) error = %v, wantErr %v", tc.in, err, tc.wantErr)
			continue
		}
		if got != tc.want {
			t.Errorf("ParsePace(%q) = %q, expected %q", tc.in, got, tc.want)
		}
	}
}

func TestApplyPace(t *testing.T) {
	tests := []struct {
		pace       Pace
		wantLength int
		wantDelay  int
	}{
		{PaceStandard, 60, 500},
		{PaceRelaxed, 90, 800},
		{PaceSprint, 30, 300},
	}

	for _, tc := range tests {
		cfg := DefaultSimonConfig()
		ApplyPace(&cfg, tc.pace)
		if cfg.Round.LengthSeconds != tc.wantLength || cfg.Round.FeedbackDelayMs != tc.wantDelay {
			t.Errorf("ApplyPace(%s) = %ds/%dms, expected %ds/%dms", tc.pace,
				cfg.Round.LengthSeconds, cfg.Round.FeedbackDelayMs, tc.wantLength, tc.wantDelay)
		}
		if err := cfg.Validate(); err != nil {
			t.Errorf("ApplyPace(%s) produced invalid config: %v", tc.pace, err)
		}
	}
}
