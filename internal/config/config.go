// Package config provides YAML-based game configuration loading and
// pace presets for the Simon game.
package config

import (
	"errors"
	"fmt"
	"time"
	"unicode/utf8"
)

// SimonConfig contains all configuration for the Simon game.
type SimonConfig struct {
	Round    RoundConfig    `yaml:"round"`
	Stimulus StimulusConfig `yaml:"stimulus"`
}

// RoundConfig defines the timing of a round.
type RoundConfig struct {
	LengthSeconds    int `yaml:"length_seconds"`
	CountdownSeconds int `yaml:"countdown_seconds"`
	FeedbackDelayMs  int `yaml:"feedback_delay_ms"`
}

// StimulusConfig defines how challenges look.
type StimulusConfig struct {
	LeftGlyph  string `yaml:"left_glyph"`
	RightGlyph string `yaml:"right_glyph"`
	OffsetMin  int    `yaml:"offset_min"` // Percent of screen width, inclusive
	OffsetMax  int    `yaml:"offset_max"` // Percent of screen width, inclusive
}

// Length returns the round length as a duration.
func (r RoundConfig) Length() time.Duration {
	return time.Duration(r.LengthSeconds) * time.Second
}

// FeedbackDelay returns the post-answer display delay as a duration.
func (r RoundConfig) FeedbackDelay() time.Duration {
	return time.Duration(r.FeedbackDelayMs) * time.Millisecond
}

// Validate reports every invalid field in the configuration.
func (c SimonConfig) Validate() error {
	var errs []error

	if c.Round.LengthSeconds <= 0 {
		errs = append(errs, fmt.Errorf("round.length_seconds must be positive, got %d", c.Round.LengthSeconds))
	}
	if c.Round.CountdownSeconds <= 0 {
		errs = append(errs, fmt.Errorf("round.countdown_seconds must be positive, got %d", c.Round.CountdownSeconds))
	}
	if c.Round.FeedbackDelayMs < 0 {
		errs = append(errs, fmt.Errorf("round.feedback_delay_ms must not be negative, got %d", c.Round.FeedbackDelayMs))
	}
	if utf8.RuneCountInString(c.Stimulus.LeftGlyph) != 1 {
		errs = append(errs, fmt.Errorf("stimulus.left_glyph must be a single character, got %q", c.Stimulus.LeftGlyph))
	}
	if utf8.RuneCountInString(c.Stimulus.RightGlyph) != 1 {
		errs = append(errs, fmt.Errorf("stimulus.right_glyph must be a single character, got %q", c.Stimulus.RightGlyph))
	}
	if c.Stimulus.LeftGlyph == c.Stimulus.RightGlyph {
		errs = append(errs, errors.New("stimulus glyphs must differ"))
	}
	if c.Stimulus.OffsetMin < 0 || c.Stimulus.OffsetMax > 50 || c.Stimulus.OffsetMin > c.Stimulus.OffsetMax {
		errs = append(errs, fmt.Errorf("stimulus offsets must satisfy 0 <= min <= max <= 50, got %d..%d",
			c.Stimulus.OffsetMin, c.Stimulus.OffsetMax))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: invalid simon config: %w", errors.Join(errs...))
	}
	return nil
}

// Pace represents a named round pace.
type Pace string

const (
	PaceRelaxed  Pace = "relaxed"
	PaceStandard Pace = "standard"
	PaceSprint   Pace = "sprint"
)

// ParsePace converts a user-supplied name to a Pace.
// An empty name selects the standard pace.
func ParsePace(name string) (Pace, error) {
	switch Pace(name) {
	case "", PaceStandard:
		return PaceStandard, nil
	case PaceRelaxed:
		return PaceRelaxed, nil
	case PaceSprint:
		return PaceSprint, nil
	default:
		return "", fmt.Errorf("config: unknown pace %q (want relaxed, standard or sprint)", name)
	}
}

// ApplyPace modifies the round timing for a pace preset.
// The standard pace keeps whatever the loaded config says.
func ApplyPace(cfg *SimonConfig, pace Pace) {
	switch pace {
	case PaceRelaxed:
		cfg.Round.LengthSeconds = 90
		cfg.Round.FeedbackDelayMs = 800
	case PaceSprint:
		cfg.Round.LengthSeconds = 30
		cfg.Round.FeedbackDelayMs = 300
	}
}
