package config

import (
	_ "embed"
)

//go:embed defaults/simon.yaml
var defaultSimonYAML []byte

// DefaultSimonConfig returns the built-in Simon configuration.
func DefaultSimonConfig() SimonConfig {
	return SimonConfig{
		Round: RoundConfig{
			LengthSeconds:    60,
			CountdownSeconds: 3,
			FeedbackDelayMs:  500,
		},
		Stimulus: StimulusConfig{
			LeftGlyph:  "左",
			RightGlyph: "右",
			OffsetMin:  5,
			OffsetMax:  35,
		},
	}
}
