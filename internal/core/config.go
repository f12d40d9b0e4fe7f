package core

import "time"

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic stimulus draws.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Current score
	GameOver bool // Whether the round has ended and results are showing
	Idle     bool // Whether the game is waiting at its home screen
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
}

// RoundSummary describes a finished round for persistence and display.
type RoundSummary struct {
	GameID        string
	Mode          string
	Score         int
	Total         int
	Accuracy      int     // Percent, 0-100
	SecsPerAnswer float64 // Round length divided by answers
	MeanReaction  time.Duration
	BestReaction  time.Duration
	RoundLength   time.Duration
}
