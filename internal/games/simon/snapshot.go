package simon

import "time"

// Snapshot captures the complete session state for tests and debugging.
type Snapshot struct {
	Tick        uint64
	Screen      Screen
	Mode        Mode
	Score       int
	Total       int
	TimeLeft    int
	Countdown   int
	Counting    bool
	Started     bool
	Challenge   Challenge
	LastResult  Result
	InputLocked bool

	// Which timers are pending.
	CountdownPending bool
	RoundPending     bool
	FeedbackPending  bool

	Reactions []time.Duration
}

// Snapshot returns the current session snapshot.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Tick:             g.tick,
		Screen:           g.Screen(),
		Mode:             g.mode,
		Score:            g.score,
		Total:            g.total,
		TimeLeft:         g.timeLeft,
		Countdown:        g.countdown,
		Counting:         g.counting,
		Started:          g.started,
		Challenge:        g.challenge,
		LastResult:       g.lastResult,
		InputLocked:      g.inputLocked,
		CountdownPending: !g.countdownAt.IsZero(),
		RoundPending:     !g.secondAt.IsZero(),
		FeedbackPending:  !g.feedbackAt.IsZero(),
		Reactions:        append([]time.Duration(nil), g.reactions...),
	}
}
