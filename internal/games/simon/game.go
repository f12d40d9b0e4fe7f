// Package simon implements a Simon effect reaction game.
//
// A glyph meaning "left" or "right" appears on one side of the screen. In
// text mode the player answers with the glyph that is shown; in position mode
// the player answers with the glyph naming the side it appeared on. A round
// lasts a fixed number of seconds and ends on a results screen.
package simon

import (
	"fmt"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/vovakirdan/simon-arcade/internal/config"
	"github.com/vovakirdan/simon-arcade/internal/core"
	"github.com/vovakirdan/simon-arcade/internal/registry"
)

// GameID is the registry and storage identifier of the game.
const GameID = "simon"

// Mode selects which attribute of the challenge is scored.
type Mode string

const (
	ModeNone     Mode = ""
	ModeText     Mode = "text"
	ModePosition Mode = "position"
)

// Modes lists the playable modes in menu order.
var Modes = []Mode{ModeText, ModePosition}

// ParseMode converts a user-supplied name to a playable Mode.
func ParseMode(name string) (Mode, error) {
	switch Mode(name) {
	case ModeText, ModePosition:
		return Mode(name), nil
	default:
		return ModeNone, fmt.Errorf("simon: unknown mode %q (want text or position)", name)
	}
}

// Title returns the display name of the mode.
func (m Mode) Title() string {
	switch m {
	case ModeText:
		return "Text"
	case ModePosition:
		return "Position"
	default:
		return "-"
	}
}

// Result is the outcome of the last answer while it is on display.
type Result int

const (
	ResultNone Result = iota
	ResultCorrect
	ResultIncorrect
)

// Screen is one of the three mutually exclusive views.
type Screen int

const (
	ScreenHome Screen = iota
	ScreenPlay
	ScreenResult
)

// String returns the screen name.
func (s Screen) String() string {
	switch s {
	case ScreenHome:
		return "home"
	case ScreenPlay:
		return "play"
	case ScreenResult:
		return "result"
	default:
		return "unknown"
	}
}

// screenFor derives the visible screen from the session state.
func screenFor(mode Mode, counting bool, timeLeft int) Screen {
	switch {
	case mode == ModeNone:
		return ScreenHome
	case counting || timeLeft > 0:
		return ScreenPlay
	default:
		return ScreenResult
	}
}

// Package-level settings applied on the next Reset, set by the CLI.
var (
	configPath string
	pace       config.Pace
	startMode  Mode
)

// SetConfigPath sets a custom YAML config path.
func SetConfigPath(path string) {
	configPath = path
}

// SetPace sets the pace preset applied on top of the loaded config.
func SetPace(p config.Pace) {
	pace = p
}

// SetStartMode preselects a mode so the next Reset skips the home screen.
// It is consumed by the first Reset that sees it.
func SetStartMode(m Mode) {
	startMode = m
}

// Game holds the state of one play session.
type Game struct {
	clock    clockwork.Clock
	cfg      config.SimonConfig
	cfgFixed bool
	gen      *Generator
	tick     uint64

	screenW int
	screenH int

	mode        Mode
	score       int
	total       int
	timeLeft    int
	countdown   int
	counting    bool
	started     bool
	challenge   Challenge
	lastResult  Result
	inputLocked bool

	// Pending timer deadlines. A zero time means the timer is not running.
	countdownAt time.Time
	secondAt    time.Time
	feedbackAt  time.Time

	shownAt   time.Time
	reactions []time.Duration
}

// New creates a Simon game that reads time from clock.
func New(clock clockwork.Clock) *Game {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &Game{
		clock: clock,
		cfg:   config.DefaultSimonConfig(),
	}
}

func init() {
	registry.Register(GameID, func() registry.Game {
		return New(clockwork.NewRealClock())
	})
}

// UseConfig pins the game configuration; Reset will no longer load files.
// An invalid configuration is replaced by the defaults.
func (g *Game) UseConfig(cfg config.SimonConfig) {
	if err := cfg.Validate(); err != nil {
		cfg = config.DefaultSimonConfig()
	}
	g.cfg = cfg
	g.cfgFixed = true
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return GameID
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Simon Effect"
}

// Reset loads configuration and returns to the home screen.
func (g *Game) Reset(rt core.RuntimeConfig) {
	if !g.cfgFixed {
		cfg, err := config.LoadSimon(configPath)
		if err != nil {
			cfg = config.DefaultSimonConfig()
		}
		config.ApplyPace(&cfg, pace)
		g.cfg = cfg
	}

	g.gen = NewGenerator(rt.Seed, g.cfg.Stimulus)
	g.tick = 0
	g.screenW = rt.ScreenW
	g.screenH = rt.ScreenH
	g.goHome()

	if startMode != ModeNone {
		m := startMode
		startMode = ModeNone
		g.SelectMode(m)
	}
}

// Resize updates the screen dimensions without touching the round.
func (g *Game) Resize(width, height int) {
	g.screenW = width
	g.screenH = height
}

// goHome clears the session and cancels every timer.
func (g *Game) goHome() {
	g.cancelTimers()
	g.mode = ModeNone
	g.score = 0
	g.total = 0
	g.timeLeft = g.cfg.Round.LengthSeconds
	g.countdown = 0
	g.counting = false
	g.started = false
	g.challenge = Challenge{}
	g.lastResult = ResultNone
	g.inputLocked = false
	g.shownAt = time.Time{}
	g.reactions = nil
}

func (g *Game) cancelTimers() {
	g.countdownAt = time.Time{}
	g.secondAt = time.Time{}
	g.feedbackAt = time.Time{}
}

// Screen returns the screen that is currently visible.
func (g *Game) Screen() Screen {
	return screenFor(g.mode, g.counting, g.timeLeft)
}

// playing reports whether challenges are being shown.
func (g *Game) playing() bool {
	return g.Screen() == ScreenPlay && !g.counting
}

// SelectMode starts the countdown for mode. It only acts on the home screen.
func (g *Game) SelectMode(m Mode) bool {
	g.sync()
	if g.Screen() != ScreenHome || (m != ModeText && m != ModePosition) {
		return false
	}

	g.mode = m
	g.timeLeft = g.cfg.Round.LengthSeconds
	g.countdown = g.cfg.Round.CountdownSeconds
	g.counting = true
	g.inputLocked = true
	g.countdownAt = g.clock.Now().Add(time.Second)
	return true
}

// Answer submits glyph for the current challenge. It returns false when the
// answer was ignored: outside play, while input is locked, while a result is
// still on display, or for a glyph that is not one of the two answers.
func (g *Game) Answer(glyph string) bool {
	g.sync()
	if !g.playing() || g.inputLocked || g.lastResult != ResultNone {
		return false
	}
	if glyph != g.cfg.Stimulus.LeftGlyph && glyph != g.cfg.Stimulus.RightGlyph {
		return false
	}

	now := g.clock.Now()
	g.inputLocked = true
	g.total++
	if glyph == g.Expected() {
		g.score++
		g.lastResult = ResultCorrect
	} else {
		g.lastResult = ResultIncorrect
	}
	g.reactions = append(g.reactions, now.Sub(g.shownAt))
	g.feedbackAt = now.Add(g.cfg.Round.FeedbackDelay())
	return true
}

// End abandons the countdown or round and returns home without results.
func (g *Game) End() bool {
	g.sync()
	if g.Screen() != ScreenPlay {
		return false
	}
	g.goHome()
	return true
}

// Restart leaves the results screen and returns home with fresh counters.
func (g *Game) Restart() bool {
	g.sync()
	if g.Screen() != ScreenResult {
		return false
	}
	g.goHome()
	return true
}

// Expected returns the answer that scores for the current challenge.
func (g *Game) Expected() string {
	if g.mode == ModePosition {
		return g.label(g.challenge.Side)
	}
	return g.challenge.Glyph
}

// label returns the glyph that names side.
func (g *Game) label(side Side) string {
	if side == SideRight {
		return g.cfg.Stimulus.RightGlyph
	}
	return g.cfg.Stimulus.LeftGlyph
}

// sync fires every timer whose deadline has passed, oldest first.
func (g *Game) sync() {
	now := g.clock.Now()

	for g.counting && !g.countdownAt.IsZero() && !now.Before(g.countdownAt) {
		due := g.countdownAt
		g.countdown--
		if g.countdown <= 0 {
			g.beginPlay(due, now)
			break
		}
		g.countdownAt = due.Add(time.Second)
	}

	for !g.secondAt.IsZero() && !now.Before(g.secondAt) {
		g.timeLeft--
		if g.timeLeft <= 0 {
			g.finish()
			return
		}
		g.secondAt = g.secondAt.Add(time.Second)
	}

	if !g.feedbackAt.IsZero() && !now.Before(g.feedbackAt) {
		g.feedbackAt = time.Time{}
		g.lastResult = ResultNone
		g.nextChallenge(now)
		g.inputLocked = false
	}
}

// beginPlay ends the countdown and shows the first challenge.
// The round clock is scheduled from the countdown deadline so late ticks
// do not stretch the round.
func (g *Game) beginPlay(due, now time.Time) {
	g.counting = false
	g.countdown = 0
	g.countdownAt = time.Time{}
	g.started = true
	g.nextChallenge(now)
	g.inputLocked = false
	g.secondAt = due.Add(time.Second)
}

// finish freezes the round on the results screen.
func (g *Game) finish() {
	g.cancelTimers()
	g.timeLeft = 0
	g.lastResult = ResultNone
	g.inputLocked = true
}

func (g *Game) nextChallenge(now time.Time) {
	g.challenge = g.gen.Next()
	g.shownAt = now
}

// Step applies due timers, then the frame's actions.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++
	g.sync()

	if in.Has(core.ActionBack) {
		g.End()
	}
	if in.Has(core.ActionRestart) || in.Has(core.ActionConfirm) {
		g.Restart()
	}

	switch {
	case in.Has(core.ActionModeText):
		g.SelectMode(ModeText)
	case in.Has(core.ActionModePosition):
		g.SelectMode(ModePosition)
	}

	switch {
	case in.Has(core.ActionLeft):
		g.Answer(g.cfg.Stimulus.LeftGlyph)
	case in.Has(core.ActionRight):
		g.Answer(g.cfg.Stimulus.RightGlyph)
	}

	return core.StepResult{State: g.State()}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	screen := g.Screen()
	return core.GameState{
		Score:    g.score,
		GameOver: screen == ScreenResult,
		Idle:     screen == ScreenHome,
	}
}

// Summary describes the finished round. It reports false until the round
// is on the results screen.
func (g *Game) Summary() (core.RoundSummary, bool) {
	if g.Screen() != ScreenResult {
		return core.RoundSummary{}, false
	}

	mean, best := reactionStats(g.reactions)
	return core.RoundSummary{
		GameID:        GameID,
		Mode:          string(g.mode),
		Score:         g.score,
		Total:         g.total,
		Accuracy:      Accuracy(g.score, g.total),
		SecsPerAnswer: secsPerAnswer(g.cfg.Round.LengthSeconds, g.total),
		MeanReaction:  mean,
		BestReaction:  best,
		RoundLength:   g.cfg.Round.Length(),
	}, true
}
