package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/simon-arcade/internal/core"
	"github.com/vovakirdan/simon-arcade/internal/registry"
	"github.com/vovakirdan/simon-arcade/internal/storage"
)

// resizer is implemented by games that can adapt to a new screen size
// without losing their state.
type resizer interface {
	Resize(width, height int)
}

// GameModel is the Bubble Tea model that drives a single game.
type GameModel struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	config     core.RuntimeConfig
	player     string
	logger     *log.Logger
	inputFrame core.InputFrame
	gameState  core.GameState
	keyMapper  *KeyMapper
	quitting   bool
	roundSaved bool // Whether the current finished round has been handled
	lastRound  *storage.RoundRecord
}

// NewGameModel creates a new Bubble Tea model for the given game.
// store may be nil, in which case rounds are not persisted.
func NewGameModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, player string, logger *log.Logger) GameModel {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = DefaultTickRate
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	return GameModel{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		config:     cfg,
		player:     player,
		logger:     logger,
		inputFrame: core.NewInputFrame(),
		keyMapper:  NewKeyMapper(),
	}
}

// Init initializes the game and starts the tick loop.
func (m GameModel) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionScreenshot:
		if path, err := m.saveScreenshot(); err == nil {
			m.logger.Debug("screenshot saved", "path", path)
		}
		return m, nil
	}

	m.keyMapper.MapKeyToFrame(msg, &m.inputFrame)
	return m, nil
}

// handleResize keeps the round running at the new size when the game
// supports it and restarts it otherwise.
func (m GameModel) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	if r, ok := m.game.(resizer); ok {
		r.Resize(msg.Width, msg.Height)
	} else if !m.gameState.GameOver {
		m.game.Reset(m.config)
	}

	return m, nil
}

// handleTick processes simulation ticks.
func (m GameModel) handleTick() (tea.Model, tea.Cmd) {
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	switch {
	case m.gameState.GameOver && !m.roundSaved:
		m.saveRound()
		m.roundSaved = true
	case !m.gameState.GameOver:
		m.roundSaved = false
	}

	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate)
}

// saveRound persists the finished round. Rounds without answers are skipped.
func (m *GameModel) saveRound() {
	reporter, ok := m.game.(registry.RoundReporter)
	if !ok || m.store == nil {
		return
	}
	sum, ok := reporter.Summary()
	if !ok || sum.Total == 0 {
		return
	}

	rec, err := m.store.SaveRound(m.player, sum)
	if err != nil {
		// Best-effort save, game continues regardless
		m.logger.Warn("could not save round", "error", err)
		return
	}
	// Keep the stored row so LastRound carries the database timestamp
	stored, err := m.store.RoundByID(rec.RoundID)
	if err != nil || stored == nil {
		m.logger.Warn("could not reload saved round", "round", rec.RoundID, "error", err)
		stored = &rec
	}
	m.lastRound = stored
	m.logger.Info("round saved",
		"round", rec.RoundID,
		"player", rec.Player,
		"mode", rec.Mode,
		"score", rec.Score,
		"total", rec.Total,
	)
}

// saveScreenshot writes the current screen to ~/.simon/screenshots.
func (m *GameModel) saveScreenshot() (string, error) {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	dir := filepath.Join(home, ".simon", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	return path, os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// State returns the current game state.
func (m GameModel) State() core.GameState {
	return m.game.State()
}

// LastRound returns the most recently saved round, if any.
func (m GameModel) LastRound() *storage.RoundRecord {
	return m.lastRound
}

// IsQuitting returns true if user requested to quit.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}
