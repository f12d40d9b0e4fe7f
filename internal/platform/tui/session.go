package tui

import (
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/simon-arcade/internal/core"
	"github.com/vovakirdan/simon-arcade/internal/games/simon"
	"github.com/vovakirdan/simon-arcade/internal/registry"
	"github.com/vovakirdan/simon-arcade/internal/storage"
)

// SessionModel manages one player's session: the game and the scoreboard.
// It is the top-level model for both local play and SSH sessions.
type SessionModel struct {
	store      *storage.Store
	config     core.RuntimeConfig
	username   string
	sessionID  string
	logger     *log.Logger
	keyMapper  *KeyMapper
	gameModel  GameModel
	scoreboard ScoreboardModel
	inScores   bool
	quitting   bool
}

// NewSessionModel creates a new session model around game.
func NewSessionModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, username string, logger *log.Logger) SessionModel {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	sessionID := uuid.NewString()
	logger = logger.With("session", sessionID)

	return SessionModel{
		store:     store,
		config:    cfg,
		username:  username,
		sessionID: sessionID,
		logger:    logger,
		keyMapper: NewKeyMapper(),
		gameModel: NewGameModel(game, store, cfg, username, logger),
	}
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.gameModel.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		if m.inScores {
			m.scoreboard = m.updateScoreboard(msg)
		}
		return m.updateGame(msg)

	case TickMsg:
		// The game keeps ticking while the scoreboard is open
		return m.updateGame(msg)

	case tea.KeyMsg:
		if m.inScores {
			return m.handleScoreboardKey(msg)
		}
		if m.keyMapper.MapKeyToMenuAction(msg) == MenuActionScores && m.canOpenScores() {
			m.openScores()
			return m, nil
		}
		return m.updateGame(msg)
	}

	return m, nil
}

// canOpenScores reports whether the game is between rounds.
func (m SessionModel) canOpenScores() bool {
	st := m.gameModel.State()
	return st.Idle || st.GameOver
}

// openScores shows the scoreboard on the mode of the last saved round.
func (m *SessionModel) openScores() {
	mode := simon.ModeText
	if last := m.gameModel.LastRound(); last != nil {
		mode = simon.Mode(last.Mode)
	}
	m.scoreboard = NewScoreboardModel(m.store, mode, m.config.ScreenW, m.config.ScreenH)
	m.inScores = true
}

func (m SessionModel) handleScoreboardKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.scoreboard.Update(msg)
	if sb, ok := newModel.(ScoreboardModel); ok {
		m.scoreboard = sb
	}

	switch {
	case m.scoreboard.IsQuitting():
		m.quitting = true
		return m, tea.Quit
	case m.scoreboard.IsGoingBack():
		m.inScores = false
		return m, nil
	}
	return m, cmd
}

func (m SessionModel) updateScoreboard(msg tea.Msg) ScoreboardModel {
	newModel, _ := m.scoreboard.Update(msg)
	if sb, ok := newModel.(ScoreboardModel); ok {
		return sb
	}
	return m.scoreboard
}

func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.gameModel.Update(msg)
	if gm, ok := newModel.(GameModel); ok {
		m.gameModel = gm
	}

	if m.gameModel.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}
	return m, cmd
}

// View renders the current view.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}
	if m.inScores {
		return m.scoreboard.View()
	}
	return m.gameModel.View()
}

// SessionID returns the unique ID of this session.
func (m SessionModel) SessionID() string {
	return m.sessionID
}

// InScores reports whether the scoreboard is showing.
func (m SessionModel) InScores() bool {
	return m.inScores
}

// Run starts a local Bubble Tea program for game.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, player string) error {
	model := NewSessionModel(game, store, cfg, player, nil)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
