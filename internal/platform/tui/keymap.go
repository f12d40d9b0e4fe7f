package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/simon-arcade/internal/core"
)

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to a game action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	switch msg.String() {
	case "ctrl+c", "q":
		return core.ActionQuit, true
	case "1", "t":
		return core.ActionModeText, false
	case "2", "p":
		return core.ActionModePosition, false
	case "left", "h", "a":
		return core.ActionLeft, false
	case "right", "l", "d":
		return core.ActionRight, false
	case "esc", "b", "e":
		return core.ActionBack, false
	case "r":
		return core.ActionRestart, false
	case "enter":
		return core.ActionConfirm, false
	}

	return core.ActionNone, false
}

// MapKeyToFrame updates an input frame based on a key message.
// Returns true if the key was a quit request.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) bool {
	action, isQuit := km.MapKey(msg)
	if action != core.ActionNone && !isQuit {
		frame.Set(action)
	}
	return isQuit
}

// MenuAction represents a session-level action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionScores
	MenuActionScreenshot
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a session-level action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "tab":
		return MenuActionScores
	case "ctrl+s":
		return MenuActionScreenshot
	}

	return MenuActionNone
}
