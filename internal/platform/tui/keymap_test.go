package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/simon-arcade/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestMapKey(t *testing.T) {
	tests := []struct {
		name   string
		msg    tea.KeyMsg
		want   core.Action
		isQuit bool
	}{
		{"1 selects text", runeKey('1'), core.ActionModeText, false},
		{"t selects text", runeKey('t'), core.ActionModeText, false},
		{"2 selects position", runeKey('2'), core.ActionModePosition, false},
		{"p selects position", runeKey('p'), core.ActionModePosition, false},
		{"left arrow", tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft, false},
		{"h", runeKey('h'), core.ActionLeft, false},
		{"a", runeKey('a'), core.ActionLeft, false},
		{"right arrow", tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight, false},
		{"l", runeKey('l'), core.ActionRight, false},
		{"d", runeKey('d'), core.ActionRight, false},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionBack, false},
		{"b", runeKey('b'), core.ActionBack, false},
		{"e", runeKey('e'), core.ActionBack, false},
		{"r", runeKey('r'), core.ActionRestart, false},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionConfirm, false},
		{"q", runeKey('q'), core.ActionQuit, true},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, true},
		{"unbound", runeKey('z'), core.ActionNone, false},
		{"tab is not a game action", tea.KeyMsg{Type: tea.KeyTab}, core.ActionNone, false},
	}

	km := NewKeyMapper()
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, isQuit := km.MapKey(tc.msg)
			if got != tc.want || isQuit != tc.isQuit {
				t.Errorf("MapKey(%q) = %s, %v; expected %s, %v",
					tc.msg.String(), got, isQuit, tc.want, tc.isQuit)
			}
		})
	}
}

func TestMapKeyToFrame(t *testing.T) {
	km := NewKeyMapper()
	frame := core.NewInputFrame()

	if km.MapKeyToFrame(tea.KeyMsg{Type: tea.KeyLeft}, &frame) {
		t.Error("left should not quit")
	}
	if !frame.Has(core.ActionLeft) {
		t.Error("frame should contain ActionLeft")
	}

	if !km.MapKeyToFrame(runeKey('q'), &frame) {
		t.Error("q should quit")
	}
	if frame.Has(core.ActionQuit) {
		t.Error("quit should not be forwarded to the game")
	}
}

func TestMapKeyToMenuAction(t *testing.T) {
	tests := []struct {
		msg  tea.KeyMsg
		want MenuAction
	}{
		{tea.KeyMsg{Type: tea.KeyTab}, MenuActionScores},
		{tea.KeyMsg{Type: tea.KeyCtrlS}, MenuActionScreenshot},
		{runeKey('q'), MenuActionQuit},
		{tea.KeyMsg{Type: tea.KeyCtrlC}, MenuActionQuit},
		{tea.KeyMsg{Type: tea.KeyLeft}, MenuActionNone},
	}

	km := NewKeyMapper()
	for _, tc := range tests {
		if got := km.MapKeyToMenuAction(tc.msg); got != tc.want {
			t.Errorf("MapKeyToMenuAction(%q) = %d, expected %d", tc.msg.String(), got, tc.want)
		}
	}
}
