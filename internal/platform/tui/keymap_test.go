package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/okhotin/tui-splash/internal/core"
)

func keyMsg(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestMapKeyActions(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		msg    tea.KeyMsg
		want   core.Action
		isQuit bool
	}{
		{keyMsg(' '), core.ActionJump, false},
		{keyMsg('w'), core.ActionJump, false},
		{tea.KeyMsg{Type: tea.KeyUp}, core.ActionJump, false},
		{keyMsg('a'), core.ActionNudgeLeft, false},
		{tea.KeyMsg{Type: tea.KeyLeft}, core.ActionNudgeLeft, false},
		{keyMsg('d'), core.ActionNudgeRight, false},
		{tea.KeyMsg{Type: tea.KeyRight}, core.ActionNudgeRight, false},
		{keyMsg('m'), core.ActionMute, false},
		{tea.KeyMsg{Type: tea.KeyEnter}, core.ActionConfirm, false},
		{tea.KeyMsg{Type: tea.KeyTab}, core.ActionStreaks, false},
		{tea.KeyMsg{Type: tea.KeyEsc}, core.ActionBack, false},
		{keyMsg('q'), core.ActionQuit, true},
		{tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, true},
		{keyMsg('z'), core.ActionNone, false},
	}

	for _, tc := range tests {
		action, isQuit := km.MapKey(tc.msg)
		if action != tc.want || isQuit != tc.isQuit {
			t.Errorf("MapKey(%q) = %v, %v; want %v, %v",
				tc.msg.String(), action, isQuit, tc.want, tc.isQuit)
		}
	}
}
