package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/okhotin/tui-splash/internal/core"
)

// KeyMapper translates Bubble Tea key messages to splash actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to an action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	key := msg.String()

	// Global quit keys
	switch key {
	case "ctrl+c", "q":
		return core.ActionQuit, true
	}

	switch key {
	case " ", "up", "w":
		return core.ActionJump, false
	case "left", "a", "h":
		return core.ActionNudgeLeft, false
	case "right", "d", "l":
		return core.ActionNudgeRight, false
	case "m":
		return core.ActionMute, false
	case "enter":
		return core.ActionConfirm, false
	case "tab":
		return core.ActionStreaks, false
	case "b", "esc":
		return core.ActionBack, false
	}

	return core.ActionNone, false
}
