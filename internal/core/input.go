package core

// Action represents a semantic splash-screen action, abstracted from physical
// key presses. The platform layer maps keys and mouse gestures onto these so
// the scene never sees raw input.
type Action int

const (
	ActionNone       Action = iota
	ActionJump              // Space, W, Up - kick the mascot upward
	ActionNudgeLeft         // A, Left arrow - nudge the mascot left
	ActionNudgeRight        // D, Right arrow - nudge the mascot right
	ActionMute              // M - toggle the (pretend) sound
	ActionConfirm           // Enter - activate the highlighted menu button
	ActionBack              // B, Esc - leave a sub-view (streaks table)
	ActionStreaks           // Tab - open the bounce-streak table
	ActionQuit              // Q, Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionJump:
		return "Jump"
	case ActionNudgeLeft:
		return "NudgeLeft"
	case ActionNudgeRight:
		return "NudgeRight"
	case ActionMute:
		return "Mute"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionStreaks:
		return "Streaks"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}
