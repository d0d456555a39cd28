package physics

// EventKind identifies a notification produced by a simulation step.
type EventKind int

const (
	// EventLanded fires when the mascot hits a floor or obstacle fast enough
	// to deserve a thud. Advisory; the caller plays a sound or flashes.
	EventLanded EventKind = iota
	// EventButtonEnter fires when the mascot starts overlapping the tagged
	// button named in Tag.
	EventButtonEnter
	// EventButtonExit fires when the mascot stops overlapping the tagged
	// button named in Tag.
	EventButtonExit
	// EventPieceShaken fires when the mascot bumps an untagged decorative
	// piece. The caller typically runs a short shake animation on it.
	EventPieceShaken
)

// String returns a human-readable name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventLanded:
		return "Landed"
	case EventButtonEnter:
		return "ButtonEnter"
	case EventButtonExit:
		return "ButtonExit"
	case EventPieceShaken:
		return "PieceShaken"
	default:
		return "Unknown"
	}
}

// Event is a single notification from a step or a drag move. Events are
// ephemeral: they describe this frame only and are never stored by the
// simulation.
type Event struct {
	Kind EventKind
	// Tag is set for ButtonEnter and ButtonExit.
	Tag string
	// Obstacle is set for PieceShaken so the caller knows which piece to
	// animate.
	Obstacle Obstacle
}
