package physics

// LoopState is the scheduler's state.
type LoopState int

const (
	// LoopIdle means no further frames are wanted. The mascot is at rest or
	// held by the pointer; CPU usage should be near zero.
	LoopIdle LoopState = iota
	// LoopRunning means a frame is scheduled and further frames will be
	// requested until the mascot settles.
	LoopRunning
)

// String returns a human-readable name for the state.
func (s LoopState) String() string {
	switch s {
	case LoopIdle:
		return "Idle"
	case LoopRunning:
		return "Running"
	default:
		return "Unknown"
	}
}

// Loop is the frame scheduler: a two-state machine plus a generation counter
// that invalidates ticks scheduled before the latest Stop or Start. The
// platform layer stamps every scheduled tick with the generation it got from
// Start; a tick whose stamp no longer validates is stale (for example one
// that was already queued when a drag began) and must be dropped instead of
// stepping with a stale dt.
//
// Loop is not a timer. It only answers "should the next frame be scheduled",
// leaving the actual scheduling to the platform's tick mechanism.
type Loop struct {
	state LoopState
	gen   uint64
}

// State returns the current scheduler state.
func (l *Loop) State() LoopState {
	return l.state
}

// Gen returns the current generation.
func (l *Loop) Gen() uint64 {
	return l.gen
}

// Start moves the loop to Running and returns the generation to stamp on the
// next scheduled tick. Starting an already-running loop is a no-op that
// returns the current generation.
func (l *Loop) Start() uint64 {
	if l.state == LoopRunning {
		return l.gen
	}
	l.state = LoopRunning
	l.gen++
	return l.gen
}

// Stop moves the loop to Idle and invalidates every outstanding tick.
// Stopping an idle loop is a no-op; no tick stamped before this call will
// validate afterwards, even if the loop is started again.
func (l *Loop) Stop() {
	if l.state == LoopIdle {
		return
	}
	l.state = LoopIdle
	l.gen++
}

// Valid reports whether a tick stamped with gen should still run.
func (l *Loop) Valid(gen uint64) bool {
	return l.state == LoopRunning && gen == l.gen
}

// Observe feeds one step's outcome back into the scheduler: a settled step
// stops the loop. Returns the state after the update, so callers can write
// "if loop.Observe(res.Settled) == physics.LoopRunning { schedule next }".
func (l *Loop) Observe(settled bool) LoopState {
	if settled {
		l.Stop()
	}
	return l.state
}
