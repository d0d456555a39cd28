package physics

// Input translation: pointer and keyboard events become either direct
// position control (dragging) or velocity impulses (jumps, nudges). The
// platform layer calls these from its event loop; they never block and never
// schedule anything themselves. Pausing and resuming the frame loop is the
// Loop's job.

// DragStart grabs the mascot at pointer position p. The offset between the
// pointer and the body's corner is recorded so the sprite does not snap to
// the pointer hotspot. Velocity is cleared; gravity stays off until DragEnd.
func (w *World) DragStart(p Vec2) {
	b := &w.body
	b.Dragging = true
	b.Vel = Vec2{}
	w.supported = false
	w.dragOffset = p.Sub(b.Pos)
	w.lastPointer = p
}

// DragMove follows the pointer while dragging, keeping the recorded grab
// offset. Button enter/exit transitions are still tracked so dragging the
// mascot across a menu button highlights it even though integration is
// suspended. Returns this move's notifications.
func (w *World) DragMove(p Vec2) []Event {
	b := &w.body
	if !b.Dragging {
		return nil
	}

	// Cosmetic tilt follows horizontal pointer motion.
	dx := p.X - w.lastPointer.X
	w.lastPointer = p
	b.Tilt = clamp(b.Tilt+dx*0.4, -w.tuning.MaxTilt, w.tuning.MaxTilt)

	b.Pos = p.Sub(w.dragOffset)
	w.clampToViewport()

	w.events = w.events[:0]
	w.trackButtons(w.overlappingTags())
	return w.events
}

// DragEnd releases the mascot. The caller restarts the loop with a fresh
// timestamp so time spent holding the sprite does not turn into a giant dt.
func (w *World) DragEnd() {
	w.body.Dragging = false
}

// Jump applies the click/tap impulse: a fixed strong upward kick plus a
// small random horizontal component for variety. Ignored while dragging.
func (w *World) Jump() {
	b := &w.body
	if b.Dragging {
		return
	}
	b.Vel.Y = w.tuning.JumpImpulse
	b.Vel.X += (w.rng.Float64()*2 - 1) * w.tuning.JumpJitter
}

// Nudge moves the mascot horizontally by dx pixels, bypassing the
// simulation. Used by the keyboard left/right keys.
func (w *World) Nudge(dx float64) {
	w.body.Pos.X += dx
	w.clampToViewport()
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
