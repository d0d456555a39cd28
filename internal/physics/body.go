package physics

// Body is the mascot's kinematic state. There is exactly one per screen and
// it lives as long as the screen does. Only the simulation step and the input
// handlers mutate it.
type Body struct {
	// Pos is the top-left corner of the bounding box.
	Pos Vec2
	// Vel is the current velocity in px/s.
	Vel Vec2
	// W and H are the rendered size. The platform layer keeps them current
	// because a resize can change how big the sprite draws.
	W, H float64
	// Dragging is true while the pointer holds the mascot. Gravity and
	// collision resolution are suspended for the duration.
	Dragging bool
	// Tilt is a cosmetic rotation in degrees derived from drag motion. It
	// never feeds back into the simulation.
	Tilt float64
}

// Rect returns the body's current bounding box.
func (b *Body) Rect() Rect {
	return Rect{X: b.Pos.X, Y: b.Pos.Y, W: b.W, H: b.H}
}
