package physics

// Obstacle is a snapshot of one scene element the mascot can collide with.
// Obstacles are owned by the scene, not the simulation; their rectangles are
// re-queried every step because hover effects and drifting pieces move them
// between frames.
type Obstacle struct {
	// Rect is the obstacle's bounding box in pixel space. A zero-sized rect
	// means the element is not currently on screen and never collides.
	Rect Rect

	// Tag identifies a menu button. Tagged obstacles produce ButtonEnter and
	// ButtonExit events so the caller can toggle highlight and sound state.
	// Motion-wise the simulation treats tagged and untagged obstacles the
	// same. Empty for everything that is not a button.
	Tag string

	// Letter marks single-character title letters, which use the Letter
	// material instead of Ground.
	Letter bool

	// Ref is an opaque provider reference carried back on events. Drifting
	// obstacles move between the step that produced an event and the moment
	// the caller consumes it, so events identify obstacles by Ref, never by
	// matching geometry.
	Ref int
}

// ObstacleProvider supplies the current obstacle set. Step calls Obstacles
// once per frame and never caches the result, so providers are free to move,
// add, or drop obstacles between frames.
type ObstacleProvider interface {
	Obstacles() []Obstacle
}

// ObstacleFunc adapts a plain function to the ObstacleProvider interface.
type ObstacleFunc func() []Obstacle

// Obstacles calls f.
func (f ObstacleFunc) Obstacles() []Obstacle {
	return f()
}
