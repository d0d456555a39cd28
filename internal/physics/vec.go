// Package physics implements the mascot simulation for the title screen:
// gravity integration, viewport bounds, AABB collision resolution against the
// scene's obstacles, and drag/impulse input translation. It contains no
// external dependencies (especially no Bubble Tea) so the whole simulation is
// testable without a terminal.
//
// All coordinates are in continuous "pixel" space. The platform layer decides
// how pixels map onto terminal cells; the simulation never needs to know.
package physics

import "math"

// Vec2 is a 2D position or velocity in pixel space.
type Vec2 struct {
	X, Y float64
}

// Add returns v + other.
func (v Vec2) Add(other Vec2) Vec2 {
	return Vec2{X: v.X + other.X, Y: v.Y + other.Y}
}

// Sub returns v - other.
func (v Vec2) Sub(other Vec2) Vec2 {
	return Vec2{X: v.X - other.X, Y: v.Y - other.Y}
}

// Scale returns v scaled by factor.
func (v Vec2) Scale(factor float64) Vec2 {
	return Vec2{X: v.X * factor, Y: v.Y * factor}
}

// Len returns the Euclidean length of v.
func (v Vec2) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// Rect is an axis-aligned bounding box in pixel space.
type Rect struct {
	X, Y float64 // Top-left corner
	W, H float64 // Width and height
}

// NewRect creates a rectangle with the given position and dimensions.
func NewRect(x, y, w, h float64) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() float64 {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() float64 {
	return r.Y + r.H
}

// Empty reports whether the rectangle has no area.
// Empty rectangles never collide with anything.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Intersects reports whether two rectangles overlap. Rectangles overlap
// unless one is strictly outside the other on some axis, so rectangles that
// merely touch along an edge still count as colliding.
func (r Rect) Intersects(other Rect) bool {
	if r.Right() < other.X || other.Right() < r.X {
		return false
	}
	if r.Bottom() < other.Y || other.Bottom() < r.Y {
		return false
	}
	return true
}
