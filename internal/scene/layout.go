// Package scene owns the title screen's world: the big title letters, the
// menu buttons, and the decorative drifting pieces. It feeds their geometry
// to the physics simulation every frame and turns the simulation's events
// back into presentation state (highlights, shakes, bounce streaks).
package scene

import (
	"github.com/okhotin/tui-splash/internal/core"
)

// Letter is one title letter. Letters are physics obstacles of the Letter
// class: single characters the mascot can perch on.
type Letter struct {
	Char  rune
	X, Y  int // Top-left cell of the glyph block
	W, H  int // Glyph block size in cells
	Color core.Color
}

// Rect returns the letter's box in cell coordinates.
func (l Letter) Rect() core.Rect {
	return core.NewRect(l.X, l.Y, l.W, l.H)
}

// Button is a menu button. Buttons are tagged physics obstacles; the tag
// routes enter/exit events back to the button for highlighting.
type Button struct {
	Tag   string // Stable identifier: "play", "streaks", "mute", "quit"
	Label string
	X, Y  int
	W, H  int
	Color core.Color
}

// Rect returns the button's box in cell coordinates.
func (b Button) Rect() core.Rect {
	return core.NewRect(b.X, b.Y, b.W, b.H)
}

// Piece is a decorative shape. Pieces drift slowly so the obstacle set
// genuinely changes between frames, and they shake for a moment when the
// mascot bumps them.
type Piece struct {
	Glyph rune
	X, Y  float64 // Cell coordinates of the anchor; drift moves around it
	W, H  int
	Color core.Color

	// Drift parameters: the piece oscillates DriftAmp cells around its
	// anchor with the given phase offset.
	DriftAmp   float64
	DriftPhase float64
}

// Layout is a full variant of the title screen. Variants differ in title
// text, placement, and palette but share all behavior.
type Layout struct {
	// VariantID identifies the layout for storage (streaks are per variant).
	VariantID string
	Title     string
	Letters   []Letter
	Buttons   []Button
	Pieces    []Piece
	// Tagline is drawn under the title, outside the physics world.
	Tagline string
}
