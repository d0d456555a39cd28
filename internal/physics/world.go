package physics

import (
	"math"
	"math/rand"
)

// World owns the mascot body and advances it one frame at a time. It is not
// safe for concurrent use; the platform layer drives it from a single
// event-loop goroutine, which is also how ordering guarantees between drag
// events and steps are kept.
type World struct {
	tuning   Tuning
	provider ObstacleProvider
	body     Body

	viewW, viewH float64

	// activeTag is the button the mascot currently overlaps. Exactly one tag
	// is tracked at a time (the most recently entered); overlapping a second
	// button while the first is still held reports nothing until the first
	// is left. Callers rely on this, so it stays that way.
	activeTag string

	// dragOffset is pointer-minus-corner at grab time; lastPointer feeds the
	// cosmetic tilt.
	dragOffset  Vec2
	lastPointer Vec2

	// supported is true while the body rests on something this frame: a soft
	// landing on an obstacle top or a slow floor touch. Velocity alone cannot
	// tell rest from the apex of a bounce, where Vel.Y passes through zero
	// mid-air, so Settled requires it.
	supported bool

	rng    *rand.Rand
	events []Event
}

// StepResult reports what one step did.
type StepResult struct {
	// Events are this frame's notifications, valid until the next step or
	// drag move.
	Events []Event
	// Settled is true once the mascot is free and slow enough that the
	// scheduler can stop requesting frames.
	Settled bool
}

// NewWorld creates a simulation over the given obstacle provider. The seed
// drives only the horizontal jitter on jumps, so a fixed seed gives fully
// deterministic runs.
func NewWorld(tuning Tuning, provider ObstacleProvider, seed int64) *World {
	return &World{
		tuning:   tuning,
		provider: provider,
		rng:      rand.New(rand.NewSource(seed)),
	}
}

// Tuning returns the constants the world runs with.
func (w *World) Tuning() Tuning {
	return w.tuning
}

// Body returns a copy of the mascot's current state for rendering.
func (w *World) Body() Body {
	return w.body
}

// SetViewport updates the viewport dimensions in pixels. Called on every
// terminal resize.
func (w *World) SetViewport(width, height float64) {
	w.viewW = width
	w.viewH = height
}

// SetBodySize updates the mascot's rendered size in pixels.
func (w *World) SetBodySize(width, height float64) {
	w.body.W = width
	w.body.H = height
}

// SetPosition places the mascot, clamped into the viewport. Used for the
// initial spawn (above a title letter) and keyboard nudges.
func (w *World) SetPosition(p Vec2) {
	w.body.Pos = p
	w.clampToViewport()
}

// Settled reports whether the mascot is free, resting on something, and below
// the rest threshold on both axes. The support requirement keeps a bounce apex
// from counting: Vel.Y passes through zero there too, but the body is mid-air
// and the scheduler must keep stepping it.
func (w *World) Settled() bool {
	return !w.body.Dragging && w.supported &&
		math.Abs(w.body.Vel.X) < w.tuning.RestSpeed &&
		math.Abs(w.body.Vel.Y) < w.tuning.RestSpeed
}

// Step advances the simulation by dt seconds: integrate, clamp to the
// viewport, then resolve obstacle overlaps. A non-positive dt is a no-op so
// clock irregularities never produce a backwards step; an oversized dt is
// clamped so a frozen terminal does not launch the mascot through the floor.
func (w *World) Step(dt float64) StepResult {
	w.events = w.events[:0]
	if dt <= 0 {
		return StepResult{Settled: w.Settled()}
	}
	if dt > w.tuning.MaxStep {
		dt = w.tuning.MaxStep
	}
	w.supported = false

	b := &w.body
	if !b.Dragging {
		b.Vel.Y += w.tuning.Gravity * dt
	}
	b.Pos.X += b.Vel.X * dt
	b.Pos.Y += b.Vel.Y * dt

	w.resolveBounds()
	if b.Dragging {
		// The pointer owns the position; only button transitions are
		// tracked so dragging across a menu button still highlights it.
		w.trackButtons(w.overlappingTags())
	} else {
		w.resolveObstacles()
	}
	w.clampToViewport()

	// Tilt is cosmetic only; let it ease back to level.
	b.Tilt *= 0.9
	if math.Abs(b.Tilt) < 0.25 {
		b.Tilt = 0
	}

	return StepResult{Events: w.events, Settled: w.Settled()}
}

// resolveBounds keeps the body inside the viewport, reflecting and damping
// the offending velocity component on contact. A fast bottom impact also
// raises a landing notification for the sound layer.
func (w *World) resolveBounds() {
	b := &w.body
	bounce := w.tuning.BoundaryBounce

	if b.Pos.X < 0 {
		b.Pos.X = 0
		b.Vel.X = -b.Vel.X * bounce
	}
	if b.Pos.X+b.W > w.viewW {
		b.Pos.X = w.viewW - b.W
		b.Vel.X = -b.Vel.X * bounce
	}
	if b.Pos.Y < 0 {
		b.Pos.Y = 0
		b.Vel.Y = -b.Vel.Y * bounce
	}
	if b.Pos.Y+b.H > w.viewH {
		if math.Abs(b.Vel.Y) > w.tuning.LoudImpactSpeed {
			w.emitLanded()
		}
		b.Pos.Y = w.viewH - b.H
		mat := w.tuning.Ground
		if math.Abs(b.Vel.Y) < mat.LandingThreshold {
			// Slow floor contact rests like a soft landing instead of
			// jittering against the edge forever.
			b.Vel.Y = 0
			b.Vel.X *= mat.Friction
			if math.Abs(b.Vel.X) < mat.RestEpsilon {
				b.Vel.X = 0
			}
			w.supported = true
		} else {
			b.Vel.Y = -b.Vel.Y * bounce
		}
	}
}

type axis int

const (
	axisTop axis = iota
	axisBottom
	axisLeft
	axisRight
)

// resolveObstacles runs the brute-force AABB pass. Obstacle count on a title
// screen is tiny, so no broad phase: every obstacle is tested every frame
// against the body's current box.
func (w *World) resolveObstacles() {
	b := &w.body
	view := Rect{W: w.viewW, H: w.viewH}
	var tags []string
	landChecked := false

	for _, o := range w.provider.Obstacles() {
		if o.Rect.Empty() || !o.Rect.Intersects(view) {
			// Off-screen elements cannot be touching the body either.
			continue
		}
		// Recompute after each resolution: a previous obstacle may have
		// pushed the body out of this one.
		if !b.Rect().Intersects(o.Rect) {
			continue
		}

		if !landChecked {
			landChecked = true
			if math.Abs(b.Vel.Y) > w.tuning.LoudImpactSpeed {
				w.emitLanded()
			}
		}

		mat := w.tuning.Ground
		if o.Letter {
			mat = w.tuning.Letter
		}
		w.resolveOverlap(o.Rect, mat)

		if o.Tag != "" {
			tags = append(tags, o.Tag)
		} else if !o.Letter {
			w.events = append(w.events, Event{Kind: EventPieceShaken, Obstacle: o})
		}
	}

	w.trackButtons(tags)
}

// resolveOverlap separates the body from one obstacle along the
// minimum-translation axis and updates velocity per the obstacle's material.
// Ties between equal overlap depths go in the fixed order top, bottom, left,
// right.
func (w *World) resolveOverlap(obs Rect, mat Material) {
	b := &w.body
	body := b.Rect()

	overlapTop := body.Bottom() - obs.Y
	overlapBottom := obs.Bottom() - body.Y
	overlapLeft := body.Right() - obs.X
	overlapRight := obs.Right() - body.X

	min := overlapTop
	side := axisTop
	if overlapBottom < min {
		min, side = overlapBottom, axisBottom
	}
	if overlapLeft < min {
		min, side = overlapLeft, axisLeft
	}
	if overlapRight < min {
		min, side = overlapRight, axisRight
	}

	switch side {
	case axisTop:
		if math.Abs(b.Vel.Y) < mat.LandingThreshold {
			// Soft landing: perch on the obstacle and let friction bleed
			// off horizontal motion, snapping to zero below the epsilon so
			// the decay terminates.
			b.Pos.Y = obs.Y - b.H
			b.Vel.Y = 0
			b.Vel.X *= mat.Friction
			if math.Abs(b.Vel.X) < mat.RestEpsilon {
				b.Vel.X = 0
			}
			w.supported = true
		} else {
			b.Pos.Y -= min
			b.Vel.Y = -b.Vel.Y * mat.Bounce
		}
	case axisBottom:
		b.Pos.Y += min
		b.Vel.Y = -b.Vel.Y * mat.Bounce
	case axisLeft:
		b.Pos.X -= min
		w.resolveSide(mat)
	case axisRight:
		b.Pos.X += min
		w.resolveSide(mat)
	}
}

// resolveSide handles horizontal contact: slow pushes stop dead against the
// obstacle, fast ones bounce off.
func (w *World) resolveSide(mat Material) {
	b := &w.body
	if math.Abs(b.Vel.X) < mat.LandingThreshold {
		b.Vel.X = 0
	} else {
		b.Vel.X = -b.Vel.X * mat.Bounce
	}
}

// overlappingTags returns the tags of every button the body currently
// overlaps, in provider order. Used on drag moves, where no resolution runs.
func (w *World) overlappingTags() []string {
	body := w.body.Rect()
	view := Rect{W: w.viewW, H: w.viewH}
	var tags []string
	for _, o := range w.provider.Obstacles() {
		if o.Tag == "" || o.Rect.Empty() || !o.Rect.Intersects(view) {
			continue
		}
		if body.Intersects(o.Rect) {
			tags = append(tags, o.Tag)
		}
	}
	return tags
}

// trackButtons updates the single-active-tag state from this frame's overlap
// set and emits enter/exit transitions. Simultaneous overlap with a second
// button reports nothing until the active one is left.
func (w *World) trackButtons(tags []string) {
	if w.activeTag != "" {
		still := false
		for _, t := range tags {
			if t == w.activeTag {
				still = true
				break
			}
		}
		if !still {
			w.events = append(w.events, Event{Kind: EventButtonExit, Tag: w.activeTag})
			w.activeTag = ""
		}
	}
	if w.activeTag == "" && len(tags) > 0 {
		w.activeTag = tags[len(tags)-1]
		w.events = append(w.events, Event{Kind: EventButtonEnter, Tag: w.activeTag})
	}
}

// emitLanded appends a landing event, at most once per frame so one impact
// does not thud twice.
func (w *World) emitLanded() {
	for _, e := range w.events {
		if e.Kind == EventLanded {
			return
		}
	}
	w.events = append(w.events, Event{Kind: EventLanded})
}

// clampToViewport is a pure position clamp with no velocity change. It runs
// after obstacle resolution so a push-out near an edge can never leave the
// body outside the viewport.
func (w *World) clampToViewport() {
	b := &w.body
	if w.viewW <= 0 || w.viewH <= 0 {
		return
	}
	if b.Pos.X < 0 {
		b.Pos.X = 0
	}
	if b.Pos.X+b.W > w.viewW {
		b.Pos.X = w.viewW - b.W
	}
	if b.Pos.Y < 0 {
		b.Pos.Y = 0
	}
	if b.Pos.Y+b.H > w.viewH {
		b.Pos.Y = w.viewH - b.H
	}
}
