package scene

import (
	"math"

	"github.com/okhotin/tui-splash/internal/config"
	"github.com/okhotin/tui-splash/internal/core"
	"github.com/okhotin/tui-splash/internal/physics"
)

// Scene is the live title screen: a layout plus the animation state driven
// by physics events. It implements physics.ObstacleProvider, so the
// simulation pulls fresh geometry from it every frame.
type Scene struct {
	layout  *Layout
	cfg     config.SplashConfig
	runtime core.RuntimeConfig

	elapsed float64 // Drives the pieces' drift

	// shakes holds remaining shake seconds per piece index.
	shakes map[int]float64
	// highlight is the button tag the mascot currently touches.
	highlight string
	// flash counts down after a loud landing; the HUD pulses while it runs.
	flash float64

	muted bool

	// streak counts consecutive loud impacts since the mascot last settled.
	streak int
}

// New creates a scene over the given layout for the current terminal size.
func New(layout *Layout, cfg config.SplashConfig, runtime core.RuntimeConfig) *Scene {
	return &Scene{
		layout:  layout,
		cfg:     cfg,
		runtime: runtime,
		shakes:  make(map[int]float64),
	}
}

// Layout returns the scene's layout.
func (s *Scene) Layout() *Layout {
	return s.layout
}

// Obstacles returns the current physics geometry: every letter, button, and
// piece, with pieces at their drifted positions. Called by the simulation
// once per step; nothing is cached between calls.
func (s *Scene) Obstacles() []physics.Obstacle {
	obs := make([]physics.Obstacle, 0, len(s.layout.Letters)+len(s.layout.Buttons)+len(s.layout.Pieces))
	for _, l := range s.layout.Letters {
		obs = append(obs, physics.Obstacle{Rect: cellRectToPx(l.Rect()), Letter: true})
	}
	for _, b := range s.layout.Buttons {
		obs = append(obs, physics.Obstacle{Rect: cellRectToPx(b.Rect()), Tag: b.Tag})
	}
	for i, p := range s.layout.Pieces {
		x, y := s.piecePos(i, p)
		obs = append(obs, physics.Obstacle{Rect: physics.NewRect(
			x*core.CellPxW, y*core.CellPxH,
			float64(p.W)*core.CellPxW, float64(p.H)*core.CellPxH,
		), Ref: i})
	}
	return obs
}

// piecePos returns the piece's drifted position in cell coordinates.
func (s *Scene) piecePos(i int, p Piece) (x, y float64) {
	if p.DriftAmp == 0 || s.cfg.Scene.DriftSpeed == 0 {
		return p.X, p.Y
	}
	wobble := p.DriftAmp * math.Sin(s.elapsed*s.cfg.Scene.DriftSpeed+p.DriftPhase+float64(i))
	return p.X + wobble, p.Y
}

// Advance moves the presentation state forward: pieces drift, shake timers
// and the landing flash run down. Safe to call with any dt, including zero.
func (s *Scene) Advance(dt float64) {
	if dt <= 0 {
		return
	}
	s.elapsed += dt
	for i, left := range s.shakes {
		left -= dt
		if left <= 0 {
			delete(s.shakes, i)
		} else {
			s.shakes[i] = left
		}
	}
	if s.flash > 0 {
		s.flash = math.Max(0, s.flash-dt)
	}
}

// Apply consumes one frame's physics events.
func (s *Scene) Apply(events []physics.Event) {
	for _, e := range events {
		switch e.Kind {
		case physics.EventLanded:
			s.streak++
			s.flash = 0.3
		case physics.EventButtonEnter:
			s.highlight = e.Tag
		case physics.EventButtonExit:
			if s.highlight == e.Tag {
				s.highlight = ""
			}
		case physics.EventPieceShaken:
			// Pieces drift between the step that hit one and this call, so
			// the event's Ref identifies the piece, not its geometry.
			if i := e.Obstacle.Ref; i >= 0 && i < len(s.layout.Pieces) {
				s.shakes[i] = float64(s.cfg.Scene.ShakeMillis) / 1000
			}
		}
	}
}

// Highlighted returns the tag of the button the mascot currently touches,
// or empty.
func (s *Scene) Highlighted() string {
	return s.highlight
}

// Shaking reports whether the piece at index i is currently shaking.
func (s *Scene) Shaking(i int) bool {
	return s.shakes[i] > 0
}

// Flashing reports whether the landing flash is running.
func (s *Scene) Flashing() bool {
	return s.flash > 0
}

// Muted returns the pretend-sound mute state.
func (s *Scene) Muted() bool {
	return s.muted
}

// SetMuted sets the mute state (persisted by the caller).
func (s *Scene) SetMuted(m bool) {
	s.muted = m
}

// Streak returns the running count of loud impacts since the last rest.
func (s *Scene) Streak() int {
	return s.streak
}

// FinishStreak returns the finished streak and resets the counter. Called
// when the mascot settles; the caller decides whether it is worth recording.
func (s *Scene) FinishStreak() int {
	n := s.streak
	s.streak = 0
	return n
}

// ButtonAt returns the button whose box contains the cell (x, y), if any.
// Used to route mouse clicks on menu buttons.
func (s *Scene) ButtonAt(x, y int) (Button, bool) {
	for _, b := range s.layout.Buttons {
		if b.Rect().Contains(x, y) {
			return b, true
		}
	}
	return Button{}, false
}

// ButtonByTag returns the button with the given tag, if any.
func (s *Scene) ButtonByTag(tag string) (Button, bool) {
	for _, b := range s.layout.Buttons {
		if b.Tag == tag {
			return b, true
		}
	}
	return Button{}, false
}

// SpawnPos returns the mascot's initial position in pixels: centered above
// the configured spawn letter, or above the screen center if the layout has
// no letters.
func (s *Scene) SpawnPos(bodyW, bodyH float64) physics.Vec2 {
	if len(s.layout.Letters) == 0 {
		w, _ := s.runtime.ViewportPx()
		return physics.Vec2{X: w/2 - bodyW/2, Y: 0}
	}
	idx := core.Clamp(s.cfg.Mascot.SpawnLetter, 0, len(s.layout.Letters)-1)
	l := s.layout.Letters[idx]
	cx := core.CellToPxX(l.X) + float64(l.W)*core.CellPxW/2
	top := core.CellToPxY(l.Y)
	return physics.Vec2{X: cx - bodyW/2, Y: top - bodyH - core.CellPxH}
}

func cellRectToPx(r core.Rect) physics.Rect {
	return physics.NewRect(
		core.CellToPxX(r.X), core.CellToPxY(r.Y),
		float64(r.W)*core.CellPxW, float64(r.H)*core.CellPxH,
	)
}
