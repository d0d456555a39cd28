package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/okhotin/tui-splash/internal/config"
	"github.com/okhotin/tui-splash/internal/core"
	"github.com/okhotin/tui-splash/internal/physics"
	"github.com/okhotin/tui-splash/internal/registry"
	"github.com/okhotin/tui-splash/internal/scene"
	"github.com/okhotin/tui-splash/internal/storage"
)

// Model is the Bubble Tea model for the animated title screen. It owns the
// physics world, the scene, and the frame scheduler; the streaks view runs
// as a nested model when open.
type Model struct {
	variant registry.Variant
	scn     *scene.Scene
	world   *physics.World
	loop    physics.Loop
	screen  *core.Screen
	store   *storage.Store
	cfg     config.SplashConfig
	runtime core.RuntimeConfig
	keys    *KeyMapper

	lastTick time.Time
	streaks  *StreaksModel // non-nil while the streaks view is open
	quitting bool
}

// NewModel creates a new title screen model for the given variant.
func NewModel(variant registry.Variant, cfg config.SplashConfig, store *storage.Store, runtime core.RuntimeConfig) Model {
	// Use time-based seed if not specified
	if runtime.Seed == 0 {
		runtime.Seed = time.Now().UnixNano()
	}

	m := Model{
		variant: variant,
		screen:  core.NewScreen(runtime.ScreenW, runtime.ScreenH),
		store:   store,
		cfg:     cfg,
		runtime: runtime,
		keys:    NewKeyMapper(),
	}
	m.rebuild()

	if store != nil {
		if muted, err := store.Muted(); err == nil {
			m.scn.SetMuted(muted)
		}
	}

	// The mascot spawns in the air, so frames are wanted immediately.
	m.loop.Start()
	return m
}

// rebuild constructs the scene and world for the current screen size. The
// mascot respawns above its letter; called at start and on resize.
func (m *Model) rebuild() {
	// A rebuild replaces the scene, so carry the toggled mute state over.
	muted := m.scn != nil && m.scn.Muted()
	m.scn = scene.New(m.variant.Layout(m.runtime), m.cfg, m.runtime)
	m.scn.SetMuted(muted)

	bodyW := float64(m.cfg.Mascot.WidthCells) * core.CellPxW
	bodyH := float64(m.cfg.Mascot.HeightCells) * core.CellPxH

	m.world = physics.NewWorld(m.cfg.Tuning(), m.scn, m.runtime.Seed)
	m.world.SetViewport(m.runtime.ViewportPx())
	m.world.SetBodySize(bodyW, bodyH)
	m.world.SetPosition(m.scn.SpawnPos(bodyW, bodyH))
}

// Init starts the first simulation frame.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.runtime.TickRate, m.loop.Gen())
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// The streaks view swallows everything except its own exit.
	if m.streaks != nil {
		return m.updateStreaks(msg)
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(msg)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action, isQuit := m.keys.MapKey(msg)
	if isQuit {
		return m.quit()
	}

	switch action {
	case core.ActionJump:
		m.world.Jump()
		return m.wake()
	case core.ActionNudgeLeft:
		m.world.Nudge(-core.CellPxW)
		return m.wake()
	case core.ActionNudgeRight:
		m.world.Nudge(core.CellPxW)
		return m.wake()
	case core.ActionMute:
		m.toggleMute()
	case core.ActionConfirm:
		return m.activate(m.scn.Highlighted())
	case core.ActionStreaks:
		return m.openStreaks()
	}

	return m, nil
}

// handleMouse maps pointer input onto the mascot and the buttons. Pointer
// coordinates arrive in cells; the pointer is taken to be at the cell center.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Button != tea.MouseButtonLeft && msg.Action != tea.MouseActionMotion {
		return m, nil
	}

	p := physics.Vec2{
		X: (float64(msg.X) + 0.5) * core.CellPxW,
		Y: (float64(msg.Y) + 0.5) * core.CellPxH,
	}

	switch msg.Action {
	case tea.MouseActionPress:
		body := m.world.Body()
		r := body.Rect()
		if p.X >= r.X && p.X <= r.Right() && p.Y >= r.Y && p.Y <= r.Bottom() {
			// Grabbing the mascot freezes it; no frames are wanted while held.
			m.loop.Stop()
			m.world.DragStart(p)
			return m, nil
		}
		if b, ok := m.scn.ButtonAt(msg.X, msg.Y); ok {
			return m.activate(b.Tag)
		}
		// Clicking empty space pokes the mascot.
		m.world.Jump()
		return m.wake()

	case tea.MouseActionMotion:
		if m.world.Body().Dragging {
			m.scn.Apply(m.world.DragMove(p))
		}
		return m, nil

	case tea.MouseActionRelease:
		if m.world.Body().Dragging {
			m.world.DragEnd()
			return m.wake()
		}
	}

	return m, nil
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.runtime.ScreenW = msg.Width
	m.runtime.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	// Layout positions depend on screen size, so the scene is rebuilt and
	// the mascot respawned. The running streak ends with the old scene.
	m.saveStreak()
	m.rebuild()
	return m.wake()
}

// handleTick advances the simulation by one frame.
func (m Model) handleTick(msg TickMsg) (tea.Model, tea.Cmd) {
	if !m.loop.Valid(msg.Gen) {
		// Stale tick: scheduled before a drag or stop. Drop it.
		return m, nil
	}

	dt := 1.0 / float64(m.runtime.TickRate)
	if !m.lastTick.IsZero() {
		dt = msg.Time.Sub(m.lastTick).Seconds()
	}
	m.lastTick = msg.Time

	// Events are applied before Advance so they land on the same scene frame
	// the step collided against.
	result := m.world.Step(dt)
	m.scn.Apply(result.Events)
	m.scn.Advance(dt)

	if m.loop.Observe(result.Settled) == physics.LoopRunning {
		return m, tickCmd(m.runtime.TickRate, m.loop.Gen())
	}

	// The mascot came to rest: the bounce streak is over.
	m.lastTick = time.Time{}
	m.saveStreak()
	return m, nil
}

// wake ensures the loop is running and schedules the next frame.
func (m Model) wake() (tea.Model, tea.Cmd) {
	wasRunning := m.loop.State() == physics.LoopRunning
	gen := m.loop.Start()
	if wasRunning {
		// A tick is already in flight for this generation.
		return m, nil
	}
	m.lastTick = time.Time{}
	return m, tickCmd(m.runtime.TickRate, gen)
}

// activate fires the action behind a button tag.
func (m Model) activate(tag string) (tea.Model, tea.Cmd) {
	switch tag {
	case "play":
		// Respawn and drop the mascot: the closest thing a title screen
		// has to starting the game.
		m.saveStreak()
		m.rebuild()
		return m.wake()
	case "streaks":
		return m.openStreaks()
	case "mute":
		m.toggleMute()
	case "quit":
		return m.quit()
	}
	return m, nil
}

// toggleMute flips and persists the mute setting.
func (m Model) toggleMute() {
	muted := !m.scn.Muted()
	m.scn.SetMuted(muted)
	if m.store != nil {
		//nolint:errcheck // Best-effort save
		m.store.SetMuted(muted)
	}
}

// saveStreak persists the finished bounce streak, if it is worth keeping.
func (m Model) saveStreak() {
	streak := m.scn.FinishStreak()
	if m.store == nil {
		return
	}
	//nolint:errcheck // Best-effort save
	m.store.SaveStreak(m.variant.ID(), streak)
}

// openStreaks switches to the streaks view.
func (m Model) openStreaks() (tea.Model, tea.Cmd) {
	m.loop.Stop()
	sm := NewStreaksModel(m.store, m.runtime.ScreenW, m.runtime.ScreenH)
	m.streaks = &sm
	return m, m.streaks.Init()
}

// updateStreaks forwards messages to the nested streaks view and returns to
// the splash when it exits.
func (m Model) updateStreaks(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.streaks.Update(msg)
	if sm, ok := newModel.(StreaksModel); ok {
		m.streaks = &sm
	}

	if m.streaks.IsQuitting() {
		return m.quit()
	}
	if m.streaks.IsGoingBack() {
		m.streaks = nil
		return m.wake()
	}
	return m, cmd
}

// quit flags shutdown and records the last variant for next time.
func (m Model) quit() (tea.Model, tea.Cmd) {
	m.saveStreak()
	if m.store != nil {
		//nolint:errcheck // Best-effort save
		m.store.SetLastVariant(m.variant.ID())
	}
	m.quitting = true
	return m, tea.Quit
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.streaks != nil {
		return m.streaks.View()
	}

	m.scn.Render(m.screen, m.world.Body())
	return RenderScreen(m.screen)
}

// Run starts the Bubble Tea program for the given variant.
func Run(variant registry.Variant, cfg config.SplashConfig, store *storage.Store, runtime core.RuntimeConfig) error {
	model := NewModel(variant, cfg, store, runtime)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),      // Use alternate screen buffer
		tea.WithMouseAllMotion(), // Drag needs motion events between press and release
	)

	_, err := p.Run()
	return err
}
