package tui

import (
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/okhotin/tui-splash/internal/config"
	"github.com/okhotin/tui-splash/internal/core"
	"github.com/okhotin/tui-splash/internal/physics"
	"github.com/okhotin/tui-splash/internal/scene"
	"github.com/okhotin/tui-splash/internal/storage"
)

// stubVariant is the smallest layout a model can run on: one letter to spawn
// above and one button.
type stubVariant struct{}

func (stubVariant) ID() string    { return "stub" }
func (stubVariant) Title() string { return "Stub" }
func (stubVariant) Layout(core.RuntimeConfig) *scene.Layout {
	return &scene.Layout{
		VariantID: "stub",
		Title:     "STUB",
		Letters: []scene.Letter{
			{Char: 'S', X: 10, Y: 4, W: 4, H: 2, Color: core.ColorCyan},
		},
		Buttons: []scene.Button{
			{Tag: "play", Label: "PLAY", X: 30, Y: 12, W: 12, H: 3, Color: core.ColorWhite},
		},
	}
}

func testModel(t *testing.T, store *storage.Store) Model {
	t.Helper()
	return NewModel(stubVariant{}, config.DefaultSplashConfig(), store, core.DefaultConfig())
}

func resizeModel(t *testing.T, m Model, w, h int) Model {
	t.Helper()
	updated, _ := m.Update(tea.WindowSizeMsg{Width: w, Height: h})
	next, ok := updated.(Model)
	if !ok {
		t.Fatalf("Update returned %T, want Model", updated)
	}
	return next
}

func TestMuteSurvivesResize(t *testing.T) {
	m := testModel(t, nil)
	m.toggleMute()
	if !m.scn.Muted() {
		t.Fatal("mute toggle did not stick")
	}

	m = resizeModel(t, m, 100, 30)

	if !m.scn.Muted() {
		t.Error("resize reset the mute state")
	}
}

func TestResizeFinishesStreak(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "streaks.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	defer store.Close()

	m := testModel(t, store)
	landed := []physics.Event{{Kind: physics.EventLanded}}
	m.scn.Apply(landed)
	m.scn.Apply(landed)

	m = resizeModel(t, m, 100, 30)

	if got := m.scn.Streak(); got != 0 {
		t.Errorf("streak after resize = %d, want 0", got)
	}
	best, err := store.BestStreak("stub")
	if err != nil {
		t.Fatalf("best streak: %v", err)
	}
	if best != 2 {
		t.Errorf("recorded streak = %d, want 2", best)
	}
}
