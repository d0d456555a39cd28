package variants

import (
	"github.com/okhotin/tui-splash/internal/core"
	"github.com/okhotin/tui-splash/internal/registry"
	"github.com/okhotin/tui-splash/internal/scene"
)

// Compact squeezes the whole screen into small terminals: one-row letters,
// a tight button column, no decoration.
type Compact struct{}

func (Compact) ID() string    { return "compact" }
func (Compact) Title() string { return "Compact" }

func (Compact) Layout(cfg core.RuntimeConfig) *scene.Layout {
	return &scene.Layout{
		VariantID: "compact",
		Title:     "Compact",
		Letters:   letterRow(cfg.ScreenW, 2, 3, 1, 1, core.ColorYellow),
		Buttons:   buttonColumn(cfg.ScreenW, 6, 12, 3, 0, core.ColorWhite),
		Tagline:   "",
	}
}

func init() {
	registry.Register("compact", func() registry.Variant {
		return Compact{}
	})
}
