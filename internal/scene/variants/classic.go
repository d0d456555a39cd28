package variants

import (
	"github.com/okhotin/tui-splash/internal/core"
	"github.com/okhotin/tui-splash/internal/registry"
	"github.com/okhotin/tui-splash/internal/scene"
)

// Classic is the default composition: big letters up top, a button column
// below, and a few drifting blocks at the margins.
type Classic struct{}

func (Classic) ID() string    { return "classic" }
func (Classic) Title() string { return "Classic" }

func (Classic) Layout(cfg core.RuntimeConfig) *scene.Layout {
	return &scene.Layout{
		VariantID: "classic",
		Title:     "Classic",
		Letters:   letterRow(cfg.ScreenW, 4, 4, 2, 1, core.ColorCyan),
		Buttons:   buttonColumn(cfg.ScreenW, 9, 14, 3, 1, core.ColorWhite),
		Pieces: []scene.Piece{
			{Glyph: '▒', X: 6, Y: 8, W: 3, H: 2, Color: core.ColorMagenta, DriftAmp: 2},
			{Glyph: '░', X: float64(cfg.ScreenW - 10), Y: 12, W: 3, H: 2, Color: core.ColorBlue, DriftAmp: 3, DriftPhase: 1.7},
			{Glyph: '▓', X: 8, Y: 17, W: 2, H: 1, Color: core.ColorGray, DriftAmp: 1, DriftPhase: 3.1},
		},
		Tagline: "drop the little guy on a button",
	}
}

func init() {
	registry.Register("classic", func() registry.Variant {
		return Classic{}
	})
}
