package variants

import (
	"github.com/okhotin/tui-splash/internal/core"
	"github.com/okhotin/tui-splash/internal/registry"
	"github.com/okhotin/tui-splash/internal/scene"
)

// Neon is the loud composition: bright palette, wider letters, and more
// drift on the decorative pieces.
type Neon struct{}

func (Neon) ID() string    { return "neon" }
func (Neon) Title() string { return "Neon" }

func (Neon) Layout(cfg core.RuntimeConfig) *scene.Layout {
	return &scene.Layout{
		VariantID: "neon",
		Title:     "Neon",
		Letters:   letterRow(cfg.ScreenW, 3, 5, 3, 1, core.ColorBrightMagenta),
		Buttons:   buttonColumn(cfg.ScreenW, 11, 16, 3, 0, core.ColorBrightCyan),
		Pieces: []scene.Piece{
			{Glyph: '◆', X: 4, Y: 9, W: 2, H: 1, Color: core.ColorBrightYellow, DriftAmp: 4},
			{Glyph: '◆', X: float64(cfg.ScreenW - 7), Y: 9, W: 2, H: 1, Color: core.ColorBrightYellow, DriftAmp: 4, DriftPhase: 3.14},
			{Glyph: '█', X: 10, Y: 15, W: 3, H: 2, Color: core.ColorOrange, DriftAmp: 3, DriftPhase: 0.9},
			{Glyph: '█', X: float64(cfg.ScreenW - 14), Y: 16, W: 3, H: 2, Color: core.ColorOrange, DriftAmp: 3, DriftPhase: 2.2},
		},
		Tagline: "** bounce responsibly **",
	}
}

func init() {
	registry.Register("neon", func() registry.Variant {
		return Neon{}
	})
}
