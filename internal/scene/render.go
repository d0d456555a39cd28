package scene

import (
	"fmt"

	"github.com/okhotin/tui-splash/internal/core"
	"github.com/okhotin/tui-splash/internal/physics"
)

// Render draws the whole frame: letters, buttons, pieces, the mascot, and
// the HUD line. The screen is cleared first, so callers just hand over the
// buffer.
func (s *Scene) Render(dst *core.Screen, body physics.Body) {
	dst.Clear()

	for _, l := range s.layout.Letters {
		drawLetter(dst, l)
	}
	for _, b := range s.layout.Buttons {
		s.drawButton(dst, b)
	}
	for i, p := range s.layout.Pieces {
		s.drawPiece(dst, i, p)
	}

	if s.layout.Tagline != "" {
		x := (dst.Width() - len(s.layout.Tagline)) / 2
		dst.DrawTextColor(x, s.taglineRow(), s.layout.Tagline, core.ColorGray)
	}

	s.drawMascot(dst, body)
	s.drawHUD(dst)
}

// taglineRow puts the tagline one row under the lowest letter.
func (s *Scene) taglineRow() int {
	row := 1
	for _, l := range s.layout.Letters {
		if b := l.Rect().Bottom(); b+1 > row {
			row = b + 1
		}
	}
	return row
}

// drawLetter fills the letter's block with its rune, a chunky banner glyph.
func drawLetter(dst *core.Screen, l Letter) {
	dst.DrawRect(l.Rect(), l.Char, l.Color)
}

func (s *Scene) drawButton(dst *core.Screen, b Button) {
	color := b.Color
	if s.highlight == b.Tag {
		color = core.ColorBrightWhite
	}
	dst.DrawBox(b.Rect(), color)

	label := b.Label
	if b.Tag == "mute" && s.muted {
		label = "UNMUTE"
	}
	lx := b.X + (b.W-len(label))/2
	ly := b.Y + b.H/2
	dst.DrawTextColor(lx, ly, label, color)
}

func (s *Scene) drawPiece(dst *core.Screen, i int, p Piece) {
	x, y := s.piecePos(i, p)
	cx, cy := int(x), int(y)
	if s.Shaking(i) {
		// Jitter one cell left/right while the shake timer runs.
		if int(s.elapsed*20)%2 == 0 {
			cx++
		} else {
			cx--
		}
	}
	color := p.Color
	if s.Shaking(i) {
		color = core.ColorBrightYellow
	}
	dst.DrawRect(core.NewRect(cx, cy, p.W, p.H), p.Glyph, color)
}

// Mascot sprite rows, normal and held. Two rows tall, five cells wide,
// matching the default mascot config.
var (
	mascotIdle = []string{"(o_o)", "/(.)\\"}
	mascotHeld = []string{"(>_<)", "/(.)\\"}
	mascotLean = []string{"(o_~)", "/(.)/"}
)

func (s *Scene) drawMascot(dst *core.Screen, body physics.Body) {
	cx := core.PxToCellX(body.Pos.X)
	cy := core.PxToCellY(body.Pos.Y)

	rows := mascotIdle
	switch {
	case body.Dragging:
		rows = mascotHeld
	case body.Tilt > 5 || body.Tilt < -5:
		rows = mascotLean
	}

	color := core.ColorBrightYellow
	if s.flash > 0 {
		color = core.ColorBrightWhite
	}
	for dy, row := range rows {
		dst.DrawTextColor(cx, cy+dy, row, color)
	}
}

func (s *Scene) drawHUD(dst *core.Screen) {
	hud := fmt.Sprintf(" %s ", s.layout.Title)
	dst.DrawTextColor(1, 0, hud, core.ColorGray)

	if s.streak > 1 {
		streak := fmt.Sprintf(" bounce x%d ", s.streak)
		dst.DrawTextColor(dst.Width()-len(streak)-1, 0, streak, core.ColorBrightCyan)
	}
	if s.muted {
		dst.DrawTextColor(dst.Width()-6, dst.Height()-1, "muted", core.ColorGray)
	}
}
