// Package variants defines the built-in title screen compositions and
// registers them with the registry. Each variant is pure layout: it places
// the title letters, the button column, and the decorative pieces for a
// given screen size and leaves simulation and rendering to the scene.
package variants

import (
	"github.com/okhotin/tui-splash/internal/core"
	"github.com/okhotin/tui-splash/internal/scene"
)

// Title word spelled by the letter blocks. Each letter is a solid
// rectangle the mascot can land on.
const titleWord = "SPLASH"

// letterRow lays out the word as evenly spaced letter blocks centered on
// the screen, returning one Letter per rune.
func letterRow(screenW, y, w, h, gap int, color core.Color) []scene.Letter {
	n := len(titleWord)
	total := n*w + (n-1)*gap
	x := (screenW - total) / 2
	if x < 1 {
		x = 1
	}

	letters := make([]scene.Letter, 0, n)
	for _, r := range titleWord {
		letters = append(letters, scene.Letter{
			Char: r, X: x, Y: y, W: w, H: h, Color: color,
		})
		x += w + gap
	}
	return letters
}

// buttonColumn stacks the standard buttons centered below the given row.
func buttonColumn(screenW, y, w, h, gap int, color core.Color) []scene.Button {
	x := (screenW - w) / 2
	labels := []struct {
		tag, label string
	}{
		{"play", "PLAY"},
		{"streaks", "STREAKS"},
		{"mute", "MUTE"},
		{"quit", "QUIT"},
	}

	buttons := make([]scene.Button, 0, len(labels))
	for _, l := range labels {
		buttons = append(buttons, scene.Button{
			Tag: l.tag, Label: l.label, X: x, Y: y, W: w, H: h, Color: color,
		})
		y += h + gap
	}
	return buttons
}
