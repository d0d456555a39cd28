package core

// Color is an abstract foreground color for a screen cell. The platform
// layer maps these to ANSI codes; the scene only picks from the palette.
type Color uint8

// Palette used by the scene elements (letters, buttons, pieces, mascot).
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightYellow
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorGray
)
