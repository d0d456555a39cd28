package core

// RuntimeConfig contains configuration passed to the scene at initialization.
// The scene uses it to lay itself out for the terminal size and to seed the
// simulation deterministically.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Animation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic jumps and drifts
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in the platform layer
	}
}

// ViewportPx returns the viewport size in simulation pixels.
func (c RuntimeConfig) ViewportPx() (w, h float64) {
	return float64(c.ScreenW) * CellPxW, float64(c.ScreenH) * CellPxH
}
