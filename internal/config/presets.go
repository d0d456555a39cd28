package config

// FeelPreset names a coarse adjustment of the physics constants, for people
// who want a different mood without editing YAML.
type FeelPreset string

const (
	FeelFloaty FeelPreset = "floaty" // moon gravity, springy bounces
	FeelNormal FeelPreset = "normal" // the shipped tuning, unchanged
	FeelHeavy  FeelPreset = "heavy"  // lead mascot, dead bounces
)

// ParseFeelPreset maps a CLI string to a preset. Empty means normal.
func ParseFeelPreset(s string) (FeelPreset, bool) {
	switch s {
	case "", "normal":
		return FeelNormal, true
	case "floaty":
		return FeelFloaty, true
	case "heavy":
		return FeelHeavy, true
	default:
		return FeelNormal, false
	}
}

// ApplyFeelPreset scales the loaded config in place. Material landing
// thresholds and frictions are left alone; the presets change how the mascot
// flies, not how it grips.
func ApplyFeelPreset(cfg *SplashConfig, preset FeelPreset) {
	switch preset {
	case FeelFloaty:
		cfg.Physics.Gravity *= 0.45
		cfg.Physics.JumpImpulse *= 0.8
		cfg.Physics.BoundaryBounce = minF(cfg.Physics.BoundaryBounce+0.15, 0.95)
		cfg.Materials.Ground.Bounce = minF(cfg.Materials.Ground.Bounce+0.15, 0.95)
		cfg.Materials.Letter.Bounce = minF(cfg.Materials.Letter.Bounce+0.15, 0.95)
	case FeelHeavy:
		cfg.Physics.Gravity *= 1.6
		cfg.Physics.JumpImpulse *= 1.1
		cfg.Physics.BoundaryBounce = maxF(cfg.Physics.BoundaryBounce-0.25, 0.2)
		cfg.Materials.Ground.Bounce = maxF(cfg.Materials.Ground.Bounce-0.25, 0.2)
		cfg.Materials.Letter.Bounce = maxF(cfg.Materials.Letter.Bounce-0.25, 0.2)
	case FeelNormal:
		// Shipped tuning as-is.
	}
}

func minF(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

func maxF(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
