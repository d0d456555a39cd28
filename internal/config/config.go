// Package config provides YAML-based tuning for the splash screen: every
// physics constant the simulation uses, plus a few scene options, loadable
// from a user file with embedded defaults and feel presets.
package config

import (
	"github.com/okhotin/tui-splash/internal/physics"
)

// SplashConfig contains all tunables for the splash screen.
type SplashConfig struct {
	Physics   PhysicsConfig   `yaml:"physics"`
	Materials MaterialsConfig `yaml:"materials"`
	Mascot    MascotConfig    `yaml:"mascot"`
	Scene     SceneConfig     `yaml:"scene"`
}

// PhysicsConfig defines the global simulation constants.
type PhysicsConfig struct {
	Gravity         float64 `yaml:"gravity"`           // px/s², downward
	BoundaryBounce  float64 `yaml:"boundary_bounce"`   // damping on viewport edges
	LoudImpactSpeed float64 `yaml:"loud_impact_speed"` // px/s, thud threshold
	JumpImpulse     float64 `yaml:"jump_impulse"`      // px/s, negative is up
	JumpJitter      float64 `yaml:"jump_jitter"`       // px/s, max random horizontal kick
	RestSpeed       float64 `yaml:"rest_speed"`        // px/s, scheduler idle threshold
	MaxStep         float64 `yaml:"max_step"`          // s, dt clamp
	MaxTilt         float64 `yaml:"max_tilt"`          // degrees, cosmetic tilt cap
}

// MaterialConfig defines per-obstacle-class collision response.
type MaterialConfig struct {
	Bounce           float64 `yaml:"bounce"`
	Friction         float64 `yaml:"friction"`
	LandingThreshold float64 `yaml:"landing_threshold"`
	RestEpsilon      float64 `yaml:"rest_epsilon"`
}

// MaterialsConfig holds the two material classes the screen distinguishes.
type MaterialsConfig struct {
	Ground MaterialConfig `yaml:"ground"` // buttons, pieces, anything non-letter
	Letter MaterialConfig `yaml:"letter"` // single-character title letters
}

// MascotConfig defines the sprite's size and spawn point.
type MascotConfig struct {
	WidthCells  int `yaml:"width_cells"`
	HeightCells int `yaml:"height_cells"`
	// SpawnLetter is the index of the title letter the mascot starts above.
	SpawnLetter int `yaml:"spawn_letter"`
}

// SceneConfig defines presentation-side behavior driven by physics events.
type SceneConfig struct {
	// ShakeMillis is how long a bumped decorative piece keeps shaking.
	ShakeMillis int `yaml:"shake_ms"`
	// DriftSpeed scales the decorative pieces' idle drift, in cells/s.
	DriftSpeed float64 `yaml:"drift_speed"`
}

// Tuning converts the config into the simulation's constant set.
func (c SplashConfig) Tuning() physics.Tuning {
	return physics.Tuning{
		Gravity:         c.Physics.Gravity,
		BoundaryBounce:  c.Physics.BoundaryBounce,
		LoudImpactSpeed: c.Physics.LoudImpactSpeed,
		JumpImpulse:     c.Physics.JumpImpulse,
		JumpJitter:      c.Physics.JumpJitter,
		RestSpeed:       c.Physics.RestSpeed,
		MaxStep:         c.Physics.MaxStep,
		MaxTilt:         c.Physics.MaxTilt,
		Ground:          c.Materials.Ground.material(),
		Letter:          c.Materials.Letter.material(),
	}
}

func (m MaterialConfig) material() physics.Material {
	return physics.Material{
		Bounce:           m.Bounce,
		Friction:         m.Friction,
		LandingThreshold: m.LandingThreshold,
		RestEpsilon:      m.RestEpsilon,
	}
}
