package config

import (
	_ "embed"
)

//go:embed defaults/physics.yaml
var defaultSplashYAML []byte

// DefaultSplashConfig returns the tuned constants the screen ships with.
// Kept in sync with defaults/physics.yaml; this is the last-resort fallback
// if the embedded YAML somehow fails to parse.
func DefaultSplashConfig() SplashConfig {
	return SplashConfig{
		Physics: PhysicsConfig{
			Gravity:         2000,
			BoundaryBounce:  0.7,
			LoudImpactSpeed: 100,
			JumpImpulse:     -800,
			JumpJitter:      100,
			RestSpeed:       1,
			MaxStep:         0.05,
			MaxTilt:         15,
		},
		Materials: MaterialsConfig{
			Ground: MaterialConfig{
				Bounce:           0.7,
				Friction:         0.95,
				LandingThreshold: 150,
				RestEpsilon:      5,
			},
			Letter: MaterialConfig{
				Bounce:           0.7,
				Friction:         0.98,
				LandingThreshold: 200,
				RestEpsilon:      2,
			},
		},
		Mascot: MascotConfig{
			WidthCells:  5,
			HeightCells: 2,
			SpawnLetter: 0,
		},
		Scene: SceneConfig{
			ShakeMillis: 500,
			DriftSpeed:  0.6,
		},
	}
}

// DefaultYAML returns the embedded default YAML, for the config command.
func DefaultYAML() []byte {
	return defaultSplashYAML
}
