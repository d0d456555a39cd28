package physics

// Material describes how the mascot reacts when it collides with a class of
// obstacle. Values are tuned gameplay constants; changing them changes the
// feel of the whole screen, so overrides come in through config, never by
// editing call sites.
type Material struct {
	// Bounce damps the reflected velocity component on a hard impact.
	Bounce float64
	// Friction multiplies horizontal velocity each frame while resting on
	// top of the obstacle.
	Friction float64
	// LandingThreshold is the speed (px/s) below which contact resolves as
	// resting contact instead of a bounce.
	LandingThreshold float64
	// RestEpsilon is the horizontal speed below which friction decay snaps
	// straight to zero instead of creeping forever.
	RestEpsilon float64
}

// Tuning holds every numeric constant the simulation uses. DefaultTuning
// returns the values the screen was tuned with; the config package can
// override any of them from YAML.
type Tuning struct {
	// Gravity is the downward acceleration in px/s².
	Gravity float64
	// BoundaryBounce damps velocity when reflecting off a viewport edge.
	BoundaryBounce float64
	// LoudImpactSpeed is the vertical speed (px/s) above which a contact is
	// worth a landing notification (thud sound, flash).
	LoudImpactSpeed float64
	// JumpImpulse is the vertical velocity applied by a click or jump key.
	// Negative is up.
	JumpImpulse float64
	// JumpJitter is the maximum magnitude of the random horizontal velocity
	// mixed into a jump.
	JumpJitter float64
	// RestSpeed is the per-axis speed below which the scheduler may go idle.
	RestSpeed float64
	// MaxStep clamps dt so a backgrounded terminal does not come back with
	// one enormous integration step.
	MaxStep float64
	// MaxTilt caps the cosmetic tilt (degrees) derived from drag motion.
	MaxTilt float64

	// Ground applies to buttons, decorative pieces, and anything else that
	// is not a title letter.
	Ground Material
	// Letter applies to single-character title letters, which are grippier
	// so the mascot can perch on them.
	Letter Material
}

// DefaultTuning returns the tuned constants the title screen ships with.
func DefaultTuning() Tuning {
	return Tuning{
		Gravity:         2000,
		BoundaryBounce:  0.7,
		LoudImpactSpeed: 100,
		JumpImpulse:     -800,
		JumpJitter:      100,
		RestSpeed:       1,
		MaxStep:         0.05,
		MaxTilt:         15,
		Ground: Material{
			Bounce:           0.7,
			Friction:         0.95,
			LandingThreshold: 150,
			RestEpsilon:      5,
		},
		Letter: Material{
			Bounce:           0.7,
			Friction:         0.98,
			LandingThreshold: 200,
			RestEpsilon:      2,
		},
	}
}
