package physics

import (
	"math"
	"testing"
)

const dt = 1.0 / 60

// testWorld builds a world over a 800x600 viewport with a 40x48 body placed
// mid-air so nothing interferes unless a test says so.
func testWorld(obs ...Obstacle) *World {
	w := NewWorld(DefaultTuning(), ObstacleFunc(func() []Obstacle { return obs }), 1)
	w.SetViewport(800, 600)
	w.SetBodySize(40, 48)
	w.SetPosition(Vec2{X: 400, Y: 100})
	return w
}

func TestGravityIntegration(t *testing.T) {
	w := testWorld()
	before := w.Body().Vel.Y

	w.Step(dt)

	want := before + DefaultTuning().Gravity*dt
	if got := w.Body().Vel.Y; math.Abs(got-want) > 1e-9 {
		t.Errorf("velocity after one step = %v, want %v", got, want)
	}
}

func TestNonPositiveDTIsNoOp(t *testing.T) {
	for _, bad := range []float64{0, -0.1} {
		w := testWorld()
		before := w.Body()

		res := w.Step(bad)

		if got := w.Body(); got != before {
			t.Errorf("dt=%v mutated body: %+v -> %+v", bad, before, got)
		}
		if len(res.Events) != 0 {
			t.Errorf("dt=%v produced %d events, want 0", bad, len(res.Events))
		}
	}
}

func TestOversizedDTIsClamped(t *testing.T) {
	w := testWorld()

	w.Step(10) // e.g. terminal was backgrounded for ten seconds

	want := DefaultTuning().Gravity * DefaultTuning().MaxStep
	if got := w.Body().Vel.Y; math.Abs(got-want) > 1e-9 {
		t.Errorf("velocity after clamped step = %v, want %v", got, want)
	}
}

func TestBodyNeverEscapesViewport(t *testing.T) {
	w := testWorld()
	// Throw the body around hard for a while.
	w.Jump()
	w.Nudge(-390)
	for i := 0; i < 600; i++ {
		if i%120 == 0 {
			w.Jump()
		}
		w.Step(dt)
		b := w.Body()
		if b.Pos.X < 0 || b.Pos.X > 800-b.W || b.Pos.Y < 0 || b.Pos.Y > 600-b.H {
			t.Fatalf("step %d: body escaped viewport at %+v", i, b.Pos)
		}
	}
}

func TestBoundaryBounceDamping(t *testing.T) {
	tun := DefaultTuning()

	t.Run("ceiling", func(t *testing.T) {
		w := testWorld()
		w.SetPosition(Vec2{X: 400, Y: 2})
		w.body.Vel.Y = -500

		w.Step(dt)

		b := w.Body()
		if b.Pos.Y != 0 {
			t.Errorf("position.y = %v, want clamped to 0", b.Pos.Y)
		}
		// Bounce symmetry: magnitude damped by the boundary factor, sign
		// flipped. Gravity acted for one step before the reflection.
		want := (500 - tun.Gravity*dt) * tun.BoundaryBounce
		if math.Abs(b.Vel.Y-want) > 1e-9 {
			t.Errorf("velocity.y after ceiling bounce = %v, want %v", b.Vel.Y, want)
		}
	})

	t.Run("left wall", func(t *testing.T) {
		w := testWorld()
		w.SetPosition(Vec2{X: 1, Y: 100})
		w.body.Vel.X = -300

		w.Step(dt)

		b := w.Body()
		if b.Pos.X != 0 {
			t.Errorf("position.x = %v, want clamped to 0", b.Pos.X)
		}
		if want := 300 * tun.BoundaryBounce; math.Abs(b.Vel.X-want) > 1e-9 {
			t.Errorf("velocity.x after wall bounce = %v, want %v", b.Vel.X, want)
		}
	})
}

func TestLoudFloorImpactNotifies(t *testing.T) {
	w := testWorld()
	w.SetPosition(Vec2{X: 400, Y: 551}) // floor at 600, body height 48
	w.body.Vel.Y = 400

	res := w.Step(dt)

	if !hasEvent(res.Events, EventLanded) {
		t.Error("fast floor impact produced no landing event")
	}

	// A slow touch should stay quiet.
	w = testWorld()
	w.SetPosition(Vec2{X: 400, Y: 551.5})
	w.body.Vel.Y = 30

	res = w.Step(dt)

	if hasEvent(res.Events, EventLanded) {
		t.Error("soft floor touch produced a landing event")
	}
}

// The canonical drop scenario: an untagged ground platform with its top at
// y=500, body height 48, so the resting position is exactly y=452.
func groundAt500() Obstacle {
	return Obstacle{Rect: NewRect(300, 500, 200, 30)}
}

func TestFastDropBounces(t *testing.T) {
	w := testWorld(groundAt500())
	w.SetPosition(Vec2{X: 400, Y: 449})
	w.body.Vel.Y = 300 // well above the ground landing threshold

	res := w.Step(dt)

	b := w.Body()
	if b.Vel.Y >= 0 {
		t.Errorf("velocity.y = %v, want sign flipped upward", b.Vel.Y)
	}
	if b.Pos.Y > 452 {
		t.Errorf("position.y = %v, want pushed back to 452 or above", b.Pos.Y)
	}
	if !hasEvent(res.Events, EventLanded) {
		t.Error("loud impact produced no landing event")
	}
}

func TestSlowDropSnapsToRest(t *testing.T) {
	w := testWorld(groundAt500())
	w.SetPosition(Vec2{X: 400, Y: 451})
	w.body.Vel.Y = 100 // below the ground landing threshold of 150

	w.Step(dt)

	b := w.Body()
	if b.Pos.Y != 452 {
		t.Errorf("position.y = %v, want snapped to 452", b.Pos.Y)
	}
	if b.Vel.Y != 0 {
		t.Errorf("velocity.y = %v, want 0 after soft landing", b.Vel.Y)
	}
}

func TestDropFromRestEventuallySettles(t *testing.T) {
	w := testWorld(groundAt500())
	w.SetPosition(Vec2{X: 400, Y: 0})

	settled := false
	for i := 0; i < 1200; i++ {
		if w.Step(dt).Settled {
			settled = true
			break
		}
	}
	if !settled {
		t.Fatal("body never settled after dropping onto a platform")
	}
	b := w.Body()
	if b.Pos.Y != 452 {
		t.Errorf("resting position.y = %v, want 452", b.Pos.Y)
	}
	if b.Vel.Y != 0 {
		t.Errorf("resting velocity.y = %v, want 0", b.Vel.Y)
	}
}

func TestBounceApexDoesNotSettle(t *testing.T) {
	w := testWorld(groundAt500())
	// After one step of gravity this leaves the body nearly motionless but
	// still well above the platform, exactly like the top of a bounce arc.
	w.SetPosition(Vec2{X: 400, Y: 300})
	w.body.Vel.Y = -DefaultTuning().Gravity*dt + 0.5

	res := w.Step(dt)

	if got := math.Abs(w.Body().Vel.Y); got >= DefaultTuning().RestSpeed {
		t.Fatalf("velocity.y magnitude = %v, want below the rest speed", got)
	}
	if res.Settled {
		t.Error("mid-air apex with near-zero velocity reported settled")
	}
}

func TestSlowFloorTouchComesToRest(t *testing.T) {
	w := testWorld()
	w.SetPosition(Vec2{X: 400, Y: 551.5}) // floor at 600, body height 48
	w.body.Vel.Y = 30

	res := w.Step(dt)

	b := w.Body()
	if b.Pos.Y != 552 {
		t.Errorf("position.y = %v, want pinned to the floor at 552", b.Pos.Y)
	}
	if b.Vel.Y != 0 {
		t.Errorf("velocity.y = %v, want 0 after a slow floor touch", b.Vel.Y)
	}
	if !res.Settled {
		t.Error("body resting on the floor not settled")
	}
}

func TestRestingFrictionConvergesToZero(t *testing.T) {
	w := testWorld(groundAt500())
	w.SetPosition(Vec2{X: 390, Y: 452}) // touching counts as contact
	w.body.Vel.X = 50

	mat := DefaultTuning().Ground
	for i := 0; i < 200; i++ {
		w.Step(dt)
		b := w.Body()
		if b.Pos.Y != 452 {
			t.Fatalf("step %d: position.y = %v, want pinned at 452", i, b.Pos.Y)
		}
		if b.Vel.X == 0 {
			return // converged, geometric decay terminated by the epsilon
		}
		if math.Abs(b.Vel.X) >= 50*math.Pow(mat.Friction, float64(i))+1e-9 {
			t.Fatalf("step %d: velocity.x = %v decays slower than friction", i, b.Vel.X)
		}
	}
	t.Error("velocity.x never reached exactly 0 while resting")
}

func TestLetterMaterialIsGrippier(t *testing.T) {
	letter := Obstacle{Rect: NewRect(300, 500, 60, 80), Letter: true}
	w := testWorld(letter)
	w.SetPosition(Vec2{X: 310, Y: 452})
	w.body.Vel.X = 50

	w.Step(dt)

	tun := DefaultTuning()
	want := 50 * tun.Letter.Friction
	if got := w.Body().Vel.X; math.Abs(got-want) > 1e-9 {
		t.Errorf("velocity.x on a letter = %v, want %v (letter friction)", got, want)
	}

	// Letters land softly at speeds that would bounce off ground obstacles.
	w = testWorld(letter)
	w.SetPosition(Vec2{X: 310, Y: 451})
	w.body.Vel.Y = 160 // past 150 after gravity, still below the letter's 200

	w.Step(dt)

	if got := w.Body().Vel.Y; got != 0 {
		t.Errorf("velocity.y landing on a letter at 180 px/s = %v, want 0", got)
	}
}

func TestCollisionFromBelowBounces(t *testing.T) {
	w := testWorld(Obstacle{Rect: NewRect(300, 40, 200, 30)})
	w.SetPosition(Vec2{X: 400, Y: 72}) // body top just inside the obstacle
	w.body.Vel.Y = -400

	w.Step(dt)

	b := w.Body()
	if b.Vel.Y <= 0 {
		t.Errorf("velocity.y = %v, want reflected downward", b.Vel.Y)
	}
	if b.Pos.Y < 70 {
		t.Errorf("position.y = %v, want pushed below the obstacle bottom", b.Pos.Y)
	}
}

func TestSideCollision(t *testing.T) {
	// A tall pillar so horizontal overlap is always the smallest.
	pillar := Obstacle{Rect: NewRect(500, 0, 40, 600)}

	t.Run("slow push stops dead", func(t *testing.T) {
		w := testWorld(pillar)
		w.SetPosition(Vec2{X: 462, Y: 100})
		w.body.Vel.X = 100 // below the 150 threshold

		w.Step(dt)

		b := w.Body()
		if b.Vel.X != 0 {
			t.Errorf("velocity.x = %v, want soft stop to 0", b.Vel.X)
		}
		if b.Pos.X > 460 {
			t.Errorf("position.x = %v, want pushed out to 460 or less", b.Pos.X)
		}
	})

	t.Run("fast hit bounces", func(t *testing.T) {
		w := testWorld(pillar)
		w.SetPosition(Vec2{X: 462, Y: 100})
		w.body.Vel.X = 300

		w.Step(dt)

		tun := DefaultTuning()
		got := w.Body().Vel.X
		// One integration step moves the body further in before resolution.
		if want := -300 * tun.Ground.Bounce; math.Abs(got-want) > 1e-9 {
			t.Errorf("velocity.x = %v, want %v", got, want)
		}
	})
}

func TestTieBreakPrefersTop(t *testing.T) {
	// A square body exactly covering a square obstacle makes all four
	// overlap depths equal; the fixed priority order must pick top.
	w := testWorld()
	w.SetBodySize(40, 40)
	w.SetPosition(Vec2{X: 400, Y: 300})

	w.resolveOverlap(NewRect(400, 300, 40, 40), DefaultTuning().Ground)

	b := w.Body()
	if want := 300.0 - 40; b.Pos.Y != want {
		t.Errorf("position.y = %v, want snapped on top at %v", b.Pos.Y, want)
	}
	if b.Vel.Y != 0 {
		t.Errorf("velocity.y = %v, want 0 after a soft top resolution", b.Vel.Y)
	}
}

func TestEmptyAndOffscreenObstaclesAreSkipped(t *testing.T) {
	w := testWorld(
		Obstacle{Rect: NewRect(400, 100, 0, 0)},      // zero-sized
		Obstacle{Rect: NewRect(-500, -500, 100, 50)}, // outside the viewport
	)
	w.SetPosition(Vec2{X: 400, Y: 100})
	before := w.Body().Vel.X

	res := w.Step(dt)

	if got := w.Body().Vel.X; got != before {
		t.Errorf("degenerate obstacle changed velocity.x: %v -> %v", before, got)
	}
	for _, e := range res.Events {
		if e.Kind == EventPieceShaken {
			t.Error("degenerate obstacle produced a shake event")
		}
	}
}

func hasEvent(events []Event, kind EventKind) bool {
	for _, e := range events {
		if e.Kind == kind {
			return true
		}
	}
	return false
}
