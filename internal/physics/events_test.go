package physics

import (
	"testing"
)

// movingProvider lets a test reposition obstacles between frames, like hover
// effects do on the real screen.
type movingProvider struct {
	obs []Obstacle
}

func (p *movingProvider) Obstacles() []Obstacle { return p.obs }

func buttonAt(x, y float64, tag string) Obstacle {
	return Obstacle{Rect: NewRect(x, y, 120, 40), Tag: tag}
}

func TestButtonEnterExitOncePerVisit(t *testing.T) {
	p := &movingProvider{obs: []Obstacle{buttonAt(300, 500, "play")}}
	w := NewWorld(DefaultTuning(), p, 1)
	w.SetViewport(800, 600)
	w.SetBodySize(40, 48)
	// Land softly right away so contact is continuous for the whole run; a
	// hard bounce would legitimately break contact and emit an exit.
	w.SetPosition(Vec2{X: 320, Y: 451})
	w.body.Vel.Y = 100

	var enters, exits int
	count := func(events []Event) {
		for _, e := range events {
			switch e.Kind {
			case EventButtonEnter:
				if e.Tag != "play" {
					t.Errorf("enter event for tag %q, want play", e.Tag)
				}
				enters++
			case EventButtonExit:
				if e.Tag != "play" {
					t.Errorf("exit event for tag %q, want play", e.Tag)
				}
				exits++
			}
		}
	}

	// Rest on the button for a while.
	for i := 0; i < 120; i++ {
		count(w.Step(dt).Events)
	}
	if enters != 1 {
		t.Fatalf("got %d enter events while continuously overlapping, want 1", enters)
	}
	if exits != 0 {
		t.Fatalf("got %d exit events before leaving, want 0", exits)
	}

	// Move the button away; the body is no longer touching it.
	p.obs[0].Rect.X = 700
	count(w.Step(dt).Events)

	if exits != 1 {
		t.Errorf("got %d exit events after leaving, want 1", exits)
	}
	if enters != 1 {
		t.Errorf("got %d enter events total, want 1", enters)
	}
}

func TestOnlyMostRecentButtonTracked(t *testing.T) {
	// Two buttons side by side, body wide enough to overlap both at once.
	p := &movingProvider{obs: []Obstacle{
		buttonAt(300, 500, "play"),
		buttonAt(420, 500, "scores"),
	}}
	w := NewWorld(DefaultTuning(), p, 1)
	w.SetViewport(800, 600)
	w.SetBodySize(200, 48)
	w.SetPosition(Vec2{X: 310, Y: 452})

	res := w.Step(dt)

	// Overlapping both in one frame: exactly one transition, the most
	// recently entered tag in provider order.
	var entered []string
	for _, e := range res.Events {
		if e.Kind == EventButtonEnter {
			entered = append(entered, e.Tag)
		}
	}
	if len(entered) != 1 {
		t.Fatalf("got %d enter events for simultaneous overlap, want 1", len(entered))
	}
	if entered[0] != "scores" {
		t.Errorf("tracked tag %q, want the most recent %q", entered[0], "scores")
	}

	// Second button stays silent until the tracked one is left.
	for i := 0; i < 30; i++ {
		for _, e := range w.Step(dt).Events {
			if e.Kind == EventButtonEnter || e.Kind == EventButtonExit {
				t.Fatalf("unexpected %s(%s) while both buttons stay overlapped", e.Kind, e.Tag)
			}
		}
	}

	// Drop the tracked button: exit for it, enter for the survivor.
	p.obs = p.obs[:1]
	res = w.Step(dt)

	var kinds []string
	for _, e := range res.Events {
		if e.Kind == EventButtonEnter || e.Kind == EventButtonExit {
			kinds = append(kinds, e.Kind.String()+":"+e.Tag)
		}
	}
	if len(kinds) != 2 || kinds[0] != "ButtonExit:scores" || kinds[1] != "ButtonEnter:play" {
		t.Errorf("transition sequence = %v, want [ButtonExit:scores ButtonEnter:play]", kinds)
	}
}

func TestDecorativePieceShakes(t *testing.T) {
	piece := Obstacle{Rect: NewRect(380, 500, 60, 60)}
	w := testWorld(piece)
	w.SetPosition(Vec2{X: 390, Y: 449})
	w.body.Vel.Y = 300

	res := w.Step(dt)

	found := false
	for _, e := range res.Events {
		if e.Kind == EventPieceShaken {
			found = true
			if e.Obstacle.Rect != piece.Rect {
				t.Errorf("shake event carries obstacle %+v, want %+v", e.Obstacle.Rect, piece.Rect)
			}
		}
	}
	if !found {
		t.Error("bumping a decorative piece produced no shake event")
	}
}

func TestLettersAndButtonsDoNotShake(t *testing.T) {
	for _, tc := range []struct {
		name string
		obs  Obstacle
	}{
		{"letter", Obstacle{Rect: NewRect(380, 500, 60, 60), Letter: true}},
		{"button", Obstacle{Rect: NewRect(380, 500, 60, 60), Tag: "play"}},
	} {
		t.Run(tc.name, func(t *testing.T) {
			w := testWorld(tc.obs)
			w.SetPosition(Vec2{X: 390, Y: 449})
			w.body.Vel.Y = 300

			res := w.Step(dt)

			if hasEvent(res.Events, EventPieceShaken) {
				t.Errorf("%s produced a shake event", tc.name)
			}
		})
	}
}

func TestDragAcrossButtonEmitsTransitions(t *testing.T) {
	w := testWorld(buttonAt(300, 500, "play"))
	w.SetPosition(Vec2{X: 100, Y: 100})
	w.DragStart(Vec2{X: 110, Y: 110})

	var enters, exits int
	drag := func(x, y float64) {
		for _, e := range w.DragMove(Vec2{X: x, Y: y}) {
			switch e.Kind {
			case EventButtonEnter:
				enters++
			case EventButtonExit:
				exits++
			}
		}
	}

	drag(200, 300) // still clear of the button
	drag(330, 520) // onto it
	drag(350, 530) // across it
	drag(100, 100) // and back out

	if enters != 1 || exits != 1 {
		t.Errorf("drag across button produced %d enters and %d exits, want 1 and 1", enters, exits)
	}

	// Gravity stayed suspended for the whole drag.
	if v := w.Body().Vel; v != (Vec2{}) {
		t.Errorf("velocity during drag = %+v, want zero", v)
	}
}

func TestEventKindStrings(t *testing.T) {
	for kind, want := range map[EventKind]string{
		EventLanded:      "Landed",
		EventButtonEnter: "ButtonEnter",
		EventButtonExit:  "ButtonExit",
		EventPieceShaken: "PieceShaken",
	} {
		if got := kind.String(); got != want {
			t.Errorf("EventKind(%d).String() = %q, want %q", kind, got, want)
		}
	}
	if got := EventKind(99).String(); got != "Unknown" {
		t.Errorf("unknown kind String() = %q, want Unknown", got)
	}
}
