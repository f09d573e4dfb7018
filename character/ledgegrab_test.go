package character

import (
	"testing"

	"github.com/automoto/doomerang-abilities/components"
	"github.com/automoto/doomerang-abilities/config"
	dmath "github.com/yohamta/donburi/features/math"
)

func newLedgeGrab(t *testing.T) (*Character, *LedgeGrab, *stubAbility) {
	t.Helper()
	c := newCharacter(t)
	other := &stubAbility{name: "other"}
	l, err := NewLedgeGrab(c)
	if err != nil {
		t.Fatalf("NewLedgeGrab: %v", err)
	}
	c.Attach(other)
	c.Attach(l)
	return c, l, other
}

func testLedge() *components.LedgeData {
	return &components.LedgeData{
		Position:    dmath.Vec2{X: 100, Y: 50},
		Direction:   components.LedgeGrabLeft,
		HangOffset:  dmath.Vec2{X: 0, Y: -1},
		ClimbOffset: dmath.Vec2{X: 10, Y: -40},
	}
}

func TestCanGrab(t *testing.T) {
	cases := []struct {
		name        string
		facingRight bool
		dir         components.LedgeGrabDirection
		want        bool
	}{
		{"right_onto_left", true, components.LedgeGrabLeft, true},
		{"left_onto_right", false, components.LedgeGrabRight, true},
		{"right_onto_right", true, components.LedgeGrabRight, false},
		{"left_onto_left", false, components.LedgeGrabLeft, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c, l, _ := newLedgeGrab(t)
			c.Controller.SetFacingRight(tc.facingRight)
			ledge := testLedge()
			ledge.Direction = tc.dir

			if got := l.StartGrabbingLedge(ledge); got != tc.want {
				t.Fatalf("expected %v, got %v", tc.want, got)
			}
			hanging := c.State.CurrentState == config.LedgeGrab
			if hanging != tc.want {
				t.Fatalf("state %v does not match grab result", c.State.CurrentState)
			}
			if !tc.want && (l.Ledge() != nil || !components.Physics.Get(c.Entry).CollisionsEnabled) {
				t.Fatalf("rejected grab must not touch the character")
			}
		})
	}
}

func TestStartGrabbingLedge(t *testing.T) {
	c, l, other := newLedgeGrab(t)
	c.Controller.SetForce(dmath.Vec2{X: 4, Y: 7})
	c.data.JumpsLeft = 0

	if !l.StartGrabbingLedge(testLedge()) {
		t.Fatalf("grab rejected")
	}

	if p := c.Controller.Position(); p.X != 100 || p.Y != 49 {
		t.Fatalf("expected hang position (100, 49), got %+v", p)
	}
	if c.State.CurrentState != config.LedgeGrab || c.State.PreviousState != config.Idle {
		t.Fatalf("unexpected states %v <- %v", c.State.CurrentState, c.State.PreviousState)
	}
	data := components.Physics.Get(c.Entry)
	if data.Speed.X != 0 || data.Speed.Y != 0 || data.GravityEnabled || data.CollisionsEnabled {
		t.Fatalf("hang should freeze the mover, got %+v", data)
	}
	if c.JumpsLeft() != 2 {
		t.Fatalf("jumps should be reset, got %d", c.JumpsLeft())
	}
	if other.enabled || !l.IsEnabled() {
		t.Fatalf("other abilities should be disabled while hanging")
	}
}

func TestLedgeHoldsForMinimumTime(t *testing.T) {
	c, l, _ := newLedgeGrab(t)
	l.StartGrabbingLedge(testLedge())
	axis(c, 0, 1)

	// 0.2s at 60Hz is 12 ticks.
	for i := 0; i < 11; i++ {
		step(c, tick)
	}
	if c.State.CurrentState != config.LedgeGrab {
		t.Fatalf("climbed before the minimum hang time: %v", c.State.CurrentState)
	}
	step(c, tick)
	if c.State.CurrentState != config.LedgeClimbing {
		t.Fatalf("expected climbing after 12 ticks, got %v", c.State.CurrentState)
	}
}

func TestLedgeIgnoresSmallAxis(t *testing.T) {
	c, l, _ := newLedgeGrab(t)
	l.StartGrabbingLedge(testLedge())
	axis(c, 1, 0.5)

	for i := 0; i < 60; i++ {
		step(c, tick)
	}
	if c.State.CurrentState != config.LedgeGrab || l.Ledge() == nil {
		t.Fatalf("axis at the threshold should keep hanging, got %v", c.State.CurrentState)
	}
}

func TestLedgeClimb(t *testing.T) {
	c, l, other := newLedgeGrab(t)
	l.StartGrabbingLedge(testLedge())
	axis(c, 0, 1)
	for i := 0; i < 12; i++ {
		step(c, tick)
	}
	if c.InputEnabled() || !l.Climbing() {
		t.Fatalf("climb should disable input")
	}

	progress := l.ClimbProgress()
	for i := 1; i <= 29; i++ {
		step(c, tick)
		if c.InputEnabled() {
			t.Fatalf("input re-enabled on climb tick %d", i)
		}
		if p := l.ClimbProgress(); p <= progress || p >= 1 {
			t.Fatalf("climb progress on tick %d should rise below 1, got %v after %v", i, p, progress)
		}
		progress = l.ClimbProgress()
		if c.State.CurrentState != config.LedgeClimbing {
			t.Fatalf("left climbing state on tick %d: %v", i, c.State.CurrentState)
		}
	}

	step(c, tick)
	if !c.InputEnabled() {
		t.Fatalf("input should be enabled once the climb finishes")
	}
	if c.State.CurrentState != config.Idle {
		t.Fatalf("expected idle after climbing, got %v", c.State.CurrentState)
	}
	if p := c.Controller.Position(); p.X != 110 || p.Y != 10 {
		t.Fatalf("expected climb position (110, 10), got %+v", p)
	}
	if l.Ledge() != nil || l.Climbing() {
		t.Fatalf("ledge should be released")
	}
	data := components.Physics.Get(c.Entry)
	if !data.GravityEnabled || !data.CollisionsEnabled || !other.enabled {
		t.Fatalf("detach should restore gravity, collisions and abilities")
	}
}

func TestLedgeRelease(t *testing.T) {
	c, l, other := newLedgeGrab(t)
	l.StartGrabbingLedge(testLedge())
	axis(c, 0, -1)
	for i := 0; i < 12; i++ {
		step(c, tick)
	}

	if c.State.CurrentState != config.Falling {
		t.Fatalf("expected falling, got %v", c.State.CurrentState)
	}
	if l.Ledge() != nil || !other.enabled || !c.InputEnabled() {
		t.Fatalf("release should detach and leave input alone")
	}
	data := components.Physics.Get(c.Entry)
	if !data.GravityEnabled || !data.CollisionsEnabled {
		t.Fatalf("release should restore gravity and collisions")
	}
}
