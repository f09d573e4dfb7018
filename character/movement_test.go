package character

import (
	"testing"

	"github.com/automoto/doomerang-abilities/components"
	"github.com/automoto/doomerang-abilities/config"
	"github.com/automoto/doomerang-abilities/input"
	"github.com/solarlune/resolv"
)

func newMovement(t *testing.T) (*Character, *Movement) {
	t.Helper()
	c := newCharacter(t)
	m, err := NewMovement(c)
	if err != nil {
		t.Fatalf("NewMovement: %v", err)
	}
	c.Attach(m)
	components.Physics.Get(c.Entry).OnGround = resolv.NewObject(0, 72, 640, 16, "solid")
	return c, m
}

func TestMovementRunsAndFaces(t *testing.T) {
	c, _ := newMovement(t)

	axis(c, -1, 0)
	step(c, tick)
	if got := c.Controller.Speed().X; got != -config.Physics.MaxSpeed {
		t.Fatalf("expected %v, got %v", -config.Physics.MaxSpeed, got)
	}
	if c.Controller.IsFacingRight() || c.State.CurrentState != config.Running {
		t.Fatalf("expected running left, got %v facingRight=%v", c.State.CurrentState, c.Controller.IsFacingRight())
	}

	axis(c, 0, 0)
	step(c, tick)
	if c.State.CurrentState != config.Idle || c.Controller.IsFacingRight() {
		t.Fatalf("expected idle facing left, got %v", c.State.CurrentState)
	}
}

func TestMovementJumps(t *testing.T) {
	c, _ := newMovement(t)

	press(c, config.ActionJump, input.Started)
	step(c, tick)
	if c.State.CurrentState != config.Jump || c.JumpsLeft() != 1 {
		t.Fatalf("expected jump with 1 left, got %v/%d", c.State.CurrentState, c.JumpsLeft())
	}
	if got := c.Controller.Speed().Y; got != -config.Character.JumpSpeed {
		t.Fatalf("expected vertical force %v, got %v", -config.Character.JumpSpeed, got)
	}

	components.Physics.Get(c.Entry).OnGround = nil
	press(c, config.ActionJump, input.Started)
	step(c, tick)
	press(c, config.ActionJump, input.Started)
	step(c, tick)
	if c.JumpsLeft() != 0 {
		t.Fatalf("expected jumps exhausted, got %d", c.JumpsLeft())
	}

	c.Controller.SetVerticalForce(2)
	step(c, tick)
	if c.State.CurrentState != config.Falling {
		t.Fatalf("expected falling, got %v", c.State.CurrentState)
	}
}

func TestMovementYieldsToExclusiveStates(t *testing.T) {
	c, _ := newMovement(t)
	axis(c, 1, 0)

	c.State.ChangeState(config.LedgeGrab)
	press(c, config.ActionJump, input.Started)
	step(c, tick)
	if c.State.CurrentState != config.LedgeGrab || c.Controller.Speed().X != 0 {
		t.Fatalf("movement acted while hanging")
	}

	c.State.ChangeState(config.Sliding)
	c.Controller.SetHorizontalForce(5)
	step(c, tick)
	if c.State.CurrentState != config.Running || c.Controller.Speed().X != 5 {
		t.Fatalf("expected hand back to running without touching force, got %v %v",
			c.State.CurrentState, c.Controller.Speed().X)
	}
}

func TestMovementKeepsAttackStart(t *testing.T) {
	c, _ := newMovement(t)
	c.State.ChangeState(config.PrimaryAttackStarted)
	axis(c, 1, 0)
	step(c, tick)
	if c.State.CurrentState != config.PrimaryAttackStarted {
		t.Fatalf("movement overrode an attack windup: %v", c.State.CurrentState)
	}
}
