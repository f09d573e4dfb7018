package character

import (
	"math"

	"github.com/automoto/doomerang-abilities/config"
	"github.com/automoto/doomerang-abilities/input"
	"github.com/automoto/doomerang-abilities/shared/gamemath"
)

// runThreshold is the horizontal speed above which a grounded character counts as running.
const runThreshold = 0.1

// Movement turns the movement axis into horizontal force, handles jumps and
// derives the locomotion state from the physics result.
type Movement struct {
	c        *Character
	movement *input.Channel
	jump     *input.Channel // optional
	sub      *input.Subscription
	enabled  bool
}

func NewMovement(c *Character) (*Movement, error) {
	movement, err := c.channel(config.ActionMovement)
	if err != nil {
		return nil, err
	}
	return &Movement{c: c, movement: movement, jump: c.Input.Channel(config.ActionJump)}, nil
}

func (m *Movement) Name() string { return "movement" }

func (m *Movement) Enable() {
	m.sub.Unsubscribe()
	m.sub = nil
	if m.jump != nil {
		m.sub = m.jump.Subscribe(input.Started, func(input.Edge) { m.handleJump() })
	}
	m.enabled = true
}

func (m *Movement) Disable() {
	m.sub.Unsubscribe()
	m.sub = nil
	m.enabled = false
}

func (m *Movement) IsEnabled() bool { return m.enabled }

func (m *Movement) handleJump() {
	if config.IsExclusiveState(m.c.State.CurrentState) || m.c.data.JumpsLeft <= 0 {
		return
	}
	m.c.Controller.SetVerticalForce(-config.Character.JumpSpeed)
	m.c.data.JumpsLeft--
	m.c.State.ChangeState(config.Jump)
}

func (m *Movement) Update(dt float64) {
	state := m.c.State.CurrentState
	if state == config.LedgeGrab || state == config.LedgeClimbing {
		return
	}
	// Input is disabled while another ability owns the character's motion.
	if !m.c.InputEnabled() {
		return
	}

	ctrl := m.c.Controller
	if ctrl.IsGrounded() && ctrl.Speed().Y >= 0 {
		m.c.ResetJumps()
	}

	// A slide just ended; hand control back without touching the force this tick.
	if state == config.Sliding {
		m.c.State.ChangeState(m.locomotionState())
		return
	}

	axis := m.movement.Value()
	force := axis.X * config.Physics.MaxSpeed
	if ext := ctrl.ExternalForce().X; ext != 0 {
		force += ext
	}
	force = gamemath.SurfaceForce(force, ctrl.Speed().X, ctrl.Friction(),
		config.Physics.BaselineFriction, config.Physics.FrictionLerpRate, dt)
	ctrl.SetHorizontalForce(force)

	switch {
	case axis.X > 0:
		ctrl.SetFacingRight(true)
	case axis.X < 0:
		ctrl.SetFacingRight(false)
	}

	if state == config.PrimaryAttackStarted || state == config.SecondaryAttackStarted {
		return
	}
	if next := m.locomotionState(); next != state {
		m.c.State.ChangeState(next)
	}
}

func (m *Movement) locomotionState() config.StateID {
	ctrl := m.c.Controller
	switch {
	case !m.c.IsAlive():
		return config.Dead
	case m.c.data.Swimming:
		return config.Swimming
	case ctrl.IsGrounded() && ctrl.Speed().Y >= 0:
		if math.Abs(ctrl.Speed().X) > runThreshold {
			return config.Running
		}
		return config.Idle
	case ctrl.Speed().Y < 0:
		return config.Jump
	}
	return config.Falling
}
