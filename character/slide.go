package character

import (
	"github.com/automoto/doomerang-abilities/config"
	"github.com/automoto/doomerang-abilities/input"
	"github.com/automoto/doomerang-abilities/shared/gamemath"
)

// Slide pushes the character along the ground for a fixed time, then locks
// the ability out for a cooldown.
type Slide struct {
	c        *Character
	movement *input.Channel
	trigger  *input.Channel
	sub      *input.Subscription
	enabled  bool

	direction       float64 // x of the normalised movement axis when the slide began
	sliding         bool
	coolingDown     bool
	elapsed         float64
	cooldownElapsed float64
}

func NewSlide(c *Character) (*Slide, error) {
	movement, err := c.channel(config.ActionMovement)
	if err != nil {
		return nil, err
	}
	trigger, err := c.channel(config.ActionSlide)
	if err != nil {
		return nil, err
	}
	return &Slide{c: c, movement: movement, trigger: trigger}, nil
}

func (s *Slide) Name() string { return "slide" }

func (s *Slide) Enable() {
	s.sub.Unsubscribe()
	s.sub = s.trigger.Subscribe(input.Started, func(input.Edge) { s.handleSlide() })
	s.enabled = true
}

func (s *Slide) Disable() {
	s.sub.Unsubscribe()
	s.sub = nil
	s.enabled = false
}

func (s *Slide) IsEnabled() bool { return s.enabled }
func (s *Slide) Sliding() bool { return s.sliding }
func (s *Slide) CoolingDown() bool { return s.coolingDown }

// CanSlide reports whether a slide may begin now.
func (s *Slide) CanSlide() bool {
	c := s.c
	return c.IsAlive() &&
		c.IsInGroundMovementState() &&
		!c.IsIdle() &&
		!s.sliding &&
		!s.coolingDown &&
		!c.IsSwimming()
}

func (s *Slide) handleSlide() {
	if !s.CanSlide() {
		return
	}
	s.sliding = true
	// Read the axis before input is disabled; a disabled pack reads zero.
	v := s.movement.Value()
	s.direction = gamemath.NormalizedX(v.X, v.Y)
	s.c.EnableAllInput(false)
	s.c.State.ChangeState(config.Sliding)
}

func (s *Slide) Update(dt float64) {
	if s.sliding {
		s.elapsed += dt
		if gamemath.Reached(s.elapsed, s.c.Settings.SlideTime) {
			s.elapsed = 0
			s.sliding = false
			s.coolingDown = true
			s.c.EnableAllInput(true)
		}
		// The terminal tick still moves the character.
		s.move(dt)
	}

	if s.coolingDown {
		s.cooldownElapsed += dt
		if gamemath.Reached(s.cooldownElapsed, s.c.Settings.SlideCooldownTime) {
			s.coolingDown = false
			s.cooldownElapsed = 0
		}
	}
}

func (s *Slide) move(dt float64) {
	ctrl := s.c.Controller
	force := s.direction * s.c.Settings.SlideSpeed

	if ext := ctrl.ExternalForce().X; ext != 0 {
		force += ext
	}

	force = gamemath.SurfaceForce(force, ctrl.Speed().X, ctrl.Friction(),
		config.Physics.BaselineFriction, config.Physics.FrictionLerpRate, dt)
	ctrl.SetHorizontalForce(force)
}
