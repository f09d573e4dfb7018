// Package physics exposes the narrow force and collision interface abilities
// use to drive a character's mover.
package physics

import (
	"github.com/automoto/doomerang-abilities/components"
	"github.com/solarlune/resolv"
	dmath "github.com/yohamta/donburi/features/math"
)

// Controller wraps a character's physics component and collision object.
// Writes take effect on the next physics step.
type Controller struct {
	data   *components.PhysicsData
	object *resolv.Object
}

func NewController(data *components.PhysicsData, object *resolv.Object) *Controller {
	return &Controller{data: data, object: object}
}

// SetForce replaces both velocity components.
func (c *Controller) SetForce(force dmath.Vec2) {
	c.data.Speed = force
}

func (c *Controller) SetHorizontalForce(x float64) {
	c.data.Speed.X = x
}

func (c *Controller) SetVerticalForce(y float64) {
	c.data.Speed.Y = y
}

// GravityActive toggles gravity for subsequent steps.
func (c *Controller) GravityActive(active bool) {
	c.data.GravityEnabled = active
}

func (c *Controller) CollisionsOn() {
	c.data.CollisionsEnabled = true
}

func (c *Controller) CollisionsOff() {
	c.data.CollisionsEnabled = false
}

func (c *Controller) Friction() float64 {
	return c.data.Friction
}

func (c *Controller) ExternalForce() dmath.Vec2 {
	return c.data.ExternalForce
}

func (c *Controller) Speed() dmath.Vec2 {
	return c.data.Speed
}

func (c *Controller) IsFacingRight() bool {
	return c.data.FacingRight
}

func (c *Controller) SetFacingRight(right bool) {
	c.data.FacingRight = right
}

func (c *Controller) IsGrounded() bool {
	return c.data.OnGround != nil
}

func (c *Controller) Position() dmath.Vec2 {
	return dmath.Vec2{X: c.object.X, Y: c.object.Y}
}

// SetPosition teleports the character and refreshes its place in the space.
func (c *Controller) SetPosition(p dmath.Vec2) {
	c.object.X = p.X
	c.object.Y = p.Y
	if c.object.Space != nil {
		c.object.Update()
	}
}
