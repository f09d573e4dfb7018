package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
)

type PhysicsData struct {
	Speed         dmath.Vec2 // Pixels per tick
	ExternalForce dmath.Vec2 // Conveyors, wind, knockback; added by abilities that set forces
	Gravity       float64
	MaxSpeed      float64
	Friction      float64 // Surface coefficient of the ground under the character
	FacingRight   bool

	GravityEnabled    bool
	CollisionsEnabled bool

	OnGround *resolv.Object
}

var Physics = donburi.NewComponentType[PhysicsData]()
