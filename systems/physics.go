package systems

import (
	"github.com/automoto/doomerang-abilities/components"
	cfg "github.com/automoto/doomerang-abilities/config"
	"github.com/automoto/doomerang-abilities/shared/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func UpdatePhysics(ecs *ecs.ECS) {
	components.Physics.Each(ecs.World, func(e *donburi.Entry) {
		physics := components.Physics.Get(e)

		// A slide carries its own force; ground deceleration would eat it.
		sliding := false
		if e.HasComponent(components.State) {
			sliding = components.State.Get(e).CurrentState == cfg.Sliding
		}
		if physics.OnGround != nil && !sliding {
			physics.Speed.X = gamemath.ApplyFriction(physics.Speed.X, cfg.Physics.GroundDeceleration)
		}

		if physics.MaxSpeed > 0 {
			physics.Speed.X = gamemath.ClampSpeed(physics.Speed.X, physics.MaxSpeed)
		}

		if !physics.GravityEnabled {
			return
		}
		physics.Speed.Y += physics.Gravity
		if physics.Speed.Y > cfg.Physics.MaxFallSpeed {
			physics.Speed.Y = cfg.Physics.MaxFallSpeed
		}
	})
}
