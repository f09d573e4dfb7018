package systems

import (
	"math"

	"github.com/automoto/doomerang-abilities/components"
	cfg "github.com/automoto/doomerang-abilities/config"
	"github.com/automoto/doomerang-abilities/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// platformLandingTolerance is how far below a platform's top a character's
// feet may be and still land on it.
const platformLandingTolerance = 4

// contactEpsilon absorbs float drift for objects resting flush against each other.
const contactEpsilon = 0.01

func UpdateCollisions(ecs *ecs.ECS) {
	components.Physics.Each(ecs.World, func(e *donburi.Entry) {
		if !e.HasComponent(components.Object) {
			return
		}
		physics := components.Physics.Get(e)
		obj := components.Object.Get(e).Object
		if obj == nil {
			return
		}

		// Hanging and climbing characters pass through geometry.
		if !physics.CollisionsEnabled {
			physics.OnGround = nil
			obj.X += physics.Speed.X
			obj.Y += physics.Speed.Y
			physics.Friction = cfg.Physics.BaselineFriction
			return
		}

		resolveHorizontalCollision(physics, obj)
		resolveVerticalCollision(physics, obj)
		physics.Friction = surfaceFriction(physics.OnGround)
	})
}

// resolveHorizontalCollision moves the object along X, stopping flush against walls.
func resolveHorizontalCollision(physics *components.PhysicsData, object *resolv.Object) {
	dx := physics.Speed.X
	if dx == 0 {
		return
	}

	check := object.Check(dx, 0, tags.ResolvSolid)
	if check == nil {
		object.X += dx
		return
	}

	if wall := blockingSolid(object, check, dx); wall != nil {
		physics.Speed.X = 0
		dx = check.ContactWithObject(wall).X()
	}

	object.X += dx
}

// resolveVerticalCollision moves the object along Y and records the ground it lands on.
func resolveVerticalCollision(physics *components.PhysicsData, object *resolv.Object) {
	physics.OnGround = nil
	dy := clampVerticalSpeed(physics.Speed.Y)

	checkDistance := dy
	if dy >= 0 {
		checkDistance++
	}

	check := object.Check(0, checkDistance, tags.ResolvSolid, tags.ResolvPlatform)
	if check == nil {
		object.Y += dy
		return
	}

	if dy < 0 {
		if ceiling := ceilingSolid(object, check, dy); ceiling != nil {
			physics.Speed.Y = 0
			dy = check.ContactWithObject(ceiling).Y()
		}
		object.Y += dy
		return
	}

	if ground := landingSurface(object, check, checkDistance); ground != nil {
		physics.OnGround = ground
		physics.Speed.Y = 0
		dy = check.ContactWithObject(ground).Y()
	}
	object.Y += dy
}

// Check is cell based, so every candidate is filtered by its actual bounds.

func overlapsX(a, b *resolv.Object) bool {
	return a.X < b.X+b.W && b.X < a.X+a.W
}

func overlapsY(a, b *resolv.Object) bool {
	return a.Y+a.H > b.Y+contactEpsilon && a.Y < b.Y+b.H-contactEpsilon
}

// blockingSolid returns the nearest wall the object would run into moving dx.
func blockingSolid(object *resolv.Object, check *resolv.Collision, dx float64) *resolv.Object {
	var nearest *resolv.Object
	for _, solid := range check.ObjectsByTags(tags.ResolvSolid) {
		if !overlapsY(object, solid) {
			continue
		}
		if dx > 0 {
			front := object.X + object.W
			if solid.X < front-contactEpsilon || solid.X > front+dx {
				continue
			}
			if nearest == nil || solid.X < nearest.X {
				nearest = solid
			}
		} else {
			if solid.X+solid.W > object.X+contactEpsilon || solid.X+solid.W < object.X+dx {
				continue
			}
			if nearest == nil || solid.X+solid.W > nearest.X+nearest.W {
				nearest = solid
			}
		}
	}
	return nearest
}

// ceilingSolid returns the nearest solid above the object within reach of dy.
func ceilingSolid(object *resolv.Object, check *resolv.Collision, dy float64) *resolv.Object {
	var nearest *resolv.Object
	for _, solid := range check.ObjectsByTags(tags.ResolvSolid) {
		bottom := solid.Y + solid.H
		if !overlapsX(object, solid) || bottom > object.Y+contactEpsilon || bottom < object.Y+dy {
			continue
		}
		if nearest == nil || bottom > nearest.Y+nearest.H {
			nearest = solid
		}
	}
	return nearest
}

// landingSurface picks what a falling object lands on: the nearest solid or
// one-way platform whose top is still under the object's feet.
func landingSurface(object *resolv.Object, check *resolv.Collision, reach float64) *resolv.Object {
	feet := object.Y + object.H
	var nearest *resolv.Object
	candidates := append(check.ObjectsByTags(tags.ResolvSolid), check.ObjectsByTags(tags.ResolvPlatform)...)
	for _, ground := range candidates {
		if !overlapsX(object, ground) {
			continue
		}
		if feet >= ground.Y+platformLandingTolerance || ground.Y > feet+reach {
			continue
		}
		if nearest == nil || ground.Y < nearest.Y {
			nearest = ground
		}
	}
	return nearest
}

func surfaceFriction(ground *resolv.Object) float64 {
	switch {
	case ground == nil:
		return cfg.Physics.BaselineFriction
	case ground.HasTags(tags.ResolvIce):
		return cfg.Physics.IceFriction
	case ground.HasTags(tags.ResolvMud):
		return cfg.Physics.MudFriction
	}
	return cfg.Physics.BaselineFriction
}

func clampVerticalSpeed(speedY float64) float64 {
	return math.Max(math.Min(speedY, 16), -16)
}
