package systems

import (
	"testing"

	"github.com/automoto/doomerang-abilities/character"
	"github.com/automoto/doomerang-abilities/components"
	cfg "github.com/automoto/doomerang-abilities/config"
	"github.com/automoto/doomerang-abilities/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

func newWorld() *ecs.ECS {
	w := donburi.NewWorld()
	RegisterEventHandlers(w)
	e := ecs.NewECS(w)
	factory.CreateSpace(e, 640, 360, 16, 16)
	return e
}

func spawnCharacter(t *testing.T, e *ecs.ECS, x, y float64) *character.Character {
	t.Helper()
	c, err := factory.CreateCharacter(e, x, y, nil)
	if err != nil {
		t.Fatalf("CreateCharacter: %v", err)
	}
	return c
}

// tick runs the gameplay systems in scene order.
func tick(e *ecs.ECS) {
	UpdateInput(e)
	UpdateAbilities(e)
	UpdatePhysics(e)
	UpdateCollisions(e)
	UpdateObjects(e)
	UpdateLedgeTriggers(e)
	UpdateStates(e)
	UpdatePlatforms(e)
}

func setAxis(c *character.Character, x, y float64) {
	c.Input.Channel(cfg.ActionMovement).SetValue(dmath.Vec2{X: x, Y: y})
}

func physicsOf(c *character.Character) *components.PhysicsData {
	return components.Physics.Get(c.Entry)
}
