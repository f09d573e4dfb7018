package systems

import (
	"github.com/automoto/doomerang-abilities/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateInput delivers the edges the host queued on every input pack.
// Must run BEFORE UpdateAbilities in the system order.
func UpdateInput(ecs *ecs.ECS) {
	components.Input.Each(ecs.World, func(e *donburi.Entry) {
		if pack := components.Input.Get(e).Pack; pack != nil {
			pack.Dispatch()
		}
	})
}
