package systems

import (
	"github.com/automoto/doomerang-abilities/components"
	cfg "github.com/automoto/doomerang-abilities/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateAbilities advances each character clock and ticks its enabled
// abilities in attach order.
func UpdateAbilities(ecs *ecs.ECS) {
	dt := cfg.DeltaTime()
	components.Abilities.Each(ecs.World, func(e *donburi.Entry) {
		if e.HasComponent(components.Character) {
			components.Character.Get(e).Advance(dt)
		}

		for _, a := range components.Abilities.Get(e).Modules {
			if a.IsEnabled() {
				a.Update(dt)
			}
		}
	})
}
