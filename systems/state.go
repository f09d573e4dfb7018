package systems

import (
	"github.com/automoto/doomerang-abilities/components"
	cfg "github.com/automoto/doomerang-abilities/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateStates counts ticks in the current state and mirrors the state into
// marker components so other systems can query hanging, sliding or attacking
// characters directly.
func UpdateStates(ecs *ecs.ECS) {
	var entries []*donburi.Entry
	components.State.Each(ecs.World, func(e *donburi.Entry) {
		components.State.Get(e).StateTimer++
		entries = append(entries, e)
	})

	// Adding or removing components moves the entry to another archetype, so
	// tags change outside the query.
	for _, e := range entries {
		current := components.State.Get(e).CurrentState
		syncStateTag(e, components.Sliding, current == cfg.Sliding)
		syncStateTag(e, components.Hanging, current == cfg.LedgeGrab || current == cfg.LedgeClimbing)
		syncStateTag(e, components.Attacking, cfg.IsAttackState(current))
	}
}

func syncStateTag[T any](e *donburi.Entry, c *donburi.ComponentType[T], on bool) {
	has := e.HasComponent(c)
	switch {
	case on && !has:
		donburi.Add(e, c, new(T))
	case !on && has:
		donburi.Remove[T](e, c)
	}
}
