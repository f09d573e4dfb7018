package systems

import (
	"github.com/automoto/doomerang-abilities/components"
	cfg "github.com/automoto/doomerang-abilities/config"
	"github.com/automoto/doomerang-abilities/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/events"
)

// LedgeReachedEvent fires when a character starts overlapping a ledge volume.
type LedgeReachedEvent struct {
	Character *donburi.Entry
	Ledge     *donburi.Entry
}

var LedgeReached = events.NewEventType[LedgeReachedEvent]()

// LedgeGrabber is an ability that can hang its character from a ledge.
type LedgeGrabber interface {
	components.Ability
	StartGrabbingLedge(ledge *components.LedgeData) bool
}

// RegisterEventHandlers subscribes the gameplay event handlers on w.
func RegisterEventHandlers(w donburi.World) {
	LedgeReached.Subscribe(w, onLedgeReached)
}

// UpdateLedgeTriggers publishes LedgeReached once per overlap: a character
// must leave a ledge volume before the same ledge fires again.
func UpdateLedgeTriggers(ecs *ecs.ECS) {
	components.LedgeSensor.Each(ecs.World, func(e *donburi.Entry) {
		sensor := components.LedgeSensor.Get(e)
		obj := components.Object.Get(e)

		touching := overlappingLedge(obj.Object)
		if touching != nil && touching != sensor.Touching {
			LedgeReached.Publish(ecs.World, LedgeReachedEvent{Character: e, Ledge: touching})
		}
		sensor.Touching = touching
	})

	LedgeReached.ProcessEvents(ecs.World)
}

func overlappingLedge(obj *resolv.Object) *donburi.Entry {
	if obj == nil {
		return nil
	}
	check := obj.Check(0, 0, tags.ResolvLedge)
	if check == nil {
		return nil
	}
	// Check is cell based; confirm the boxes really intersect.
	body := components.ObjectData{Object: obj}
	for _, ledge := range check.ObjectsByTags(tags.ResolvLedge) {
		if !body.Intersects(ledge) {
			continue
		}
		if entry := components.EntryOf(ledge); entry != nil {
			return entry
		}
	}
	return nil
}

func onLedgeReached(w donburi.World, ev LedgeReachedEvent) {
	if !ev.Character.Valid() || !ev.Ledge.Valid() {
		return
	}

	// Already hanging, climbing or sliding: the active ability owns the character.
	if cfg.IsExclusiveState(components.State.Get(ev.Character).CurrentState) {
		return
	}
	if components.Health.Get(ev.Character).Depleted() {
		return
	}

	ledge := components.Ledge.Get(ev.Ledge)
	for _, a := range components.Abilities.Get(ev.Character).Modules {
		if grabber, ok := a.(LedgeGrabber); ok && grabber.IsEnabled() {
			grabber.StartGrabbingLedge(ledge)
			return
		}
	}
}
