package factory

import (
	"github.com/automoto/doomerang-abilities/archetypes"
	"github.com/automoto/doomerang-abilities/components"
	"github.com/automoto/doomerang-abilities/shared/leveldata"
	"github.com/automoto/doomerang-abilities/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

// CreateLedge creates a grab volume. The ledge's reference point is the
// volume's top-left corner; hang and climb offsets are relative to it.
func CreateLedge(ecs *ecs.ECS, spec leveldata.LedgeSpec) *donburi.Entry {
	ledge := archetypes.Ledge.Spawn(ecs)

	obj := resolv.NewObject(spec.X, spec.Y, spec.W, spec.H, tags.ResolvLedge)
	obj.SetShape(resolv.NewRectangle(0, 0, spec.W, spec.H))
	obj.Data = ledge
	components.Object.SetValue(ledge, components.ObjectData{Object: obj})
	addToSpace(ecs, obj)

	direction := components.LedgeGrabLeft
	if spec.Direction == "right" {
		direction = components.LedgeGrabRight
	}
	components.Ledge.SetValue(ledge, components.LedgeData{
		Position:    dmath.Vec2{X: spec.X, Y: spec.Y},
		Direction:   direction,
		HangOffset:  dmath.Vec2{X: spec.HangX, Y: spec.HangY},
		ClimbOffset: dmath.Vec2{X: spec.ClimbX, Y: spec.ClimbY},
	})

	return ledge
}
