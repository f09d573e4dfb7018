package factory

import (
	"github.com/automoto/doomerang-abilities/archetypes"
	"github.com/automoto/doomerang-abilities/components"
	"github.com/automoto/doomerang-abilities/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateSolid creates a block of level geometry. surface is "", "ice" or "mud".
func CreateSolid(ecs *ecs.ECS, x, y, w, h float64, surface string) *donburi.Entry {
	solid := archetypes.Solid.Spawn(ecs)

	obj := resolv.NewObject(x, y, w, h, tags.ResolvSolid)
	switch surface {
	case tags.ResolvIce, tags.ResolvMud:
		obj.AddTags(surface)
	}
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	obj.Data = solid // Link for O(1) lookup

	components.Object.SetValue(solid, components.ObjectData{Object: obj})
	addToSpace(ecs, obj)

	return solid
}
