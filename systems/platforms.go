package systems

import (
	"github.com/automoto/doomerang-abilities/components"
	cfg "github.com/automoto/doomerang-abilities/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePlatforms moves floating platforms along their tween sequence, looping forever.
func UpdatePlatforms(ecs *ecs.ECS) {
	dt := float32(cfg.DeltaTime())
	components.Tween.Each(ecs.World, func(e *donburi.Entry) {
		tw := components.Tween.Get(e)
		if tw.Sequence == nil {
			return
		}

		y, _, done := tw.Sequence.Update(dt)
		obj := components.Object.Get(e)
		obj.X = tw.OriginX
		obj.Y = float64(y)
		if done {
			tw.Sequence.Reset()
		}
	})
}
