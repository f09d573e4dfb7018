package factory

import (
	"log"

	"github.com/automoto/doomerang-abilities/shared/leveldata"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateLevel builds the collision space and every solid, platform and ledge
// described by data. It returns the space entry.
func CreateLevel(ecs *ecs.ECS, data *leveldata.CollisionData) *donburi.Entry {
	space := CreateSpace(ecs, data.MapWidth, data.MapHeight, 16, 16)

	for _, r := range data.SolidRects {
		CreateSolid(ecs, r.X, r.Y, r.W, r.H, r.Surface)
	}
	for _, p := range data.Platforms {
		if p.Floating {
			CreateFloatingPlatform(ecs, p.X, p.Y, p.W, p.H)
		} else {
			CreatePlatform(ecs, p.X, p.Y, p.W, p.H)
		}
	}
	for _, l := range data.Ledges {
		CreateLedge(ecs, l)
	}

	log.Printf("[level] loaded %d solids, %d platforms, %d ledges, %d spawn points, %dx%d map",
		len(data.SolidRects), len(data.Platforms), len(data.Ledges), len(data.SpawnPoints),
		data.MapWidth, data.MapHeight)

	return space
}
