package tags

import "github.com/yohamta/donburi"

var (
	Character        = donburi.NewTag().SetName("Character")
	Solid            = donburi.NewTag().SetName("Solid")
	Ledge            = donburi.NewTag().SetName("Ledge")
	Platform         = donburi.NewTag().SetName("Platform")
	FloatingPlatform = donburi.NewTag().SetName("FloatingPlatform")
)

// Resolv tags for physics collision
const (
	ResolvSolid     = "solid"
	ResolvPlatform  = "platform"
	ResolvLedge     = "ledge"
	ResolvCharacter = "character"

	// Surface tags, set on solids alongside ResolvSolid
	ResolvIce = "ice"
	ResolvMud = "mud"
)
