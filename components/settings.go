package components

import (
	"github.com/automoto/doomerang-abilities/config"
	"github.com/yohamta/donburi"
)

var Settings = donburi.NewComponentType[config.AbilitySettings]()
