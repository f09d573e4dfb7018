package components

import "github.com/yohamta/donburi"

// Ability is a behavior module attached to a character.
type Ability interface {
	Name() string
	Enable()
	Disable()
	IsEnabled() bool
	// Update runs once per tick while the ability is enabled.
	Update(dt float64)
}

type AbilitiesData struct {
	Modules []Ability
}

var Abilities = donburi.NewComponentType[AbilitiesData]()
