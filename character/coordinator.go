package character

import (
	"github.com/automoto/doomerang-abilities/components"
	"github.com/automoto/doomerang-abilities/input"
)

// Coordinator gates a character's abilities and input as a group. Changes
// apply to later ticks and edges only.
type Coordinator struct {
	abilities *components.AbilitiesData
	input     *input.Pack
}

// Attach registers an ability and enables it.
func (co *Coordinator) Attach(a components.Ability) {
	co.abilities.Modules = append(co.abilities.Modules, a)
	a.Enable()
}

// Abilities returns the attached modules in attach order.
func (co *Coordinator) Abilities() []components.Ability {
	return co.abilities.Modules
}

// Ability returns the attached module with the given name, or nil.
func (co *Coordinator) Ability(name string) components.Ability {
	for _, a := range co.abilities.Modules {
		if a.Name() == name {
			return a
		}
	}
	return nil
}

// EnableAllAbilities enables or disables every attached ability except requester.
// A nil requester toggles all of them.
func (co *Coordinator) EnableAllAbilities(enabled bool, requester components.Ability) {
	for _, a := range co.abilities.Modules {
		if requester != nil && a == requester {
			continue
		}
		if enabled {
			a.Enable()
		} else {
			a.Disable()
		}
	}
}

// EnableAllInput gates delivery of input edges to every ability.
func (co *Coordinator) EnableAllInput(enabled bool) {
	co.input.SetEnabled(enabled)
}

func (co *Coordinator) InputEnabled() bool {
	return co.input.Enabled()
}
