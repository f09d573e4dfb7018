// Package character implements the ability modules that drive a platformer
// character: attack, ledge grab, slide and basic movement.
//
// Abilities share one movement state machine and one physics controller and
// coordinate through guard predicates and the Coordinator's enable flags.
// Nothing locks the shared state, so every module reads the current state
// and the flags fresh on each tick or edge.
package character

import (
	"errors"
	"fmt"

	"github.com/automoto/doomerang-abilities/components"
	"github.com/automoto/doomerang-abilities/config"
	"github.com/automoto/doomerang-abilities/input"
	"github.com/automoto/doomerang-abilities/physics"
	"github.com/yohamta/donburi"
)

var (
	ErrMissingComponent = errors.New("character: missing component")
	ErrMissingInput     = errors.New("character: missing input binding")
)

// Character is the aggregate root abilities operate on. It is a view over a
// donburi entry; all state lives in the entry's components.
type Character struct {
	Coordinator

	Entry      *donburi.Entry
	State      *components.StateData
	Controller *physics.Controller
	Input      *input.Pack
	Settings   *config.AbilitySettings

	data   *components.CharacterData
	health *components.HealthData
}

var requiredComponents = []struct {
	name string
	ct   donburi.IComponentType
}{
	{"state", components.State},
	{"physics", components.Physics},
	{"object", components.Object},
	{"character", components.Character},
	{"health", components.Health},
	{"input", components.Input},
	{"settings", components.Settings},
	{"abilities", components.Abilities},
}

// New builds a Character over entry. A missing component or input pack is a
// configuration error.
func New(entry *donburi.Entry) (*Character, error) {
	for _, r := range requiredComponents {
		if !entry.HasComponent(r.ct) {
			return nil, fmt.Errorf("%w: %s", ErrMissingComponent, r.name)
		}
	}

	pack := components.Input.Get(entry).Pack
	if pack == nil {
		return nil, fmt.Errorf("%w: no input pack", ErrMissingInput)
	}

	obj := components.Object.Get(entry)
	if obj.Object == nil {
		return nil, fmt.Errorf("%w: object has no collision body", ErrMissingComponent)
	}

	return &Character{
		Coordinator: Coordinator{
			abilities: components.Abilities.Get(entry),
			input:     pack,
		},
		Entry:      entry,
		State:      components.State.Get(entry),
		Controller: physics.NewController(components.Physics.Get(entry), obj.Object),
		Input:      pack,
		Settings:   components.Settings.Get(entry),
		data:       components.Character.Get(entry),
		health:     components.Health.Get(entry),
	}, nil
}

// channel returns the bound channel for a or ErrMissingInput.
func (c *Character) channel(a config.ActionID) (*input.Channel, error) {
	ch := c.Input.Channel(a)
	if ch == nil {
		return nil, fmt.Errorf("%w: %s", ErrMissingInput, a)
	}
	return ch, nil
}

func (c *Character) IsAlive() bool {
	return !c.health.Depleted() && c.State.CurrentState != config.Dead
}

func (c *Character) IsSwimming() bool {
	return c.data.Swimming || c.State.CurrentState == config.Swimming
}

func (c *Character) IsInGroundMovementState() bool {
	return config.IsGroundState(c.State.CurrentState)
}

func (c *Character) IsIdle() bool {
	return c.State.CurrentState == config.Idle
}

// ResetJumps refills the jump resource.
func (c *Character) ResetJumps() {
	c.data.JumpsLeft = c.data.MaxJumps
}

func (c *Character) JumpsLeft() int {
	return c.data.JumpsLeft
}

// Advance moves the character clock forward by dt seconds.
func (c *Character) Advance(dt float64) {
	c.data.Advance(dt)
}

// Now returns seconds since spawn.
func (c *Character) Now() float64 {
	return c.data.Clock
}
