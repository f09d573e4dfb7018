package factory

import (
	"fmt"
	"log"

	"github.com/automoto/doomerang-abilities/archetypes"
	"github.com/automoto/doomerang-abilities/character"
	"github.com/automoto/doomerang-abilities/components"
	cfg "github.com/automoto/doomerang-abilities/config"
	"github.com/automoto/doomerang-abilities/input"
	"github.com/automoto/doomerang-abilities/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi/ecs"
)

// CreateCharacter spawns a character at (x, y) with every action bound and
// the movement, attack, ledge grab and slide abilities attached. pointer may
// be nil when nothing can occlude the pointer.
func CreateCharacter(ecs *ecs.ECS, x, y float64, pointer character.PointerQuery) (*character.Character, error) {
	if err := cfg.Ability.Validate(); err != nil {
		return nil, err
	}

	entry := archetypes.Character.Spawn(ecs)

	w, h := cfg.Character.CollisionWidth, cfg.Character.CollisionHeight
	obj := resolv.NewObject(x, y, w, h, tags.ResolvCharacter)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	obj.Data = entry
	components.Object.SetValue(entry, components.ObjectData{Object: obj})
	addToSpace(ecs, obj)

	components.State.SetValue(entry, components.StateData{
		CurrentState:  cfg.Idle,
		PreviousState: cfg.StateNone,
	})
	components.Physics.SetValue(entry, components.PhysicsData{
		Gravity:           cfg.Physics.Gravity,
		MaxSpeed:          cfg.Physics.MaxSpeed,
		Friction:          cfg.Physics.BaselineFriction,
		FacingRight:       true,
		GravityEnabled:    true,
		CollisionsEnabled: true,
	})
	components.Character.SetValue(entry, components.CharacterData{
		JumpsLeft: cfg.Character.MaxJumps,
		MaxJumps:  cfg.Character.MaxJumps,
	})
	components.Health.SetValue(entry, components.HealthData{
		Current: cfg.Character.Health,
		Max:     cfg.Character.Health,
	})
	components.Input.SetValue(entry, components.InputData{
		Pack: input.NewPack(
			cfg.ActionMovement,
			cfg.ActionPrimaryAttack,
			cfg.ActionSecondaryAttack,
			cfg.ActionSlide,
			cfg.ActionJump,
		),
	})
	components.Settings.SetValue(entry, cfg.Ability)

	c, err := character.New(entry)
	if err != nil {
		return nil, fmt.Errorf("create character: %w", err)
	}

	movement, err := character.NewMovement(c)
	if err != nil {
		return nil, fmt.Errorf("create character: %w", err)
	}
	attack, err := character.NewAttack(c, pointer)
	if err != nil {
		return nil, fmt.Errorf("create character: %w", err)
	}
	ledgeGrab, err := character.NewLedgeGrab(c)
	if err != nil {
		return nil, fmt.Errorf("create character: %w", err)
	}
	slide, err := character.NewSlide(c)
	if err != nil {
		return nil, fmt.Errorf("create character: %w", err)
	}

	// Movement ticks first so attack, ledge and slide decisions see this tick's locomotion state.
	c.Attach(movement)
	c.Attach(attack)
	c.Attach(ledgeGrab)
	c.Attach(slide)

	log.Printf("[ability] character at %.0f,%.0f with %d abilities", x, y, len(c.Abilities()))
	return c, nil
}
