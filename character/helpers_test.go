package character

import (
	"testing"

	"github.com/automoto/doomerang-abilities/components"
	"github.com/automoto/doomerang-abilities/config"
	"github.com/automoto/doomerang-abilities/input"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
)

const tick = 1.0 / 60

var allActions = []config.ActionID{
	config.ActionMovement,
	config.ActionPrimaryAttack,
	config.ActionSecondaryAttack,
	config.ActionSlide,
	config.ActionJump,
}

// spawn builds a bare character entry with every component New requires.
func spawn(t *testing.T, actions ...config.ActionID) *donburi.Entry {
	t.Helper()
	if actions == nil {
		actions = allActions
	}

	w := donburi.NewWorld()
	entry := w.Entry(w.Create(
		components.State,
		components.Physics,
		components.Object,
		components.Character,
		components.Health,
		components.Input,
		components.Settings,
		components.Abilities,
		components.Inventory,
	))

	space := resolv.NewSpace(640, 360, 16, 16)
	obj := resolv.NewObject(32, 32, 16, 40, "character")
	space.Add(obj)

	components.Object.Set(entry, &components.ObjectData{Object: obj})
	components.Physics.Set(entry, &components.PhysicsData{
		Friction:          config.Physics.BaselineFriction,
		GravityEnabled:    true,
		CollisionsEnabled: true,
		FacingRight:       true,
	})
	components.Character.Set(entry, &components.CharacterData{MaxJumps: 2, JumpsLeft: 2})
	components.Health.Set(entry, &components.HealthData{Current: 100, Max: 100})
	components.Input.Set(entry, &components.InputData{Pack: input.NewPack(actions...)})
	settings := config.Ability
	components.Settings.Set(entry, &settings)
	components.State.Set(entry, &components.StateData{CurrentState: config.Idle, PreviousState: config.StateNone})
	return entry
}

func newCharacter(t *testing.T) *Character {
	t.Helper()
	c, err := New(spawn(t))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return c
}

// step runs one tick the way the systems do: input first, then abilities.
func step(c *Character, dt float64) {
	c.Input.Dispatch()
	c.Advance(dt)
	for _, a := range c.Abilities() {
		if a.IsEnabled() {
			a.Update(dt)
		}
	}
}

func axis(c *Character, x, y float64) {
	c.Input.Channel(config.ActionMovement).SetValue(dmath.Vec2{X: x, Y: y})
}

func press(c *Character, a config.ActionID, phase input.Phase) {
	c.Input.Channel(a).Push(phase)
}

// stubAbility is an ability that records toggles.
type stubAbility struct {
	name    string
	enabled bool
	updates int
}

func (p *stubAbility) Name() string { return p.name }
func (p *stubAbility) Enable() { p.enabled = true }
func (p *stubAbility) Disable() { p.enabled = false }
func (p *stubAbility) IsEnabled() bool { return p.enabled }
func (p *stubAbility) Update(float64) { p.updates++ }

// sword is a weapon that records its hooks.
type sword struct {
	calls []string
}

func (s *sword) Name() string { return "sword" }
func (s *sword) Started() { s.calls = append(s.calls, "started") }
func (s *sword) Perform() { s.calls = append(s.calls, "perform") }
func (s *sword) Cancel() { s.calls = append(s.calls, "cancel") }
