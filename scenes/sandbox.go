// Package scenes hosts the sandbox scene used to drive the abilities by hand.
package scenes

import (
	"log"
	"sync"

	"github.com/automoto/doomerang-abilities/assets"
	"github.com/automoto/doomerang-abilities/character"
	"github.com/automoto/doomerang-abilities/components"
	cfg "github.com/automoto/doomerang-abilities/config"
	"github.com/automoto/doomerang-abilities/systems"
	"github.com/automoto/doomerang-abilities/systems/factory"
	"github.com/automoto/doomerang-abilities/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const sandboxLevel = "sandbox"

type SandboxScene struct {
	ecs       *ecs.ECS
	hud       *ui.HUD
	character *character.Character
	once      sync.Once
}

func NewSandboxScene() *SandboxScene {
	return &SandboxScene{}
}

func (s *SandboxScene) Update() {
	s.once.Do(s.configure)

	s.hud.Update()
	if s.character != nil && s.character.Entry.Valid() {
		pollKeyboard(s.character.Input)
	}
	s.ecs.Update()
}

func (s *SandboxScene) Draw(screen *ebiten.Image) {
	screen.Fill(cfg.Sandbox.BackgroundColor)

	if s.ecs == nil {
		return
	}
	s.ecs.Draw(screen)
	s.hud.Draw(screen)
}

func (s *SandboxScene) configure() {
	world := donburi.NewWorld()
	systems.RegisterEventHandlers(world)
	ecs := ecs.NewECS(world)

	// Input edges reach the abilities before physics integrates their forces.
	ecs.AddSystem(systems.UpdateInput)
	ecs.AddSystem(systems.UpdateAbilities)
	ecs.AddSystem(systems.UpdatePhysics)
	ecs.AddSystem(systems.UpdateCollisions)
	ecs.AddSystem(systems.UpdateObjects)
	ecs.AddSystem(systems.UpdateLedgeTriggers)
	ecs.AddSystem(systems.UpdateStates)
	ecs.AddSystem(systems.UpdatePlatforms)

	ecs.AddRenderer(cfg.Default, drawLevel)
	ecs.AddRenderer(cfg.Default, drawCharacters)

	s.ecs = ecs

	level := assets.MustLoadLevel(sandboxLevel)
	factory.CreateLevel(ecs, level)

	s.hud = ui.NewHUD("Left: empty", "Right: empty")

	x, y := float64(cfg.C.Width)/2, 0.0
	if len(level.SpawnPoints) > 0 {
		x, y = level.SpawnPoints[0].X, level.SpawnPoints[0].Y
	}
	c, err := factory.CreateCharacter(ecs, x, y, s.hud)
	if err != nil {
		panic("failed to create character: " + err.Error())
	}
	s.character = c
	ecs.AddRenderer(cfg.Default, newStateReadout(c))

	inv := components.Inventory.Get(c.Entry)
	sword := &loggedWeapon{name: "sword"}
	axe := &loggedWeapon{name: "axe"}
	s.hud.OnToggleLeft = func() string { return toggleItem(&inv.LeftHand, sword, "Left") }
	s.hud.OnToggleRight = func() string { return toggleItem(&inv.RightHand, axe, "Right") }
	s.hud.OnSave = func() {
		if err := systems.SaveAbilitySettings(*c.Settings); err != nil {
			log.Printf("[sandbox] save failed: %v", err)
			s.hud.SetStatus("save failed")
			return
		}
		s.hud.SetStatus("saved")
	}
}
