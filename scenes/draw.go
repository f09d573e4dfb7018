package scenes

import (
	"fmt"
	"image/color"

	"github.com/automoto/doomerang-abilities/character"
	"github.com/automoto/doomerang-abilities/components"
	cfg "github.com/automoto/doomerang-abilities/config"
	"github.com/automoto/doomerang-abilities/fonts"
	"github.com/automoto/doomerang-abilities/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func fillObject(screen *ebiten.Image, o *resolv.Object, clr color.Color) {
	if o == nil {
		return
	}
	vector.DrawFilledRect(screen, float32(o.X), float32(o.Y), float32(o.W), float32(o.H), clr, false)
}

func drawLevel(ecs *ecs.ECS, screen *ebiten.Image) {
	tags.Solid.Each(ecs.World, func(e *donburi.Entry) {
		fillObject(screen, components.Object.Get(e).Object, cfg.Sandbox.SolidColor)
	})
	tags.Platform.Each(ecs.World, func(e *donburi.Entry) {
		fillObject(screen, components.Object.Get(e).Object, cfg.Sandbox.SolidColor)
	})
	tags.FloatingPlatform.Each(ecs.World, func(e *donburi.Entry) {
		fillObject(screen, components.Object.Get(e).Object, cfg.Sandbox.SolidColor)
	})
	tags.Ledge.Each(ecs.World, func(e *donburi.Entry) {
		fillObject(screen, components.Object.Get(e).Object, cfg.Sandbox.LedgeColor)
	})
}

// climbOffset shifts a climbing character along its climb, from the hang
// position toward the climb position.
func climbOffset(e *donburi.Entry) (float64, float64) {
	for _, a := range components.Abilities.Get(e).Modules {
		grab, ok := a.(*character.LedgeGrab)
		if !ok || !grab.Climbing() || grab.Ledge() == nil {
			continue
		}
		ledge := grab.Ledge()
		p := grab.ClimbProgress()
		return (ledge.ClimbOffset.X - ledge.HangOffset.X) * p, (ledge.ClimbOffset.Y - ledge.HangOffset.Y) * p
	}
	return 0, 0
}

func characterDrawer(screen *ebiten.Image, clr color.Color) func(*donburi.Entry) {
	return func(e *donburi.Entry) {
		o := components.Object.Get(e).Object
		if o == nil {
			return
		}
		dx, dy := climbOffset(e)
		vector.DrawFilledRect(screen, float32(o.X+dx), float32(o.Y+dy), float32(o.W), float32(o.H), clr, false)
	}
}

// drawCharacters tints characters by the state tags UpdateStates keeps in sync.
func drawCharacters(ecs *ecs.ECS, screen *ebiten.Image) {
	tags.Character.Each(ecs.World, characterDrawer(screen, cfg.Sandbox.CharacterColor))
	components.Attacking.Each(ecs.World, characterDrawer(screen, cfg.Sandbox.AttackingColor))
	components.Sliding.Each(ecs.World, characterDrawer(screen, cfg.Sandbox.SlidingColor))
	components.Hanging.Each(ecs.World, characterDrawer(screen, cfg.Sandbox.HangingColor))
}

// newStateReadout draws the tracked character's state and ability flags.
func newStateReadout(c *character.Character) func(*ecs.ECS, *ebiten.Image) {
	return func(_ *ecs.ECS, screen *ebiten.Image) {
		if c == nil || !c.Entry.Valid() {
			return
		}
		face := text.NewGoXFace(fonts.Debug.Get())

		small := text.NewGoXFace(fonts.DebugSmall.Get())

		op := &text.DrawOptions{}
		op.GeoM.Translate(8, 8)
		text.Draw(screen, fmt.Sprintf("state: %s (%d)", c.State.CurrentState, c.State.StateTimer), face, op)
		op.GeoM.Translate(0, 12)
		text.Draw(screen, fmt.Sprintf("jumps: %d  input: %t", c.JumpsLeft(), c.InputEnabled()), face, op)
		if grab, ok := c.Ability("ledgegrab").(*character.LedgeGrab); ok && grab.Climbing() {
			op.GeoM.Translate(0, 12)
			text.Draw(screen, fmt.Sprintf("climb: %3.0f%%", grab.ClimbProgress()*100), face, op)
		}

		for _, a := range c.Abilities() {
			op.GeoM.Translate(0, 10)
			text.Draw(screen, fmt.Sprintf("%s: %t", a.Name(), a.IsEnabled()), small, op)
		}
	}
}
