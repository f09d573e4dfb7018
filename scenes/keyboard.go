package scenes

import (
	cfg "github.com/automoto/doomerang-abilities/config"
	"github.com/automoto/doomerang-abilities/input"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	dmath "github.com/yohamta/donburi/features/math"
)

// buttonBindings maps button actions to keyboard keys.
var buttonBindings = []struct {
	action cfg.ActionID
	keys   []ebiten.Key
}{
	{cfg.ActionJump, []ebiten.Key{ebiten.KeySpace}},
	{cfg.ActionPrimaryAttack, []ebiten.Key{ebiten.KeyZ}},
	{cfg.ActionSecondaryAttack, []ebiten.Key{ebiten.KeyX}},
	{cfg.ActionSlide, []ebiten.Key{ebiten.KeyC, ebiten.KeyShiftLeft}},
}

// pollKeyboard feeds the keyboard into pack. A press queues started then
// performed; a release queues canceled. Up on the movement axis is +Y.
func pollKeyboard(pack *input.Pack) {
	var axis dmath.Vec2
	if ebiten.IsKeyPressed(ebiten.KeyArrowLeft) || ebiten.IsKeyPressed(ebiten.KeyA) {
		axis.X--
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowRight) || ebiten.IsKeyPressed(ebiten.KeyD) {
		axis.X++
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowUp) || ebiten.IsKeyPressed(ebiten.KeyW) {
		axis.Y++
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowDown) || ebiten.IsKeyPressed(ebiten.KeyS) {
		axis.Y--
	}
	if movement := pack.Channel(cfg.ActionMovement); movement != nil {
		movement.SetValue(axis)
	}

	for _, binding := range buttonBindings {
		ch := pack.Channel(binding.action)
		if ch == nil {
			continue
		}
		for _, key := range binding.keys {
			if inpututil.IsKeyJustPressed(key) {
				ch.Push(input.Started)
				ch.Push(input.Performed)
			}
			if inpututil.IsKeyJustReleased(key) {
				ch.Push(input.Canceled)
			}
		}
	}
}
