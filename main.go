package main

import (
	"image"
	"log"

	"github.com/automoto/doomerang-abilities/config"
	"github.com/automoto/doomerang-abilities/fonts"
	"github.com/automoto/doomerang-abilities/scenes"
	"github.com/automoto/doomerang-abilities/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font/gofont/gomono"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

func NewGame() *Game {
	if err := fonts.LoadFontWithSize(fonts.Debug, gomono.TTF, 10); err != nil {
		log.Fatalf("Failed to load fonts: %v", err)
	}
	if err := fonts.LoadFontWithSize(fonts.DebugSmall, gomono.TTF, 8); err != nil {
		log.Fatalf("Failed to load fonts: %v", err)
	}

	return &Game{
		bounds: image.Rectangle{},
		scene:  scenes.NewSandboxScene(),
	}
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	ebiten.SetWindowSize(config.C.Width*2, config.C.Height*2)
	ebiten.SetWindowTitle("Doomerang Abilities")
	ebiten.SetTPS(config.C.TickRate)

	// Saved tunables must be in place before the scene spawns the character.
	if err := systems.InitPersistence(); err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	}
	systems.ApplySavedAbilitySettings()

	if err := ebiten.RunGame(NewGame()); err != nil {
		log.Fatal(err)
	}
}
