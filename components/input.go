package components

import (
	"github.com/automoto/doomerang-abilities/input"
	"github.com/yohamta/donburi"
)

// InputData binds a character to its input configuration.
type InputData struct {
	Pack *input.Pack
}

var Input = donburi.NewComponentType[InputData]()
