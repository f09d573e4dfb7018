package components

import (
	"github.com/solarlune/resolv"
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

var Space = donburi.NewComponentType[resolv.Space]()

// TweenData drives a moving platform's vertical position.
type TweenData struct {
	Sequence *gween.Sequence
	OriginX  float64
}

var Tween = donburi.NewComponentType[TweenData]()
