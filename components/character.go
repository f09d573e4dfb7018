package components

import "github.com/yohamta/donburi"

type CharacterData struct {
	Swimming  bool    // Set by water volumes
	JumpsLeft int
	MaxJumps  int
	Clock     float64 // Seconds since spawn, advanced once per tick
}

// Advance moves the clock forward by dt seconds.
func (d *CharacterData) Advance(dt float64) {
	d.Clock += dt
}

var Character = donburi.NewComponentType[CharacterData]()
