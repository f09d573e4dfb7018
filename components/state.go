package components

import (
	"github.com/automoto/doomerang-abilities/config"
	"github.com/yohamta/donburi"
)

// StateData is a character's movement state machine. It performs no
// validation; callers run their own cleanup before changing state.
type StateData struct {
	CurrentState  config.StateID
	PreviousState config.StateID
	StateTimer    int // Ticks spent in CurrentState
}

// ChangeState replaces the current state unconditionally.
func (s *StateData) ChangeState(next config.StateID) {
	s.PreviousState = s.CurrentState
	s.CurrentState = next
	s.StateTimer = 0
}

// CurrentStateType returns the current state.
func (s *StateData) CurrentStateType() config.StateID {
	return s.CurrentState
}

var State = donburi.NewComponentType[StateData]()

// Marker components mirroring the exclusive and attack states.
type SlidingState struct{}
type HangingState struct{}
type AttackingState struct{}

var Sliding = donburi.NewComponentType[SlidingState]()
var Hanging = donburi.NewComponentType[HangingState]()
var Attacking = donburi.NewComponentType[AttackingState]()
