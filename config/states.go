package config

// StateID identifies a character movement state.
type StateID int

// StateNone marks the absence of a previous state.
const StateNone StateID = -1

const (
	// Locomotion states
	Idle StateID = iota
	Walk
	Running
	Crouch
	Jump
	Falling
	Swimming
	Dead

	// Attack states, one triple per hand
	PrimaryAttackStarted
	PrimaryAttackCanceled
	PrimaryAttackPerformed
	SecondaryAttackStarted
	SecondaryAttackCanceled
	SecondaryAttackPerformed

	// Exclusive states
	LedgeGrab
	LedgeClimbing
	Sliding
)

// StateToName maps StateID to its animation/debug name.
var StateToName = map[StateID]string{
	Idle:     "idle",
	Walk:     "walk",
	Running:  "running",
	Crouch:   "crouch",
	Jump:     "jump",
	Falling:  "falling",
	Swimming: "swimming",
	Dead:     "dead",

	PrimaryAttackStarted:     "primary_attack_started",
	PrimaryAttackCanceled:    "primary_attack_canceled",
	PrimaryAttackPerformed:   "primary_attack_performed",
	SecondaryAttackStarted:   "secondary_attack_started",
	SecondaryAttackCanceled:  "secondary_attack_canceled",
	SecondaryAttackPerformed: "secondary_attack_performed",

	LedgeGrab:     "ledgegrab",
	LedgeClimbing: "ledgeclimbing",
	Sliding:       "slide",
}

func (s StateID) String() string {
	if name, ok := StateToName[s]; ok {
		return name
	}
	return "unknown"
}

// groundStates are the states a character can only be in while standing on something.
var groundStates = map[StateID]bool{
	Idle:    true,
	Walk:    true,
	Running: true,
	Crouch:  true,
	Sliding: true,
}

// IsGroundState reports whether s belongs to the grounded movement category.
func IsGroundState(s StateID) bool {
	return groundStates[s]
}

// IsExclusiveState reports whether s requires the other abilities to stay suspended.
func IsExclusiveState(s StateID) bool {
	return s == LedgeGrab || s == LedgeClimbing || s == Sliding
}

// IsAttackState reports whether s is one of the per-hand attack states.
func IsAttackState(s StateID) bool {
	return s >= PrimaryAttackStarted && s <= SecondaryAttackPerformed
}
