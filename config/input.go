package config

// ActionID represents a logical bindable input action.
type ActionID int

const (
	ActionNone ActionID = iota
	ActionMovement
	ActionPrimaryAttack
	ActionSecondaryAttack
	ActionSlide
	ActionJump
	ActionCount // Must be last - used for array sizing
)

var actionNames = [ActionCount]string{
	ActionNone:            "none",
	ActionMovement:        "movement",
	ActionPrimaryAttack:   "primary_attack",
	ActionSecondaryAttack: "secondary_attack",
	ActionSlide:           "slide",
	ActionJump:            "jump",
}

func (a ActionID) String() string {
	if a < 0 || a >= ActionCount {
		return "unknown"
	}
	return actionNames[a]
}
