package components

import (
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
)

// LedgeGrabDirection is the side a ledge must be approached from.
type LedgeGrabDirection int

const (
	LedgeGrabLeft LedgeGrabDirection = iota
	LedgeGrabRight
)

func (d LedgeGrabDirection) String() string {
	if d == LedgeGrabRight {
		return "right"
	}
	return "left"
}

type LedgeData struct {
	Position    dmath.Vec2
	Direction   LedgeGrabDirection
	HangOffset  dmath.Vec2 // Character position relative to Position while hanging
	ClimbOffset dmath.Vec2 // Character position relative to Position after climbing
}

// LedgeSensorData remembers which ledge volume a character overlapped last tick.
type LedgeSensorData struct {
	Touching *donburi.Entry
}

var Ledge = donburi.NewComponentType[LedgeData]()
var LedgeSensor = donburi.NewComponentType[LedgeSensorData]()
