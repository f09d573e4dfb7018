package character

import (
	"github.com/automoto/doomerang-abilities/components"
	"github.com/automoto/doomerang-abilities/config"
	"github.com/automoto/doomerang-abilities/input"
	"github.com/automoto/doomerang-abilities/shared/gamemath"
	dmath "github.com/yohamta/donburi/features/math"
)

// LedgeGrab hangs the character from a ledge, then climbs up or lets go
// depending on the vertical movement axis.
type LedgeGrab struct {
	c        *Character
	movement *input.Channel
	enabled  bool

	ledge     *components.LedgeData
	grabbedAt float64
	climb     Sequence
}

func NewLedgeGrab(c *Character) (*LedgeGrab, error) {
	movement, err := c.channel(config.ActionMovement)
	if err != nil {
		return nil, err
	}
	return &LedgeGrab{c: c, movement: movement}, nil
}

func (l *LedgeGrab) Name() string { return "ledgegrab" }
func (l *LedgeGrab) Enable() { l.enabled = true }
func (l *LedgeGrab) Disable() { l.enabled = false }
func (l *LedgeGrab) IsEnabled() bool { return l.enabled }

// Ledge returns the ledge currently held, or nil.
func (l *LedgeGrab) Ledge() *components.LedgeData {
	return l.ledge
}

// Climbing reports whether the climb sequence is running.
func (l *LedgeGrab) Climbing() bool {
	return l.climb.Running()
}

// ClimbProgress returns the eased climb completion in [0, 1].
func (l *LedgeGrab) ClimbProgress() float64 {
	return l.climb.Progress()
}

// CanGrab reports whether a character facing the given way approaches ledge
// from its grab side.
func CanGrab(facingRight bool, ledge *components.LedgeData) bool {
	if facingRight {
		return ledge.Direction == components.LedgeGrabLeft
	}
	return ledge.Direction == components.LedgeGrabRight
}

// StartGrabbingLedge hangs the character from ledge. It does nothing and
// returns false when the character faces away from the ledge's grab side.
// Callers must not invoke it while the character already hangs.
func (l *LedgeGrab) StartGrabbingLedge(ledge *components.LedgeData) bool {
	ctrl := l.c.Controller
	if !CanGrab(ctrl.IsFacingRight(), ledge) {
		return false
	}

	l.grabbedAt = l.c.Now()
	l.ledge = ledge
	ctrl.CollisionsOff()
	l.c.State.ChangeState(config.LedgeGrab)

	ctrl.SetForce(dmath.Vec2{})
	ctrl.GravityActive(false)
	l.c.ResetJumps()
	l.c.EnableAllAbilities(false, l)
	ctrl.SetPosition(offset(ledge.Position, ledge.HangOffset))
	return true
}

func (l *LedgeGrab) Update(dt float64) {
	l.climb.Update(dt)

	if l.c.State.CurrentStateType() != config.LedgeGrab {
		return
	}
	if !gamemath.Reached(l.c.Now()-l.grabbedAt, l.c.Settings.MinimumHangingTime) {
		return
	}

	vertical := l.movement.Value().Y
	threshold := l.c.Settings.ThresholdY
	switch {
	case vertical > threshold:
		l.startClimb()
	case vertical < -threshold:
		l.detach()
		l.c.State.ChangeState(config.Falling)
	}
}

// startClimb locks out input for the climb animation. The sequence cannot be
// interrupted; finishClimb always runs once the duration has elapsed.
func (l *LedgeGrab) startClimb() {
	l.c.State.ChangeState(config.LedgeClimbing)
	l.c.EnableAllInput(false)
	l.climb.Start(l.c.Settings.ClimbingAnimationDuration, l.finishClimb)
}

func (l *LedgeGrab) finishClimb() {
	l.c.EnableAllInput(true)
	l.c.Controller.SetPosition(offset(l.ledge.Position, l.ledge.ClimbOffset))
	l.c.State.ChangeState(config.Idle)
	l.detach()
}

func (l *LedgeGrab) detach() {
	l.ledge = nil
	l.c.EnableAllAbilities(true, nil)
	l.c.Controller.CollisionsOn()
	l.c.Controller.GravityActive(true)
}

func offset(p, o dmath.Vec2) dmath.Vec2 {
	return dmath.Vec2{X: p.X + o.X, Y: p.Y + o.Y}
}
