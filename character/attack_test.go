package character

import (
	"testing"

	"github.com/automoto/doomerang-abilities/components"
	"github.com/automoto/doomerang-abilities/config"
	"github.com/automoto/doomerang-abilities/input"
)

type shield struct{}

func (shield) Name() string { return "shield" }

func newAttack(t *testing.T, overUI *bool) (*Character, *Attack, *sword) {
	t.Helper()
	c := newCharacter(t)
	w := &sword{}
	components.Inventory.Get(c.Entry).LeftHand = w

	a, err := NewAttack(c, PointerFunc(func() bool { return *overUI }))
	if err != nil {
		t.Fatalf("NewAttack: %v", err)
	}
	c.Attach(a)
	return c, a, w
}

func TestAttackPhases(t *testing.T) {
	overUI := false
	c, _, w := newAttack(t, &overUI)

	cases := []struct {
		phase input.Phase
		want  config.StateID
	}{
		{input.Started, config.PrimaryAttackStarted},
		{input.Performed, config.PrimaryAttackPerformed},
		{input.Canceled, config.PrimaryAttackCanceled},
	}
	for _, tc := range cases {
		press(c, config.ActionPrimaryAttack, tc.phase)
		step(c, tick)
		if got := c.State.CurrentState; got != tc.want {
			t.Fatalf("%v: expected %v, got %v", tc.phase, tc.want, got)
		}
	}

	want := []string{"started", "perform", "cancel"}
	if len(w.calls) != len(want) {
		t.Fatalf("expected hooks %v, got %v", want, w.calls)
	}
	for i := range want {
		if w.calls[i] != want[i] {
			t.Fatalf("expected hooks %v, got %v", want, w.calls)
		}
	}
}

func TestAttackStartedIgnoredOverUI(t *testing.T) {
	overUI := true
	c, _, w := newAttack(t, &overUI)
	step(c, tick) // sample the pointer

	press(c, config.ActionPrimaryAttack, input.Started)
	step(c, tick)
	if c.State.CurrentState != config.Idle || len(w.calls) != 0 {
		t.Fatalf("started over UI should be ignored, state=%v calls=%v", c.State.CurrentState, w.calls)
	}

	press(c, config.ActionPrimaryAttack, input.Canceled)
	step(c, tick)
	if c.State.CurrentState != config.PrimaryAttackCanceled {
		t.Fatalf("cancel must apply over UI, got %v", c.State.CurrentState)
	}
	if len(w.calls) != 1 || w.calls[0] != "cancel" {
		t.Fatalf("expected cancel hook, got %v", w.calls)
	}

	press(c, config.ActionPrimaryAttack, input.Performed)
	step(c, tick)
	if c.State.CurrentState != config.PrimaryAttackPerformed {
		t.Fatalf("perform must apply over UI, got %v", c.State.CurrentState)
	}
}

func TestAttackWithoutWeapon(t *testing.T) {
	overUI := false
	c, _, _ := newAttack(t, &overUI)
	inv := components.Inventory.Get(c.Entry)

	press(c, config.ActionSecondaryAttack, input.Started)
	step(c, tick)
	if c.State.CurrentState != config.SecondaryAttackStarted {
		t.Fatalf("empty hand should still change state, got %v", c.State.CurrentState)
	}

	inv.RightHand = shield{}
	press(c, config.ActionSecondaryAttack, input.Performed)
	step(c, tick)
	if c.State.CurrentState != config.SecondaryAttackPerformed {
		t.Fatalf("non-weapon item should still change state, got %v", c.State.CurrentState)
	}
}

func TestAttackSubscriptionsTrackEnable(t *testing.T) {
	overUI := false
	c, a, w := newAttack(t, &overUI)
	primary := c.Input.Channel(config.ActionPrimaryAttack)

	a.Enable()
	a.Enable()
	if n := primary.Subscribers(); n != 3 {
		t.Fatalf("expected 3 subscriptions after repeated Enable, got %d", n)
	}

	press(c, config.ActionPrimaryAttack, input.Started)
	step(c, tick)
	if len(w.calls) != 1 {
		t.Fatalf("expected one started hook, got %v", w.calls)
	}

	a.Disable()
	if primary.Subscribers() != 0 || a.IsEnabled() {
		t.Fatalf("Disable should detach every handler")
	}
	press(c, config.ActionPrimaryAttack, input.Performed)
	step(c, tick)
	if len(w.calls) != 1 {
		t.Fatalf("disabled attack received an edge: %v", w.calls)
	}
}

func TestAttackResamplesPointerOnEnable(t *testing.T) {
	overUI := true
	c, _, w := newAttack(t, &overUI)
	step(c, tick)

	// Suspended while the pointer leaves the UI, as during a ledge hang.
	c.EnableAllAbilities(false, nil)
	overUI = false
	for i := 0; i < 21; i++ {
		step(c, tick)
	}
	c.EnableAllAbilities(true, nil)

	press(c, config.ActionPrimaryAttack, input.Started)
	step(c, tick)
	if c.State.CurrentState != config.PrimaryAttackStarted {
		t.Fatalf("started edge after re-enable should apply, got %v", c.State.CurrentState)
	}
	if len(w.calls) != 1 || w.calls[0] != "started" {
		t.Fatalf("expected started hook, got %v", w.calls)
	}
}
