package character

import (
	"fmt"

	"github.com/automoto/doomerang-abilities/components"
	"github.com/automoto/doomerang-abilities/config"
	"github.com/automoto/doomerang-abilities/input"
)

// PointerQuery reports whether the pointer is over interactive UI.
type PointerQuery interface {
	PointerOverUI() bool
}

// PointerFunc adapts a function to PointerQuery.
type PointerFunc func() bool

func (f PointerFunc) PointerOverUI() bool { return f() }

// hand maps one attack channel onto its states and inventory slot.
type hand struct {
	action    config.ActionID
	started   config.StateID
	performed config.StateID
	canceled  config.StateID
	slot      func(inv *components.InventoryData) components.Item
}

var (
	primaryHand = hand{
		action:    config.ActionPrimaryAttack,
		started:   config.PrimaryAttackStarted,
		performed: config.PrimaryAttackPerformed,
		canceled:  config.PrimaryAttackCanceled,
		slot:      func(inv *components.InventoryData) components.Item { return inv.LeftHand },
	}
	secondaryHand = hand{
		action:    config.ActionSecondaryAttack,
		started:   config.SecondaryAttackStarted,
		performed: config.SecondaryAttackPerformed,
		canceled:  config.SecondaryAttackCanceled,
		slot:      func(inv *components.InventoryData) components.Item { return inv.RightHand },
	}
)

// Attack maps the primary and secondary attack channels onto attack states and
// the weapon hooks of the item held in the matching hand.
type Attack struct {
	c         *Character
	inventory *components.InventoryData
	pointer   PointerQuery
	channels  map[config.ActionID]*input.Channel
	subs      []*input.Subscription
	enabled   bool

	pointerOverUI bool
}

// NewAttack creates the attack ability. pointer may be nil when no UI can
// occlude the pointer.
func NewAttack(c *Character, pointer PointerQuery) (*Attack, error) {
	if !c.Entry.HasComponent(components.Inventory) {
		return nil, fmt.Errorf("%w: inventory", ErrMissingComponent)
	}
	if pointer == nil {
		pointer = PointerFunc(func() bool { return false })
	}

	a := &Attack{
		c:         c,
		inventory: components.Inventory.Get(c.Entry),
		pointer:   pointer,
		channels:  make(map[config.ActionID]*input.Channel, 2),
	}
	for _, h := range []hand{primaryHand, secondaryHand} {
		ch, err := c.channel(h.action)
		if err != nil {
			return nil, err
		}
		a.channels[h.action] = ch
	}
	return a, nil
}

func (a *Attack) Name() string { return "attack" }

// Enable attaches the edge handlers, dropping any previous subscriptions first.
// The pointer is resampled since Update did not run while disabled.
func (a *Attack) Enable() {
	a.unsubscribe()
	a.pointerOverUI = a.pointer.PointerOverUI()
	for _, h := range []hand{primaryHand, secondaryHand} {
		ch := a.channels[h.action]
		a.subs = append(a.subs,
			ch.Subscribe(input.Started, a.onStarted(h)),
			ch.Subscribe(input.Performed, a.onPerformed(h)),
			ch.Subscribe(input.Canceled, a.onCanceled(h)),
		)
	}
	a.enabled = true
}

func (a *Attack) Disable() {
	a.unsubscribe()
	a.enabled = false
}

func (a *Attack) IsEnabled() bool { return a.enabled }

// Update samples the pointer occlusion once per tick.
func (a *Attack) Update(dt float64) {
	a.pointerOverUI = a.pointer.PointerOverUI()
}

func (a *Attack) unsubscribe() {
	for _, s := range a.subs {
		s.Unsubscribe()
	}
	a.subs = a.subs[:0]
}

func (a *Attack) weapon(h hand) components.Weapon {
	w, _ := h.slot(a.inventory).(components.Weapon)
	return w
}

func (a *Attack) onStarted(h hand) input.Handler {
	return func(input.Edge) {
		if a.pointerOverUI {
			return
		}
		a.c.State.ChangeState(h.started)
		if w := a.weapon(h); w != nil {
			w.Started()
		}
	}
}

// Performed and canceled edges always apply so a release is never lost when
// focus moves onto the UI mid-press.
func (a *Attack) onPerformed(h hand) input.Handler {
	return func(input.Edge) {
		a.c.State.ChangeState(h.performed)
		if w := a.weapon(h); w != nil {
			w.Perform()
		}
	}
}

func (a *Attack) onCanceled(h hand) input.Handler {
	return func(input.Edge) {
		a.c.State.ChangeState(h.canceled)
		if w := a.weapon(h); w != nil {
			w.Cancel()
		}
	}
}
