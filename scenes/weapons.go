package scenes

import (
	"log"

	"github.com/automoto/doomerang-abilities/components"
)

// loggedWeapon is a stand-in weapon that reports its hooks.
type loggedWeapon struct {
	name string
}

func (w *loggedWeapon) Name() string { return w.name }
func (w *loggedWeapon) Started() { log.Printf("[weapon] %s windup", w.name) }
func (w *loggedWeapon) Perform() { log.Printf("[weapon] %s strike", w.name) }
func (w *loggedWeapon) Cancel() { log.Printf("[weapon] %s released", w.name) }

// toggleItem swaps a hand between weapon and empty, returning the button label.
func toggleItem(slot *components.Item, weapon components.Weapon, hand string) string {
	if *slot == nil {
		*slot = weapon
		return hand + ": " + weapon.Name()
	}
	*slot = nil
	return hand + ": empty"
}
