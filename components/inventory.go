package components

import "github.com/yohamta/donburi"

// Item is anything that can occupy a hand slot.
type Item interface {
	Name() string
}

// Weapon is an item exposing attack hooks.
type Weapon interface {
	Item
	Started()
	Perform()
	Cancel()
}

type InventoryData struct {
	LeftHand  Item
	RightHand Item
}

var Inventory = donburi.NewComponentType[InventoryData]()
