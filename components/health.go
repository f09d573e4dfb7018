package components

import "github.com/yohamta/donburi"

type HealthData struct {
	Current int
	Max     int
}

// Depleted reports whether the character has no health left.
func (h *HealthData) Depleted() bool {
	return h.Current <= 0
}

var Health = donburi.NewComponentType[HealthData]()
