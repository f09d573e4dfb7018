package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// ObjectData is an entity's collision body. The body's Data field points
// back at the owning entry.
type ObjectData struct {
	*resolv.Object
}

// Intersects reports whether the body's bounds strictly overlap other's.
func (o ObjectData) Intersects(other *resolv.Object) bool {
	a := o.Object
	return a.X < other.X+other.W && other.X < a.X+a.W &&
		a.Y < other.Y+other.H && other.Y < a.Y+a.H
}

// EntryOf returns the live entry that owns obj, or nil.
func EntryOf(obj *resolv.Object) *donburi.Entry {
	if obj == nil {
		return nil
	}
	entry, ok := obj.Data.(*donburi.Entry)
	if !ok || !entry.Valid() {
		return nil
	}
	return entry
}

var Object = donburi.NewComponentType[ObjectData]()
