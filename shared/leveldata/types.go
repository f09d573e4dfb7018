// Package leveldata provides TMX level parsing.
// It holds pure data and does not depend on ebitengine, donburi or resolv.
package leveldata

// CollisionData holds all collision-relevant data parsed from a TMX level file.
type CollisionData struct {
	SolidRects  []SolidRect
	SpawnPoints []SpawnPoint
	Ledges      []LedgeSpec
	Platforms   []PlatformSpec
	MapWidth    int
	MapHeight   int
}

// SolidRect represents a solid collision rectangle.
type SolidRect struct {
	X, Y, W, H float64
	Surface    string // "", "ice", "mud"
}

// SpawnPoint represents a player spawn location.
type SpawnPoint struct {
	X, Y  float64
	Index int
}

// LedgeSpec describes a grab volume placed in the level.
type LedgeSpec struct {
	X, Y, W, H float64
	Direction  string // "left" or "right"
	HangX      float64
	HangY      float64
	ClimbX     float64
	ClimbY     float64
}

// PlatformSpec is a one-way platform. Floating platforms bob up and down.
type PlatformSpec struct {
	X, Y, W, H float64
	Floating   bool
}
