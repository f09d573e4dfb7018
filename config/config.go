package config

import (
	"errors"
	"fmt"
	"image/color"
)

// ErrInvalidSettings is returned when a settings value is out of range.
var ErrInvalidSettings = errors.New("invalid ability settings")

// AbilitySettings contains the per-character tunables read by the ability modules.
// Durations are in seconds, speeds in pixels per tick.
type AbilitySettings struct {
	// Ledge grab
	MinimumHangingTime        float64 `json:"minimumHangingTime"`        // Delay before a hanging character reacts to the movement axis
	ThresholdY                float64 `json:"thresholdY"`                // Vertical axis magnitude that triggers climb/release
	ClimbingAnimationDuration float64 `json:"climbingAnimationDuration"` // Input stays disabled for this long while climbing

	// Slide
	SlideTime         float64 `json:"slideTime"`
	SlideCooldownTime float64 `json:"slideCooldownTime"`
	SlideSpeed        float64 `json:"slideSpeed"`
}

// Validate checks that every tunable is usable.
func (s AbilitySettings) Validate() error {
	checks := []struct {
		name  string
		value float64
		ok    bool
	}{
		{"minimumHangingTime", s.MinimumHangingTime, s.MinimumHangingTime >= 0},
		{"thresholdY", s.ThresholdY, s.ThresholdY >= 0 && s.ThresholdY < 1},
		{"climbingAnimationDuration", s.ClimbingAnimationDuration, s.ClimbingAnimationDuration > 0},
		{"slideTime", s.SlideTime, s.SlideTime > 0},
		{"slideCooldownTime", s.SlideCooldownTime, s.SlideCooldownTime >= 0},
		{"slideSpeed", s.SlideSpeed, s.SlideSpeed >= 0},
	}
	for _, c := range checks {
		if !c.ok {
			return fmt.Errorf("%w: %s = %v", ErrInvalidSettings, c.name, c.value)
		}
	}
	return nil
}

// PhysicsConfig contains mover configuration values
type PhysicsConfig struct {
	Gravity      float64
	MaxFallSpeed float64
	MaxSpeed     float64

	// Deceleration applied each tick to grounded characters that are not sliding
	GroundDeceleration float64

	// Surface friction coefficients. Baseline leaves forces untouched.
	BaselineFriction float64
	IceFriction      float64
	MudFriction      float64

	// Scales how fast low friction surfaces approach the desired speed
	FrictionLerpRate float64
}

// CharacterConfig contains character spawn defaults
type CharacterConfig struct {
	Health          int
	MaxJumps        int
	JumpSpeed       float64
	CollisionWidth  float64
	CollisionHeight float64
}

// SandboxConfig contains colors used by the sandbox scene
type SandboxConfig struct {
	BackgroundColor color.RGBA
	SolidColor      color.RGBA
	LedgeColor      color.RGBA
	CharacterColor  color.RGBA
	HangingColor    color.RGBA
	SlidingColor    color.RGBA
	AttackingColor  color.RGBA
}

// Config holds general configuration
type Config struct {
	Width    int
	Height   int
	TickRate int // Fixed updates per second
}

// Global configuration instances
var C *Config
var Ability AbilitySettings
var Physics PhysicsConfig
var Character CharacterConfig
var Sandbox SandboxConfig

// Direction constants for facing
const (
	DirectionLeft  = -1.0
	DirectionRight = 1.0
)

// DeltaTime returns the fixed tick length in seconds.
func DeltaTime() float64 {
	return 1 / float64(C.TickRate)
}

func init() {
	C = &Config{
		Width:    640,
		Height:   360,
		TickRate: 60,
	}

	Ability = AbilitySettings{
		MinimumHangingTime:        0.2,
		ThresholdY:                0.5,
		ClimbingAnimationDuration: 0.5,

		SlideTime:         0.5,
		SlideCooldownTime: 0.75,
		SlideSpeed:        5.0,
	}

	Physics = PhysicsConfig{
		Gravity:      0.75,
		MaxFallSpeed: 10.0,
		MaxSpeed:     6.0,

		GroundDeceleration: 0.5,

		BaselineFriction: 1.0,
		IceFriction:      0.2,
		MudFriction:      2.0,

		FrictionLerpRate: 10.0,
	}

	Character = CharacterConfig{
		Health:          100,
		MaxJumps:        2,
		JumpSpeed:       12.0,
		CollisionWidth:  16,
		CollisionHeight: 40,
	}

	Sandbox = SandboxConfig{
		BackgroundColor: color.RGBA{R: 20, G: 20, B: 30, A: 255},
		SolidColor:      color.RGBA{R: 90, G: 90, B: 110, A: 255},
		LedgeColor:      color.RGBA{R: 255, G: 180, B: 50, A: 160},
		CharacterColor:  color.RGBA{R: 100, G: 180, B: 255, A: 255},
		HangingColor:    color.RGBA{R: 0, G: 255, B: 60, A: 255},
		SlidingColor:    color.RGBA{R: 255, G: 60, B: 60, A: 255},
		AttackingColor:  color.RGBA{R: 255, G: 230, B: 90, A: 255},
	}
}
