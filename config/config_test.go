package config

import (
	"errors"
	"testing"
)

func TestAbilitySettingsValidate(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(s *AbilitySettings)
		wantErr bool
	}{
		{"defaults", func(s *AbilitySettings) {}, false},
		{"zero_hang_time", func(s *AbilitySettings) { s.MinimumHangingTime = 0 }, false},
		{"negative_hang_time", func(s *AbilitySettings) { s.MinimumHangingTime = -1 }, true},
		{"threshold_at_one", func(s *AbilitySettings) { s.ThresholdY = 1 }, true},
		{"zero_climb", func(s *AbilitySettings) { s.ClimbingAnimationDuration = 0 }, true},
		{"zero_slide_time", func(s *AbilitySettings) { s.SlideTime = 0 }, true},
		{"negative_speed", func(s *AbilitySettings) { s.SlideSpeed = -2 }, true},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			s := Ability
			c.mutate(&s)
			err := s.Validate()
			if c.wantErr {
				if !errors.Is(err, ErrInvalidSettings) {
					t.Fatalf("expected ErrInvalidSettings, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestStateCategories(t *testing.T) {
	if !IsGroundState(Running) || IsGroundState(Falling) || IsGroundState(LedgeGrab) {
		t.Fatalf("ground category mismatch")
	}
	if !IsExclusiveState(Sliding) || !IsExclusiveState(LedgeClimbing) || IsExclusiveState(Idle) {
		t.Fatalf("exclusive category mismatch")
	}
	if !IsAttackState(SecondaryAttackPerformed) || IsAttackState(LedgeGrab) {
		t.Fatalf("attack category mismatch")
	}
	var zero StateID
	if zero != Idle || StateNone == Idle {
		t.Fatalf("zero state should be idle and distinct from none")
	}
	if Idle.String() != "idle" || StateID(999).String() != "unknown" {
		t.Fatalf("unexpected state names %q %q", Idle, StateID(999))
	}
	if ActionSlide.String() != "slide" || ActionID(-1).String() != "unknown" {
		t.Fatalf("unexpected action names")
	}
}
