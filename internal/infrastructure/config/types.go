package config

import (
	"errors"
	"fmt"
)

// ErrInvalidSettings is returned by PhysicsSettings.Validate
var ErrInvalidSettings = errors.New("invalid physics settings")

// GameConfig holds all loaded configurations
type GameConfig struct {
	Physics *PhysicsSettings
	Level   *LevelConfig
	Display *DisplayConfig
}

// PhysicsSettings holds the tuning constants of the player controller.
// Loaded once before the first tick and read-only afterwards.
//
// Units are world units per second (velocities) and per second² (accelerations).
// Gravities are signed: negative pulls down.
type PhysicsSettings struct {
	NormalGravity           float64 `json:"normal_gravity" yaml:"normal_gravity"`
	HoldGravity             float64 `json:"hold_gravity" yaml:"hold_gravity"`
	InitialJumpVelocity     float64 `json:"initial_jump_velocity" yaml:"initial_jump_velocity"`
	HorizontalA             float64 `json:"horizontal_a" yaml:"horizontal_a"`
	Friction                float64 `json:"friction" yaml:"friction"`
	StoppingHorizontalSpeed float64 `json:"stopping_horizontal_speed" yaml:"stopping_horizontal_speed"`
}

// Validate rejects settings the input policy cannot work with.
// Magnitudes that are applied with a sign by the policy must not be negative.
func (s *PhysicsSettings) Validate() error {
	if s.HorizontalA < 0 {
		return fmt.Errorf("%w: horizontal_a must be >= 0, got %v", ErrInvalidSettings, s.HorizontalA)
	}
	if s.Friction < 0 {
		return fmt.Errorf("%w: friction must be >= 0, got %v", ErrInvalidSettings, s.Friction)
	}
	if s.StoppingHorizontalSpeed < 0 {
		return fmt.Errorf("%w: stopping_horizontal_speed must be >= 0, got %v", ErrInvalidSettings, s.StoppingHorizontalSpeed)
	}
	return nil
}

// DisplayConfig configures the window and camera
type DisplayConfig struct {
	ScreenWidth   int     `json:"screenWidth" yaml:"screen_width"`
	ScreenHeight  int     `json:"screenHeight" yaml:"screen_height"`
	Scale         int     `json:"scale" yaml:"scale"`
	TPS           int     `json:"tps" yaml:"tps"`
	Title         string  `json:"title" yaml:"title"`
	PixelsPerUnit float64 `json:"pixelsPerUnit" yaml:"pixels_per_unit"`
}

// DefaultDisplay returns the display used when no display file is present
func DefaultDisplay() *DisplayConfig {
	return &DisplayConfig{
		ScreenWidth:   480,
		ScreenHeight:  270,
		Scale:         2,
		TPS:           60,
		Title:         "Generic Platformer",
		PixelsPerUnit: 1,
	}
}
