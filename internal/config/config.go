// Package config provides YAML-based game configuration loading for Flappy Fish.
package config

import (
	"errors"
	"fmt"
)

// FishConfig contains all configuration for the game.
// Distances are in logical units, times in seconds.
type FishConfig struct {
	Physics   Physics   `yaml:"physics"`
	Fish      Fish      `yaml:"fish"`
	Obstacles Obstacles `yaml:"obstacles"`
	Clock     Clock     `yaml:"clock"`
	Viewport  Viewport  `yaml:"viewport"`
	Shell     Shell     `yaml:"shell"`
}

// Physics defines the motion parameters of the fish.
type Physics struct {
	Gravity         float64 `yaml:"gravity"`           // Downward acceleration, units/s^2
	FlapVelocity    float64 `yaml:"flap_velocity"`     // Velocity set by a flap (negative = up)
	MaxFallSpeed    float64 `yaml:"max_fall_speed"`    // Terminal velocity
	ForwardSpeedRef float64 `yaml:"forward_speed_ref"` // Horizontal reference for the banking angle
}

// Fish defines the player entity.
type Fish struct {
	X           float64 `yaml:"x"`             // Fixed horizontal position
	Radius      float64 `yaml:"radius"`        // Collision radius
	StartYRatio float64 `yaml:"start_y_ratio"` // Start height as a fraction of the field
}

// Obstacles defines the pipes.
type Obstacles struct {
	Width     float64 `yaml:"width"`
	GapHeight float64 `yaml:"gap_height"`
	Spacing   float64 `yaml:"spacing"` // Scroll distance between consecutive spawns
	Speed     float64 `yaml:"speed"`   // Leftward speed, units/s
	Margin    float64 `yaml:"margin"`  // Minimum distance from the gap to the field edges
}

// Clock defines the frame driver.
type Clock struct {
	TickRate int     `yaml:"tick_rate"` // Frames per second
	MaxStep  float64 `yaml:"max_step"`  // Upper bound of one physics step
}

// Viewport defines how logical units map to terminal cells.
type Viewport struct {
	UnitsPerColumn float64 `yaml:"units_per_column"`
	UnitsPerRow    float64 `yaml:"units_per_row"`
	MinFieldHeight float64 `yaml:"min_field_height"` // Short terminals use a coarser row scale to reach it
}

// Shell defines presentation options.
type Shell struct {
	Sound             bool    `yaml:"sound"`
	Volume            float64 `yaml:"volume"`             // Master volume multiplier, 0..1
	InterstitialEvery int     `yaml:"interstitial_every"` // Show the interstitial every N retries, 0 disables
}

// Validate reports every out-of-range value in the configuration.
func (c FishConfig) Validate() error {
	var errs []error

	positive := []struct {
		name string
		v    float64
	}{
		{"physics.gravity", c.Physics.Gravity},
		{"physics.max_fall_speed", c.Physics.MaxFallSpeed},
		{"physics.forward_speed_ref", c.Physics.ForwardSpeedRef},
		{"fish.radius", c.Fish.Radius},
		{"obstacles.width", c.Obstacles.Width},
		{"obstacles.gap_height", c.Obstacles.GapHeight},
		{"obstacles.spacing", c.Obstacles.Spacing},
		{"obstacles.speed", c.Obstacles.Speed},
		{"clock.max_step", c.Clock.MaxStep},
		{"viewport.units_per_column", c.Viewport.UnitsPerColumn},
		{"viewport.units_per_row", c.Viewport.UnitsPerRow},
	}
	for _, p := range positive {
		if p.v <= 0 {
			errs = append(errs, fmt.Errorf("%s must be positive, got %v", p.name, p.v))
		}
	}

	if c.Physics.FlapVelocity >= 0 {
		errs = append(errs, fmt.Errorf("physics.flap_velocity must be negative (upward), got %v", c.Physics.FlapVelocity))
	}
	if c.Fish.StartYRatio <= 0 || c.Fish.StartYRatio >= 1 {
		errs = append(errs, fmt.Errorf("fish.start_y_ratio must be in (0, 1), got %v", c.Fish.StartYRatio))
	}
	if c.Viewport.MinFieldHeight < 0 {
		errs = append(errs, fmt.Errorf("viewport.min_field_height must not be negative, got %v", c.Viewport.MinFieldHeight))
	}
	if c.Obstacles.Margin < 0 {
		errs = append(errs, fmt.Errorf("obstacles.margin must not be negative, got %v", c.Obstacles.Margin))
	}
	if c.Clock.TickRate <= 0 {
		errs = append(errs, fmt.Errorf("clock.tick_rate must be positive, got %d", c.Clock.TickRate))
	}
	if c.Shell.Volume < 0 || c.Shell.Volume > 1 {
		errs = append(errs, fmt.Errorf("shell.volume must be in [0, 1], got %v", c.Shell.Volume))
	}
	if c.Shell.InterstitialEvery < 0 {
		errs = append(errs, fmt.Errorf("shell.interstitial_every must not be negative, got %d", c.Shell.InterstitialEvery))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: invalid configuration: %w", errors.Join(errs...))
	}
	return nil
}
