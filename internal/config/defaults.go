package config

import (
	_ "embed"
)

//go:embed defaults/fish.yaml
var defaultFishYAML []byte

// DefaultFishConfig returns the built-in configuration.
// It mirrors defaults/fish.yaml and is used when the embedded file cannot be parsed.
func DefaultFishConfig() FishConfig {
	return FishConfig{
		Physics: Physics{
			Gravity:         1250,
			FlapVelocity:    -450,
			MaxFallSpeed:    720,
			ForwardSpeedRef: 300,
		},
		Fish: Fish{
			X:           90,
			Radius:      14,
			StartYRatio: 0.45,
		},
		Obstacles: Obstacles{
			Width:     50,
			GapHeight: 200,
			Spacing:   220,
			Speed:     150,
			Margin:    80,
		},
		Clock: Clock{
			TickRate: 60,
			MaxStep:  0.033,
		},
		Viewport: Viewport{
			UnitsPerColumn: 8,
			UnitsPerRow:    16,
			MinFieldHeight: 600,
		},
		Shell: Shell{
			Sound:             true,
			Volume:            1.0,
			InterstitialEvery: 3,
		},
	}
}
