package game

import "github.com/vovakirdan/flappy-fish/internal/config"

// Params are the simulation constants shared by every obstacle and run.
type Params struct {
	Gravity         float64
	FlapVelocity    float64
	MaxFallSpeed    float64
	ForwardSpeedRef float64

	FishX       float64
	FishRadius  float64
	StartYRatio float64

	ObstacleWidth float64
	GapHeight     float64
	Spacing       float64
	Speed         float64
	Margin        float64

	MaxStep float64
}

// ParamsFromConfig extracts simulation constants from the game config.
func ParamsFromConfig(cfg config.FishConfig) Params {
	return Params{
		Gravity:         cfg.Physics.Gravity,
		FlapVelocity:    cfg.Physics.FlapVelocity,
		MaxFallSpeed:    cfg.Physics.MaxFallSpeed,
		ForwardSpeedRef: cfg.Physics.ForwardSpeedRef,
		FishX:           cfg.Fish.X,
		FishRadius:      cfg.Fish.Radius,
		StartYRatio:     cfg.Fish.StartYRatio,
		ObstacleWidth:   cfg.Obstacles.Width,
		GapHeight:       cfg.Obstacles.GapHeight,
		Spacing:         cfg.Obstacles.Spacing,
		Speed:           cfg.Obstacles.Speed,
		Margin:          cfg.Obstacles.Margin,
		MaxStep:         cfg.Clock.MaxStep,
	}
}

// DefaultParams returns the constants of the built-in configuration.
func DefaultParams() Params {
	return ParamsFromConfig(config.DefaultFishConfig())
}
