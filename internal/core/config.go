package core

// RuntimeConfig contains configuration passed to the game at initialization.
// The platform layer fills it from flags and the terminal size.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Frames per second requested from the driver (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState is a read-only summary of the run, used by the HUD and overlays.
type GameState struct {
	Score    int  // Current score
	Best     int  // Best score across completed runs
	Running  bool // Simulation is advancing
	Paused   bool // Run is frozen by a pause
	GameOver bool // Run has ended
}
