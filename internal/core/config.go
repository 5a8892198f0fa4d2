package core

// RuntimeConfig contains configuration passed to a session at start.
// Adapters use it for screen size, tick pacing and deterministic platforms.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters (or window pixels)
	ScreenH  int   // Screen height in characters (or window pixels)
	TickRate int   // Display refresh ticks per second (default 60)
	Seed     int64 // RNG seed for platform generation
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

// GameState is the HUD-facing state of a session.
type GameState struct {
	Score    int  // Current score
	GameOver bool // Whether the restart affordance should be shown
}
