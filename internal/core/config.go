package core

// RuntimeConfig describes the environment a game runs in.
type RuntimeConfig struct {
	ScreenW  int   // Terminal width in cells
	ScreenH  int   // Terminal height in cells
	TickRate int   // Simulation steps per second
	Seed     int64 // Session seed: rain, food and the lobby's first map when nothing is saved
}

// DefaultConfig returns the settings of a standard 80x24 terminal at 60
// steps per second.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
	}
}

// GameState is the status a game reports to the platform after each
// step.
type GameState struct {
	Score    int
	GameOver bool
	Paused   bool // paused by the player or by a too-small window
}
