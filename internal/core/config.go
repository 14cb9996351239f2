package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
// The tick length is the game's own setting, not the platform's.
type RuntimeConfig struct {
	ScreenW    int   // Screen width in characters
	ScreenH    int   // Screen height in characters
	Seed       int64 // RNG seed for deterministic gameplay
	StartLevel int   // Level the reset path starts at (0 or 1 = first level)
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:    80,
		ScreenH:    24,
		Seed:       0, // 0 means use current time in platform layer
		StartLevel: 1,
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int    // Current score
	Level    int    // Current level number
	Phase    string // Human-readable phase name
	GameOver bool   // Whether the game has ended
	Paused   bool   // Whether the game is paused
}

// Event is a notable thing that happened during one step.
// The platform uses these for logging; games never depend on them being read.
type Event struct {
	Name  string
	Value int
}

// StepResult is returned by Game.Step() after each simulation tick.
// Contains the updated game state and any events that occurred.
type StepResult struct {
	State  GameState
	Events []Event
}
