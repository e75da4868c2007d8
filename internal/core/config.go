package core

// RuntimeConfig contains configuration passed to the game at initialization.
// The game uses this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW int   // Screen width in characters
	ScreenH int   // Screen height in characters
	Seed    int64 // RNG seed for deterministic gameplay
}

// GameState represents the coarse status of the game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Current score
	GameOver bool // Whether the snake has crashed
}

// StepResult is returned by Game.Tick() after each simulation tick.
type StepResult struct {
	State    GameState
	Running  bool // False asks the controlling loop to stop
	TickRate int  // Advisory ticks per second for the next tick
}
