package core

// Logical screen dimensions. Game physics always runs in this space;
// drivers scale it to their output.
const (
	ScreenWidth  = 800
	ScreenHeight = 600
)

// RuntimeConfig contains configuration passed to the game at initialization.
type RuntimeConfig struct {
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState represents the lifecycle phase of a game.
type GameState int

const (
	StatePrestart GameState = iota
	StateRunning
	StateGameOver
)

// String returns a human-readable name for the state.
func (s GameState) String() string {
	switch s {
	case StatePrestart:
		return "prestart"
	case StateRunning:
		return "running"
	case StateGameOver:
		return "game-over"
	default:
		return "unknown"
	}
}

// StepResult is returned by the controller after each simulation tick.
type StepResult struct {
	State GameState
	Quit  bool // Set once a quit request has been handled
}
