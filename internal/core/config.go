package core

// RuntimeConfig describes the terminal a session renders into.
type RuntimeConfig struct {
	ScreenW  int // Screen width in characters
	ScreenH  int // Screen height in characters
	TickRate int // Simulation ticks per second (default 60)
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
	}
}

// Phase is the coarse state of a session as seen by the platform.
type Phase int

const (
	PhaseCaptured Phase = iota // Ball on paddle, waiting for launch
	PhasePlaying               // Ball in play
	PhaseBanner                // Level transition message is shown
	PhasePaused                // Paused by the player
	PhaseWon                   // Last level cleared
	PhaseGameOver              // Lose banner is shown; the run restarts on the same level
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseCaptured:
		return "captured"
	case PhasePlaying:
		return "playing"
	case PhaseBanner:
		return "banner"
	case PhasePaused:
		return "paused"
	case PhaseWon:
		return "won"
	case PhaseGameOver:
		return "gameover"
	default:
		return "unknown"
	}
}

// GameState is the session status reported to the platform after each tick.
type GameState struct {
	Score    int
	Lives    int
	Level    int // Zero-based level index
	Phase    Phase
	GameOver bool // Run finished, score can be saved
}

// StepResult is returned by Session.Step after each simulation tick.
type StepResult struct {
	State GameState
}
