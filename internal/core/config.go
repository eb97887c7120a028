package core

// RuntimeConfig is what the platform tells a game about its host: terminal
// size, frame rate and RNG seed.
type RuntimeConfig struct {
	ScreenW  int   // columns
	ScreenH  int   // rows, including the HUD row
	TickRate int   // frames per second
	Seed     int64 // 0 asks the platform for a time-based seed
}

const (
	defaultScreenW  = 80
	defaultScreenH  = 24
	defaultTickRate = 60
)

// DefaultConfig returns an 80x24 host at 60 frames per second.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  defaultScreenW,
		ScreenH:  defaultScreenH,
		TickRate: defaultTickRate,
	}
}

// Normalized replaces a non-positive size or rate with the default.
// The seed is kept as is.
func (c RuntimeConfig) Normalized() RuntimeConfig {
	if c.ScreenW <= 0 || c.ScreenH <= 0 {
		c.ScreenW, c.ScreenH = defaultScreenW, defaultScreenH
	}
	if c.TickRate <= 0 {
		c.TickRate = defaultTickRate
	}
	return c
}

// GameState is the slice of a game's state the platform acts on.
type GameState struct {
	Score    int
	Level    int
	GameOver bool
	Paused   bool
}

// Stopped reports whether the game is waiting on the player, paused or over.
// The platform saves scores and allows leaving only then.
func (s GameState) Stopped() bool {
	return s.GameOver || s.Paused
}

// StepResult is returned by Game.Step after each frame.
type StepResult struct {
	State GameState

	// Consumed lists held actions the frame used up as commands. The
	// platform drops their latches so the same press does not act twice.
	Consumed []Action
}
