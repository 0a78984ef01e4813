package core

import "time"

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW   int   // Screen width in characters
	ScreenH   int   // Screen height in characters
	TickRate  int   // Frames per second requested from the platform (default 60)
	Seed      int64 // RNG seed for deterministic gameplay
	HighScore int   // Best stored score for this game, read at startup
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

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Current score
	GameOver bool // Whether the game has ended
	Paused   bool // Whether the game is paused
	InMenu   bool // Whether the game sits on its own title screen
}

// HUD carries the plain values an external UI layer renders.
// Fields a game does not use stay zero.
type HUD struct {
	Score     int
	HighScore int
	Wave      int
	Combo     int
	Health    float64 // Player health as a 0..1 ratio
	Money     int
	Lives     int
	Buffs     []string
	Log       []string
}

// StepResult is returned by Game.Step() after each frame.
type StepResult struct {
	State GameState
	HUD   HUD
}

// SessionSummary holds end-of-session figures shown on the game-over
// screen and saved alongside the score.
type SessionSummary struct {
	Wave      int
	BestCombo int
	Kills     int
	Duration  time.Duration
}
