package core

import "time"

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 30)
	Seed     int64 // RNG seed for deterministic gameplay
	Clock    Clock // Time source for timed effects; nil means wall clock
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 30,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Current score
	GameOver bool // Whether the game has ended
	Paused   bool // Whether the game is paused
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
}

// Clock supplies the current time.
type Clock interface {
	Now() time.Time
}

// WallClock reads the system clock.
type WallClock struct{}

// Now returns time.Now().
func (WallClock) Now() time.Time {
	return time.Now()
}

// ManualClock is a clock that only moves when told to. Used by tests and
// by replays that must not depend on real time.
type ManualClock struct {
	T time.Time
}

// Now returns the clock's current time.
func (c *ManualClock) Now() time.Time {
	return c.T
}

// Advance moves the clock forward.
func (c *ManualClock) Advance(d time.Duration) {
	c.T = c.T.Add(d)
}

// ClockOrWall returns c, or a WallClock when c is nil.
func ClockOrWall(c Clock) Clock {
	if c == nil {
		return WallClock{}
	}
	return c
}

// RunSummary describes how a finished game ended. Games that can explain
// their ending return one so the platform can store it with the score.
type RunSummary struct {
	Cause    string        // What ended the run (e.g. "comet", "rock")
	Duration time.Duration // Play time excluding pauses
}
