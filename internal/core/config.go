package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
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

// DeltaTime returns the fixed simulation step in seconds.
func (c RuntimeConfig) DeltaTime() float64 {
	rate := c.TickRate
	if rate <= 0 {
		rate = 60
	}
	return 1.0 / float64(rate)
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Current score
	Level    int  // Current pilot level
	Wave     int  // Current enemy wave
	Lives    int  // Remaining lives
	GameOver bool // Whether the game has ended
	Paused   bool // Whether the game is paused
}

// StepResult is returned by Game.Step() after each simulation tick.
// Contains the updated game state and any events that occurred.
type StepResult struct {
	State  GameState
	Events []Event
}

// EventKind identifies a simulation event surfaced to the platform.
type EventKind int

const (
	EventNone EventKind = iota
	EventStatChanged
	EventDamageTaken
	EventHealed
	EventShieldHit
	EventShieldBroken
	EventShieldRestored
	EventLivesChanged
	EventDeath
	EventRespawn
	EventLevelUp
	EventXPChanged
	EventWaveCleared
	EventWeaponSwitched
)

// Event is a fire-and-forget notification emitted by the simulation.
// The platform uses these for HUD flashes; games never depend on a
// subscriber being present.
type Event struct {
	Kind  EventKind
	Name  string  // Stat name or weapon name, when applicable
	Value float64 // New value / amount, when applicable
}
