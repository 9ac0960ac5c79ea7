package stats

import "github.com/stardrift/stardrift/internal/core"

// MovementConfig is the immutable base configuration for the movement
// category. Speeds are in cells per second.
type MovementConfig struct {
	MoveSpeed    float64
	MinMoveSpeed float64
	MaxMoveSpeed float64
}

// DefaultMovementConfig returns the hard-coded fallback configuration.
func DefaultMovementConfig() MovementConfig {
	return MovementConfig{
		MoveSpeed:    18,
		MinMoveSpeed: 6,
		MaxMoveSpeed: 36,
	}
}

// SpeedConsumer is anything that wants the actor's effective move
// speed pushed to it when the stat changes (the ship's kinematics,
// typically). Consumers are injected at construction; the category
// never looks collaborators up at runtime.
type SpeedConsumer interface {
	SetMoveSpeed(speed float64)
}

// Movement owns the movement stat block and pushes speed changes to
// registered consumers.
type Movement struct {
	*Block

	cfg       MovementConfig
	consumers []SpeedConsumer
}

// NewMovement creates the movement category. A nil config falls back
// to defaults with a warning.
func NewMovement(cfg *MovementConfig, warnf WarnFunc) *Movement {
	if cfg == nil {
		warn(warnf, "stats: missing movement config, using defaults")
		def := DefaultMovementConfig()
		cfg = &def
	}
	m := &Movement{
		Block: NewBlock(map[string]float64{
			StatMoveSpeed: cfg.MoveSpeed,
		}),
		cfg: *cfg,
	}
	m.Subscribe(func(stat string, _ float64) {
		if stat == StatMoveSpeed {
			m.push()
		}
	})
	return m
}

// AddConsumer registers a speed consumer and immediately pushes the
// current effective speed to it.
func (m *Movement) AddConsumer(c SpeedConsumer) {
	if c == nil {
		return
	}
	m.consumers = append(m.consumers, c)
	c.SetMoveSpeed(m.MoveSpeed())
}

// MoveSpeed returns the effective move speed, clamped to the
// configured [min, max] range.
func (m *Movement) MoveSpeed() float64 {
	return core.ClampF(m.Value(StatMoveSpeed), m.cfg.MinMoveSpeed, m.cfg.MaxMoveSpeed)
}

// push propagates the clamped speed to every consumer.
func (m *Movement) push() {
	speed := m.MoveSpeed()
	for _, c := range m.consumers {
		c.SetMoveSpeed(speed)
	}
}
