package stats

import "github.com/stardrift/stardrift/internal/core"

// SheetConfig bundles the per-category configuration records for one
// actor. Nil category pointers fall back to documented defaults.
type SheetConfig struct {
	Health      *HealthConfig
	Combat      *CombatConfig
	Defense     *DefenseConfig
	Movement    *MovementConfig
	Progression *ProgressionConfig
}

// Sheet is the full stat sheet for one actor: all five categories
// wired together. Created once at actor spawn and destroyed with the
// actor; a single simulation goroutine owns it exclusively.
type Sheet struct {
	Health      *Health
	Combat      *Combat
	Defense     *Defense
	Movement    *Movement
	Progression *Progression
}

// NewSheet builds a sheet from configuration, wiring progression
// grants into the other categories and bridging every block's
// stat-changed notifications into the shared event sink.
func NewSheet(cfg SheetConfig, rng RandomSource, sink EventSink, warnf WarnFunc) *Sheet {
	s := &Sheet{
		Health:   NewHealth(cfg.Health, sink, warnf),
		Combat:   NewCombat(cfg.Combat, rng, warnf),
		Defense:  NewDefense(cfg.Defense, warnf),
		Movement: NewMovement(cfg.Movement, warnf),
	}
	s.Progression = NewProgression(cfg.Progression, s.Health, s.Combat, s.Movement, sink, warnf)

	if sink != nil {
		bridge := func(stat string, value float64) {
			sink(core.Event{Kind: core.EventStatChanged, Name: stat, Value: value})
		}
		s.Health.Subscribe(bridge)
		s.Combat.Subscribe(bridge)
		s.Defense.Subscribe(bridge)
		s.Movement.Subscribe(bridge)
	}

	return s
}

// Advance drives all time-based stat behavior by one step.
func (s *Sheet) Advance(dt float64) {
	s.Health.Advance(dt)
}
