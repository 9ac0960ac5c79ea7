package stats

import "github.com/stardrift/stardrift/internal/core"

// ProgressionConfig is the immutable base configuration for the
// progression category.
type ProgressionConfig struct {
	StartingLevel    int
	XPPerLevel       float64 // Requirement for level N is XPPerLevel * N
	HealthPerLevel   float64 // Flat maxHealth granted per level-up
	DamagePerLevel   float64 // Flat damage granted per level-up
	SpeedPerLevel    float64 // Flat moveSpeed granted per level-up
	RestoreOnLevelUp bool    // Fully restore health/shield on level-up
}

// DefaultProgressionConfig returns the hard-coded fallback configuration.
func DefaultProgressionConfig() ProgressionConfig {
	return ProgressionConfig{
		StartingLevel:    1,
		XPPerLevel:       100,
		HealthPerLevel:   10,
		DamagePerLevel:   2,
		SpeedPerLevel:    0.5,
		RestoreOnLevelUp: true,
	}
}

// Progression owns the actor's level and XP, and grants permanent Flat
// modifiers to the other categories on level-up. The grants use the
// Progression instance itself as their modifier source so they can be
// identified or removed as a block later.
type Progression struct {
	cfg  ProgressionConfig
	sink EventSink

	level int
	xp    float64

	health   *Health
	combat   *Combat
	movement *Movement
}

// NewProgression creates the progression category wired to the
// categories its level-up grants target. A nil config falls back to
// defaults with a warning.
func NewProgression(cfg *ProgressionConfig, health *Health, combat *Combat, movement *Movement, sink EventSink, warnf WarnFunc) *Progression {
	if cfg == nil {
		warn(warnf, "stats: missing progression config, using defaults")
		def := DefaultProgressionConfig()
		cfg = &def
	}
	level := cfg.StartingLevel
	if level < 1 {
		level = 1
	}
	return &Progression{
		cfg:      *cfg,
		sink:     sink,
		level:    level,
		health:   health,
		combat:   combat,
		movement: movement,
	}
}

// Level returns the current level.
func (p *Progression) Level() int {
	return p.level
}

// XP returns XP accumulated toward the next level.
func (p *Progression) XP() float64 {
	return p.xp
}

// XPForNextLevel returns the requirement for the next level-up.
func (p *Progression) XPForNextLevel() float64 {
	return p.cfg.XPPerLevel * float64(p.level)
}

// AddXP accumulates XP and resolves any level-ups it causes, handling
// multi-level gains in one call. Each level-up resets XP to zero
// before the overflow beyond that level's requirement is re-applied
// toward the next threshold.
func (p *Progression) AddXP(amount float64) {
	p.xp += amount
	emit(p.sink, core.Event{Kind: core.EventXPChanged, Value: p.xp})

	for p.cfg.XPPerLevel > 0 && p.xp >= p.XPForNextLevel() {
		overflow := p.xp - p.XPForNextLevel()
		p.levelUp()
		p.xp = overflow
		emit(p.sink, core.Event{Kind: core.EventXPChanged, Value: p.xp})
	}
}

// levelUp increments the level, zeroes XP, and applies the permanent
// stat grants.
func (p *Progression) levelUp() {
	p.level++
	p.xp = 0

	if p.health != nil && p.cfg.HealthPerLevel != 0 {
		p.health.AddModifier(StatMaxHealth, NewModifier(p.cfg.HealthPerLevel, Flat, p))
	}
	if p.combat != nil && p.cfg.DamagePerLevel != 0 {
		p.combat.AddModifier(StatDamage, NewModifier(p.cfg.DamagePerLevel, Flat, p))
	}
	if p.movement != nil && p.cfg.SpeedPerLevel != 0 {
		p.movement.AddModifier(StatMoveSpeed, NewModifier(p.cfg.SpeedPerLevel, Flat, p))
	}

	if p.cfg.RestoreOnLevelUp && p.health != nil {
		p.health.RestoreFull()
	}

	emit(p.sink, core.Event{Kind: core.EventLevelUp, Value: float64(p.level)})
}

// RemoveGrants strips every level-up modifier this progression has
// granted across the other categories.
func (p *Progression) RemoveGrants() {
	if p.health != nil {
		p.health.RemoveModifiersFrom(StatMaxHealth, p)
	}
	if p.combat != nil {
		p.combat.RemoveModifiersFrom(StatDamage, p)
	}
	if p.movement != nil {
		p.movement.RemoveModifiersFrom(StatMoveSpeed, p)
	}
}
