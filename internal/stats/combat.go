package stats

import "github.com/stardrift/stardrift/internal/core"

// CombatConfig is the immutable base configuration for the combat
// category.
type CombatConfig struct {
	Damage             float64
	FireRate           float64 // Shots per second
	CriticalChance     float64 // Probability in [0, 1]
	CriticalMultiplier float64
}

// DefaultCombatConfig returns the hard-coded fallback configuration.
func DefaultCombatConfig() CombatConfig {
	return CombatConfig{
		Damage:             10,
		FireRate:           1,
		CriticalChance:     0.05,
		CriticalMultiplier: 2,
	}
}

// RandomSource supplies uniform random values in [0, 1). Injected so
// the critical-hit roll is deterministic under test.
type RandomSource interface {
	Float64() float64
}

// Combat owns the combat stat block and the critical-hit roll.
type Combat struct {
	*Block

	rng RandomSource
}

// NewCombat creates the combat category. A nil config falls back to
// defaults with a warning. rng must not be nil.
func NewCombat(cfg *CombatConfig, rng RandomSource, warnf WarnFunc) *Combat {
	if cfg == nil {
		warn(warnf, "stats: missing combat config, using defaults")
		def := DefaultCombatConfig()
		cfg = &def
	}
	return &Combat{
		Block: NewBlock(map[string]float64{
			StatDamage:         cfg.Damage,
			StatFireRate:       cfg.FireRate,
			StatCritChance:     cfg.CriticalChance,
			StatCritMultiplier: cfg.CriticalMultiplier,
		}),
		rng: rng,
	}
}

// Damage returns the effective base damage per shot.
func (c *Combat) Damage() float64 {
	return c.Value(StatDamage)
}

// FireRate returns the effective shots per second.
func (c *Combat) FireRate() float64 {
	return c.Value(StatFireRate)
}

// CriticalChance returns the effective crit probability, clamped to [0, 1].
func (c *Combat) CriticalChance() float64 {
	return core.ClampF(c.Value(StatCritChance), 0, 1)
}

// CriticalMultiplier returns the effective crit damage multiplier.
func (c *Combat) CriticalMultiplier() float64 {
	return c.Value(StatCritMultiplier)
}

// CalculateDamageOutput rolls for a critical hit and returns the damage
// for one shot: Damage x CriticalMultiplier on a crit, Damage otherwise.
func (c *Combat) CalculateDamageOutput() float64 {
	damage := c.Damage()
	if c.rng.Float64() <= c.CriticalChance() {
		return damage * c.CriticalMultiplier()
	}
	return damage
}
