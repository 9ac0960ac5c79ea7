package stats

import "github.com/stardrift/stardrift/internal/core"

// DefenseConfig is the immutable base configuration for the defense
// category.
type DefenseConfig struct {
	Armor              float64 // Flat damage subtracted after reduction
	DamageReduction    float64 // Fractional reduction in [0, MaxDamageReduction]
	MaxDamageReduction float64 // Cap on effective reduction
}

// DefaultDefenseConfig returns the hard-coded fallback configuration.
func DefaultDefenseConfig() DefenseConfig {
	return DefenseConfig{
		Armor:              0,
		DamageReduction:    0,
		MaxDamageReduction: 0.75,
	}
}

// Defense owns the defense stat block and incoming-damage mitigation.
type Defense struct {
	*Block

	maxReduction float64
}

// NewDefense creates the defense category. A nil config falls back to
// defaults with a warning.
func NewDefense(cfg *DefenseConfig, warnf WarnFunc) *Defense {
	if cfg == nil {
		warn(warnf, "stats: missing defense config, using defaults")
		def := DefaultDefenseConfig()
		cfg = &def
	}
	return &Defense{
		Block: NewBlock(map[string]float64{
			StatArmor:           cfg.Armor,
			StatDamageReduction: cfg.DamageReduction,
		}),
		maxReduction: cfg.MaxDamageReduction,
	}
}

// Armor returns the effective flat armor.
func (d *Defense) Armor() float64 {
	return d.Value(StatArmor)
}

// DamageReduction returns the effective fractional reduction, clamped
// to [0, maxDamageReduction].
func (d *Defense) DamageReduction() float64 {
	return core.ClampF(d.Value(StatDamageReduction), 0, d.maxReduction)
}

// ApplyDefense mitigates incoming damage: the percentage reduction is
// applied first, then flat armor is subtracted, floored at zero.
func (d *Defense) ApplyDefense(incoming float64) float64 {
	reduced := incoming * (1 - d.DamageReduction())
	reduced -= d.Armor()
	if reduced < 0 {
		return 0
	}
	return reduced
}
