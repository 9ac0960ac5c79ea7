package shooter

import (
	"github.com/stardrift/stardrift/internal/config"
	"github.com/stardrift/stardrift/internal/stats"
	"github.com/stardrift/stardrift/internal/weapon"
)

// The YAML sections and the stat configs are separate types on
// purpose: config stays free of simulation imports. These helpers
// bridge the two at game construction.

func healthConfig(s config.HealthSection) *stats.HealthConfig {
	return &stats.HealthConfig{
		MaxHealth:         s.MaxHealth,
		MaxShield:         s.MaxShield,
		ShieldRegenRate:   s.ShieldRegenRate,
		ShieldRegenDelay:  s.ShieldRegenDelay,
		StartingLives:     s.StartingLives,
		RespawnDelay:      s.RespawnDelay,
		StartInvulnerable: s.StartInvulnerable,
	}
}

func combatConfig(s config.CombatSection) *stats.CombatConfig {
	return &stats.CombatConfig{
		Damage:             s.Damage,
		FireRate:           s.FireRate,
		CriticalChance:     s.CriticalChance,
		CriticalMultiplier: s.CriticalMultiplier,
	}
}

func defenseConfig(s config.DefenseSection) *stats.DefenseConfig {
	return &stats.DefenseConfig{
		Armor:              s.Armor,
		DamageReduction:    s.DamageReduction,
		MaxDamageReduction: s.MaxDamageReduction,
	}
}

func movementConfig(s config.MovementSection) *stats.MovementConfig {
	return &stats.MovementConfig{
		MoveSpeed:    s.MoveSpeed,
		MinMoveSpeed: s.MinMoveSpeed,
		MaxMoveSpeed: s.MaxMoveSpeed,
	}
}

func progressionConfig(s config.ProgressionSection) *stats.ProgressionConfig {
	return &stats.ProgressionConfig{
		StartingLevel:    s.StartingLevel,
		XPPerLevel:       s.XPPerLevel,
		HealthPerLevel:   s.HealthPerLevel,
		DamagePerLevel:   s.DamagePerLevel,
		SpeedPerLevel:    s.SpeedPerLevel,
		RestoreOnLevelUp: s.RestoreOnLevelUp,
	}
}

// buildLoadout assembles the five weapon slots from configuration.
// Sections that fail validation fall back to the stock strategy.
func buildLoadout(s config.WeaponsSection, combat *stats.Combat, sink weapon.EventSink) *weapon.Weapon {
	burst, err := weapon.NewBurst(s.Burst.BulletCount, s.Burst.ShotDelay, s.Burst.Cooldown)
	if err != nil {
		burst = weapon.DefaultBurst()
	}
	spread, err := weapon.NewSpread(s.Spread.BulletCount, s.Spread.SpreadAngle,
		s.Spread.DamageMultiplier, s.Spread.Cooldown)
	if err != nil {
		spread = weapon.DefaultSpread()
	}
	circle, err := weapon.NewCircle(s.Circle.BulletCount, s.Circle.DamageMultiplier, s.Circle.Cooldown)
	if err != nil {
		circle = weapon.DefaultCircle()
	}

	return weapon.New(combat, sink,
		weapon.NewSingle(),
		burst,
		weapon.Triple{SideAngle: s.Triple.SideAngle, Cooldown: s.Triple.Cooldown},
		spread,
		circle,
	)
}
