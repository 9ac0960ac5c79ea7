package config

import (
	_ "embed"
)

//go:embed defaults/shooter.yaml
var defaultShooterYAML []byte

// DefaultShooterConfig returns the default shooter configuration.
func DefaultShooterConfig() ShooterConfig {
	return ShooterConfig{
		Health: HealthSection{
			MaxHealth:         100,
			MaxShield:         50,
			ShieldRegenRate:   10,
			ShieldRegenDelay:  3,
			StartingLives:     3,
			RespawnDelay:      2,
			StartInvulnerable: true,
		},
		Combat: CombatSection{
			Damage:             10,
			FireRate:           1,
			CriticalChance:     0.05,
			CriticalMultiplier: 2,
		},
		Defense: DefenseSection{
			Armor:              0,
			DamageReduction:    0,
			MaxDamageReduction: 0.75,
		},
		Movement: MovementSection{
			MoveSpeed:    18,
			MinMoveSpeed: 6,
			MaxMoveSpeed: 36,
		},
		Progression: ProgressionSection{
			StartingLevel:    1,
			XPPerLevel:       100,
			HealthPerLevel:   10,
			DamagePerLevel:   2,
			SpeedPerLevel:    0.5,
			RestoreOnLevelUp: true,
		},
		Weapons: WeaponsSection{
			Triple: TripleWeapon{
				SideAngle: 15,
				Cooldown:  1.3,
			},
			Burst: BurstWeapon{
				BulletCount: 3,
				ShotDelay:   0.1,
				Cooldown:    1.5,
			},
			Spread: SpreadWeapon{
				BulletCount:      5,
				SpreadAngle:      30,
				DamageMultiplier: 0.7,
				Cooldown:         1.8,
			},
			Circle: CircleWeapon{
				BulletCount:      8,
				DamageMultiplier: 0.5,
				Cooldown:         2.5,
			},
		},
		Enemies: EnemiesSection{
			SpawnInterval: 1.5,
			MaxAlive:      12,
			BaseHealth:    20,
			BaseDamage:    10,
			BaseSpeed:     6,
			FireInterval:  2.5,
			XPReward:      25,
			ScoreReward:   10,
			WaveSize:      6,
			WaveGrowth:    2,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ScalingOverTime{
				Type:  "wave",
				MaxAt: 10,
			},
			Scaling: DifficultyScaling{
				HealthMultiplier:  1.5,
				SpeedMultiplier:   0.8,
				SpawnAcceleration: 0.5,
			},
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "shooter":
		return defaultShooterYAML
	default:
		return nil
	}
}
