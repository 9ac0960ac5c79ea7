package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// WarnFunc receives warnings about invalid config values that were
// replaced by defaults. A nil WarnFunc discards them.
type WarnFunc func(format string, args ...any)

// LoadShooter loads the shooter configuration.
// Search order: customPath -> ~/.stardrift/configs/shooter.yaml -> ./configs/shooter.yaml -> embedded default
func LoadShooter(customPath string) (ShooterConfig, error) {
	var cfg ShooterConfig

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("shooter.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile("configs/shooter.yaml"); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultShooterYAML, &cfg); err != nil {
		return DefaultShooterConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".stardrift", "configs", filename)
}

// ApplyShooterPreset modifies the config based on a difficulty preset.
func ApplyShooterPreset(cfg *ShooterConfig, preset DifficultyPreset) {
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
	} else {
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}

	// Adjust the ship loadout based on difficulty
	switch preset {
	case DifficultyEasy:
		cfg.Health.StartingLives = 5
		cfg.Enemies.MaxAlive = 8
	case DifficultyHard:
		cfg.Health.StartingLives = 2
		cfg.Enemies.SpawnInterval = 1.0
		cfg.Enemies.MaxAlive = 16
	}
}

// Sanitize replaces values that cannot drive the simulation with their
// defaults, reporting each replacement through warnf. Loaded configs
// pass through here before they reach the game.
func Sanitize(cfg *ShooterConfig, warnf WarnFunc) {
	def := DefaultShooterConfig()

	fixF := func(field string, val *float64, fallback float64) {
		if *val <= 0 {
			warn(warnf, "config: %s = %v is not positive, using default %v", field, *val, fallback)
			*val = fallback
		}
	}
	fixN := func(field string, val *int, fallback int) {
		if *val <= 0 {
			warn(warnf, "config: %s = %v is not positive, using default %v", field, *val, fallback)
			*val = fallback
		}
	}

	fixF("health.max_health", &cfg.Health.MaxHealth, def.Health.MaxHealth)
	fixN("health.starting_lives", &cfg.Health.StartingLives, def.Health.StartingLives)
	fixF("combat.damage", &cfg.Combat.Damage, def.Combat.Damage)
	fixF("combat.fire_rate", &cfg.Combat.FireRate, def.Combat.FireRate)
	fixF("movement.move_speed", &cfg.Movement.MoveSpeed, def.Movement.MoveSpeed)
	fixF("movement.max_move_speed", &cfg.Movement.MaxMoveSpeed, def.Movement.MaxMoveSpeed)
	fixF("progression.xp_per_level", &cfg.Progression.XPPerLevel, def.Progression.XPPerLevel)
	fixN("weapons.burst.bullet_count", &cfg.Weapons.Burst.BulletCount, def.Weapons.Burst.BulletCount)
	fixN("weapons.circle.bullet_count", &cfg.Weapons.Circle.BulletCount, def.Weapons.Circle.BulletCount)
	fixF("enemies.spawn_interval", &cfg.Enemies.SpawnInterval, def.Enemies.SpawnInterval)
	fixF("enemies.base_health", &cfg.Enemies.BaseHealth, def.Enemies.BaseHealth)
	fixN("enemies.wave_size", &cfg.Enemies.WaveSize, def.Enemies.WaveSize)

	// The spread step divides by bullet_count-1, so 2 is the floor
	if cfg.Weapons.Spread.BulletCount < 2 {
		warn(warnf, "config: weapons.spread.bullet_count = %v needs at least 2, using default %v",
			cfg.Weapons.Spread.BulletCount, def.Weapons.Spread.BulletCount)
		cfg.Weapons.Spread.BulletCount = def.Weapons.Spread.BulletCount
	}
}

func warn(warnf WarnFunc, format string, args ...any) {
	if warnf != nil {
		warnf(format, args...)
	}
}
