package config

import (
	"strings"
	"testing"
)

func TestDifficultyLevelProgression(t *testing.T) {
	dm := NewDifficultyManager(DifficultyConfig{
		Enabled:      true,
		InitialLevel: 0.0,
		Progression:  ScalingOverTime{Type: "wave", MaxAt: 10},
		Scaling:      DifficultyScaling{HealthMultiplier: 1.0, SpeedMultiplier: 1.0, SpawnAcceleration: 0.5},
	})

	if got := dm.Level(0, 0, 1); got != 0.0 {
		t.Errorf("wave 1 level = %v, expected 0", got)
	}
	if got := dm.Level(0, 0, 6); got != 0.5 {
		t.Errorf("wave 6 level = %v, expected 0.5", got)
	}
	if got := dm.Level(0, 0, 100); got != 1.0 {
		t.Errorf("far wave level = %v, expected clamped 1.0", got)
	}
}

func TestDifficultyDisabledHoldsInitialLevel(t *testing.T) {
	dm := NewDifficultyManager(DifficultyConfig{
		Enabled:      false,
		InitialLevel: 0.3,
		Progression:  ScalingOverTime{Type: "wave", MaxAt: 10},
	})

	if got := dm.Level(9999, 9999, 9999); got != 0.3 {
		t.Errorf("disabled level = %v, expected initial 0.3", got)
	}
	if dm.IsEnabled() {
		t.Error("IsEnabled should be false")
	}
}

func TestDifficultyScalesEnemies(t *testing.T) {
	dm := NewDifficultyManager(DifficultyConfig{
		Enabled:      true,
		InitialLevel: 1.0, // Pin to max
		Progression:  ScalingOverTime{Type: "none"},
		Scaling:      DifficultyScaling{HealthMultiplier: 1.5, SpeedMultiplier: 0.8, SpawnAcceleration: 0.5},
	})

	if got := dm.EnemyHealth(20, 0, 0, 1); got != 50 {
		t.Errorf("EnemyHealth = %v, expected 20*2.5", got)
	}
	if got := dm.EnemySpeed(10, 0, 0, 1); got != 18 {
		t.Errorf("EnemySpeed = %v, expected 10*1.8", got)
	}
	if got := dm.SpawnInterval(2, 0, 0, 1); got != 1 {
		t.Errorf("SpawnInterval = %v, expected 2*0.5", got)
	}
}

func TestSpawnIntervalFloor(t *testing.T) {
	dm := NewDifficultyManager(DifficultyConfig{
		Enabled:      true,
		InitialLevel: 1.0,
		Progression:  ScalingOverTime{Type: "none"},
		Scaling:      DifficultyScaling{SpawnAcceleration: 0.99},
	})

	if got := dm.SpawnInterval(0.3, 0, 0, 1); got != 0.25 {
		t.Errorf("SpawnInterval = %v, expected floor 0.25", got)
	}
}

func TestSanitizeReplacesInvalidValues(t *testing.T) {
	cfg := DefaultShooterConfig()
	cfg.Health.MaxHealth = -5
	cfg.Combat.FireRate = 0
	cfg.Weapons.Spread.BulletCount = 1

	var warnings []string
	Sanitize(&cfg, func(format string, args ...any) {
		warnings = append(warnings, format)
	})

	def := DefaultShooterConfig()
	if cfg.Health.MaxHealth != def.Health.MaxHealth {
		t.Errorf("MaxHealth = %v, expected default %v", cfg.Health.MaxHealth, def.Health.MaxHealth)
	}
	if cfg.Combat.FireRate != def.Combat.FireRate {
		t.Errorf("FireRate = %v, expected default %v", cfg.Combat.FireRate, def.Combat.FireRate)
	}
	if cfg.Weapons.Spread.BulletCount != def.Weapons.Spread.BulletCount {
		t.Errorf("spread bullets = %v, expected default %v",
			cfg.Weapons.Spread.BulletCount, def.Weapons.Spread.BulletCount)
	}
	if len(warnings) != 3 {
		t.Errorf("got %d warnings, expected 3", len(warnings))
	}
}

func TestSanitizeLeavesValidConfigAlone(t *testing.T) {
	cfg := DefaultShooterConfig()
	Sanitize(&cfg, func(format string, args ...any) {
		t.Errorf("unexpected warning: %s", format)
	})
	if cfg != DefaultShooterConfig() {
		t.Error("valid config should pass through unchanged")
	}
}

func TestApplyShooterPreset(t *testing.T) {
	tests := []struct {
		preset        DifficultyPreset
		enabled       bool
		initial       float64
		startingLives int
	}{
		{DifficultyEasy, true, 0.0, 5},
		{DifficultyNormal, true, 0.3, 3},
		{DifficultyHard, true, 0.7, 2},
		{DifficultyFixed, false, 0.0, 3},
	}

	for _, tc := range tests {
		t.Run(string(tc.preset), func(t *testing.T) {
			cfg := DefaultShooterConfig()
			ApplyShooterPreset(&cfg, tc.preset)

			if cfg.Difficulty.Enabled != tc.enabled {
				t.Errorf("enabled = %v, expected %v", cfg.Difficulty.Enabled, tc.enabled)
			}
			if tc.enabled && cfg.Difficulty.InitialLevel != tc.initial {
				t.Errorf("initial level = %v, expected %v", cfg.Difficulty.InitialLevel, tc.initial)
			}
			if cfg.Health.StartingLives != tc.startingLives {
				t.Errorf("lives = %v, expected %v", cfg.Health.StartingLives, tc.startingLives)
			}
		})
	}
}

func TestEmbeddedDefaultsParse(t *testing.T) {
	data := GetDefaultYAML("shooter")
	if data == nil {
		t.Fatal("embedded shooter defaults missing")
	}
	if !strings.Contains(string(data), "max_health") {
		t.Error("embedded defaults should define max_health")
	}

	cfg, err := LoadShooter("")
	if err != nil {
		t.Fatalf("LoadShooter: %v", err)
	}
	if cfg.Health.MaxHealth <= 0 || cfg.Combat.FireRate <= 0 {
		t.Errorf("loaded defaults look empty: %+v", cfg)
	}
}
