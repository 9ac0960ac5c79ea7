package config

import "math"

// DifficultyManager calculates dynamic enemy parameters based on
// score, elapsed ticks, or wave number.
type DifficultyManager struct {
	cfg          DifficultyConfig
	initialLevel float64
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{
		cfg:          cfg,
		initialLevel: cfg.InitialLevel,
	}
}

// SetInitialLevel overrides the initial difficulty level (0.0 to 1.0).
func (d *DifficultyManager) SetInitialLevel(level float64) {
	d.initialLevel = clampF(level, 0.0, 1.0)
}

// SetEnabled enables or disables difficulty progression.
func (d *DifficultyManager) SetEnabled(enabled bool) {
	d.cfg.Enabled = enabled
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.Progression.Type != "none"
}

// Level returns the current difficulty level (0.0 to 1.0).
func (d *DifficultyManager) Level(score, ticks, wave int) float64 {
	if !d.cfg.Enabled || d.cfg.Progression.Type == "none" {
		return d.initialLevel
	}

	var progress float64
	maxAt := float64(d.cfg.Progression.MaxAt)
	if maxAt <= 0 {
		maxAt = 1 // Prevent division by zero
	}

	switch d.cfg.Progression.Type {
	case "score":
		progress = float64(score) / maxAt
	case "time":
		progress = float64(ticks) / maxAt
	case "wave":
		progress = float64(wave-1) / maxAt
	default:
		return d.initialLevel
	}

	// Clamp progress to [0, 1]
	progress = clampF(progress, 0.0, 1.0)

	// Interpolate from initial level to 1.0
	return d.initialLevel + progress*(1.0-d.initialLevel)
}

// EnemyHealth returns the scaled enemy health for the current level.
func (d *DifficultyManager) EnemyHealth(base float64, score, ticks, wave int) float64 {
	level := d.Level(score, ticks, wave)
	return base * (1.0 + level*d.cfg.Scaling.HealthMultiplier)
}

// EnemySpeed returns the scaled enemy speed for the current level.
func (d *DifficultyManager) EnemySpeed(base float64, score, ticks, wave int) float64 {
	level := d.Level(score, ticks, wave)
	return base * (1.0 + level*d.cfg.Scaling.SpeedMultiplier)
}

// SpawnInterval returns the scaled spawn interval for the current
// level. Intervals shrink as difficulty rises, floored at 0.25s.
func (d *DifficultyManager) SpawnInterval(base float64, score, ticks, wave int) float64 {
	level := d.Level(score, ticks, wave)
	result := base * (1.0 - level*d.cfg.Scaling.SpawnAcceleration)
	if result < 0.25 {
		result = 0.25
	}
	return result
}

// clampF restricts a float64 to [min, max].
func clampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}
