// Package config provides YAML-based game configuration loading and
// difficulty management for the shooter.
package config

// ShooterConfig contains all configuration for the space shooter.
type ShooterConfig struct {
	Health      HealthSection      `yaml:"health"`
	Combat      CombatSection      `yaml:"combat"`
	Defense     DefenseSection     `yaml:"defense"`
	Movement    MovementSection    `yaml:"movement"`
	Progression ProgressionSection `yaml:"progression"`
	Weapons     WeaponsSection     `yaml:"weapons"`
	Enemies     EnemiesSection     `yaml:"enemies"`
	Difficulty  DifficultyConfig   `yaml:"difficulty"`
}

// HealthSection defines hull, shield, and life parameters.
type HealthSection struct {
	MaxHealth         float64 `yaml:"max_health"`
	MaxShield         float64 `yaml:"max_shield"`
	ShieldRegenRate   float64 `yaml:"shield_regen_rate"`  // Points per second
	ShieldRegenDelay  float64 `yaml:"shield_regen_delay"` // Seconds after last hit
	StartingLives     int     `yaml:"starting_lives"`
	RespawnDelay      float64 `yaml:"respawn_delay"` // Seconds
	StartInvulnerable bool    `yaml:"start_invulnerable"`
}

// CombatSection defines offensive parameters.
type CombatSection struct {
	Damage             float64 `yaml:"damage"`
	FireRate           float64 `yaml:"fire_rate"` // Shots per second
	CriticalChance     float64 `yaml:"critical_chance"`
	CriticalMultiplier float64 `yaml:"critical_multiplier"`
}

// DefenseSection defines damage mitigation parameters.
type DefenseSection struct {
	Armor              float64 `yaml:"armor"`
	DamageReduction    float64 `yaml:"damage_reduction"`
	MaxDamageReduction float64 `yaml:"max_damage_reduction"`
}

// MovementSection defines ship speed parameters.
type MovementSection struct {
	MoveSpeed    float64 `yaml:"move_speed"` // Cells per second
	MinMoveSpeed float64 `yaml:"min_move_speed"`
	MaxMoveSpeed float64 `yaml:"max_move_speed"`
}

// ProgressionSection defines experience and level-up parameters.
type ProgressionSection struct {
	StartingLevel    int     `yaml:"starting_level"`
	XPPerLevel       float64 `yaml:"xp_per_level"`
	HealthPerLevel   float64 `yaml:"health_per_level"`
	DamagePerLevel   float64 `yaml:"damage_per_level"`
	SpeedPerLevel    float64 `yaml:"speed_per_level"`
	RestoreOnLevelUp bool    `yaml:"restore_on_level_up"`
}

// WeaponsSection defines per-strategy shooting parameters.
type WeaponsSection struct {
	Triple TripleWeapon `yaml:"triple"`
	Burst  BurstWeapon  `yaml:"burst"`
	Spread SpreadWeapon `yaml:"spread"`
	Circle CircleWeapon `yaml:"circle"`
}

// TripleWeapon defines the triple-shot strategy.
type TripleWeapon struct {
	SideAngle float64 `yaml:"side_angle"` // Degrees off-center
	Cooldown  float64 `yaml:"cooldown"`   // Multiplier on 1/fire_rate
}

// BurstWeapon defines the burst strategy.
type BurstWeapon struct {
	BulletCount int     `yaml:"bullet_count"`
	ShotDelay   float64 `yaml:"shot_delay"` // Seconds between bullets
	Cooldown    float64 `yaml:"cooldown"`
}

// SpreadWeapon defines the spread strategy.
type SpreadWeapon struct {
	BulletCount      int     `yaml:"bullet_count"`
	SpreadAngle      float64 `yaml:"spread_angle"` // Total fan width in degrees
	DamageMultiplier float64 `yaml:"damage_multiplier"`
	Cooldown         float64 `yaml:"cooldown"`
}

// CircleWeapon defines the circle strategy.
type CircleWeapon struct {
	BulletCount      int     `yaml:"bullet_count"`
	DamageMultiplier float64 `yaml:"damage_multiplier"`
	Cooldown         float64 `yaml:"cooldown"`
}

// EnemiesSection defines wave spawning and enemy scaling.
type EnemiesSection struct {
	SpawnInterval float64 `yaml:"spawn_interval"` // Seconds between spawns
	MaxAlive      int     `yaml:"max_alive"`
	BaseHealth    float64 `yaml:"base_health"`
	BaseDamage    float64 `yaml:"base_damage"`
	BaseSpeed     float64 `yaml:"base_speed"`
	FireInterval  float64 `yaml:"fire_interval"` // Seconds between enemy shots; 0 disables
	XPReward      float64 `yaml:"xp_reward"`
	ScoreReward   int     `yaml:"score_reward"`
	WaveSize      int     `yaml:"wave_size"`
	WaveGrowth    int     `yaml:"wave_growth"` // Extra enemies per wave
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ScalingOverTime   `yaml:"progression"`
	Scaling      DifficultyScaling `yaml:"scaling"`
}

// ScalingOverTime defines how difficulty increases over a run.
type ScalingOverTime struct {
	Type  string `yaml:"type"`   // "score", "time", "wave", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks/wave at which max difficulty is reached
}

// DifficultyScaling defines the magnitude of difficulty changes.
type DifficultyScaling struct {
	HealthMultiplier  float64 `yaml:"health_multiplier"`  // Added to enemy health at max difficulty
	SpeedMultiplier   float64 `yaml:"speed_multiplier"`   // Added to enemy speed at max difficulty
	SpawnAcceleration float64 `yaml:"spawn_acceleration"` // Fraction shaved off spawn interval at max
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
