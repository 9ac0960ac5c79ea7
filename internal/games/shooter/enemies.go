package shooter

import (
	"math/rand"

	"github.com/stardrift/stardrift/internal/config"
	"github.com/stardrift/stardrift/internal/core"
)

// Enemy is a hostile ship drifting toward the player.
type Enemy struct {
	Pos    core.Vec2
	Health float64
	Damage float64
	Speed  float64 // Cells per second

	FireInterval float64 // Seconds between shots; 0 never shoots
	FireIn       float64 // Countdown to the next shot
}

// Spawner produces enemies in waves. Spawn positions come from a
// seeded RNG so runs with the same seed play out identically.
type Spawner struct {
	cfg  config.EnemiesSection
	diff *config.DifficultyManager
	rng  *rand.Rand

	screenW int
	screenH int

	wave      int
	toSpawn   int // Enemies not yet spawned this wave
	untilNext float64
}

// NewSpawner creates a spawner for the first wave.
func NewSpawner(cfg config.EnemiesSection, diff *config.DifficultyManager, seed int64, screenW, screenH int) *Spawner {
	s := &Spawner{
		cfg:     cfg,
		diff:    diff,
		rng:     rand.New(rand.NewSource(seed)),
		screenW: screenW,
		screenH: screenH,
	}
	s.Reset(seed)
	return s
}

// Reset restarts the spawner at wave 1 with a fresh RNG stream.
func (s *Spawner) Reset(seed int64) {
	s.rng = rand.New(rand.NewSource(seed))
	s.wave = 1
	s.toSpawn = s.waveQuota(1)
	s.untilNext = 0
}

// UpdateScreenSize adjusts spawn positions after a resize.
func (s *Spawner) UpdateScreenSize(w, h int) {
	s.screenW = w
	s.screenH = h
}

// Wave returns the current wave number.
func (s *Spawner) Wave() int {
	return s.wave
}

// Remaining returns how many enemies the current wave has yet to spawn.
func (s *Spawner) Remaining() int {
	return s.toSpawn
}

// waveQuota returns the number of enemies in the given wave.
func (s *Spawner) waveQuota(wave int) int {
	return s.cfg.WaveSize + s.cfg.WaveGrowth*(wave-1)
}

// WaveCleared reports whether the wave quota is exhausted and no
// enemies remain alive. The caller advances to the next wave.
func (s *Spawner) WaveCleared(alive int) bool {
	return s.toSpawn == 0 && alive == 0
}

// NextWave advances to the following wave.
func (s *Spawner) NextWave() {
	s.wave++
	s.toSpawn = s.waveQuota(s.wave)
	s.untilNext = 0
}

// Advance moves the spawn clock forward and returns a new enemy when
// one is due, or nil. At most one enemy spawns per call; spawning
// pauses while the alive count is at the cap.
func (s *Spawner) Advance(dt float64, alive, score, ticks int) *Enemy {
	if s.toSpawn == 0 || alive >= s.cfg.MaxAlive {
		return nil
	}

	s.untilNext -= dt
	if s.untilNext > 0 {
		return nil
	}
	s.untilNext = s.diff.SpawnInterval(s.cfg.SpawnInterval, score, ticks, s.wave)
	s.toSpawn--

	// Spawn along the top edge, just below the HUD row
	x := 1 + s.rng.Float64()*float64(s.screenW-2)
	return &Enemy{
		Pos:          core.NewVec2(x, 1),
		Health:       s.diff.EnemyHealth(s.cfg.BaseHealth, score, ticks, s.wave),
		Damage:       s.cfg.BaseDamage,
		Speed:        s.diff.EnemySpeed(s.cfg.BaseSpeed, score, ticks, s.wave),
		FireInterval: s.cfg.FireInterval,
		FireIn:       s.cfg.FireInterval,
	}
}

// Seek moves the enemy toward the target by one step.
func (e *Enemy) Seek(target core.Vec2, dt float64) {
	dir := target.Sub(e.Pos)
	if dir.IsZero() {
		return
	}
	e.Pos = e.Pos.Add(dir.Normalize().Scale(e.Speed * dt))
}

// TickFire advances the fire timer and reports whether a shot came due.
func (e *Enemy) TickFire(dt float64) bool {
	if e.FireInterval <= 0 {
		return false
	}
	e.FireIn -= dt
	if e.FireIn > 0 {
		return false
	}
	e.FireIn += e.FireInterval
	return true
}
