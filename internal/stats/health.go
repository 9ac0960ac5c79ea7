package stats

import "github.com/stardrift/stardrift/internal/core"

// HealthConfig is the immutable base configuration for the health
// category. Rates and delays are in seconds.
type HealthConfig struct {
	MaxHealth         float64
	MaxShield         float64
	ShieldRegenRate   float64 // Shield points restored per second
	ShieldRegenDelay  float64 // Seconds without damage before regen starts
	StartingLives     int
	RespawnDelay      float64
	StartInvulnerable bool
}

// DefaultHealthConfig returns the hard-coded fallback configuration.
func DefaultHealthConfig() HealthConfig {
	return HealthConfig{
		MaxHealth:        100,
		MaxShield:        50,
		ShieldRegenRate:  10,
		ShieldRegenDelay: 3,
		StartingLives:    3,
		RespawnDelay:     2,
	}
}

// LifeState tracks the health lifecycle.
// Alive -> (health reaches 0) -> Dead -> (lives remain, after respawn
// delay) -> Alive, or Dead -> (no lives remain) -> GameOver (terminal).
type LifeState int

const (
	Alive LifeState = iota
	Dead
	GameOver
)

// String returns the state's name.
func (s LifeState) String() string {
	switch s {
	case Alive:
		return "Alive"
	case Dead:
		return "Dead"
	case GameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// Health owns the health stat block and the actor's runtime health
// state: current health/shield, lives, invulnerability, and the
// time-since-damage clock driving shield regeneration.
type Health struct {
	*Block

	cfg  HealthConfig
	sink EventSink

	current      float64
	shield       float64
	lives        int
	invulnerable bool
	sinceDamage  float64
	respawnTimer float64
	state        LifeState
}

// NewHealth creates the health category. A nil config falls back to
// defaults with a warning.
func NewHealth(cfg *HealthConfig, sink EventSink, warnf WarnFunc) *Health {
	if cfg == nil {
		warn(warnf, "stats: missing health config, using defaults")
		def := DefaultHealthConfig()
		cfg = &def
	}

	h := &Health{
		Block: NewBlock(map[string]float64{
			StatMaxHealth:        cfg.MaxHealth,
			StatMaxShield:        cfg.MaxShield,
			StatShieldRegenRate:  cfg.ShieldRegenRate,
			StatShieldRegenDelay: cfg.ShieldRegenDelay,
		}),
		cfg:          *cfg,
		sink:         sink,
		lives:        cfg.StartingLives,
		invulnerable: cfg.StartInvulnerable,
		state:        Alive,
	}
	h.current = h.MaxHealth()
	h.shield = h.MaxShield()
	return h
}

// MaxHealth returns the effective maximum health.
func (h *Health) MaxHealth() float64 {
	return h.Value(StatMaxHealth)
}

// MaxShield returns the effective maximum shield.
func (h *Health) MaxShield() float64 {
	return h.Value(StatMaxShield)
}

// Current returns current health points.
func (h *Health) Current() float64 {
	return h.current
}

// Shield returns current shield points.
func (h *Health) Shield() float64 {
	return h.shield
}

// Lives returns the remaining lives.
func (h *Health) Lives() int {
	return h.lives
}

// State returns the lifecycle state.
func (h *Health) State() LifeState {
	return h.state
}

// Invulnerable reports whether damage is currently ignored.
func (h *Health) Invulnerable() bool {
	return h.invulnerable
}

// SetInvulnerable toggles invulnerability.
func (h *Health) SetInvulnerable(v bool) {
	h.invulnerable = v
}

// RespawnIn returns the seconds left on the respawn countdown, or 0
// when not dead.
func (h *Health) RespawnIn() float64 {
	if h.state != Dead {
		return 0
	}
	return h.respawnTimer
}

// TimeSinceDamage returns seconds elapsed since the last damage event.
func (h *Health) TimeSinceDamage() float64 {
	return h.sinceDamage
}

// TakeDamage applies incoming damage. Shield absorbs first; any
// remainder hits health, clamped at zero. A no-op while invulnerable
// or not alive. The damage clock resets unconditionally on every hit,
// including zero-absorption ones.
func (h *Health) TakeDamage(amount float64) {
	if h.invulnerable || h.state != Alive {
		return
	}

	h.sinceDamage = 0

	shieldDamage := amount
	if shieldDamage > h.shield {
		shieldDamage = h.shield
	}
	if shieldDamage > 0 {
		h.shield -= shieldDamage
		emit(h.sink, core.Event{Kind: core.EventShieldHit, Value: shieldDamage})
		if h.shield <= 0 {
			h.shield = 0
			emit(h.sink, core.Event{Kind: core.EventShieldBroken})
		}
	}

	remainder := amount - shieldDamage
	if remainder > 0 {
		h.current -= remainder
		if h.current < 0 {
			h.current = 0
		}
	}
	emit(h.sink, core.Event{Kind: core.EventDamageTaken, Value: amount})

	if h.current <= 0 {
		h.die()
	}
}

// Heal restores health up to the effective maximum. A no-op when not
// alive or already at full health.
func (h *Health) Heal(amount float64) {
	if h.state != Alive {
		return
	}
	max := h.MaxHealth()
	if h.current >= max {
		return
	}
	h.current += amount
	if h.current > max {
		h.current = max
	}
	emit(h.sink, core.Event{Kind: core.EventHealed, Value: amount})
}

// RestoreFull resets health and shield to their effective maximums.
func (h *Health) RestoreFull() {
	h.current = h.MaxHealth()
	restored := h.shield < h.MaxShield()
	h.shield = h.MaxShield()
	if restored {
		emit(h.sink, core.Event{Kind: core.EventShieldRestored})
	}
}

// die handles the Alive -> Dead (or GameOver) transition.
func (h *Health) die() {
	h.lives--
	emit(h.sink, core.Event{Kind: core.EventLivesChanged, Value: float64(h.lives)})
	emit(h.sink, core.Event{Kind: core.EventDeath})

	if h.lives <= 0 {
		h.state = GameOver
		return
	}
	h.state = Dead
	h.respawnTimer = h.cfg.RespawnDelay
}

// Advance drives time-based behavior: the respawn countdown while dead
// and shield regeneration while alive.
func (h *Health) Advance(dt float64) {
	switch h.state {
	case Dead:
		h.respawnTimer -= dt
		if h.respawnTimer <= 0 {
			h.respawn()
		}
	case Alive:
		h.sinceDamage += dt
		h.regenShield(dt)
	}
}

// regenShield restores shield once the regen delay has elapsed since
// the last damage event.
func (h *Health) regenShield(dt float64) {
	max := h.MaxShield()
	if h.shield >= max {
		return
	}
	// Regen starts strictly after the delay; the tick that lands
	// exactly on it still counts as waiting.
	if h.sinceDamage <= h.Value(StatShieldRegenDelay) {
		return
	}
	h.shield += h.Value(StatShieldRegenRate) * dt
	if h.shield >= max {
		h.shield = max
		emit(h.sink, core.Event{Kind: core.EventShieldRestored})
	}
}

// respawn handles Dead -> Alive: full restore and a cleared damage clock.
func (h *Health) respawn() {
	h.state = Alive
	h.current = h.MaxHealth()
	h.shield = h.MaxShield()
	h.sinceDamage = 0
	h.invulnerable = h.cfg.StartInvulnerable
	emit(h.sink, core.Event{Kind: core.EventRespawn})
}
