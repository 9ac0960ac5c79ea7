package weapon

import (
	"fmt"

	"github.com/stardrift/stardrift/internal/core"
)

// Sequence is the in-flight remainder of a burst: bullets that fire on
// a timer after the trigger pull. The owner drives it with Advance(dt)
// each tick and spawns whatever comes back. A dead owner calls Cancel
// so no bullets fire posthumously.
type Sequence struct {
	origin    core.Vec2
	direction core.Vec2
	damage    float64

	remaining int
	delay     float64
	untilNext float64
	cancelled bool
}

// Advance moves the sequence forward by dt seconds and returns the
// requests that became due. Multiple bullets can become due in one
// call when dt spans several delays.
func (s *Sequence) Advance(dt float64) []SpawnRequest {
	if s == nil || s.cancelled || s.remaining <= 0 {
		return nil
	}

	var due []SpawnRequest
	s.untilNext -= dt
	for s.untilNext <= 0 && s.remaining > 0 {
		due = append(due, SpawnRequest{
			Origin:    s.origin,
			Direction: s.direction,
			Damage:    s.damage,
		})
		s.remaining--
		s.untilNext += s.delay
	}
	return due
}

// Done reports whether the sequence has no bullets left to fire.
func (s *Sequence) Done() bool {
	return s == nil || s.cancelled || s.remaining <= 0
}

// Cancel discards the unfired remainder.
func (s *Sequence) Cancel() {
	if s != nil {
		s.cancelled = true
	}
}

// Burst fires a rapid train of bullets along the aim direction: the
// first immediately, the rest spaced by ShotDelay seconds.
type Burst struct {
	BulletCount int
	ShotDelay   float64 // Seconds between consecutive bullets
	Cooldown    float64
}

// NewBurst creates a burst strategy. BulletCount must be positive.
func NewBurst(bulletCount int, shotDelay, cooldown float64) (Burst, error) {
	if bulletCount < 1 {
		return Burst{}, fmt.Errorf("weapon: burst needs at least 1 bullet, got %d", bulletCount)
	}
	return Burst{
		BulletCount: bulletCount,
		ShotDelay:   shotDelay,
		Cooldown:    cooldown,
	}, nil
}

// DefaultBurst returns the burst strategy with defaults: 3 bullets
// 0.1s apart, 1.5x cooldown.
func DefaultBurst() Burst {
	b, _ := NewBurst(3, 0.1, 1.5)
	return b
}

func (b Burst) Name() string { return "burst" }

func (b Burst) CooldownMultiplier() float64 { return b.Cooldown }

// Fire emits the first bullet immediately and returns a Sequence for
// the remaining BulletCount-1. All bullets share the aim captured at
// the trigger pull.
func (b Burst) Fire(origin, aim core.Vec2, baseDamage float64) ([]SpawnRequest, *Sequence) {
	dir := aim.Normalize()
	first := []SpawnRequest{{Origin: origin, Direction: dir, Damage: baseDamage}}

	if b.BulletCount <= 1 {
		return first, nil
	}
	return first, &Sequence{
		origin:    origin,
		direction: dir,
		damage:    baseDamage,
		remaining: b.BulletCount - 1,
		delay:     b.ShotDelay,
		untilNext: b.ShotDelay,
	}
}
