package weapon

import (
	"fmt"

	"github.com/stardrift/stardrift/internal/core"
)

// Strategy turns one trigger pull into bullet spawn requests.
//
// Fire returns the requests emitted at the instant of the pull plus,
// for time-sequenced strategies (burst), a Sequence the caller must
// drive with Advance(dt). Instant strategies return a nil sequence.
type Strategy interface {
	Name() string

	// CooldownMultiplier scales the time between shots:
	// timeBetweenShots = multiplier / fireRate.
	CooldownMultiplier() float64

	Fire(origin, aim core.Vec2, baseDamage float64) ([]SpawnRequest, *Sequence)
}

// Single fires one bullet straight along the aim direction at full
// base damage.
type Single struct{}

// NewSingle creates the single-shot strategy.
func NewSingle() Single {
	return Single{}
}

func (Single) Name() string { return "single" }

func (Single) CooldownMultiplier() float64 { return 1.0 }

// Fire emits exactly one request along the normalized aim.
func (Single) Fire(origin, aim core.Vec2, baseDamage float64) ([]SpawnRequest, *Sequence) {
	return []SpawnRequest{{
		Origin:    origin,
		Direction: aim.Normalize(),
		Damage:    baseDamage,
	}}, nil
}

// Triple fires three bullets at once: center on the aim, one rotated
// +sideAngle degrees, one rotated -sideAngle degrees, all at full base
// damage.
type Triple struct {
	SideAngle float64 // Degrees off-center for the side bullets
	Cooldown  float64
}

// NewTriple creates the triple-shot strategy with defaults: 15 degree
// side bullets, 1.3x cooldown.
func NewTriple() Triple {
	return Triple{SideAngle: 15, Cooldown: 1.3}
}

func (t Triple) Name() string { return "triple" }

func (t Triple) CooldownMultiplier() float64 { return t.Cooldown }

// Fire emits center, left (+sideAngle, counter-clockwise), then right
// (-sideAngle).
func (t Triple) Fire(origin, aim core.Vec2, baseDamage float64) ([]SpawnRequest, *Sequence) {
	dir := aim.Normalize()
	return []SpawnRequest{
		{Origin: origin, Direction: dir, Damage: baseDamage},
		{Origin: origin, Direction: dir.Rotate(t.SideAngle), Damage: baseDamage},
		{Origin: origin, Direction: dir.Rotate(-t.SideAngle), Damage: baseDamage},
	}, nil
}

// Spread fans bullets evenly across a total angle centered on the aim
// direction, each at a reduced damage fraction.
type Spread struct {
	BulletCount      int
	SpreadAngle      float64 // Total fan width in degrees
	DamageMultiplier float64
	Cooldown         float64
}

// NewSpread creates a spread strategy. BulletCount must be at least 2:
// the angle step divides by bulletCount-1, so smaller counts are
// rejected here rather than miscomputed later.
func NewSpread(bulletCount int, spreadAngle, damageMultiplier, cooldown float64) (Spread, error) {
	if bulletCount < 2 {
		return Spread{}, fmt.Errorf("weapon: spread needs at least 2 bullets, got %d", bulletCount)
	}
	return Spread{
		BulletCount:      bulletCount,
		SpreadAngle:      spreadAngle,
		DamageMultiplier: damageMultiplier,
		Cooldown:         cooldown,
	}, nil
}

// DefaultSpread returns the spread strategy with defaults: 5 bullets
// over 30 degrees at 0.7x damage, 1.8x cooldown.
func DefaultSpread() Spread {
	s, _ := NewSpread(5, 30, 0.7, 1.8)
	return s
}

func (s Spread) Name() string { return "spread" }

func (s Spread) CooldownMultiplier() float64 { return s.Cooldown }

// Fire emits BulletCount requests from baseAngle - spread/2 upward in
// equal steps of spread/(count-1).
func (s Spread) Fire(origin, aim core.Vec2, baseDamage float64) ([]SpawnRequest, *Sequence) {
	baseAngle := aim.Normalize().AngleDegrees()
	step := s.SpreadAngle / float64(s.BulletCount-1)
	start := baseAngle - s.SpreadAngle/2
	damage := baseDamage * s.DamageMultiplier

	reqs := make([]SpawnRequest, 0, s.BulletCount)
	for i := 0; i < s.BulletCount; i++ {
		reqs = append(reqs, SpawnRequest{
			Origin:    origin,
			Direction: core.FromDegrees(start + step*float64(i)),
			Damage:    damage,
		})
	}
	return reqs, nil
}

// Circle fires bullets evenly spaced over the full 360 degrees,
// starting at absolute angle 0 regardless of the aim direction.
type Circle struct {
	BulletCount      int
	DamageMultiplier float64
	Cooldown         float64
}

// NewCircle creates a circle strategy. BulletCount must be positive.
func NewCircle(bulletCount int, damageMultiplier, cooldown float64) (Circle, error) {
	if bulletCount < 1 {
		return Circle{}, fmt.Errorf("weapon: circle needs at least 1 bullet, got %d", bulletCount)
	}
	return Circle{
		BulletCount:      bulletCount,
		DamageMultiplier: damageMultiplier,
		Cooldown:         cooldown,
	}, nil
}

// DefaultCircle returns the circle strategy with defaults: 8 bullets
// at 0.5x damage, 2.5x cooldown.
func DefaultCircle() Circle {
	c, _ := NewCircle(8, 0.5, 2.5)
	return c
}

func (c Circle) Name() string { return "circle" }

func (c Circle) CooldownMultiplier() float64 { return c.Cooldown }

// Fire emits requests at 0, step, 2*step, ... in absolute degrees.
// The aim direction is ignored by design.
func (c Circle) Fire(origin, _ core.Vec2, baseDamage float64) ([]SpawnRequest, *Sequence) {
	step := 360.0 / float64(c.BulletCount)
	damage := baseDamage * c.DamageMultiplier

	reqs := make([]SpawnRequest, 0, c.BulletCount)
	for i := 0; i < c.BulletCount; i++ {
		reqs = append(reqs, SpawnRequest{
			Origin:    origin,
			Direction: core.FromDegrees(step * float64(i)),
			Damage:    damage,
		})
	}
	return reqs, nil
}
