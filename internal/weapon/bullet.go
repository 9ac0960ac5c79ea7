// Package weapon implements shooting strategies: given an origin, an
// aim direction, and a base damage, each strategy produces the bullet
// spawn requests for one trigger pull. Strategies are pure geometry;
// an external projectile collaborator owns the bullets afterwards.
package weapon

import "github.com/stardrift/stardrift/internal/core"

// SpawnRequest describes one bullet to be spawned. The direction is
// always a unit vector; the consumer decides speed, lifetime, and
// collision.
type SpawnRequest struct {
	Origin    core.Vec2
	Direction core.Vec2
	Damage    float64
}
