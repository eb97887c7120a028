package amoeboids

import (
	"time"

	"github.com/vovakirdan/amoeboids/internal/core"
)

// EntityID is a stable handle to an entity owned by a Population.
// IDs are never reused within a session.
type EntityID uint32

// ShipID is the handle of the session's single ship.
const ShipID EntityID = 1

// Kind tells a scene what an attached entity is.
type Kind uint8

const (
	KindShip Kind = iota
	KindAmoeba
	KindBullet
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindShip:
		return "ship"
	case KindAmoeba:
		return "amoeba"
	case KindBullet:
		return "bullet"
	default:
		return "unknown"
	}
}

// Body is the collision view of an entity: a circle with an owner.
type Body struct {
	ID     EntityID
	Pos    core.Vec2
	Radius float64
}

// Ship is the player's craft.
type Ship struct {
	Pos     core.Vec2
	Vel     core.Vec2
	Heading float64 // Radians; 0 points along +Y
	Radius  float64
}

// Turn rotates the ship. Positive delta turns clockwise.
func (s *Ship) Turn(delta float64) {
	s.Heading += delta
}

// Accelerate adds delta to the velocity along the current heading.
// Negative delta decelerates.
func (s *Ship) Accelerate(delta float64) {
	s.Vel = s.Vel.Add(core.FromHeading(s.Heading, delta))
}

// Integrate moves the ship one frame and wraps it into bounds.
func (s *Ship) Integrate(bounds core.Bounds) {
	s.Pos = bounds.Wrap(s.Pos.Add(s.Vel))
}

// Reset puts the ship back at the origin, at rest, facing +Y.
func (s *Ship) Reset() {
	s.Pos = core.Vec2{}
	s.Vel = core.Vec2{}
	s.Heading = 0
}

// Body returns the ship's collision circle.
func (s *Ship) Body() Body {
	return Body{ID: ShipID, Pos: s.Pos, Radius: s.Radius}
}

// Amoeba is an enemy organism. Its radius comes from its tier.
type Amoeba struct {
	ID     EntityID
	Tier   Tier
	Pos    core.Vec2
	Vel    core.Vec2
	Radius float64
}

// Integrate moves the amoeba one frame and wraps it into bounds.
func (a *Amoeba) Integrate(bounds core.Bounds) {
	a.Pos = bounds.Wrap(a.Pos.Add(a.Vel))
}

// Body returns the amoeba's collision circle.
func (a *Amoeba) Body() Body {
	return Body{ID: a.ID, Pos: a.Pos, Radius: a.Radius}
}

// Bullet is a projectile. Bullets never wrap; they expire by age.
type Bullet struct {
	ID      EntityID
	Pos     core.Vec2
	Vel     core.Vec2
	Spawned time.Time
	Radius  float64
}

// Integrate moves the bullet one frame.
func (b *Bullet) Integrate() {
	b.Pos = b.Pos.Add(b.Vel)
}

// Age returns how long the bullet has existed at now.
func (b *Bullet) Age(now time.Time) time.Duration {
	return now.Sub(b.Spawned)
}

// Body returns the bullet's collision circle.
func (b *Bullet) Body() Body {
	return Body{ID: b.ID, Pos: b.Pos, Radius: b.Radius}
}
