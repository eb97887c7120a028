package amoeboids

import (
	"time"

	"github.com/vovakirdan/amoeboids/internal/core"
)

// entitySet owns entities by handle. Iteration follows insertion order so
// that seeded sessions replay identically.
type entitySet[T any] struct {
	items map[EntityID]*T
	order []EntityID
}

func newEntitySet[T any]() entitySet[T] {
	return entitySet[T]{items: make(map[EntityID]*T)}
}

func (s *entitySet[T]) add(id EntityID, v *T) {
	if _, ok := s.items[id]; ok {
		return
	}
	s.items[id] = v
	s.order = append(s.order, id)
}

func (s *entitySet[T]) get(id EntityID) (*T, bool) {
	v, ok := s.items[id]
	return v, ok
}

func (s *entitySet[T]) remove(id EntityID) (*T, bool) {
	v, ok := s.items[id]
	if !ok {
		return nil, false
	}
	delete(s.items, id)
	for i, o := range s.order {
		if o == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return v, true
}

func (s *entitySet[T]) len() int {
	return len(s.order)
}

// ids returns a copy of the handles, safe to hold while the set changes.
func (s *entitySet[T]) ids() []EntityID {
	out := make([]EntityID, len(s.order))
	copy(out, s.order)
	return out
}

func (s *entitySet[T]) values() []*T {
	out := make([]*T, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.items[id])
	}
	return out
}

// PopulationConfig fixes the physical constants of a population.
type PopulationConfig struct {
	Tiers        TierTable
	ShipRadius   float64
	BulletRadius float64
	Refire       time.Duration // Minimum gap between successful bullet spawns
	MaxAge       time.Duration // Bullets older than this expire
}

// Population owns the ship, the amoeba and bullet sets and the bullet
// detector registry. Every entity is attached to the scene when it enters
// and detached when it leaves.
type Population struct {
	cfg   PopulationConfig
	scene Scene

	ship      Ship
	amoebas   entitySet[Amoeba]
	bullets   entitySet[Bullet]
	detectors map[EntityID]Detector // keyed by bullet

	nextID   EntityID
	lastFire time.Time
	hasFired bool
}

// NewPopulation creates an empty population and attaches the ship.
// A nil scene discards attach/detach notifications.
func NewPopulation(cfg PopulationConfig, scene Scene) *Population {
	if scene == nil {
		scene = scenes(nil)
	}
	p := &Population{
		cfg:       cfg,
		scene:     scene,
		ship:      Ship{Radius: cfg.ShipRadius},
		amoebas:   newEntitySet[Amoeba](),
		bullets:   newEntitySet[Bullet](),
		detectors: make(map[EntityID]Detector),
		nextID:    ShipID,
	}
	p.scene.Attach(ShipID, KindShip)
	return p
}

func (p *Population) allocID() EntityID {
	p.nextID++
	return p.nextID
}

// Ship returns the session's ship.
func (p *Population) Ship() *Ship {
	return &p.ship
}

// ShipDetector returns the detector testing the ship against amoebas.
func (p *Population) ShipDetector() Detector {
	return NewDetector(ShipID)
}

// SpawnAmoeba adds an amoeba of the given tier. Unknown tiers are ignored.
func (p *Population) SpawnAmoeba(tier Tier, pos, vel core.Vec2) (EntityID, bool) {
	spec, ok := p.cfg.Tiers.Spec(tier)
	if !ok {
		return 0, false
	}
	id := p.allocID()
	p.amoebas.add(id, &Amoeba{
		ID:     id,
		Tier:   tier,
		Pos:    pos,
		Vel:    vel,
		Radius: spec.Radius,
	})
	p.scene.Attach(id, KindAmoeba)
	return id, true
}

// SpawnBullet fires a bullet from pos along heading, inheriting shipVel.
// Calls within the refire interval of the previous successful spawn are
// dropped.
func (p *Population) SpawnBullet(now time.Time, pos core.Vec2, speed, heading float64, shipVel core.Vec2) (EntityID, bool) {
	if p.hasFired && now.Sub(p.lastFire) < p.cfg.Refire {
		return 0, false
	}
	p.hasFired = true
	p.lastFire = now

	id := p.allocID()
	p.bullets.add(id, &Bullet{
		ID:      id,
		Pos:     pos,
		Vel:     core.FromHeading(heading, speed).Add(shipVel),
		Spawned: now,
		Radius:  p.cfg.BulletRadius,
	})
	p.detectors[id] = NewDetector(id)
	p.scene.Attach(id, KindBullet)
	return id, true
}

// AgeAndExpireBullets removes every bullet older than the maximum age,
// together with its detector, and returns their handles.
func (p *Population) AgeAndExpireBullets(now time.Time) []EntityID {
	var expired []EntityID
	for _, b := range p.bullets.values() {
		if b.Age(now) > p.cfg.MaxAge {
			expired = append(expired, b.ID)
		}
	}
	for _, id := range expired {
		p.DestroyBullet(id)
	}
	return expired
}

// DestroyAmoeba removes an amoeba and returns it as it was last seen.
// Removing an amoeba that is not live is a no-op reporting false.
func (p *Population) DestroyAmoeba(id EntityID) (Amoeba, bool) {
	a, ok := p.amoebas.remove(id)
	if !ok {
		return Amoeba{}, false
	}
	p.scene.Detach(id)
	return *a, true
}

// DestroyBullet removes a bullet and its detector in one step.
// Removing a bullet that is not live is a no-op reporting false.
func (p *Population) DestroyBullet(id EntityID) bool {
	if _, ok := p.bullets.remove(id); !ok {
		return false
	}
	delete(p.detectors, id)
	p.scene.Detach(id)
	return true
}

// Clear removes every amoeba and bullet and forgets the refire window.
// The ship stays attached.
func (p *Population) Clear() {
	for _, id := range p.amoebas.ids() {
		p.DestroyAmoeba(id)
	}
	for _, id := range p.bullets.ids() {
		p.DestroyBullet(id)
	}
	p.hasFired = false
	p.lastFire = time.Time{}
}

// IntegrateBullets moves every bullet one frame.
func (p *Population) IntegrateBullets() {
	for _, b := range p.bullets.values() {
		b.Integrate()
	}
}

// IntegrateAmoebas moves every amoeba one frame with wraparound.
func (p *Population) IntegrateAmoebas(bounds core.Bounds) {
	for _, a := range p.amoebas.values() {
		a.Integrate(bounds)
	}
}

// Body resolves any live handle to its collision circle.
func (p *Population) Body(id EntityID) (Body, bool) {
	if id == ShipID {
		return p.ship.Body(), true
	}
	if a, ok := p.amoebas.get(id); ok {
		return a.Body(), true
	}
	if b, ok := p.bullets.get(id); ok {
		return b.Body(), true
	}
	return Body{}, false
}

// AmoebaBodies returns a snapshot of the live amoebas' collision circles.
// Later spawns and removals do not affect the returned slice.
func (p *Population) AmoebaBodies() []Body {
	out := make([]Body, 0, p.amoebas.len())
	for _, a := range p.amoebas.values() {
		out = append(out, a.Body())
	}
	return out
}

// BulletDetectors returns the live bullet detectors in bullet order.
func (p *Population) BulletDetectors() []Detector {
	out := make([]Detector, 0, len(p.detectors))
	for _, id := range p.bullets.order {
		if d, ok := p.detectors[id]; ok {
			out = append(out, d)
		}
	}
	return out
}

// Amoeba returns a live amoeba by handle.
func (p *Population) Amoeba(id EntityID) (*Amoeba, bool) {
	return p.amoebas.get(id)
}

// Bullet returns a live bullet by handle.
func (p *Population) Bullet(id EntityID) (*Bullet, bool) {
	return p.bullets.get(id)
}

// Amoebas returns the live amoebas in spawn order.
func (p *Population) Amoebas() []*Amoeba {
	return p.amoebas.values()
}

// Bullets returns the live bullets in spawn order.
func (p *Population) Bullets() []*Bullet {
	return p.bullets.values()
}

// AmoebaCount returns the number of live amoebas.
func (p *Population) AmoebaCount() int {
	return p.amoebas.len()
}

// BulletCount returns the number of live bullets.
func (p *Population) BulletCount() int {
	return p.bullets.len()
}

// DetectorCount returns the number of registered bullet detectors.
func (p *Population) DetectorCount() int {
	return len(p.detectors)
}
