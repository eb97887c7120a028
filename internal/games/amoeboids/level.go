package amoeboids

import (
	"math"

	"github.com/vovakirdan/amoeboids/internal/core"
)

// zone is a candidate spawn rectangle.
type zone struct {
	minX, maxX float64
	minY, maxY float64
}

func (z zone) collapsed() bool {
	return z.minX >= z.maxX || z.minY >= z.maxY
}

// spawnZones returns the parts of bounds lying left of, right of, above and
// below a square buffer of half-size safe around center. Zones the buffer
// swallows are dropped.
func spawnZones(bounds core.Bounds, center core.Vec2, safe float64) []zone {
	// left, right, above, below
	candidates := [4]zone{
		{minX: bounds.Left, maxX: center.X - safe, minY: bounds.Bottom, maxY: bounds.Top},
		{minX: center.X + safe, maxX: bounds.Right, minY: bounds.Bottom, maxY: bounds.Top},
		{minX: bounds.Left, maxX: bounds.Right, minY: center.Y + safe, maxY: bounds.Top},
		{minX: bounds.Left, maxX: bounds.Right, minY: bounds.Bottom, maxY: center.Y - safe},
	}

	zones := make([]zone, 0, len(candidates))
	for _, z := range candidates {
		if !z.collapsed() {
			zones = append(zones, z)
		}
	}
	return zones
}

// LevelDirector places big amoebas at the start of each level.
type LevelDirector struct {
	pop        *Population
	rng        *SimpleRNG
	bounds     core.Bounds
	tiers      TierTable
	speedRange float64

	spawnFactor  float64
	safeDistance float64
	speedFactor  float64

	level int
}

// LevelConfig holds the director's tunables.
type LevelConfig struct {
	SpawnFactor  float64 // Amoebas placed on level L = round(L * SpawnFactor)
	SafeDistance float64 // Spawn exclusion buffer around the ship
	SpeedRange   float64 // Velocity components drawn from [-SpeedRange, SpeedRange]
}

// NewLevelDirector creates a director at level 1.
func NewLevelDirector(pop *Population, rng *SimpleRNG, bounds core.Bounds, tiers TierTable, cfg LevelConfig) *LevelDirector {
	return &LevelDirector{
		pop:          pop,
		rng:          rng,
		bounds:       bounds,
		tiers:        tiers,
		speedRange:   cfg.SpeedRange,
		spawnFactor:  cfg.SpawnFactor,
		safeDistance: cfg.SafeDistance,
		speedFactor:  1,
		level:        1,
	}
}

// Level returns the current level number.
func (d *LevelDirector) Level() int {
	return d.level
}

// Reset returns to level 1 without placing anything.
func (d *LevelDirector) Reset() {
	d.level = 1
}

// Tune sets the spawn buffer and the big-amoeba speed factor used by the
// next placements.
func (d *LevelDirector) Tune(safeDistance, speedFactor float64) {
	d.safeDistance = safeDistance
	d.speedFactor = speedFactor
}

// SpawnCount returns how many amoebas a level starts with.
// Halves round away from zero.
func (d *LevelDirector) SpawnCount(level int) int {
	return int(math.Round(float64(level) * d.spawnFactor))
}

// AdvanceLevel moves to the next level and places its wave.
// It returns the number of amoebas actually placed.
func (d *LevelDirector) AdvanceLevel() int {
	d.level++
	return d.PlaceAmoebas(d.SpawnCount(d.level))
}

// PlaceAmoebas spawns up to count big amoebas away from the ship.
// A spawn with no usable zone is skipped, so fewer may be placed.
func (d *LevelDirector) PlaceAmoebas(count int) int {
	big := d.tiers.Big()
	spec, ok := d.tiers.Spec(big)
	if !ok {
		return 0
	}
	scale := spec.VelocityMultiplier * d.speedFactor

	placed := 0
	for range count {
		zones := spawnZones(d.bounds, d.pop.Ship().Pos, d.safeDistance)
		if len(zones) == 0 {
			continue
		}
		z := zones[d.rng.Intn(len(zones))]
		pos := core.V(d.rng.Range(z.minX, z.maxX), d.rng.Range(z.minY, z.maxY))
		vel := core.V(
			d.rng.Range(-d.speedRange, d.speedRange)*scale,
			d.rng.Range(-d.speedRange, d.speedRange)*scale,
		)
		if _, ok := d.pop.SpawnAmoeba(big, pos, vel); ok {
			placed++
		}
	}
	return placed
}
