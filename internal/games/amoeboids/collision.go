package amoeboids

import "github.com/vovakirdan/amoeboids/internal/core"

// Overlaps reports whether two bodies collide: the distance between their
// centers is strictly less than the sum of their radii.
func Overlaps(a, b Body) bool {
	return core.Dist(a.Pos, b.Pos) < a.Radius+b.Radius
}

// Evaluate returns the IDs of targets overlapping source, in target order.
// It reads only the slice it is given.
func Evaluate(source Body, targets []Body) []EntityID {
	var hits []EntityID
	for _, t := range targets {
		if Overlaps(source, t) {
			hits = append(hits, t.ID)
		}
	}
	return hits
}

// Detector pairs one source entity with the amoeba population.
// It holds only the source handle and resolves it on every evaluation, so a
// detector never outlives the entity it describes.
type Detector struct {
	source EntityID
}

// NewDetector creates a detector for source.
func NewDetector(source EntityID) Detector {
	return Detector{source: source}
}

// Source returns the handle the detector tests.
func (d Detector) Source() EntityID {
	return d.source
}

// Evaluate tests the source against targets, normally a snapshot taken with
// Population.AmoebaBodies. A source that no longer resolves hits nothing.
func (d Detector) Evaluate(pop *Population, targets []Body) []EntityID {
	src, ok := pop.Body(d.source)
	if !ok {
		return nil
	}
	return Evaluate(src, targets)
}
