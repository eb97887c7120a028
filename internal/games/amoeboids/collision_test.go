package amoeboids

import (
	"testing"

	"github.com/vovakirdan/amoeboids/internal/core"
)

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Body
		expected bool
	}{
		{"touching is not overlapping", Body{Pos: core.V(0, 0), Radius: 2}, Body{Pos: core.V(3, 4), Radius: 3}, false},
		{"just inside", Body{Pos: core.V(0, 0), Radius: 2}, Body{Pos: core.V(3, 4), Radius: 3.0001}, true},
		{"far apart", Body{Pos: core.V(-100, 0), Radius: 40}, Body{Pos: core.V(100, 0), Radius: 40}, false},
		{"same center", Body{Pos: core.V(7, 7), Radius: 1}, Body{Pos: core.V(7, 7), Radius: 1}, true},
		{"contained", Body{Pos: core.V(0, 0), Radius: 40}, Body{Pos: core.V(5, 5), Radius: 2}, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Overlaps(tc.a, tc.b); got != tc.expected {
				t.Errorf("Overlaps = %v, expected %v", got, tc.expected)
			}
			if got := Overlaps(tc.b, tc.a); got != tc.expected {
				t.Errorf("Overlaps (swapped) = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestEvaluateKeepsTargetOrder(t *testing.T) {
	src := Body{ID: 99, Pos: core.V(0, 0), Radius: 5}
	targets := []Body{
		{ID: 4, Pos: core.V(3, 0), Radius: 1},
		{ID: 7, Pos: core.V(50, 0), Radius: 1},
		{ID: 2, Pos: core.V(0, -4), Radius: 1},
	}

	hits := Evaluate(src, targets)
	if len(hits) != 2 || hits[0] != 4 || hits[1] != 2 {
		t.Errorf("Evaluate = %v, expected [4 2]", hits)
	}

	if hits := Evaluate(src, nil); len(hits) != 0 {
		t.Errorf("Evaluate with no targets = %v, expected none", hits)
	}
}

func TestDetectorResolvesSourceEachTime(t *testing.T) {
	clock := newFakeClock()
	pop := testPopulation(nil)
	pop.SpawnAmoeba(TierBig, core.V(100, 100), core.Vec2{})

	id, ok := pop.SpawnBullet(clock.Now(), core.V(100, 100), 0, 0, core.Vec2{})
	if !ok {
		t.Fatal("first bullet should spawn")
	}
	d := NewDetector(id)

	if hits := d.Evaluate(pop, pop.AmoebaBodies()); len(hits) != 1 {
		t.Fatalf("detector hits = %v, expected one", hits)
	}

	// Moving the bullet is seen on the next evaluation
	b, _ := pop.Bullet(id)
	b.Pos = core.V(-300, -300)
	if hits := d.Evaluate(pop, pop.AmoebaBodies()); len(hits) != 0 {
		t.Errorf("moved bullet hits = %v, expected none", hits)
	}

	// A removed source hits nothing
	b.Pos = core.V(100, 100)
	pop.DestroyBullet(id)
	if hits := d.Evaluate(pop, pop.AmoebaBodies()); hits != nil {
		t.Errorf("removed source hits = %v, expected nil", hits)
	}
}

func TestShipDetector(t *testing.T) {
	pop := testPopulation(nil)
	pop.SpawnAmoeba(TierSmall, core.V(19.9, 0), core.Vec2{})
	pop.SpawnAmoeba(TierSmall, core.V(-20, 0), core.Vec2{})

	hits := pop.ShipDetector().Evaluate(pop, pop.AmoebaBodies())
	if len(hits) != 1 {
		t.Errorf("ship hits = %v, expected exactly the amoeba closer than 20", hits)
	}
}
