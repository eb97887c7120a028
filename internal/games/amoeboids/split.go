package amoeboids

import "github.com/vovakirdan/amoeboids/internal/core"

// ChildSpec describes one amoeba spawned by a split. Children appear at the
// parent's last position.
type ChildSpec struct {
	Tier     Tier
	Velocity core.Vec2
}

// SplitPolicy decides what a destroyed amoeba leaves behind and what it is
// worth.
type SplitPolicy struct {
	tiers      TierTable
	speedRange float64
	rng        *SimpleRNG
}

// NewSplitPolicy creates a policy drawing child velocities from rng.
// Each child velocity component is uniform in [-speedRange, speedRange]
// scaled by the child tier's velocity multiplier.
func NewSplitPolicy(tiers TierTable, speedRange float64, rng *SimpleRNG) SplitPolicy {
	return SplitPolicy{tiers: tiers, speedRange: speedRange, rng: rng}
}

// OnAmoebaDestroyed returns the children and score award for an amoeba of
// the given tier. Unknown tiers yield nothing.
func (p SplitPolicy) OnAmoebaDestroyed(tier Tier) ([]ChildSpec, int) {
	spec, ok := p.tiers.Spec(tier)
	if !ok {
		return nil, 0
	}
	if spec.Children == 0 {
		return nil, spec.Award
	}

	child, ok := p.tiers.Spec(spec.Child)
	if !ok {
		return nil, spec.Award
	}

	children := make([]ChildSpec, spec.Children)
	for i := range children {
		children[i] = ChildSpec{
			Tier:     spec.Child,
			Velocity: p.randomVelocity(child.VelocityMultiplier),
		}
	}
	return children, spec.Award
}

// randomVelocity draws both components independently.
func (p SplitPolicy) randomVelocity(multiplier float64) core.Vec2 {
	return core.V(
		p.rng.Range(-p.speedRange, p.speedRange)*multiplier,
		p.rng.Range(-p.speedRange, p.speedRange)*multiplier,
	)
}
