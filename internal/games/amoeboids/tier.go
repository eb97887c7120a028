package amoeboids

import (
	"github.com/vovakirdan/amoeboids/internal/config"
)

// Tier is an amoeba size class. Larger numbers are bigger amoebas.
type Tier int

const (
	TierSmall  Tier = 1
	TierMedium Tier = 2
	TierBig    Tier = 3
)

// String returns the tier name.
func (t Tier) String() string {
	switch t {
	case TierSmall:
		return "small"
	case TierMedium:
		return "medium"
	case TierBig:
		return "big"
	default:
		return "unknown"
	}
}

// TierSpec is one row of the tier table.
type TierSpec struct {
	Radius             float64
	VelocityMultiplier float64
	Award              int
	Child              Tier // Tier of the children; meaningless when Children is 0
	Children           int
}

// TierTable maps each tier to its radius, speed scaling, award and split rule.
type TierTable struct {
	specs map[Tier]TierSpec
	big   Tier
}

// NewTierTable builds the table from validated configuration.
func NewTierTable(cfg config.AmoebaConfig) TierTable {
	t := TierTable{
		specs: make(map[Tier]TierSpec, len(cfg.Tiers)),
		big:   Tier(cfg.BigTier()),
	}
	for _, row := range cfg.Tiers {
		tier := Tier(row.Tier)
		t.specs[tier] = TierSpec{
			Radius:             row.Radius,
			VelocityMultiplier: row.VelocityMultiplier,
			Award:              row.Award,
			Child:              tier - 1,
			Children:           row.Children,
		}
	}
	return t
}

// Spec returns the row for tier.
func (t TierTable) Spec(tier Tier) (TierSpec, bool) {
	s, ok := t.specs[tier]
	return s, ok
}

// Big returns the tier placed at the start of each level.
func (t TierTable) Big() Tier {
	return t.big
}
