// Package config provides YAML-based game configuration loading and
// difficulty management for Amoeboids.
package config

import (
	"errors"
	"fmt"
)

// AmoeboidsConfig contains all configuration for the Amoeboids game.
type AmoeboidsConfig struct {
	World      WorldConfig      `yaml:"world"`
	Ship       ShipConfig       `yaml:"ship"`
	Bullets    BulletConfig     `yaml:"bullets"`
	Amoebas    AmoebaConfig     `yaml:"amoebas"`
	Levels     LevelConfig      `yaml:"levels"`
	Input      InputConfig      `yaml:"input"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// WorldConfig defines the play plane. The plane is centered on the origin.
type WorldConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"` // 0 = derive from terminal aspect
	Stars  int     `yaml:"stars"`  // Background stars drawn per session
}

// ShipConfig defines ship handling.
type ShipConfig struct {
	Radius       float64 `yaml:"radius"`
	TurnRate     float64 `yaml:"turn_rate"`    // Radians per frame
	Acceleration float64 `yaml:"acceleration"` // Velocity added along heading per frame
	Deceleration float64 `yaml:"deceleration"` // Velocity removed along heading per frame
}

// BulletConfig defines bullet parameters.
type BulletConfig struct {
	Radius   float64 `yaml:"radius"`
	Speed    float64 `yaml:"speed"`
	RefireMS int     `yaml:"refire_ms"`
	MaxAgeMS int     `yaml:"max_age_ms"`
}

// AmoebaConfig defines the amoeba tier table.
type AmoebaConfig struct {
	SpeedRange float64      `yaml:"speed_range"` // Velocity components drawn from [-range, range]
	Tiers      []TierConfig `yaml:"tiers"`
}

// TierConfig is one row of the tier table.
// A tier with children splits into tier-1 amoebas.
type TierConfig struct {
	Tier               int     `yaml:"tier"`
	Name               string  `yaml:"name"`
	Radius             float64 `yaml:"radius"`
	VelocityMultiplier float64 `yaml:"velocity_multiplier"`
	Award              int     `yaml:"award"`
	Children           int     `yaml:"children"`
}

// LevelConfig defines level progression.
type LevelConfig struct {
	SpawnFactor  float64 `yaml:"spawn_factor"`  // Amoebas placed = round(level * spawn_factor)
	SafeDistance float64 `yaml:"safe_distance"` // Spawn exclusion buffer around the ship
}

// InputConfig defines how held keys are latched.
type InputConfig struct {
	// LatchHoldTicks keeps a held control down this many frames after the
	// last key event. Terminals report no key release, so key repeat
	// refreshes the latch.
	LatchHoldTicks int `yaml:"latch_hold_ticks"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over a run.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "level", or "none"
	MaxAt int    `yaml:"max_at"` // Score/level at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier       float64 `yaml:"speed_multiplier"`        // Added to amoeba speed at max difficulty
	SafeDistanceReduction float64 `yaml:"safe_distance_reduction"` // Spawn buffer shrink at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParseDifficultyPreset maps a CLI/menu name to a preset.
// Unknown names yield the empty preset, which leaves the config untouched.
func ParseDifficultyPreset(name string) DifficultyPreset {
	switch DifficultyPreset(name) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(name)
	default:
		return ""
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}

// Tier returns the row for tier t.
func (c AmoebaConfig) Tier(t int) (TierConfig, bool) {
	for _, tc := range c.Tiers {
		if tc.Tier == t {
			return tc, true
		}
	}
	return TierConfig{}, false
}

// BigTier returns the largest tier number in the table.
func (c AmoebaConfig) BigTier() int {
	big := 0
	for _, tc := range c.Tiers {
		big = max(big, tc.Tier)
	}
	return big
}

// ErrInvalidConfig is wrapped by every Validate failure.
var ErrInvalidConfig = errors.New("invalid config")

// Validate checks that the configuration describes a playable game.
func (c AmoeboidsConfig) Validate() error {
	if c.World.Width <= 0 || c.World.Height < 0 {
		return fmt.Errorf("%w: world must have positive width and non-negative height", ErrInvalidConfig)
	}
	if c.Ship.Radius <= 0 {
		return fmt.Errorf("%w: ship radius must be positive", ErrInvalidConfig)
	}
	if c.Bullets.Radius <= 0 || c.Bullets.Speed <= 0 {
		return fmt.Errorf("%w: bullet radius and speed must be positive", ErrInvalidConfig)
	}
	if c.Bullets.RefireMS < 0 || c.Bullets.MaxAgeMS <= 0 {
		return fmt.Errorf("%w: bullet timings out of range", ErrInvalidConfig)
	}
	if len(c.Amoebas.Tiers) == 0 {
		return fmt.Errorf("%w: amoeba tier table is empty", ErrInvalidConfig)
	}

	seen := make(map[int]bool, len(c.Amoebas.Tiers))
	for _, tc := range c.Amoebas.Tiers {
		if tc.Tier <= 0 {
			return fmt.Errorf("%w: tier %q has non-positive number %d", ErrInvalidConfig, tc.Name, tc.Tier)
		}
		if seen[tc.Tier] {
			return fmt.Errorf("%w: tier %d defined twice", ErrInvalidConfig, tc.Tier)
		}
		seen[tc.Tier] = true
		if tc.Radius <= 0 {
			return fmt.Errorf("%w: tier %d radius must be positive", ErrInvalidConfig, tc.Tier)
		}
		if tc.Children < 0 {
			return fmt.Errorf("%w: tier %d has negative child count", ErrInvalidConfig, tc.Tier)
		}
	}
	for _, tc := range c.Amoebas.Tiers {
		if tc.Children > 0 && !seen[tc.Tier-1] {
			return fmt.Errorf("%w: tier %d splits into undefined tier %d", ErrInvalidConfig, tc.Tier, tc.Tier-1)
		}
	}

	if c.Levels.SpawnFactor <= 0 || c.Levels.SafeDistance < 0 {
		return fmt.Errorf("%w: level spawn factor must be positive", ErrInvalidConfig)
	}
	if c.Input.LatchHoldTicks < 1 {
		return fmt.Errorf("%w: latch_hold_ticks must be at least 1", ErrInvalidConfig)
	}
	return nil
}
