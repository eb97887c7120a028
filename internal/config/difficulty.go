package config

import "math"

// minSafeDistance keeps spawns from landing on top of the ship at max difficulty.
const minSafeDistance = 60

// DifficultyManager calculates dynamic game parameters based on score or level.
type DifficultyManager struct {
	cfg          DifficultyConfig
	initialLevel float64
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{
		cfg:          cfg,
		initialLevel: cfg.InitialLevel,
	}
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.Progression.Type != "none"
}

// Level returns the current difficulty level (0.0 to 1.0) for a run that has
// reached the given score and game level.
func (d *DifficultyManager) Level(score, level int) float64 {
	if !d.IsEnabled() {
		return d.initialLevel
	}

	maxAt := float64(d.cfg.Progression.MaxAt)
	if maxAt <= 0 {
		maxAt = 1 // Prevent division by zero
	}

	var progress float64
	switch d.cfg.Progression.Type {
	case "score":
		progress = float64(score) / maxAt
	case "level":
		progress = float64(level-1) / maxAt
	default:
		return d.initialLevel
	}

	progress = clampF(progress, 0.0, 1.0)

	// Interpolate from initial level to 1.0
	return d.initialLevel + progress*(1.0-d.initialLevel)
}

// Speed scales a base speed by the current difficulty.
// At level 0 the base speed is returned unchanged.
func (d *DifficultyManager) Speed(baseSpeed float64, score, level int) float64 {
	return baseSpeed * (1.0 + d.Level(score, level)*d.cfg.Scaling.SpeedMultiplier)
}

// SafeDistance shrinks the spawn exclusion buffer as difficulty rises.
func (d *DifficultyManager) SafeDistance(base float64, score, level int) float64 {
	result := base - d.Level(score, level)*d.cfg.Scaling.SafeDistanceReduction
	if base < minSafeDistance {
		return base
	}
	return math.Max(result, minSafeDistance)
}

// clampF restricts a float64 to [min, max].
func clampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}
