package config

import (
	_ "embed"
)

//go:embed defaults/amoeboids.yaml
var defaultAmoeboidsYAML []byte

// DefaultAmoeboidsConfig returns the default Amoeboids configuration.
func DefaultAmoeboidsConfig() AmoeboidsConfig {
	return AmoeboidsConfig{
		World: WorldConfig{
			Width:  800,
			Height: 0,
			Stars:  60,
		},
		Ship: ShipConfig{
			Radius:       10,
			TurnRate:     0.1,
			Acceleration: 0.5,
			Deceleration: 0.2,
		},
		Bullets: BulletConfig{
			Radius:   2,
			Speed:    3,
			RefireMS: 200,
			MaxAgeMS: 3000,
		},
		Amoebas: AmoebaConfig{
			SpeedRange: 0.4,
			Tiers: []TierConfig{
				{Tier: 3, Name: "big", Radius: 40, VelocityMultiplier: 1, Award: 10, Children: 3},
				{Tier: 2, Name: "medium", Radius: 20, VelocityMultiplier: 2, Award: 15, Children: 3},
				{Tier: 1, Name: "small", Radius: 10, VelocityMultiplier: 3, Award: 20, Children: 0},
			},
		},
		Levels: LevelConfig{
			SpawnFactor:  2.4,
			SafeDistance: 150,
		},
		Input: InputConfig{
			LatchHoldTicks: 12,
		},
		Difficulty: DifficultyConfig{
			Enabled:      false,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "level",
				MaxAt: 10,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier:       1.0,
				SafeDistanceReduction: 60,
			},
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "amoeboids":
		return defaultAmoeboidsYAML
	default:
		return nil
	}
}
