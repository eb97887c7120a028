package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfigIsValid(t *testing.T) {
	if err := DefaultAmoeboidsConfig().Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
}

func TestEmbeddedYAMLMatchesDefaults(t *testing.T) {
	cfg, err := parseAmoeboids(GetDefaultYAML("amoeboids"))
	if err != nil {
		t.Fatalf("embedded yaml: %v", err)
	}
	def := DefaultAmoeboidsConfig()

	if cfg.Ship != def.Ship {
		t.Errorf("ship = %+v, expected %+v", cfg.Ship, def.Ship)
	}
	if cfg.Bullets != def.Bullets {
		t.Errorf("bullets = %+v, expected %+v", cfg.Bullets, def.Bullets)
	}
	if cfg.Levels != def.Levels {
		t.Errorf("levels = %+v, expected %+v", cfg.Levels, def.Levels)
	}
	if len(cfg.Amoebas.Tiers) != len(def.Amoebas.Tiers) {
		t.Fatalf("tier count = %d, expected %d", len(cfg.Amoebas.Tiers), len(def.Amoebas.Tiers))
	}
	for i := range def.Amoebas.Tiers {
		if cfg.Amoebas.Tiers[i] != def.Amoebas.Tiers[i] {
			t.Errorf("tier %d = %+v, expected %+v", i, cfg.Amoebas.Tiers[i], def.Amoebas.Tiers[i])
		}
	}
}

func TestTierLookup(t *testing.T) {
	a := DefaultAmoeboidsConfig().Amoebas

	if a.BigTier() != 3 {
		t.Errorf("BigTier() = %d, expected 3", a.BigTier())
	}

	tests := []struct {
		tier     int
		radius   float64
		award    int
		children int
	}{
		{3, 40, 10, 3},
		{2, 20, 15, 3},
		{1, 10, 20, 0},
	}
	for _, tc := range tests {
		row, ok := a.Tier(tc.tier)
		if !ok {
			t.Fatalf("tier %d missing", tc.tier)
		}
		if row.Radius != tc.radius || row.Award != tc.award || row.Children != tc.children {
			t.Errorf("tier %d = %+v", tc.tier, row)
		}
	}

	if _, ok := a.Tier(4); ok {
		t.Error("tier 4 should not exist")
	}
}

func TestValidateRejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*AmoeboidsConfig)
	}{
		{"zero width", func(c *AmoeboidsConfig) { c.World.Width = 0 }},
		{"zero ship radius", func(c *AmoeboidsConfig) { c.Ship.Radius = 0 }},
		{"zero bullet speed", func(c *AmoeboidsConfig) { c.Bullets.Speed = 0 }},
		{"no max age", func(c *AmoeboidsConfig) { c.Bullets.MaxAgeMS = 0 }},
		{"empty tiers", func(c *AmoeboidsConfig) { c.Amoebas.Tiers = nil }},
		{"duplicate tier", func(c *AmoeboidsConfig) { c.Amoebas.Tiers[1].Tier = 3 }},
		{"negative radius", func(c *AmoeboidsConfig) { c.Amoebas.Tiers[2].Radius = -1 }},
		{"orphan children", func(c *AmoeboidsConfig) { c.Amoebas.Tiers = c.Amoebas.Tiers[:1] }},
		{"zero spawn factor", func(c *AmoeboidsConfig) { c.Levels.SpawnFactor = 0 }},
		{"zero latch", func(c *AmoeboidsConfig) { c.Input.LatchHoldTicks = 0 }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultAmoeboidsConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Validate() = %v, expected ErrInvalidConfig", err)
			}
		})
	}
}

func TestLoadCustomPathPartialOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := []byte("ship:\n  radius: 12\nlevels:\n  safe_distance: 90\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadAmoeboids(path)
	if err != nil {
		t.Fatalf("LoadAmoeboids: %v", err)
	}
	if cfg.Ship.Radius != 12 {
		t.Errorf("ship radius = %v, expected 12", cfg.Ship.Radius)
	}
	if cfg.Levels.SafeDistance != 90 {
		t.Errorf("safe distance = %v, expected 90", cfg.Levels.SafeDistance)
	}
	// Untouched keys keep their defaults
	if cfg.Ship.TurnRate != 0.1 {
		t.Errorf("turn rate = %v, expected default 0.1", cfg.Ship.TurnRate)
	}
	if len(cfg.Amoebas.Tiers) != 3 {
		t.Errorf("tier count = %d, expected default 3", len(cfg.Amoebas.Tiers))
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	if _, err := LoadAmoeboids(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("missing custom config should fail")
	}

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(bad, []byte("ship:\n  radius: -3\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadAmoeboids(bad); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("invalid custom config error = %v, expected ErrInvalidConfig", err)
	}
}

func TestWriteDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "amoeboids.yaml")
	if err := WriteDefault(path); err != nil {
		t.Fatalf("WriteDefault: %v", err)
	}
	if _, err := LoadAmoeboids(path); err != nil {
		t.Errorf("written default should load: %v", err)
	}
	if err := WriteDefault(path); err == nil {
		t.Error("WriteDefault should refuse to overwrite")
	}
}

func TestApplyPreset(t *testing.T) {
	cfg := DefaultAmoeboidsConfig()
	ApplyAmoeboidsPreset(&cfg, DifficultyHard)
	if !cfg.Difficulty.Enabled || cfg.Difficulty.InitialLevel != 0.7 {
		t.Errorf("hard preset difficulty = %+v", cfg.Difficulty)
	}
	if cfg.Levels.SafeDistance != 110 {
		t.Errorf("hard preset safe distance = %v, expected 110", cfg.Levels.SafeDistance)
	}

	cfg = DefaultAmoeboidsConfig()
	ApplyAmoeboidsPreset(&cfg, DifficultyFixed)
	if cfg.Difficulty.Enabled {
		t.Error("fixed preset should disable progression")
	}

	cfg = DefaultAmoeboidsConfig()
	ApplyAmoeboidsPreset(&cfg, ParseDifficultyPreset("bogus"))
	if cfg.Difficulty.Enabled || cfg.Levels.SafeDistance != 150 {
		t.Error("unknown preset should leave config untouched")
	}
}

func TestDifficultyDisabledKeepsBase(t *testing.T) {
	d := NewDifficultyManager(DefaultAmoeboidsConfig().Difficulty)

	if got := d.Speed(1.0, 5000, 9); got != 1.0 {
		t.Errorf("Speed = %v, expected 1.0 with difficulty disabled", got)
	}
	if got := d.SafeDistance(150, 5000, 9); got != 150 {
		t.Errorf("SafeDistance = %v, expected 150 with difficulty disabled", got)
	}
}

func TestDifficultyLevelProgression(t *testing.T) {
	cfg := DefaultAmoeboidsConfig().Difficulty
	cfg.Enabled = true
	d := NewDifficultyManager(cfg)

	tests := []struct {
		level    int
		expected float64
	}{
		{1, 0.0},
		{6, 0.5},
		{11, 1.0},
		{40, 1.0},
	}
	for _, tc := range tests {
		if got := d.Level(0, tc.level); got != tc.expected {
			t.Errorf("Level(0, %d) = %v, expected %v", tc.level, got, tc.expected)
		}
	}

	if got := d.Speed(1.0, 0, 11); got != 2.0 {
		t.Errorf("Speed at max = %v, expected 2.0", got)
	}
	if got := d.SafeDistance(150, 0, 11); got != 90 {
		t.Errorf("SafeDistance at max = %v, expected 90", got)
	}
	if got := d.SafeDistance(100, 0, 11); got != minSafeDistance {
		t.Errorf("SafeDistance floor = %v, expected %v", got, minSafeDistance)
	}
}
