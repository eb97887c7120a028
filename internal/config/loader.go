package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadAmoeboids loads Amoeboids configuration.
// Search order: customPath -> ~/.amoeboids/configs/amoeboids.yaml -> ./configs/amoeboids.yaml -> embedded default
//
// Each file is decoded on top of the defaults, so a partial file only
// overrides the keys it names. A custom path that is missing or invalid is an
// error; the other locations are skipped when unusable.
func LoadAmoeboids(customPath string) (AmoeboidsConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return AmoeboidsConfig{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := parseAmoeboids(data)
		if err != nil {
			return AmoeboidsConfig{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("amoeboids.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := parseAmoeboids(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", "amoeboids.yaml")); err == nil {
		if cfg, err := parseAmoeboids(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := parseAmoeboids(GetDefaultYAML("amoeboids"))
	if err != nil {
		return DefaultAmoeboidsConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// parseAmoeboids decodes YAML over the hard-coded defaults and validates the result.
func parseAmoeboids(data []byte) (AmoeboidsConfig, error) {
	cfg := DefaultAmoeboidsConfig()
	tiers := cfg.Amoebas.Tiers
	cfg.Amoebas.Tiers = nil

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return AmoeboidsConfig{}, err
	}
	// A file without a tier table keeps the default one.
	if len(cfg.Amoebas.Tiers) == 0 {
		cfg.Amoebas.Tiers = tiers
	}
	if err := cfg.Validate(); err != nil {
		return AmoeboidsConfig{}, err
	}
	return cfg, nil
}

// WriteDefault writes the embedded default config to path, creating parent
// directories. Existing files are left alone.
func WriteDefault(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config %s already exists", path)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return fmt.Errorf("failed to create config dir: %w", err)
	}
	if err := os.WriteFile(path, GetDefaultYAML("amoeboids"), 0o600); err != nil {
		return fmt.Errorf("failed to write config %s: %w", path, err)
	}
	return nil
}

// UserConfigFile returns the per-user config location, or empty if home is unavailable.
func UserConfigFile() string {
	return userConfigPath("amoeboids.yaml")
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".amoeboids", "configs", filename)
}

// ApplyAmoeboidsPreset modifies the config based on a difficulty preset.
func ApplyAmoeboidsPreset(cfg *AmoeboidsConfig, preset DifficultyPreset) {
	if preset == "" {
		return
	}
	if IsFixedPreset(preset) {
		cfg.Difficulty.Enabled = false
	} else {
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}

	// Adjust spawning based on difficulty
	switch preset {
	case DifficultyEasy:
		cfg.Levels.SafeDistance = 200
		cfg.Bullets.RefireMS = 150
	case DifficultyHard:
		cfg.Levels.SafeDistance = 110
		cfg.Bullets.MaxAgeMS = 2000
	}
}
