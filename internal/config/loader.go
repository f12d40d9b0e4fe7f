package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadSimon loads the Simon game configuration.
// Search order: customPath -> ~/.simon/configs/simon.yaml -> ./configs/simon.yaml -> embedded default
//
// Files are decoded over the defaults, so a partial file only overrides the
// keys it sets. A custom path that is unreadable or invalid is an error;
// the other locations are skipped when they are missing or broken.
func LoadSimon(customPath string) (SimonConfig, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return SimonConfig{}, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := parseSimon(data)
		if err != nil {
			return SimonConfig{}, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	if userCfgPath := userConfigPath("simon.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := parseSimon(data); err == nil {
				return cfg, nil
			}
		}
	}

	if data, err := os.ReadFile(filepath.Join("configs", "simon.yaml")); err == nil {
		if cfg, err := parseSimon(data); err == nil {
			return cfg, nil
		}
	}

	cfg, err := parseSimon(defaultSimonYAML)
	if err != nil {
		return DefaultSimonConfig(), nil // Fallback to hardcoded if embed is broken
	}
	return cfg, nil
}

// parseSimon decodes YAML over the hardcoded defaults and validates the result.
func parseSimon(data []byte) (SimonConfig, error) {
	cfg := DefaultSimonConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return SimonConfig{}, err
	}
	if err := cfg.Validate(); err != nil {
		return SimonConfig{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to a user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".simon", "configs", filename)
}
