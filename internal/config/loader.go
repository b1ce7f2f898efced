package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadRobots loads the robots rules.
// Search order: customPath -> ~/.robots/configs/robots.yaml -> ./configs/robots.yaml -> embedded default
func LoadRobots(customPath string) (RobotsConfig, error) {
	// Unset fields keep their defaults
	cfg := DefaultRobotsConfig()

	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	if userCfgPath := userConfigPath("robots.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				return cfg, nil
			}
			cfg = DefaultRobotsConfig()
		}
	}

	if data, err := os.ReadFile(filepath.Join("configs", "robots.yaml")); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return cfg, nil
		}
		cfg = DefaultRobotsConfig()
	}

	if err := yaml.Unmarshal(defaultRobotsYAML, &cfg); err != nil {
		return DefaultRobotsConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// userConfigPath returns the path to a user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".robots", "configs", filename)
}

// EncodeRules serializes the effective rules of a game so it can be replayed
// exactly, whatever rules file or preset is active later.
func EncodeRules(cfg RobotsConfig) (string, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return "", fmt.Errorf("config: cannot encode rules: %w", err)
	}
	return string(data), nil
}

// DecodeRules parses rules written by EncodeRules. Every field is taken from
// the document; nothing falls back to the defaults.
func DecodeRules(s string) (RobotsConfig, error) {
	var cfg RobotsConfig
	if err := yaml.Unmarshal([]byte(s), &cfg); err != nil {
		return cfg, fmt.Errorf("config: cannot decode rules: %w", err)
	}
	return cfg, nil
}
