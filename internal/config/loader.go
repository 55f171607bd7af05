package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load reads the configuration.
// Search order: customPath -> ~/.aim/config.yaml -> ./configs/aim.yaml -> embedded default
func Load(customPath string) (Config, error) {
	var cfg Config

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		fillDefaults(&cfg)
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("config.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				fillDefaults(&cfg)
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", "aim.yaml")); err == nil {
		cfg = Config{}
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			fillDefaults(&cfg)
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg = Config{}
	if err := yaml.Unmarshal(defaultYAML, &cfg); err != nil {
		return Default(), nil // Fallback to hardcoded if embed fails
	}
	fillDefaults(&cfg)
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".aim", filename)
}

// Override applies CLI flag values on top of the loaded settings.
// Zero values and an empty difficulty leave the loaded value in place.
func (c *Config) Override(size, duration int, difficulty string) {
	if size != 0 {
		c.Settings.BubbleSize = size
	}
	if duration != 0 {
		c.Settings.Duration = duration
	}
	if difficulty != "" {
		c.Settings.Difficulty = ParseDifficulty(difficulty)
	}
}
