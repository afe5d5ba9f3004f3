package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load loads the game configuration.
// Search order: customPath -> ~/.matrixsnake/configs/snake.yaml -> ./configs/snake.yaml -> embedded default.
// Files are decoded over the defaults, so a partial file only overrides
// the keys it names. The result is validated.
func Load(customPath string) (SnakeConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return DefaultSnakeConfig(), fmt.Errorf("config: read %s: %w", customPath, err)
		}
		return parse(data, customPath)
	}

	// Try user config directory
	if userCfgPath := userConfigPath("snake.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := parse(data, userCfgPath); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", "snake.yaml")); err == nil {
		if cfg, err := parse(data, "configs/snake.yaml"); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := parse(defaultSnakeYAML, "embedded defaults")
	if err != nil {
		return DefaultSnakeConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

func parse(data []byte, source string) (SnakeConfig, error) {
	cfg := DefaultSnakeConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return DefaultSnakeConfig(), fmt.Errorf("config: parse %s: %w", source, err)
	}
	if err := cfg.Validate(); err != nil {
		return DefaultSnakeConfig(), fmt.Errorf("%s: %w", source, err)
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	dir := ConfigDir()
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, "configs", filename)
}

// ConfigDir returns ~/.matrixsnake, or empty if home is unavailable.
func ConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".matrixsnake")
}
