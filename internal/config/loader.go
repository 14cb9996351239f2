package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadShifter loads Shape Shifter configuration.
// Search order: customPath -> ~/.arcade/configs/shifter.yaml -> ./configs/shifter.yaml -> embedded default
//
// Files only need to name the fields they override; everything else keeps
// its default value.
func LoadShifter(customPath string) (ShifterConfig, error) {
	cfg := DefaultShifterConfig()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		if err := cfg.Validate(); err != nil {
			return cfg, err
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("shifter.yaml"); userCfgPath != "" {
		if loaded, ok := parseShifter(userCfgPath); ok {
			return loaded, nil
		}
	}

	// Try local configs directory
	if loaded, ok := parseShifter(filepath.Join("configs", "shifter.yaml")); ok {
		return loaded, nil
	}

	// Use embedded default YAML
	embedded := DefaultShifterConfig()
	if err := yaml.Unmarshal(defaultShifterYAML, &embedded); err != nil || embedded.Validate() != nil {
		return DefaultShifterConfig(), nil // Fallback to hardcoded if embed fails
	}
	return embedded, nil
}

// parseShifter reads an optional config file. Missing, malformed or
// invalid files are skipped so the next search location is tried.
func parseShifter(path string) (ShifterConfig, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return ShifterConfig{}, false
	}
	cfg := DefaultShifterConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return ShifterConfig{}, false
	}
	if cfg.Validate() != nil {
		return ShifterConfig{}, false
	}
	return cfg, true
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}
