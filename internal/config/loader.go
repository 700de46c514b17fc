package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const (
	fileName = "waitroom.yaml"
	// LocalPath is the project-local config location.
	LocalPath = "configs/" + fileName
)

// Load loads the configuration.
// Search order: customPath -> ~/.waitroom/config.yaml -> ./configs/waitroom.yaml -> embedded default.
// Values missing from a file keep their defaults. Only a custom path that
// cannot be read or parsed is an error; broken files further down the search
// order are skipped.
func Load(customPath string) (Config, error) {
	if customPath != "" {
		cfg, err := loadFile(customPath)
		if err != nil {
			return Default(), err
		}
		return cfg, nil
	}

	for _, path := range []string{UserPath(), LocalPath} {
		if path == "" {
			continue
		}
		if cfg, err := loadFile(path); err == nil {
			return cfg, nil
		}
	}

	cfg := Default()
	if err := yaml.Unmarshal(defaultYAML, &cfg); err != nil {
		return Default(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// Locate returns the file Load reads, or "" when the embedded default is used.
func Locate(customPath string) string {
	if customPath != "" {
		return customPath
	}
	for _, path := range []string{UserPath(), LocalPath} {
		if path == "" {
			continue
		}
		if _, err := loadFile(path); err == nil {
			return path
		}
	}
	return ""
}

// Parse decodes a YAML document over the defaults and validates it.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: parse: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func loadFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Default(), fmt.Errorf("config: read %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return Default(), fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// Dir returns ~/.waitroom, or "" if home is unavailable.
func Dir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".waitroom")
}

// UserPath returns the per-user config file path, or "" if home is unavailable.
func UserPath() string {
	dir := Dir()
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, "config.yaml")
}

// DefaultYAML returns the embedded default document.
func DefaultYAML() []byte {
	return append([]byte(nil), defaultYAML...)
}
