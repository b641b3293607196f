// Package config loads the smoke CLI's configuration: where the catalog
// lives and how to log.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// LoggingConfig controls basic logging behavior.
type LoggingConfig struct {
	Level string `yaml:"level" json:"level"`
	File  string `yaml:"file" json:"file"`
}

// Config holds the tool's configuration.
type Config struct {
	CatalogPath string        `yaml:"catalog_path" json:"catalog_path"`
	Logging     LoggingConfig `yaml:"logging" json:"logging"`
}

// Default returns a Config with sensible defaults.
func Default() *Config {
	return &Config{
		Logging: LoggingConfig{Level: "info"},
	}
}

// Load reads and validates the config file at path. A missing path returns
// defaults, matching the CLI's "configuration is optional" stance.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path == "" {
		return cfg, nil
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file %s: %w", path, err)
	}

	ext := strings.ToLower(filepath.Ext(path))
	var raw interface{}
	switch ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing YAML config: %w", err)
		}
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("parsing YAML config: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported config file format: %s (supported: .yaml, .yml)", ext)
	}

	if err := validateAgainstSchema(raw); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// Validate checks the configuration for consistency and sets defaults for
// empty values not covered by the schema.
func (c *Config) Validate() error {
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	validLevels := []string{"debug", "info", "warn", "error"}
	if !contains(validLevels, c.Logging.Level) {
		return fmt.Errorf("invalid log level %q, must be one of: %s", c.Logging.Level, strings.Join(validLevels, ", "))
	}
	return nil
}

// GetConfigPaths returns the standard configuration file paths to check.
func GetConfigPaths() []string {
	homeDir, _ := os.UserHomeDir()

	paths := []string{
		"pkgcloser.yml",
		".pkgcloser.yml",
		"pkgcloser.yaml",
		".pkgcloser.yaml",
	}

	if homeDir != "" {
		paths = append(paths,
			filepath.Join(homeDir, ".config", "pkgcloser", "config.yml"),
			filepath.Join(homeDir, ".config", "pkgcloser", "config.yaml"),
		)
	}

	paths = append(paths,
		"/etc/pkgcloser/config.yml",
		"/etc/pkgcloser/config.yaml",
	)

	return paths
}

// FindConfigFile searches for a configuration file in standard locations.
func FindConfigFile() string {
	for _, path := range GetConfigPaths() {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

func contains(slice []string, item string) bool {
	for _, s := range slice {
		if s == item {
			return true
		}
	}
	return false
}
