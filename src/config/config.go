// Package config loads the workspace configuration file: the ignore-pattern
// sets consumed by the session.
package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config is the on-disk workspace configuration
type Config struct {
	Ignore            IgnoreConfig `yaml:"ignore"`
	MissingFromClient []string     `yaml:"missing_from_client,omitempty"`
}

// IgnoreConfig holds the two ignore-pattern shapes. Absolute patterns
// anchor at the workspace root and must begin with a slash; relative
// patterns match whole path segments at any depth.
type IgnoreConfig struct {
	Absolute []string `yaml:"absolute,omitempty"`
	Relative []string `yaml:"relative,omitempty"`
}

// Load reads and validates a YAML configuration file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &cfg, nil
}

// Default returns an empty configuration that ignores nothing
func Default() *Config {
	return &Config{}
}

func validate(cfg *Config) error {
	for _, p := range cfg.Ignore.Absolute {
		if !strings.HasPrefix(p, "/") {
			return fmt.Errorf("absolute ignore pattern %q must begin with '/'", p)
		}
	}
	for _, p := range cfg.Ignore.Relative {
		if p == "" {
			return fmt.Errorf("relative ignore patterns must not be empty")
		}
	}
	for _, p := range cfg.MissingFromClient {
		if !strings.HasPrefix(p, "/") {
			return fmt.Errorf("missing_from_client pattern %q must begin with '/'", p)
		}
	}
	return nil
}
