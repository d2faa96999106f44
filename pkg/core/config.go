// pkg/core/config.go
package core

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Output formats for a detection record
const (
	FormatYAML  = "yaml"
	FormatJSON  = "json"
	FormatEnv   = "env"
	FormatFlags = "flags"
)

// Config holds libprobe configuration
type Config struct {
	LibCMAES string `yaml:"libcmaes"` // Override root for libcmaes
	Debug    bool   `yaml:"debug"`
	Format   string `yaml:"format"`
	Color    bool   `yaml:"color"`
}

// DefaultConfig returns a default configuration
func DefaultConfig() *Config {
	return &Config{
		LibCMAES: os.Getenv("LIBPROBE_LIBCMAES"),
		Debug:    false,
		Format:   FormatYAML,
		Color:    true,
	}
}

// LoadConfig loads configuration from file. A missing file yields defaults.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		path = DefaultConfigPath()
		if path == "" {
			return DefaultConfig(), nil
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	if v := os.Getenv("LIBPROBE_LIBCMAES"); v != "" {
		cfg.LibCMAES = v
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// SaveConfig saves configuration to file
func SaveConfig(cfg *Config, path string) error {
	if path == "" {
		path = DefaultConfigPath()
		if path == "" {
			return fmt.Errorf("no home directory for config")
		}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	return nil
}

// Validate checks the output format
func (c *Config) Validate() error {
	switch c.Format {
	case FormatYAML, FormatJSON, FormatEnv, FormatFlags:
		return nil
	case "":
		c.Format = FormatYAML
		return nil
	default:
		return fmt.Errorf("unknown format %q (want yaml, json, env or flags)", c.Format)
	}
}

// DefaultConfigPath returns $HOME/.config/libprobe/config.yaml, or "" when
// there is no home directory.
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "libprobe", "config.yaml")
}
