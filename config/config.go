package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"iconcloud/cloud"
)

// Config holds all iconcloud configuration.
type Config struct {
	// Cloud geometry and motion
	Cloud CloudConfig `yaml:"cloud"`

	// Technologies shown, in display order
	Labels []cloud.Label `yaml:"labels"`

	// Logging
	Logging LoggingConfig `yaml:"logging"`
}

// CloudConfig configures the icon cloud.
type CloudConfig struct {
	Radius   float64 `yaml:"radius"`    // field radius, pointer offsets use the same unit
	IconSize float64 `yaml:"icon_size"` // base icon size before depth scaling
	FPS      int     `yaml:"fps"`

	Motion cloud.Params `yaml:"motion"`
}

// LoggingConfig configures logging.
type LoggingConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
	File  string `yaml:"file"`  // empty discards logs in the terminal view
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Cloud: CloudConfig{
			Radius:   cloud.DefaultRadius,
			IconSize: cloud.DefaultIconSize,
			FPS:      cloud.DefaultFPS,
			Motion:   cloud.DefaultParams(),
		},
		Labels: cloud.DefaultLabels(),
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load loads configuration from a YAML file. A missing file yields the
// defaults.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
		case err != nil:
			return nil, fmt.Errorf("failed to read config: %w", err)
		default:
			// an explicit labels list replaces the defaults instead of merging
			cfg.Labels = nil
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config: %w", err)
			}
			if len(cfg.Labels) == 0 {
				cfg.Labels = cloud.DefaultLabels()
			}
		}
	}

	if err := cfg.applyEnvOverrides(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save saves configuration to a YAML file.
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// Validate checks the configuration before a cloud is built from it.
func (c *Config) Validate() error {
	if _, err := cloud.NewProjector(c.Cloud.Radius, c.Cloud.IconSize); err != nil {
		return fmt.Errorf("invalid cloud config: %w", err)
	}
	if c.Cloud.FPS <= 0 || c.Cloud.FPS > 240 {
		return fmt.Errorf("invalid cloud config: fps %d not in [1, 240]", c.Cloud.FPS)
	}
	if err := c.Cloud.Motion.Validate(); err != nil {
		return fmt.Errorf("invalid motion config: %w", err)
	}
	if err := cloud.ValidateLabels(c.Labels); err != nil {
		return fmt.Errorf("invalid labels: %w", err)
	}
	switch strings.ToLower(c.Logging.Level) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid logging level %q", c.Logging.Level)
	}
	return nil
}

// Options converts the config into cloud options.
func (c *Config) Options() cloud.Options {
	return cloud.Options{
		Radius:   c.Cloud.Radius,
		IconSize: c.Cloud.IconSize,
		Params:   c.Cloud.Motion,
	}
}

// applyEnvOverrides applies environment variable overrides.
func (c *Config) applyEnvOverrides() error {
	if v := os.Getenv("ICONCLOUD_RADIUS"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("ICONCLOUD_RADIUS: %w", err)
		}
		c.Cloud.Radius = f
	}
	if v := os.Getenv("ICONCLOUD_ICON_SIZE"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("ICONCLOUD_ICON_SIZE: %w", err)
		}
		c.Cloud.IconSize = f
	}
	if v := os.Getenv("ICONCLOUD_FPS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("ICONCLOUD_FPS: %w", err)
		}
		c.Cloud.FPS = n
	}
	if v := os.Getenv("ICONCLOUD_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
	return nil
}
