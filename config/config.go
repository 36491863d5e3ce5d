// Package config provides configuration loading and access for the effect host.
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/pthm-cable/glowfield/field"
	"github.com/pthm-cable/glowfield/noise"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all host configuration parameters. The effect itself is
// configured only through its theme.
type Config struct {
	Screen    ScreenConfig    `yaml:"screen"`
	Field     FieldConfig     `yaml:"field"`
	Telemetry TelemetryConfig `yaml:"telemetry"`
}

// ScreenConfig holds window settings.
type ScreenConfig struct {
	Width     int    `yaml:"width"`
	Height    int    `yaml:"height"`
	TargetFPS int    `yaml:"target_fps"`
	Title     string `yaml:"title"`
	Resizable bool   `yaml:"resizable"`
	Hidden    bool   `yaml:"hidden"`
}

// FieldConfig selects the theme and the noise generator.
type FieldConfig struct {
	Theme field.Theme `yaml:"theme"`
	Noise string      `yaml:"noise"` // simplex or perlin
	Seed  int64       `yaml:"seed"`  // 0 = time-based
}

// TelemetryConfig holds perf collection parameters.
type TelemetryConfig struct {
	PerfWindow  int `yaml:"perf_window"`  // frames averaged per stats window
	LogInterval int `yaml:"log_interval"` // frames between perf log lines, 0 = off
}

// global holds the loaded configuration.
var global *Config

// Init loads configuration from the given path, or uses embedded defaults if path is empty.
// Must be called before Cfg().
func Init(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	global = cfg
	return nil
}

// Cfg returns the global configuration. Panics if Init was not called.
func Cfg() *Config {
	if global == nil {
		panic("config: Cfg() called before Init()")
	}
	return global
}

// Load loads configuration from a YAML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Only fields present in the file are overwritten.
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate reports every invalid setting.
func (c *Config) Validate() error {
	var errs []error
	if c.Screen.Width <= 0 || c.Screen.Height <= 0 {
		errs = append(errs, fmt.Errorf("screen size %dx%d must be positive", c.Screen.Width, c.Screen.Height))
	}
	if c.Screen.TargetFPS < 0 {
		errs = append(errs, fmt.Errorf("target_fps %d must not be negative", c.Screen.TargetFPS))
	}
	if !c.Field.Theme.Valid() {
		errs = append(errs, fmt.Errorf("%w: %d", field.ErrUnknownTheme, uint8(c.Field.Theme)))
	}
	if _, err := noise.ByName(c.Field.Noise); err != nil {
		errs = append(errs, err)
	}
	if c.Telemetry.PerfWindow < 1 {
		errs = append(errs, fmt.Errorf("perf_window %d must be at least 1", c.Telemetry.PerfWindow))
	}
	if len(errs) > 0 {
		return fmt.Errorf("invalid config: %w", errors.Join(errs...))
	}
	return nil
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
