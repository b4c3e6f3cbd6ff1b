// Package config provides configuration loading and validation for chardraw.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config represents the application configuration.
type Config struct {
	Terminal  TerminalConfig  `yaml:"terminal"`
	Canvas    CanvasConfig    `yaml:"canvas"`
	Snapshots SnapshotsConfig `yaml:"snapshots"`
	Log       LogConfig       `yaml:"log"`
}

// TerminalConfig contains settings for the character-cell output.
type TerminalConfig struct {
	// Rows and Cols are used when the output is not a terminal
	// and its size cannot be queried.
	Rows      int    `yaml:"rows"`
	Cols      int    `yaml:"cols"`
	TrueColor string `yaml:"true_color"`
}

// CanvasConfig contains drawing settings.
type CanvasConfig struct {
	// Aspect is the horizontal stretch applied to circles and arcs.
	Aspect float64 `yaml:"aspect"`
}

// SnapshotsConfig contains snapshot storage settings.
type SnapshotsConfig struct {
	Dir string `yaml:"dir"`
}

// LogConfig contains logging settings.
type LogConfig struct {
	Level string `yaml:"level"`
}

// DefaultConfigPath is the default path to look for the configuration file.
const DefaultConfigPath = "config.yaml"

// Values accepted by terminal.true_color.
const (
	TrueColorAuto = "auto"
	TrueColorOn   = "on"
	TrueColorOff  = "off"
)

// Default values for optional configuration fields.
const (
	DefaultRows      = 24
	DefaultCols      = 80
	DefaultTrueColor = TrueColorAuto
	DefaultAspect    = 2.0
	DefaultLogLevel  = "warn"
)

var logLevels = map[string]bool{"debug": true, "info": true, "warn": true, "error": true}

// Default returns a configuration with every optional field set to its default.
func Default() *Config {
	var cfg Config
	cfg.applyDefaults()
	return &cfg
}

// Load reads and parses the configuration from the specified file path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	// Apply defaults for optional fields
	cfg.applyDefaults()

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// LoadDefault loads configuration from the default path (config.yaml).
// A missing default file is not an error: the built-in defaults are used.
func LoadDefault() (*Config, error) {
	cfg, err := Load(DefaultConfigPath)
	if errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	return cfg, err
}

// applyDefaults sets default values for optional configuration fields.
func (c *Config) applyDefaults() {
	if c.Terminal.Rows == 0 {
		c.Terminal.Rows = DefaultRows
	}
	if c.Terminal.Cols == 0 {
		c.Terminal.Cols = DefaultCols
	}
	if c.Terminal.TrueColor == "" {
		c.Terminal.TrueColor = DefaultTrueColor
	}
	if c.Canvas.Aspect == 0 {
		c.Canvas.Aspect = DefaultAspect
	}
	if c.Log.Level == "" {
		c.Log.Level = DefaultLogLevel
	}
}

// validate checks that configured values are usable.
func (c *Config) validate() error {
	if c.Terminal.Rows < 0 || c.Terminal.Cols < 0 {
		return errors.New("terminal.rows and terminal.cols must be positive")
	}
	switch c.Terminal.TrueColor {
	case TrueColorAuto, TrueColorOn, TrueColorOff:
	default:
		return fmt.Errorf("terminal.true_color must be auto, on or off, got %q", c.Terminal.TrueColor)
	}
	if c.Canvas.Aspect < 0 {
		return fmt.Errorf("canvas.aspect must be positive, got %v", c.Canvas.Aspect)
	}
	if !logLevels[c.Log.Level] {
		return fmt.Errorf("log.level must be one of debug, info, warn, error, got %q", c.Log.Level)
	}
	return nil
}
