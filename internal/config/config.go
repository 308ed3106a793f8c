// Package config provides configuration loading and management for the
// picture tools server. It handles loading configuration from YAML files and
// provides default values.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/ironsheep/picture-tools-mcp/internal/imaging"
)

// Config represents the application configuration loaded from YAML
type Config struct {
	// Temple is the default region for the bounded-region mirror
	Temple imaging.TempleRegion `yaml:"temple"`

	// Edge detection parameters
	Edge struct {
		// Distance is the default color distance that counts as an edge
		Distance float64 `yaml:"distance"`
	} `yaml:"edge"`

	// Overlay parameters
	Overlay struct {
		// Fraction is the share of rows, from the top, that overlay composites
		Fraction float64 `yaml:"fraction"`
	} `yaml:"overlay"`

	// Collage parameters
	Collage struct {
		// RowOffsets are the rows at which the six collage strips are placed
		RowOffsets []int `yaml:"rowOffsets"`

		// MaxSide caps the height and width of a collage canvas
		MaxSide int `yaml:"maxSide"`
	} `yaml:"collage"`

	// Log parameters
	Log struct {
		// Level is "info" or "debug"
		Level string `yaml:"level"`
	} `yaml:"log"`
}

// DefaultCollageMaxSide is the default limit on collage canvas height and width.
const DefaultCollageMaxSide = 8192

// DefaultConfig returns a configuration with default values
func DefaultConfig() *Config {
	cfg := &Config{}

	cfg.Temple = imaging.DefaultTempleRegion
	cfg.Edge.Distance = imaging.DefaultEdgeDistance
	cfg.Overlay.Fraction = imaging.DefaultOverlayFraction
	cfg.Collage.RowOffsets = append([]int(nil), imaging.DefaultCollageRows...)
	cfg.Collage.MaxSide = DefaultCollageMaxSide
	cfg.Log.Level = "info"

	return cfg
}

// LoadConfig loads configuration from a YAML file.
// If the file doesn't exist, it returns the default configuration.
// Keys missing from the file keep their default values.
func LoadConfig(configPath string) (*Config, error) {
	cfg := DefaultConfig()

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return cfg, nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("error parsing config file: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", configPath, err)
	}

	return cfg, nil
}

// Validate checks values that would make every call of a tool fail.
func (c *Config) Validate() error {
	if c.Edge.Distance < 0 {
		return fmt.Errorf("edge.distance must not be negative, got %v", c.Edge.Distance)
	}
	if c.Overlay.Fraction < 0 || c.Overlay.Fraction > 1 {
		return fmt.Errorf("overlay.fraction must be within [0,1], got %v", c.Overlay.Fraction)
	}
	if len(c.Collage.RowOffsets) == 0 {
		return fmt.Errorf("collage.rowOffsets must list at least one row")
	}
	if c.Collage.MaxSide <= 0 {
		return fmt.Errorf("collage.maxSide must be positive, got %d", c.Collage.MaxSide)
	}
	for _, off := range c.Collage.RowOffsets {
		if off < 0 {
			return fmt.Errorf("collage.rowOffsets must not be negative, got %d", off)
		}
	}
	t := c.Temple
	if t.RowStart < 0 || t.RowStart > t.RowEnd || t.ColStart < 0 || t.ColStart > t.MirrorPoint {
		return fmt.Errorf("temple region %+v is inverted or negative", t)
	}
	switch c.Log.Level {
	case "info", "debug":
	default:
		return fmt.Errorf("log.level must be info or debug, got %q", c.Log.Level)
	}
	return nil
}

// Debug reports whether debug logging is enabled.
func (c *Config) Debug() bool {
	return c.Log.Level == "debug"
}

// SaveConfig saves the configuration to a YAML file
func SaveConfig(cfg *Config, configPath string) error {
	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("error creating config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("error marshaling config: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0644); err != nil {
		return fmt.Errorf("error writing config file: %w", err)
	}

	return nil
}

// CreateDefaultConfigFile creates a default configuration file at the specified path
func CreateDefaultConfigFile(configPath string) error {
	return SaveConfig(DefaultConfig(), configPath)
}
