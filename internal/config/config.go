// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package config loads the geogen command configuration.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/2dChan/geogen/continent"
	"github.com/2dChan/geogen/geom"
	"github.com/2dChan/geogen/internal/logging"
	"github.com/spf13/viper"
)

const (
	KindPoint = "point"
	KindBox   = "box"
)

// Config holds all command configuration.
type Config struct {
	Seed    int64          `mapstructure:"seed"`
	Shards  int            `mapstructure:"shards"`
	Rows    int            `mapstructure:"rows"`
	Kind    string         `mapstructure:"kind"`
	MinSize float64        `mapstructure:"min_size"`
	MaxSize float64        `mapstructure:"max_size"`
	Split   bool           `mapstructure:"split"`
	Regions []RegionConfig `mapstructure:"regions"`
	Logging logging.Config `mapstructure:"logging"`
}

// RegionConfig is one entry of a region table override.
type RegionConfig struct {
	Name   string  `mapstructure:"name"`
	West   float64 `mapstructure:"west"`
	South  float64 `mapstructure:"south"`
	East   float64 `mapstructure:"east"`
	North  float64 `mapstructure:"north"`
	Weight float64 `mapstructure:"weight"`
}

// New returns a viper instance with defaults and GEOGEN_* environment
// variables bound. Callers may bind command flags before Load.
func New() *viper.Viper {
	v := viper.New()

	// Defaults
	v.SetDefault("seed", 0)
	v.SetDefault("shards", 1)
	v.SetDefault("rows", 1000)
	v.SetDefault("kind", KindPoint)
	v.SetDefault("min_size", 0.01)
	v.SetDefault("max_size", 1.0)
	v.SetDefault("split", false)
	v.SetDefault("logging.level", logging.DefaultConfig().Level)
	v.SetDefault("logging.format", logging.DefaultConfig().Format)
	v.SetDefault("logging.output", logging.DefaultConfig().Output)

	// Environment variables: GEOGEN_LOGGING_LEVEL → logging.level
	v.SetEnvPrefix("GEOGEN")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// Load reads the optional config file and returns the validated configuration.
// With an empty file, geogen.yaml is looked up in . and ./configs.
func Load(v *viper.Viper, file string) (*Config, error) {
	if file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
	} else {
		v.SetConfigName("geogen")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./configs")
		var notFound viper.ConfigFileNotFoundError
		if err := v.ReadInConfig(); err != nil && !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks that configuration fields are present and sane.
// Region boxes and weights are validated when the sampler is built.
func (c *Config) Validate() error {
	var errs []string

	if c.Shards <= 0 {
		errs = append(errs, fmt.Sprintf("shards must be positive, got %d", c.Shards))
	}
	if c.Rows < 0 {
		errs = append(errs, fmt.Sprintf("rows must not be negative, got %d", c.Rows))
	}
	switch c.Kind {
	case KindPoint:
	case KindBox:
		if c.MinSize < 0 || c.MaxSize < c.MinSize {
			errs = append(errs, fmt.Sprintf("box sizes must satisfy 0 <= min_size <= max_size, got [%v %v]", c.MinSize, c.MaxSize))
		}
	default:
		errs = append(errs, fmt.Sprintf("kind must be %q or %q, got %q", KindPoint, KindBox, c.Kind))
	}
	for i, r := range c.Regions {
		if r.Name == "" {
			errs = append(errs, fmt.Sprintf("regions[%d].name is required", i))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("config validation failed:\n  - %s", strings.Join(errs, "\n  - "))
	}
	return nil
}

// RegionTable returns the configured region override, or nil to use the
// built-in table.
func (c *Config) RegionTable() []continent.Region {
	if len(c.Regions) == 0 {
		return nil
	}
	regions := make([]continent.Region, len(c.Regions))
	for i, r := range c.Regions {
		regions[i] = continent.Region{
			Name:   r.Name,
			Box:    geom.BoundingBox{West: r.West, South: r.South, East: r.East, North: r.North},
			Weight: r.Weight,
		}
	}
	return regions
}
