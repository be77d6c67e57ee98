// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package cmd provides the CLI commands for geogen.
package cmd

import (
	"fmt"

	"github.com/2dChan/geogen/continent"
	"github.com/2dChan/geogen/internal/config"
	"github.com/2dChan/geogen/internal/logging"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

var cfgFile string

// flagKeys maps command flags onto configuration keys.
var flagKeys = map[string]string{
	"seed":      "seed",
	"log-level": "logging.level",
	"rows":      "rows",
	"shards":    "shards",
	"kind":      "kind",
	"min-size":  "min_size",
	"max-size":  "max_size",
	"split":     "split",
}

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "geogen",
	Short: "Generate reproducible synthetic geographic coordinates",
	Long: `geogen generates points and boxes distributed like continental landmass
occupancy, valid across the antimeridian and reproducible from a seed.

Examples:
  geogen generate --seed 42 --rows 1000
  geogen generate --kind box --min-size 0.1 --max-size 2 --split
  geogen regions --config geogen.yaml`,
	SilenceUsage: true,
}

// Execute runs the CLI
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./geogen.yaml if present)")
	rootCmd.PersistentFlags().Int64("seed", 0, "run seed")
	rootCmd.PersistentFlags().String("log-level", "info", "log level (debug, info, warn, error)")

	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(regionsCmd)
}

// env is the state shared by a command run.
type env struct {
	cfg     *config.Config
	logger  *zap.Logger
	sampler *continent.Sampler
	cleanup func()
}

// Close flushes the logger and releases its output.
func (e *env) Close() {
	e.cleanup()
}

// setup loads the configuration for cmd, the logger and the region sampler
// shared by all shards. The caller must Close the returned env.
func setup(cmd *cobra.Command) (*env, error) {
	v := config.New()
	if err := bindFlags(v, cmd.Flags()); err != nil {
		return nil, err
	}
	cfg, err := config.Load(v, cfgFile)
	if err != nil {
		return nil, err
	}
	logger, cleanup, err := logging.New(cfg.Logging)
	if err != nil {
		return nil, fmt.Errorf("initialize logging: %w", err)
	}

	sampler := continent.Default()
	if regions := cfg.RegionTable(); regions != nil {
		sampler, err = continent.NewSampler(regions)
		if err != nil {
			cleanup()
			return nil, fmt.Errorf("region table: %w", err)
		}
		logger.Debug("using region table override", zap.Int("regions", len(regions)))
	}
	return &env{cfg: cfg, logger: logger, sampler: sampler, cleanup: cleanup}, nil
}

func bindFlags(v *viper.Viper, fs *pflag.FlagSet) error {
	for name, key := range flagKeys {
		f := fs.Lookup(name)
		if f == nil {
			continue
		}
		if err := v.BindPFlag(key, f); err != nil {
			return fmt.Errorf("bind flag %s: %w", name, err)
		}
	}
	return nil
}
