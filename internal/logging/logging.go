// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package logging builds the structured logger used by the geogen command.
package logging

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config contains logging configuration
type Config struct {
	// Level is the minimum log level
	Level string `mapstructure:"level"`

	// Format is the output format (json, console)
	Format string `mapstructure:"format"`

	// Output is the output destination (stdout, stderr, file path)
	Output string `mapstructure:"output"`
}

// DefaultConfig returns the defaults. Logs go to stderr so that generated
// geometries on stdout stay clean.
func DefaultConfig() Config {
	return Config{
		Level:  "info",
		Format: "console",
		Output: "stderr",
	}
}

// New builds a logger from cfg. An unknown level falls back to info.
//
// The returned cleanup flushes the logger and closes the output file, if any.
// Callers must invoke it once they are done logging.
func New(cfg Config) (*zap.Logger, func(), error) {
	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		level = zapcore.InfoLevel
	}

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.TimeKey = "timestamp"
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	var encoder zapcore.Encoder
	if cfg.Format == "console" {
		encoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
		encoder = zapcore.NewConsoleEncoder(encoderConfig)
	} else {
		encoder = zapcore.NewJSONEncoder(encoderConfig)
	}

	output := cfg.Output
	if output == "" {
		output = "stderr"
	}
	// stdout and stderr are never closed by zap.
	ws, closeOutput, err := zap.Open(output)
	if err != nil {
		return nil, nil, err
	}

	logger := zap.New(zapcore.NewCore(encoder, ws, level))
	cleanup := func() {
		_ = logger.Sync()
		closeOutput()
	}
	return logger, cleanup, nil
}
