// ============================================================================
// koy - Configuration Language Toolchain
// ============================================================================
//
// Package:     logging
// Description: Factory functions for creating command loggers from config
// Author:      msto63
// Created:     2026-10-15
// License:     MIT
// ============================================================================

package logging

import (
	"io"
	"os"
	"strings"

	koyconfig "github.com/msto63/koy/foundation/core/config"
	koylog "github.com/msto63/koy/foundation/core/log"
)

// LoggerConfig holds configuration for creating loggers
type LoggerConfig struct {
	// Logger name, shown in every entry
	Name string

	// Log level (trace, debug, info, warn, error, off)
	Level string

	// Output format (console, text, json, logfmt)
	Format string

	// Output defaults to stderr so stdout stays reserved for results
	Output io.Writer

	// Additional outputs besides Output
	AdditionalOutputs []io.Writer
}

// DefaultLoggerConfig returns a default configuration
func DefaultLoggerConfig(name string) LoggerConfig {
	return LoggerConfig{
		Name:   name,
		Level:  koylog.DefaultLevel().String(),
		Format: koylog.FormatConsole.String(),
	}
}

// NewLogger creates a logger. Unknown levels fall back to warn and unknown
// formats to text.
func NewLogger(cfg LoggerConfig) *koylog.Logger {
	level, err := koylog.ParseLevel(cfg.Level)
	if err != nil {
		level = koylog.DefaultLevel()
	}

	format, err := koylog.ParseFormat(cfg.Format)
	if err != nil {
		format = koylog.FormatText
	}

	var output io.Writer = os.Stderr
	if cfg.Output != nil {
		output = cfg.Output
	}
	if len(cfg.AdditionalOutputs) > 0 {
		writers := append([]io.Writer{output}, cfg.AdditionalOutputs...)
		output = io.MultiWriter(writers...)
	}

	return koylog.NewWithConfig(koylog.Config{
		Level:  level,
		Format: format,
		Output: output,
		Name:   cfg.Name,
	})
}

// FromSettings creates a logger from loaded settings. verbose raises the
// level to debug unless the configured level is already more detailed.
func FromSettings(name string, settings koyconfig.Settings, verbose bool) *koylog.Logger {
	cfg := DefaultLoggerConfig(name)
	cfg.Level = settings.LogLevel
	cfg.Format = settings.LogFormat

	if verbose {
		if level, err := koylog.ParseLevel(cfg.Level); err != nil || level > koylog.LevelDebug {
			cfg.Level = koylog.LevelDebug.String()
		}
	}
	if !settings.OutputColor && strings.EqualFold(cfg.Format, koylog.FormatConsole.String()) {
		plain := koylog.NewConsoleFormatter()
		plain.DisableColors = true
		return NewLogger(cfg).WithFormatter(plain)
	}
	return NewLogger(cfg)
}

// NewSimpleLogger creates a logger with the default configuration
func NewSimpleLogger(name string) *koylog.Logger {
	return NewLogger(DefaultLoggerConfig(name))
}
