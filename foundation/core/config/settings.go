// File: settings.go
// Title: koy Settings
// Description: Typed view over a Config holding every knob the koy CLI
//              reads, with validated defaults.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-15
// Modified: 2026-10-15
//
// Change History:
// - 2026-10-15 v0.1.0: Initial settings

package config

import (
	"fmt"
	"strings"
	"time"

	koyerror "github.com/msto63/koy/foundation/core/error"
)

// EnvPrefix is prepended to environment overrides (KOY_LOG_LEVEL).
const EnvPrefix = "KOY"

// Configuration keys read by the CLI.
const (
	KeyLogLevel      = "log.level"
	KeyLogFormat     = "log.format"
	KeyOutputFormat  = "output.format"
	KeyOutputColor   = "output.color"
	KeyParserDepth   = "parser.max_depth"
	KeyReplPrompt    = "repl.prompt"
	KeyReplHistory   = "repl.history"
	KeyWatchDebounce = "watch.debounce"
)

// Settings is the resolved CLI configuration.
type Settings struct {
	LogLevel      string
	LogFormat     string
	OutputFormat  string
	OutputColor   bool
	MaxDepth      int
	ReplPrompt    string
	ReplHistory   int
	WatchDebounce time.Duration
}

// Defaults returns the nested default map used for discovery.
func Defaults() map[string]interface{} {
	return map[string]interface{}{
		"log": map[string]interface{}{
			"level":  "warn",
			"format": "console",
		},
		"output": map[string]interface{}{
			"format": "text",
			"color":  true,
		},
		"parser": map[string]interface{}{
			"max_depth": 512,
		},
		"repl": map[string]interface{}{
			"prompt":  "koy > ",
			"history": 200,
		},
		"watch": map[string]interface{}{
			"debounce": "200ms",
		},
	}
}

// SettingsFrom reads the typed settings out of cfg.
func SettingsFrom(cfg *Config) Settings {
	return Settings{
		LogLevel:      cfg.GetString(KeyLogLevel, "warn"),
		LogFormat:     cfg.GetString(KeyLogFormat, "console"),
		OutputFormat:  strings.ToLower(cfg.GetString(KeyOutputFormat, "text")),
		OutputColor:   cfg.GetBool(KeyOutputColor, true),
		MaxDepth:      cfg.GetInt(KeyParserDepth, 512),
		ReplPrompt:    cfg.GetString(KeyReplPrompt, "koy > "),
		ReplHistory:   cfg.GetInt(KeyReplHistory, 200),
		WatchDebounce: cfg.GetDuration(KeyWatchDebounce, 200*time.Millisecond),
	}
}

// Validate rejects settings the CLI cannot honour.
func (s Settings) Validate() error {
	switch s.OutputFormat {
	case "text", "json", "yaml", "toml":
	default:
		return invalid(KeyOutputFormat, s.OutputFormat, "expected text, json, yaml or toml")
	}
	if s.MaxDepth < 1 {
		return invalid(KeyParserDepth, s.MaxDepth, "must be positive")
	}
	if s.ReplHistory < 0 {
		return invalid(KeyReplHistory, s.ReplHistory, "must not be negative")
	}
	if s.WatchDebounce < 0 {
		return invalid(KeyWatchDebounce, s.WatchDebounce, "must not be negative")
	}
	return nil
}

func invalid(key string, value interface{}, reason string) error {
	return koyerror.New(fmt.Sprintf("invalid %s %v: %s", key, value, reason)).
		WithCode(koyerror.CodeInvalidConfig).
		WithOperation("config.Settings.Validate").
		WithDetail("key", key)
}
