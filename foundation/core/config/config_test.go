// File: config_test.go
// Title: Configuration Tests
// Description: Tests for loading, dotted lookups, environment overrides,
//              discovery and typed settings.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-15
// Modified: 2026-10-15
//
// Change History:
// - 2026-10-15 v0.1.0: Initial test suite

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	koyerror "github.com/msto63/koy/foundation/core/error"
)

const sampleTOML = `
[log]
level = "debug"

[output]
format = "json"
color = false

[parser]
max_depth = 64

[watch]
debounce = "1s"
`

const sampleYAML = `
log:
  level: info
output:
  format: yaml
repl:
  history: 10
`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

func TestLoad_Formats(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name      string
		file      string
		content   string
		wantLevel string
		wantFmt   Format
	}{
		{"toml", "koy.toml", sampleTOML, "debug", FormatTOML},
		{"yaml", "koy.yaml", sampleYAML, "info", FormatYAML},
		{"yml", "koy.yml", sampleYAML, "info", FormatYAML},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Load(writeFile(t, dir, tt.file, tt.content))
			if err != nil {
				t.Fatalf("Load() error = %v", err)
			}
			if got := cfg.GetString(KeyLogLevel); got != tt.wantLevel {
				t.Errorf("log.level = %q, want %q", got, tt.wantLevel)
			}
			if cfg.Format() != tt.wantFmt {
				t.Errorf("Format() = %v, want %v", cfg.Format(), tt.wantFmt)
			}
		})
	}
}

func TestLoad_Errors(t *testing.T) {
	dir := t.TempDir()

	if _, err := Load(""); !koyerror.HasCode(err, koyerror.CodeInvalidConfig) {
		t.Errorf("empty path: error = %v", err)
	}
	if _, err := Load(filepath.Join(dir, "missing.toml")); !koyerror.HasCode(err, koyerror.CodeNotFound) {
		t.Errorf("missing file: error = %v", err)
	}
	bad := writeFile(t, dir, "bad.toml", "[log\nlevel=")
	if _, err := Load(bad); !koyerror.HasCode(err, koyerror.CodeInvalidConfig) {
		t.Errorf("bad toml: error = %v", err)
	}
}

func TestGetters(t *testing.T) {
	cfg, err := LoadFromString(sampleTOML, FormatTOML)
	if err != nil {
		t.Fatalf("LoadFromString() error = %v", err)
	}

	if got := cfg.GetInt(KeyParserDepth); got != 64 {
		t.Errorf("GetInt() = %d, want 64", got)
	}
	if cfg.GetBool(KeyOutputColor, true) {
		t.Error("GetBool() = true, want false")
	}
	if got := cfg.GetDuration(KeyWatchDebounce); got != time.Second {
		t.Errorf("GetDuration() = %v, want 1s", got)
	}
	if got := cfg.GetString("missing.key", "fallback"); got != "fallback" {
		t.Errorf("GetString() default = %q", got)
	}
	if cfg.Has("log.nope") {
		t.Error("Has() = true for missing key")
	}

	cfg.Set("repl.prompt", ">> ")
	if got := cfg.GetString(KeyReplPrompt); got != ">> " {
		t.Errorf("after Set, prompt = %q", got)
	}
}

func TestEnvOverride(t *testing.T) {
	t.Setenv("KOY_LOG_LEVEL", "error")
	t.Setenv("KOY_PARSER_MAX_DEPTH", "9")

	dir := t.TempDir()
	cfg, err := LoadWithOptions(writeFile(t, dir, "koy.toml", sampleTOML), LoadOptions{
		Format:    FormatAuto,
		EnvPrefix: EnvPrefix,
	})
	if err != nil {
		t.Fatalf("LoadWithOptions() error = %v", err)
	}

	if got := cfg.GetString(KeyLogLevel); got != "error" {
		t.Errorf("log.level = %q, want env value", got)
	}
	if got := cfg.GetInt(KeyParserDepth); got != 9 {
		t.Errorf("parser.max_depth = %d, want 9", got)
	}
}

func TestDefaultsMergeUnderFile(t *testing.T) {
	dir := t.TempDir()
	cfg, err := LoadWithOptions(writeFile(t, dir, "koy.yaml", sampleYAML), LoadOptions{
		Format:   FormatAuto,
		Defaults: Defaults(),
	})
	if err != nil {
		t.Fatalf("LoadWithOptions() error = %v", err)
	}

	s := SettingsFrom(cfg)
	if s.LogLevel != "info" {
		t.Errorf("LogLevel = %q, want file value", s.LogLevel)
	}
	if s.LogFormat != "console" {
		t.Errorf("LogFormat = %q, want default kept next to file key", s.LogFormat)
	}
	if s.ReplHistory != 10 {
		t.Errorf("ReplHistory = %d, want 10", s.ReplHistory)
	}
	if s.WatchDebounce != 200*time.Millisecond {
		t.Errorf("WatchDebounce = %v", s.WatchDebounce)
	}
}

func TestDiscover(t *testing.T) {
	dir := t.TempDir()
	opts := DiscoveryOptions{
		Paths:     []string{filepath.Join(dir, "none"), dir},
		Filenames: []string{"koy"},
		Defaults:  Defaults(),
	}

	cfg, err := Discover(opts)
	if err != nil {
		t.Fatalf("Discover() without file error = %v", err)
	}
	if cfg.FilePath() != "" || SettingsFrom(cfg).OutputFormat != "text" {
		t.Errorf("expected defaults-only config, got %q", cfg.FilePath())
	}

	path := writeFile(t, dir, "koy.yaml", sampleYAML)
	cfg, err = Discover(opts)
	if err != nil {
		t.Fatalf("Discover() error = %v", err)
	}
	if cfg.FilePath() != path {
		t.Errorf("FilePath() = %q, want %q", cfg.FilePath(), path)
	}

	opts.Paths = []string{filepath.Join(dir, "none")}
	opts.Required = true
	if _, err := Discover(opts); !koyerror.HasCode(err, koyerror.CodeNotFound) {
		t.Errorf("required discovery error = %v", err)
	}
}

func TestSettings_Validate(t *testing.T) {
	valid := SettingsFrom(Empty("", Defaults()))
	if err := valid.Validate(); err != nil {
		t.Fatalf("defaults invalid: %v", err)
	}

	tests := []struct {
		name   string
		mutate func(*Settings)
	}{
		{"output format", func(s *Settings) { s.OutputFormat = "xml" }},
		{"max depth", func(s *Settings) { s.MaxDepth = 0 }},
		{"history", func(s *Settings) { s.ReplHistory = -1 }},
		{"debounce", func(s *Settings) { s.WatchDebounce = -time.Second }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := valid
			tt.mutate(&s)
			if err := s.Validate(); !koyerror.HasCode(err, koyerror.CodeInvalidConfig) {
				t.Errorf("Validate() = %v, want invalid config", err)
			}
		})
	}
}
