// File: config.go
// Title: Configuration Loader
// Description: Thread-safe configuration container backed by a nested map
//              decoded from TOML or YAML. Lookups use dot notation and
//              consult the environment first.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-15
// Modified: 2026-10-15
//
// Change History:
// - 2026-10-15 v0.1.0: Initial loader with env overrides

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	koyerror "github.com/msto63/koy/foundation/core/error"
)

// Format represents the configuration file format
type Format int

const (
	// FormatTOML represents TOML format (default)
	FormatTOML Format = iota

	// FormatYAML represents YAML format
	FormatYAML

	// FormatAuto auto-detects format from file extension
	FormatAuto
)

// String returns the string representation of the format
func (f Format) String() string {
	switch f {
	case FormatTOML:
		return "toml"
	case FormatYAML:
		return "yaml"
	case FormatAuto:
		return "auto"
	default:
		return "unknown"
	}
}

// Config represents a configuration instance with thread-safe access
type Config struct {
	mu        sync.RWMutex
	data      map[string]interface{}
	filePath  string
	format    Format
	envPrefix string
	lookupEnv func(string) (string, bool)
}

// LoadOptions defines options for loading configuration
type LoadOptions struct {
	Format    Format                 // File format (default: auto-detect)
	EnvPrefix string                 // Environment variable prefix (default: none)
	Defaults  map[string]interface{} // Default values, merged under file values
}

// Load loads configuration from a file with default options
func Load(filePath string) (*Config, error) {
	return LoadWithOptions(filePath, LoadOptions{Format: FormatAuto})
}

// LoadWithOptions loads configuration from a file with custom options
func LoadWithOptions(filePath string, options LoadOptions) (*Config, error) {
	if strings.TrimSpace(filePath) == "" {
		return nil, koyerror.New("config file path cannot be empty").
			WithCode(koyerror.CodeInvalidConfig).
			WithOperation("config.LoadWithOptions")
	}

	content, err := os.ReadFile(filePath)
	if err != nil {
		code := koyerror.CodeConfigError
		if os.IsNotExist(err) {
			code = koyerror.CodeNotFound
		}
		return nil, koyerror.Wrap(err, "failed to read config file").
			WithCode(code).
			WithOperation("config.LoadWithOptions").
			WithDetail("filePath", filePath)
	}

	format := options.Format
	if format == FormatAuto {
		format = detectFormat(filePath)
	}

	data, err := parseContent(content, format)
	if err != nil {
		return nil, koyerror.Wrap(err, "failed to parse config file").
			WithOperation("config.LoadWithOptions").
			WithDetail("filePath", filePath).
			WithDetail("format", format.String())
	}

	cfg := newConfig(mergeDefaults(data, options.Defaults), format, options.EnvPrefix)
	cfg.filePath = filePath
	return cfg, nil
}

// LoadFromString loads configuration from a string with specified format
func LoadFromString(content string, format Format) (*Config, error) {
	if format == FormatAuto {
		format = FormatTOML
	}

	data, err := parseContent([]byte(content), format)
	if err != nil {
		return nil, koyerror.Wrap(err, "failed to parse config from string").
			WithOperation("config.LoadFromString").
			WithDetail("format", format.String())
	}

	return newConfig(data, format, ""), nil
}

// Empty returns a configuration with no file behind it; only defaults and
// the environment contribute values.
func Empty(envPrefix string, defaults map[string]interface{}) *Config {
	return newConfig(mergeDefaults(nil, defaults), FormatAuto, envPrefix)
}

func newConfig(data map[string]interface{}, format Format, envPrefix string) *Config {
	if data == nil {
		data = make(map[string]interface{})
	}
	return &Config{
		data:      data,
		format:    format,
		envPrefix: envPrefix,
		lookupEnv: os.LookupEnv,
	}
}

// detectFormat determines the configuration format from file extension
func detectFormat(filePath string) Format {
	switch strings.ToLower(filepath.Ext(filePath)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatTOML
	}
}

// parseContent parses configuration content based on format
func parseContent(content []byte, format Format) (map[string]interface{}, error) {
	var data map[string]interface{}

	switch format {
	case FormatTOML:
		if err := toml.Unmarshal(content, &data); err != nil {
			return nil, koyerror.Wrap(err, "TOML parse error").
				WithCode(koyerror.CodeInvalidConfig).
				WithOperation("config.parseContent")
		}
	case FormatYAML:
		if err := yaml.Unmarshal(content, &data); err != nil {
			return nil, koyerror.Wrap(err, "YAML parse error").
				WithCode(koyerror.CodeInvalidConfig).
				WithOperation("config.parseContent")
		}
	default:
		return nil, koyerror.New(fmt.Sprintf("unsupported format: %s", format)).
			WithCode(koyerror.CodeInvalidConfig).
			WithOperation("config.parseContent")
	}

	return data, nil
}

// mergeDefaults deep-merges defaults under data; data wins
func mergeDefaults(data, defaults map[string]interface{}) map[string]interface{} {
	result := make(map[string]interface{}, len(defaults)+len(data))
	for k, v := range defaults {
		result[k] = v
	}
	for k, v := range data {
		if sub, ok := v.(map[string]interface{}); ok {
			if base, ok := result[k].(map[string]interface{}); ok {
				result[k] = mergeDefaults(sub, base)
				continue
			}
		}
		result[k] = v
	}
	return result
}

// GetString returns a string configuration value with optional default
func (c *Config) GetString(key string, defaultValue ...string) string {
	if v, ok := c.lookup(key); ok {
		switch val := v.(type) {
		case string:
			return val
		case fmt.Stringer:
			return val.String()
		default:
			return fmt.Sprintf("%v", val)
		}
	}
	if len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return ""
}

// GetInt returns an integer configuration value with optional default
func (c *Config) GetInt(key string, defaultValue ...int) int {
	if v, ok := c.lookup(key); ok {
		switch val := v.(type) {
		case int:
			return val
		case int64:
			return int(val)
		case float64:
			return int(val)
		case string:
			if i, err := strconv.Atoi(strings.TrimSpace(val)); err == nil {
				return i
			}
		}
	}
	if len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return 0
}

// GetBool returns a boolean configuration value with optional default
func (c *Config) GetBool(key string, defaultValue ...bool) bool {
	if v, ok := c.lookup(key); ok {
		switch val := v.(type) {
		case bool:
			return val
		case string:
			if b, err := strconv.ParseBool(strings.TrimSpace(val)); err == nil {
				return b
			}
		}
	}
	if len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return false
}

// GetDuration returns a duration configuration value with optional default.
// Strings use time.ParseDuration syntax; bare numbers are milliseconds.
func (c *Config) GetDuration(key string, defaultValue ...time.Duration) time.Duration {
	if v, ok := c.lookup(key); ok {
		switch val := v.(type) {
		case string:
			if d, err := time.ParseDuration(strings.TrimSpace(val)); err == nil {
				return d
			}
			if ms, err := strconv.Atoi(strings.TrimSpace(val)); err == nil {
				return time.Duration(ms) * time.Millisecond
			}
		case int:
			return time.Duration(val) * time.Millisecond
		case int64:
			return time.Duration(val) * time.Millisecond
		case float64:
			return time.Duration(val * float64(time.Millisecond))
		}
	}
	if len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return 0
}

// Has checks if a configuration key exists in the file, defaults or environment
func (c *Config) Has(key string) bool {
	_, ok := c.lookup(key)
	return ok
}

// Set sets a configuration value (runtime only, not persisted)
func (c *Config) Set(key string, value interface{}) {
	c.mu.Lock()
	defer c.mu.Unlock()

	keys := strings.Split(key, ".")
	current := c.data
	for _, k := range keys[:len(keys)-1] {
		next, ok := current[k].(map[string]interface{})
		if !ok {
			next = make(map[string]interface{})
			current[k] = next
		}
		current = next
	}
	current[keys[len(keys)-1]] = value
}

// FilePath returns the file the configuration was loaded from, if any
func (c *Config) FilePath() string {
	return c.filePath
}

// Format returns the format of the configuration source
func (c *Config) Format() Format {
	return c.format
}

// lookup resolves key from the environment, then the nested data
func (c *Config) lookup(key string) (interface{}, bool) {
	if c.envPrefix != "" {
		if v, ok := c.lookupEnv(c.formatEnvKey(key)); ok {
			return v, true
		}
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	keys := strings.Split(key, ".")
	current := c.data
	for i, k := range keys {
		v, ok := current[k]
		if !ok {
			return nil, false
		}
		if i == len(keys)-1 {
			return v, true
		}
		next, ok := v.(map[string]interface{})
		if !ok {
			return nil, false
		}
		current = next
	}
	return nil, false
}

// formatEnvKey converts a config key to environment variable format:
// log.level with prefix KOY becomes KOY_LOG_LEVEL
func (c *Config) formatEnvKey(key string) string {
	envKey := strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
	if c.envPrefix != "" {
		envKey = strings.ToUpper(strings.TrimSuffix(c.envPrefix, "_")) + "_" + envKey
	}
	return envKey
}
