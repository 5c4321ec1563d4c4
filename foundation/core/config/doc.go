// Package config provides configuration loading for the koy toolchain.
//
// Package: config
// Title: koy Configuration
// Description: Loads TOML or YAML settings files, exposes dotted-key getters
//              with defaults, lets environment variables override file
//              values and maps the result onto the typed Settings used by the
//              CLI.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-15
// Modified: 2026-10-15
//
// Change History:
// - 2026-10-15 v0.1.0: Initial implementation
//
// Usage:
//   import koyconfig "github.com/msto63/koy/foundation/core/config"
//
//   cfg, err := koyconfig.Discover(koyconfig.DefaultDiscoveryOptions())
//   settings := koyconfig.SettingsFrom(cfg)
//
// Environment overrides use the prefix and the upper-cased key with dots
// replaced by underscores: log.level is read from KOY_LOG_LEVEL.
package config
