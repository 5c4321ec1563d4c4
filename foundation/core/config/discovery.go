// File: discovery.go
// Title: Configuration Discovery
// Description: Locates a koy settings file in the usual places and loads it,
//              falling back to defaults plus environment when none exists.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-15
// Modified: 2026-10-15
//
// Change History:
// - 2026-10-15 v0.1.0: Initial discovery

package config

import (
	"os"
	"path/filepath"

	koyerror "github.com/msto63/koy/foundation/core/error"
)

// DiscoveryOptions defines options for automatic configuration file discovery
type DiscoveryOptions struct {
	Paths      []string               // Directories to search for config files
	Filenames  []string               // Base filenames to look for (without extension)
	Extensions []string               // File extensions to try (.toml, .yaml, .yml)
	EnvPrefix  string                 // Environment variable prefix for overrides
	Defaults   map[string]interface{} // Values used when a key is set nowhere else
	Required   bool                   // Whether finding a config file is required
}

// DefaultDiscoveryOptions searches the working directory, then the user
// config directory, for koy.toml / koy.yaml.
func DefaultDiscoveryOptions() DiscoveryOptions {
	paths := []string{"."}
	if dir, err := os.UserConfigDir(); err == nil {
		paths = append(paths, filepath.Join(dir, "koy"))
	}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".koy"))
	}
	return DiscoveryOptions{
		Paths:      paths,
		Filenames:  []string{"koy"},
		Extensions: []string{".toml", ".yaml", ".yml"},
		EnvPrefix:  EnvPrefix,
		Defaults:   Defaults(),
	}
}

// Discover finds and loads the first matching configuration file. When none
// exists and the file is not required, an empty configuration carrying the
// defaults and environment is returned.
func Discover(options DiscoveryOptions) (*Config, error) {
	if len(options.Paths) == 0 {
		options.Paths = []string{"."}
	}
	if len(options.Extensions) == 0 {
		options.Extensions = []string{".toml", ".yaml", ".yml"}
	}

	path, err := FindConfigFile(options)
	if err != nil {
		if options.Required {
			return nil, err
		}
		return Empty(options.EnvPrefix, options.Defaults), nil
	}

	return LoadWithOptions(path, LoadOptions{
		Format:    FormatAuto,
		EnvPrefix: options.EnvPrefix,
		Defaults:  options.Defaults,
	})
}

// FindConfigFile returns the first existing candidate file
func FindConfigFile(options DiscoveryOptions) (string, error) {
	candidates := ListPossibleConfigFiles(options)
	for _, candidate := range candidates {
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, nil
		}
	}
	return "", koyerror.New("no configuration file found").
		WithCode(koyerror.CodeNotFound).
		WithOperation("config.FindConfigFile").
		WithDetail("candidates", candidates)
}

// ListPossibleConfigFiles lists candidate paths in search order
func ListPossibleConfigFiles(options DiscoveryOptions) []string {
	var files []string
	for _, dir := range options.Paths {
		for _, name := range options.Filenames {
			for _, ext := range options.Extensions {
				files = append(files, filepath.Join(dir, name+ext))
			}
		}
	}
	return files
}
