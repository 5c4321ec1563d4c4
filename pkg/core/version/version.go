// ============================================================================
// koy - Configuration Language Toolchain
// ============================================================================
//
// Package:     version
// Description: Central version management for the koy toolchain
// Author:      msto63
// Created:     2026-10-15
// License:     MIT
// ============================================================================

package version

import (
	"fmt"
	"runtime"
)

// Version constants for the koy toolchain
const (
	// Tool is the release version of the koy command
	Tool = "0.1.0"

	// Component versions
	Lexer       = "0.1.0"
	Parser      = "0.1.0"
	Interpreter = "0.1.0"
	Language    = "0.1.0"
)

// Build metadata, set with -ldflags "-X github.com/msto63/koy/pkg/core/version.Commit=..."
var (
	Commit    = "dev"
	BuildDate = "unknown"
)

// ComponentVersion returns the version for a given component name
func ComponentVersion(name string) string {
	switch name {
	case "lexer":
		return Lexer
	case "parser":
		return Parser
	case "interpreter":
		return Interpreter
	case "language":
		return Language
	default:
		return Tool
	}
}

// String returns the one-line version banner
func String() string {
	return fmt.Sprintf("koy %s (language %s, commit %s, built %s, %s %s/%s)",
		Tool, Language, Commit, BuildDate, runtime.Version(), runtime.GOOS, runtime.GOARCH)
}
