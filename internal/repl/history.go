// ============================================================================
// koy - Configuration Language Toolchain
// ============================================================================
//
// Package:     repl
// Description: Input history persistence for the REPL
// Author:      msto63
// Created:     2026-10-15
// License:     MIT
// ============================================================================

package repl

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// historyFile is the on-disk history format
type historyFile struct {
	InputHistory []string `json:"input_history,omitempty"`
}

// DefaultHistoryPath returns the history file in the user config directory
func DefaultHistoryPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		home, homeErr := os.UserHomeDir()
		if homeErr != nil {
			return filepath.Join(".koy", "history.json")
		}
		dir = home
	}
	return filepath.Join(dir, "koy", "history.json")
}

// LoadHistory loads the input history. A missing or corrupt file yields an
// empty history.
func LoadHistory(path string) []string {
	if path == "" {
		return []string{}
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return []string{}
	}

	var file historyFile
	if err := json.Unmarshal(data, &file); err != nil {
		return []string{}
	}
	return file.InputHistory
}

// SaveHistory saves the newest limit entries of history to path
func SaveHistory(path string, history []string, limit int) error {
	if path == "" {
		return nil
	}
	if limit > 0 && len(history) > limit {
		history = history[len(history)-limit:]
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(historyFile{InputHistory: history}, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
