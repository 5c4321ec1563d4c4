// ============================================================================
// koy - Configuration Language Toolchain
// ============================================================================
//
// Package:     repl
// Description: Commands and message types for async evaluation in the REPL
// Author:      msto63
// Created:     2026-10-15
// License:     MIT
// ============================================================================

package repl

import (
	"strings"
	"time"

	"github.com/msto63/koy/foundation/koy"
)

// CommandKind classifies an input line
type CommandKind int

const (
	CommandEmpty CommandKind = iota
	CommandExit
	CommandFile
	CommandEval
)

// Command is a parsed input line
type Command struct {
	Kind CommandKind
	Arg  string
}

// ParseCommand classifies one line of REPL input. "exit" quits, "file <name>"
// loads <name>.koy, anything else is koy source.
func ParseCommand(line string) Command {
	trimmed := strings.TrimSpace(line)
	switch {
	case trimmed == "":
		return Command{Kind: CommandEmpty}
	case trimmed == "exit":
		return Command{Kind: CommandExit}
	case strings.HasPrefix(trimmed, "file "):
		name := strings.TrimSpace(strings.TrimPrefix(trimmed, "file "))
		name = strings.TrimSpace(strings.TrimSuffix(name, koy.Extension))
		return Command{Kind: CommandFile, Arg: name}
	default:
		return Command{Kind: CommandEval, Arg: trimmed}
	}
}

// entryKind selects how a transcript entry is rendered
type entryKind int

const (
	entryInput entryKind = iota
	entryResult
	entryError
	entryInfo
)

// entry is one block of the transcript
type entry struct {
	kind     entryKind
	text     string
	snippet  string
	duration time.Duration
}

// Message types for tea.Cmd async operations

// evalResultMsg is sent when an evaluation finishes
type evalResultMsg struct {
	output   string
	err      error
	duration time.Duration
}
