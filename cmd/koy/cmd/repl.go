// ============================================================================
// koy - Configuration Language Toolchain
// ============================================================================
//
// Package:     cmd
// Description: CLI command for the koy REPL
// Author:      msto63
// Created:     2026-10-15
// License:     MIT
// ============================================================================

package cmd

import (
	"github.com/spf13/cobra"

	"github.com/msto63/koy/internal/repl"
)

var replNoHistory bool

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Start the interactive koy REPL",
	Long: `Starts an interactive read-eval-print loop.

Each line is evaluated as its own source unit named "stdin".

Commands:
  file <name>  evaluate <name>.koy
  exit         quit

Keys:
  Enter       evaluate
  ↑/↓         input history
  PgUp/PgDn   scroll
  Ctrl+C      quit`,
	Args: cobra.NoArgs,
	RunE: runRepl,
}

func init() {
	rootCmd.AddCommand(replCmd)

	replCmd.Flags().BoolVar(&replNoHistory, "no-history", false, "do not load or save input history")
}

func runRepl(cmd *cobra.Command, args []string) error {
	cfg := repl.Config{
		Prompt:       settings.ReplPrompt,
		Format:       format(),
		HistoryFile:  repl.DefaultHistoryPath(),
		HistoryLimit: settings.ReplHistory,
		MaxDepth:     settings.MaxDepth,
		Logger:       logger,
	}
	if replNoHistory || settings.ReplHistory == 0 {
		cfg.HistoryFile = ""
	}
	return repl.Run(cfg)
}
