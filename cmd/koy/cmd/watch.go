// ============================================================================
// koy - Configuration Language Toolchain
// ============================================================================
//
// Package:     cmd
// Description: CLI command to re-evaluate a file on change
// Author:      msto63
// Created:     2026-10-15
// License:     MIT
// ============================================================================

package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/msto63/koy/foundation/koy"
	"github.com/msto63/koy/internal/watch"
)

var watchCmd = &cobra.Command{
	Use:   "watch <file>",
	Short: "Re-evaluate a file whenever it changes",
	Long: `Evaluates a .koy file, then evaluates it again every time it is saved.
Changes are coalesced until the file has been quiet for watch.debounce.

Examples:
  koy watch config
  koy watch --format json service.koy`,
	Args: cobra.ExactArgs(1),
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	out, errOut := cmd.OutOrStdout(), cmd.ErrOrStderr()
	var mu sync.Mutex

	w, err := watch.New(args[0], watch.Options{
		Engine:   newEngine(),
		Logger:   logger,
		Debounce: settings.WatchDebounce,
		OnResult: func(r watch.Result) {
			mu.Lock()
			defer mu.Unlock()

			header := fmt.Sprintf("[%s] %s (%s)", r.Time.Format("15:04:05"), r.Path, r.Duration.Round(time.Microsecond))
			fmt.Fprintln(out, paint(titleStyle, header))
			if r.Err != nil {
				reportError(errOut, r.Err)
				return
			}
			if err := koy.Write(out, r.Value, format()); err != nil {
				reportError(errOut, err)
			}
		},
	})
	if err != nil {
		return err
	}

	return w.Run(ctx)
}
