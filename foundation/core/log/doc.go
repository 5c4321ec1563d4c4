// Package log provides structured logging for the koy toolchain.
//
// Package: log
// Title: koy Structured Logging
// Description: Leveled, structured logging with JSON, text, console and
//              logfmt output. Integrates with the core error package so a
//              structured error is logged at a level derived from its
//              severity, and carries stage timers used by the pipeline.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-15
// Modified: 2026-10-15
//
// Change History:
// - 2026-10-15 v0.1.0: Initial implementation for the koy pipeline
//
// Usage:
//   import koylog "github.com/msto63/koy/foundation/core/log"
//
//   logger := koylog.New().
//     WithLevel(koylog.LevelDebug).
//     WithFormat(koylog.FormatConsole).
//     WithField("run_id", id)
//
//   timer := logger.StartTimer("parse")
//   node, err := parser.Parse(tokens)
//   if err != nil {
//     timer.StopWithError(err)
//   } else {
//     timer.Stop()
//   }
package log
