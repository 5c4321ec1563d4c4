// Package error provides structured, coded errors for koy tooling.
//
// Package: error
// Title: koy Error Handling Framework
// Description: Structured errors with codes, severity and detail maps. The
//              language pipeline reports its own positioned diagnostics; this
//              package is what those diagnostics are converted into when they
//              reach logging, configuration and file handling.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-15
// Modified: 2026-10-15
//
// Change History:
// - 2026-10-15 v0.1.0: Initial implementation with contextual errors and codes
//
// Usage:
//
//	err := error.New("source file not found").
//		WithCode(error.CodeNotFound).
//		WithDetail("path", "settings.koy")
//
//	wrapped := error.Wrap(ioErr, "failed to read source").
//		WithCode(error.CodeInternal).
//		WithOperation("koy.RunFile")
//
//	if error.HasCode(err, error.CodeNotFound) {
//		// report a missing file
//	}
package error
