// Package koy evaluates koy configuration documents.
//
// Package: koy
// Title: koy Pipeline
// Description: Front door to the koy toolchain. Run chains the lexer, parser
//              and interpreter for one source unit; Engine adds logging, run
//              ids and file loading; the encoders render evaluated values as
//              text, JSON, YAML or TOML.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-15
// Modified: 2026-10-15
//
// Change History:
// - 2026-10-15 v0.1.0: Initial pipeline
//
// Usage:
//   value, err := koy.Run("stdin", `{name: "koy", answer: 6 * 7}`)
//   if err != nil {
//     fmt.Println(err)       // illegal character / invalid syntax / runtime error
//     fmt.Println(err.Snippet())
//     return
//   }
//   out, _ := koy.EncodeJSON(value)
//
// Each call builds fresh lexer, parser and interpreter state, so the same
// input always yields the same result and concurrent calls never interfere.
package koy
