// File: codes.go
// Title: Error Code Definitions
// Description: Standardized error codes used across koy packages. The KOY_*
//              codes classify diagnostics raised by the language pipeline.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-15
// Modified: 2026-10-15
//
// Change History:
// - 2026-10-15 v0.1.0: Initial code set

package error

// Code represents a structured error code for categorizing errors
type Code string

const (
	// Generic codes
	CodeUnknown      Code = "UNKNOWN"
	CodeInternal     Code = "INTERNAL"
	CodeNotFound     Code = "NOT_FOUND"
	CodeInvalidInput Code = "INVALID_INPUT"

	// Language pipeline
	CodeKoyLexical Code = "KOY_LEXICAL"
	CodeKoySyntax  Code = "KOY_SYNTAX"
	CodeKoyRuntime Code = "KOY_RUNTIME"

	// Configuration and environment
	CodeConfigError   Code = "CONFIG_ERROR"
	CodeInvalidConfig Code = "INVALID_CONFIG"

	// Output
	CodeEncodingFailed Code = "ENCODING_FAILED"
)

// String returns the string representation of the error code
func (c Code) String() string {
	return string(c)
}

// IsPipelineCode reports whether the code belongs to a language diagnostic.
func (c Code) IsPipelineCode() bool {
	switch c {
	case CodeKoyLexical, CodeKoySyntax, CodeKoyRuntime:
		return true
	default:
		return false
	}
}
