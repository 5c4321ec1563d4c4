// File: severity.go
// Title: Error Severity Levels
// Description: Severity levels attached to errors so the logger can choose
//              an appropriate level when recording them.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-15
// Modified: 2026-10-15
//
// Change History:
// - 2026-10-15 v0.1.0: Initial implementation with severity levels

package error

// Severity represents the severity level of an error
type Severity int

const (
	// SeverityLow marks problems in user input, such as a malformed source file
	SeverityLow Severity = iota

	// SeverityMedium marks failures that stop one operation
	SeverityMedium

	// SeverityHigh marks failures that stop the tool
	SeverityHigh

	// SeverityCritical marks broken invariants
	SeverityCritical
)

// String returns the string representation of the severity level
func (s Severity) String() string {
	switch s {
	case SeverityLow:
		return "low"
	case SeverityMedium:
		return "medium"
	case SeverityHigh:
		return "high"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// GetSeverityFromCode determines appropriate severity level based on error code
func GetSeverityFromCode(code Code) Severity {
	switch code {
	case CodeInternal:
		return SeverityHigh
	case CodeConfigError, CodeInvalidConfig, CodeEncodingFailed:
		return SeverityMedium
	case CodeKoyLexical, CodeKoySyntax, CodeKoyRuntime, CodeNotFound, CodeInvalidInput:
		return SeverityLow
	default:
		return SeverityMedium
	}
}
