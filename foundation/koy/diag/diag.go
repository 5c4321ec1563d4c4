// File: diag.go
// Title: Positioned Diagnostics
// Description: The three error kinds raised by the koy pipeline (illegal
//              character, invalid syntax, runtime error). Each carries the
//              span it was raised at and renders as
//              "{kind}: {details}\nFile \"{file}\", line {n}".
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-15
// Modified: 2026-10-15
//
// Change History:
// - 2026-10-15 v0.1.0: Initial diagnostics with caret snippets

package diag

import (
	"fmt"
	"strings"

	koyerror "github.com/msto63/koy/foundation/core/error"
	"github.com/msto63/koy/foundation/koy/source"
)

// Kind classifies a diagnostic by the stage that raised it.
type Kind int

const (
	IllegalChar Kind = iota
	InvalidSyntax
	Runtime
)

// String returns the name used when rendering the diagnostic.
func (k Kind) String() string {
	switch k {
	case IllegalChar:
		return "illegal character"
	case InvalidSyntax:
		return "invalid syntax"
	case Runtime:
		return "runtime error"
	default:
		return "unknown error"
	}
}

// Code maps the kind to its structured error code.
func (k Kind) Code() koyerror.Code {
	switch k {
	case IllegalChar:
		return koyerror.CodeKoyLexical
	case InvalidSyntax:
		return koyerror.CodeKoySyntax
	case Runtime:
		return koyerror.CodeKoyRuntime
	default:
		return koyerror.CodeUnknown
	}
}

// Error is a diagnostic tied to a span of source text.
type Error struct {
	Kind    Kind
	Start   source.Position
	End     source.Position
	Details string

	// Context is the evaluation path of a runtime error, such as
	// <program>.server.port. It is not part of the rendered message.
	Context string
}

// NewIllegalChar reports an unrecognized character.
func NewIllegalChar(start, end source.Position, details string) *Error {
	return &Error{Kind: IllegalChar, Start: start, End: end, Details: details}
}

// NewInvalidSyntax reports an unexpected token.
func NewInvalidSyntax(start, end source.Position, details string) *Error {
	return &Error{Kind: InvalidSyntax, Start: start, End: end, Details: details}
}

// NewRuntime reports a failure while evaluating a tree.
func NewRuntime(start, end source.Position, details string) *Error {
	return &Error{Kind: Runtime, Start: start, End: end, Details: details}
}

// Error renders the diagnostic the way the REPL prints it.
func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s\nFile \"%s\", line %d", e.Kind, e.Details, e.Start.Filename, e.Start.Line+1)
}

// Span returns the range the diagnostic covers.
func (e *Error) Span() source.Span {
	return source.NewSpan(e.Start, e.End)
}

// Snippet renders the offending source line with a caret underline. Spans
// crossing a line break are underlined to the end of the first line.
func (e *Error) Snippet() string {
	line := e.Start.LineText()
	if line == "" && e.Start.AtEnd() && len(e.Start.Source) == 0 {
		return ""
	}

	width := e.End.Index - e.Start.Index
	if e.End.Line != e.Start.Line || width < 1 {
		width = len(line) - e.Start.Column
	}
	if width < 1 {
		width = 1
	}

	gutter := fmt.Sprintf("%4d | ", e.Start.Line+1)
	var b strings.Builder
	b.WriteString(gutter)
	b.WriteString(line)
	b.WriteByte('\n')
	b.WriteString(strings.Repeat(" ", len(gutter)-2))
	b.WriteString("| ")
	b.WriteString(strings.Repeat(" ", e.Start.Column))
	b.WriteString(strings.Repeat("^", width))
	return b.String()
}

// CoreError converts the diagnostic into a structured error for logging.
func (e *Error) CoreError() *koyerror.Error {
	err := koyerror.New(fmt.Sprintf("%s: %s", e.Kind, e.Details)).
		WithCode(e.Kind.Code()).
		WithDetail("file", e.Start.Filename).
		WithDetail("line", e.Start.Line+1).
		WithDetail("column", e.Start.Column+1)
	if e.Context != "" {
		err = err.WithDetail("context", e.Context)
	}
	return err
}
