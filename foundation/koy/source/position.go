// File: position.go
// Title: Source Positions and Spans
// Description: Defines the cursor used by the koy lexer and the positions
//              attached to every token, node, value and error. A Position is
//              a plain value: copying it never aliases the cursor it came from.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-15
// Modified: 2026-10-15
//
// Change History:
// - 2026-10-15 v0.1.0: Initial position model

package source

import "fmt"

// Position identifies a byte in a source unit. Line and Column are 0-based.
type Position struct {
	Index    int    // Byte offset into Source
	Line     int    // Line number (0-based)
	Column   int    // Column number (0-based)
	Filename string // Name of the source unit ("stdin" when no file backs it)
	Source   string // Full text of the source unit
}

// Start returns the cursor positioned on the first byte of src.
func Start(filename, src string) Position {
	return Position{Filename: filename, Source: src}
}

// Advance moves the cursor past ch, which must be the byte at the current
// index. Passing a newline starts a new line.
func (p *Position) Advance(ch byte) {
	p.Index++
	p.Column++
	if ch == '\n' {
		p.Line++
		p.Column = 0
	}
}

// Next returns a copy of p advanced past the byte it points at.
func (p Position) Next() Position {
	var ch byte
	if p.Index < len(p.Source) {
		ch = p.Source[p.Index]
	}
	p.Advance(ch)
	return p
}

// Char returns the byte at the position and whether one exists.
func (p Position) Char() (byte, bool) {
	if p.Index < 0 || p.Index >= len(p.Source) {
		return 0, false
	}
	return p.Source[p.Index], true
}

// AtEnd reports whether the position is past the last byte.
func (p Position) AtEnd() bool {
	return p.Index >= len(p.Source)
}

// LineText returns the full text of the line the position is on, without
// the trailing newline.
func (p Position) LineText() string {
	if len(p.Source) == 0 {
		return ""
	}
	idx := p.Index
	if idx > len(p.Source) {
		idx = len(p.Source)
	}
	start := idx
	for start > 0 && p.Source[start-1] != '\n' {
		start--
	}
	end := idx
	for end < len(p.Source) && p.Source[end] != '\n' {
		end++
	}
	text := p.Source[start:end]
	if n := len(text); n > 0 && text[n-1] == '\r' {
		text = text[:n-1]
	}
	return text
}

// String renders the position as file:line:column using 1-based numbers.
func (p Position) String() string {
	return fmt.Sprintf("%s:%d:%d", p.Filename, p.Line+1, p.Column+1)
}

// Span is a half-open range [Start, End) within one source unit.
type Span struct {
	Start Position
	End   Position
}

// NewSpan builds a span from two positions.
func NewSpan(start, end Position) Span {
	return Span{Start: start, End: end}
}

// Len returns the number of bytes covered by the span.
func (s Span) Len() int {
	if s.End.Index < s.Start.Index {
		return 0
	}
	return s.End.Index - s.Start.Index
}

// Text returns the source text covered by the span.
func (s Span) Text() string {
	src := s.Start.Source
	lo, hi := s.Start.Index, s.End.Index
	if lo < 0 {
		lo = 0
	}
	if hi > len(src) {
		hi = len(src)
	}
	if lo >= hi {
		return ""
	}
	return src[lo:hi]
}

func (s Span) String() string {
	return fmt.Sprintf("%s-%d:%d", s.Start, s.End.Line+1, s.End.Column+1)
}
