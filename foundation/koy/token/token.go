// File: token.go
// Title: koy Tokens
// Description: Token kinds produced by the lexer and consumed by the parser.
//              A token carries its kind, an optional literal value and the
//              span it was read from.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-15
// Modified: 2026-10-15
//
// Change History:
// - 2026-10-15 v0.1.0: Initial token set

package token

import (
	"fmt"

	"github.com/msto63/koy/foundation/koy/source"
)

// Kind identifies the lexical class of a token
type Kind int

const (
	COMMENT Kind = iota
	IMPORT
	ASSIGN
	INT
	FLOAT
	STRING
	IDENT
	OPEN_OBJ
	CLOSE_OBJ
	OPEN_ARR
	CLOSE_ARR
	ARR_SEP
	BOOL
	NULL
	EOF
	ILLEGAL
	PLUS
	MINUS
	STAR
	SLASH
	LPAREN
	RPAREN
)

var kindNames = [...]string{
	COMMENT:   "COMMENT",
	IMPORT:    "IMPORT",
	ASSIGN:    "ASSIGN",
	INT:       "INT",
	FLOAT:     "FLOAT",
	STRING:    "STRING",
	IDENT:     "IDENT",
	OPEN_OBJ:  "OPEN_OBJ",
	CLOSE_OBJ: "CLOSE_OBJ",
	OPEN_ARR:  "OPEN_ARR",
	CLOSE_ARR: "CLOSE_ARR",
	ARR_SEP:   "ARR_SEP",
	BOOL:      "BOOL",
	NULL:      "NULL",
	EOF:       "EOF",
	ILLEGAL:   "ILLEGAL",
	PLUS:      "PLUS",
	MINUS:     "MINUS",
	STAR:      "STAR",
	SLASH:     "SLASH",
	LPAREN:    "LPAREN",
	RPAREN:    "RPAREN",
}

// String returns the upper-case kind name
func (k Kind) String() string {
	if k >= 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Symbol returns how the kind is written in error messages: the literal
// punctuation for single-character tokens, the lower-case name otherwise.
func (k Kind) Symbol() string {
	switch k {
	case ASSIGN:
		return "':'"
	case OPEN_OBJ:
		return "'{'"
	case CLOSE_OBJ:
		return "'}'"
	case OPEN_ARR:
		return "'['"
	case CLOSE_ARR:
		return "']'"
	case ARR_SEP:
		return "','"
	case PLUS:
		return "'+'"
	case MINUS:
		return "'-'"
	case STAR:
		return "'*'"
	case SLASH:
		return "'/'"
	case LPAREN:
		return "'('"
	case RPAREN:
		return "')'"
	case EOF:
		return "end of input"
	case IDENT:
		return "identifier"
	case STRING:
		return "string"
	case INT, FLOAT:
		return "number"
	case BOOL:
		return "boolean"
	case NULL:
		return "null"
	case IMPORT:
		return "import"
	case COMMENT:
		return "comment"
	default:
		return k.String()
	}
}

// Token is a lexeme with its position. Value is int64 for INT, float64 for
// FLOAT, string for STRING, IDENT and COMMENT, bool for BOOL and nil
// otherwise.
type Token struct {
	Kind  Kind
	Value any
	Start source.Position
	End   source.Position
}

// New creates a single-character token ending one byte after start
func New(kind Kind, value any, start source.Position) Token {
	return Token{Kind: kind, Value: value, Start: start, End: start.Next()}
}

// NewSpan creates a token covering [start, end)
func NewSpan(kind Kind, value any, start, end source.Position) Token {
	return Token{Kind: kind, Value: value, Start: start, End: end}
}

// Is reports whether the token has the given kind
func (t Token) Is(kind Kind) bool {
	return t.Kind == kind
}

// Text returns the source text the token was read from
func (t Token) Text() string {
	return source.NewSpan(t.Start, t.End).Text()
}

// String renders KIND or KIND:value
func (t Token) String() string {
	if t.Value == nil {
		return t.Kind.String()
	}
	return fmt.Sprintf("%s:%v", t.Kind, t.Value)
}
