// File: lexer.go
// Title: koy Lexical Analyzer
// Description: Scans koy source byte by byte, tracking line and column, and
//              produces tokens terminated by a single EOF. The first
//              unrecognized character aborts scanning with an
//              illegal-character error.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-15
// Modified: 2026-10-15
//
// Change History:
// - 2026-10-15 v0.1.0: Initial lexer implementation

package parser

import (
	"fmt"
	"strconv"
	"unicode/utf8"

	"github.com/msto63/koy/foundation/koy/diag"
	"github.com/msto63/koy/foundation/koy/source"
	"github.com/msto63/koy/foundation/koy/token"
)

// keywords maps reserved identifiers to their token kind
var keywords = map[string]token.Kind{
	"import": token.IMPORT,
	"true":   token.BOOL,
	"false":  token.BOOL,
	"null":   token.NULL,
}

// singles maps one-character punctuation to its token kind. '/' is absent
// because it may start a comment.
var singles = map[byte]token.Kind{
	':': token.ASSIGN,
	'{': token.OPEN_OBJ,
	'}': token.CLOSE_OBJ,
	'[': token.OPEN_ARR,
	']': token.CLOSE_ARR,
	',': token.ARR_SEP,
	'+': token.PLUS,
	'-': token.MINUS,
	'*': token.STAR,
	'(': token.LPAREN,
	')': token.RPAREN,
}

// LexerOptions controls what the lexer emits
type LexerOptions struct {
	// KeepComments emits COMMENT tokens instead of dropping them
	KeepComments bool
}

// Lexer performs lexical analysis of koy input
type Lexer struct {
	pos  source.Position // Cursor on the current byte
	ch   byte            // Current byte, 0 at end of input
	eof  bool            // Cursor is past the last byte
	opts LexerOptions
}

// NewLexer creates a new lexer for the given input
func NewLexer(filename, input string, opts LexerOptions) *Lexer {
	l := &Lexer{pos: source.Start(filename, input), opts: opts}
	l.ch, _ = l.pos.Char()
	l.eof = l.pos.AtEnd()
	return l
}

// Tokenize scans src with default options. On failure the token slice is
// empty.
func Tokenize(filename, src string) ([]token.Token, *diag.Error) {
	return NewLexer(filename, src, LexerOptions{}).Tokenize()
}

// Tokenize scans the whole input
func (l *Lexer) Tokenize() ([]token.Token, *diag.Error) {
	var tokens []token.Token
	for {
		tok, err := l.NextToken()
		if err != nil {
			return []token.Token{}, err
		}
		if tok.Is(token.COMMENT) && !l.opts.KeepComments {
			continue
		}
		tokens = append(tokens, tok)
		if tok.Is(token.EOF) {
			return tokens, nil
		}
	}
}

// NextToken returns the next token from the input. After EOF every call
// returns EOF again.
func (l *Lexer) NextToken() (token.Token, *diag.Error) {
	l.skipWhitespace()

	if l.eof {
		return token.New(token.EOF, nil, l.pos), nil
	}

	start := l.pos
	switch {
	case l.ch == '/':
		return l.readSlash(), nil
	case isDigit(l.ch):
		return l.readNumber()
	case isIdentChar(l.ch):
		return l.readIdentifier(), nil
	case l.ch == '"':
		return l.readString()
	}

	if kind, ok := singles[l.ch]; ok {
		l.readChar()
		return token.New(kind, nil, start), nil
	}

	// Span the whole UTF-8 sequence so the error shows one character
	r, size := utf8.DecodeRuneInString(start.Source[start.Index:])
	for i := 0; i < size && !l.eof; i++ {
		l.readChar()
	}
	return token.Token{}, diag.NewIllegalChar(start, l.pos, fmt.Sprintf("'%c'", r))
}

// readChar advances the cursor by one byte
func (l *Lexer) readChar() {
	if l.eof {
		return
	}
	l.pos.Advance(l.ch)
	l.ch, _ = l.pos.Char()
	l.eof = l.pos.AtEnd()
}

// peekChar returns the byte after the current one, 0 at end of input
func (l *Lexer) peekChar() byte {
	ch, _ := l.pos.Next().Char()
	return ch
}

func (l *Lexer) skipWhitespace() {
	for !l.eof && (l.ch == ' ' || l.ch == '\t' || l.ch == '\n' || l.ch == '\r') {
		l.readChar()
	}
}

// readSlash reads a line comment, a block comment or a lone SLASH
func (l *Lexer) readSlash() token.Token {
	start := l.pos
	l.readChar()

	switch l.ch {
	case '/':
		l.readChar()
		textStart := l.pos
		for !l.eof && l.ch != '\n' {
			l.readChar()
		}
		return token.NewSpan(token.COMMENT, source.NewSpan(textStart, l.pos).Text(), start, l.pos)

	case '*':
		l.readChar()
		textStart := l.pos
		for !l.eof {
			if l.ch == '*' && l.peekChar() == '/' {
				text := source.NewSpan(textStart, l.pos).Text()
				l.readChar()
				l.readChar()
				return token.NewSpan(token.COMMENT, text, start, l.pos)
			}
			l.readChar()
		}
		// An unterminated block comment runs to end of input
		return token.NewSpan(token.COMMENT, source.NewSpan(textStart, l.pos).Text(), start, l.pos)

	default:
		return token.New(token.SLASH, nil, start)
	}
}

// readNumber reads digits with at most one '.'; a second '.' ends the
// number and is left for the next token.
func (l *Lexer) readNumber() (token.Token, *diag.Error) {
	start := l.pos
	dots := 0
	for !l.eof && (isDigit(l.ch) || l.ch == '.') {
		if l.ch == '.' {
			if dots == 1 {
				break
			}
			dots++
		}
		l.readChar()
	}

	text := source.NewSpan(start, l.pos).Text()
	if dots == 0 {
		n, err := strconv.ParseInt(text, 10, 64)
		if err != nil {
			return token.Token{}, diag.NewIllegalChar(start, l.pos, fmt.Sprintf("integer literal out of range: %s", text))
		}
		return token.NewSpan(token.INT, n, start, l.pos), nil
	}

	f, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return token.Token{}, diag.NewIllegalChar(start, l.pos, fmt.Sprintf("float literal out of range: %s", text))
	}
	return token.NewSpan(token.FLOAT, f, start, l.pos), nil
}

// readIdentifier reads [A-Za-z_]+ and classifies keywords
func (l *Lexer) readIdentifier() token.Token {
	start := l.pos
	for !l.eof && isIdentChar(l.ch) {
		l.readChar()
	}
	word := source.NewSpan(start, l.pos).Text()

	kind, ok := keywords[word]
	if !ok {
		return token.NewSpan(token.IDENT, word, start, l.pos)
	}
	switch kind {
	case token.BOOL:
		return token.NewSpan(kind, word == "true", start, l.pos)
	default:
		return token.NewSpan(kind, nil, start, l.pos)
	}
}

// readString reads a double-quoted string. There are no escapes, so the
// string ends at the next '"'.
func (l *Lexer) readString() (token.Token, *diag.Error) {
	start := l.pos
	l.readChar()
	textStart := l.pos

	for !l.eof && l.ch != '"' {
		l.readChar()
	}
	if l.eof {
		return token.Token{}, diag.NewIllegalChar(start, l.pos, "unterminated string literal")
	}

	text := source.NewSpan(textStart, l.pos).Text()
	l.readChar()
	return token.NewSpan(token.STRING, text, start, l.pos), nil
}

func isDigit(ch byte) bool {
	return '0' <= ch && ch <= '9'
}

func isIdentChar(ch byte) bool {
	return ('a' <= ch && ch <= 'z') || ('A' <= ch && ch <= 'Z') || ch == '_'
}
