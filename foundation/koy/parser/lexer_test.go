// File: lexer_test.go
// Title: koy Lexer Tests
// Description: Tests for token classification, positions, comments and
//              illegal-character handling.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-15
// Modified: 2026-10-15
//
// Change History:
// - 2026-10-15 v0.1.0: Initial lexer test suite

package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/msto63/koy/foundation/koy/diag"
	"github.com/msto63/koy/foundation/koy/token"
)

func kinds(tokens []token.Token) []token.Kind {
	out := make([]token.Kind, len(tokens))
	for i, tok := range tokens {
		out[i] = tok.Kind
	}
	return out
}

func TestTokenize_OnlyWhitespaceAndComments(t *testing.T) {
	inputs := []string{
		"",
		"   \n\t  ",
		"\r\n\r\n",
		"// line comment",
		"// a\n// b\n",
		"/* block */",
		"/* multi\nline */ // trailing",
		"/* never closed",
		"/**/",
	}

	for _, src := range inputs {
		t.Run(src, func(t *testing.T) {
			tokens, err := Tokenize("stdin", src)
			require.Nil(t, err)
			require.Len(t, tokens, 1)
			assert.Equal(t, token.EOF, tokens[0].Kind)
		})
	}
}

func TestTokenize_Numbers(t *testing.T) {
	tests := []struct {
		src   string
		kind  token.Kind
		value any
	}{
		{"0", token.INT, int64(0)},
		{"42", token.INT, int64(42)},
		{"9223372036854775807", token.INT, int64(9223372036854775807)},
		{"3.5", token.FLOAT, 3.5},
		{"1.", token.FLOAT, 1.0},
		{"0.25", token.FLOAT, 0.25},
	}

	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			tokens, err := Tokenize("stdin", tt.src)
			require.Nil(t, err)
			require.Equal(t, []token.Kind{tt.kind, token.EOF}, kinds(tokens))
			assert.Equal(t, tt.value, tokens[0].Value)
			assert.Equal(t, len(tt.src), tokens[0].End.Index)
		})
	}
}

func TestTokenize_SecondDotEndsNumber(t *testing.T) {
	tokens, err := Tokenize("stdin", "1.2.3")

	assert.Empty(t, tokens)
	require.NotNil(t, err)
	assert.Equal(t, diag.IllegalChar, err.Kind)
	assert.Equal(t, "'.'", err.Details)
	assert.Equal(t, 3, err.Start.Index)
}

func TestTokenize_IntegerOverflow(t *testing.T) {
	_, err := Tokenize("stdin", "[99999999999999999999]")

	require.NotNil(t, err)
	assert.Equal(t, diag.IllegalChar, err.Kind)
	assert.Equal(t, 1, err.Start.Index)
	assert.Equal(t, 21, err.End.Index)
	assert.Contains(t, err.Details, "out of range")
}

func TestTokenize_Keywords(t *testing.T) {
	tokens, err := Tokenize("stdin", "import true false null foo_Bar")
	require.Nil(t, err)

	assert.Equal(t, []token.Kind{token.IMPORT, token.BOOL, token.BOOL, token.NULL, token.IDENT, token.EOF}, kinds(tokens))
	assert.Nil(t, tokens[0].Value)
	assert.Equal(t, true, tokens[1].Value)
	assert.Equal(t, false, tokens[2].Value)
	assert.Nil(t, tokens[3].Value)
	assert.Equal(t, "foo_Bar", tokens[4].Value)
}

func TestTokenize_Punctuation(t *testing.T) {
	tokens, err := Tokenize("stdin", ":{}[],+-*/()")
	require.Nil(t, err)

	want := []token.Kind{
		token.ASSIGN, token.OPEN_OBJ, token.CLOSE_OBJ, token.OPEN_ARR, token.CLOSE_ARR, token.ARR_SEP,
		token.PLUS, token.MINUS, token.STAR, token.SLASH, token.LPAREN, token.RPAREN, token.EOF,
	}
	assert.Equal(t, want, kinds(tokens))
	for _, tok := range tokens[:len(tokens)-1] {
		assert.Equal(t, 1, tok.End.Index-tok.Start.Index, tok.String())
	}
}

func TestTokenize_String(t *testing.T) {
	tokens, err := Tokenize("stdin", `"hi there" "" "a//b"`)
	require.Nil(t, err)

	require.Equal(t, []token.Kind{token.STRING, token.STRING, token.STRING, token.EOF}, kinds(tokens))
	assert.Equal(t, "hi there", tokens[0].Value)
	assert.Equal(t, 0, tokens[0].Start.Index)
	assert.Equal(t, 10, tokens[0].End.Index)
	assert.Equal(t, "", tokens[1].Value)
	assert.Equal(t, "a//b", tokens[2].Value)
}

func TestTokenize_UnterminatedString(t *testing.T) {
	tokens, err := Tokenize("stdin", `[1, "abc`)

	assert.Empty(t, tokens)
	require.NotNil(t, err)
	assert.Equal(t, diag.IllegalChar, err.Kind)
	assert.Equal(t, "unterminated string literal", err.Details)
	assert.Equal(t, 4, err.Start.Index)
	assert.Equal(t, 8, err.End.Index)
}

func TestTokenize_IllegalCharacters(t *testing.T) {
	for _, ch := range []string{"@", "#", "$", "%", "^", "&", "=", ";", "<", ">", "?", "!", "~", "`", "'", "\\", "|", "."} {
		t.Run(ch, func(t *testing.T) {
			src := "{a: " + ch
			tokens, err := Tokenize("stdin", src)

			assert.Empty(t, tokens)
			require.NotNil(t, err)
			assert.Equal(t, diag.IllegalChar, err.Kind)
			assert.Equal(t, "'"+ch+"'", err.Details)
			assert.Equal(t, 4, err.Start.Index)
			assert.Equal(t, 5, err.End.Index)
		})
	}
}

func TestTokenize_IllegalMultibyteCharacter(t *testing.T) {
	_, err := Tokenize("stdin", "é")

	require.NotNil(t, err)
	assert.Equal(t, "'é'", err.Details)
	assert.Equal(t, 0, err.Start.Index)
	assert.Equal(t, 2, err.End.Index)
}

func TestTokenize_Positions(t *testing.T) {
	tokens, err := Tokenize("config.koy", "{\r\n  key: 1\n}")
	require.Nil(t, err)
	require.Equal(t, []token.Kind{token.OPEN_OBJ, token.IDENT, token.ASSIGN, token.INT, token.CLOSE_OBJ, token.EOF}, kinds(tokens))

	key := tokens[1]
	assert.Equal(t, 1, key.Start.Line)
	assert.Equal(t, 2, key.Start.Column)
	assert.Equal(t, "config.koy", key.Start.Filename)
	assert.Equal(t, "key", key.Text())

	closing := tokens[4]
	assert.Equal(t, 2, closing.Start.Line)
	assert.Equal(t, 0, closing.Start.Column)
}

func TestLexer_KeepComments(t *testing.T) {
	lexer := NewLexer("stdin", "// head\n1 /* mid */ + 2", LexerOptions{KeepComments: true})
	tokens, err := lexer.Tokenize()
	require.Nil(t, err)

	require.Equal(t, []token.Kind{token.COMMENT, token.INT, token.COMMENT, token.PLUS, token.INT, token.EOF}, kinds(tokens))
	assert.Equal(t, " head", tokens[0].Value)
	assert.Equal(t, " mid ", tokens[2].Value)
	assert.Equal(t, "/* mid */", tokens[2].Text())
}

func TestLexer_NextTokenAfterEOF(t *testing.T) {
	lexer := NewLexer("stdin", "1", LexerOptions{})

	first, err := lexer.NextToken()
	require.Nil(t, err)
	assert.Equal(t, token.INT, first.Kind)

	for i := 0; i < 3; i++ {
		tok, err := lexer.NextToken()
		require.Nil(t, err)
		assert.Equal(t, token.EOF, tok.Kind)
		assert.Equal(t, 1, tok.Start.Index)
	}
}

func TestTokenize_Idempotent(t *testing.T) {
	src := "{a: [1, 2.5, \"x\"], b: -(3 * 4)} // done"
	first, err1 := Tokenize("stdin", src)
	second, err2 := Tokenize("stdin", src)

	require.Nil(t, err1)
	require.Nil(t, err2)
	assert.Equal(t, first, second)
}
