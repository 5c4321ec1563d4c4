package token

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/msto63/koy/foundation/koy/source"
)

func TestToken_String(t *testing.T) {
	start := source.Start("stdin", `"hi"`)

	tests := []struct {
		name string
		tok  Token
		want string
	}{
		{"punctuation", New(OPEN_OBJ, nil, start), "OPEN_OBJ"},
		{"int", New(INT, int64(42), start), "INT:42"},
		{"float", New(FLOAT, 1.5, start), "FLOAT:1.5"},
		{"false bool keeps value", New(BOOL, false, start), "BOOL:false"},
		{"string", New(STRING, "hi", start), "STRING:hi"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.tok.String())
		})
	}
}

func TestNew_EndIsOneByteLater(t *testing.T) {
	start := source.Start("stdin", "{}")
	tok := New(OPEN_OBJ, nil, start)

	assert.Equal(t, 0, tok.Start.Index)
	assert.Equal(t, 1, tok.End.Index)
	assert.Equal(t, "{", tok.Text())
	assert.True(t, tok.Is(OPEN_OBJ))
}

func TestKind_Symbol(t *testing.T) {
	assert.Equal(t, "']'", CLOSE_ARR.Symbol())
	assert.Equal(t, "end of input", EOF.Symbol())
	assert.Equal(t, "identifier", IDENT.Symbol())
	assert.Equal(t, "Kind(99)", Kind(99).String())
}
