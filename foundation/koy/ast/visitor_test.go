// File: visitor_test.go
// Title: koy AST Visitor Tests
// Description: Tests for the source printer, tree printer, Walk and Depth
//              over hand-built trees.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-15
// Modified: 2026-10-15
//
// Change History:
// - 2026-10-15 v0.1.0: Initial visitor test suite

package ast

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/msto63/koy/foundation/koy/source"
	"github.com/msto63/koy/foundation/koy/token"
)

// at returns a position on the first line of src at the given column
func at(src string, col int) source.Position {
	return source.Position{Index: col, Column: col, Filename: "test.koy", Source: src}
}

func num(src string, col int, v any) *NumberLiteral {
	kind := token.INT
	if _, ok := v.(float64); ok {
		kind = token.FLOAT
	}
	return &NumberLiteral{Tok: token.New(kind, v, at(src, col))}
}

func op(src string, col int, kind token.Kind) token.Token {
	return token.New(kind, nil, at(src, col))
}

// sampleObject builds the tree for {a: 1 + 2, b: [true, null, "x"]}
func sampleObject() *ObjectLiteral {
	const src = `{a: 1 + 2, b: [true, null, "x"]}`
	return &ObjectLiteral{
		Open: op(src, 0, token.OPEN_OBJ),
		Entries: []Entry{
			{
				Key: token.NewSpan(token.IDENT, "a", at(src, 1), at(src, 2)),
				Value: &BinaryOp{
					Left:  num(src, 4, int64(1)),
					Op:    op(src, 6, token.PLUS),
					Right: num(src, 8, int64(2)),
				},
			},
			{
				Key: token.NewSpan(token.IDENT, "b", at(src, 11), at(src, 12)),
				Value: &ArrayLiteral{
					Open: op(src, 14, token.OPEN_ARR),
					Elements: []Node{
						&BooleanLiteral{Tok: token.NewSpan(token.BOOL, true, at(src, 15), at(src, 19))},
						&NullLiteral{Tok: token.NewSpan(token.NULL, nil, at(src, 21), at(src, 25))},
						&StringLiteral{Tok: token.NewSpan(token.STRING, "x", at(src, 27), at(src, 30))},
					},
					Close: op(src, 30, token.CLOSE_ARR),
				},
			},
		},
		Close: op(src, 31, token.CLOSE_OBJ),
	}
}

func TestFormat(t *testing.T) {
	const src = "-2.5"
	tests := []struct {
		name string
		node Node
		want string
	}{
		{"object", sampleObject(), `{a: (1 + 2), b: [true, null, "x"]}`},
		{"unary float", &UnaryOp{Op: op(src, 0, token.MINUS), Operand: num(src, 1, 2.5)}, "-2.5"},
		{"whole float keeps fraction", num("3.", 0, 3.0), "3.0"},
		{"empty array", &ArrayLiteral{Open: op("[]", 0, token.OPEN_ARR), Close: op("[]", 1, token.CLOSE_ARR)}, "[]"},
		{"empty object", &ObjectLiteral{Open: op("{}", 0, token.OPEN_OBJ), Close: op("{}", 1, token.CLOSE_OBJ)}, "{}"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Format(tt.node))
			assert.Equal(t, tt.want, tt.node.String())
		})
	}
}

func TestNodeSpans(t *testing.T) {
	obj := sampleObject()
	assert.Equal(t, 0, obj.Start().Index)
	assert.Equal(t, 32, obj.End().Index)

	bin := obj.Entries[0].Value
	assert.Equal(t, 4, bin.Start().Index)
	assert.Equal(t, 9, bin.End().Index)
}

func TestDump(t *testing.T) {
	want := "" +
		"Object (2) [1:1-1:33]\n" +
		"  a: Binary + [1:5-1:10]\n" +
		"    Number 1 [1:5-1:6]\n" +
		"    Number 2 [1:9-1:10]\n" +
		"  b: Array (3) [1:15-1:32]\n" +
		"    Boolean true [1:16-1:20]\n" +
		"    Null [1:22-1:26]\n" +
		"    String \"x\" [1:28-1:31]\n"
	assert.Equal(t, want, Dump(sampleObject()))
}

func TestWalk(t *testing.T) {
	var kinds []string
	Walk(sampleObject(), func(n Node) bool {
		switch n.(type) {
		case *ObjectLiteral:
			kinds = append(kinds, "object")
		case *BinaryOp:
			kinds = append(kinds, "binary")
		case *NumberLiteral:
			kinds = append(kinds, "number")
		case *ArrayLiteral:
			kinds = append(kinds, "array")
			return false
		}
		return true
	})

	assert.Equal(t, []string{"object", "binary", "number", "number", "array"}, kinds)
}

func TestDepth(t *testing.T) {
	assert.Equal(t, 3, Depth(sampleObject()))
	assert.Equal(t, 1, Depth(num("1", 0, int64(1))))
	assert.Equal(t, 0, Depth(nil))
}

func TestObjectLookup(t *testing.T) {
	obj := sampleObject()

	n, ok := obj.Lookup("b")
	require.True(t, ok)
	assert.IsType(t, &ArrayLiteral{}, n)

	_, ok = obj.Lookup("missing")
	assert.False(t, ok)
}
