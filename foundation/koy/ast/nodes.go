// File: nodes.go
// Title: koy AST Node Definitions
// Description: Node variants for koy documents. Literals keep the token they
//              were parsed from; composite nodes keep their delimiters so the
//              span covers the brackets.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-15
// Modified: 2026-10-15
//
// Change History:
// - 2026-10-15 v0.1.0: Initial AST node definitions

package ast

import (
	"github.com/msto63/koy/foundation/koy/source"
	"github.com/msto63/koy/foundation/koy/token"
)

// Node represents the base interface for all AST nodes
type Node interface {
	// Start returns the position of the first byte of the node
	Start() source.Position

	// End returns the position just past the node
	End() source.Position

	// Accept implements the visitor pattern
	Accept(visitor Visitor) interface{}

	// String renders the node as koy source
	String() string

	node()
}

// NumberLiteral is an INT or FLOAT token
type NumberLiteral struct {
	Tok token.Token
}

// IsInt reports whether the literal was written without a decimal point
func (n *NumberLiteral) IsInt() bool {
	return n.Tok.Kind == token.INT
}

// StringLiteral is a STRING token
type StringLiteral struct {
	Tok token.Token
}

// Value returns the string contents without quotes
func (n *StringLiteral) Value() string {
	s, _ := n.Tok.Value.(string)
	return s
}

// BooleanLiteral is a BOOL token
type BooleanLiteral struct {
	Tok token.Token
}

// Value returns the boolean the literal denotes
func (n *BooleanLiteral) Value() bool {
	b, _ := n.Tok.Value.(bool)
	return b
}

// NullLiteral is a NULL token
type NullLiteral struct {
	Tok token.Token
}

// UnaryOp applies PLUS or MINUS to its operand
type UnaryOp struct {
	Op      token.Token
	Operand Node
}

// BinaryOp applies PLUS, MINUS, STAR or SLASH to two operands
type BinaryOp struct {
	Left  Node
	Op    token.Token
	Right Node
}

// ArrayLiteral is a bracketed, comma-separated list of values
type ArrayLiteral struct {
	Open     token.Token
	Elements []Node
	Close    token.Token
}

// Entry is one key/value pair of an object literal
type Entry struct {
	Key   token.Token
	Value Node
}

// Name returns the identifier used as the key
func (e Entry) Name() string {
	s, _ := e.Key.Value.(string)
	return s
}

// ObjectLiteral is a braced list of entries. Keys are unique and kept in
// declaration order.
type ObjectLiteral struct {
	Open    token.Token
	Entries []Entry
	Close   token.Token
}

// Lookup returns the value node stored under key
func (n *ObjectLiteral) Lookup(key string) (Node, bool) {
	for _, e := range n.Entries {
		if e.Name() == key {
			return e.Value, true
		}
	}
	return nil, false
}

func (n *NumberLiteral) Start() source.Position  { return n.Tok.Start }
func (n *StringLiteral) Start() source.Position  { return n.Tok.Start }
func (n *BooleanLiteral) Start() source.Position { return n.Tok.Start }
func (n *NullLiteral) Start() source.Position    { return n.Tok.Start }
func (n *UnaryOp) Start() source.Position        { return n.Op.Start }
func (n *BinaryOp) Start() source.Position       { return n.Left.Start() }
func (n *ArrayLiteral) Start() source.Position   { return n.Open.Start }
func (n *ObjectLiteral) Start() source.Position  { return n.Open.Start }

func (n *NumberLiteral) End() source.Position  { return n.Tok.End }
func (n *StringLiteral) End() source.Position  { return n.Tok.End }
func (n *BooleanLiteral) End() source.Position { return n.Tok.End }
func (n *NullLiteral) End() source.Position    { return n.Tok.End }
func (n *UnaryOp) End() source.Position        { return n.Operand.End() }
func (n *BinaryOp) End() source.Position       { return n.Right.End() }
func (n *ArrayLiteral) End() source.Position   { return n.Close.End }
func (n *ObjectLiteral) End() source.Position  { return n.Close.End }

func (n *NumberLiteral) Accept(v Visitor) interface{}  { return v.VisitNumber(n) }
func (n *StringLiteral) Accept(v Visitor) interface{}  { return v.VisitString(n) }
func (n *BooleanLiteral) Accept(v Visitor) interface{} { return v.VisitBoolean(n) }
func (n *NullLiteral) Accept(v Visitor) interface{}    { return v.VisitNull(n) }
func (n *UnaryOp) Accept(v Visitor) interface{}        { return v.VisitUnary(n) }
func (n *BinaryOp) Accept(v Visitor) interface{}       { return v.VisitBinary(n) }
func (n *ArrayLiteral) Accept(v Visitor) interface{}   { return v.VisitArray(n) }
func (n *ObjectLiteral) Accept(v Visitor) interface{}  { return v.VisitObject(n) }

func (n *NumberLiteral) String() string  { return Format(n) }
func (n *StringLiteral) String() string  { return Format(n) }
func (n *BooleanLiteral) String() string { return Format(n) }
func (n *NullLiteral) String() string    { return Format(n) }
func (n *UnaryOp) String() string        { return Format(n) }
func (n *BinaryOp) String() string       { return Format(n) }
func (n *ArrayLiteral) String() string   { return Format(n) }
func (n *ObjectLiteral) String() string  { return Format(n) }

func (*NumberLiteral) node()  {}
func (*StringLiteral) node()  {}
func (*BooleanLiteral) node() {}
func (*NullLiteral) node()    {}
func (*UnaryOp) node()        {}
func (*BinaryOp) node()       {}
func (*ArrayLiteral) node()   {}
func (*ObjectLiteral) node()  {}
