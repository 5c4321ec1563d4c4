// File: visitor.go
// Title: koy AST Visitor Pattern Implementation
// Description: Visitor interface for traversing koy trees plus the visitors
//              shipped with the package: a walking base, a source printer
//              and an indented tree printer used by "koy ast".
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-15
// Modified: 2026-10-15
//
// Change History:
// - 2026-10-15 v0.1.0: Initial visitor pattern implementation

package ast

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/msto63/koy/foundation/koy/token"
)

// Visitor interface for traversing AST nodes using the visitor pattern
type Visitor interface {
	VisitNumber(n *NumberLiteral) interface{}
	VisitString(n *StringLiteral) interface{}
	VisitBoolean(n *BooleanLiteral) interface{}
	VisitNull(n *NullLiteral) interface{}
	VisitUnary(n *UnaryOp) interface{}
	VisitBinary(n *BinaryOp) interface{}
	VisitArray(n *ArrayLiteral) interface{}
	VisitObject(n *ObjectLiteral) interface{}
}

// Walk calls fn for node and every descendant in source order. Returning
// false from fn skips the node's children.
func Walk(node Node, fn func(Node) bool) {
	if node == nil || !fn(node) {
		return
	}
	switch n := node.(type) {
	case *UnaryOp:
		Walk(n.Operand, fn)
	case *BinaryOp:
		Walk(n.Left, fn)
		Walk(n.Right, fn)
	case *ArrayLiteral:
		for _, el := range n.Elements {
			Walk(el, fn)
		}
	case *ObjectLiteral:
		for _, e := range n.Entries {
			Walk(e.Value, fn)
		}
	}
}

// Depth returns the nesting depth of the tree; a lone literal has depth 1
func Depth(node Node) int {
	if node == nil {
		return 0
	}
	deepest := 0
	switch n := node.(type) {
	case *UnaryOp:
		deepest = Depth(n.Operand)
	case *BinaryOp:
		deepest = Depth(n.Left)
		if d := Depth(n.Right); d > deepest {
			deepest = d
		}
	case *ArrayLiteral:
		for _, el := range n.Elements {
			if d := Depth(el); d > deepest {
				deepest = d
			}
		}
	case *ObjectLiteral:
		for _, e := range n.Entries {
			if d := Depth(e.Value); d > deepest {
				deepest = d
			}
		}
	}
	return deepest + 1
}

// StringVisitor renders a tree back to koy source. Binary operations are
// fully parenthesized so the output reparses to the same tree.
type StringVisitor struct {
	builder strings.Builder
}

// NewStringVisitor creates a new string visitor
func NewStringVisitor() *StringVisitor {
	return &StringVisitor{}
}

// String returns the accumulated output
func (sv *StringVisitor) String() string {
	return sv.builder.String()
}

// Format renders node as koy source
func Format(node Node) string {
	sv := NewStringVisitor()
	node.Accept(sv)
	return sv.String()
}

func (sv *StringVisitor) VisitNumber(n *NumberLiteral) interface{} {
	sv.builder.WriteString(formatNumber(n.Tok.Value))
	return nil
}

func (sv *StringVisitor) VisitString(n *StringLiteral) interface{} {
	sv.builder.WriteByte('"')
	sv.builder.WriteString(n.Value())
	sv.builder.WriteByte('"')
	return nil
}

func (sv *StringVisitor) VisitBoolean(n *BooleanLiteral) interface{} {
	sv.builder.WriteString(strconv.FormatBool(n.Value()))
	return nil
}

func (sv *StringVisitor) VisitNull(n *NullLiteral) interface{} {
	sv.builder.WriteString("null")
	return nil
}

func (sv *StringVisitor) VisitUnary(n *UnaryOp) interface{} {
	sv.builder.WriteString(operator(n.Op.Kind))
	n.Operand.Accept(sv)
	return nil
}

func (sv *StringVisitor) VisitBinary(n *BinaryOp) interface{} {
	sv.builder.WriteByte('(')
	n.Left.Accept(sv)
	sv.builder.WriteString(" " + operator(n.Op.Kind) + " ")
	n.Right.Accept(sv)
	sv.builder.WriteByte(')')
	return nil
}

func (sv *StringVisitor) VisitArray(n *ArrayLiteral) interface{} {
	sv.builder.WriteByte('[')
	for i, el := range n.Elements {
		if i > 0 {
			sv.builder.WriteString(", ")
		}
		el.Accept(sv)
	}
	sv.builder.WriteByte(']')
	return nil
}

func (sv *StringVisitor) VisitObject(n *ObjectLiteral) interface{} {
	sv.builder.WriteByte('{')
	for i, e := range n.Entries {
		if i > 0 {
			sv.builder.WriteString(", ")
		}
		sv.builder.WriteString(e.Name())
		sv.builder.WriteString(": ")
		e.Value.Accept(sv)
	}
	sv.builder.WriteByte('}')
	return nil
}

// TreeVisitor renders an indented outline of a tree with source positions
type TreeVisitor struct {
	builder strings.Builder
	indent  int
	prefix  string
}

// NewTreeVisitor creates a new tree visitor
func NewTreeVisitor() *TreeVisitor {
	return &TreeVisitor{}
}

// String returns the accumulated output
func (tv *TreeVisitor) String() string {
	return tv.builder.String()
}

// Dump renders node as an indented outline
func Dump(node Node) string {
	tv := NewTreeVisitor()
	node.Accept(tv)
	return tv.String()
}

func (tv *TreeVisitor) line(node Node, label string) {
	tv.builder.WriteString(strings.Repeat("  ", tv.indent))
	tv.builder.WriteString(tv.prefix)
	tv.prefix = ""
	start, end := node.Start(), node.End()
	fmt.Fprintf(&tv.builder, "%s [%d:%d-%d:%d]\n", label, start.Line+1, start.Column+1, end.Line+1, end.Column+1)
}

func (tv *TreeVisitor) child(node Node, prefix string) {
	tv.indent++
	tv.prefix = prefix
	node.Accept(tv)
	tv.indent--
}

func (tv *TreeVisitor) VisitNumber(n *NumberLiteral) interface{} {
	tv.line(n, fmt.Sprintf("Number %s", formatNumber(n.Tok.Value)))
	return nil
}

func (tv *TreeVisitor) VisitString(n *StringLiteral) interface{} {
	tv.line(n, fmt.Sprintf("String %q", n.Value()))
	return nil
}

func (tv *TreeVisitor) VisitBoolean(n *BooleanLiteral) interface{} {
	tv.line(n, fmt.Sprintf("Boolean %t", n.Value()))
	return nil
}

func (tv *TreeVisitor) VisitNull(n *NullLiteral) interface{} {
	tv.line(n, "Null")
	return nil
}

func (tv *TreeVisitor) VisitUnary(n *UnaryOp) interface{} {
	tv.line(n, fmt.Sprintf("Unary %s", operator(n.Op.Kind)))
	tv.child(n.Operand, "")
	return nil
}

func (tv *TreeVisitor) VisitBinary(n *BinaryOp) interface{} {
	tv.line(n, fmt.Sprintf("Binary %s", operator(n.Op.Kind)))
	tv.child(n.Left, "")
	tv.child(n.Right, "")
	return nil
}

func (tv *TreeVisitor) VisitArray(n *ArrayLiteral) interface{} {
	tv.line(n, fmt.Sprintf("Array (%d)", len(n.Elements)))
	for _, el := range n.Elements {
		tv.child(el, "")
	}
	return nil
}

func (tv *TreeVisitor) VisitObject(n *ObjectLiteral) interface{} {
	tv.line(n, fmt.Sprintf("Object (%d)", len(n.Entries)))
	for _, e := range n.Entries {
		tv.child(e.Value, e.Name()+": ")
	}
	return nil
}

func operator(kind token.Kind) string {
	switch kind {
	case token.PLUS:
		return "+"
	case token.MINUS:
		return "-"
	case token.STAR:
		return "*"
	case token.SLASH:
		return "/"
	default:
		return "?"
	}
}

// formatNumber prints ints plainly and always gives floats a fraction so
// they reparse as FLOAT.
func formatNumber(v any) string {
	switch n := v.(type) {
	case int64:
		return strconv.FormatInt(n, 10)
	case float64:
		if math.IsInf(n, 0) || math.IsNaN(n) {
			return strconv.FormatFloat(n, 'g', -1, 64)
		}
		s := strconv.FormatFloat(n, 'f', -1, 64)
		if !strings.Contains(s, ".") {
			s += ".0"
		}
		return s
	default:
		return fmt.Sprintf("%v", v)
	}
}
