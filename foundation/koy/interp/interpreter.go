// File: interpreter.go
// Title: koy Tree-Walking Interpreter
// Description: Evaluates an ast.Node to a Value. Dispatch is an exhaustive
//              type switch over the sealed node set; the first runtime error
//              aborts evaluation.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-15
// Modified: 2026-10-15
//
// Change History:
// - 2026-10-15 v0.1.0: Initial interpreter

package interp

import (
	"fmt"
	"math"

	"github.com/msto63/koy/foundation/koy/ast"
	"github.com/msto63/koy/foundation/koy/diag"
	"github.com/msto63/koy/foundation/koy/token"
)

// Interpreter evaluates syntax trees. It holds no state, so one value may be
// shared between goroutines.
type Interpreter struct{}

// New creates an interpreter
func New() *Interpreter {
	return &Interpreter{}
}

// Evaluate evaluates node in ctx with a fresh interpreter
func Evaluate(node ast.Node, ctx *Context) (Value, *diag.Error) {
	return New().Evaluate(node, ctx)
}

// Evaluate evaluates node in ctx. A nil ctx starts from a new root.
func (in *Interpreter) Evaluate(node ast.Node, ctx *Context) (Value, *diag.Error) {
	if ctx == nil {
		ctx = NewContext(RootName)
	}
	return in.visit(node, ctx)
}

func (in *Interpreter) visit(node ast.Node, ctx *Context) (Value, *diag.Error) {
	switch n := node.(type) {
	case *ast.NumberLiteral:
		return in.visitNumber(n), nil
	case *ast.StringLiteral:
		return Str(n.Value(), spanOf(n)), nil
	case *ast.BooleanLiteral:
		return Bool(n.Value(), spanOf(n)), nil
	case *ast.NullLiteral:
		return NewNull(spanOf(n)), nil
	case *ast.UnaryOp:
		return in.visitUnary(n, ctx)
	case *ast.BinaryOp:
		return in.visitBinary(n, ctx)
	case *ast.ArrayLiteral:
		return in.visitArray(n, ctx)
	case *ast.ObjectLiteral:
		return in.visitObject(n, ctx)
	default:
		// The parser only builds the variants above
		panic(fmt.Sprintf("interp: no evaluation rule for %T", node))
	}
}

func spanOf(n ast.Node) Pos {
	return At(n.Start(), n.End())
}

func (in *Interpreter) visitNumber(n *ast.NumberLiteral) Value {
	switch v := n.Tok.Value.(type) {
	case int64:
		return Int(v, spanOf(n))
	case float64:
		return Float(v, spanOf(n))
	default:
		panic(fmt.Sprintf("interp: number token carries %T", n.Tok.Value))
	}
}

func (in *Interpreter) visitUnary(n *ast.UnaryOp, ctx *Context) (Value, *diag.Error) {
	operand, err := in.visit(n.Operand, ctx)
	if err != nil {
		return nil, err
	}

	if n.Op.Kind == token.PLUS {
		return operand, nil
	}

	num, ok := operand.(*Number)
	if !ok {
		return nil, runtimeError(n, ctx, fmt.Sprintf("bad operand type for unary '-': %s", operand.TypeName()))
	}
	if i, isInt := num.Int64(); isInt {
		if i == math.MinInt64 {
			return Float(-float64(i), spanOf(n)), nil
		}
		return Int(-i, spanOf(n)), nil
	}
	return Float(-num.Float64(), spanOf(n)), nil
}

func (in *Interpreter) visitBinary(n *ast.BinaryOp, ctx *Context) (Value, *diag.Error) {
	left, err := in.visit(n.Left, ctx)
	if err != nil {
		return nil, err
	}
	right, err := in.visit(n.Right, ctx)
	if err != nil {
		return nil, err
	}

	l, lok := left.(*Number)
	r, rok := right.(*Number)
	if !lok || !rok {
		return nil, runtimeError(n, ctx, fmt.Sprintf("unsupported operand types for '%s': %s and %s",
			opSymbol(n.Op.Kind), left.TypeName(), right.TypeName()))
	}

	if n.Op.Kind == token.SLASH && r.IsZero() {
		return nil, runtimeError(n.Right, ctx, "division by zero")
	}

	pos := spanOf(n)
	a, aInt := l.Int64()
	b, bInt := r.Int64()
	if aInt && bInt {
		if v, ok := intArith(n.Op.Kind, a, b); ok {
			return Int(v, pos), nil
		}
	}
	return Float(floatArith(n.Op.Kind, l.Float64(), r.Float64()), pos), nil
}

// intArith applies op to two integers. It reports false when the result
// does not fit an int64 or, for division, is not a whole number.
func intArith(op token.Kind, a, b int64) (int64, bool) {
	switch op {
	case token.PLUS:
		if (b > 0 && a > math.MaxInt64-b) || (b < 0 && a < math.MinInt64-b) {
			return 0, false
		}
		return a + b, true
	case token.MINUS:
		if (b < 0 && a > math.MaxInt64+b) || (b > 0 && a < math.MinInt64+b) {
			return 0, false
		}
		return a - b, true
	case token.STAR:
		if a == 0 || b == 0 {
			return 0, true
		}
		if (a == -1 && b == math.MinInt64) || (b == -1 && a == math.MinInt64) {
			return 0, false
		}
		p := a * b
		if p/b != a {
			return 0, false
		}
		return p, true
	case token.SLASH:
		if a == math.MinInt64 && b == -1 {
			return 0, false
		}
		if a%b != 0 {
			return 0, false
		}
		return a / b, true
	default:
		panic(fmt.Sprintf("interp: unknown binary operator %s", op))
	}
}

func floatArith(op token.Kind, a, b float64) float64 {
	switch op {
	case token.PLUS:
		return a + b
	case token.MINUS:
		return a - b
	case token.STAR:
		return a * b
	case token.SLASH:
		return a / b
	default:
		panic(fmt.Sprintf("interp: unknown binary operator %s", op))
	}
}

func (in *Interpreter) visitArray(n *ast.ArrayLiteral, ctx *Context) (Value, *diag.Error) {
	elements := make([]Value, 0, len(n.Elements))
	for i, el := range n.Elements {
		v, err := in.visit(el, ctx.Child(fmt.Sprintf("[%d]", i), el.Start()))
		if err != nil {
			return nil, err
		}
		elements = append(elements, v)
	}
	return NewArray(elements, spanOf(n)), nil
}

func (in *Interpreter) visitObject(n *ast.ObjectLiteral, ctx *Context) (Value, *diag.Error) {
	obj := NewObject(spanOf(n))
	for _, entry := range n.Entries {
		name := entry.Name()
		v, err := in.visit(entry.Value, ctx.Child(name, entry.Key.Start))
		if err != nil {
			return nil, err
		}
		obj.Set(name, v)
	}
	return obj, nil
}

func runtimeError(n ast.Node, ctx *Context, details string) *diag.Error {
	err := diag.NewRuntime(n.Start(), n.End(), details)
	err.Context = ctx.Path()
	return err
}

func opSymbol(kind token.Kind) string {
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
		return kind.String()
	}
}
