// File: parser.go
// Title: koy Recursive-Descent Parser
// Description: Builds an ast.Node from a token stream. Binary operators fold
//              left-associatively, unary operators recurse, and the whole
//              stream must be consumed up to EOF.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-15
// Modified: 2026-10-15
//
// Change History:
// - 2026-10-15 v0.1.0: Initial parser implementation

package parser

import (
	"fmt"

	"github.com/msto63/koy/foundation/koy/ast"
	"github.com/msto63/koy/foundation/koy/diag"
	"github.com/msto63/koy/foundation/koy/source"
	"github.com/msto63/koy/foundation/koy/token"
)

// DefaultMaxDepth bounds nesting of arrays, objects, parentheses and unary
// operators when no explicit limit is given.
const DefaultMaxDepth = 512

// Options configures the parser
type Options struct {
	// MaxDepth is the deepest nesting accepted; zero means DefaultMaxDepth
	MaxDepth int
}

// Parser parses a token stream into a syntax tree
type Parser struct {
	tokens []token.Token
	idx    int
	cur    token.Token
	depth  int
	opts   Options
}

// NewParser creates a parser over tokens. COMMENT tokens are skipped.
func NewParser(tokens []token.Token, opts Options) *Parser {
	if opts.MaxDepth <= 0 {
		opts.MaxDepth = DefaultMaxDepth
	}
	p := &Parser{tokens: tokens, idx: -1, opts: opts}
	p.advance()
	return p
}

// Parse parses tokens with default options
func Parse(tokens []token.Token) (ast.Node, *diag.Error) {
	return NewParser(tokens, Options{}).Parse()
}

// Parse parses a single value followed by EOF
func (p *Parser) Parse() (ast.Node, *diag.Error) {
	if len(p.tokens) == 0 {
		var zero source.Position
		return nil, diag.NewInvalidSyntax(zero, zero.Next(), "expected value")
	}

	node, err := p.value()
	if err != nil {
		return nil, err
	}
	if !p.cur.Is(token.EOF) {
		return nil, p.fail("expected '+', '-', '*', '/' or end of input")
	}
	return node, nil
}

// advance moves to the next significant token. Past the end the last token
// (normally EOF) is repeated.
func (p *Parser) advance() {
	for p.idx+1 < len(p.tokens) {
		p.idx++
		if !p.tokens[p.idx].Is(token.COMMENT) {
			p.cur = p.tokens[p.idx]
			return
		}
	}
	if !p.cur.Is(token.EOF) {
		// Stream ran out without EOF: synthesize one at the last position
		var at source.Position
		if n := len(p.tokens); n > 0 {
			at = p.tokens[n-1].End
		}
		p.cur = token.New(token.EOF, nil, at)
	}
}

func (p *Parser) fail(details string) *diag.Error {
	return diag.NewInvalidSyntax(p.cur.Start, p.cur.End, details)
}

// value := factor ( (PLUS|MINUS) factor )*
func (p *Parser) value() (ast.Node, *diag.Error) {
	return p.binOp(p.factor, token.PLUS, token.MINUS)
}

// factor := term ( (STAR|SLASH) term )*
func (p *Parser) factor() (ast.Node, *diag.Error) {
	return p.binOp(p.term, token.STAR, token.SLASH)
}

func (p *Parser) binOp(operand func() (ast.Node, *diag.Error), ops ...token.Kind) (ast.Node, *diag.Error) {
	left, err := operand()
	if err != nil {
		return nil, err
	}

	for p.isOneOf(ops...) {
		op := p.cur
		p.advance()
		right, err := operand()
		if err != nil {
			return nil, err
		}
		left = &ast.BinaryOp{Left: left, Op: op, Right: right}
	}
	return left, nil
}

func (p *Parser) isOneOf(kinds ...token.Kind) bool {
	for _, k := range kinds {
		if p.cur.Is(k) {
			return true
		}
	}
	return false
}

func (p *Parser) term() (ast.Node, *diag.Error) {
	p.depth++
	defer func() { p.depth-- }()
	if p.depth > p.opts.MaxDepth {
		return nil, p.fail(fmt.Sprintf("nesting exceeds maximum depth of %d", p.opts.MaxDepth))
	}

	tok := p.cur
	switch tok.Kind {
	case token.PLUS, token.MINUS:
		p.advance()
		operand, err := p.term()
		if err != nil {
			return nil, err
		}
		return &ast.UnaryOp{Op: tok, Operand: operand}, nil

	case token.INT, token.FLOAT:
		p.advance()
		return &ast.NumberLiteral{Tok: tok}, nil

	case token.STRING:
		p.advance()
		return &ast.StringLiteral{Tok: tok}, nil

	case token.BOOL:
		p.advance()
		return &ast.BooleanLiteral{Tok: tok}, nil

	case token.NULL:
		p.advance()
		return &ast.NullLiteral{Tok: tok}, nil

	case token.LPAREN:
		p.advance()
		inner, err := p.value()
		if err != nil {
			return nil, err
		}
		if !p.cur.Is(token.RPAREN) {
			return nil, p.fail("expected ')'")
		}
		p.advance()
		return inner, nil

	case token.OPEN_ARR:
		return p.array()

	case token.OPEN_OBJ:
		return p.object()

	case token.IMPORT:
		return nil, p.fail("import is not supported")

	default:
		return nil, p.fail("expected value")
	}
}

// array := OPEN_ARR ( value (ARR_SEP value)* )? CLOSE_ARR
func (p *Parser) array() (ast.Node, *diag.Error) {
	node := &ast.ArrayLiteral{Open: p.cur}
	p.advance()

	if p.cur.Is(token.CLOSE_ARR) {
		node.Close = p.cur
		p.advance()
		return node, nil
	}

	for {
		el, err := p.value()
		if err != nil {
			return nil, err
		}
		node.Elements = append(node.Elements, el)

		switch {
		case p.cur.Is(token.ARR_SEP):
			p.advance()
		case p.cur.Is(token.CLOSE_ARR):
			node.Close = p.cur
			p.advance()
			return node, nil
		default:
			return nil, p.fail("expected ']' or ','")
		}
	}
}

// object := OPEN_OBJ ( IDENT ASSIGN value (ARR_SEP IDENT ASSIGN value)* )? CLOSE_OBJ
func (p *Parser) object() (ast.Node, *diag.Error) {
	node := &ast.ObjectLiteral{Open: p.cur}
	p.advance()

	if p.cur.Is(token.CLOSE_OBJ) {
		node.Close = p.cur
		p.advance()
		return node, nil
	}

	seen := make(map[string]struct{})
	for {
		if !p.cur.Is(token.IDENT) {
			return nil, p.fail("expected identifier")
		}
		key := p.cur
		name, _ := key.Value.(string)
		if _, dup := seen[name]; dup {
			return nil, p.fail(fmt.Sprintf("duplicate key '%s'", name))
		}
		seen[name] = struct{}{}
		p.advance()

		if !p.cur.Is(token.ASSIGN) {
			return nil, p.fail("expected ':'")
		}
		p.advance()

		val, err := p.value()
		if err != nil {
			return nil, err
		}
		node.Entries = append(node.Entries, ast.Entry{Key: key, Value: val})

		switch {
		case p.cur.Is(token.ARR_SEP):
			p.advance()
		case p.cur.Is(token.CLOSE_OBJ):
			node.Close = p.cur
			p.advance()
			return node, nil
		default:
			return nil, p.fail("expected '}' or ','")
		}
	}
}
