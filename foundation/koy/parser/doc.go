// Package parser turns koy source text into a syntax tree.
//
// Package: parser
// Title: koy Lexer and Parser
// Description: A byte-cursor lexer producing positioned tokens and a
//              recursive-descent parser building an ast.Node. Both stages
//              stop at the first error and report it as a *diag.Error.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-15
// Modified: 2026-10-15
//
// Change History:
// - 2026-10-15 v0.1.0: Initial lexer and parser
//
// Grammar, lowest precedence first:
//
//	value  := factor ( (PLUS|MINUS) factor )*
//	factor := term ( (STAR|SLASH) term )*
//	term   := (PLUS|MINUS) term
//	        | INT | FLOAT | STRING | BOOL | NULL
//	        | LPAREN value RPAREN
//	        | OPEN_ARR ( value (ARR_SEP value)* )? CLOSE_ARR
//	        | OPEN_OBJ ( IDENT ASSIGN value (ARR_SEP IDENT ASSIGN value)* )? CLOSE_OBJ
//
// Usage:
//
//	tokens, err := parser.Tokenize("settings.koy", src)
//	if err != nil {
//		return err
//	}
//	node, err := parser.Parse(tokens)
package parser
