// Package ast defines the syntax tree produced by the koy parser.
//
// Package: ast
// Title: koy Abstract Syntax Tree
// Description: The closed set of node variants (number, string, boolean and
//              null literals, unary and binary operations, arrays and
//              objects) together with a visitor interface and printers used
//              by tooling.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-15
// Modified: 2026-10-15
//
// Change History:
// - 2026-10-15 v0.1.0: Initial node set
//
// Every node reports the span it covers through Start and End. The node set
// is sealed: types outside this package cannot implement Node, so a type
// switch over the variants below is exhaustive.
package ast
