// Package interp evaluates koy syntax trees into runtime values.
//
// Package: interp
// Title: koy Tree-Walking Interpreter
// Description: Runtime value model (numbers, booleans, strings, null, arrays
//              and ordered objects), the evaluation context chain and the
//              evaluator itself. Evaluation is a pure function of the tree:
//              no state survives between calls.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-15
// Modified: 2026-10-15
//
// Change History:
// - 2026-10-15 v0.1.0: Initial interpreter
//
// Numbers keep track of whether they are integers. Integer arithmetic stays
// integral until it would overflow, then falls back to float64. Division of
// two integers is integral only when it is exact.
package interp
