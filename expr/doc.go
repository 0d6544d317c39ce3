// Package expr parses single-variable math expressions such as "sin(x) * x^2" and compiles them
// into plain float functions for the plotter.
//
// Evaluation is float64 throughout. Domain errors (sqrt(-1), ln(0), 1/0) yield NaN or ±Inf rather
// than errors so callers can skip those samples; only mod by zero reports ErrEval.
package expr
