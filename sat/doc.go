// Package sat classifies reduced formulas with a SAT solver.
//
// [Build] turns the step log of a reduction into a combinational circuit
// (github.com/go-air/gini/logic), one gate per step.  [Classify] asks the
// solver whether the formula and its negation are satisfiable, and
// [Circuit.Verify] evaluates the circuit over every assignment, 64 rows at a
// time, against the truth table.
package sat
