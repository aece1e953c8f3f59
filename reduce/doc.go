// Package reduce implements the reduction engine which turns a formula into
// a truth table.
//
// Each pass of [Engine.Run] finds the highest priority reducible operator
// application in the remaining tokens, appends its column to the table and
// replaces the application with a step reference.  Priority is fixed:
// negation, conjunction, disjunction, implication, equivalence.  Within an
// operator the first textual occurrence whose neighbours are both operands
// is reduced.
//
// The [Log] records every step and reconstructs the derivation by
// substituting step references with the expanded text of the step they
// name.
package reduce
