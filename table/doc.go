// Package table provides the assignment table of a formula: one column per
// variable enumerating every assignment, followed by one derived column per
// reduction step.
//
// A [Table] is an append-only arena.  Columns are immutable once added and
// are looked up by [Header]; a missing header is reported as an
// [UnknownHeaderError].
package table
