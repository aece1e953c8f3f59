// Package token provides tokenization support for truth table formulas.
//
// [Tokenize] scans formula bytes into operands, operators, the negation
// keyword and parentheses. [Variables] collects the variable letters of a
// formula without failing on bytes the tokenizer would reject.
//
// Step references ([TStep]) never come from source text: they are produced
// by the reduction engine with [StepRef] and are a distinct token type, so a
// step number can never be confused with an operand.
package token
