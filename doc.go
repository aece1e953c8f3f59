// Package truthtable builds truth tables of propositional formulas.
//
// A formula is written over single letter variables with the operators
//
//	INV(x)  negation (also NOT(x))
//	a/\b    conjunction
//	a\/b    disjunction
//	a->b    implication
//	a=b     equivalence
//
// [Solve] enumerates every assignment of the variables, reduces the formula
// one operator application at a time in the fixed order above, adds a
// column per reduction, and records each step so the derivation can be
// reconstructed:
//
//	res, err := truthtable.Solve(`A->B`)
//	if err != nil {
//		return err
//	}
//	res.Rows()     // [[0 0 1] [0 1 1] [1 0 0] [1 1 1]]
//	res.Solution() // [A->B]
//
// White space is ignored everywhere, even inside operators.  A formula
// has at most table.MaxVariables variables, beyond which Solve fails with
// [ErrTooManyVariables].  Other errors are one of [NoVariablesError],
// [UnknownHeaderError] or [MalformedExpressionError].
package truthtable
