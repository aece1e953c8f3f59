package reduce

import "github.com/signadot/truthtable/token"

type Op int

const (
	OpNeg Op = iota
	OpAnd
	OpOr
	OpImpl
	OpEquiv
)

// priority is the order in which operators are looked for on each pass.
var priority = []Op{OpNeg, OpAnd, OpOr, OpImpl, OpEquiv}

func (o Op) String() string {
	return map[Op]string{
		OpNeg:   "negation",
		OpAnd:   "conjunction",
		OpOr:    "disjunction",
		OpImpl:  "implication",
		OpEquiv: "equivalence",
	}[o]
}

// Symbol returns the operator as written in formulas.
func (o Op) Symbol() string {
	return map[Op]string{
		OpNeg:   "INV",
		OpAnd:   `/\`,
		OpOr:    `\/`,
		OpImpl:  "->",
		OpEquiv: "=",
	}[o]
}

func (o Op) tokenType() token.TokenType {
	return map[Op]token.TokenType{
		OpNeg:   token.TNeg,
		OpAnd:   token.TAnd,
		OpOr:    token.TOr,
		OpImpl:  token.TImpl,
		OpEquiv: token.TEquiv,
	}[o]
}

// Unary reports whether o takes a single operand.
func (o Op) Unary() bool { return o == OpNeg }

// Eval applies o to a and b.  b is ignored for negation.
func (o Op) Eval(a, b bool) bool {
	switch o {
	case OpNeg:
		return !a
	case OpAnd:
		return a && b
	case OpOr:
		return a || b
	case OpImpl:
		return !(a && !b)
	case OpEquiv:
		return a == b
	}
	panic("bad op")
}

// match returns the span [start, end) of the first reducible application
// of o in toks and the indices of its operands.
func (o Op) match(toks []token.Token) (start, end int, operands []int, ok bool) {
	tt := o.tokenType()
	n := len(toks)
	for i := range toks {
		if toks[i].Type != tt {
			continue
		}
		if o.Unary() {
			if i+3 < n && toks[i+1].Type == token.TLParen &&
				toks[i+2].IsOperand() && toks[i+3].Type == token.TRParen {
				return i, i + 4, []int{i + 2}, true
			}
			continue
		}
		if i == 0 || i+1 >= n {
			continue
		}
		if toks[i-1].IsOperand() && toks[i+1].IsOperand() {
			return i - 1, i + 2, []int{i - 1, i + 1}, true
		}
	}
	return 0, 0, nil, false
}
