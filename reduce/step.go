package reduce

import (
	"strings"

	"github.com/signadot/truthtable/table"
	"github.com/signadot/truthtable/token"
)

// Step is one reduction: the operator application in Tokens became the
// column headed by table.Step(ID).
type Step struct {
	ID     int
	Op     Op
	Tokens []token.Token

	// Operands are the headers the step read, in order.
	Operands []table.Header
}

// Header returns the header of the column the step produced.
func (s *Step) Header() table.Header {
	return table.Step(s.ID)
}

// Text returns the reduced text with step references as decimal
// identifiers, for example "INV(1)".
func (s *Step) Text() string {
	return token.Join(s.Tokens)
}

// Log is the ordered list of steps of a reduction.
type Log struct {
	steps []Step
}

func (l *Log) append(s Step) {
	l.steps = append(l.steps, s)
}

// Len returns the number of steps.
func (l *Log) Len() int { return len(l.steps) }

// Steps returns the steps in order.
func (l *Log) Steps() []Step {
	return append([]Step(nil), l.steps...)
}

// Texts returns the text of each step without substitution.
func (l *Log) Texts() []string {
	res := make([]string, len(l.steps))
	for i := range l.steps {
		res[i] = l.steps[i].Text()
	}
	return res
}

// Solution returns, for each step, its text with every step reference
// replaced by the expanded text of the referenced step.  The last entry
// is the whole reduced formula in terms of variables and operators.
func (l *Log) Solution() []string {
	res := make([]string, len(l.steps))
	var b strings.Builder
	for i := range l.steps {
		b.Reset()
		for _, tok := range l.steps[i].Tokens {
			if tok.Type == token.TStep {
				// steps only reference earlier steps
				b.WriteString(res[tok.Step-1])
				continue
			}
			b.Write(tok.Bytes)
		}
		res[i] = b.String()
	}
	return res
}
