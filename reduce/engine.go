package reduce

import (
	"errors"
	"fmt"
	"slices"

	"github.com/signadot/truthtable/debug"
	"github.com/signadot/truthtable/table"
	"github.com/signadot/truthtable/token"
)

// Engine reduces one formula.  An Engine owns its table and is not safe
// for concurrent use; independent formulas use independent engines.
type Engine struct {
	formula string
	opts    *engineOpts
	tab     *table.Table
	toks    []token.Token
	log     Log
	result  table.Header
	ran     bool
}

// New tokenizes formula and builds its initial table.  White space is
// not significant anywhere in formula, not even inside an operator or a
// negation keyword.
//
// New fails with a *table.NoVariablesError when formula has no variable
// letters, with table.ErrTooManyVariables when the table would exceed the
// variable limit and with a *MalformedExpressionError when formula
// contains text which is not part of the formula grammar.
func New(formula string, opts ...Option) (*Engine, error) {
	o := newEngineOpts(opts)
	src, offs := token.StripSpace([]byte(formula))
	vars := o.vars
	if vars == nil {
		vars = table.Variables(string(src))
	} else {
		var err error
		if vars, err = checkVariables(vars); err != nil {
			return nil, err
		}
	}
	if len(vars) > o.maxVars {
		return nil, fmt.Errorf("%w: %d variables, limit %d", table.ErrTooManyVariables, len(vars), o.maxVars)
	}
	tab, err := table.Enumerate(vars)
	if err != nil {
		if errors.Is(err, table.ErrNoVariables) {
			return nil, &table.NoVariablesError{Formula: formula}
		}
		return nil, err
	}
	toks, err := token.Tokenize(nil, src)
	if err != nil {
		var tkErr *token.TokenizeErr
		if errors.As(err, &tkErr) && tkErr.Pos.I < len(offs) {
			tkErr.Pos = *token.NewPosDoc([]byte(formula)).Pos(offs[tkErr.Pos.I])
		}
		return nil, &MalformedExpressionError{Residual: string(src), Err: err}
	}
	return &Engine{
		formula: formula,
		opts:    o,
		tab:     tab,
		toks:    toks,
	}, nil
}

// checkVariables returns vars sorted.  Each must be a single letter and
// appear once.
func checkVariables(vars []string) ([]string, error) {
	seen := make(map[string]bool, len(vars))
	for _, v := range vars {
		if len(v) != 1 || len(token.Variables([]byte(v))) != 1 {
			return nil, fmt.Errorf("%w: %q", ErrBadVariable, v)
		}
		if seen[v] {
			return nil, fmt.Errorf("%w: %q declared twice", ErrBadVariable, v)
		}
		seen[v] = true
	}
	res := slices.Clone(vars)
	slices.Sort(res)
	return res, nil
}

// Run reduces the formula until no operator application is left.
//
// On an unknown header Run stops and returns a *table.UnknownHeaderError;
// the columns added so far remain in Table.  If text remains which is not
// a single operand, Run returns a *MalformedExpressionError.
func (e *Engine) Run() error {
	if e.ran {
		return ErrAlreadyRun
	}
	e.ran = true
	for {
		op, start, end, operands, ok := e.next()
		if !ok {
			break
		}
		if err := e.reduce(op, start, end, operands); err != nil {
			return err
		}
	}
	if len(e.toks) != 1 || !e.toks[0].IsOperand() {
		return &MalformedExpressionError{Residual: e.Remaining()}
	}
	h := header(&e.toks[0])
	if !e.tab.Has(h) {
		return &table.UnknownHeaderError{Token: h.String()}
	}
	e.result = h
	return nil
}

func (e *Engine) next() (Op, int, int, []int, bool) {
	for _, op := range priority {
		start, end, operands, ok := op.match(e.toks)
		if ok {
			return op, start, end, operands, true
		}
	}
	return 0, 0, 0, nil, false
}

func (e *Engine) reduce(op Op, start, end int, operands []int) error {
	id := e.log.Len() + 1
	step := Step{
		ID:       id,
		Op:       op,
		Tokens:   append([]token.Token(nil), e.toks[start:end]...),
		Operands: make([]table.Header, len(operands)),
	}
	cols := make([]table.Column, len(operands))
	for i, j := range operands {
		h := header(&e.toks[j])
		c, err := e.tab.Column(h)
		if err != nil {
			return err
		}
		step.Operands[i] = h
		cols[i] = c
	}
	var (
		col table.Column
		err error
	)
	if op.Unary() {
		col = table.Map1(cols[0], func(v bool) bool { return op.Eval(v, false) })
	} else {
		col, err = table.Map2(cols[0], cols[1], op.Eval)
		if err != nil {
			return err
		}
	}
	if err := e.tab.Add(step.Header(), col); err != nil {
		return err
	}
	e.log.append(step)

	toks := make([]token.Token, 0, len(e.toks)-(end-start)+1)
	toks = append(toks, e.toks[:start]...)
	toks = append(toks, token.StepRef(id, e.toks[start].Pos))
	toks = append(toks, e.toks[end:]...)
	e.toks = toks

	remaining := e.Remaining()
	e.opts.log.Debug("reduced", "step", id, "op", op.String(), "text", step.Text(), "remaining", remaining)
	if debug.Reduce() {
		debug.Logf("step %d %s %q -> %q\n", id, op.Symbol(), step.Text(), remaining)
	}
	return nil
}

func header(tok *token.Token) table.Header {
	if tok.Type == token.TStep {
		return table.Step(tok.Step)
	}
	return table.Var(string(tok.Bytes))
}

// Formula returns the formula as given to New.
func (e *Engine) Formula() string { return e.formula }

// Table returns the table.  After a failed Run it holds the columns added
// before the failure.
func (e *Engine) Table() *table.Table { return e.tab }

// Log returns the steps performed so far.
func (e *Engine) Log() *Log { return &e.log }

// Result returns the header of the column holding the value of the whole
// formula.  It is zero until Run succeeds.
func (e *Engine) Result() table.Header { return e.result }

// Remaining returns the unreduced text.
func (e *Engine) Remaining() string { return token.Join(e.toks) }
