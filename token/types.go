package token

import (
	"fmt"
	"strconv"
	"strings"
)

type TokenType int

const (
	TVar TokenType = iota
	TStep
	TNeg
	TAnd
	TOr
	TImpl
	TEquiv
	TLParen
	TRParen
)

func (t TokenType) String() string {
	return map[TokenType]string{
		TVar:    "TVar",
		TStep:   "TStep",
		TNeg:    "TNeg",
		TAnd:    "TAnd",
		TOr:     "TOr",
		TImpl:   "TImpl",
		TEquiv:  "TEquiv",
		TLParen: "TLParen",
		TRParen: "TRParen",
	}[t]
}

type Token struct {
	Type  TokenType
	Pos   *Pos
	Bytes []byte

	// Step is the step identifier of a TStep token.
	Step int
}

// StepRef returns a step reference token for step id standing in place of
// the span starting at pos.
func StepRef(id int, pos *Pos) Token {
	return Token{
		Type:  TStep,
		Pos:   pos,
		Bytes: []byte(strconv.Itoa(id)),
		Step:  id,
	}
}

// IsOperand reports whether t can flank an operator.
func (t *Token) IsOperand() bool {
	return t.Type == TVar || t.Type == TStep
}

func (t *Token) Info() string {
	return fmt.Sprintf("%s %s", t.Type, t.Pos.String())
}

func (t *Token) String() string {
	return string(t.Bytes)
}

// Join renders toks back to formula text.  Step references render as
// their decimal identifier.
func Join(toks []Token) string {
	var b strings.Builder
	for i := range toks {
		b.Write(toks[i].Bytes)
	}
	return b.String()
}

type TokenizeErr struct {
	Err error
	Pos Pos
}

func (t *TokenizeErr) Unwrap() error {
	return t.Err
}

func NewTokenizeErr(e error, p *Pos) *TokenizeErr {
	return &TokenizeErr{Err: e, Pos: *p}
}

func (e *TokenizeErr) Error() string {
	return fmt.Sprintf("%s at %s", e.Err.Error(), e.Pos.String())
}

func UnexpectedErr(what string, p *Pos) error {
	return NewTokenizeErr(fmt.Errorf("%w %s", ErrUnexpected, what), p)
}
