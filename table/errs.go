package table

import (
	"errors"
	"fmt"
)

var (
	ErrNoVariables      = errors.New("variables were not provided")
	ErrUnknownHeader    = errors.New("unknown header")
	ErrDuplicateHeader  = errors.New("duplicate header")
	ErrColumnLength     = errors.New("column length mismatch")
	ErrTooManyVariables = errors.New("too many variables")
)

// NoVariablesError is returned when a formula has no variable letters.
type NoVariablesError struct {
	Formula string
}

func (e *NoVariablesError) Unwrap() error {
	return ErrNoVariables
}

func (e *NoVariablesError) Error() string {
	if e.Formula == "" {
		return ErrNoVariables.Error()
	}
	return fmt.Sprintf("%s in %q", ErrNoVariables.Error(), e.Formula)
}

// UnknownHeaderError carries the token naming a header which is not in the
// table.
type UnknownHeaderError struct {
	Token string
}

func (e *UnknownHeaderError) Unwrap() error {
	return ErrUnknownHeader
}

func (e *UnknownHeaderError) Error() string {
	return fmt.Sprintf("%s %q: add %s to headers", ErrUnknownHeader.Error(), e.Token, e.Token)
}
