package reduce

import (
	"errors"
	"fmt"
)

var (
	ErrMalformed   = errors.New("malformed expression")
	ErrBadVariable = errors.New("bad variable")
	ErrAlreadyRun  = errors.New("engine already run")
)

// MalformedExpressionError reports formula text that cannot be reduced to a
// single operand.  Err, when set, is the tokenizer error.
type MalformedExpressionError struct {
	Residual string
	Err      error
}

func (e *MalformedExpressionError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrMalformed}
	}
	return []error{ErrMalformed, e.Err}
}

func (e *MalformedExpressionError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s", ErrMalformed.Error(), e.Err.Error())
	}
	return fmt.Sprintf("%s: cannot reduce %q", ErrMalformed.Error(), e.Residual)
}
