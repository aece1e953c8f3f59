package truthtable

import (
	"github.com/signadot/truthtable/reduce"
	"github.com/signadot/truthtable/table"
)

type (
	NoVariablesError         = table.NoVariablesError
	UnknownHeaderError       = table.UnknownHeaderError
	MalformedExpressionError = reduce.MalformedExpressionError
)

var (
	ErrNoVariables      = table.ErrNoVariables
	ErrUnknownHeader    = table.ErrUnknownHeader
	ErrMalformed        = reduce.ErrMalformed
	ErrTooManyVariables = table.ErrTooManyVariables
)
