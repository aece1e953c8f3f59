package reduce

import (
	"io"
	"log/slog"

	"github.com/signadot/truthtable/table"
)

type engineOpts struct {
	vars    []string
	maxVars int
	log     *slog.Logger
}

type Option func(*engineOpts)

// WithVariables declares the variables of the formula instead of
// extracting them from its text.  Columns follow the sorted order of vars.
// Operands naming other letters fail with an unknown header error when
// used.
func WithVariables(vars ...string) Option {
	return func(o *engineOpts) { o.vars = vars }
}

// WithMaxVariables limits the number of variables, and so the table to
// 2^n rows.  n above table.MaxVariables has no effect.
func WithMaxVariables(n int) Option {
	return func(o *engineOpts) { o.maxVars = min(n, table.MaxVariables) }
}

// WithLogger sets the logger receiving a debug record per step.
func WithLogger(l *slog.Logger) Option {
	return func(o *engineOpts) { o.log = l }
}

func newEngineOpts(opts []Option) *engineOpts {
	o := &engineOpts{maxVars: table.MaxVariables}
	for _, opt := range opts {
		opt(o)
	}
	if o.log == nil {
		o.log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return o
}
