package table

import "strconv"

// Header identifies a column: either a variable name or a step
// identifier.
type Header struct {
	name string
	step int
}

// Var returns the header of variable name.
func Var(name string) Header {
	return Header{name: name}
}

// Step returns the header of step id.  Step identifiers start at 1.
func Step(id int) Header {
	return Header{step: id}
}

// ParseHeader returns a step header when s is a decimal integer and a
// variable header otherwise.
func ParseHeader(s string) Header {
	if id, err := strconv.Atoi(s); err == nil && id > 0 {
		return Step(id)
	}
	return Var(s)
}

func (h Header) IsStep() bool { return h.step != 0 }
func (h Header) StepID() int  { return h.step }
func (h Header) Name() string { return h.name }

// Key returns the header as an int for steps and as a string for
// variables.
func (h Header) Key() any {
	if h.IsStep() {
		return h.step
	}
	return h.name
}

func (h Header) String() string {
	if h.IsStep() {
		return strconv.Itoa(h.step)
	}
	return h.name
}
