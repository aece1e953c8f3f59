package encode

import (
	"github.com/signadot/truthtable/table"
)

type EncState struct {
	format Format
	colors *table.Colors
	steps  bool
	rows   []int
}

type EncodeOption func(*EncState)

// EncodeFormat selects the output format, Text by default.
func EncodeFormat(f Format) EncodeOption {
	return func(es *EncState) { es.format = f }
}

func EncodeColors(c *table.Colors) EncodeOption {
	return func(es *EncState) { es.colors = c }
}

// EncodeSteps controls whether the solution steps are written.
func EncodeSteps(v bool) EncodeOption {
	return func(es *EncState) { es.steps = v }
}

// EncodeRows restricts the table to the given rows.
func EncodeRows(rows []int) EncodeOption {
	return func(es *EncState) { es.rows = rows }
}
