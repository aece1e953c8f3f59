// Package encode writes solved formulas as text, YAML or JSON.
//
// The text form is the table dump followed by the reconstructed solution,
// one step per line.  The YAML form keys step columns by integer and
// variable columns by name, in column order.
package encode
