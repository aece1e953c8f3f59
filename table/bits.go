package table

import (
	"strconv"
	"strings"
)

// RenderBits formats value in binary, left padded with zeros to width.  If
// the binary form is longer than width the low order bits are dropped.
func RenderBits(value uint64, width int) string {
	s := strconv.FormatUint(value, 2)
	switch delta := len(s) - width; {
	case delta < 0:
		return strings.Repeat("0", -delta) + s
	case delta > 0:
		return s[:width]
	}
	return s
}
