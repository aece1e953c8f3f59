package table

// Column holds one cell per row, each '0' or '1'.  Columns are strings so
// that a column, once built, cannot be changed.
type Column string

func (c Column) Len() int { return len(c) }

// Bit returns the value of row i.
func (c Column) Bit(i int) bool { return c[i] == '1' }

// Ints returns the cells of c as 0/1 integers.
func (c Column) Ints() []int {
	res := make([]int, len(c))
	for i := 0; i < len(c); i++ {
		if c[i] == '1' {
			res[i] = 1
		}
	}
	return res
}

// Map1 returns the column f(c[i]) for each row.
func Map1(c Column, f func(bool) bool) Column {
	buf := make([]byte, len(c))
	for i := range buf {
		buf[i] = bitChar(f(c.Bit(i)))
	}
	return Column(buf)
}

// Map2 returns the column f(a[i], b[i]) for each row.  a and b must have
// the same length.
func Map2(a, b Column, f func(bool, bool) bool) (Column, error) {
	if len(a) != len(b) {
		return "", ErrColumnLength
	}
	buf := make([]byte, len(a))
	for i := range buf {
		buf[i] = bitChar(f(a.Bit(i), b.Bit(i)))
	}
	return Column(buf), nil
}

func bitChar(v bool) byte {
	if v {
		return '1'
	}
	return '0'
}
