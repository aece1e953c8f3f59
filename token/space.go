package token

import (
	"unicode"
	"unicode/utf8"
)

// StripSpace returns src without white space and, for each byte of the
// result, its offset in src.  Invalid utf8 is kept as is.
func StripSpace(src []byte) ([]byte, []int) {
	res := make([]byte, 0, len(src))
	offs := make([]int, 0, len(src))
	for i := 0; i < len(src); {
		r, sz := utf8.DecodeRune(src[i:])
		if r != utf8.RuneError && unicode.IsSpace(r) {
			i += sz
			continue
		}
		for j := i; j < i+sz; j++ {
			res = append(res, src[j])
			offs = append(offs, j)
		}
		i += sz
	}
	return res, offs
}
