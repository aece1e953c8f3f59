package token

import (
	"sort"
	"unicode"
	"unicode/utf8"

	"github.com/signadot/truthtable/debug"
)

// Tokenize appends the tokens of src to dst.  Whitespace is not
// significant and produces no tokens.
func Tokenize(dst []Token, src []byte) ([]Token, error) {
	doc := NewPosDoc(src)
	i, n := 0, len(src)
	for i < n {
		c := src[i]
		if c >= utf8.RuneSelf {
			r, sz := utf8.DecodeRune(src[i:])
			if r == utf8.RuneError && sz <= 1 {
				return nil, NewTokenizeErr(ErrBadUTF8, doc.Pos(i))
			}
			if unicode.IsSpace(r) {
				i += sz
				continue
			}
			return nil, UnexpectedErr(string(r), doc.Pos(i))
		}
		tok := Token{Pos: doc.Pos(i)}
		sz := 1
		switch {
		case c == ' ', c == '\t', c == '\n', c == '\r', c == '\v', c == '\f':
			i++
			continue
		case isLetter(c):
			if kw := negKeywordAt(src[i:]); kw != 0 {
				tok.Type = TNeg
				sz = kw
				break
			}
			tok.Type = TVar
		case c == '(':
			tok.Type = TLParen
		case c == ')':
			tok.Type = TRParen
		case c == '=':
			tok.Type = TEquiv
		case c == '/' && i+1 < n && src[i+1] == '\\':
			tok.Type = TAnd
			sz = 2
		case c == '\\' && i+1 < n && src[i+1] == '/':
			tok.Type = TOr
			sz = 2
		case c == '-' && i+1 < n && src[i+1] == '>':
			tok.Type = TImpl
			sz = 2
		default:
			return nil, UnexpectedErr(string(c), doc.Pos(i))
		}
		tok.Bytes = src[i : i+sz]
		if debug.Tokenize() {
			debug.Logf("token %s\n", tok.Info())
		}
		dst = append(dst, tok)
		i += sz
	}
	return dst, nil
}

// Variables returns the distinct variable letters of src in lexicographic
// order.  White space is removed first, negation keywords are skipped and
// any byte which is not an ASCII letter is ignored, so Variables never
// fails.
func Variables(src []byte) []string {
	src, _ = StripSpace(src)
	seen := map[byte]bool{}
	for i := 0; i < len(src); {
		if kw := negKeywordAt(src[i:]); kw != 0 {
			i += kw
			continue
		}
		if isLetter(src[i]) {
			seen[src[i]] = true
		}
		i++
	}
	res := make([]string, 0, len(seen))
	for c := range seen {
		res = append(res, string(c))
	}
	sort.Strings(res)
	return res
}
