package token

// Keywords spelling negation.  NOT is a synonym for INV.
var negKeywords = [][]byte{[]byte("INV"), []byte("NOT")}

// negKeywordAt returns the length of the negation keyword starting d, or 0.
func negKeywordAt(d []byte) int {
	for _, kw := range negKeywords {
		if isKeyWordPrefix(d, kw) {
			return len(kw)
		}
	}
	return 0
}

func isKeyWordPrefix(d, pre []byte) bool {
	if len(d) < len(pre) {
		return false
	}
	for i := range pre {
		if d[i] != pre[i] {
			return false
		}
	}
	return true
}

func isLetter(c byte) bool {
	return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}
