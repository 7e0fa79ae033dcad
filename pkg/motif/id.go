package motif

import (
	"strings"
	"unicode"
)

func isChainChar(s string) bool {
	r := []rune(s)
	return len(r) == 1 && (unicode.IsLetter(r[0]) || unicode.IsDigit(r[0]))
}

func isASCIIAlnum(b byte) bool {
	return b >= 'a' && b <= 'z' || b >= 'A' && b <= 'Z' || b >= '0' && b <= '9'
}

// ExtractChain derives the chain of an ID such as d1twfa__A or d1y5ia2_A.
// The text after the last underscore wins when it is a single letter or
// digit, then the trailing alphanumeric character, then DefaultChain.
func ExtractChain(id string) string {
	if i := strings.LastIndexByte(id, '_'); i >= 0 {
		if c := id[i+1:]; isChainChar(c) {
			return c
		}
	}
	if n := len(id); n > 0 && isASCIIAlnum(id[n-1]) {
		return id[n-1:]
	}
	return DefaultChain
}

// BaseID strips a trailing _<chain> suffix: d1twfa__A -> d1twfa_.
func BaseID(id string) string {
	if i := strings.LastIndexByte(id, '_'); i >= 0 && isChainChar(id[i+1:]) {
		return id[:i]
	}
	return id
}
