package scopid

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

// ParseScore parses a result score. Overflowing values become ±Inf instead
// of failing.
func ParseScore(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil && errors.Is(err, strconv.ErrRange) {
		return v, nil
	}
	return v, err
}

// FormatScore writes v in shortest round-trip form. Integral values keep a
// ".0" and magnitudes outside [1e-4, 1e16) use exponent notation, so 3 -> 3.0,
// 3.5 -> 3.5, 1e-05 -> 1e-05.
func FormatScore(v float64) string {
	switch {
	case math.IsNaN(v):
		return "nan"
	case math.IsInf(v, 1):
		return "inf"
	case math.IsInf(v, -1):
		return "-inf"
	}
	sci := strconv.FormatFloat(v, 'e', -1, 64)
	exp, _ := strconv.Atoi(sci[strings.LastIndexByte(sci, 'e')+1:])
	if exp < -4 || exp >= 16 {
		return sci
	}
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.ContainsRune(s, '.') {
		s += ".0"
	}
	return s
}
