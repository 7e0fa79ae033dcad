package scopid

import (
	"path/filepath"
	"strings"
)

func baseName(raw string) string {
	x := strings.TrimSpace(raw)
	if i := strings.LastIndexByte(x, '/'); i >= 0 {
		x = x[i+1:]
	}
	return x
}

func trimExt(x string) (string, bool) {
	lower := strings.ToLower(x)
	for _, ext := range StructExts {
		if strings.HasSuffix(lower, ext) {
			return x[:len(x)-len(ext)], true
		}
	}
	return x, false
}

// Cleanup normalizes raw to a domain ID.
//
// Leading directories and structure extensions (repeatedly, so d1abc_.pdb.gz
// works) are removed and the ID is lowercased unless lower is false. With a
// lookup the ID must be a member, possibly after adding or dropping one
// trailing underscore; otherwise ok is false.
func Cleanup(raw string, lower bool, lookup Lookup) (id string, ok bool) {
	x := baseName(raw)
	for stripped := true; stripped; {
		x, stripped = trimExt(x)
	}
	if lower {
		x = strings.ToLower(x)
	}
	if lookup == nil {
		return x, true
	}
	switch {
	case lookup.Has(x):
		return x, true
	case !strings.HasSuffix(x, "_") && lookup.Has(x+"_"):
		return x + "_", true
	case strings.HasSuffix(x, "_") && lookup.Has(x[:len(x)-1]):
		return x[:len(x)-1], true
	}
	return "", false
}

// Fallback is the literal ID kept for records that failed the lookup: the
// base name with at most one extension removed.
func Fallback(raw string, lower bool) string {
	x, _ := trimExt(baseName(raw))
	if lower {
		x = strings.ToLower(x)
	}
	return x
}

// MissingName is how an unresolved raw ID is reported.
func MissingName(raw string) string {
	return baseName(raw)
}

// QueryIDFromPath derives the query ID from a result file name by dropping
// everything from the last underscore: d1abc__A_motif.out -> d1abc__A.
func QueryIDFromPath(path string) string {
	base := filepath.Base(path)
	if i := strings.LastIndexByte(base, '_'); i >= 0 {
		return base[:i]
	}
	return base
}
