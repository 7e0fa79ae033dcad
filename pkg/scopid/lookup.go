package scopid

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/liserjrqlxue/goUtil/scannerUtil"
	"github.com/liserjrqlxue/goUtil/textUtil"
	"github.com/samber/lo"
)

// Lookup is the set of canonical domain IDs. A nil Lookup disables
// membership checks.
type Lookup map[string]struct{}

func (l Lookup) Has(id string) bool {
	_, ok := l[id]
	return ok
}

// newLookup keeps the first column of a tab map: blank keys and '#'
// comment lines are dropped.
func newLookup(db map[string]string) Lookup {
	lookup := make(Lookup)
	for _, key := range lo.Keys(db) {
		if strings.HasPrefix(key, "#") {
			continue
		}
		if id := strings.TrimSpace(key); id != "" {
			lookup[id] = struct{}{}
		}
	}
	return lookup
}

// LoadLookup reads domain IDs from the first tab-separated column.
func LoadLookup(r io.Reader) (Lookup, error) {
	db, err := scannerUtil.Scan2Map(bufio.NewScanner(r), "\t", true)
	if err != nil {
		return nil, fmt.Errorf("read lookup: %w", err)
	}
	return newLookup(db), nil
}

func LoadLookupFile(path string) (Lookup, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if info.IsDir() {
		return nil, fmt.Errorf("lookup %s is a directory", path)
	}
	db, err := textUtil.File2Map(path, "\t", true)
	if err != nil {
		return nil, fmt.Errorf("read lookup %s: %w", path, err)
	}
	return newLookup(db), nil
}
