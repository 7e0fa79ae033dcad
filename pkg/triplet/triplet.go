package triplet

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"
	"slices"
	"strings"

	"github.com/liserjrqlxue/goUtil/simpleUtil"
	"github.com/samber/lo"

	"motifBench/pkg/scopid"
)

type Options struct {
	// Lookup, when non-nil, restricts IDs to known domains.
	Lookup        scopid.Lookup
	KeepNonLookup bool
	NoLower       bool
	KeepSelfHits  bool

	TargetCol  int
	ScoreCol   int
	MinFields  int
	Whitespace bool
}

func DefaultOptions() Options {
	return Options{
		TargetCol: 0,
		ScoreCol:  1,
		MinFields: 2,
	}
}

type Triplet struct {
	Query  string
	Target string
	Score  float64
}

func (t *Triplet) String() string {
	return fmt.Sprintf("%s\t%s\t%s", t.Query, t.Target, scopid.FormatScore(t.Score))
}

type Stats struct {
	Files          int
	SkippedQueries int
	RawLines       int
	Kept           int
	SelfHits       int
	LookupMissing  int
	BadScores      int

	missing map[string]struct{}
}

// MissingIDs returns the unique unresolved target IDs, sorted.
func (s *Stats) MissingIDs() []string {
	ids := lo.Keys(s.missing)
	slices.Sort(ids)
	return ids
}

// Combiner normalizes result files into triplets and writes them to W.
// A nil W counts records without writing (dry run).
type Combiner struct {
	Options
	Stats

	W io.Writer
}

func NewCombiner(opt Options, w io.Writer) *Combiner {
	return &Combiner{
		Options: opt,
		Stats:   Stats{missing: make(map[string]struct{})},
		W:       w,
	}
}

func (c *Combiner) lower() bool {
	return !c.NoLower
}

// QueryID resolves the query of a result file. ok is false when the file
// must be skipped because its query is not in the lookup.
func (c *Combiner) QueryID(path string) (id string, ok bool) {
	raw := scopid.QueryIDFromPath(path)
	if id, ok = scopid.Cleanup(raw, c.lower(), c.Lookup); ok {
		return id, true
	}
	if !c.KeepNonLookup {
		return "", false
	}
	return lo.Ternary(c.lower(), strings.ToLower(raw), raw), true
}

// SplitFields splits a result line into columns. Tab is preferred; lines
// with fewer than MinFields tab columns are split on whitespace.
func (c *Combiner) SplitFields(line string) []string {
	if c.Whitespace {
		return strings.Fields(line)
	}
	parts := strings.Split(line, "\t")
	if len(parts) < c.MinFields {
		parts = strings.Fields(line)
	}
	return parts
}

func column(parts []string, i int) (string, bool) {
	if i < 0 {
		i += len(parts)
	}
	if i < 0 || i >= len(parts) {
		return "", false
	}
	return parts[i], true
}

// Combine reads the result lines of one query and emits its triplets.
func (c *Combiner) Combine(query string, r io.Reader) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 16*1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		parts := c.SplitFields(line)
		if len(parts) < c.MinFields {
			continue
		}
		targetRaw, ok1 := column(parts, c.TargetCol)
		scoreRaw, ok2 := column(parts, c.ScoreCol)
		if !ok1 || !ok2 {
			continue
		}
		c.RawLines++

		target, ok := scopid.Cleanup(targetRaw, c.lower(), c.Lookup)
		if !ok {
			if !c.KeepNonLookup {
				c.LookupMissing++
				c.missing[scopid.MissingName(targetRaw)] = struct{}{}
				continue
			}
			target = scopid.Fallback(targetRaw, c.lower())
		}

		if !c.KeepSelfHits && query == target {
			c.SelfHits++
			continue
		}

		score, err := scopid.ParseScore(scoreRaw)
		if err != nil {
			c.BadScores++
			continue
		}

		if c.W != nil {
			t := &Triplet{Query: query, Target: target, Score: score}
			if _, err = fmt.Fprintln(c.W, t); err != nil {
				return err
			}
		}
		c.Kept++
	}
	return scanner.Err()
}

// CombineFile processes one result file.
func (c *Combiner) CombineFile(path string) error {
	query, ok := c.QueryID(path)
	if !ok {
		c.SkippedQueries++
		slog.Debug("Skip query not in lookup", "query", scopid.QueryIDFromPath(path), "path", path)
		return nil
	}
	c.Files++

	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer simpleUtil.DeferClose(f)

	if err = c.Combine(query, f); err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	return nil
}
