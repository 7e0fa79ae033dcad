package triplet

import (
	"bytes"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"motifBench/pkg/scopid"
)

func TestCombineNoLookup(t *testing.T) {
	var buf bytes.Buffer
	c := NewCombiner(DefaultOptions(), &buf)

	query, ok := c.QueryID("/r/d1abc__A_motif.out")
	if !ok || query != "d1abc__a" {
		t.Fatalf("unexpected query: %q %v", query, ok)
	}
	if err := c.Combine(query, strings.NewReader("/p/pdb/d1xyz_.pdb\t3.5\n")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := buf.String(); got != "d1abc__a\td1xyz_\t3.5\n" {
		t.Fatalf("got %q", got)
	}
	if c.RawLines != 1 || c.Kept != 1 {
		t.Fatalf("unexpected stats: %+v", c.Stats)
	}
}

func TestCombineFiltering(t *testing.T) {
	input := strings.Join([]string{
		"# comment",
		"",
		"d1abc__a.pdb 2",
		"d2xyz_\tNA",
		"d3qrs_\t7",
		"onlyonefield",
	}, "\n")

	var buf bytes.Buffer
	c := NewCombiner(DefaultOptions(), &buf)
	if err := c.Combine("d1abc__a", strings.NewReader(input)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := buf.String(); got != "d1abc__a\td3qrs_\t7.0\n" {
		t.Fatalf("got %q", got)
	}
	if c.RawLines != 3 || c.SelfHits != 1 || c.BadScores != 1 || c.Kept != 1 {
		t.Fatalf("unexpected stats: %+v", c.Stats)
	}
}

func TestCombineKeepSelfHits(t *testing.T) {
	opt := DefaultOptions()
	opt.KeepSelfHits = true
	var buf bytes.Buffer
	c := NewCombiner(opt, &buf)
	if err := c.Combine("d1abc_", strings.NewReader("d1abc_\t1\n")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if buf.String() != "d1abc_\td1abc_\t1.0\n" || c.SelfHits != 0 {
		t.Fatalf("self hit not kept: %q", buf.String())
	}
}

func TestCombineLookup(t *testing.T) {
	opt := DefaultOptions()
	opt.Lookup = scopid.Lookup{"d1xyz_": {}, "d1abc__a": {}}

	var buf bytes.Buffer
	c := NewCombiner(opt, &buf)
	input := "/p/d1xyz.pdb\t1.0\n/p/d9zzz_.pdb\t2\n/p/d8yyy_.pdb\t3\n"
	if err := c.Combine("d1abc__a", strings.NewReader(input)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := buf.String(); got != "d1abc__a\td1xyz_\t1.0\n" {
		t.Fatalf("got %q", got)
	}
	if c.LookupMissing != 2 {
		t.Fatalf("expected 2 missing, got %d", c.LookupMissing)
	}
	if ids := c.MissingIDs(); !slices.Equal(ids, []string{"d8yyy_.pdb", "d9zzz_.pdb"}) {
		t.Fatalf("unexpected missing ids: %v", ids)
	}

	if _, ok := c.QueryID("d7www__B_motif.out"); ok {
		t.Fatalf("expected query outside lookup to be skipped")
	}
}

func TestCombineKeepNonLookup(t *testing.T) {
	opt := DefaultOptions()
	opt.Lookup = scopid.Lookup{"d1xyz_": {}}
	opt.KeepNonLookup = true

	var buf bytes.Buffer
	c := NewCombiner(opt, &buf)
	query, ok := c.QueryID("D7WWW__B_motif.out")
	if !ok || query != "d7www__b" {
		t.Fatalf("unexpected query: %q %v", query, ok)
	}
	if err := c.Combine(query, strings.NewReader("/p/D9ZZZ_.pdb\t2\n")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := buf.String(); got != "d7www__b\td9zzz_\t2.0\n" {
		t.Fatalf("got %q", got)
	}
	if c.LookupMissing != 0 || len(c.MissingIDs()) != 0 {
		t.Fatalf("kept ids should not count as missing: %+v", c.Stats)
	}
}

func TestCombineColumns(t *testing.T) {
	opt := DefaultOptions()
	opt.TargetCol = 1
	opt.ScoreCol = -1
	opt.MinFields = 3

	var buf bytes.Buffer
	c := NewCombiner(opt, &buf)
	input := "x\td2xyz_\t0.5\t9\nd3\tshort\n"
	if err := c.Combine("q", strings.NewReader(input)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := buf.String(); got != "q\td2xyz_\t9.0\n" {
		t.Fatalf("got %q", got)
	}
	if c.RawLines != 1 {
		t.Fatalf("short line should not be scanned: %+v", c.Stats)
	}
}

func TestSplitFieldsWhitespace(t *testing.T) {
	opt := DefaultOptions()
	c := NewCombiner(opt, nil)
	if got := c.SplitFields("a b\tc"); len(got) != 2 {
		t.Fatalf("tab split expected, got %q", got)
	}
	c.Whitespace = true
	if got := c.SplitFields("a b\tc"); len(got) != 3 {
		t.Fatalf("whitespace split expected, got %q", got)
	}
}

func TestCombineFileDryRun(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "d1abc__A_motif.out")
	if err := os.WriteFile(path, []byte("d2xyz_.pdb\t1\nd3qrs_.pdb\t2\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	c := NewCombiner(DefaultOptions(), nil)
	if err := c.CombineFile(path); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.Files != 1 || c.Kept != 2 {
		t.Fatalf("unexpected stats: %+v", c.Stats)
	}

	opt := DefaultOptions()
	opt.Lookup = scopid.Lookup{"d2xyz_": {}}
	c = NewCombiner(opt, nil)
	if err := c.CombineFile(path); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.Files != 0 || c.SkippedQueries != 1 || c.RawLines != 0 {
		t.Fatalf("query outside lookup should skip the file: %+v", c.Stats)
	}
}
