package motif

import (
	"path/filepath"
	"strings"
	"testing"
)

func TestBuildMerged(t *testing.T) {
	dir := t.TempDir()
	touch(t, filepath.Join(dir, "d1twfa_.pdb"))

	ids := []string{"d1twfa__A", "d1twfa__B"}
	rows := [][]float64{
		{1, 9, 8, 2},
		{5, 1, 1, 7},
	}
	entries, err := Build(ids, rows, Options{Percent: 50, MinResidues: 1, StructureDir: dir, OutputDir: "res/50"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected one merged entry, got %d", len(entries))
	}
	e := entries[0]
	if e.ID != "d1twfa_" || e.Motif() != "A2-3,B1,B4" {
		t.Fatalf("unexpected entry: %s %s", e.ID, e.Motif())
	}
	if !e.Found || e.Structure != filepath.Join(dir, "d1twfa_.pdb") {
		t.Fatalf("unexpected structure: %s %v", e.Structure, e.Found)
	}
	if e.Output != filepath.Join("res/50", "d1twfa__motif.out") {
		t.Fatalf("unexpected output path: %s", e.Output)
	}
	if e.Residues() != 4 || e.ChainNames() != "A,B" {
		t.Fatalf("unexpected summary: %d %s", e.Residues(), e.ChainNames())
	}
	want := e.Structure + "\tA2-3,B1,B4\t" + e.Output
	if e.String() != want {
		t.Fatalf("row = %q, want %q", e.String(), want)
	}
}

func TestBuildPerChain(t *testing.T) {
	ids := []string{"d1twfa__A", "d2abc_", "d1twfa__B"}
	rows := [][]float64{{1, 9}, {}, {4, 3}}
	entries, err := Build(ids, rows, Options{Percent: 50, MinResidues: 1, PerChain: true, StructureDir: "pdb"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].String() != filepath.Join("pdb", "d1twfa__A_.pdb")+"\tA2" {
		t.Fatalf("unexpected row: %q", entries[0].String())
	}
	if entries[1].Motif() != "B1" || entries[1].Output != "" {
		t.Fatalf("unexpected second entry: %q", entries[1].String())
	}
}

func TestBuildMismatch(t *testing.T) {
	if _, err := Build([]string{"a", "b"}, [][]float64{{1}}, Options{Percent: 5}); err == nil {
		t.Fatalf("expected mismatch error")
	}
}

func TestBuildLongIDWarnsInsteadOfFailing(t *testing.T) {
	id := strings.Repeat("d", 300) + "_A"
	for _, perChain := range []bool{false, true} {
		entries, err := Build([]string{id}, [][]float64{{1, 2, 3}}, Options{Percent: 50, MinResidues: 1, PerChain: perChain, StructureDir: t.TempDir()})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(entries) != 1 || entries[0].Found || entries[0].Motif() != "A2-3" {
			t.Fatalf("perChain=%v: unexpected entry %+v", perChain, entries[0])
		}
	}
}
