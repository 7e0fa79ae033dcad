package main

import (
	"bufio"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/liserjrqlxue/goUtil/fmtUtil"
	"github.com/liserjrqlxue/goUtil/osUtil"
	"github.com/liserjrqlxue/goUtil/simpleUtil"

	"motifBench/pkg/motif"
)

func LoadIDs(path string) []string {
	var f = osUtil.Open(path)
	defer simpleUtil.DeferClose(f)
	return motif.ReadIDs(f)
}

func LoadScores(path string) [][]float64 {
	var f = osUtil.Open(path)
	defer simpleUtil.DeferClose(f)
	return motif.ReadScores(f)
}

// WarnMissing reports merged entries whose structure file could not be
// resolved. The unresolved path is still written to the manifest.
func WarnMissing(entries []*motif.Entry, perChain bool) (missing int) {
	if perChain {
		return 0
	}
	for _, entry := range entries {
		if !entry.Found {
			missing++
			slog.Warn("PDB not found for base ID (tried variants)", "id", entry.ID, "path", entry.Structure)
		}
	}
	return missing
}

// WriteManifest writes one tab-separated row per entry.
func WriteManifest(path string, entries []*motif.Entry) {
	simpleUtil.CheckErr(os.MkdirAll(filepath.Dir(path), 0755))
	var fh = osUtil.Create(path)
	defer simpleUtil.DeferClose(fh)

	var bw = bufio.NewWriter(fh)
	for _, entry := range entries {
		fmtUtil.Fprintln(bw, entry)
	}
	simpleUtil.CheckErr(bw.Flush())
}
