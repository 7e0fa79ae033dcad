// Command combineMotif merges per-query motif search outputs into one
// query_id/target_id/score table for benchmark scoring.
//
// Sort the result afterwards if needed, e.g.
//
//	sort -k1,1 -k3,3nr combined.tsv > combined.sorted.tsv
package main

import (
	"bufio"
	"flag"
	"io"
	"log"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/liserjrqlxue/goUtil/fmtUtil"
	"github.com/liserjrqlxue/goUtil/osUtil"
	"github.com/liserjrqlxue/goUtil/simpleUtil"
	"github.com/liserjrqlxue/version"

	"motifBench/pkg/scopid"
	"motifBench/pkg/triplet"
)

var verbosity Verbosity

func init() {
	flag.Var(&verbosity, "v", "verbosity, repeatable or -v=N, 1: stats, 2: skipped queries")
}

// flag
var (
	inputDir = flag.String(
		"input-dir",
		"",
		"dir of *_motif.out files, non-recursive unless -recursive",
	)
	pattern = flag.String(
		"pattern",
		"*_motif.out",
		"file name glob pattern",
	)
	output = flag.String(
		"output",
		"",
		"output TSV path",
	)
	lookupPath = flag.String(
		"lookup",
		"",
		"SCOP lookup file, first column = valid domain IDs",
	)
	scopLookup = flag.String(
		"scop-lookup",
		"",
		"alias of -lookup",
	)
	keepNonLookup = flag.Bool(
		"keep-nonlookup",
		false,
		"keep lines with IDs not present in lookup",
	)
	noLower = flag.Bool(
		"no-lower",
		false,
		"do not lowercase IDs during cleanup",
	)
	keepSelfHits = flag.Bool(
		"keep-selfhits",
		false,
		"do not drop self hits",
	)
	maxFiles = flag.Int(
		"max-files",
		0,
		"limit number of motif files processed, 0 for all",
	)
	recursive = flag.Bool(
		"recursive",
		false,
		"recurse into subdirectories when matching pattern",
	)
	veryVerbose = flag.Bool(
		"vv",
		false,
		"same as -v=2",
	)
	dryRun = flag.Bool(
		"dry-run",
		false,
		"discover and report stats without writing output",
	)
	addHeader = flag.Bool(
		"add-header",
		false,
		"add header line to output TSV",
	)
	scoreCol = flag.Int(
		"score-col",
		1,
		"0-based index of score column",
	)
	targetCol = flag.Int(
		"target-col",
		0,
		"0-based index of target id column",
	)
	whitespace = flag.Bool(
		"whitespace",
		false,
		"force splitting on any whitespace",
	)
	minFields = flag.Int(
		"min-fields",
		2,
		"minimum fields required in a motif line",
	)
	reportMissing = flag.String(
		"report-missing",
		"",
		"write unique missing (non-lookup) IDs to this file",
	)
	xlsxOut = flag.String(
		"xlsx",
		"",
		"optional stats xlsx",
	)
)

func main() {
	version.LogVersion()
	flag.Parse()
	if *inputDir == "" || *output == "" {
		flag.PrintDefaults()
		log.Fatal("-input-dir/-output required")
	}
	if *veryVerbose {
		verbosity = max(verbosity, 2)
	}
	SetLogLevel(int(verbosity))
	if *lookupPath == "" {
		*lookupPath = *scopLookup
	}

	if info, err := os.Stat(*inputDir); err != nil || !info.IsDir() {
		log.Fatalf("input dir not found: %s", *inputDir)
	}

	var opt = triplet.DefaultOptions()
	opt.KeepNonLookup = *keepNonLookup
	opt.NoLower = *noLower
	opt.KeepSelfHits = *keepSelfHits
	opt.TargetCol = *targetCol
	opt.ScoreCol = *scoreCol
	opt.MinFields = *minFields
	opt.Whitespace = *whitespace

	if *lookupPath != "" {
		if info, err := os.Stat(*lookupPath); err != nil || info.IsDir() {
			log.Fatalf("SCOP lookup file not found: %s", *lookupPath)
		}
		opt.Lookup = simpleUtil.HandleError(scopid.LoadLookupFile(*lookupPath))
		slog.Info("Loaded SCOP IDs", "count", len(opt.Lookup))
	}

	files := simpleUtil.HandleError(triplet.Discover(*inputDir, *pattern, *recursive))
	if *maxFiles > 0 && len(files) > *maxFiles {
		files = files[:*maxFiles]
	}
	if len(files) == 0 {
		log.Fatalf("No files matched pattern %s in %s", *pattern, *inputDir)
	}
	slog.Info("Found motif files", "count", len(files))

	var (
		w  io.Writer
		bw *bufio.Writer
	)
	if !*dryRun {
		simpleUtil.CheckErr(os.MkdirAll(filepath.Dir(*output), 0755))
		fh := osUtil.Create(*output)
		defer simpleUtil.DeferClose(fh)
		bw = bufio.NewWriter(fh)
		w = bw
		if *addHeader {
			fmtUtil.FprintStringArray(bw, scopid.Header, "\t")
		}
	}

	combiner := triplet.NewCombiner(opt, w)
	for _, path := range files {
		simpleUtil.CheckErr(combiner.CombineFile(path))
	}
	if bw != nil {
		simpleUtil.CheckErr(bw.Flush())
	}

	LogStats(&combiner.Stats, opt.Lookup != nil)
	if opt.Lookup != nil && *reportMissing != "" {
		WriteMissing(*reportMissing, combiner.MissingIDs())
	}
	if *xlsxOut != "" {
		WriteStats(*xlsxOut, &combiner.Stats, opt.Lookup != nil)
		log.Printf("SaveAs(%s)", *xlsxOut)
	}
	if !*dryRun {
		slog.Info("Output written", "path", *output)
	}
}
