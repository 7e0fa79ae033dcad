// Command genMotifInput writes the motif search manifest: one row per
// structure with its top-scoring conservation residues as motif tokens.
package main

import (
	"flag"
	"log"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/liserjrqlxue/goUtil/simpleUtil"
	"github.com/liserjrqlxue/version"

	"motifBench/pkg/motif"
)

// flag
var (
	ids = flag.String(
		"ids",
		"",
		"ids.txt, lines with >ID, order defines protein order",
	)
	scores = flag.String(
		"scores",
		"",
		"conservation_pred.txt, one line of scores per ID",
	)
	pdbDir = flag.String(
		"pdb-dir",
		"",
		"dir of structure files named <ID>_.pdb",
	)
	percent = flag.Float64(
		"percent",
		5.0,
		"top percent of residues by score",
	)
	minResidues = flag.Int(
		"min-residues",
		1,
		"floor on number of residues selected",
	)
	out = flag.String(
		"out",
		"",
		"output manifest TSV, _<percent> is spliced before the extension",
	)
	withOutputPath = flag.Bool(
		"with-output-path",
		false,
		"append third column with per-ID output file in -output-dir",
	)
	outputDir = flag.String(
		"output-dir",
		"",
		"dir of per-ID output files, required with -with-output-path",
	)
	perChain = flag.Bool(
		"per-chain",
		false,
		"do not merge chains, keep one row per original ID",
	)
	verbose = flag.Bool(
		"verbose",
		false,
		"verbose log",
	)
	xlsxOut = flag.String(
		"xlsx",
		"",
		"optional summary xlsx",
	)
)

func main() {
	version.LogVersion()
	flag.Parse()
	if *ids == "" || *scores == "" || *pdbDir == "" || *out == "" {
		flag.PrintDefaults()
		log.Fatal("-ids/-scores/-pdb-dir/-out required")
	}
	if *withOutputPath && *outputDir == "" {
		flag.PrintDefaults()
		log.Fatal("-output-dir required with -with-output-path")
	}
	if *verbose {
		slog.SetLogLoggerLevel(slog.LevelDebug)
	}
	for _, path := range []string{*ids, *scores} {
		if info, err := os.Stat(path); err != nil || info.IsDir() {
			log.Fatalf("input not found: %s", path)
		}
	}
	if info, err := os.Stat(*pdbDir); err != nil || !info.IsDir() {
		log.Fatalf("pdb dir not found: %s", *pdbDir)
	}

	var (
		idList    = LoadIDs(*ids)
		scoreRows = LoadScores(*scores)

		label        = motif.PercentLabel(*percent)
		manifestPath = motif.ManifestPath(*out, label)
		resultDir    string
	)
	if len(idList) != len(scoreRows) {
		log.Fatalf("Mismatch: %d ids vs %d score lines", len(idList), len(scoreRows))
	}

	if *outputDir != "" {
		resultDir = filepath.Join(*outputDir, label)
		simpleUtil.CheckErr(os.MkdirAll(resultDir, 0755))
	}
	slog.Debug("Output", "manifest", manifestPath, "resultDir", resultDir)

	opt := motif.Options{
		Percent:      *percent,
		MinResidues:  *minResidues,
		PerChain:     *perChain,
		StructureDir: *pdbDir,
	}
	if *withOutputPath {
		opt.OutputDir = resultDir
	}

	entries := simpleUtil.HandleError(motif.Build(idList, scoreRows, opt))
	WarnMissing(entries, *perChain)

	WriteManifest(manifestPath, entries)
	slog.Info("Wrote", "rows", len(entries), "path", manifestPath)

	if *xlsxOut != "" {
		WriteSummary(*xlsxOut, entries)
		log.Printf("SaveAs(%s)", *xlsxOut)
	}
}
