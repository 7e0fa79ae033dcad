package main

import (
	"fmt"

	"github.com/liserjrqlxue/goUtil/simpleUtil"
	"github.com/samber/lo"
	"github.com/xuri/excelize/v2"

	"motifBench/pkg/triplet"
)

func StatsRows(stats *triplet.Stats, withLookup bool) [][]any {
	rows := [][]any{
		{"Motif files read", stats.Files},
		{"Raw motif lines scanned", stats.RawLines},
		{"Triplets written", stats.Kept},
		{"Self hits dropped", stats.SelfHits},
		{"Non-numeric scores", stats.BadScores},
	}
	if withLookup {
		rows = append(rows,
			[]any{"Queries not in lookup", stats.SkippedQueries},
			[]any{"Missing lookup IDs", stats.LookupMissing},
		)
	}
	return rows
}

// WriteStats saves the run statistics and, with a lookup, the unresolved IDs.
func WriteStats(path string, stats *triplet.Stats, withLookup bool) {
	var xlsx = excelize.NewFile()

	simpleUtil.HandleError(xlsx.NewSheet(StatsSheet))
	simpleUtil.CheckErr(xlsx.SetSheetRow(StatsSheet, "A1", &StatsTitle))
	for i, row := range StatsRows(stats, withLookup) {
		simpleUtil.CheckErr(xlsx.SetSheetRow(StatsSheet, fmt.Sprintf("A%d", i+2), &row))
	}

	if withLookup {
		simpleUtil.HandleError(xlsx.NewSheet(MissingSheet))
		simpleUtil.CheckErr(xlsx.SetSheetRow(MissingSheet, "A1", &MissingTitle))
		ids := lo.Map(stats.MissingIDs(), func(id string, _ int) any { return id })
		if len(ids) > 0 {
			simpleUtil.CheckErr(xlsx.SetSheetCol(MissingSheet, "A2", &ids))
		}
	}

	simpleUtil.CheckErr(xlsx.DeleteSheet("Sheet1"))
	simpleUtil.CheckErr(xlsx.SaveAs(path))
	simpleUtil.CheckErr(xlsx.Close())
}
