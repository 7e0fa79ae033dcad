package main

import (
	"fmt"

	"github.com/liserjrqlxue/goUtil/simpleUtil"
	"github.com/xuri/excelize/v2"

	"motifBench/pkg/motif"
)

func SummaryRows(entries []*motif.Entry) [][]any {
	var rows [][]any
	for _, entry := range entries {
		rows = append(rows, []any{
			entry.ID,
			entry.ChainNames(),
			entry.Residues(),
			entry.Motif(),
			entry.Structure,
			entry.Found,
			entry.Output,
		})
	}
	return rows
}

// WriteSummary saves one Manifest sheet describing every manifest row.
func WriteSummary(path string, entries []*motif.Entry) {
	var xlsx = excelize.NewFile()

	simpleUtil.HandleError(xlsx.NewSheet(SummarySheet))
	simpleUtil.CheckErr(xlsx.SetSheetRow(SummarySheet, "A1", &SummaryTitle))
	for i, row := range SummaryRows(entries) {
		simpleUtil.CheckErr(xlsx.SetSheetRow(SummarySheet, fmt.Sprintf("A%d", i+2), &row))
	}
	simpleUtil.CheckErr(xlsx.DeleteSheet("Sheet1"))
	simpleUtil.CheckErr(xlsx.SaveAs(path))
	simpleUtil.CheckErr(xlsx.Close())
}
