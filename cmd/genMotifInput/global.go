package main

var (
	SummarySheet = "Manifest"

	SummaryTitle = []string{
		"ID",
		"Chains",
		"Residues",
		"Motif",
		"Structure",
		"Found",
		"Output",
	}
)
