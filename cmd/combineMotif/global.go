package main

var (
	StatsSheet   = "Stats"
	MissingSheet = "MissingIDs"

	StatsTitle   = []string{"Stat", "Count"}
	MissingTitle = []string{"ID"}
)
