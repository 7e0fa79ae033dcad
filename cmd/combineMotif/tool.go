package main

import (
	"log/slog"
	"os"
	"strconv"
	"strings"

	"motifBench/pkg/triplet"
)

// Verbosity is a counting flag: each bare -v adds one, -v=N sets N.
type Verbosity int

func (v *Verbosity) String() string {
	if v == nil {
		return "0"
	}
	return strconv.Itoa(int(*v))
}

func (v *Verbosity) Set(s string) error {
	if s == "true" {
		*v++
		return nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return err
	}
	*v = Verbosity(n)
	return nil
}

func (v *Verbosity) IsBoolFlag() bool { return true }

func SetLogLevel(v int) {
	switch {
	case v >= 2:
		slog.SetLogLoggerLevel(slog.LevelDebug)
	case v == 1:
		slog.SetLogLoggerLevel(slog.LevelInfo)
	default:
		slog.SetLogLoggerLevel(slog.LevelWarn)
	}
}

func LogStats(stats *triplet.Stats, withLookup bool) {
	for _, row := range StatsRows(stats, withLookup) {
		slog.Info("STATS", "name", row[0], "count", row[1])
	}
}

// WriteMissing saves the unresolved target IDs one per line. Failure only
// warns since the triplet table is already complete.
func WriteMissing(path string, ids []string) {
	if len(ids) == 0 {
		return
	}
	var content = strings.Join(ids, "\n") + "\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		slog.Warn("Could not write missing IDs report", "path", path, "err", err)
		return
	}
	slog.Info("Wrote unique missing IDs", "count", len(ids), "path", path)
}
