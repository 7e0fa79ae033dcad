package motif

import (
	"bufio"
	"errors"
	"io"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/liserjrqlxue/goUtil/scannerUtil"
	"github.com/samber/lo"
)

var (
	idRe     = regexp.MustCompile(`^>(\S+)`)
	digitsRe = regexp.MustCompile(`^[0-9]+$`)
	fieldSep = regexp.MustCompile(`[\s,;]+`)
)

// MaxLineSize bounds a single line of the ID or score file. Score rows of
// long chains easily outgrow bufio's 64 KB default.
var MaxLineSize = 64 * 1024 * 1024

func lines(r io.Reader) []string {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), MaxLineSize)
	return scannerUtil.Scanner2Array(scanner)
}

// ReadIDs returns the identifiers of all lines starting with '>', in file order.
func ReadIDs(r io.Reader) (ids []string) {
	for _, line := range lines(r) {
		if m := idRe.FindStringSubmatch(line); m != nil {
			ids = append(ids, m[1])
		}
	}
	return ids
}

// ReadScores returns one score row per line. Blank lines yield empty rows so
// that rows stay aligned with the identifier list.
func ReadScores(r io.Reader) [][]float64 {
	return lo.Map(lines(r), func(line string, _ int) []float64 {
		return ParseScoreLine(line)
	})
}

// ParseScoreLine decodes one conservation line.
//
// A line made only of digits (e.g. "555000670") holds one score per digit.
// Anything else is split on whitespace, ',' and ';'; fields that are not
// numbers become NaN.
func ParseScoreLine(line string) []float64 {
	line = strings.TrimSpace(line)
	if line == "" {
		return []float64{}
	}
	if digitsRe.MatchString(line) {
		row := make([]float64, len(line))
		for i := range line {
			row[i] = float64(line[i] - '0')
		}
		return row
	}
	var row []float64
	for _, field := range fieldSep.Split(line, -1) {
		if field == "" {
			continue
		}
		v, err := strconv.ParseFloat(field, 64)
		if err != nil && !errors.Is(err, strconv.ErrRange) {
			v = math.NaN()
		}
		row = append(row, v)
	}
	return row
}

