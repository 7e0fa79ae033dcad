package motif

import (
	"math"
	"sort"
)

// SelectCount is the number of residues SelectIndices picks from a row of n
// scores: max(minResidues, ceil(n*percent/100)), clamped to [0, n]. A NaN
// percent selects only the floor.
func SelectCount(n int, percent float64, minResidues int) int {
	if n == 0 {
		return 0
	}
	k := math.Ceil(float64(n) * (percent / 100.0))
	if math.IsNaN(k) {
		k = 0
	}
	k = math.Max(0, math.Min(k, float64(n)))
	return min(max(minResidues, int(k), 0), n)
}

// SelectIndices returns the 1-based indices of the top scoring residues, best
// first. Equal scores keep residue order and NaN ranks last.
func SelectIndices(scores []float64, percent float64, minResidues int) []int {
	if len(scores) == 0 {
		return nil
	}
	type residue struct {
		index int
		score float64
	}
	ranked := make([]residue, len(scores))
	for i, s := range scores {
		if math.IsNaN(s) {
			s = NaNScore
		}
		ranked[i] = residue{index: i + 1, score: s}
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].score > ranked[j].score
	})

	k := SelectCount(len(scores), percent, minResidues)
	indices := make([]int, k)
	for i := range indices {
		indices[i] = ranked[i].index
	}
	return indices
}
