package motif

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/samber/lo"
)

// CollapseRanges encodes residue indices of one chain as motif tokens, A10 or
// A10-15 for consecutive runs. Indices are sorted and deduplicated first.
func CollapseRanges(chain string, indices []int) []string {
	if len(indices) == 0 {
		return nil
	}
	sorted := lo.Uniq(indices)
	slices.Sort(sorted)

	var (
		tokens      []string
		start, prev = sorted[0], sorted[0]
	)
	emit := func() {
		if start == prev {
			tokens = append(tokens, fmt.Sprintf("%s%d", chain, start))
		} else {
			tokens = append(tokens, fmt.Sprintf("%s%d-%d", chain, start, prev))
		}
	}
	for _, x := range sorted[1:] {
		if x == prev+1 {
			prev = x
			continue
		}
		emit()
		start, prev = x, x
	}
	emit()
	return tokens
}

// ExpandTokens decodes motif tokens back to sorted residue indices per chain.
// The chain is always the first rune of a token.
func ExpandTokens(tokens []string) (map[string][]int, error) {
	chains := make(map[string][]int)
	for _, token := range tokens {
		token = strings.TrimSpace(token)
		_, size := utf8.DecodeRuneInString(token)
		if size == 0 || len(token) == size {
			return nil, fmt.Errorf("bad motif token %q", token)
		}
		chain, span := token[:size], token[size:]
		from, to, isRange := strings.Cut(span, "-")
		start, err := strconv.Atoi(from)
		if err != nil {
			return nil, fmt.Errorf("bad motif token %q: %w", token, err)
		}
		end := start
		if isRange {
			end, err = strconv.Atoi(to)
			if err != nil {
				return nil, fmt.Errorf("bad motif token %q: %w", token, err)
			}
			if end < start {
				return nil, fmt.Errorf("bad motif token %q: reversed range", token)
			}
		}
		for i := start; i <= end; i++ {
			chains[chain] = append(chains[chain], i)
		}
	}
	for chain, indices := range chains {
		indices = lo.Uniq(indices)
		slices.Sort(indices)
		chains[chain] = indices
	}
	return chains, nil
}

// JoinTokens renders the motif column of a manifest row.
func JoinTokens(tokens []string) string {
	return strings.Join(tokens, ",")
}

// SplitTokens is the inverse of JoinTokens.
func SplitTokens(motif string) []string {
	return lo.Filter(strings.Split(motif, ","), func(s string, _ int) bool {
		return strings.TrimSpace(s) != ""
	})
}
