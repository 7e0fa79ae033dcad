package motif

import (
	"fmt"
	"strings"

	"github.com/samber/lo"
)

type Options struct {
	Percent     float64
	MinResidues int
	PerChain    bool

	StructureDir string
	// OutputDir, when set, adds the per-ID result path column.
	OutputDir string
}

// Chain is the selection made for one chain-specific ID.
type Chain struct {
	ID       string
	Chain    string
	Selected []int
	Tokens   []string
}

// Entry is one manifest row.
type Entry struct {
	ID        string
	Chains    []*Chain
	Structure string
	Found     bool
	Output    string
}

func (e *Entry) Tokens() []string {
	var tokens []string
	for _, c := range e.Chains {
		tokens = append(tokens, c.Tokens...)
	}
	return tokens
}

func (e *Entry) Motif() string {
	return JoinTokens(e.Tokens())
}

func (e *Entry) Residues() int {
	return lo.SumBy(e.Chains, func(c *Chain) int { return len(c.Selected) })
}

func (e *Entry) ChainNames() string {
	return strings.Join(lo.Map(e.Chains, func(c *Chain, _ int) string { return c.Chain }), ",")
}

func (e *Entry) String() string {
	if e.Output != "" {
		return fmt.Sprintf("%s\t%s\t%s", e.Structure, e.Motif(), e.Output)
	}
	return fmt.Sprintf("%s\t%s", e.Structure, e.Motif())
}

// Build selects motif residues for every ID and groups them into manifest
// entries. IDs with an empty score row are skipped.
func Build(ids []string, rows [][]float64, opt Options) ([]*Entry, error) {
	if len(ids) != len(rows) {
		return nil, fmt.Errorf("mismatch: %d ids vs %d score lines", len(ids), len(rows))
	}

	var (
		entries []*Entry
		byBase  = make(map[string]*Entry)
	)
	for i, id := range ids {
		scores := rows[i]
		if len(scores) == 0 {
			continue
		}
		chain := ExtractChain(id)
		selected := SelectIndices(scores, opt.Percent, opt.MinResidues)
		if len(selected) == 0 {
			continue
		}
		c := &Chain{
			ID:       id,
			Chain:    chain,
			Selected: selected,
			Tokens:   CollapseRanges(chain, selected),
		}

		if opt.PerChain {
			entry := &Entry{
				ID:        id,
				Chains:    []*Chain{c},
				Structure: ChainStructurePath(opt.StructureDir, id),
			}
			if opt.OutputDir != "" {
				entry.Output = OutputPath(opt.OutputDir, id)
			}
			entries = append(entries, entry)
			continue
		}

		base := BaseID(id)
		entry, ok := byBase[base]
		if !ok {
			entry = &Entry{ID: base}
			byBase[base] = entry
			entries = append(entries, entry)
		}
		entry.Chains = append(entry.Chains, c)
	}

	if !opt.PerChain {
		for _, entry := range entries {
			entry.Structure, entry.Found = ResolveStructurePath(opt.StructureDir, entry.ID)
			if opt.OutputDir != "" {
				entry.Output = OutputPath(opt.OutputDir, entry.ID)
			}
		}
	} else {
		for _, entry := range entries {
			entry.Found = Exists(entry.Structure)
		}
	}
	return entries, nil
}
