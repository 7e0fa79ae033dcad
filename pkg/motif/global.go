package motif

var (
	// DefaultChain is used when no chain character can be derived from an ID.
	DefaultChain = "A"

	// NaNScore ranks unparsable residue scores below every real score.
	NaNScore = -1e9

	StructureExt = ".pdb"
	OutputSuffix = "_motif.out"
)
