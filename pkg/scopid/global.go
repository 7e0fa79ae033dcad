package scopid

// StructExts are stripped from IDs that still carry a structure file name.
var StructExts = []string{".pdb", ".cif", ".ent", ".gz"}

var Header = []string{"query_id", "target_id", "score"}
