package motif

import (
	"math"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"motifBench/pkg/scopid"
)

var percentSuffixRe = regexp.MustCompile(`_(\d+(?:\.\d+)?|\d+p\d+)$`)

// Exists reports whether path can be stat'ed. Over-long names, permission
// and not-a-directory errors all count as missing.
func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// StructureCandidates lists the file names tried for id, in order.
func StructureCandidates(dir, id string) []string {
	base := BaseID(id)
	return []string{
		filepath.Join(dir, id+"_"+StructureExt),
		filepath.Join(dir, id+StructureExt),
		filepath.Join(dir, base+"_"+StructureExt),
		filepath.Join(dir, base+StructureExt),
	}
}

// ResolveStructurePath returns the first existing structure file for id, then
// the first versioned <base>*.pdb match. When nothing exists the first
// candidate is returned with found=false.
func ResolveStructurePath(dir, id string) (path string, found bool) {
	candidates := StructureCandidates(dir, id)
	for _, c := range candidates {
		if Exists(c) {
			return c, true
		}
	}
	matches, _ := filepath.Glob(filepath.Join(dir, BaseID(id)+"*"+StructureExt))
	sort.Strings(matches)
	if len(matches) > 0 {
		return matches[0], true
	}
	return candidates[0], false
}

// ChainStructurePath is the fixed structure path used in per-chain mode.
func ChainStructurePath(dir, id string) string {
	return filepath.Join(dir, id+"_"+StructureExt)
}

// OutputPath is the per-ID result file the search tool writes for id.
func OutputPath(dir, id string) string {
	return filepath.Join(dir, id+OutputSuffix)
}

// PercentLabel renders percent for file names: 20 -> "20", 2.5 -> "2p5",
// 0.00001 -> "1e-05".
func PercentLabel(percent float64) string {
	if percent == math.Trunc(percent) && !math.IsInf(percent, 0) {
		return strconv.FormatFloat(percent, 'f', 0, 64)
	}
	return strings.ReplaceAll(scopid.FormatScore(percent), ".", "p")
}

// ManifestPath splices _<label> between the stem and the extension of out,
// replacing an earlier percent suffix: in/run_10.tsv -> in/run_<label>.tsv.
func ManifestPath(out, label string) string {
	dir, name := filepath.Split(out)
	ext := filepath.Ext(name)
	if ext == name || ext == "." {
		ext = ""
	}
	stem := percentSuffixRe.ReplaceAllString(strings.TrimSuffix(name, ext), "")
	return filepath.Join(dir, stem+"_"+label+ext)
}
