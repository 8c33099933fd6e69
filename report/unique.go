package report

import (
	"sort"
	"strings"

	"github.com/broadinstitute/dsa/pipeline"
)

// UniqueSequence is one distinct gap-stripped sequence and how many UMI
// groups (and, summed across them, how many raw PCR reads) shared it.
type UniqueSequence struct {
	Sequence string
	Groups   int
	Reads    int
}

// TallyUniqueSequences strips alignment gaps ('-' from amino acid strings,
// ' ' from codon strings) and groups the remaining groups by identical
// resulting sequence, returned sorted by descending group count (ties keep
// their first-seen relative order, mirroring std::sort's use on an
// unordered_map's arbitrary but stable-within-a-run iteration).
func TallyUniqueSequences(groups []pipeline.GroupAlignment, seq func(pipeline.GroupAlignment) string, gapChar byte) []UniqueSequence {
	index := map[string]int{}
	var out []UniqueSequence

	for _, g := range groups {
		stripped := strings.Map(func(r rune) rune {
			if byte(r) == gapChar {
				return -1
			}
			return r
		}, seq(g))

		if i, ok := index[stripped]; ok {
			out[i].Groups++
			out[i].Reads += g.UmiGroupSize
			continue
		}
		index[stripped] = len(out)
		out = append(out, UniqueSequence{Sequence: stripped, Groups: 1, Reads: g.UmiGroupSize})
	}

	sort.SliceStable(out, func(i, j int) bool { return out[i].Groups > out[j].Groups })
	return out
}

// UniqueAminoAcidSequences tallies groups by their gap-stripped amino acid
// alignment string.
func UniqueAminoAcidSequences(groups []pipeline.GroupAlignment) []UniqueSequence {
	return TallyUniqueSequences(groups, func(g pipeline.GroupAlignment) string { return g.Alignment }, '-')
}

// UniqueCodonSequences tallies groups by their gap-stripped codon string.
func UniqueCodonSequences(groups []pipeline.GroupAlignment) []UniqueSequence {
	return TallyUniqueSequences(groups, func(g pipeline.GroupAlignment) string { return g.Cdns }, ' ')
}
