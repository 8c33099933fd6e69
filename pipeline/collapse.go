package pipeline

import (
	"sort"

	"github.com/broadinstitute/dsa/align"
	"github.com/broadinstitute/dsa/config"
	"github.com/broadinstitute/dsa/parallelrun"
	"github.com/broadinstitute/dsa/symbol"
)

// UmiCollapse groups reads by barcode and builds one consensus read per
// group, discarding groups smaller than params.MinUMIGroupSize and any
// consensus that still contains an N.
//
// raggedEnds should be false for assembled (paired) reads, whose group
// members are expected to be identical length, and true for unpaired
// reads, whose 3' tails may vary in length.
func UmiCollapse(reads []align.Read, params *config.Params, log *ParseLog, raggedEnds bool) []align.Read {
	groups := map[string][]align.Read{}
	for _, rd := range reads {
		groups[rd.Barcode] = append(groups[rd.Barcode], rd)
	}

	keys := make([]string, 0, len(groups))
	for k := range groups {
		keys = append(keys, k)
	}

	type outcome struct {
		rd   align.Read
		keep bool
		drop int // filter_umi_group_size_too_small increment when !keep
	}

	results := parallelrun.Transform(keys, parallelrun.Workers(), func(key string) outcome {
		group := groups[key]
		preSize := len(group)

		if len(group) < params.MinUMIGroupSize {
			return outcome{drop: preSize}
		}

		if len(group) > 1 {
			buildConsensusSequence(group, params, raggedEnds)
		}

		consensus := group[0]
		if consensus.UmiGroupSize < params.MinUMIGroupSize {
			return outcome{drop: preSize}
		}

		for i := 0; i < consensus.Dna.Len(); i++ {
			if consensus.Dna.At(i) == symbol.NtN {
				return outcome{keep: false}
			}
		}

		return outcome{rd: consensus, keep: true}
	})

	out := make([]align.Read, 0, len(results))
	for i, r := range results {
		switch {
		case r.keep:
			out = append(out, r.rd)
			log.FilterDuplicateUmi += len(groups[keys[i]]) - 1
		case r.drop > 0:
			log.FilterUmiGroupSizeTooSmall += r.drop
		default:
			log.FilterInvalidChars++
		}
	}
	return out
}

// choice tracks, for one consensus position, the most frequent (and, on a
// tie, highest-quality) nucleotide seen so far.
type choice struct {
	nt      symbol.Nt
	occurs  uint
	maxQual byte
}

// less mirrors Choice::operator<: fewer occurrences sorts lower, and on a
// tie, lower max quality sorts lower.
func (c choice) less(o choice) bool {
	if c.occurs != o.occurs {
		return c.occurs < o.occurs
	}
	return c.maxQual < o.maxQual
}

func defaultChoices() [5]choice {
	return [5]choice{
		{nt: symbol.NtA},
		{nt: symbol.NtC},
		{nt: symbol.NtG},
		{nt: symbol.NtT},
		{nt: symbol.NtN},
	}
}

// buildConsensusSequence collapses group (len(group) > 1) into a single
// consensus read, written into group[0]; group is left with only that one
// element meaningfully populated (the reference resizes the vector to 1).
func buildConsensusSequence(group []align.Read, params *config.Params, raggedEnds bool) {
	var width int

	if raggedEnds {
		sort.Slice(group, func(i, j int) bool { return group[i].Dna.Len() > group[j].Dna.Len() })
		width = group[params.MinUMIGroupSize-1].Dna.Len()
		group[0].UmiGroupSize = len(group)
	} else {
		sizeCounts := map[int]int{}
		for _, rd := range group {
			sizeCounts[rd.Dna.Len()]++
		}
		modalSize, bestCount := 0, -1
		for size, count := range sizeCounts {
			if count > bestCount {
				modalSize, bestCount = size, count
			}
		}
		width = modalSize

		group[0].UmiGroupSize = 0
		for _, rd := range group {
			if rd.Dna.Len() == modalSize {
				group[0].UmiGroupSize++
			}
		}
	}

	choices := make([][5]choice, width)
	for i := range choices {
		choices[i] = defaultChoices()
	}

	accumulate := func(rd *align.Read) {
		limit := rd.Dna.Len()
		if width < limit {
			limit = width
		}
		for i := 0; i < limit; i++ {
			idx := rd.Dna.At(i).Index()
			ch := &choices[i][idx]
			ch.occurs++
			if rd.Qual[i] > ch.maxQual {
				ch.maxQual = rd.Qual[i]
			}
		}
	}

	for i := range group {
		if !raggedEnds && group[i].Dna.Len() != width {
			continue
		}
		accumulate(&group[i])
	}

	group[0].Dna.Resize(width, symbol.NtA)
	group[0].Qual = make([]byte, width)
	for i := 0; i < width; i++ {
		best := choices[i][0]
		for _, c := range choices[i][1:] {
			if best.less(c) {
				best = c
			}
		}
		group[0].Dna.Set(i, best.nt)
		group[0].Qual[i] = best.maxQual
	}
}
