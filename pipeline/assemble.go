package pipeline

import (
	"github.com/broadinstitute/dsa/align"
	"github.com/broadinstitute/dsa/config"
	"github.com/broadinstitute/dsa/parallelrun"
)

// AssembleReads merges each read pair's overlapping 3' ends into a single
// consensus read. Pairs that fail to assemble (too little overlap, or too
// many mismatches within it) are dropped and counted.
func AssembleReads(pairs []align.ReadPair, params *config.Params, log *ParseLog) []align.Read {
	type result struct {
		rd     align.Read
		failed bool
	}

	results := parallelrun.Transform(pairs, parallelrun.Workers(), func(pair align.ReadPair) result {
		rd := align.AssembleReadPair(pair.Fw, pair.Rv, params.MinOverlap, params.MaxMismatches)
		return result{rd: rd, failed: rd.Empty()}
	})

	out := make([]align.Read, 0, len(results))
	for _, r := range results {
		if r.failed {
			log.FilterCouldNotAssemble++
			continue
		}
		out = append(out, r.rd)
	}
	return out
}
