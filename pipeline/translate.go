package pipeline

import (
	"github.com/broadinstitute/dsa/align"
	"github.com/broadinstitute/dsa/parallelrun"
)

// TranslateAndFilterPTCs packs each read's sequence into codons, translates
// it, and drops any ORF whose translation contains a premature termination
// codon. When reverseComplement is true (the read came from the reverse
// strand relative to the template), the read is reverse-complemented and
// truncated to a whole codon frame before translation.
func TranslateAndFilterPTCs(reads []align.Read, log *ParseLog, reverseComplement bool) []align.Orf {
	type result struct {
		orf align.Orf
		ptc bool
	}

	results := parallelrun.Transform(reads, parallelrun.Workers(), func(rd align.Read) result {
		if reverseComplement {
			rd.ReverseComplement()
		}
		orf := align.NewOrf(rd)
		return result{orf: orf, ptc: orf.ContainsPTC()}
	})

	out := make([]align.Orf, 0, len(results))
	for _, r := range results {
		if r.ptc {
			log.FilterPrematureStopCodon++
			continue
		}
		out = append(out, r.orf)
	}
	return out
}
