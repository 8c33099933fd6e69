package pipeline

import (
	"github.com/broadinstitute/dsa/align"
	"github.com/broadinstitute/dsa/config"
	"github.com/broadinstitute/dsa/parallelrun"
	"github.com/broadinstitute/dsa/umiref"
)

// QCReads trims low-quality 3' bases, extracts and strips the UMI
// reference+barcode from the front of each read, and pairs surviving
// reads. fw and rv must be the same length and positionally paired; fwexs
// and rvexs are tried in order until one matches.
func QCReads(fw, rv []align.Read, fwexs, rvexs []*umiref.UMIExtractor, params *config.Params, log *ParseLog) []align.ReadPair {
	n := len(fw)
	if n == 0 {
		return nil
	}
	workers := parallelrun.Workers()
	if workers > n {
		workers = n
	}

	type partial struct {
		pairs []align.ReadPair
		log   ParseLog
	}
	partials := make([]partial, workers)

	_ = parallelrun.ForEach(workers, workers, func(job int) error {
		start := job * n / workers
		end := (job + 1) * n / workers
		p := &partials[job]

		for i := start; i < end; i++ {
			ff, rr := fw[i], rv[i]

			if ff.Empty() || rr.Empty() {
				p.log.FilterInvalidChars++
				continue
			}

			trimQual(&ff, params.TpQualMin)
			trimQual(&rr, params.TpQualMin)

			fwUmi, ok := firstMatch(fwexs, ff.Dna.Bytes())
			if !ok {
				p.log.FilterNoFwUmi++
				continue
			}
			rvUmi, ok := firstMatch(rvexs, rr.Dna.Bytes())
			if !ok {
				p.log.FilterNoRvUmi++
				continue
			}

			cut := fwUmi.From + fwUmi.Length
			ff.Dna.Exo(cut, 0)
			ff.Qual = ff.Qual[cut:]

			cut = rvUmi.From + rvUmi.Length
			rr.Dna.Exo(cut, 0)
			rr.Qual = rr.Qual[cut:]

			ff.Barcode = fwUmi.Barcode + rvUmi.Barcode

			p.pairs = append(p.pairs, align.ReadPair{Fw: ff, Rv: rr})
		}
		return nil
	})

	total := 0
	for i := range partials {
		total += len(partials[i].pairs)
		log.FilterInvalidChars += partials[i].log.FilterInvalidChars
		log.FilterNoFwUmi += partials[i].log.FilterNoFwUmi
		log.FilterNoRvUmi += partials[i].log.FilterNoRvUmi
	}
	result := make([]align.ReadPair, 0, total)
	for i := range partials {
		result = append(result, partials[i].pairs...)
	}
	return result
}

// trimQual trims bases off the 3' end of rd whose quality falls below
// qualMin.
func trimQual(rd *align.Read, qualMin byte) {
	for rd.Dna.Len() > 0 && rd.Qual[len(rd.Qual)-1] < qualMin {
		rd.Dna.PopBack()
		rd.Qual = rd.Qual[:len(rd.Qual)-1]
	}
}

// firstMatch tries every extractor in order, returning the first valid
// match.
func firstMatch(exs []*umiref.UMIExtractor, seq []byte) (umiref.ExtractedUMI, bool) {
	for _, ex := range exs {
		m := ex.Match(seq)
		if m.Valid() {
			return m, true
		}
	}
	return umiref.ExtractedUMI{}, false
}
