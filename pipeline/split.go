package pipeline

import (
	"regexp"

	"github.com/broadinstitute/dsa/align"
	"github.com/broadinstitute/dsa/config"
	"github.com/broadinstitute/dsa/polymer"
)

// SplitOrfs splits each ORF's amino acid sequence into sub-regions by
// matching it against params.SplitTemplateString and slicing out one
// sub-ORF per capture group. If the pattern has no capture groups (which
// includes the case where no pattern is configured at all), every ORF
// passes through untouched as its own single-element group, with no
// matching attempted. Otherwise, an ORF that doesn't match the pattern
// (over its whole length) is dropped and counted.
func SplitOrfs(orfs []align.Orf, params *config.Params, log *ParseLog) ([][]align.Orf, error) {
	var pattern *regexp.Regexp
	if params.SplitTemplateRequested() {
		var err error
		pattern, err = regexp.Compile(params.SplitTemplateString)
		if err != nil {
			return nil, err
		}
	}

	if pattern == nil || pattern.NumSubexp() == 0 {
		result := make([][]align.Orf, len(orfs))
		for i, orf := range orfs {
			result[i] = []align.Orf{orf}
		}
		return result, nil
	}

	groupCount := pattern.NumSubexp()

	result := make([][]align.Orf, 0, len(orfs))
	for _, orf := range orfs {
		aas := orf.Aas.String()
		loc := pattern.FindStringSubmatchIndex(aas)
		// std::regex_match requires the whole string to match, not just a
		// substring -- reject a match that doesn't span [0, len(aas)).
		if loc == nil || loc[0] != 0 || loc[1] != len(aas) {
			log.FilterSplitFailed++
			continue
		}

		splits := make([]align.Orf, groupCount)
		for i := 1; i <= groupCount; i++ {
			start, end := loc[2*i], loc[2*i+1]
			sub := align.Orf{
				UmiGroupSize: orf.UmiGroupSize,
				TemplateID:   orf.TemplateID,
				Barcode:      orf.Barcode,
			}
			if start >= 0 && end >= 0 {
				sub.Aas = orf.Aas.Subclone(start, end-start)
				sub.Cdns = orf.Cdns.Subclone(start, end-start)
			} else {
				sub.Aas = polymer.Aas{}
				sub.Cdns = polymer.Cdns{}
			}
			splits[i-1] = sub
		}
		result = append(result, splits)
	}

	return result, nil
}
