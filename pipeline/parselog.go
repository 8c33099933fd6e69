// Package pipeline implements the read-processing stages that turn raw
// paired-end FASTQ reads into per-UMI-group alignments against one or more
// reference templates: parse, QC, assemble, UMI-collapse, translate and
// filter premature stop codons, split, and multi-template align.
package pipeline

import "github.com/broadinstitute/dsa/dsaerrors"

// ParseLog counts, for each stage, how many reads (or read pairs, UMI
// groups, or ORFs) were dropped and why.
type ParseLog struct {
	FilterInvalidChars         int
	FilterNoFwUmi              int
	FilterNoRvUmi              int
	FilterCouldNotAssemble     int
	FilterUmiGroupSizeTooSmall int
	FilterDuplicateUmi         int
	FilterPrematureStopCodon   int
	FilterSplitFailed          int
	FilterNoMatchingTemplate   int
	FilterBadAlignment         int
}

// Add increments the counter named by reason.
func (l *ParseLog) Add(reason dsaerrors.PerReadFilterReason, n int) {
	switch reason {
	case dsaerrors.FilterInvalidChars:
		l.FilterInvalidChars += n
	case dsaerrors.FilterNoFwUmi:
		l.FilterNoFwUmi += n
	case dsaerrors.FilterNoRvUmi:
		l.FilterNoRvUmi += n
	case dsaerrors.FilterCouldNotAssemble:
		l.FilterCouldNotAssemble += n
	case dsaerrors.FilterUmiGroupSizeTooSmall:
		l.FilterUmiGroupSizeTooSmall += n
	case dsaerrors.FilterDuplicateUmi:
		l.FilterDuplicateUmi += n
	case dsaerrors.FilterPrematureStopCodon:
		l.FilterPrematureStopCodon += n
	case dsaerrors.FilterSplitFailed:
		l.FilterSplitFailed += n
	case dsaerrors.FilterNoMatchingTemplate:
		l.FilterNoMatchingTemplate += n
	case dsaerrors.FilterBadAlignment:
		l.FilterBadAlignment += n
	}
}

// Merge returns the element-wise sum of l and o, mirroring ParseLog's
// operator+.
func (l ParseLog) Merge(o ParseLog) ParseLog {
	return ParseLog{
		FilterInvalidChars:         l.FilterInvalidChars + o.FilterInvalidChars,
		FilterNoFwUmi:              l.FilterNoFwUmi + o.FilterNoFwUmi,
		FilterNoRvUmi:              l.FilterNoRvUmi + o.FilterNoRvUmi,
		FilterCouldNotAssemble:     l.FilterCouldNotAssemble + o.FilterCouldNotAssemble,
		FilterUmiGroupSizeTooSmall: l.FilterUmiGroupSizeTooSmall + o.FilterUmiGroupSizeTooSmall,
		FilterDuplicateUmi:         l.FilterDuplicateUmi + o.FilterDuplicateUmi,
		FilterPrematureStopCodon:   l.FilterPrematureStopCodon + o.FilterPrematureStopCodon,
		FilterSplitFailed:          l.FilterSplitFailed + o.FilterSplitFailed,
		FilterNoMatchingTemplate:   l.FilterNoMatchingTemplate + o.FilterNoMatchingTemplate,
		FilterBadAlignment:         l.FilterBadAlignment + o.FilterBadAlignment,
	}
}
