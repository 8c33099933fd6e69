// Package dsaerrors defines the fatal error taxonomy shared across the
// pipeline, built on top of github.com/grailbio/base/errors the same way
// the reference packages (markduplicates, encoding/fasta, ...) report
// their own domain errors.
package dsaerrors

import (
	"github.com/grailbio/base/errors"
)

// Kind identifies which fatal condition an error represents, so callers
// (and tests) can distinguish them with errors.Is / errors.E matching
// without string-sniffing messages.
type Kind = errors.Kind

// The fatal error kinds a run can terminate with. Every one of these aborts
// the whole run; per-read problems are never reported this way -- see
// PerReadFilter below, which is purely a counter increment, not an error.
const (
	// ConfigError reports a Params validation failure (bad flag
	// combination, missing required input, out-of-range numeric flag).
	ConfigError = errors.Invalid

	// InvalidUmiPattern reports a UMI reference sequence with a character
	// outside ACGTNn, or any other pattern-compilation failure.
	InvalidUmiPattern = errors.Invalid

	// IoOpenError reports failure to open an input file (FASTQ, FASTA
	// template database, etc.).
	IoOpenError = errors.NotExist

	// IoMapError reports failure to memory-map an opened file.
	IoMapError = errors.Internal

	// BadTemplateDatabaseParse reports a template database file that opened
	// successfully but could not be parsed (malformed FASTA, empty file,
	// orphan sequence with no header).
	BadTemplateDatabaseParse = errors.Invalid

	// ExcessiveTrim reports a requested trim whose left+right lengths meet
	// or exceed a template's length, leaving nothing behind.
	ExcessiveTrim = errors.Invalid
)

// New constructs a fatal error of the given kind, in the style of
// errors.E(kind, args...): args are concatenated space-separated into the
// message, except args whose own type is error, which are wrapped as the
// cause.
func New(kind Kind, args ...interface{}) error {
	all := make([]interface{}, 0, len(args)+1)
	all = append(all, kind)
	all = append(all, args...)
	return errors.E(all...)
}

// Is reports whether err is a dsaerrors error of kind.
func Is(kind Kind, err error) bool { return errors.Is(kind, err) }

// PerReadFilterReason names a reason a single read (or read pair, UMI
// group, or ORF) was dropped from the pipeline. Unlike the Kind constants
// above, these never become a Go error -- they only ever increment a
// counter in a ParseLog (see the pipeline package), because one bad
// read must never abort a run.
type PerReadFilterReason int

const (
	FilterInvalidChars PerReadFilterReason = iota
	FilterNoFwUmi
	FilterNoRvUmi
	FilterCouldNotAssemble
	FilterUmiGroupSizeTooSmall
	FilterDuplicateUmi
	FilterPrematureStopCodon
	FilterSplitFailed
	FilterNoMatchingTemplate
	FilterBadAlignment
)

// String names the reason for logging and report output.
func (r PerReadFilterReason) String() string {
	switch r {
	case FilterInvalidChars:
		return "invalid_chars"
	case FilterNoFwUmi:
		return "no_fw_umi"
	case FilterNoRvUmi:
		return "no_rv_umi"
	case FilterCouldNotAssemble:
		return "could_not_assemble"
	case FilterUmiGroupSizeTooSmall:
		return "umi_group_size_too_small"
	case FilterDuplicateUmi:
		return "duplicate_umi"
	case FilterPrematureStopCodon:
		return "premature_stop_codon"
	case FilterSplitFailed:
		return "split_failed"
	case FilterNoMatchingTemplate:
		return "no_matching_template"
	case FilterBadAlignment:
		return "bad_alignment"
	default:
		return "unknown"
	}
}
