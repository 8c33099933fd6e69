// Package config holds the run parameters controlling a pipeline run:
// input paths, reference/UMI sequences, QC thresholds, and report
// rendering options, along with the flag wiring and validation that
// populate them from the command line.
package config

import (
	"strings"

	"github.com/broadinstitute/dsa/polymer"
)

// CodonOutput selects how nucleotide/codon data is rendered in reports.
type CodonOutput int

const (
	CodonOutputNone       CodonOutput = iota // don't print nucleotide/codon data
	CodonOutputAscii                         // single-char-per-codon representation
	CodonOutputHorizontal                    // single-line dna sequences
	CodonOutputVertical                      // three-row vertically-aligned dna sequences
)

// CodonOutputFromString parses a CodonOutput by name, case-insensitively.
func CodonOutputFromString(s string) (CodonOutput, bool) {
	switch strings.ToLower(s) {
	case "none":
		return CodonOutputNone, true
	case "ascii":
		return CodonOutputAscii, true
	case "horizontal":
		return CodonOutputHorizontal, true
	case "vertical":
		return CodonOutputVertical, true
	default:
		return CodonOutputNone, false
	}
}

// TemplateSource names where one alignment template axis's data comes
// from: a FASTA file of (possibly many) labeled templates, or a single
// inline codon/amino-acid sequence given directly on the command line.
type TemplateSource struct {
	FastaPath string
	Dna       polymer.Nts
	Aas       polymer.Aas
}

// Trim is a pair of (left, right) amino acid counts to remove from the
// ends of every template before querying against it.
type Trim struct {
	Left, Right int
}

// Params holds every user-controlled setting for a pipeline run.
type Params struct {
	FwFilename string
	RvFilename string
	FwRefs     []string
	RvRefs     []string

	AaTemplate  polymer.Aas
	DnaTemplate polymer.Nts

	SplitTemplateString string
	TemplateSources      []TemplateSource
	Trims                []Trim

	NoHeader      bool
	SkipAssembly  bool
	AllowPTCs     bool
	SeparateCDR3  bool

	MinAlignmentScore float32
	TpQualMin         byte
	MinUMIGroupSize   int
	MinOverlap        int
	MaxMismatches     int
	NumberFrom        int

	CodonOutput CodonOutput
}

// Defaults returns a Params populated with the reference's default
// values (see help::Params's in-class initializers).
func Defaults() Params {
	return Params{
		MinAlignmentScore: 0.8,
		TpQualMin:         'A',
		MinUMIGroupSize:   1,
		MinOverlap:        9,
		MaxMismatches:     0,
		NumberFrom:        1,
		CodonOutput:       CodonOutputNone,
	}
}

// SplitTemplateRequested reports whether orfs should be split into
// sub-regions before per-region template alignment.
func (p *Params) SplitTemplateRequested() bool { return p.SplitTemplateString != "" }
