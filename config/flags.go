package config

import (
	"flag"
	"strings"

	"github.com/broadinstitute/dsa/dsaerrors"
	"github.com/broadinstitute/dsa/polymer"
)

// rawFlags mirrors Params but with the scalar/list flag types flag.FlagSet
// understands directly; RegisterFlags wires it to a FlagSet, and Resolve
// converts it into a validated Params.
type rawFlags struct {
	fwFilename string
	rvFilename string
	fwRefs     string // comma-separated
	rvRefs     string // comma-separated

	aaTemplate  string
	dnaTemplate string

	splitTemplateString string
	templateFastas      string // comma-separated paths
	trims               string // comma-separated left:right pairs

	noHeader     bool
	skipAssembly bool
	allowPTCs    bool
	separateCDR3 bool

	minAlignmentScore float64
	tpQualMin         string
	minUMIGroupSize   int
	minOverlap        int
	maxMismatches     int
	numberFrom        int

	codonOutput string
}

// RegisterFlags wires every Params field to fs, with the reference's
// defaults, and returns the raw flag values for later resolution via
// Resolve. Flag names follow the reference's own flag naming once
// translated from snake_case to flag-conventional kebab-case.
func RegisterFlags(fs *flag.FlagSet) *rawFlags {
	d := Defaults()
	r := &rawFlags{}

	fs.StringVar(&r.fwFilename, "fw", "", "Forward-read FASTQ file.")
	fs.StringVar(&r.rvFilename, "rv", "", "Reverse-read FASTQ file.")
	fs.StringVar(&r.fwRefs, "fw-ref", "", "Comma-separated forward UMI reference sequences.")
	fs.StringVar(&r.rvRefs, "rv-ref", "", "Comma-separated reverse UMI reference sequences.")

	fs.StringVar(&r.aaTemplate, "aa-template", "", "Inline amino acid alignment template.")
	fs.StringVar(&r.dnaTemplate, "dna-template", "", "Inline nucleotide alignment template.")

	fs.StringVar(&r.splitTemplateString, "split-template-regex", "", "Regex (with capture groups) that splits an ORF into sub-regions before alignment.")
	fs.StringVar(&r.templateFastas, "template-fasta", "", "Comma-separated IMGT-style FASTA files of alignment templates, one per split region.")
	fs.StringVar(&r.trims, "trim", "", "Comma-separated left:right amino acid trim pairs, one per split region.")

	fs.BoolVar(&r.noHeader, "no-header", false, "Omit the Settings and Parse sections of the report.")
	fs.BoolVar(&r.skipAssembly, "skip-assembly", false, "Skip paired-end read assembly; treat reads as already assembled.")
	fs.BoolVar(&r.allowPTCs, "allow-ptcs", false, "Do not filter ORFs containing a premature stop codon.")
	fs.BoolVar(&r.separateCDR3, "separate-cdr3", false, "Stored in Params.SeparateCDR3; the report has no separate CDR3 column or section.")

	fs.Float64Var(&r.minAlignmentScore, "min-alignment-score", float64(d.MinAlignmentScore), "Minimum fraction-of-self-alignment score required to keep an alignment.")
	fs.StringVar(&r.tpQualMin, "tp-qual-min", string(d.TpQualMin), "Minimum Phred+33 quality character; bases below this are trimmed from the 3' end.")
	fs.IntVar(&r.minUMIGroupSize, "min-umi-group-size", d.MinUMIGroupSize, "Minimum number of reads per UMI group to keep its consensus.")
	fs.IntVar(&r.minOverlap, "min-overlap", d.MinOverlap, "Minimum number of overlapping bases required to assemble a read pair.")
	fs.IntVar(&r.maxMismatches, "max-mismatches", d.MaxMismatches, "Maximum mismatches tolerated within the overlap region during assembly.")
	fs.IntVar(&r.numberFrom, "number-from", d.NumberFrom, "Number given to the first template position in the Substitutions and Mutation Counts column headers.")

	fs.StringVar(&r.codonOutput, "codon-output", "none", "How to render nucleotide/codon data: none, ascii, horizontal, or vertical.")

	return r
}

// Resolve converts parsed raw flag values into a validated Params.
func (r *rawFlags) Resolve() (Params, error) {
	p := Defaults()

	p.FwFilename = r.fwFilename
	p.RvFilename = r.rvFilename
	p.FwRefs = splitNonEmpty(r.fwRefs)
	p.RvRefs = splitNonEmpty(r.rvRefs)

	p.SplitTemplateString = r.splitTemplateString
	for _, path := range splitNonEmpty(r.templateFastas) {
		p.TemplateSources = append(p.TemplateSources, TemplateSource{FastaPath: path})
	}

	if r.aaTemplate != "" {
		p.AaTemplate = polymer.NewAas(r.aaTemplate)
	}
	if r.dnaTemplate != "" {
		p.DnaTemplate = polymer.NewNts(r.dnaTemplate)
	}
	if len(p.TemplateSources) == 0 && (r.aaTemplate != "" || r.dnaTemplate != "") {
		p.TemplateSources = append(p.TemplateSources, TemplateSource{Aas: p.AaTemplate, Dna: p.DnaTemplate})
	}

	for _, pair := range splitNonEmpty(r.trims) {
		lr := strings.SplitN(pair, ":", 2)
		if len(lr) != 2 {
			return p, dsaerrors.New(dsaerrors.ConfigError, "malformed -trim pair (want left:right):", pair)
		}
		left, err1 := atoiNonNegative(lr[0])
		right, err2 := atoiNonNegative(lr[1])
		if err1 != nil || err2 != nil {
			return p, dsaerrors.New(dsaerrors.ConfigError, "malformed -trim pair (want left:right):", pair)
		}
		p.Trims = append(p.Trims, Trim{Left: left, Right: right})
	}

	p.NoHeader = r.noHeader
	p.SkipAssembly = r.skipAssembly
	p.AllowPTCs = r.allowPTCs
	p.SeparateCDR3 = r.separateCDR3

	p.MinAlignmentScore = float32(r.minAlignmentScore)
	if len(r.tpQualMin) != 1 {
		return p, dsaerrors.New(dsaerrors.ConfigError, "-tp-qual-min must be exactly one character:", r.tpQualMin)
	}
	p.TpQualMin = r.tpQualMin[0]
	p.MinUMIGroupSize = r.minUMIGroupSize
	p.MinOverlap = r.minOverlap
	p.MaxMismatches = r.maxMismatches
	p.NumberFrom = r.numberFrom

	co, ok := CodonOutputFromString(r.codonOutput)
	if !ok {
		return p, dsaerrors.New(dsaerrors.ConfigError, "unrecognized -codon-output value:", r.codonOutput)
	}
	p.CodonOutput = co

	if err := Validate(&p); err != nil {
		return p, err
	}
	return p, nil
}

// Validate checks inter-field invariants that individual flag parsing
// cannot catch on its own.
func Validate(p *Params) error {
	if p.FwFilename == "" || p.RvFilename == "" {
		return dsaerrors.New(dsaerrors.ConfigError, "both -fw and -rv input files are required")
	}
	if len(p.FwRefs) == 0 || len(p.RvRefs) == 0 {
		return dsaerrors.New(dsaerrors.ConfigError, "at least one -fw-ref and one -rv-ref are required")
	}
	if p.MinAlignmentScore < 0 || p.MinAlignmentScore > 1 {
		return dsaerrors.New(dsaerrors.ConfigError, "-min-alignment-score must be in [0, 1]")
	}
	if p.MinUMIGroupSize < 1 {
		return dsaerrors.New(dsaerrors.ConfigError, "-min-umi-group-size must be >= 1")
	}
	if p.MinOverlap < 1 {
		return dsaerrors.New(dsaerrors.ConfigError, "-min-overlap must be >= 1")
	}
	if p.MaxMismatches < 0 {
		return dsaerrors.New(dsaerrors.ConfigError, "-max-mismatches must be >= 0")
	}
	return nil
}

func splitNonEmpty(s string) []string {
	if s == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}

func atoiNonNegative(s string) (int, error) {
	n := 0
	if s == "" {
		return 0, errEmpty
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < '0' || c > '9' {
			return 0, errEmpty
		}
		n = n*10 + int(c-'0')
	}
	return n, nil
}

var errEmpty = dsaerrors.New(dsaerrors.ConfigError, "expected a non-negative integer")
