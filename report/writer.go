package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/broadinstitute/dsa/config"
	"github.com/broadinstitute/dsa/pipeline"
	"github.com/broadinstitute/dsa/polymer"
	"github.com/broadinstitute/dsa/symbol"
	"github.com/broadinstitute/dsa/umiref"
)

// Version is the report format version stamped into the Settings section.
const Version = "1.0.0"

// tabWriter returns a csv.Writer configured to emit tab-separated rows,
// matching the pack's existing convention (see util/distance.go's
// tabwriter TODO and the csv.Writer usage the corpus reaches for
// elsewhere) of using encoding/csv rather than hand-joining fields with
// '\t'.
func tabWriter(w io.Writer) *csv.Writer {
	cw := csv.NewWriter(w)
	cw.Comma = '\t'
	return cw
}

// Run bundles everything needed to render a full report.
type Run struct {
	Params       *config.Params
	FwExtractors []*umiref.UMIExtractor
	RvExtractors []*umiref.UMIExtractor

	TotalReads int
	Log        *pipeline.ParseLog
	Elapsed    time.Duration
	Completed  time.Time

	Alignments []pipeline.GroupAlignment
}

// Write renders the complete report to w, in the same section order as
// the reference CLI: Settings, Parse, Templates, Template Usage,
// Alignments, one Substitutions/Mutation Counts pair per template, and
// (unless assembly was skipped) Unique Amino Acids/Unique Codons.
func Write(w io.Writer, r *Run) error {
	if !r.Params.NoHeader {
		if err := WriteSettings(w, r.Params, r.FwExtractors, r.RvExtractors, r.Elapsed, r.Completed); err != nil {
			return err
		}
		if err := WriteParse(w, r.TotalReads, r.Log, len(r.Alignments)); err != nil {
			return err
		}
	}

	sorted := sortedByTemplate(r.Alignments)

	groups := groupByTemplate(sorted)

	hasTemplates := len(r.Params.TemplateSources) > 0

	if hasTemplates {
		if err := WriteTemplates(w, groups); err != nil {
			return err
		}
		if err := WriteTemplateUsage(w, groups); err != nil {
			return err
		}
	}

	if err := WriteAlignments(w, sorted, r.Params.CodonOutput); err != nil {
		return err
	}

	if hasTemplates {
		for _, g := range groups {
			matrix := CountSubstitutions(g.Alignments, &g.Template.Aas)
			matrix.Normalize(&g.Template.Aas)
			if err := WriteSubstitutions(w, g.Template.Label(""), &g.Template.Aas, matrix, r.Params.NumberFrom); err != nil {
				return err
			}

			if g.Template.Cdns.Len() > 0 {
				counts := CategorizeMutations(g.Alignments, &g.Template.Aas, &g.Template.Cdns)
				if err := WriteMutationCounts(w, g.Template.Label(""), &g.Template.Aas, counts, r.Params.NumberFrom); err != nil {
					return err
				}
			}
		}
	}

	if !r.Params.SkipAssembly {
		if err := WriteUniqueAminoAcids(w, r.Alignments); err != nil {
			return err
		}
		if err := WriteUniqueCodons(w, r.Alignments); err != nil {
			return err
		}
	}

	return nil
}

// templateGroup is one contiguous run of alignments sharing the same
// interned AlignmentTemplate, in the order the reference's std::find_if_not
// scan over the sorted alignment slice produces.
type templateGroup struct {
	Template   *pipeline.AlignmentTemplate
	Alignments []pipeline.GroupAlignment
}

// sortedByTemplate orders alignments by template id, placing untemplated
// alignments (Templ == nil) first, matching the reference comparator.
func sortedByTemplate(alignments []pipeline.GroupAlignment) []pipeline.GroupAlignment {
	out := make([]pipeline.GroupAlignment, len(alignments))
	copy(out, alignments)
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i].Templ, out[j].Templ
		if a == b {
			return false
		}
		if a == nil {
			return true
		}
		if b == nil {
			return false
		}
		return a.ID < b.ID
	})
	return out
}

// groupByTemplate partitions sorted (already ordered by sortedByTemplate)
// into contiguous per-template runs, skipping untemplated alignments.
func groupByTemplate(sorted []pipeline.GroupAlignment) []templateGroup {
	var out []templateGroup
	i := 0
	for i < len(sorted) {
		if sorted[i].Templ == nil {
			i++
			continue
		}
		tpl := sorted[i].Templ
		j := i
		for j < len(sorted) && sorted[j].Templ == tpl {
			j++
		}
		out = append(out, templateGroup{Template: tpl, Alignments: sorted[i:j]})
		i = j
	}
	return out
}

// WriteSettings renders the #Settings# section: run configuration as
// label/value rows.
func WriteSettings(w io.Writer, p *config.Params, fwExs, rvExs []*umiref.UMIExtractor, elapsed time.Duration, completed time.Time) error {
	fmt.Fprintln(w, "#Settings#")
	cw := tabWriter(w)
	row := func(label, value string) { cw.Write([]string{"#" + label, value}) }

	row("program version", Version)
	row("run complete", completed.Format("2006-01-02 15:04:05"))
	row("wall clock time", formatElapsed(elapsed))
	row("forward reads fastq file", p.FwFilename)
	row("reverse reads fastq file", p.RvFilename)
	for _, ex := range fwExs {
		row("forward nucleotide reference sequence (-f, --fw_ref)", ex.Sequence())
	}
	for _, ex := range rvExs {
		row("reverse nucleotide reference sequence (-r, --rv_ref)", ex.Sequence())
	}
	if p.SplitTemplateString != "" {
		row("split template regular expression (--split)", p.SplitTemplateString)
	}
	for _, src := range p.TemplateSources {
		switch {
		case src.Aas.Len() > 0:
			row("amino acid template sequence (-t, --template)", src.Aas.String())
		case src.Dna.Len() > 0:
			row("dna template sequence (-d, --template_dna)", src.Dna.String())
		case src.FastaPath != "":
			row("template database (--template_db)", src.FastaPath)
		}
	}
	row("minimum 3 prime quality (-q, --min_qual)", string(p.TpQualMin))
	row("minimum umi group size (-g, --min_umi_grp)", fmt.Sprint(p.MinUMIGroupSize))
	row("reads aligned to template separately (-x, --skip_assembly)", fmt.Sprint(p.SkipAssembly))
	row("minimum nucleotide alignment overlap (-v, --min_overlap)", fmt.Sprint(p.MinOverlap))
	row("maximum nucleotide mismatches allowed (-m, --max_mismatch)", fmt.Sprint(p.MaxMismatches))
	row("minimum template alignment score (-a, --min_aln)", fmt.Sprint(p.MinAlignmentScore))
	cw.Flush()
	return cw.Error()
}

func formatElapsed(d time.Duration) string {
	h := int(d.Hours())
	m := int(d.Minutes()) % 60
	s := int(d.Seconds()) % 60
	ms := int(d.Milliseconds()) % 1000
	return fmt.Sprintf("%02d:%02d:%02d.%03d", h, m, s, ms)
}

// WriteParse renders the #Parse# section: per-reason filter counts.
func WriteParse(w io.Writer, totalReads int, log *pipeline.ParseLog, numAlignments int) error {
	fmt.Fprintln(w, "#Parse#")
	cw := tabWriter(w)
	row := func(label string, n int) { cw.Write([]string{"#" + label, fmt.Sprint(n)}) }

	row("paired end reads parsed", totalReads)
	row("reads filtered because of non-ATGC characters", log.FilterInvalidChars)
	row("reads filtered because reference could not be identified in forward sequence", log.FilterNoFwUmi)
	row("reads filtered because reference could not be identified in reverse sequence", log.FilterNoRvUmi)
	row("reads filtered because they could not be assembled", log.FilterCouldNotAssemble)
	row("reads filtered because of small umi group size", log.FilterUmiGroupSizeTooSmall)
	row("reads merged during umi collapse", log.FilterDuplicateUmi)
	row("reads filtered because of premature stop codons", log.FilterPrematureStopCodon)
	row("reads filtered because no matching template was identified", log.FilterNoMatchingTemplate)
	row("reads filtered because of poor alignment to template", log.FilterBadAlignment)
	row("alignments calculated after qc and umi collapse", numAlignments)
	cw.Flush()
	return cw.Error()
}

// WriteTemplates renders the #Templates# section: one row per distinct
// interned template, in first-encountered (i.e. ascending id) order.
func WriteTemplates(w io.Writer, groups []templateGroup) error {
	fmt.Fprintln(w, "#Templates#")
	cw := tabWriter(w)
	if err := cw.Write([]string{"Template Id", "Template Name", "Sequence"}); err != nil {
		return err
	}
	for _, g := range groups {
		if err := cw.Write([]string{fmt.Sprint(g.Template.ID), g.Template.Label(""), g.Template.Aas.String()}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteTemplateUsage renders the #Template Usage# section: per-region
// (per-"split") frequency of each observed template label.
func WriteTemplateUsage(w io.Writer, groups []templateGroup) error {
	fmt.Fprintln(w, "#Template Usage#")
	cw := tabWriter(w)
	if err := cw.Write([]string{"Split", "Template", "Count", "Frequency"}); err != nil {
		return err
	}

	var regionCount int
	for _, g := range groups {
		if n := len(g.Template.Labels); n > regionCount {
			regionCount = n
		}
	}

	counters := make([]Counter, regionCount)
	for i := range counters {
		counters[i] = NewCounter()
	}
	for _, g := range groups {
		for i, label := range g.Template.Labels {
			for range g.Alignments {
				counters[i].Push(label)
			}
		}
	}

	for i := range counters {
		total := float64(counters[i].Total())
		for _, e := range counters[i].Entries() {
			freq := 0.0
			if total != 0 {
				freq = float64(e.Count) / total
			}
			if err := cw.Write([]string{fmt.Sprint(i + 1), e.Key, fmt.Sprint(e.Count), fmt.Sprint(freq)}); err != nil {
				return err
			}
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteAlignments renders the #Alignments# section: one row per group,
// followed (per codonOutput) by zero or more rows rendering its codon data.
func WriteAlignments(w io.Writer, alignments []pipeline.GroupAlignment, codonOutput config.CodonOutput) error {
	fmt.Fprintln(w, "#Alignments#")
	cw := tabWriter(w)
	if err := cw.Write([]string{"Template", "UMI Group Size", "Barcode", "Sequence"}); err != nil {
		return err
	}

	for _, al := range alignments {
		templateID := ""
		if al.Templ != nil {
			templateID = fmt.Sprint(al.Templ.ID)
		}
		if err := cw.Write([]string{templateID, fmt.Sprint(al.UmiGroupSize), al.Barcode, al.Alignment}); err != nil {
			return err
		}

		switch codonOutput {
		case config.CodonOutputAscii:
			if err := cw.Write([]string{"", "", "", al.Cdns}); err != nil {
				return err
			}
		case config.CodonOutputHorizontal:
			if err := cw.Write([]string{"", "", "", unpackCodonString(al.Cdns)}); err != nil {
				return err
			}
		case config.CodonOutputVertical:
			rows := verticalCodonRows(al.Cdns)
			for _, r := range rows {
				if err := cw.Write([]string{"", "", "", r}); err != nil {
					return err
				}
			}
		case config.CodonOutputNone:
		}
	}
	cw.Flush()
	return cw.Error()
}

// unpackCodonString renders a codon string as one line of nucleotide
// triples, skipping any byte that isn't a valid packed codon (a rendered
// gap or insertion-lowering artifact).
func unpackCodonString(cdns string) string {
	out := make([]byte, 0, len(cdns)*3)
	for i := 0; i < len(cdns); i++ {
		c := symbol.Cdn(cdns[i])
		if symbol.NormalizeCdn(cdns[i]) == 0 {
			continue
		}
		out = append(out, byte(c.P1()), byte(c.P2()), byte(c.P3()))
	}
	return string(out)
}

// verticalCodonRows renders a codon string as three rows, one per
// within-codon nucleotide position, space-padded wherever the byte at
// that column isn't a valid packed codon.
func verticalCodonRows(cdns string) [3]string {
	var rows [3][]byte
	for i := 0; i < 3; i++ {
		rows[i] = make([]byte, len(cdns))
	}
	for j := 0; j < len(cdns); j++ {
		valid := symbol.NormalizeCdn(cdns[j]) != 0
		c := symbol.Cdn(cdns[j])
		for i := 0; i < 3; i++ {
			if valid {
				rows[i][j] = byte(c.At(i))
			} else {
				rows[i][j] = ' '
			}
		}
	}
	return [3]string{string(rows[0]), string(rows[1]), string(rows[2])}
}

// WriteSubstitutions renders one #Substitutions (label)# section: a
// residue-by-position frequency matrix.
func WriteSubstitutions(w io.Writer, label string, templ *polymer.Aas, m SubstitutionMatrix, numberFrom int) error {
	fmt.Fprintf(w, "#Substitutions (%s)#\n", label)
	cw := tabWriter(w)

	header := make([]string, m.Cols+1)
	header[0] = ""
	for c := 0; c < m.Cols; c++ {
		header[c+1] = fmt.Sprintf("%c%d", byte(templ.At(c)), c+numberFrom)
	}
	if err := cw.Write(header); err != nil {
		return err
	}

	for r := 0; r < m.Rows; r++ {
		row := make([]string, m.Cols+1)
		row[0] = string(symbol.ValidAaChars[r])
		for c := 0; c < m.Cols; c++ {
			row[c+1] = fmt.Sprint(m.At(r, c))
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteMutationCounts renders one #Mutation Counts (label)# section: Total,
// Non-Coding (synonymous), and Coding (nonsynonymous) rows.
func WriteMutationCounts(w io.Writer, label string, aaTemplate *polymer.Aas, counts pipeline.MutationCount, numberFrom int) error {
	fmt.Fprintf(w, "#Mutation Counts (%s)#\n", label)
	cw := tabWriter(w)

	n := aaTemplate.Len()
	header := make([]string, n+1)
	header[0] = ""
	for c := 0; c < n; c++ {
		header[c+1] = fmt.Sprintf("%c%d", byte(aaTemplate.At(c)), c+numberFrom)
	}
	if err := cw.Write(header); err != nil {
		return err
	}

	writeCountRow := func(label string, vals []uint) error {
		row := make([]string, n+1)
		row[0] = label
		for c := 0; c < n; c++ {
			row[c+1] = fmt.Sprint(vals[c])
		}
		return cw.Write(row)
	}

	if err := writeCountRow("Total", counts.Total[:n]); err != nil {
		return err
	}
	if err := writeCountRow("Non-Coding", counts.Synonymous[:n]); err != nil {
		return err
	}
	if err := writeCountRow("Coding", counts.Nonsynonymous[:n]); err != nil {
		return err
	}
	cw.Flush()
	return cw.Error()
}

// WriteUniqueAminoAcids renders the #Unique Amino Acids ()# section.
func WriteUniqueAminoAcids(w io.Writer, alignments []pipeline.GroupAlignment) error {
	fmt.Fprintln(w, "#Unique Amino Acids ()#")
	return writeUniqueSection(w, UniqueAminoAcidSequences(alignments))
}

// WriteUniqueCodons renders the #Unique Codons ()# section.
func WriteUniqueCodons(w io.Writer, alignments []pipeline.GroupAlignment) error {
	fmt.Fprintln(w, "#Unique Codons ()#")
	return writeUniqueSection(w, UniqueCodonSequences(alignments))
}

func writeUniqueSection(w io.Writer, seqs []UniqueSequence) error {
	cw := tabWriter(w)
	if err := cw.Write([]string{"Num UMI Groups", "Num PCR Reads", "Sequence"}); err != nil {
		return err
	}
	for _, s := range seqs {
		if err := cw.Write([]string{fmt.Sprint(s.Groups), fmt.Sprint(s.Reads), s.Sequence}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
