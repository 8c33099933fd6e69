// Package report renders the tab-separated summary tables produced at the
// end of a run: settings, parse statistics, templates, template usage,
// per-group alignments, substitution frequencies, mutation counts, and
// unique sequence tallies.
package report

import (
	"unicode"

	"github.com/broadinstitute/dsa/pipeline"
	"github.com/broadinstitute/dsa/polymer"
	"github.com/broadinstitute/dsa/symbol"
)

// SubstitutionMatrix holds, for one template, a count (or once normalized,
// a frequency) of every observed amino acid at every template position.
// Rows are indexed by symbol.Aa.Index(); columns are template positions.
type SubstitutionMatrix struct {
	Rows, Cols int
	data       []float64
}

// NewSubstitutionMatrix allocates a zeroed matrix with len(symbol.ValidAaChars)
// rows and cols columns.
func NewSubstitutionMatrix(cols int) SubstitutionMatrix {
	rows := len(symbol.ValidAaChars)
	return SubstitutionMatrix{Rows: rows, Cols: cols, data: make([]float64, rows*cols)}
}

func (m *SubstitutionMatrix) at(r, c int) float64    { return m.data[r*m.Cols+c] }
func (m *SubstitutionMatrix) add(r, c int, v float64) { m.data[r*m.Cols+c] += v }
func (m *SubstitutionMatrix) set(r, c int, v float64) { m.data[r*m.Cols+c] = v }

// CountSubstitutions tabulates, for every aligned group in groups, the
// amino acid observed at each position of templ: query positions marked by
// a gap ('-') advance the template column without contributing a count
// (a template residue deleted from the query), and lower-case residues are
// skipped entirely without advancing the template column (a query residue
// inserted relative to the template).
func CountSubstitutions(groups []pipeline.GroupAlignment, templ *polymer.Aas) SubstitutionMatrix {
	out := NewSubstitutionMatrix(templ.Len())
	for _, g := range groups {
		query := g.Alignment
		t := 0
		for q := 0; t != templ.Len(); q++ {
			c := query[q]
			if c == '-' {
				t++
				continue
			}
			if unicode.IsLower(rune(c)) {
				continue
			}
			aa := symbol.Aa(unicode.ToUpper(rune(c)))
			out.add(aa.Index(), t, 1)
			t++
		}
	}
	return out
}

// Normalize converts raw counts to per-column frequencies (treating an
// all-zero column as all zero, not NaN) and zeroes out the wild-type
// residue's own frequency at each position, so only substitutions away
// from the template residue remain visible.
func (m *SubstitutionMatrix) Normalize(templ *polymer.Aas) {
	totals := make([]float64, m.Cols)
	for r := 0; r < m.Rows; r++ {
		for c := 0; c < m.Cols; c++ {
			totals[c] += m.at(r, c)
		}
	}
	for c := 0; c < m.Cols; c++ {
		if totals[c] == 0 {
			continue
		}
		for r := 0; r < m.Rows; r++ {
			m.set(r, c, m.at(r, c)/totals[c])
		}
	}
	for c := 0; c < m.Cols; c++ {
		wt := templ.At(c)
		m.set(symbol.Aa(wt).Index(), c, 0)
	}
}

// At returns the count or frequency at row r (an index into
// symbol.ValidAaChars), column c (a template position).
func (m *SubstitutionMatrix) At(r, c int) float64 { return m.at(r, c) }

// CategorizeMutations compares every aligned group's codons against
// cdnTemplate/aaTemplate and accumulates, per template position, how many
// query positions were observed (Total), how many differed from the
// template codon but translated to the same residue (Synonymous), and how
// many differed and translated to a different residue (Nonsynonymous).
func CategorizeMutations(groups []pipeline.GroupAlignment, aaTemplate *polymer.Aas, cdnTemplate *polymer.Cdns) pipeline.MutationCount {
	out := pipeline.NewMutationCount(cdnTemplate.Len())
	tSize := aaTemplate.Len()

	for _, g := range groups {
		qa := g.Alignment
		qc := g.Cdns
		for q, t := 0, 0; t != tSize; q++ {
			if qa[q] == '-' {
				t++
				continue
			}
			if unicode.IsLower(rune(qa[q])) {
				continue
			}
			out.Total[t]++
			if qc[q] != byte(cdnTemplate.At(t)) {
				if byte(unicode.ToUpper(rune(qa[q]))) == byte(aaTemplate.At(t)) {
					out.Synonymous[t]++
				} else {
					out.Nonsynonymous[t]++
				}
			}
			t++
		}
	}
	return out
}
