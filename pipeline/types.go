package pipeline

import (
	"strings"

	"github.com/broadinstitute/dsa/polymer"
)

// AlignmentTemplate is one interned composite template: the concatenation
// of the per-region templates a group of split ORFs matched, labeled by
// each region's own template label.
type AlignmentTemplate struct {
	ID     int
	Labels []string
	Aas    polymer.Aas
	Cdns   polymer.Cdns
}

// Label joins every region label with delim, matching AlignmentTemplate::label.
func (t *AlignmentTemplate) Label(delim string) string {
	if delim == "" {
		delim = " / "
	}
	return strings.Join(t.Labels, delim)
}

// GroupAlignment is one UMI group's final alignment against an
// AlignmentTemplate: the rendered amino acid alignment string (one
// character set per region, concatenated) and the corresponding codon
// string.
type GroupAlignment struct {
	UmiGroupSize int
	Templ        *AlignmentTemplate
	Barcode      string
	Alignment    string
	Cdns         string
}

// Append concatenates o's alignment/codon strings onto g,
// mirroring GroupAlignment::operator+=.
func (g *GroupAlignment) Append(o GroupAlignment) {
	g.Alignment += o.Alignment
	g.Cdns += o.Cdns
}

// MutationCount accumulates per-column synonymous/nonsynonymous/total
// substitution counts across a set of aligned sequences.
type MutationCount struct {
	Synonymous    []uint
	Nonsynonymous []uint
	Total         []uint
}

// NewMutationCount allocates a zeroed MutationCount with cols columns.
func NewMutationCount(cols int) MutationCount {
	return MutationCount{
		Synonymous:    make([]uint, cols),
		Nonsynonymous: make([]uint, cols),
		Total:         make([]uint, cols),
	}
}

// Add returns the element-wise sum of c and o, mirroring MutationCount::operator+.
func (c MutationCount) Add(o MutationCount) MutationCount {
	sum := NewMutationCount(len(c.Total))
	for i := range sum.Total {
		sum.Synonymous[i] = c.Synonymous[i] + o.Synonymous[i]
		sum.Nonsynonymous[i] = c.Nonsynonymous[i] + o.Nonsynonymous[i]
		sum.Total[i] = c.Total[i] + o.Total[i]
	}
	return sum
}
