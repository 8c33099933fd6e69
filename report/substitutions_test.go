package report

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/broadinstitute/dsa/pipeline"
	"github.com/broadinstitute/dsa/polymer"
	"github.com/broadinstitute/dsa/symbol"
)

func TestCountSubstitutionsTalliesResidueAtEachTemplatePosition(t *testing.T) {
	templ := polymer.NewAas("MKL")
	groups := []pipeline.GroupAlignment{
		{Alignment: "MKL"}, // matches template exactly
		{Alignment: "MRL"}, // position 1 mutated K -> R
		{Alignment: "MRL"}, // position 1 mutated K -> R again
	}

	m := CountSubstitutions(groups, &templ)

	assert.Equal(t, 3.0, countAt(m, templ, 0)) // all three carry M at position 0
	assert.Equal(t, 1.0, countAt(m, templ, 1)) // one K survives at position 1
	assert.Equal(t, 2.0, countAtFor(m, 'R', 1))
	assert.Equal(t, 3.0, countAt(m, templ, 2))
}

// countAt returns the count for the template's own wild-type residue at
// column c.
func countAt(m SubstitutionMatrix, templ polymer.Aas, c int) float64 {
	return countAtFor(m, byte(templ.At(c)), c)
}

func countAtFor(m SubstitutionMatrix, residue byte, c int) float64 {
	return m.At(symbol.Aa(residue).Index(), c)
}

func TestCountSubstitutionsSkipsInsertionsAndGaps(t *testing.T) {
	templ := polymer.NewAas("MK")
	// lower-case 'x' is an insertion (doesn't advance the template column
	// and isn't counted); '-' is a deletion (advances the column, no count).
	groups := []pipeline.GroupAlignment{
		{Alignment: "MxK"},
		{Alignment: "M-"},
	}

	m := CountSubstitutions(groups, &templ)
	assert.Equal(t, 2.0, countAt(m, templ, 0))
	assert.Equal(t, 1.0, countAt(m, templ, 1))
}

func TestNormalizeConvertsToFrequenciesAndZeroesWildType(t *testing.T) {
	templ := polymer.NewAas("M")
	groups := []pipeline.GroupAlignment{
		{Alignment: "M"},
		{Alignment: "M"},
		{Alignment: "R"},
		{Alignment: "R"},
	}
	m := CountSubstitutions(groups, &templ)
	m.Normalize(&templ)

	assert.Zero(t, countAt(m, templ, 0)) // wild-type M zeroed even though it had frequency 0.5
	assert.Equal(t, 0.5, countAtFor(m, 'R', 0))
}

func TestNormalizeLeavesAllZeroColumnAtZero(t *testing.T) {
	templ := polymer.NewAas("M")
	var m SubstitutionMatrix = NewSubstitutionMatrix(1)
	m.Normalize(&templ) // no observations at all; must not divide by zero
	assert.Zero(t, countAt(m, templ, 0))
}

func TestCategorizeMutationsCountsSynonymousAndNonsynonymous(t *testing.T) {
	aaTemplate := polymer.NewAas("MK")
	cdnNts := polymer.NewNts("ATGAAA") // Met, Lys
	cdnTemplate := polymer.ToCdns(&cdnNts)

	synNts := polymer.NewNts("ATGAAG") // Lys via a different (synonymous) codon
	synCdns := polymer.ToCdns(&synNts)

	nonsynNts := polymer.NewNts("ATGCGT") // Arg instead of Lys (nonsynonymous)
	nonsynCdns := polymer.ToCdns(&nonsynNts)

	groups := []pipeline.GroupAlignment{
		{Alignment: "MK", Cdns: synCdns.String()},
		{Alignment: "MR", Cdns: nonsynCdns.String()},
		{Alignment: "MK", Cdns: cdnTemplate.String()}, // exact match, no mutation
	}

	counts := CategorizeMutations(groups, &aaTemplate, &cdnTemplate)

	assert.EqualValues(t, 3, counts.Total[0])
	assert.EqualValues(t, 0, counts.Synonymous[0])
	assert.EqualValues(t, 0, counts.Nonsynonymous[0])

	assert.EqualValues(t, 3, counts.Total[1])
	assert.EqualValues(t, 1, counts.Synonymous[1])
	assert.EqualValues(t, 1, counts.Nonsynonymous[1])
}
