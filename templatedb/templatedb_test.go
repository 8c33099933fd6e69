package templatedb

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/broadinstitute/dsa/dsaerrors"
	"github.com/broadinstitute/dsa/polymer"
	"github.com/broadinstitute/dsa/symbol"
)

func newCdnsEntry(label, nts string) Entry {
	n := polymer.NewNts(nts)
	cdns := polymer.ToCdns(&n)
	return Entry{Label: label, Cdns: cdns, Aas: polymer.NewAas("")}
}

func TestQueryOnEmptyDatabaseReturnsNotFound(t *testing.T) {
	db := New()
	n := polymer.NewNts("ATGAAACTG")
	cdns := polymer.ToCdns(&n)
	assert.Equal(t, NotFound, db.Query(&cdns))
}

func TestAddEntryAndAtUseOneBasedIndexing(t *testing.T) {
	db := New()
	e := newCdnsEntry("TEMPLATE_A", "ATGAAACTG")
	db.AddEntry(e.Label, e.Cdns, e.Aas)

	assert.Equal(t, 1, db.Len())
	assert.Equal(t, "TEMPLATE_A", db.At(1).Label)
}

func TestAtPanicsOnNotFoundIndex(t *testing.T) {
	db := New()
	db.AddEntry("A", polymer.Cdns{}, polymer.Aas{})
	assert.Panics(t, func() { db.At(NotFound) })
	assert.Panics(t, func() { db.At(2) })
}

func TestQueryPicksTheExactMatchingTemplate(t *testing.T) {
	db := New()
	db.AddEntry(newCdnsEntry("FAR", "ATGAAACTGATGAAACTGATGAAACTG").Label, newCdnsEntry("FAR", "ATGAAACTGATGAAACTGATGAAACTG").Cdns, polymer.NewAas(""))
	db.AddEntry(newCdnsEntry("NEAR", "ATGAAACTGATGAAACTGATGCCCCTG").Label, newCdnsEntry("NEAR", "ATGAAACTGATGAAACTGATGCCCCTG").Cdns, polymer.NewAas(""))

	q := polymer.NewNts("ATGAAACTGATGAAACTGATGAAACTG")
	qCdns := polymer.ToCdns(&q)

	best := db.Query(&qCdns)
	assert.Equal(t, 1, best)
}

func TestQueryAndAlignReturnsTracebackForWinner(t *testing.T) {
	db := New()
	n := polymer.NewNts("ATGAAACTG")
	cdns := polymer.ToCdns(&n)
	db.AddEntry("ONLY", cdns, polymer.NewAas(""))

	q := polymer.NewNts("ATGAAACTG")
	qCdns := polymer.ToCdns(&q)

	best, alignment := db.QueryAndAlign(&qCdns)
	require.Equal(t, 1, best)
	assert.NotEmpty(t, alignment.AlignedQuery)
}

func TestTrimShortensEveryEntry(t *testing.T) {
	db := New()
	n := polymer.NewNts("ATGAAACTGATG")
	cdns := polymer.ToCdns(&n)
	aas := polymer.ToAas(&cdns, symbol.StandardTranslationTable)
	db.AddEntry("T", cdns, aas)

	before := db.At(1).Aas.Len()
	require.NoError(t, db.Trim(1, 1))
	assert.Equal(t, before-2, db.At(1).Aas.Len())
}

func TestTrimRejectsTrimmingAnEntireEntry(t *testing.T) {
	db := New()
	n := polymer.NewNts("ATGAAA")
	cdns := polymer.ToCdns(&n)
	aas := polymer.ToAas(&cdns, symbol.StandardTranslationTable)
	db.AddEntry("T", cdns, aas)

	err := db.Trim(aas.Len(), 0)
	require.Error(t, err)
	assert.True(t, dsaerrors.Is(dsaerrors.ExcessiveTrim, err))
}

func TestCodonDataAvailableReflectsOnlyTheFirstEntry(t *testing.T) {
	withCodons := New()
	withCodons.AddEntry("WITH_CODONS", newCdnsEntry("X", "ATGAAACTG").Cdns, polymer.NewAas(""))
	withCodons.AddEntry("AA_ONLY", polymer.Cdns{}, polymer.NewAas("MKL"))
	assert.True(t, withCodons.CodonDataAvailable())

	aaFirst := New()
	aaFirst.AddEntry("AA_ONLY", polymer.Cdns{}, polymer.NewAas("MKL"))
	aaFirst.AddEntry("WITH_CODONS", newCdnsEntry("X", "ATGAAACTG").Cdns, polymer.NewAas(""))
	assert.False(t, aaFirst.CodonDataAvailable())
}

func TestCodonDataAvailableFalseWhenEmpty(t *testing.T) {
	db := New()
	assert.False(t, db.CodonDataAvailable())
}
