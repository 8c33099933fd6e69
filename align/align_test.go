package align

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/broadinstitute/dsa/polymer"
	"github.com/broadinstitute/dsa/symbol"
)

func TestNWIdenticalSequencesAlignPerfectly(t *testing.T) {
	q := polymer.NewAas("MKLV")
	tmpl := polymer.NewAas("MKLV")

	var out Alignment
	NW[symbol.Aa](&q, &tmpl, AaScore, 4, &out, false)

	assert.Equal(t, "MKLV", out.AlignedQuery)
	assert.Equal(t, SelfAlignScore[symbol.Aa](&q, AaScore), out.Score)
}

func TestNWFreeEndGapOnTrailingQueryOverhang(t *testing.T) {
	q := polymer.NewNts("AG")
	tmpl := polymer.NewNts("A")

	var out Alignment
	NW[symbol.Nt](&q, &tmpl, NtScore, 5, &out, false)
	assert.Equal(t, int32(1), out.Score, "trailing query overhang past the template's last column costs nothing")
	assert.Equal(t, "Ag", out.AlignedQuery)
}

func TestNWFreeEndGapOnLeadingQueryOverhang(t *testing.T) {
	q := polymer.NewNts("GA")
	tmpl := polymer.NewNts("A")

	var out Alignment
	NW[symbol.Nt](&q, &tmpl, NtScore, 5, &out, false)
	assert.Equal(t, int32(1), out.Score, "leading query overhang before the template's first column costs nothing")
	assert.Equal(t, "gA", out.AlignedQuery)
}

func TestNWTieBreakPrefersMatchThenGapQThenGapT(t *testing.T) {
	q := polymer.NewAas("MK")
	tmpl := polymer.NewAas("MK")

	var out Alignment
	NW[symbol.Aa](&q, &tmpl, AaScore, 0, &out, false)
	assert.Equal(t, "MK", out.AlignedQuery)
}

func TestCdnAlignedQueryUsesRawCodonByte(t *testing.T) {
	nts := polymer.NewNts("ATGAAA")
	cdns := polymer.ToCdns(&nts)

	var out Alignment
	NW[symbol.Cdn](&cdns, &cdns, CdnScore, 4, &out, false)
	assert.Equal(t, cdns.String(), out.AlignedQuery)
}

func TestFindOverlapDetectsInOrderOverlap(t *testing.T) {
	a := []byte("AAAACCCC")
	b := []byte("CCCCGGGG")
	ol := FindOverlap(a, b, 0)
	assert.Equal(t, 4, ol.Length)
	assert.Equal(t, 0, ol.Mismatches)
	assert.True(t, ol.InOrder)
}

func TestFindOverlapToleratesMismatches(t *testing.T) {
	a := []byte("AAAACCCG") // a's 5-base suffix ACCCG vs b's prefix CCCCG: 4 matches, 1 mismatch
	b := []byte("CCCCGGGG")
	ol := FindOverlap(a, b, 1)
	assert.Equal(t, 5, ol.Length)
	assert.Equal(t, 1, ol.Mismatches)
}

func TestAssembleReadPairMergesOverlappingReads(t *testing.T) {
	// fw, as sequenced 5'->3': AAAACCCC.
	// The true fragment is AAAACCCCGGGG, so the raw reverse read (5'->3' off
	// the other strand) is the reverse complement of its tail: CCCCGGGG.
	fw := Read{Barcode: "fw", UmiGroupSize: 1, Dna: polymer.NewNts("AAAACCCC"), Qual: []byte{1, 1, 1, 1, 1, 1, 1, 1}}
	rv := Read{Barcode: "rv", UmiGroupSize: 1, Dna: polymer.NewNts("CCCCGGGG"), Qual: []byte{1, 1, 1, 1, 1, 1, 1, 1}}

	merged := AssembleReadPair(fw, rv, 4, 0)
	require.False(t, merged.Empty())
	assert.Equal(t, "AAAACCCCGGGG", merged.Dna.String())
	assert.Equal(t, "fwrv", merged.Barcode)
}

func TestAssembleReadPairFailsBelowMinOverlap(t *testing.T) {
	// rv's reverse complement is TTTT, which shares no run with fw's AAAA.
	fw := Read{Dna: polymer.NewNts("AAAA"), Qual: []byte{1, 1, 1, 1}}
	rv := Read{Dna: polymer.NewNts("AAAA"), Qual: []byte{1, 1, 1, 1}}

	merged := AssembleReadPair(fw, rv, 4, 0)
	assert.True(t, merged.Empty())
}

func TestSelfAlignScoreSumsDiagonal(t *testing.T) {
	nts := polymer.NewNts("ACGT")
	got := SelfAlignScore[symbol.Nt](&nts, NtScore)
	assert.Equal(t, int32(4), got)
}
