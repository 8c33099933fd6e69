package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/broadinstitute/dsa/align"
	"github.com/broadinstitute/dsa/config"
	"github.com/broadinstitute/dsa/polymer"
)

func orfFromAas(aas string) align.Orf {
	a := polymer.NewAas(aas)
	nts := polymer.NewNts(repeatCodon(len(aas)))
	cdns := polymer.ToCdns(&nts)
	return align.Orf{Aas: a, Cdns: cdns}
}

// repeatCodon returns n codons' worth of an arbitrary but valid nucleotide
// sequence, for tests that only care about Aas/Cdns having matching
// lengths and don't inspect codon content.
func repeatCodon(n int) string {
	out := make([]byte, 0, n*3)
	for i := 0; i < n; i++ {
		out = append(out, 'A', 'T', 'G')
	}
	return string(out)
}

func TestSplitOrfsPassesThroughWhenNoPatternConfigured(t *testing.T) {
	orfs := []align.Orf{orfFromAas("MKL")}
	params := &config.Params{}
	log := &ParseLog{}

	groups, err := SplitOrfs(orfs, params, log)
	require.NoError(t, err)
	require.Len(t, groups, 1)
	require.Len(t, groups[0], 1)
	assert.Equal(t, "MKL", groups[0][0].Aas.String())
}

func TestSplitOrfsPassesThroughWhenPatternHasNoCaptureGroups(t *testing.T) {
	orfs := []align.Orf{orfFromAas("WWWW")} // wouldn't match the pattern if matching were attempted
	params := &config.Params{SplitTemplateString: "^MKLQ$"}
	log := &ParseLog{}

	groups, err := SplitOrfs(orfs, params, log)
	require.NoError(t, err)
	require.Len(t, groups, 1)
	require.Len(t, groups[0], 1)
	assert.Equal(t, "WWWW", groups[0][0].Aas.String())
	assert.Zero(t, log.FilterSplitFailed)
}

func TestSplitOrfsSlicesCaptureGroups(t *testing.T) {
	orfs := []align.Orf{orfFromAas("MKLQ")}
	params := &config.Params{SplitTemplateString: "^(MK)(LQ)$"}
	log := &ParseLog{}

	groups, err := SplitOrfs(orfs, params, log)
	require.NoError(t, err)
	require.Len(t, groups, 1)
	require.Len(t, groups[0], 2)
	assert.Equal(t, "MK", groups[0][0].Aas.String())
	assert.Equal(t, "LQ", groups[0][1].Aas.String())
}

func TestSplitOrfsCountsUnmatchedAsSplitFailed(t *testing.T) {
	orfs := []align.Orf{orfFromAas("WWWW")}
	params := &config.Params{SplitTemplateString: "^(MK)(LQ)$"}
	log := &ParseLog{}

	groups, err := SplitOrfs(orfs, params, log)
	require.NoError(t, err)
	assert.Empty(t, groups)
	assert.Equal(t, 1, log.FilterSplitFailed)
}
