package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/broadinstitute/dsa/pipeline"
)

func TestUniqueAminoAcidSequencesStripsGapsAndSortsByGroupCountDescending(t *testing.T) {
	groups := []pipeline.GroupAlignment{
		{Alignment: "M-KL", UmiGroupSize: 2},
		{Alignment: "MKL", UmiGroupSize: 3},  // same sequence once the gap is stripped
		{Alignment: "MRL", UmiGroupSize: 1},
	}

	uniq := UniqueAminoAcidSequences(groups)

	require.Len(t, uniq, 2)
	assert.Equal(t, "MKL", uniq[0].Sequence)
	assert.Equal(t, 2, uniq[0].Groups)
	assert.Equal(t, 5, uniq[0].Reads)
	assert.Equal(t, "MRL", uniq[1].Sequence)
	assert.Equal(t, 1, uniq[1].Groups)
	assert.Equal(t, 1, uniq[1].Reads)
}

func TestUniqueCodonSequencesStripsSpacesNotDashes(t *testing.T) {
	groups := []pipeline.GroupAlignment{
		{Cdns: "AB C", UmiGroupSize: 1},
		{Cdns: "ABC", UmiGroupSize: 4},
	}

	uniq := UniqueCodonSequences(groups)

	require.Len(t, uniq, 1)
	assert.Equal(t, "ABC", uniq[0].Sequence)
	assert.Equal(t, 2, uniq[0].Groups)
	assert.Equal(t, 5, uniq[0].Reads)

	dashed := UniqueCodonSequences([]pipeline.GroupAlignment{{Cdns: "A-C", UmiGroupSize: 1}})
	require.Len(t, dashed, 1)
	assert.Equal(t, "A-C", dashed[0].Sequence)
}
