package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/broadinstitute/dsa/align"
	"github.com/broadinstitute/dsa/config"
)

func TestAssembleReadsMergesOverlappingPairs(t *testing.T) {
	// rv is given pre-reverse-complemented: "CCCCGGGG" happens to be its
	// own reverse complement, so AssembleReadPair's internal
	// reverse-complement step leaves it reading "CCCCGGGG", overlapping
	// fw's trailing "CCCC".
	fw := mkRead("AAAACCCC", "IIIIIIII")
	rv := mkRead("CCCCGGGG", "IIIIIIII")

	params := &config.Params{MinOverlap: 4, MaxMismatches: 0}
	log := &ParseLog{}

	out := AssembleReads([]align.ReadPair{{Fw: fw, Rv: rv}}, params, log)

	require.Len(t, out, 1)
	assert.Equal(t, "AAAACCCCGGGG", out[0].Dna.String())
	assert.Zero(t, log.FilterCouldNotAssemble)
}

func TestAssembleReadsCountsFailuresToAssemble(t *testing.T) {
	// rv's internal reverse-complement turns "AAAAAAAA" into "TTTTTTTT",
	// which shares no bases with fw's "AAAAAAAA" -- no usable overlap.
	fw := mkRead("AAAAAAAA", "IIIIIIII")
	rv := mkRead("AAAAAAAA", "IIIIIIII")

	params := &config.Params{MinOverlap: 8, MaxMismatches: 0}
	log := &ParseLog{}

	out := AssembleReads([]align.ReadPair{{Fw: fw, Rv: rv}}, params, log)

	assert.Empty(t, out)
	assert.Equal(t, 1, log.FilterCouldNotAssemble)
}
