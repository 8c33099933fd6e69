package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/broadinstitute/dsa/align"
)

func TestTranslateAndFilterPTCsKeepsCleanOrfs(t *testing.T) {
	// ATG AAA CTG -> Met Lys Leu, no stop.
	reads := []align.Read{mkRead("ATGAAACTG", "IIIIIIIII")}
	log := &ParseLog{}

	orfs := TranslateAndFilterPTCs(reads, log, false)

	require.Len(t, orfs, 1)
	assert.Equal(t, 3, orfs[0].Aas.Len())
	assert.Zero(t, log.FilterPrematureStopCodon)
}

func TestTranslateAndFilterPTCsDropsStopCodons(t *testing.T) {
	// ATG TAA CTG -> Met Stop Leu.
	reads := []align.Read{mkRead("ATGTAACTG", "IIIIIIIII")}
	log := &ParseLog{}

	orfs := TranslateAndFilterPTCs(reads, log, false)

	assert.Empty(t, orfs)
	assert.Equal(t, 1, log.FilterPrematureStopCodon)
}

func TestTranslateAndFilterPTCsReverseComplements(t *testing.T) {
	// Reverse complement of "CAGTTTCAT" is "ATGAAACTG" -> Met Lys Leu.
	reads := []align.Read{mkRead("CAGTTTCAT", "IIIIIIIII")}
	log := &ParseLog{}

	orfs := TranslateAndFilterPTCs(reads, log, true)

	require.Len(t, orfs, 1)
	assert.Equal(t, 3, orfs[0].Aas.Len())
}
