package pipeline

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/broadinstitute/dsa/mmapfile"
)

func writeFastq(t *testing.T, contents string) *mmapfile.Mapping {
	t.Helper()
	path := filepath.Join(t.TempDir(), "reads.fastq")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	m, err := mmapfile.Map(path)
	require.NoError(t, err)
	return m
}

func TestExtractReadDataParsesWellFormedRecords(t *testing.T) {
	m := writeFastq(t, "@r1\nACGT\n+\nIIII\n@r2\nTTTT\n+\nIIII\n")
	reads := ExtractReadData(m)

	require.Len(t, reads, 2)
	assert.Equal(t, "ACGT", reads[0].Dna.String())
	assert.Equal(t, "IIII", string(reads[0].Qual))
	assert.Equal(t, "TTTT", reads[1].Dna.String())
}

func TestExtractReadDataMarksMismatchedLengthsEmpty(t *testing.T) {
	m := writeFastq(t, "@r1\nACGT\n+\nIII\n")
	reads := ExtractReadData(m)

	require.Len(t, reads, 1)
	assert.True(t, reads[0].Empty())
}

func TestExtractReadDataMarksInvalidCharsEmpty(t *testing.T) {
	m := writeFastq(t, "@r1\nACZT\n+\nIIII\n")
	reads := ExtractReadData(m)

	require.Len(t, reads, 1)
	assert.True(t, reads[0].Empty())
}

func TestExtractReadDataOnEmptyFileReturnsNil(t *testing.T) {
	m := writeFastq(t, "")
	assert.Nil(t, ExtractReadData(m))
}
