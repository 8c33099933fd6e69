package mmapfile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapReadsFileContents(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sample.txt")
	require.NoError(t, os.WriteFile(path, []byte("hello world"), 0o644))

	m, err := Map(path)
	require.NoError(t, err)
	defer m.Unmap()

	assert.Equal(t, "hello world", string(m.Bytes()))
	assert.Equal(t, 11, m.Size())
}

func TestMapOnMissingFileReturnsIoOpenError(t *testing.T) {
	_, err := Map("/nonexistent/path/does-not-exist.txt")
	require.Error(t, err)
}

func TestNextLinesSkipsCurrentLineThenNMore(t *testing.T) {
	data := []byte("a\nb\nc\nd")
	assert.Equal(t, 2, NextLines(data, 0, 0))
	assert.Equal(t, 4, NextLines(data, 0, 1))
	assert.Equal(t, len(data), NextLines(data, 0, 10))
}

func TestSeekNextFindsRecordBoundaryPlusLine(t *testing.T) {
	// A two-record FASTQ: header/dna/"+"/qual, repeated.
	data := []byte("@r1\nACGT\n+\nIIII\n@r2\nTTTT\n+\nIIII\n")
	next := SeekNext(data, 5) // somewhere inside the dna line of record 1
	assert.Equal(t, "@r2\nTTTT\n+\nIIII\n", string(data[next:]))
}
