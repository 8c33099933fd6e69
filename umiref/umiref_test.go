package umiref

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/broadinstitute/dsa/dsaerrors"
)

func TestNewUMIExtractorRejectsInvalidChars(t *testing.T) {
	_, err := NewUMIExtractor("ACGTx")
	require.Error(t, err)
	assert.True(t, dsaerrors.Is(dsaerrors.InvalidUmiPattern, err))
}

func TestNewUMIExtractorLiteralOnly(t *testing.T) {
	ex, err := NewUMIExtractor("ACGT")
	require.NoError(t, err)
	assert.Equal(t, "ACGT", ex.Pattern())

	m := ex.Match([]byte("TTACGTTT"))
	require.True(t, m.Valid())
	assert.Equal(t, "", m.Barcode)
	assert.Equal(t, 2, m.From)
	assert.Equal(t, 4, m.Length)
}

func TestNewUMIExtractorCapitalNIsNonCapturingWildcard(t *testing.T) {
	ex, err := NewUMIExtractor("ACNGT")
	require.NoError(t, err)
	assert.Equal(t, "AC.GT", ex.Pattern())

	m := ex.Match([]byte("ACXGT"))
	require.True(t, m.Valid())
	assert.Equal(t, "", m.Barcode)
}

func TestNewUMIExtractorLowercaseNCapturesOneGroupPerRun(t *testing.T) {
	// Scenario: a pattern with two separate n-runs produces two capture
	// groups, whose matched bases are concatenated into the barcode.
	ex, err := NewUMIExtractor("nnACGTnnn")
	require.NoError(t, err)
	assert.Equal(t, "(..)ACGT(...)", ex.Pattern())

	m := ex.Match([]byte("GGACGTTTT"))
	require.True(t, m.Valid())
	assert.Equal(t, "GGTTT", m.Barcode)
	assert.Equal(t, 0, m.From)
	assert.Equal(t, 9, m.Length)
}

func TestMatchNotFoundReturnsInvalid(t *testing.T) {
	ex, err := NewUMIExtractor("ACGT")
	require.NoError(t, err)

	m := ex.Match([]byte("TTTT"))
	assert.False(t, m.Valid())
}

func TestMatchIsCaseInsensitive(t *testing.T) {
	ex, err := NewUMIExtractor("ACGT")
	require.NoError(t, err)

	m := ex.Match([]byte("acgt"))
	assert.True(t, m.Valid())
}
