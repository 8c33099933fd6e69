package umiref

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSnapCorrectorCorrectsSingleEditAway(t *testing.T) {
	c := NewSnapCorrector([]string{"AAAA", "CCCC", "GGGG"})

	corrected, edits, ok := c.CorrectUMI("AAAT")
	assert.True(t, ok)
	assert.Equal(t, "AAAA", corrected)
	assert.Equal(t, 1, edits)
}

func TestSnapCorrectorLeavesExactMatchUncorrected(t *testing.T) {
	c := NewSnapCorrector([]string{"AAAA", "CCCC"})

	corrected, _, ok := c.CorrectUMI("AAAA")
	assert.False(t, ok, "an exact match is not itself a correction")
	assert.Equal(t, "AAAA", corrected)
}

func TestSnapCorrectorRejectsAmbiguousUMI(t *testing.T) {
	// "AACC" is equidistant (2 edits) from both AAAA and CCCC, so it is not
	// uniquely snappable to either.
	c := NewSnapCorrector([]string{"AAAA", "CCCC"})

	_, _, ok := c.CorrectUMI("AACC")
	assert.False(t, ok)
}

func TestSnapCorrectorRejectsWrongLength(t *testing.T) {
	c := NewSnapCorrector([]string{"AAAA"})

	_, edits, ok := c.CorrectUMI("AAAAA")
	assert.False(t, ok)
	assert.Equal(t, -1, edits)
}
