package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCounterTalliesAndPreservesFirstSeenOrder(t *testing.T) {
	c := NewCounter()
	c.Push("V1")
	c.Push("V2")
	c.Push("V1")
	c.Push("V3")
	c.Push("V1")

	entries := c.Entries()
	assert.Equal(t, []CounterEntry{
		{Key: "V1", Count: 3},
		{Key: "V2", Count: 1},
		{Key: "V3", Count: 1},
	}, entries)
	assert.Equal(t, 5, c.Total())
}

func TestCounterOnEmptyCounterHasZeroTotalAndNoEntries(t *testing.T) {
	c := NewCounter()
	assert.Zero(t, c.Total())
	assert.Empty(t, c.Entries())
}
