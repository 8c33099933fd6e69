package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/broadinstitute/dsa/align"
	"github.com/broadinstitute/dsa/config"
)

func barcodeRead(barcode, dna, qual string) align.Read {
	rd := mkRead(dna, qual)
	rd.Barcode = barcode
	return rd
}

func TestUmiCollapseBuildsConsensusFromModalLength(t *testing.T) {
	reads := []align.Read{
		barcodeRead("BC1", "ACGT", "IIII"),
		barcodeRead("BC1", "ACGT", "IIII"),
		barcodeRead("BC1", "ACGA", "IIHI"), // same length, outvoted at last position
		barcodeRead("BC1", "ACG", "III"),   // off-modal length, ignored
	}

	params := &config.Params{MinUMIGroupSize: 1}
	log := &ParseLog{}

	out := UmiCollapse(reads, params, log, false)

	require.Len(t, out, 1)
	assert.Equal(t, "ACGT", out[0].Dna.String())
	assert.Equal(t, 3, out[0].UmiGroupSize) // 3 reads at the modal length
	assert.Equal(t, 3, log.FilterDuplicateUmi) // credited raw_members-1 regardless of modal composition
}

func TestUmiCollapseDropsGroupsBelowMinimumSize(t *testing.T) {
	reads := []align.Read{barcodeRead("BC1", "ACGT", "IIII")}

	params := &config.Params{MinUMIGroupSize: 2}
	log := &ParseLog{}

	out := UmiCollapse(reads, params, log, false)

	assert.Empty(t, out)
	assert.Equal(t, 1, log.FilterUmiGroupSizeTooSmall)
}

func TestUmiCollapseRaggedEndsUsesNthLongestAsWidth(t *testing.T) {
	reads := []align.Read{
		barcodeRead("BC1", "ACGTAA", "IIIIII"),
		barcodeRead("BC1", "ACGTA", "IIIII"),
		barcodeRead("BC1", "ACGT", "IIII"),
	}

	params := &config.Params{MinUMIGroupSize: 3}
	log := &ParseLog{}

	out := UmiCollapse(reads, params, log, true)

	require.Len(t, out, 1)
	assert.Equal(t, 4, out[0].Dna.Len())
	assert.Equal(t, "ACGT", out[0].Dna.String())
	assert.Equal(t, 3, out[0].UmiGroupSize)
}

func TestUmiCollapseDropsConsensusContainingN(t *testing.T) {
	reads := []align.Read{
		barcodeRead("BC1", "ACNT", "IIII"),
	}

	params := &config.Params{MinUMIGroupSize: 1}
	log := &ParseLog{}

	out := UmiCollapse(reads, params, log, false)

	assert.Empty(t, out)
	assert.Equal(t, 1, log.FilterInvalidChars)
}

func TestUmiCollapseSinglesPassThroughUnchanged(t *testing.T) {
	reads := []align.Read{barcodeRead("BC1", "ACGT", "IIII")}

	params := &config.Params{MinUMIGroupSize: 1}
	log := &ParseLog{}

	out := UmiCollapse(reads, params, log, false)

	require.Len(t, out, 1)
	assert.Equal(t, "ACGT", out[0].Dna.String())
}
