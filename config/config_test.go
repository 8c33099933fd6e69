package config

import (
	"flag"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveAppliesDefaultsAndParsesLists(t *testing.T) {
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	raw := RegisterFlags(fs)
	require.NoError(t, fs.Parse([]string{
		"-fw=fw.fastq", "-rv=rv.fastq",
		"-fw-ref=ACGTnnnnACGT", "-rv-ref=ACGTnnnnACGT",
		"-trim=1:2,0:3",
	}))

	p, err := raw.Resolve()
	require.NoError(t, err)
	assert.Equal(t, "fw.fastq", p.FwFilename)
	assert.Equal(t, []string{"ACGTnnnnACGT"}, p.FwRefs)
	assert.Equal(t, []Trim{{1, 2}, {0, 3}}, p.Trims)
	assert.Equal(t, float32(0.8), p.MinAlignmentScore)
	assert.Equal(t, byte('A'), p.TpQualMin)
}

func TestValidateRejectsMissingInputFiles(t *testing.T) {
	p := Defaults()
	err := Validate(&p)
	require.Error(t, err)
}

func TestValidateRejectsOutOfRangeMinAlignmentScore(t *testing.T) {
	p := Defaults()
	p.FwFilename, p.RvFilename = "a", "b"
	p.FwRefs, p.RvRefs = []string{"x"}, []string{"y"}
	p.MinAlignmentScore = 1.5

	err := Validate(&p)
	require.Error(t, err)
}

func TestCodonOutputFromStringIsCaseInsensitive(t *testing.T) {
	co, ok := CodonOutputFromString("ASCII")
	require.True(t, ok)
	assert.Equal(t, CodonOutputAscii, co)

	_, ok = CodonOutputFromString("bogus")
	assert.False(t, ok)
}
