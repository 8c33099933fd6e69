package symbol

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCdnRoundTrip(t *testing.T) {
	c := NewCdn(NtA, NtT, NtG)
	assert.Equal(t, NtA, c.P1())
	assert.Equal(t, NtT, c.P2())
	assert.Equal(t, NtG, c.P3())
	assert.Equal(t, byte(';'), byte(c))
}

func TestStandardTranslationTableExhaustive(t *testing.T) {
	// Pack all 64 codons in canonical order (AAA, AAC, AAT, AAG, ACA, ...)
	// and confirm translation matches the reference genetic code string
	// exactly, per scenario S1.
	bases := []Nt{NtA, NtC, NtT, NtG}
	nts := make([]byte, 0, 192)
	for _, a := range bases {
		for _, b := range bases {
			for _, c := range bases {
				nts = append(nts, byte(a), byte(b), byte(c))
			}
		}
	}
	cdns := make([]byte, 64)
	PackCodons(cdns, nts)

	aas := make([]byte, 64)
	TranslateCodons(aas, cdns, StandardTranslationTable)

	want := "KNNKTTTTIIIMRSSRQHHQPPPPLLLLRRRR*YY*SSSSLFFL*CCWEDDEAAAAVVVVGGGG"
	require.Equal(t, want, string(aas))
}

func TestReverseComplementInvolution(t *testing.T) {
	nts := []byte("TNCAANNCTCNNCGAGGNCAGNTCNACTAGGTGCTNACCGGTGNCAAAACTNTCNTGTNNGCCNAGAAGNCCTATNGCGAANGTGATCGCTGNNTTTAAT")
	want := "ATTAAANNCAGCGATCACNTTCGCNATAGGNCTTCTNGGCNNACANGANAGTTTTGNCACCGGTNAGCACCTAGTNGANCTGNCCTCGNNGAGNNTTGNA"

	buf := append([]byte(nil), nts...)
	ReverseComplementDNA(buf)
	assert.Equal(t, want, string(buf))

	ReverseComplementDNA(buf)
	assert.Equal(t, string(nts), string(buf))
}

func TestComplementInvolution(t *testing.T) {
	nts := []byte("ACGTNACGTN")
	buf := append([]byte(nil), nts...)
	ComplementDNA(buf)
	ComplementDNA(buf)
	assert.Equal(t, string(nts), string(buf))
}

func TestAaIndexStopIsZero(t *testing.T) {
	assert.Equal(t, 0, AaStop.Index())
	assert.Equal(t, 1, Aa('A').Index())
}

func TestCdnSubsDiagonalIsBlosumPlusOne(t *testing.T) {
	// CDNSUBS[i][i] == BLOSUM62[aa][aa] + 1 for every codon i, per the
	// reference derivation BLOSUM62[translate(i)][translate(j)] + (i==j).
	for i := 0; i < 64; i++ {
		aa := StandardTranslationTable.Translate(Cdn(i + CdnBias))
		want := BLOSUM62[aa.Index()][aa.Index()] + 1
		assert.Equal(t, want, CDNSUBS[i][i], "codon index %d", i)
	}
}
