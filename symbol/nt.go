// Package symbol implements the packed single-byte representations used
// throughout the pipeline for nucleotides (Nt), codons (Cdn), and amino
// acids (Aa), along with the bulk conversions between them.
package symbol

// Nt is a single nucleotide, stored as its upper-case ASCII byte.
type Nt byte

// The five recognized nucleotide symbols.
const (
	NtA Nt = 'A'
	NtC Nt = 'C'
	NtG Nt = 'G'
	NtT Nt = 'T'
	NtN Nt = 'N'
)

// ntComplementLUT is indexed by (v & 0b1111); unused entries are never
// consulted because NormalizeNt rejects every byte that doesn't produce one
// of the five valid low nibbles.
//
// ASCII low nibbles    >> 1
//
//	A: 0b0001 = 1         0
//	C: 0b0011 = 3         1
//	G: 0b0111 = 7         3
//	T: 0b0100 = 4         2
//	N: 0b1110 = 14        7
var ntComplementLUT = [16]byte{
	0, 'T', 0, 'G', 'A', 0, 0, 'C',
	0, 0, 0, 0, 0, 0, 'N', 0,
}

// ntIndexLUT maps (v & 0b1111) >> 1 to a dense index in [0,5).
var ntIndexLUT = [8]int{0, 1, 2, 3, 0, 0, 0, 4}

// Complement returns the Watson-Crick complement (A<->T, C<->G, N<->N).
func (n Nt) Complement() Nt { return Nt(ntComplementLUT[byte(n)&0b1111]) }

// Index returns a dense index in [0,5) suitable for indexing NTSUBS; N does
// not participate in substitution scoring and is indexed last.
func (n Nt) Index() int { return ntIndexLUT[(byte(n)&0b1111)>>1] }

// NormalizeNt returns the canonical upper-case byte for c if it is a valid
// nucleotide (any case of A, C, G, T, N), or 0 if c is not recognized.
func NormalizeNt(c byte) byte {
	switch c {
	case 'A', 'a':
		return 'A'
	case 'T', 't':
		return 'T'
	case 'G', 'g':
		return 'G'
	case 'C', 'c':
		return 'C'
	case 'N', 'n':
		return 'N'
	default:
		return 0
	}
}

// ValidNtChars lists every normalized nucleotide character.
const ValidNtChars = "ACGTN"

// ComplementDNA complements buf in place. Every byte must already be a
// normalized nucleotide; behavior on other input is undefined, matching the
// scalar fallback of the reference SIMD complement routine.
func ComplementDNA(buf []byte) {
	for i, c := range buf {
		buf[i] = ntComplementLUT[c&0b1111]
	}
}

// ReverseComplementDNA reverse-complements buf in place.
func ReverseComplementDNA(buf []byte) {
	for i, j := 0, len(buf)-1; i <= j; i, j = i+1, j-1 {
		l := ntComplementLUT[buf[i]&0b1111]
		r := ntComplementLUT[buf[j]&0b1111]
		buf[i] = r
		buf[j] = l
	}
}
