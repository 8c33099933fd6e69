package symbol

// Aa is a single amino acid, one of the 20 IUPAC letters plus '*' (stop),
// stored as its upper-case ASCII byte.
type Aa byte

// AaStop is the premature/terminal stop codon marker.
const AaStop Aa = '*'

// ValidAaChars lists every valid amino acid code; index 0 is STOP, matching
// the reference indexing scheme exactly (not alphabetical, not STOP-last).
const ValidAaChars = "*ACDEFGHIKLMNPQRSTVWY"

// aaIndices maps (c - '*') to a dense index in [0,21) for every byte in the
// ASCII range spanned by ValidAaChars; entries for invalid bytes are 0
// (aliasing STOP), matching the reference's unchecked indices[] table.
var aaIndices = [48]int{
	0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 1,
	0, 2, 3, 4, 5, 6, 7, 8,
	0, 9, 10, 11, 12, 0, 13, 14,
	15, 16, 17, 0, 18, 19, 0, 20,
}

// Index returns a dense index in [0,21) suitable for indexing BLOSUM62.
func (a Aa) Index() int { return aaIndices[byte(a)-'*'] }

// NormalizeAa upper-cases c and returns it if it names a valid amino acid
// or stop, or 0 otherwise.
func NormalizeAa(c byte) byte {
	if c >= 'a' && c <= 'z' {
		c -= 'a' - 'A'
	}
	for i := 0; i < len(ValidAaChars); i++ {
		if ValidAaChars[i] == c {
			return c
		}
	}
	return 0
}

// TranslationTable maps each of the 64 codons (by Cdn.Index) to an amino
// acid.
type TranslationTable [64]Aa

// NewTranslationTable builds a TranslationTable from a 64-character (or
// shorter) string of amino-acid codes, one per codon index.
func NewTranslationTable(aas string) TranslationTable {
	var t TranslationTable
	n := len(aas)
	if n > 64 {
		n = 64
	}
	for i := 0; i < n; i++ {
		t[i] = Aa(aas[i])
	}
	return t
}

// Translate returns the amino acid encoded by codon c under table t.
func (t TranslationTable) Translate(c Cdn) Aa { return t[c.Index()] }

// StandardTranslationTable is the canonical genetic code, indexed by
// Cdn.Index(): codon index i translates to StandardTranslationTable[i].
var StandardTranslationTable = NewTranslationTable(
	"KNNKTTTTIIIMRSSRQHHQPPPPLLLLRRRR*YY*SSSSLFFL*CCWEDDEAAAAVVVVGGGG",
)

// translationNibbleTables holds four 16-entry amino-acid lookup tables, one
// per high nibble (0x3, 0x4, 0x5, 0x6) that a codon byte can take. Bulk
// translation blends between them by comparing each codon's high nibble,
// mirroring the four-shuffle-table structure the reference SIMD translator
// uses (see TranslateCodons).
type translationNibbleTables [4][16]Aa

func buildNibbleTables(table TranslationTable) translationNibbleTables {
	var nt translationNibbleTables
	for i := 0; i < 64; i++ {
		hi := (i + CdnBias) >> 4 & 0xF // 0x3, 0x4, 0x5, or 0x6
		lo := (i + CdnBias) & 0xF
		nt[hi-3][lo] = table[i]
	}
	return nt
}

// TranslateCodons translates n packed codon bytes in src to amino acids in
// dst, using table. dst and src must both have length n. The bulk
// implementation blends between four 16-entry tables keyed on each codon
// byte's high nibble (0x3/0x4/0x5/0x6), matching the reference SIMD
// translator byte-for-byte; this is the portable (non-assembly) realization
// of that shape, the same relationship biosimd's own *_generic.go fallbacks
// bear to their amd64 counterparts.
func TranslateCodons(dst, src []byte, table TranslationTable) {
	nt := buildNibbleTables(table)
	for i, c := range src {
		hi := c >> 4
		lo := c & 0xF
		var aa Aa
		switch hi {
		case 0x3:
			aa = nt[0][lo]
		case 0x4:
			aa = nt[1][lo]
		case 0x5:
			aa = nt[2][lo]
		case 0x6:
			aa = nt[3][lo]
		default:
			aa = AaStop
		}
		dst[i] = byte(aa)
	}
}
