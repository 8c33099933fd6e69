package polymer

import "github.com/broadinstitute/dsa/symbol"

// Nts, Cdns, and Aas are the three concrete sequence types the pipeline
// passes around. Each is a plain alias for a fully-instantiated Polymer;
// this works without a wrapper struct because the type parameter is
// resolved on both sides of the alias (Go's restriction is on *generic*
// alias declarations, i.e. aliases that themselves still carry a free type
// parameter -- not on aliasing an already-concrete instantiation).
type (
	Nts  = Polymer[symbol.Nt]
	Cdns = Polymer[symbol.Cdn]
	Aas  = Polymer[symbol.Aa]
)

// NewNts builds an Nts from raw sequence text, discarding any byte that
// isn't a recognized nucleotide letter.
func NewNts(s string) Nts { return FromNormalized[symbol.Nt](s, symbol.NormalizeNt) }

// NewCdns builds a Cdns directly from packed codon bytes (e.g. loaded from
// a template database file), discarding any byte that isn't a valid codon.
func NewCdns(s string) Cdns { return FromNormalized[symbol.Cdn](s, symbol.NormalizeCdn) }

// NewAas builds an Aas from amino-acid letters, discarding any byte that
// isn't a recognized amino acid or stop.
func NewAas(s string) Aas { return FromNormalized[symbol.Aa](s, symbol.NormalizeAa) }

// ToCdns packs nts (whose length must be a multiple of 3) into a new Cdns.
// Trailing bases that don't complete a codon are dropped.
func ToCdns(nts *Nts) Cdns {
	n := nts.Len() / 3
	out := New[symbol.Cdn](n)
	out.n = n
	symbol.PackCodons(out.buf[:n], nts.Bytes()[:n*3])
	return out
}

// ToNts unpacks every codon in cdns into three nucleotides, in order.
func ToNts(cdns *Cdns) Nts {
	n := cdns.Len() * 3
	out := New[symbol.Nt](n)
	out.n = n
	symbol.UnpackCodons(out.buf[:n], cdns.Bytes())
	return out
}

// ToAas translates every codon in cdns under table, producing one amino
// acid per codon (SetFromCdns in the reference implementation).
func ToAas(cdns *Cdns, table symbol.TranslationTable) Aas {
	n := cdns.Len()
	out := New[symbol.Aa](n)
	out.n = n
	symbol.TranslateCodons(out.buf[:n], cdns.Bytes(), table)
	return out
}

// ReverseComplement reverse-complements nts in place.
func ReverseComplement(nts *Nts) { symbol.ReverseComplementDNA(nts.Bytes()) }

// Complement complements nts in place, without reversing.
func Complement(nts *Nts) { symbol.ComplementDNA(nts.Bytes()) }

// ContainsStop reports whether aas contains a stop codon anywhere,
// including at the final position: translated open reading frames are
// expected to run full-length with no stop at all, so any occurrence --
// terminal or not -- marks the read for the premature-stop-codon filter.
func ContainsStop(aas *Aas) bool {
	for i := 0; i < aas.Len(); i++ {
		if aas.At(i) == symbol.AaStop {
			return true
		}
	}
	return false
}
