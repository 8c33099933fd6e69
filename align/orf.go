package align

import (
	"github.com/broadinstitute/dsa/polymer"
	"github.com/broadinstitute/dsa/symbol"
)

// Orf is the translated open reading frame produced from one assembled or
// UMI-consensus Read.
type Orf struct {
	UmiGroupSize int
	TemplateID   int // 1-based; 0 means no matching template was found
	Barcode      string
	Cdns         polymer.Cdns
	Aas          polymer.Aas
}

// NewOrf packs rd's nucleotide sequence into codons and translates it,
// consuming rd.
func NewOrf(rd Read) Orf {
	cdns := polymer.ToCdns(&rd.Dna)
	return Orf{
		UmiGroupSize: rd.UmiGroupSize,
		Barcode:      rd.Barcode,
		Cdns:         cdns,
		Aas:          polymer.ToAas(&cdns, symbol.StandardTranslationTable),
	}
}

// ContainsPTC reports whether the ORF translation contains a premature
// termination codon.
func (o *Orf) ContainsPTC() bool { return polymer.ContainsStop(&o.Aas) }
