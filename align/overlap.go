package align

import "github.com/broadinstitute/dsa/polymer"

// Overlap describes how two DNA byte sequences a (forward read) and b
// (reverse-complemented reverse read) overlap at their 3' ends.
type Overlap struct {
	Length     int  // length of the overlapping region
	Mismatches int  // number of mismatches within the overlapping region
	InOrder    bool // true if a and b overlap 3' to 3' (the expected orientation), false if 5' to 5'
}

// FindOverlap scans every alignment of b's rows against a's columns,
// counting matches with a saturating running-sum dynamic-programming table
// swapped row-to-row, then reports the suffix-of-a/prefix-of-b overlap with
// the most matches among those whose mismatches are within maxMismatches.
// This is the portable, scalar realization of the reference's AVX2
// find_overlapv_256: same two-phase max scan (row-ends scanned during the
// main loop, then a final column scan across the last completed row), same
// tie-break (the first candidate scanned, i.e. the shorter overlap, wins --
// "new_max" only fires on strict improvement), and the second phase is the
// only one that can flip InOrder to false.
func FindOverlap(a, b []byte, maxMismatches int) Overlap {
	aSize, bSize := len(a), len(b)
	upper := make([]uint16, aSize+1)
	lower := make([]uint16, aSize+1)

	inOrder := true
	matchCount, bestIndex := 0, 0

	for r := 0; r < bSize; r++ {
		upper, lower = lower, upper
		for c := 0; c < aSize; c++ {
			m := uint16(0)
			if a[c] == b[r] {
				m = 1
			}
			upper[c+1] = saturatingAdd(lower[c], m)
		}
		rowMatches := int(upper[aSize])
		if matchCount < rowMatches && r+1 <= rowMatches+maxMismatches {
			matchCount = rowMatches
			bestIndex = r
		}
	}

	for c := 0; c < aSize; c++ {
		colMatches := int(upper[c+1])
		if matchCount < colMatches && c+1 <= colMatches+maxMismatches {
			matchCount = colMatches
			bestIndex = c
			inOrder = false
		}
	}

	return Overlap{Length: bestIndex + 1, Mismatches: bestIndex + 1 - matchCount, InOrder: inOrder}
}

func saturatingAdd(a, b uint16) uint16 {
	sum := uint32(a) + uint32(b)
	if sum > 0xFFFF {
		return 0xFFFF
	}
	return uint16(sum)
}

// Read is one sequencing read: a barcode extracted from its UMI, the
// number of original reads collapsed into it (1 until UMI consensus),
// its nucleotide sequence, and matching per-base quality scores.
type Read struct {
	Barcode      string
	UmiGroupSize int
	Dna          polymer.Nts
	Qual         []byte
}

// Empty reports whether r holds no sequence -- the sentinel returned by
// AssembleReadPair when assembly fails.
func (r *Read) Empty() bool { return r.Dna.Len() == 0 }

// Size returns the length of the read's sequence.
func (r *Read) Size() int { return r.Dna.Len() }

// ReverseComplement reverse-complements a read's sequence and quality
// scores in place, truncating to a whole number of codons first (the
// reference's resize(size()/3*3) -- reverse-complement is only ever called
// in a codon-frame-sensitive context).
func (r *Read) ReverseComplement() {
	frameSize := r.Dna.Len() / 3 * 3
	r.Dna.Resize(frameSize, 0)
	if len(r.Qual) > frameSize {
		r.Qual = r.Qual[:frameSize]
	}
	polymer.ReverseComplement(&r.Dna)
	reverseBytes(r.Qual)
}

func reverseBytes(b []byte) {
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
}

// ReadPair holds an unassembled forward/reverse read pair.
type ReadPair struct {
	Fw Read
	Rv Read
}

// AssembleReadPair merges fw and rv into a single consensus Read by
// reverse-complementing rv, locating their 3' overlap, and taking the
// higher-quality base at every position of disagreement in the overlap.
// The returned Read's Empty() is true if the pair could not be assembled
// (overlap too short or too mismatched).
//
// fw and rv are consumed: callers should not use them after this call.
func AssembleReadPair(fw, rv Read, minOverlap, maxMismatches int) Read {
	polymer.ReverseComplement(&rv.Dna)

	ol := FindOverlap(fw.Dna.Bytes(), rv.Dna.Bytes(), maxMismatches)
	if ol.Length < minOverlap || ol.Mismatches > maxMismatches {
		return Read{}
	}

	reverseBytes(rv.Qual)

	if !ol.InOrder {
		fw.Dna, rv.Dna = rv.Dna, fw.Dna
		fw.Qual, rv.Qual = rv.Qual, fw.Qual
	}

	start := fw.Dna.Len() - ol.Length
	for i, j := start, 0; j < ol.Length; i, j = i+1, j+1 {
		if fw.Qual[i] < rv.Qual[j] {
			fw.Qual[i] = rv.Qual[j]
			fw.Dna.Set(i, rv.Dna.At(j))
		}
	}

	rv.Dna.Exo(ol.Length, 0)
	fw.Dna.Concat(&rv.Dna)
	fw.Qual = append(fw.Qual, rv.Qual[ol.Length:]...)

	return Read{
		Barcode:      fw.Barcode + rv.Barcode,
		UmiGroupSize: fw.UmiGroupSize,
		Dna:          fw.Dna,
		Qual:         fw.Qual,
	}
}
