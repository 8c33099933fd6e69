package umiref

import (
	"bufio"
	"bytes"
	"strings"

	"github.com/grailbio/base/log"

	"github.com/broadinstitute/dsa/util"
)

var alphabetWithN = []byte{'A', 'C', 'G', 'T', 'N'}

type snapCorrectorEntry struct {
	knownUMI string
	edits    int
}

// SnapCorrector implements "snap" correction of extracted UMI barcodes. A
// barcode is snappable if there is exactly one known, non-random barcode
// closer to it than every other known barcode, by Levenshtein edit
// distance.
type SnapCorrector struct {
	knownUMIs       []string
	k               int
	correctionTable map[string]snapCorrectorEntry
}

// NewSnapCorrector builds a corrector from a list of known barcodes, each
// of which must be the same length and drawn from {A,C,G,T}.
func NewSnapCorrector(knownUMIs []string) *SnapCorrector {
	log.Debug.Printf("building snappable UMI correction table")

	k := -1
	known := make([]string, 0, len(knownUMIs))
	for _, umi := range knownUMIs {
		u := strings.ToUpper(strings.TrimSpace(umi))
		if u == "" {
			continue
		}
		if k < 0 {
			k = len(u)
		}
		if len(u) != k {
			log.Error.Printf("skipping known UMI %q: length %d does not match the rest of the list (%d)", u, len(u), k)
			continue
		}
		known = append(known, u)
	}

	correctionTable := map[string]snapCorrectorEntry{}
	if k < 0 {
		return &SnapCorrector{k: 0, correctionTable: correctionTable}
	}

	costTable := map[string][][]string{}
	for _, s := range allKmers(k, alphabetWithN) {
		costTable[s] = make([][]string, k+1)
	}
	for umi := range costTable {
		for _, knownUMI := range known {
			cost := util.Levenshtein(umi, knownUMI, "", "")
			costTable[umi][cost] = append(costTable[umi][cost], knownUMI)
		}
	}

	for umi, costList := range costTable {
		for cost, knownList := range costList {
			if len(knownList) == 1 {
				correctionTable[umi] = snapCorrectorEntry{knownList[0], cost}
			}
			if len(knownList) > 0 {
				break
			}
		}
	}

	log.Debug.Printf("done building snappable UMI correction table (%d known, %d snappable)", len(known), len(correctionTable))

	return &SnapCorrector{knownUMIs: known, k: k, correctionTable: correctionTable}
}

// NewSnapCorrectorFromLines builds a corrector from a newline-separated
// list of known UMIs, e.g. the contents of a UMI allowlist file.
func NewSnapCorrectorFromLines(data []byte) *SnapCorrector {
	var lines []string
	scanner := bufio.NewScanner(bytes.NewReader(data))
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	return NewSnapCorrector(lines)
}

// CorrectUMI returns the corrected barcode, its edit distance from umi,
// and ok == true when a unique closest known barcode exists and differs
// from umi. An exact match to a known barcode returns umi, 0 and false; a
// umi with no unique closest barcode (or of the wrong length) is returned
// unchanged with -1 and false.
func (c *SnapCorrector) CorrectUMI(umi string) (corrected string, edits int, ok bool) {
	umi = strings.ToUpper(umi)
	if len(umi) != c.k {
		return umi, -1, false
	}
	entry, found := c.correctionTable[umi]
	if !found {
		return umi, -1, false
	}
	return entry.knownUMI, entry.edits, entry.knownUMI != umi
}

func allKmers(k int, alphabet []byte) []string {
	if k <= 0 {
		return nil
	}
	kmers := []string{""}
	for i := 0; i < k; i++ {
		next := make([]string, 0, len(kmers)*len(alphabet))
		for _, prefix := range kmers {
			for _, c := range alphabet {
				next = append(next, prefix+string(c))
			}
		}
		kmers = next
	}
	return kmers
}
