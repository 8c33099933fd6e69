// Package templatedb holds the ordered collection of reference templates
// (e.g. IMGT germline V/J segments) that assembled reads are aligned
// against, along with the best-match query used to assign a read to one.
package templatedb

import (
	"fmt"

	"github.com/broadinstitute/dsa/dsaerrors"
	"github.com/broadinstitute/dsa/polymer"
)

// NotFound is the sentinel template index returned when the database is
// empty; a non-empty database always yields its best-scoring entry. Valid
// entry indices returned
// by Query/QueryAndAlign are always >= 1: index i refers to the (i-1)'th
// added entry, mirroring the reference's 1-based external indexing (index
// 0 is reserved for NotFound).
const NotFound = 0

// Entry is one named reference template, held as both its nucleotide
// codons (if known) and its translated amino acids.
type Entry struct {
	Label string
	Cdns  polymer.Cdns
	Aas   polymer.Aas
}

// DB is an ordered collection of template Entries, queried by 1-based
// index (see NotFound).
type DB struct {
	targets    []Entry
	gapPenalty int32
}

// defaultGapPenalty is the reference's gap_penalty_ default.
const defaultGapPenalty = 4

// New returns an empty template database with the default gap penalty.
func New() *DB {
	return &DB{gapPenalty: defaultGapPenalty}
}

// Len returns the number of entries in the database.
func (db *DB) Len() int { return len(db.targets) }

// GapPenalty returns the gap penalty used for Query/QueryAndAlign.
func (db *DB) GapPenalty() int32 { return db.gapPenalty }

// SetGapPenalty overrides the gap penalty used for Query/QueryAndAlign.
func (db *DB) SetGapPenalty(p int32) { db.gapPenalty = p }

// CodonDataAvailable reports whether the database's first entry carries
// codon (not just amino acid) data -- codon-level alignment is used for
// the whole database based on this one entry, matching the reference's
// !targets_.empty() && !targets_.front().cdns.empty() check.
func (db *DB) CodonDataAvailable() bool {
	return len(db.targets) > 0 && !db.targets[0].Cdns.Empty()
}

// At returns the i'th entry using 1-based external indexing: i must be in
// [1, Len()]. i == 0 (NotFound) or an out-of-range i panics, mirroring the
// reference's assert(i != 0) contract.
func (db *DB) At(i int) *Entry {
	if i == NotFound || i < 1 || i > len(db.targets) {
		panic(fmt.Sprintf("templatedb: index %d out of range [1, %d]", i, len(db.targets)))
	}
	return &db.targets[i-1]
}

// AddEntry appends one named template to the database.
func (db *DB) AddEntry(label string, cdns polymer.Cdns, aas polymer.Aas) {
	db.targets = append(db.targets, Entry{Label: label, Cdns: cdns, Aas: aas})
}

// Trim removes `left` amino acids (and, where codon data is present, codons)
// from the front of every entry and `right` from the back. It returns
// ExcessiveTrim if left+right would remove an entire entry.
func (db *DB) Trim(left, right int) error {
	total := left + right
	for i := range db.targets {
		entry := &db.targets[i]
		if total >= entry.Aas.Len() {
			return dsaerrors.New(dsaerrors.ExcessiveTrim, fmt.Sprintf(
				"cannot trim %d amino acids from %q, a template of only %d amino acids",
				total, entry.Label, entry.Aas.Len()))
		}
		entry.Aas.Exo(left, right)
		if !entry.Cdns.Empty() {
			// Trims the same count of codons as amino acids, matching the
			// reference exactly (entry.cdns.exo(how_much.first, how_much.second)
			// in abs.cc) rather than the 3x one might expect for codon units.
			entry.Cdns.Exo(left, right)
		}
	}
	return nil
}
