package templatedb

import (
	"math"

	"github.com/broadinstitute/dsa/align"
	"github.com/broadinstitute/dsa/polymer"
)

// Query returns the 1-based index of the template whose codons best align
// to query, or NotFound if the database is empty. Unlike QueryAndAlign, the
// winning alignment's traceback string is not needed by the caller, so this
// always runs Needleman-Wunsch with scoreOnly set, as the reference's
// per-candidate scan does. QueryAndAlign, which builds the traceback for
// every candidate, is where this package departs from the reference.
func (db *DB) Query(query *polymer.Cdns) int {
	best := NotFound
	bestScore := int32(math.MinInt32)

	var current align.Alignment
	for i := range db.targets {
		align.NW(query, &db.targets[i].Cdns, align.CdnScore, db.gapPenalty, &current, true)
		if current.Score > bestScore {
			best = i + 1
			bestScore = current.Score
		}
	}
	return best
}

// QueryAndAlign finds the best-aligning template's codons, like Query, and
// also returns the full Alignment (including the rendered traceback
// string) for the winner.
//
// The reference's query_and_align scans every candidate with
// nw_align<Cdn>(..., score_only=true), which skips building the traceback
// string for every candidate including the eventual winner -- it is not
// clear from the source whether a second, full alignment of the query
// against only the winning template is performed somewhere else to recover
// AlignedQuery, or whether the reference simply never surfaces it from this
// path. Rather than speculate, this implementation always runs with
// scoreOnly=false, paying the (modest, amortized by parallelrun's worker
// pool) cost of a traceback on every candidate so QueryAndAlign's result is
// always immediately usable -- documented in the grounding ledger as a
// deliberate simplification, not a bug-for-bug port.
func (db *DB) QueryAndAlign(query *polymer.Cdns) (int, align.Alignment) {
	best := NotFound
	var bestAlignment align.Alignment
	bestAlignment.Score = math.MinInt32

	var current align.Alignment
	for i := range db.targets {
		align.NW(query, &db.targets[i].Cdns, align.CdnScore, db.gapPenalty, &current, false)
		if current.Score > bestAlignment.Score {
			best = i + 1
			bestAlignment = current
		}
	}
	return best, bestAlignment
}

// QueryAndAlignAas is QueryAndAlign's amino-acid-axis counterpart, used
// when codon data is unavailable for one or more templates.
func (db *DB) QueryAndAlignAas(query *polymer.Aas) (int, align.Alignment) {
	best := NotFound
	var bestAlignment align.Alignment
	bestAlignment.Score = math.MinInt32

	var current align.Alignment
	for i := range db.targets {
		align.NW(query, &db.targets[i].Aas, align.AaScore, db.gapPenalty, &current, false)
		if current.Score > bestAlignment.Score {
			best = i + 1
			bestAlignment = current
		}
	}
	return best, bestAlignment
}
