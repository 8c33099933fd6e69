// Package align implements Needleman-Wunsch alignment with free end-gaps,
// self-alignment scoring, and the SIMD-shaped overlap finder used to
// assemble paired-end reads.
package align

import (
	"github.com/broadinstitute/dsa/polymer"
	"github.com/broadinstitute/dsa/symbol"
)

// Scorable is any Monomer that can be looked up in a substitution matrix.
type Scorable interface {
	polymer.Monomer
	Index() int
}

// Move records which of the three neighboring cells a Cell's score was
// derived from.
type Move int8

const (
	MoveMatch Move = iota // sequences were matched (or substituted)
	MoveGapQ              // a gap was introduced in the query
	MoveGapT              // a gap was introduced in the template
)

// Cell is one entry of a traceback matrix.
type Cell struct {
	Score int32
	Move  Move
}

// Matrix is a flat row-major 2D buffer, mirroring the reference
// implementation's Matrix<T>.
type Matrix[T any] struct {
	rows, cols int
	buf        []T
}

// NewMatrix allocates a rows x cols Matrix with zero-valued cells.
func NewMatrix[T any](rows, cols int) Matrix[T] {
	return Matrix[T]{rows: rows, cols: cols, buf: make([]T, rows*cols)}
}

func (m *Matrix[T]) Rows() int { return m.rows }
func (m *Matrix[T]) Cols() int { return m.cols }

// Elem returns a pointer to the cell at (row, col), suitable for both
// reading and in-place mutation.
func (m *Matrix[T]) Elem(row, col int) *T { return &m.buf[row*m.cols+col] }

// Alignment is the result of a Needleman-Wunsch run: the optimal score, the
// traceback matrix it was derived from, and (unless score-only) the
// rendered aligned query string.
type Alignment struct {
	Score        int32
	Traceback    Matrix[Cell]
	AlignedQuery string
}

// ScoreFunc looks up the substitution score for aligning template index m
// against query index n (both Scorable.Index() values).
type ScoreFunc func(templateIndex, queryIndex int) int32

// AaScore scores two amino acids (by dense index) under BLOSUM62.
func AaScore(m, n int) int32 { return symbol.BLOSUM62[m][n] }

// CdnScore scores two codons (by dense index) under the codon substitution
// matrix (BLOSUM62 of the translated amino acids, +1 on an exact codon
// match).
func CdnScore(m, n int) int32 { return symbol.CDNSUBS[m][n] }

// NtScore scores two nucleotides (by dense index): +1 match, -1 mismatch.
func NtScore(m, n int) int32 { return symbol.NTSUBS[m][n] }

func toUpperASCII(c byte) byte {
	if c >= 'a' && c <= 'z' {
		return c - ('a' - 'A')
	}
	return c
}

func toLowerASCII(c byte) byte {
	if c >= 'A' && c <= 'Z' {
		return c + ('a' - 'A')
	}
	return c
}

// gapChar, insChar, and regChar render a monomer for the aligned-query
// string. Codons render by raw byte in every case (a codon's case carries
// no meaning the way a nucleotide or amino acid's does); every other
// Monomer uses '-' for a gap, lower-case for an insertion, and upper-case
// for a regular match/substitution -- mirroring the reference's
// generic-with-Cdn-specialization gap_char/ins_char/reg_char templates.
func gapChar[M Scorable]() byte {
	var zero M
	if _, ok := any(zero).(symbol.Cdn); ok {
		return ' '
	}
	return '-'
}

func insChar[M Scorable](m M) byte {
	if c, ok := any(m).(symbol.Cdn); ok {
		return byte(c)
	}
	return toLowerASCII(byte(m))
}

func regChar[M Scorable](m M) byte {
	if c, ok := any(m).(symbol.Cdn); ok {
		return byte(c)
	}
	return toUpperASCII(byte(m))
}

// NW runs Needleman-Wunsch alignment of q against t with free end-gaps on
// both ends of the template axis, writing the result into out. When
// scoreOnly is true, out.AlignedQuery is left empty and only the score (and
// traceback matrix, which scoring depends on) is computed.
//
// The recurrence matches the reference exactly, including argument order
// (score(templateIndex, queryIndex)) and the placement of the gap penalty
// multiplicand on the *outgoing* cell so that a gap at either end of the
// template is free. Ties are broken MATCH > GAP_Q > GAP_T by checking each
// candidate with a strict ">" in that order.
func NW[M Scorable](q, t *polymer.Polymer[M], score ScoreFunc, gapp int32, out *Alignment, scoreOnly bool) {
	qSize, tSize := q.Len(), t.Len()
	trace := NewMatrix[Cell](qSize+1, tSize+1)

	for i := 1; i < trace.Rows(); i++ {
		trace.Elem(i, 0).Move = MoveGapT
	}
	for j := 1; j < trace.Cols(); j++ {
		trace.Elem(0, j).Move = MoveGapQ
	}

	for i := 0; i < qSize; i++ {
		n := q.At(i).Index()
		var gappA int32
		if i != qSize-1 {
			gappA = gapp
		}
		for j := 0; j < tSize; j++ {
			m := t.At(j).Index()
			var gappB int32
			if j != tSize-1 {
				gappB = gapp
			}

			cell := Cell{Move: MoveMatch, Score: trace.Elem(i, j).Score + score(m, n)}

			if gq := trace.Elem(i+1, j).Score - gappA; gq > cell.Score {
				cell.Score = gq
				cell.Move = MoveGapQ
			}
			if gt := trace.Elem(i, j+1).Score - gappB; gt > cell.Score {
				cell.Score = gt
				cell.Move = MoveGapT
			}

			*trace.Elem(i+1, j+1) = cell
		}
	}

	out.Score = trace.Elem(qSize, tSize).Score
	out.Traceback = trace
	out.AlignedQuery = ""
	if !scoreOnly {
		out.AlignedQuery = BuildString[M](q, &trace)
	}
}

// BuildString walks a traceback matrix backward from (q.Len(), t.Len()) to
// (0, 0), emitting one character per step, then reverses the result. It is
// exported so a traceback computed against one axis (e.g. codons) can also
// render a position-aligned Monomer sequence of a different type (e.g. the
// corresponding amino acids) -- the moves recorded in the matrix only
// depend on alignment position, not on which sequence scored them.
func BuildString[M Scorable](q *polymer.Polymer[M], trace *Matrix[Cell]) string {
	tSize := trace.Cols() - 1
	out := make([]byte, 0, q.Len()+tSize)

	i, j := q.Len(), tSize
	for i+j != 0 {
		switch trace.Elem(i, j).Move {
		case MoveGapQ:
			out = append(out, gapChar[M]())
			j--
		case MoveGapT:
			out = append(out, insChar(q.At(i-1)))
			i--
		default:
			out = append(out, regChar(q.At(i-1)))
			i--
			j--
		}
	}
	for l, r := 0, len(out)-1; l < r; l, r = l+1, r-1 {
		out[l], out[r] = out[r], out[l]
	}
	return string(out)
}

// SelfAlignScore computes the Needleman-Wunsch score of aligning query
// against an identical copy of itself -- its maximum possible score under
// score, used to normalize alignment scores into a fraction of perfect.
func SelfAlignScore[M Scorable](query *polymer.Polymer[M], score ScoreFunc) int32 {
	var total int32
	for i := 0; i < query.Len(); i++ {
		idx := query.At(i).Index()
		total += score(idx, idx)
	}
	return total
}
