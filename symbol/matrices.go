package symbol

// BLOSUM62, CDNSUBS, and NTSUBS are the fixed substitution matrices used by
// the Needleman-Wunsch aligner. They are specified by reference (embedded as
// constant data, not derived) per the numeric tables used throughout this
// pipeline's alignment stage. BLOSUM62 and CDNSUBS are indexed by Aa.Index()
// and Cdn.Index() respectively; row/column 0 of BLOSUM62 is STOP, matching
// ValidAaChars's layout.

// BLOSUM62 is the standard amino-acid substitution matrix, 21x21, indexed by Aa.Index() (row/col 0 = STOP).
var BLOSUM62 = [21][21]int32{
	{0, -4, -4, -4, -4, -4, -4, -4, -4, -4, -4, -4, -4, -4, -4, -4, -4, -4, -4, -4, -4},
	{-4, 4, 0, -2, -1, -2, 0, -2, -1, -1, -1, -1, -2, -1, -1, -1, 1, 0, 0, -3, -2},
	{-4, 0, 9, -3, -4, -2, -3, -3, -1, -3, -1, -1, -3, -3, -3, -3, -1, -1, -1, -2, -2},
	{-4, -2, -3, 6, 2, -3, -1, -1, -3, -1, -4, -3, 1, -1, 0, -2, 0, -1, -3, -4, -3},
	{-4, -1, -4, 2, 5, -3, -2, 0, -3, 1, -3, -2, 0, -1, 2, 0, 0, -1, -2, -3, -2},
	{-4, -2, -2, -3, -3, 6, -3, -1, 0, -3, 0, 0, -3, -4, -3, -3, -2, -2, -1, 1, 3},
	{-4, 0, -3, -1, -2, -3, 6, -2, -4, -2, -4, -3, 0, -2, -2, -2, 0, -2, -3, -2, -3},
	{-4, -2, -3, -1, 0, -1, -2, 8, -3, -1, -3, -2, 1, -2, 0, 0, -1, -2, -3, -2, 2},
	{-4, -1, -1, -3, -3, 0, -4, -3, 4, -3, 2, 1, -3, -3, -3, -3, -2, -1, 3, -3, -1},
	{-4, -1, -3, -1, 1, -3, -2, -1, -3, 5, -2, -1, 0, -1, 1, 2, 0, -1, -2, -3, -2},
	{-4, -1, -1, -4, -3, 0, -4, -3, 2, -2, 4, 2, -3, -3, -2, -2, -2, -1, 1, -2, -1},
	{-4, -1, -1, -3, -2, 0, -3, -2, 1, -1, 2, 5, -2, -2, 0, -1, -1, -1, 1, -1, -1},
	{-4, -2, -3, 1, 0, -3, 0, 1, -3, 0, -3, -2, 6, -2, 0, 0, 1, 0, -3, -4, -2},
	{-4, -1, -3, -1, -1, -4, -2, -2, -3, -1, -3, -2, -2, 7, -1, -2, -1, -1, -2, -4, -3},
	{-4, -1, -3, 0, 2, -3, -2, 0, -3, 1, -2, 0, 0, -1, 5, 1, 0, -1, -2, -2, -1},
	{-4, -1, -3, -2, 0, -3, -2, 0, -3, 2, -2, -1, 0, -2, 1, 5, -1, -1, -3, -3, -2},
	{-4, 1, -1, 0, 0, -2, 0, -1, -2, 0, -2, -1, 1, -1, 0, -1, 4, 1, -2, -3, -2},
	{-4, 0, -1, -1, -1, -2, -2, -2, -1, -1, -1, -1, 0, -1, -1, -1, 1, 5, 0, -2, -2},
	{-4, 0, -1, -3, -2, -1, -3, -3, 3, -2, 1, 1, -3, -2, -2, -3, -2, 0, 4, -3, -1},
	{-4, -3, -2, -4, -3, 1, -2, -2, -3, -3, -2, -1, -4, -4, -2, -3, -3, -2, -3, 11, 2},
	{-4, -2, -2, -3, -2, 3, -3, 2, -1, -2, -1, -1, -2, -3, -1, -2, -2, -2, -1, 2, 7},
}

// NTSUBS scores nucleotide matches +1 and mismatches -1, indexed by Nt.Index().
var NTSUBS = [4][4]int32{
	{1, -1, -1, -1},
	{-1, 1, -1, -1},
	{-1, -1, 1, -1},
	{-1, -1, -1, 1},
}

// CDNSUBS is BLOSUM62[translate(i)][translate(j)] + (i==j), 64x64, indexed by Cdn.Index().
var CDNSUBS = [64][64]int32{
	{6, 0, 0, 5, -1, -1, -1, -1, -3, -3, -3, -1, 2, 0, 0, 2, 1, -1, -1, 1, -1, -1, -1, -1, -2, -2, -2, -2, 2, 2, 2, 2, -4, -2, -2, -4, 0, 0, 0, 0, -2, -3, -3, -2, -4, -3, -3, -3, 1, -1, -1, 1, -1, -1, -1, -1, -2, -2, -2, -2, -2, -2, -2, -2},
	{0, 7, 6, 0, 0, 0, 0, 0, -3, -3, -3, -2, 0, 1, 1, 0, 0, 1, 1, 0, -2, -2, -2, -2, -3, -3, -3, -3, 0, 0, 0, 0, -4, -2, -2, -4, 1, 1, 1, 1, -3, -3, -3, -3, -4, -3, -3, -4, 0, 1, 1, 0, -2, -2, -2, -2, -3, -3, -3, -3, 0, 0, 0, 0},
	{0, 6, 7, 0, 0, 0, 0, 0, -3, -3, -3, -2, 0, 1, 1, 0, 0, 1, 1, 0, -2, -2, -2, -2, -3, -3, -3, -3, 0, 0, 0, 0, -4, -2, -2, -4, 1, 1, 1, 1, -3, -3, -3, -3, -4, -3, -3, -4, 0, 1, 1, 0, -2, -2, -2, -2, -3, -3, -3, -3, 0, 0, 0, 0},
	{5, 0, 0, 6, -1, -1, -1, -1, -3, -3, -3, -1, 2, 0, 0, 2, 1, -1, -1, 1, -1, -1, -1, -1, -2, -2, -2, -2, 2, 2, 2, 2, -4, -2, -2, -4, 0, 0, 0, 0, -2, -3, -3, -2, -4, -3, -3, -3, 1, -1, -1, 1, -1, -1, -1, -1, -2, -2, -2, -2, -2, -2, -2, -2},
	{-1, 0, 0, -1, 6, 5, 5, 5, -1, -1, -1, -1, -1, 1, 1, -1, -1, -2, -2, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -4, -2, -2, -4, 1, 1, 1, 1, -1, -2, -2, -1, -4, -1, -1, -2, -1, -1, -1, -1, 0, 0, 0, 0, 0, 0, 0, 0, -2, -2, -2, -2},
	{-1, 0, 0, -1, 5, 6, 5, 5, -1, -1, -1, -1, -1, 1, 1, -1, -1, -2, -2, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -4, -2, -2, -4, 1, 1, 1, 1, -1, -2, -2, -1, -4, -1, -1, -2, -1, -1, -1, -1, 0, 0, 0, 0, 0, 0, 0, 0, -2, -2, -2, -2},
	{-1, 0, 0, -1, 5, 5, 6, 5, -1, -1, -1, -1, -1, 1, 1, -1, -1, -2, -2, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -4, -2, -2, -4, 1, 1, 1, 1, -1, -2, -2, -1, -4, -1, -1, -2, -1, -1, -1, -1, 0, 0, 0, 0, 0, 0, 0, 0, -2, -2, -2, -2},
	{-1, 0, 0, -1, 5, 5, 5, 6, -1, -1, -1, -1, -1, 1, 1, -1, -1, -2, -2, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -4, -2, -2, -4, 1, 1, 1, 1, -1, -2, -2, -1, -4, -1, -1, -2, -1, -1, -1, -1, 0, 0, 0, 0, 0, 0, 0, 0, -2, -2, -2, -2},
	{-3, -3, -3, -3, -1, -1, -1, -1, 5, 4, 4, 1, -3, -2, -2, -3, -3, -3, -3, -3, -3, -3, -3, -3, 2, 2, 2, 2, -3, -3, -3, -3, -4, -1, -1, -4, -2, -2, -2, -2, 2, 0, 0, 2, -4, -1, -1, -3, -3, -3, -3, -3, -1, -1, -1, -1, 3, 3, 3, 3, -4, -4, -4, -4},
	{-3, -3, -3, -3, -1, -1, -1, -1, 4, 5, 4, 1, -3, -2, -2, -3, -3, -3, -3, -3, -3, -3, -3, -3, 2, 2, 2, 2, -3, -3, -3, -3, -4, -1, -1, -4, -2, -2, -2, -2, 2, 0, 0, 2, -4, -1, -1, -3, -3, -3, -3, -3, -1, -1, -1, -1, 3, 3, 3, 3, -4, -4, -4, -4},
	{-3, -3, -3, -3, -1, -1, -1, -1, 4, 4, 5, 1, -3, -2, -2, -3, -3, -3, -3, -3, -3, -3, -3, -3, 2, 2, 2, 2, -3, -3, -3, -3, -4, -1, -1, -4, -2, -2, -2, -2, 2, 0, 0, 2, -4, -1, -1, -3, -3, -3, -3, -3, -1, -1, -1, -1, 3, 3, 3, 3, -4, -4, -4, -4},
	{-1, -2, -2, -1, -1, -1, -1, -1, 1, 1, 1, 6, -1, -1, -1, -1, 0, -2, -2, 0, -2, -2, -2, -2, 2, 2, 2, 2, -1, -1, -1, -1, -4, -1, -1, -4, -1, -1, -1, -1, 2, 0, 0, 2, -4, -1, -1, -1, -2, -3, -3, -2, -1, -1, -1, -1, 1, 1, 1, 1, -3, -3, -3, -3},
	{2, 0, 0, 2, -1, -1, -1, -1, -3, -3, -3, -1, 6, -1, -1, 5, 1, 0, 0, 1, -2, -2, -2, -2, -2, -2, -2, -2, 5, 5, 5, 5, -4, -2, -2, -4, -1, -1, -1, -1, -2, -3, -3, -2, -4, -3, -3, -3, 0, -2, -2, 0, -1, -1, -1, -1, -3, -3, -3, -3, -2, -2, -2, -2},
	{0, 1, 1, 0, 1, 1, 1, 1, -2, -2, -2, -1, -1, 5, 4, -1, 0, -1, -1, 0, -1, -1, -1, -1, -2, -2, -2, -2, -1, -1, -1, -1, -4, -2, -2, -4, 4, 4, 4, 4, -2, -2, -2, -2, -4, -1, -1, -3, 0, 0, 0, 0, 1, 1, 1, 1, -2, -2, -2, -2, 0, 0, 0, 0},
	{0, 1, 1, 0, 1, 1, 1, 1, -2, -2, -2, -1, -1, 4, 5, -1, 0, -1, -1, 0, -1, -1, -1, -1, -2, -2, -2, -2, -1, -1, -1, -1, -4, -2, -2, -4, 4, 4, 4, 4, -2, -2, -2, -2, -4, -1, -1, -3, 0, 0, 0, 0, 1, 1, 1, 1, -2, -2, -2, -2, 0, 0, 0, 0},
	{2, 0, 0, 2, -1, -1, -1, -1, -3, -3, -3, -1, 5, -1, -1, 6, 1, 0, 0, 1, -2, -2, -2, -2, -2, -2, -2, -2, 5, 5, 5, 5, -4, -2, -2, -4, -1, -1, -1, -1, -2, -3, -3, -2, -4, -3, -3, -3, 0, -2, -2, 0, -1, -1, -1, -1, -3, -3, -3, -3, -2, -2, -2, -2},
	{1, 0, 0, 1, -1, -1, -1, -1, -3, -3, -3, 0, 1, 0, 0, 1, 6, 0, 0, 5, -1, -1, -1, -1, -2, -2, -2, -2, 1, 1, 1, 1, -4, -1, -1, -4, 0, 0, 0, 0, -2, -3, -3, -2, -4, -3, -3, -2, 2, 0, 0, 2, -1, -1, -1, -1, -2, -2, -2, -2, -2, -2, -2, -2},
	{-1, 1, 1, -1, -2, -2, -2, -2, -3, -3, -3, -2, 0, -1, -1, 0, 0, 9, 8, 0, -2, -2, -2, -2, -3, -3, -3, -3, 0, 0, 0, 0, -4, 2, 2, -4, -1, -1, -1, -1, -3, -1, -1, -3, -4, -3, -3, -2, 0, -1, -1, 0, -2, -2, -2, -2, -3, -3, -3, -3, -2, -2, -2, -2},
	{-1, 1, 1, -1, -2, -2, -2, -2, -3, -3, -3, -2, 0, -1, -1, 0, 0, 8, 9, 0, -2, -2, -2, -2, -3, -3, -3, -3, 0, 0, 0, 0, -4, 2, 2, -4, -1, -1, -1, -1, -3, -1, -1, -3, -4, -3, -3, -2, 0, -1, -1, 0, -2, -2, -2, -2, -3, -3, -3, -3, -2, -2, -2, -2},
	{1, 0, 0, 1, -1, -1, -1, -1, -3, -3, -3, 0, 1, 0, 0, 1, 5, 0, 0, 6, -1, -1, -1, -1, -2, -2, -2, -2, 1, 1, 1, 1, -4, -1, -1, -4, 0, 0, 0, 0, -2, -3, -3, -2, -4, -3, -3, -2, 2, 0, 0, 2, -1, -1, -1, -1, -2, -2, -2, -2, -2, -2, -2, -2},
	{-1, -2, -2, -1, -1, -1, -1, -1, -3, -3, -3, -2, -2, -1, -1, -2, -1, -2, -2, -1, 8, 7, 7, 7, -3, -3, -3, -3, -2, -2, -2, -2, -4, -3, -3, -4, -1, -1, -1, -1, -3, -4, -4, -3, -4, -3, -3, -4, -1, -1, -1, -1, -1, -1, -1, -1, -2, -2, -2, -2, -2, -2, -2, -2},
	{-1, -2, -2, -1, -1, -1, -1, -1, -3, -3, -3, -2, -2, -1, -1, -2, -1, -2, -2, -1, 7, 8, 7, 7, -3, -3, -3, -3, -2, -2, -2, -2, -4, -3, -3, -4, -1, -1, -1, -1, -3, -4, -4, -3, -4, -3, -3, -4, -1, -1, -1, -1, -1, -1, -1, -1, -2, -2, -2, -2, -2, -2, -2, -2},
	{-1, -2, -2, -1, -1, -1, -1, -1, -3, -3, -3, -2, -2, -1, -1, -2, -1, -2, -2, -1, 7, 7, 8, 7, -3, -3, -3, -3, -2, -2, -2, -2, -4, -3, -3, -4, -1, -1, -1, -1, -3, -4, -4, -3, -4, -3, -3, -4, -1, -1, -1, -1, -1, -1, -1, -1, -2, -2, -2, -2, -2, -2, -2, -2},
	{-1, -2, -2, -1, -1, -1, -1, -1, -3, -3, -3, -2, -2, -1, -1, -2, -1, -2, -2, -1, 7, 7, 7, 8, -3, -3, -3, -3, -2, -2, -2, -2, -4, -3, -3, -4, -1, -1, -1, -1, -3, -4, -4, -3, -4, -3, -3, -4, -1, -1, -1, -1, -1, -1, -1, -1, -2, -2, -2, -2, -2, -2, -2, -2},
	{-2, -3, -3, -2, -1, -1, -1, -1, 2, 2, 2, 2, -2, -2, -2, -2, -2, -3, -3, -2, -3, -3, -3, -3, 5, 4, 4, 4, -2, -2, -2, -2, -4, -1, -1, -4, -2, -2, -2, -2, 4, 0, 0, 4, -4, -1, -1, -2, -3, -4, -4, -3, -1, -1, -1, -1, 1, 1, 1, 1, -4, -4, -4, -4},
	{-2, -3, -3, -2, -1, -1, -1, -1, 2, 2, 2, 2, -2, -2, -2, -2, -2, -3, -3, -2, -3, -3, -3, -3, 4, 5, 4, 4, -2, -2, -2, -2, -4, -1, -1, -4, -2, -2, -2, -2, 4, 0, 0, 4, -4, -1, -1, -2, -3, -4, -4, -3, -1, -1, -1, -1, 1, 1, 1, 1, -4, -4, -4, -4},
	{-2, -3, -3, -2, -1, -1, -1, -1, 2, 2, 2, 2, -2, -2, -2, -2, -2, -3, -3, -2, -3, -3, -3, -3, 4, 4, 5, 4, -2, -2, -2, -2, -4, -1, -1, -4, -2, -2, -2, -2, 4, 0, 0, 4, -4, -1, -1, -2, -3, -4, -4, -3, -1, -1, -1, -1, 1, 1, 1, 1, -4, -4, -4, -4},
	{-2, -3, -3, -2, -1, -1, -1, -1, 2, 2, 2, 2, -2, -2, -2, -2, -2, -3, -3, -2, -3, -3, -3, -3, 4, 4, 4, 5, -2, -2, -2, -2, -4, -1, -1, -4, -2, -2, -2, -2, 4, 0, 0, 4, -4, -1, -1, -2, -3, -4, -4, -3, -1, -1, -1, -1, 1, 1, 1, 1, -4, -4, -4, -4},
	{2, 0, 0, 2, -1, -1, -1, -1, -3, -3, -3, -1, 5, -1, -1, 5, 1, 0, 0, 1, -2, -2, -2, -2, -2, -2, -2, -2, 6, 5, 5, 5, -4, -2, -2, -4, -1, -1, -1, -1, -2, -3, -3, -2, -4, -3, -3, -3, 0, -2, -2, 0, -1, -1, -1, -1, -3, -3, -3, -3, -2, -2, -2, -2},
	{2, 0, 0, 2, -1, -1, -1, -1, -3, -3, -3, -1, 5, -1, -1, 5, 1, 0, 0, 1, -2, -2, -2, -2, -2, -2, -2, -2, 5, 6, 5, 5, -4, -2, -2, -4, -1, -1, -1, -1, -2, -3, -3, -2, -4, -3, -3, -3, 0, -2, -2, 0, -1, -1, -1, -1, -3, -3, -3, -3, -2, -2, -2, -2},
	{2, 0, 0, 2, -1, -1, -1, -1, -3, -3, -3, -1, 5, -1, -1, 5, 1, 0, 0, 1, -2, -2, -2, -2, -2, -2, -2, -2, 5, 5, 6, 5, -4, -2, -2, -4, -1, -1, -1, -1, -2, -3, -3, -2, -4, -3, -3, -3, 0, -2, -2, 0, -1, -1, -1, -1, -3, -3, -3, -3, -2, -2, -2, -2},
	{2, 0, 0, 2, -1, -1, -1, -1, -3, -3, -3, -1, 5, -1, -1, 5, 1, 0, 0, 1, -2, -2, -2, -2, -2, -2, -2, -2, 5, 5, 5, 6, -4, -2, -2, -4, -1, -1, -1, -1, -2, -3, -3, -2, -4, -3, -3, -3, 0, -2, -2, 0, -1, -1, -1, -1, -3, -3, -3, -3, -2, -2, -2, -2},
	{-4, -4, -4, -4, -4, -4, -4, -4, -4, -4, -4, -4, -4, -4, -4, -4, -4, -4, -4, -4, -4, -4, -4, -4, -4, -4, -4, -4, -4, -4, -4, -4, 1, -4, -4, 0, -4, -4, -4, -4, -4, -4, -4, -4, 0, -4, -4, -4, -4, -4, -4, -4, -4, -4, -4, -4, -4, -4, -4, -4, -4, -4, -4, -4},
	{-2, -2, -2, -2, -2, -2, -2, -2, -1, -1, -1, -1, -2, -2, -2, -2, -1, 2, 2, -1, -3, -3, -3, -3, -1, -1, -1, -1, -2, -2, -2, -2, -4, 8, 7, -4, -2, -2, -2, -2, -1, 3, 3, -1, -4, -2, -2, 2, -2, -3, -3, -2, -2, -2, -2, -2, -1, -1, -1, -1, -3, -3, -3, -3},
	{-2, -2, -2, -2, -2, -2, -2, -2, -1, -1, -1, -1, -2, -2, -2, -2, -1, 2, 2, -1, -3, -3, -3, -3, -1, -1, -1, -1, -2, -2, -2, -2, -4, 7, 8, -4, -2, -2, -2, -2, -1, 3, 3, -1, -4, -2, -2, 2, -2, -3, -3, -2, -2, -2, -2, -2, -1, -1, -1, -1, -3, -3, -3, -3},
	{-4, -4, -4, -4, -4, -4, -4, -4, -4, -4, -4, -4, -4, -4, -4, -4, -4, -4, -4, -4, -4, -4, -4, -4, -4, -4, -4, -4, -4, -4, -4, -4, 0, -4, -4, 1, -4, -4, -4, -4, -4, -4, -4, -4, 0, -4, -4, -4, -4, -4, -4, -4, -4, -4, -4, -4, -4, -4, -4, -4, -4, -4, -4, -4},
	{0, 1, 1, 0, 1, 1, 1, 1, -2, -2, -2, -1, -1, 4, 4, -1, 0, -1, -1, 0, -1, -1, -1, -1, -2, -2, -2, -2, -1, -1, -1, -1, -4, -2, -2, -4, 5, 4, 4, 4, -2, -2, -2, -2, -4, -1, -1, -3, 0, 0, 0, 0, 1, 1, 1, 1, -2, -2, -2, -2, 0, 0, 0, 0},
	{0, 1, 1, 0, 1, 1, 1, 1, -2, -2, -2, -1, -1, 4, 4, -1, 0, -1, -1, 0, -1, -1, -1, -1, -2, -2, -2, -2, -1, -1, -1, -1, -4, -2, -2, -4, 4, 5, 4, 4, -2, -2, -2, -2, -4, -1, -1, -3, 0, 0, 0, 0, 1, 1, 1, 1, -2, -2, -2, -2, 0, 0, 0, 0},
	{0, 1, 1, 0, 1, 1, 1, 1, -2, -2, -2, -1, -1, 4, 4, -1, 0, -1, -1, 0, -1, -1, -1, -1, -2, -2, -2, -2, -1, -1, -1, -1, -4, -2, -2, -4, 4, 4, 5, 4, -2, -2, -2, -2, -4, -1, -1, -3, 0, 0, 0, 0, 1, 1, 1, 1, -2, -2, -2, -2, 0, 0, 0, 0},
	{0, 1, 1, 0, 1, 1, 1, 1, -2, -2, -2, -1, -1, 4, 4, -1, 0, -1, -1, 0, -1, -1, -1, -1, -2, -2, -2, -2, -1, -1, -1, -1, -4, -2, -2, -4, 4, 4, 4, 5, -2, -2, -2, -2, -4, -1, -1, -3, 0, 0, 0, 0, 1, 1, 1, 1, -2, -2, -2, -2, 0, 0, 0, 0},
	{-2, -3, -3, -2, -1, -1, -1, -1, 2, 2, 2, 2, -2, -2, -2, -2, -2, -3, -3, -2, -3, -3, -3, -3, 4, 4, 4, 4, -2, -2, -2, -2, -4, -1, -1, -4, -2, -2, -2, -2, 5, 0, 0, 4, -4, -1, -1, -2, -3, -4, -4, -3, -1, -1, -1, -1, 1, 1, 1, 1, -4, -4, -4, -4},
	{-3, -3, -3, -3, -2, -2, -2, -2, 0, 0, 0, 0, -3, -2, -2, -3, -3, -1, -1, -3, -4, -4, -4, -4, 0, 0, 0, 0, -3, -3, -3, -3, -4, 3, 3, -4, -2, -2, -2, -2, 0, 7, 6, 0, -4, -2, -2, 1, -3, -3, -3, -3, -2, -2, -2, -2, -1, -1, -1, -1, -3, -3, -3, -3},
	{-3, -3, -3, -3, -2, -2, -2, -2, 0, 0, 0, 0, -3, -2, -2, -3, -3, -1, -1, -3, -4, -4, -4, -4, 0, 0, 0, 0, -3, -3, -3, -3, -4, 3, 3, -4, -2, -2, -2, -2, 0, 6, 7, 0, -4, -2, -2, 1, -3, -3, -3, -3, -2, -2, -2, -2, -1, -1, -1, -1, -3, -3, -3, -3},
	{-2, -3, -3, -2, -1, -1, -1, -1, 2, 2, 2, 2, -2, -2, -2, -2, -2, -3, -3, -2, -3, -3, -3, -3, 4, 4, 4, 4, -2, -2, -2, -2, -4, -1, -1, -4, -2, -2, -2, -2, 4, 0, 0, 5, -4, -1, -1, -2, -3, -4, -4, -3, -1, -1, -1, -1, 1, 1, 1, 1, -4, -4, -4, -4},
	{-4, -4, -4, -4, -4, -4, -4, -4, -4, -4, -4, -4, -4, -4, -4, -4, -4, -4, -4, -4, -4, -4, -4, -4, -4, -4, -4, -4, -4, -4, -4, -4, 0, -4, -4, 0, -4, -4, -4, -4, -4, -4, -4, -4, 1, -4, -4, -4, -4, -4, -4, -4, -4, -4, -4, -4, -4, -4, -4, -4, -4, -4, -4, -4},
	{-3, -3, -3, -3, -1, -1, -1, -1, -1, -1, -1, -1, -3, -1, -1, -3, -3, -3, -3, -3, -3, -3, -3, -3, -1, -1, -1, -1, -3, -3, -3, -3, -4, -2, -2, -4, -1, -1, -1, -1, -1, -2, -2, -1, -4, 10, 9, -2, -4, -3, -3, -4, 0, 0, 0, 0, -1, -1, -1, -1, -3, -3, -3, -3},
	{-3, -3, -3, -3, -1, -1, -1, -1, -1, -1, -1, -1, -3, -1, -1, -3, -3, -3, -3, -3, -3, -3, -3, -3, -1, -1, -1, -1, -3, -3, -3, -3, -4, -2, -2, -4, -1, -1, -1, -1, -1, -2, -2, -1, -4, 9, 10, -2, -4, -3, -3, -4, 0, 0, 0, 0, -1, -1, -1, -1, -3, -3, -3, -3},
	{-3, -4, -4, -3, -2, -2, -2, -2, -3, -3, -3, -1, -3, -3, -3, -3, -2, -2, -2, -2, -4, -4, -4, -4, -2, -2, -2, -2, -3, -3, -3, -3, -4, 2, 2, -4, -3, -3, -3, -3, -2, 1, 1, -2, -4, -2, -2, 12, -3, -4, -4, -3, -3, -3, -3, -3, -3, -3, -3, -3, -2, -2, -2, -2},
	{1, 0, 0, 1, -1, -1, -1, -1, -3, -3, -3, -2, 0, 0, 0, 0, 2, 0, 0, 2, -1, -1, -1, -1, -3, -3, -3, -3, 0, 0, 0, 0, -4, -2, -2, -4, 0, 0, 0, 0, -3, -3, -3, -3, -4, -4, -4, -3, 6, 2, 2, 5, -1, -1, -1, -1, -2, -2, -2, -2, -2, -2, -2, -2},
	{-1, 1, 1, -1, -1, -1, -1, -1, -3, -3, -3, -3, -2, 0, 0, -2, 0, -1, -1, 0, -1, -1, -1, -1, -4, -4, -4, -4, -2, -2, -2, -2, -4, -3, -3, -4, 0, 0, 0, 0, -4, -3, -3, -4, -4, -3, -3, -4, 2, 7, 6, 2, -2, -2, -2, -2, -3, -3, -3, -3, -1, -1, -1, -1},
	{-1, 1, 1, -1, -1, -1, -1, -1, -3, -3, -3, -3, -2, 0, 0, -2, 0, -1, -1, 0, -1, -1, -1, -1, -4, -4, -4, -4, -2, -2, -2, -2, -4, -3, -3, -4, 0, 0, 0, 0, -4, -3, -3, -4, -4, -3, -3, -4, 2, 6, 7, 2, -2, -2, -2, -2, -3, -3, -3, -3, -1, -1, -1, -1},
	{1, 0, 0, 1, -1, -1, -1, -1, -3, -3, -3, -2, 0, 0, 0, 0, 2, 0, 0, 2, -1, -1, -1, -1, -3, -3, -3, -3, 0, 0, 0, 0, -4, -2, -2, -4, 0, 0, 0, 0, -3, -3, -3, -3, -4, -4, -4, -3, 5, 2, 2, 6, -1, -1, -1, -1, -2, -2, -2, -2, -2, -2, -2, -2},
	{-1, -2, -2, -1, 0, 0, 0, 0, -1, -1, -1, -1, -1, 1, 1, -1, -1, -2, -2, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -4, -2, -2, -4, 1, 1, 1, 1, -1, -2, -2, -1, -4, 0, 0, -3, -1, -2, -2, -1, 5, 4, 4, 4, 0, 0, 0, 0, 0, 0, 0, 0},
	{-1, -2, -2, -1, 0, 0, 0, 0, -1, -1, -1, -1, -1, 1, 1, -1, -1, -2, -2, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -4, -2, -2, -4, 1, 1, 1, 1, -1, -2, -2, -1, -4, 0, 0, -3, -1, -2, -2, -1, 4, 5, 4, 4, 0, 0, 0, 0, 0, 0, 0, 0},
	{-1, -2, -2, -1, 0, 0, 0, 0, -1, -1, -1, -1, -1, 1, 1, -1, -1, -2, -2, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -4, -2, -2, -4, 1, 1, 1, 1, -1, -2, -2, -1, -4, 0, 0, -3, -1, -2, -2, -1, 4, 4, 5, 4, 0, 0, 0, 0, 0, 0, 0, 0},
	{-1, -2, -2, -1, 0, 0, 0, 0, -1, -1, -1, -1, -1, 1, 1, -1, -1, -2, -2, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -4, -2, -2, -4, 1, 1, 1, 1, -1, -2, -2, -1, -4, 0, 0, -3, -1, -2, -2, -1, 4, 4, 4, 5, 0, 0, 0, 0, 0, 0, 0, 0},
	{-2, -3, -3, -2, 0, 0, 0, 0, 3, 3, 3, 1, -3, -2, -2, -3, -2, -3, -3, -2, -2, -2, -2, -2, 1, 1, 1, 1, -3, -3, -3, -3, -4, -1, -1, -4, -2, -2, -2, -2, 1, -1, -1, 1, -4, -1, -1, -3, -2, -3, -3, -2, 0, 0, 0, 0, 5, 4, 4, 4, -3, -3, -3, -3},
	{-2, -3, -3, -2, 0, 0, 0, 0, 3, 3, 3, 1, -3, -2, -2, -3, -2, -3, -3, -2, -2, -2, -2, -2, 1, 1, 1, 1, -3, -3, -3, -3, -4, -1, -1, -4, -2, -2, -2, -2, 1, -1, -1, 1, -4, -1, -1, -3, -2, -3, -3, -2, 0, 0, 0, 0, 4, 5, 4, 4, -3, -3, -3, -3},
	{-2, -3, -3, -2, 0, 0, 0, 0, 3, 3, 3, 1, -3, -2, -2, -3, -2, -3, -3, -2, -2, -2, -2, -2, 1, 1, 1, 1, -3, -3, -3, -3, -4, -1, -1, -4, -2, -2, -2, -2, 1, -1, -1, 1, -4, -1, -1, -3, -2, -3, -3, -2, 0, 0, 0, 0, 4, 4, 5, 4, -3, -3, -3, -3},
	{-2, -3, -3, -2, 0, 0, 0, 0, 3, 3, 3, 1, -3, -2, -2, -3, -2, -3, -3, -2, -2, -2, -2, -2, 1, 1, 1, 1, -3, -3, -3, -3, -4, -1, -1, -4, -2, -2, -2, -2, 1, -1, -1, 1, -4, -1, -1, -3, -2, -3, -3, -2, 0, 0, 0, 0, 4, 4, 4, 5, -3, -3, -3, -3},
	{-2, 0, 0, -2, -2, -2, -2, -2, -4, -4, -4, -3, -2, 0, 0, -2, -2, -2, -2, -2, -2, -2, -2, -2, -4, -4, -4, -4, -2, -2, -2, -2, -4, -3, -3, -4, 0, 0, 0, 0, -4, -3, -3, -4, -4, -3, -3, -2, -2, -1, -1, -2, 0, 0, 0, 0, -3, -3, -3, -3, 7, 6, 6, 6},
	{-2, 0, 0, -2, -2, -2, -2, -2, -4, -4, -4, -3, -2, 0, 0, -2, -2, -2, -2, -2, -2, -2, -2, -2, -4, -4, -4, -4, -2, -2, -2, -2, -4, -3, -3, -4, 0, 0, 0, 0, -4, -3, -3, -4, -4, -3, -3, -2, -2, -1, -1, -2, 0, 0, 0, 0, -3, -3, -3, -3, 6, 7, 6, 6},
	{-2, 0, 0, -2, -2, -2, -2, -2, -4, -4, -4, -3, -2, 0, 0, -2, -2, -2, -2, -2, -2, -2, -2, -2, -4, -4, -4, -4, -2, -2, -2, -2, -4, -3, -3, -4, 0, 0, 0, 0, -4, -3, -3, -4, -4, -3, -3, -2, -2, -1, -1, -2, 0, 0, 0, 0, -3, -3, -3, -3, 6, 6, 7, 6},
	{-2, 0, 0, -2, -2, -2, -2, -2, -4, -4, -4, -3, -2, 0, 0, -2, -2, -2, -2, -2, -2, -2, -2, -2, -4, -4, -4, -4, -2, -2, -2, -2, -4, -3, -3, -4, 0, 0, 0, 0, -4, -3, -3, -4, -4, -3, -3, -2, -2, -1, -1, -2, 0, 0, 0, 0, -3, -3, -3, -3, 6, 6, 6, 7},
}
