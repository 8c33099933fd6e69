// Package umiref compiles UMI reference sequences (ATGC literals, N
// wildcards, and n capture wildcards) into regular expressions, extracts
// barcodes from sequenced reads, and snap-corrects extracted barcodes
// against a list of known UMIs.
package umiref

import (
	"regexp"
	"strings"

	"github.com/broadinstitute/dsa/dsaerrors"
)

// ExtractedUMI is the result of searching a read for a UMI reference
// pattern.
type ExtractedUMI struct {
	Barcode string // the concatenation of every capture group matched, in order
	From    int    // index of the first matched base, or -1 if not found
	Length  int    // length of the full match (capturing and non-capturing bases alike)
}

// Valid reports whether the reference pattern was found.
func (e ExtractedUMI) Valid() bool { return e.Length != 0 }

// UMIExtractor recognizes one UMI reference sequence within a read.
type UMIExtractor struct {
	sequence string
	pattern  string
	re       *regexp.Regexp
}

// NewUMIExtractor compiles a UMI reference sequence. Capital A/T/G/C match
// literally; capital N is a non-capturing wildcard; a contiguous run of
// lowercase n is captured as one barcode group (each n consuming exactly
// one base). Any other character returns an InvalidUmiPattern error.
func NewUMIExtractor(sequence string) (*UMIExtractor, error) {
	normalized := make([]byte, len(sequence))
	for i := 0; i < len(sequence); i++ {
		c := sequence[i]
		if c != 'n' && c != 'N' {
			c = byte(strings.ToUpper(string(c))[0])
		}
		if strings.IndexByte("ACGTNn", c) < 0 {
			return nil, dsaerrors.New(dsaerrors.InvalidUmiPattern, "invalid UMI reference sequence:", sequence)
		}
		normalized[i] = c
	}

	var pattern strings.Builder
	capture := false
	for _, c := range normalized {
		switch {
		case capture && c == 'n':
			pattern.WriteByte('.')
		case capture:
			pattern.WriteByte(')')
			pattern.WriteByte(regexLiteral(c))
			capture = false
		case c == 'n':
			pattern.WriteByte('(')
			pattern.WriteByte('.')
			capture = true
		default:
			pattern.WriteByte(regexLiteral(c))
		}
	}
	if capture {
		pattern.WriteByte(')')
	}

	re, err := regexp.Compile("(?i)" + pattern.String())
	if err != nil {
		return nil, dsaerrors.New(dsaerrors.InvalidUmiPattern, err, "sequence:", sequence)
	}
	return &UMIExtractor{sequence: string(normalized), pattern: pattern.String(), re: re}, nil
}

// regexLiteral renders one normalized reference byte (N or an upper-case
// base) as the character it contributes to the regex pattern.
func regexLiteral(c byte) byte {
	if c == 'N' {
		return '.'
	}
	return c
}

// Empty reports whether the extractor holds no pattern (the zero value).
func (u *UMIExtractor) Empty() bool { return u.pattern == "" }

// Sequence returns the original (case-normalized) reference sequence.
func (u *UMIExtractor) Sequence() string { return u.sequence }

// Pattern returns the compiled regular expression source.
func (u *UMIExtractor) Pattern() string { return u.pattern }

// Match searches seq for the reference pattern, unanchored, returning the
// leftmost match. If the pattern was not found, the result has From == -1,
// an empty Barcode and Length 0 (Valid() == false).
func (u *UMIExtractor) Match(seq []byte) ExtractedUMI {
	loc := u.re.FindSubmatchIndex(seq)
	if loc == nil {
		return ExtractedUMI{From: -1}
	}

	var barcode strings.Builder
	for i := 2; i < len(loc); i += 2 {
		if loc[i] < 0 {
			continue
		}
		barcode.Write(seq[loc[i]:loc[i+1]])
	}

	return ExtractedUMI{
		Barcode: barcode.String(),
		From:    loc[0],
		Length:  loc[1] - loc[0],
	}
}
