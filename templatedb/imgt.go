package templatedb

import (
	"bufio"
	"io"
	"os"
	"regexp"
	"strings"

	"github.com/pkg/errors"

	"github.com/broadinstitute/dsa/dsaerrors"
	"github.com/broadinstitute/dsa/polymer"
	"github.com/broadinstitute/dsa/symbol"
)

// allelicVariant matches an IMGT-style allelic-variant suffix (e.g. *02,
// *03, ...) so that only the first allele of each gene is kept.
var allelicVariant = regexp.MustCompile(`\*0[2-9]$`)

// FromIMGTFasta loads a template database from an IMGT-style (or plain)
// FASTA file. A header with no '|' characters is taken verbatim (minus the
// leading '>') as the label; a header with one or more '|' characters is
// assumed IMGT-style, and the second '|'-delimited field is used as the
// label. Records whose label ends in an allelic-variant suffix (*02-*09)
// are silently dropped, keeping only the first allele of each gene.
func FromIMGTFasta(path string) (*DB, error) {
	resolved, err := expandHome(path)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(resolved)
	if err != nil {
		return nil, dsaerrors.New(dsaerrors.BadTemplateDatabaseParse,
			errors.Wrapf(err, "file %q could not be opened for reading", path))
	}
	defer f.Close()

	var records []Entry

	var label string
	var nts polymer.Nts

	flush := func() {
		if label == "" {
			return
		}
		if !allelicVariant.MatchString(label) {
			records = append(records, Entry{Label: label, Cdns: polymer.ToCdns(&nts)})
		}
		label = ""
		nts = polymer.Nts{}
	}

	lineNo := 0
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		lineNo++
		line := strings.TrimRight(scanner.Text(), "\r\n")
		if line == "" {
			continue
		}

		switch {
		case line[0] == '>':
			flush()

			tokens := strings.Split(line, "|")
			if len(tokens) == 1 {
				if len(tokens[0]) < 2 {
					return nil, dsaerrors.New(dsaerrors.BadTemplateDatabaseParse,
						errorf("bad header %q on line %d: identifier field is empty", line, lineNo))
				}
				label = tokens[0][1:]
			} else {
				if len(tokens) < 2 {
					return nil, dsaerrors.New(dsaerrors.BadTemplateDatabaseParse,
						errorf("bad header %q on line %d: not enough fields", line, lineNo))
				}
				if tokens[1] == "" {
					return nil, dsaerrors.New(dsaerrors.BadTemplateDatabaseParse,
						errorf("bad header %q on line %d: identifier field is empty", line, lineNo))
				}
				label = tokens[1]
			}
		case label == "":
			return nil, dsaerrors.New(dsaerrors.BadTemplateDatabaseParse,
				errorf("unexpected sequence data %q on line %d", line, lineNo))
		default:
			more := polymer.NewNts(line)
			nts.Concat(&more)
		}
	}
	if err := scanner.Err(); err != nil && err != io.EOF {
		return nil, dsaerrors.New(dsaerrors.BadTemplateDatabaseParse, errors.Wrap(err, "reading template database"))
	}
	flush()

	if len(records) == 0 {
		return nil, dsaerrors.New(dsaerrors.BadTemplateDatabaseParse, "no fasta records found")
	}

	for i := range records {
		records[i].Aas = polymer.ToAas(&records[i].Cdns, symbol.StandardTranslationTable)
	}

	return &DB{targets: records, gapPenalty: defaultGapPenalty}, nil
}

// expandHome expands a leading "~" path component to the user's home
// directory, matching the reference's Linux dsa_get_env("HOME") behavior.
func expandHome(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return path, nil
	}
	if path == "~" {
		return home, nil
	}
	return home + path[1:], nil
}

func errorf(format string, args ...interface{}) error {
	return errors.Errorf(format, args...)
}
