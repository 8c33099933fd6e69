package pipeline

import (
	"github.com/broadinstitute/dsa/align"
	"github.com/broadinstitute/dsa/mmapfile"
	"github.com/broadinstitute/dsa/parallelrun"
	"github.com/broadinstitute/dsa/polymer"
	"github.com/broadinstitute/dsa/symbol"
)

// ExtractReadData parses every FASTQ record out of a memory-mapped file,
// partitioned across workers at record boundaries (so no worker starts
// mid-record). A record whose dna/qual lengths mismatch, or whose dna
// contains a character outside ATGC(N), is represented as the zero Read
// (Empty() == true) rather than dropped outright, so its position in the
// output lines up one-to-one with its paired mate in the other file.
func ExtractReadData(mapping *mmapfile.Mapping) []align.Read {
	data := mapping.Bytes()
	if len(data) == 0 {
		return nil
	}

	workers := parallelrun.Workers()
	if workers < 1 {
		workers = 1
	}

	breakpoints := make([]int, workers+1)
	for i := 0; i < workers; i++ {
		breakpoints[i] = (i * len(data)) / workers
	}
	breakpoints[workers] = len(data)
	for i := 1; i < workers; i++ {
		breakpoints[i] = mmapfile.SeekNext(data, breakpoints[i])
	}

	partials := make([][]align.Read, workers)
	_ = parallelrun.ForEach(workers, workers, func(i int) error {
		partials[i] = parseFastqChunk(data[breakpoints[i]:breakpoints[i+1]])
		return nil
	})

	total := 0
	for _, p := range partials {
		total += len(p)
	}
	result := make([]align.Read, 0, total)
	for _, p := range partials {
		result = append(result, p...)
	}
	return result
}

// parseFastqChunk parses every 4-line FASTQ record in chunk.
func parseFastqChunk(chunk []byte) []align.Read {
	var result []align.Read
	pos := 0
	for pos < len(chunk) {
		pos = skipLine(chunk, pos) // header

		dnaStart := pos
		pos = skipLine(chunk, pos)
		dnaLine := trimLine(chunk[dnaStart:pos])

		pos = skipLine(chunk, pos) // '+'

		qualStart := pos
		pos = skipLine(chunk, pos)
		qualLine := trimLine(chunk[qualStart:pos])

		stripped := 0
		nts := polymer.New[symbol.Nt](len(dnaLine))
		for _, c := range dnaLine {
			n := symbol.NormalizeNt(c)
			if n == 0 {
				stripped++
				continue
			}
			nts.PushBack(symbol.Nt(n))
		}

		if stripped != 0 || nts.Len() != len(qualLine) {
			result = append(result, align.Read{})
			continue
		}

		qual := make([]byte, len(qualLine))
		copy(qual, qualLine)
		result = append(result, align.Read{UmiGroupSize: 1, Dna: nts, Qual: qual})
	}
	return result
}

// skipLine advances past the next '\n' (or to the end of data if none
// remains).
func skipLine(data []byte, pos int) int {
	for pos < len(data) {
		if data[pos] == '\n' {
			return pos + 1
		}
		pos++
	}
	return pos
}

// trimLine strips a trailing '\r' (CRLF line endings) from a line slice
// that skipLine has already excluded the '\n' from.
func trimLine(line []byte) []byte {
	if len(line) > 0 && line[len(line)-1] == '\r' {
		return line[:len(line)-1]
	}
	return line
}
