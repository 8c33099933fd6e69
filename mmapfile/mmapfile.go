// Package mmapfile memory-maps a read-only file for zero-copy scanning,
// and locates FASTQ record boundaries within the mapped bytes -- the Go
// analogue of ConstMapping/seek_next/next_lines.
package mmapfile

import (
	"os"

	"golang.org/x/sys/unix"

	"github.com/broadinstitute/dsa/dsaerrors"
)

// Mapping is a read-only memory-mapped file. The zero value is an unmapped
// Mapping.
type Mapping struct {
	data    []byte
	mmapped bool
}

// Map memory-maps path for reading.
func Map(path string) (*Mapping, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, dsaerrors.New(dsaerrors.IoOpenError, err, "path:", path)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, dsaerrors.New(dsaerrors.IoOpenError, err, "path:", path)
	}

	size := info.Size()
	if size == 0 {
		return &Mapping{}, nil
	}

	data, err := unix.Mmap(int(f.Fd()), 0, int(size), unix.PROT_READ, unix.MAP_PRIVATE)
	if err != nil {
		return nil, dsaerrors.New(dsaerrors.IoMapError, err, "path:", path)
	}
	return &Mapping{data: data, mmapped: true}, nil
}

// Wrap holds data as a Mapping without backing it with an mmap -- for
// content that was decompressed into memory (e.g. a gzipped FASTQ file)
// rather than read directly off of disk. Unmap on a wrapped Mapping simply
// drops the reference; it does not call munmap.
func Wrap(data []byte) *Mapping {
	return &Mapping{data: data}
}

// Bytes returns the mapped file contents. The returned slice is only valid
// until Unmap is called.
func (m *Mapping) Bytes() []byte { return m.data }

// Size returns the length of the mapped file.
func (m *Mapping) Size() int { return len(m.data) }

// Unmap releases the mapping. Bytes returned by Bytes must not be used
// afterward.
func (m *Mapping) Unmap() error {
	if m.data == nil {
		return nil
	}
	if !m.mmapped {
		m.data = nil
		return nil
	}
	err := unix.Munmap(m.data)
	m.data = nil
	if err != nil {
		return dsaerrors.New(dsaerrors.IoMapError, err)
	}
	return nil
}

// NextLines advances past the end of the line containing offset cur within
// data and then past n further newlines (n+1 newlines in all), returning
// the offset of the character after the last of them, or len(data) if the
// end is reached first.
func NextLines(data []byte, cur int, n int) int {
	count := 0
	for ; cur < len(data); cur++ {
		if data[cur] == '\n' {
			if count == n {
				return cur + 1
			}
			count++
		}
	}
	return len(data)
}

// SeekNext advances an arbitrary offset within a buffered FASTQ file to the
// start of the next record, recognizing the '+' separator line (a '+' with
// a newline immediately before and after it) as the record boundary
// marker. A '+' at the buffer's first or last byte is not treated as a
// boundary.
func SeekNext(data []byte, cur int) int {
	for ; cur < len(data); cur++ {
		if data[cur] != '+' {
			continue
		}
		if cur+1 == len(data) {
			return len(data)
		}
		if cur != 0 && data[cur-1] == '\n' && data[cur+1] == '\n' {
			return NextLines(data, cur, 1)
		}
	}
	return len(data)
}
