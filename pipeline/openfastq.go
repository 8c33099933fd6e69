package pipeline

import (
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/gzip"

	"github.com/broadinstitute/dsa/dsaerrors"
	"github.com/broadinstitute/dsa/mmapfile"
)

// OpenFastq opens a FASTQ file for reading, memory-mapping it directly if
// it's plain text, or transparently decompressing it into memory first if
// its name ends in ".gz" -- amplicon-sequencing FASTQ files are routinely
// distributed gzipped, and ExtractReadData otherwise has no way to see
// past the compressed bytes.
func OpenFastq(path string) (*mmapfile.Mapping, error) {
	if !strings.HasSuffix(path, ".gz") {
		return mmapfile.Map(path)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, dsaerrors.New(dsaerrors.IoOpenError, err, "path:", path)
	}
	defer f.Close()

	gr, err := gzip.NewReader(f)
	if err != nil {
		return nil, dsaerrors.New(dsaerrors.IoOpenError, err, "path:", path)
	}
	defer gr.Close()

	data, err := io.ReadAll(gr)
	if err != nil {
		return nil, dsaerrors.New(dsaerrors.IoOpenError, err, "path:", path)
	}
	return mmapfile.Wrap(data), nil
}
