package container

import (
	"bytes"
	"fmt"
	"io"

	"github.com/klauspost/compress/zip"

	"github.com/hydrokit/pixml/errs"
)

// ZipDecompressor unwraps a single-entry zip archive.
//
// The interchange convention wraps exactly one document per archive; the
// first file entry is taken and any further entries are ignored. An archive
// with no file entries is an error.
type ZipDecompressor struct{}

var _ Decompressor = (*ZipDecompressor)(nil)

// NewZipDecompressor creates a new zip archive decompressor.
func NewZipDecompressor() ZipDecompressor {
	return ZipDecompressor{}
}

// Decompress opens the archive and returns the bytes of its first file entry.
//
// Parameters:
//   - data: Complete zip archive bytes
//
// Returns:
//   - []byte: Document bytes of the first entry
//   - error: Archive format errors, or errs.ErrEmptyContainer when the
//     archive holds no file entries
func (d ZipDecompressor) Decompress(data []byte) ([]byte, error) {
	reader, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("open zip archive: %w", err)
	}

	for _, file := range reader.File {
		if file.FileInfo().IsDir() {
			continue
		}

		rc, err := file.Open()
		if err != nil {
			return nil, fmt.Errorf("open zip entry %q: %w", file.Name, err)
		}
		defer rc.Close()

		content, err := io.ReadAll(rc)
		if err != nil {
			return nil, fmt.Errorf("read zip entry %q: %w", file.Name, err)
		}

		return content, nil
	}

	return nil, errs.ErrEmptyContainer
}
