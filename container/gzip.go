package container

import (
	"bytes"
	"fmt"
	"io"

	"github.com/klauspost/compress/gzip"
)

// GzipDecompressor unwraps a gzip stream.
type GzipDecompressor struct{}

var _ Decompressor = (*GzipDecompressor)(nil)

// NewGzipDecompressor creates a new gzip stream decompressor.
func NewGzipDecompressor() GzipDecompressor {
	return GzipDecompressor{}
}

// Decompress drains the gzip stream and returns the document bytes.
//
// Parameters:
//   - data: Complete gzip stream bytes
//
// Returns:
//   - []byte: Decompressed document bytes (nil if input is empty)
//   - error: Gzip header or stream corruption errors
func (d GzipDecompressor) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	reader, err := gzip.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("open gzip stream: %w", err)
	}
	defer reader.Close()

	content, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("read gzip stream: %w", err)
	}

	return content, nil
}
