package container

import (
	"bytes"
	"fmt"
	"io"

	"github.com/pierrec/lz4/v4"
)

// LZ4Decompressor unwraps an LZ4 frame stream.
type LZ4Decompressor struct{}

var _ Decompressor = (*LZ4Decompressor)(nil)

// NewLZ4Decompressor creates a new LZ4 frame decompressor.
func NewLZ4Decompressor() LZ4Decompressor {
	return LZ4Decompressor{}
}

// Decompress drains the LZ4 frame and returns the document bytes.
//
// Parameters:
//   - data: Complete LZ4 frame bytes
//
// Returns:
//   - []byte: Decompressed document bytes (nil if input is empty)
//   - error: Frame format or stream corruption errors
func (d LZ4Decompressor) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	content, err := io.ReadAll(lz4.NewReader(bytes.NewReader(data)))
	if err != nil {
		return nil, fmt.Errorf("read lz4 frame: %w", err)
	}

	return content, nil
}
