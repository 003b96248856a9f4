//go:build cgo

package container

import (
	"fmt"

	"github.com/valyala/gozstd"
)

// Decompress drains the Zstandard stream using the cgo-backed libzstd
// bindings.
func (d ZstdDecompressor) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	content, err := gozstd.Decompress(nil, data)
	if err != nil {
		return nil, fmt.Errorf("read zstd stream: %w", err)
	}

	return content, nil
}
