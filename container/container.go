package container

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/hydrokit/pixml/errs"
)

// Type identifies a source container framing.
type Type uint8

const (
	TypeNone Type = 0x1 // TypeNone represents bare document bytes.
	TypeZip  Type = 0x2 // TypeZip represents a single-entry zip archive.
	TypeGzip Type = 0x3 // TypeGzip represents a gzip stream.
	TypeZstd Type = 0x4 // TypeZstd represents a Zstandard stream.
	TypeLZ4  Type = 0x5 // TypeLZ4 represents an LZ4 frame stream.
)

func (t Type) String() string {
	switch t {
	case TypeNone:
		return "None"
	case TypeZip:
		return "Zip"
	case TypeGzip:
		return "Gzip"
	case TypeZstd:
		return "Zstd"
	case TypeLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}

// Decompressor unwraps one container framing around document bytes.
//
// Implementations are stateless; the returned slice is newly allocated and
// owned by the caller, and the input slice is never modified.
type Decompressor interface {
	// Decompress unwraps the container and returns the document bytes.
	Decompress(data []byte) ([]byte, error)
}

// Detect determines the container type from a source name's trailing
// extension. Matching is case-insensitive; unrecognized extensions mean bare
// document bytes.
func Detect(name string) Type {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".zip":
		return TypeZip
	case ".gz", ".gzip":
		return TypeGzip
	case ".zst", ".zstd":
		return TypeZstd
	case ".lz4":
		return TypeLZ4
	default:
		return TypeNone
	}
}

// NewDecompressor is a factory function that creates a Decompressor for the
// specified container type.
//
// Parameters:
//   - containerType: Type of container (None, Zip, Gzip, Zstd, or LZ4)
//
// Returns:
//   - Decompressor: Decompressor instance for the specified type
//   - error: Wraps errs.ErrUnsupportedContainer for unknown types
func NewDecompressor(containerType Type) (Decompressor, error) {
	switch containerType {
	case TypeNone:
		return NewNoOpDecompressor(), nil
	case TypeZip:
		return NewZipDecompressor(), nil
	case TypeGzip:
		return NewGzipDecompressor(), nil
	case TypeZstd:
		return NewZstdDecompressor(), nil
	case TypeLZ4:
		return NewLZ4Decompressor(), nil
	default:
		return nil, fmt.Errorf("%w: %s", errs.ErrUnsupportedContainer, containerType)
	}
}

// Unwrap detects the container from the source name and returns the unwrapped
// document bytes.
//
// Parameters:
//   - name: Source name whose extension selects the container
//   - data: Raw source bytes, possibly container-wrapped
//
// Returns:
//   - []byte: Document bytes ready for parsing
//   - error: Container detection or decompression errors
func Unwrap(name string, data []byte) ([]byte, error) {
	decompressor, err := NewDecompressor(Detect(name))
	if err != nil {
		return nil, err
	}

	unwrapped, err := decompressor.Decompress(data)
	if err != nil {
		return nil, fmt.Errorf("unwrap %s container: %w", Detect(name), err)
	}

	return unwrapped, nil
}

// Open reads the named source file and unwraps its container.
//
// A failure to read the file is returned as-is so callers can distinguish
// source-access failure (os errors) from content failure (container errors).
func Open(name string) ([]byte, error) {
	data, err := os.ReadFile(name)
	if err != nil {
		return nil, err
	}

	return Unwrap(name, data)
}
