// Package container unwraps compressed single-document containers around
// pixml interchange documents.
//
// Interchange documents are frequently published wrapped in a generic
// compression container, with the container selected by the source name's
// trailing extension. This package detects the container from the name and
// unwraps the document bytes before parsing begins.
//
// # Supported Containers
//
//   - None: bare document bytes, no unwrapping
//   - Zip: a single-entry zip archive (".zip"); the first file entry is taken
//   - Gzip: a gzip stream (".gz")
//   - Zstd: a Zstandard stream (".zst")
//   - LZ4: an LZ4 frame stream (".lz4")
//
// # Architecture
//
// The package defines one core interface:
//
//	type Decompressor interface {
//	    Decompress(data []byte) ([]byte, error)
//	}
//
// Implementations are selected through the Type enum:
//
//	data, _ := os.ReadFile("forecast.xml.gz")
//	doc, err := container.Unwrap("forecast.xml.gz", data)
//
// The Zstd decompressor has two implementations selected at build time: a
// cgo-backed one (valyala/gozstd) and a pure-Go one (klauspost/compress/zstd)
// used when cgo is unavailable.
//
// All decompressors are stateless and safe for concurrent use.
package container
