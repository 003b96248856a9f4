package container

// ZstdDecompressor unwraps a Zstandard stream.
//
// Two implementations exist, selected at build time: a cgo-backed one using
// valyala/gozstd, and a pure-Go one using klauspost/compress/zstd for builds
// without cgo. Both accept standard Zstandard frames.
type ZstdDecompressor struct{}

var _ Decompressor = (*ZstdDecompressor)(nil)

// NewZstdDecompressor creates a new Zstandard stream decompressor.
func NewZstdDecompressor() ZstdDecompressor {
	return ZstdDecompressor{}
}
