package container

// NoOpDecompressor passes document bytes through without unwrapping.
//
// Used for bare, uncontained sources. The returned slice shares the input's
// underlying memory; callers must not modify the input afterward.
type NoOpDecompressor struct{}

var _ Decompressor = (*NoOpDecompressor)(nil)

// NewNoOpDecompressor creates a new pass-through decompressor.
func NewNoOpDecompressor() NoOpDecompressor {
	return NoOpDecompressor{}
}

// Decompress returns the input bytes unchanged.
func (d NoOpDecompressor) Decompress(data []byte) ([]byte, error) {
	return data, nil
}
