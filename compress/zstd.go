package compress

// ZstdCompressor compresses with Zstandard.
//
// It gives the best ratio of the built-in codecs and suits snapshots that are
// written once and kept. The pure Go implementation from klauspost/compress is
// used by default; building with -tags gozstd switches to the cgo binding.
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor creates a Zstd codec.
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}
