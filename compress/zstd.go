package compress

// ZstdCompressor provides Zstandard compression for stored options blocks.
//
// Zstd gives the best ratio of the available codecs and is the right pick
// when blocks are written once and read rarely, which matches how index
// options behave.
//
// Two implementations are selected at build time: the cgo build uses
// gozstd (libzstd bindings), other builds fall back to the pure-Go
// klauspost/compress/zstd implementation.
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor creates a new Zstd compressor with default settings.
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}
