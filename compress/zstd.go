package compress

// ZstdCodec compresses with Zstandard. The pure-Go klauspost/compress/zstd
// implementation backs this type by default; building with the gozstd tag
// swaps in the cgo valyala/gozstd implementation instead (see
// zstd_pure.go/zstd_cgo.go).
type ZstdCodec struct{}

var _ Codec = ZstdCodec{}
