// Package compress implements an optional, opt-in compression envelope for
// SMILE Binary payloads. SMILE's wire format has no compression concept of
// its own; this package lets value.Binary carry an Algorithm tag so two
// cooperating endpoints can shrink binary payloads before they ever reach
// writer.WriteBinary7Bit/WriteBinaryRaw, while any other conforming SMILE
// decoder still sees a perfectly valid, merely opaque, binary token.
package compress

import (
	"fmt"

	"github.com/jhosmer/gosmile/errs"
)

// Algorithm identifies a compression backend. The zero value, None, is a
// pass-through.
type Algorithm uint8

const (
	None Algorithm = iota
	Zstd
	S2
	LZ4
	BZip2
	// Brotli is decode-only: this package can read brotli-compressed
	// payloads produced elsewhere, but never writes them.
	Brotli
)

func (a Algorithm) String() string {
	switch a {
	case None:
		return "none"
	case Zstd:
		return "zstd"
	case S2:
		return "s2"
	case LZ4:
		return "lz4"
	case BZip2:
		return "bzip2"
	case Brotli:
		return "brotli"
	default:
		return "unknown"
	}
}

// Compressor compresses a complete payload in one call.
type Compressor interface {
	Compress(data []byte) ([]byte, error)
}

// Decompressor decompresses a complete payload in one call.
type Decompressor interface {
	Decompress(data []byte) ([]byte, error)
}

// Codec combines both directions. Brotli only ever satisfies Decompressor.
type Codec interface {
	Compressor
	Decompressor
}

var builtinCodecs = map[Algorithm]Codec{
	None:  NoOpCodec{},
	Zstd:  ZstdCodec{},
	S2:    S2Codec{},
	LZ4:   LZ4Codec{},
	BZip2: BZip2Codec{},
}

// GetCodec returns the registered Codec for algo. Brotli is intentionally
// absent here since it implements Decompressor only; use BrotliDecoder
// directly for that direction.
func GetCodec(algo Algorithm) (Codec, error) {
	c, ok := builtinCodecs[algo]
	if !ok {
		return nil, fmt.Errorf("compress: %w: %s", errs.ErrUnknownCompression, algo)
	}
	return c, nil
}
