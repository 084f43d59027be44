// Package compress provides an optional compression envelope for SMILE
// Binary payloads.
//
// SMILE's wire format has no compression concept: a Binary token's payload
// is opaque bytes. This package exists so two cooperating endpoints can
// agree to shrink that payload before encoding and grow it back after
// decoding, via value.Binary's Algorithm tag, without changing the wire
// grammar at all — any other conforming SMILE decoder still sees a valid
// binary token, just one it will not itself decompress.
//
// # Algorithms
//
//   - None: pass-through.
//   - Zstd: best compression ratio; pure-Go by default (klauspost/compress/zstd),
//     or the cgo valyala/gozstd implementation under the gozstd build tag.
//   - S2: klauspost's high-throughput LZ4-class format.
//   - LZ4: pierrec/lz4, fast decompression.
//   - BZip2: dsnet/compress/bzip2, read and write.
//   - Brotli: dsnet/compress/brotli, decode-only — for reading payloads
//     produced by another implementation, never for writing.
package compress
