package value

import (
	"github.com/jhosmer/gosmile/compress"
)

// Binary wraps a byte payload destined for a SMILE binary token, with two
// concerns the wire format itself has no opinion on: whether to prefer the
// raw (0xFD) or 7-bit-packed (0xE8) encoding, and an optional compression
// algorithm applied to the payload before it reaches the writer.
//
// Algorithm is a convenience this library's own encode/decode path
// understands; a SMILE decoder that is not this library sees ordinary
// opaque binary bytes and simply will not decompress them.
type Binary struct {
	Data      []byte
	Raw       bool // true: WriteBinaryRaw; false (default): WriteBinary7Bit
	Algorithm compress.Algorithm
}

// NewBinary wraps data with no compression, using the 7-bit-safe encoding.
func NewBinary(data []byte) Binary {
	return Binary{Data: data}
}

// Compressed wraps data, compressing it with algo before it is written.
// algo must not be compress.Brotli, which this library never writes.
func Compressed(data []byte, algo compress.Algorithm) (Binary, error) {
	if algo == compress.None {
		return Binary{Data: data}, nil
	}
	codec, err := compress.GetCodec(algo)
	if err != nil {
		return Binary{}, err
	}
	out, err := codec.Compress(data)
	if err != nil {
		return Binary{}, err
	}
	return Binary{Data: out, Algorithm: algo}, nil
}

// Decompress returns the payload with Algorithm's decompression applied,
// or the raw payload unchanged if Algorithm is compress.None.
func (b Binary) Decompress() ([]byte, error) {
	if b.Algorithm == compress.None {
		return b.Data, nil
	}
	if b.Algorithm == compress.Brotli {
		return compress.BrotliDecoder{}.Decompress(b.Data)
	}
	codec, err := compress.GetCodec(b.Algorithm)
	if err != nil {
		return nil, err
	}
	return codec.Decompress(b.Data)
}
