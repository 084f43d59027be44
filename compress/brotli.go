package compress

import (
	"bytes"
	"fmt"
	"io"

	"github.com/dsnet/compress/brotli"
)

// BrotliDecoder implements Decompressor only: this package reads
// brotli-compressed payloads produced by another implementation but never
// writes them, since dsnet/compress ships a decoder only.
type BrotliDecoder struct{}

var _ Decompressor = BrotliDecoder{}

func (BrotliDecoder) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	r := brotli.NewReader(bytes.NewReader(data))

	out, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("compress: brotli decompress: %w", err)
	}

	return out, nil
}
