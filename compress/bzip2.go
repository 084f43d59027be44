package compress

import (
	"bytes"
	"fmt"
	"io"

	"github.com/dsnet/compress/bzip2"
)

// BZip2Codec compresses with bzip2. Unlike the other backends, dsnet's
// bzip2 package is a streaming io.Reader/io.WriteCloser pair rather than a
// one-shot buffer API, so both directions here wrap a bytes.Buffer.
type BZip2Codec struct{}

var _ Codec = BZip2Codec{}

func (BZip2Codec) Compress(data []byte) ([]byte, error) {
	var buf bytes.Buffer

	w := bzip2.NewWriter(&buf)
	if _, err := w.Write(data); err != nil {
		return nil, fmt.Errorf("compress: bzip2 compress: %w", err)
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("compress: bzip2 compress: %w", err)
	}

	return buf.Bytes(), nil
}

func (BZip2Codec) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	r, err := bzip2.NewReader(bytes.NewReader(data), nil)
	if err != nil {
		return nil, fmt.Errorf("compress: bzip2 decompress: %w", err)
	}
	defer r.Close()

	out, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("compress: bzip2 decompress: %w", err)
	}

	return out, nil
}
