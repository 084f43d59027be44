package stream

import (
	"io"

	"github.com/jhosmer/gosmile/value"
	"github.com/jhosmer/gosmile/writer"
)

// Writer appends a sequence of complete SMILE documents to an underlying
// io.Writer, each framed with its own header and trailing 0xFF marker so a
// Reader on the other end can tell where one document ends and the next
// begins. It reuses a single internal token writer.Writer across
// documents, so it is not safe for concurrent use.
type Writer struct {
	dst io.Writer
	enc *writer.Writer
	n   int
}

// NewWriter creates a stream Writer. opts configure every document's token
// writer identically (shared-string settings, max depth, and so on); the
// header option is always honored per document regardless of what opts
// says, since a stream document without a header cannot be distinguished
// from the next one.
func NewWriter(dst io.Writer, opts ...writer.Option) (*Writer, error) {
	opts = append(append([]writer.Option{}, opts...), writer.WithHeader(true))
	enc, err := writer.New(opts...)
	if err != nil {
		return nil, err
	}
	return &Writer{dst: dst, enc: enc}, nil
}

// WriteDocument encodes v as one complete, self-contained SMILE document
// and appends it to the underlying writer.
func (sw *Writer) WriteDocument(v any) error {
	if sw.n > 0 {
		sw.enc.Reset()
		if err := sw.enc.WriteHeader(); err != nil {
			return err
		}
	}

	if err := value.EncodeValue(sw.enc, v); err != nil {
		return err
	}
	if err := sw.enc.WriteEndMarker(); err != nil {
		return err
	}
	if err := sw.enc.Err(); err != nil {
		return err
	}

	if _, err := sw.dst.Write(sw.enc.Bytes()); err != nil {
		return err
	}
	sw.n++
	return nil
}

// DocumentCount returns how many documents have been written so far.
func (sw *Writer) DocumentCount() int { return sw.n }

// Close releases the Writer's internal buffer back to the shared pool.
// The Writer must not be used again afterwards.
func (sw *Writer) Close() error {
	sw.enc.Release()
	return nil
}
