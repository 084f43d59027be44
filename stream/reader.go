package stream

import (
	"io"

	"github.com/jhosmer/gosmile/reader"
	"github.com/jhosmer/gosmile/value"
)

// Reader decodes a sequence of SMILE documents previously framed by
// Writer. The entire underlying io.Reader is buffered up front, since
// package reader operates on an in-memory byte slice; this matches the
// teacher's own blob decoders, which take a fully-read byte slice rather
// than a streaming source.
type Reader struct {
	dec *reader.Reader
	buf []byte
}

// NewReader reads r to completion and prepares to decode the SMILE
// documents it contains.
func NewReader(r io.Reader, opts ...reader.Option) (*Reader, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	dec, err := reader.New(data, opts...)
	if err != nil {
		return nil, err
	}
	return &Reader{dec: dec, buf: data}, nil
}

// ReadDocument decodes the next document as a plain Go value (see
// value.DecodeValue). It returns io.EOF once every document has been
// consumed.
func (sr *Reader) ReadDocument() (any, error) {
	return sr.readDocument(false)
}

// ReadOrderedDocument is like ReadDocument but decodes objects into
// *value.Object instead of map[string]any, preserving field order.
func (sr *Reader) ReadOrderedDocument() (any, error) {
	return sr.readDocument(true)
}

func (sr *Reader) readDocument(ordered bool) (any, error) {
	if sr.dec.Offset() >= len(sr.buf) {
		return nil, io.EOF
	}

	var (
		v   any
		err error
	)
	if ordered {
		v, err = value.DecodeObject(sr.dec)
	} else {
		v, err = value.DecodeValue(sr.dec)
	}
	if err != nil {
		return nil, err
	}

	ev, err := sr.dec.Next()
	if err != nil {
		return nil, err
	}
	if ev.Kind == reader.EndOfContent {
		if err := sr.dec.NextDocument(); err != nil {
			return nil, err
		}
	}

	return v, nil
}
