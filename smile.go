// Package smile is the package-level facade over writer, reader, and value:
// Encode/Decode (and their encoding/json-shaped aliases Marshal/Unmarshal)
// turn a Go value into a complete SMILE document and back in one call, for
// callers who don't need the lower-level token-at-a-time APIs.
package smile

import (
	"github.com/jhosmer/gosmile/reader"
	"github.com/jhosmer/gosmile/value"
	"github.com/jhosmer/gosmile/writer"
)

// EncodeOption configures Encode/Marshal. It is the same option type
// writer.New accepts.
type EncodeOption = writer.Option

// DecodeOption configures Decode/Unmarshal/DecodeObject. It is the same
// option type reader.New accepts.
type DecodeOption = reader.Option

// Re-exported so callers can reach for smile.With* without also importing
// the writer/reader packages directly.
var (
	WithHeader       = writer.WithHeader
	WithEndMarker    = writer.WithEndMarker
	WithSharedNames  = writer.WithSharedNames
	WithSharedValues = writer.WithSharedValues
	WithRaw7Bit      = writer.WithRaw7Bit
	WithMaxDepth     = writer.WithMaxDepth

	WithExpectHeader          = reader.WithExpectHeader
	WithHeaderlessSharedNames = reader.WithHeaderlessSharedNames
)

// Encode returns v as a complete SMILE document.
func Encode(v any, opts ...EncodeOption) ([]byte, error) {
	w, err := writer.New(opts...)
	if err != nil {
		return nil, err
	}
	defer w.Release()

	if err := value.EncodeValue(w, v); err != nil {
		return nil, err
	}
	if w.WriteEnd {
		if err := w.WriteEndMarker(); err != nil {
			return nil, err
		}
	}
	if err := w.Err(); err != nil {
		return nil, err
	}

	out := make([]byte, len(w.Bytes()))
	copy(out, w.Bytes())
	return out, nil
}

// Decode parses buf as a single SMILE document and returns it as a plain
// Go value (map[string]any for objects; see value.DecodeValue for the
// full type mapping).
func Decode(buf []byte, opts ...DecodeOption) (any, error) {
	r, err := reader.New(buf, opts...)
	if err != nil {
		return nil, err
	}
	return value.DecodeValue(r)
}

// DecodeObject is like Decode, but objects decode to *value.Object,
// preserving field order.
func DecodeObject(buf []byte, opts ...DecodeOption) (any, error) {
	r, err := reader.New(buf, opts...)
	if err != nil {
		return nil, err
	}
	return value.DecodeObject(r)
}

// Marshal is an encoding/json-shaped alias for Encode.
func Marshal(v any, opts ...EncodeOption) ([]byte, error) { return Encode(v, opts...) }

// Unmarshal is an encoding/json-shaped alias for Decode, returning the
// decoded value through dst the way encoding/json.Unmarshal does via a
// pointer. dst must be a non-nil *any.
func Unmarshal(buf []byte, dst *any, opts ...DecodeOption) error {
	v, err := Decode(buf, opts...)
	if err != nil {
		return err
	}
	*dst = v
	return nil
}
