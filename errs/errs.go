// Package errs defines the typed error surface for the smile codec:
// sentinel errors callers can match with errors.Is, and the two wrapper
// types — EncodeError and DecodeError — every public entry point returns.
package errs

import (
	"errors"
	"fmt"
)

// Sentinel errors. All decode failures and all encode failures resolve to
// one of these; EncodeError/DecodeError wrap them with the call-specific
// detail.
var (
	ErrUnexpectedEOF          = errors.New("smile: unexpected end of input")
	ErrInvalidHeader          = errors.New("smile: invalid document header")
	ErrUnsupportedVersion     = errors.New("smile: unsupported SMILE version")
	ErrReservedToken          = errors.New("smile: reserved token byte")
	ErrUnknownToken           = errors.New("smile: unrecognized token byte")
	ErrBackReferenceOutOfRange = errors.New("smile: shared-string back-reference out of range")
	ErrMissingTerminator      = errors.New("smile: missing end-of-string terminator (0xFC)")
	ErrUnsupportedFeature     = errors.New("smile: feature not enabled by document header")
	ErrMaxDepthExceeded       = errors.New("smile: maximum nesting depth exceeded")
	ErrVarintTooLong          = errors.New("smile: VarInt did not terminate within 10 bytes")
	ErrUnbalancedContainer    = errors.New("smile: mismatched START/END container call")
	ErrUnexpectedToken        = errors.New("smile: token not valid in current context")
	ErrInstancePoisoned       = errors.New("smile: reader or writer already failed")

	ErrCyclicValue         = errors.New("smile: cyclic value graph")
	ErrUnsupportedType     = errors.New("smile: unsupported Go value type")
	ErrUnstringifiableKey  = errors.New("smile: object key cannot be stringified")
	ErrStringTooLong       = errors.New("smile: string exceeds maximum encodable length")

	ErrUnknownCompression = errors.New("smile: unknown compression algorithm")
	ErrInvalidOption      = errors.New("smile: invalid option value")
)

// EncodeError reports a failure to encode a Go value as SMILE. It always
// wraps one of the Err* sentinels above so callers can use errors.Is.
type EncodeError struct {
	Err     error
	Context string // optional, e.g. a field path ("obj.foo[3]")
}

func (e *EncodeError) Error() string {
	if e.Context == "" {
		return fmt.Sprintf("smile encode: %v", e.Err)
	}
	return fmt.Sprintf("smile encode: %s: %v", e.Context, e.Err)
}

func (e *EncodeError) Unwrap() error { return e.Err }

// NewEncodeError wraps err, optionally annotated with a context string.
func NewEncodeError(err error, context string) *EncodeError {
	return &EncodeError{Err: err, Context: context}
}

// DecodeError reports a failure to decode a SMILE byte stream. Partial, if
// non-nil, is the best-effort value tree decoded before the failure; it is
// diagnostic only and must never be treated as a valid decode result.
type DecodeError struct {
	Err     error
	Partial any
	Offset  int
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("smile decode: %v (at byte offset %d)", e.Err, e.Offset)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// NewDecodeError wraps err with the byte offset at which it occurred and
// whatever partial value the caller has managed to assemble so far.
func NewDecodeError(err error, offset int, partial any) *DecodeError {
	return &DecodeError{Err: err, Partial: partial, Offset: offset}
}
