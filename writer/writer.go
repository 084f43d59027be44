// Package writer implements the SMILE token writer: the low-level API that
// emits exactly one token (plus its payload) per call, maintaining the two
// shared-string tables and a container-balance stack as it goes. It has no
// knowledge of Go's value representation — that translation is package
// value's job.
package writer

import (
	"github.com/jhosmer/gosmile/errs"
	"github.com/jhosmer/gosmile/internal/options"
	"github.com/jhosmer/gosmile/internal/pool"
	"github.com/jhosmer/gosmile/internal/sharedstring"
	"github.com/jhosmer/gosmile/token"
)

// Writer emits SMILE tokens to an internal pooled buffer. It is not safe
// for concurrent use; create one Writer per goroutine, per document.
//
// A Writer that encounters an error (an unbalanced End call, or an invalid
// value passed to a write method) is poisoned: every subsequent call
// returns the same error without touching the buffer further.
type Writer struct {
	*Config

	buf    *pool.ByteBuffer
	names  *sharedstring.WriterTable
	values *sharedstring.WriterTable
	stack  containerStack
	err    error
}

// New creates a Writer and, unless WithHeader(false) was passed, writes the
// document header immediately.
func New(opts ...Option) (*Writer, error) {
	cfg := DefaultConfig()
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, errs.NewEncodeError(err, "writer.New")
	}

	w := &Writer{
		Config: cfg,
		buf:    pool.GetDocumentBuffer(),
		names:  sharedstring.NewWriterTable(),
		values: sharedstring.NewWriterTable(),
	}

	if cfg.WriteHeader {
		if err := w.WriteHeader(); err != nil {
			return nil, err
		}
	}

	return w, nil
}

// Bytes returns the bytes written so far. The slice is valid until the next
// call to Reset or Release.
func (w *Writer) Bytes() []byte { return w.buf.Bytes() }

// Reset clears the Writer's buffer and both shared-string tables, making it
// ready to encode a new document. It does not re-write the header; call
// WriteHeader explicitly if the new document needs one.
func (w *Writer) Reset() {
	w.buf.Reset()
	w.names.Reset()
	w.values.Reset()
	w.stack = containerStack{}
	w.err = nil
}

// Release returns the Writer's internal buffer to the shared pool. The
// Writer must not be used again afterwards.
func (w *Writer) Release() {
	pool.PutDocumentBuffer(w.buf)
	w.buf = nil
}

// Err returns the error that poisoned this Writer, if any.
func (w *Writer) Err() error { return w.err }

func (w *Writer) fail(err error) error {
	if w.err == nil {
		w.err = err
	}
	return w.err
}

// Fail poisons the Writer with err, for callers outside this package (such
// as package value) that detect a condition the Writer itself has no way
// to see, e.g. an unsupported host value type.
func (w *Writer) Fail(err error) error { return w.fail(err) }

func (w *Writer) checkAlive() error {
	if w.err != nil {
		return w.err
	}
	return nil
}

// WriteHeader writes the four-byte SMILE document header reflecting the
// Writer's current Raw7Bit/SharedNames/SharedValues settings, and
// reinitializes both shared-string tables (per the spec's Lifecycles
// rule: a header always starts a fresh table scope).
func (w *Writer) WriteHeader() error {
	if err := w.checkAlive(); err != nil {
		return err
	}

	var flags byte = token.HeaderVersion0 << 4
	if w.SharedNames {
		flags |= token.HeaderBitSharedNames
	}
	if w.SharedValues {
		flags |= token.HeaderBitSharedValues
	}
	if !w.Raw7Bit {
		flags |= token.HeaderBitRawBinary
	}

	w.buf.MustWrite([]byte{token.HeaderByte1, token.HeaderByte2, token.HeaderByte3, flags})
	w.names.Reset()
	w.values.Reset()

	return nil
}

// WriteEndMarker writes the optional 0xFF end-of-content framing marker.
func (w *Writer) WriteEndMarker() error {
	if err := w.checkAlive(); err != nil {
		return err
	}
	w.buf.WriteByte(token.EndOfContent) //nolint:errcheck
	return nil
}

// WriteNull writes a null literal.
func (w *Writer) WriteNull() error { return w.writeLiteralByte(token.LiteralNull) }

// WriteBoolean writes a true/false literal.
func (w *Writer) WriteBoolean(b bool) error {
	if b {
		return w.writeLiteralByte(token.LiteralTrue)
	}
	return w.writeLiteralByte(token.LiteralFalse)
}

func (w *Writer) writeLiteralByte(b byte) error {
	if err := w.checkAlive(); err != nil {
		return err
	}
	w.buf.WriteByte(b) //nolint:errcheck
	return nil
}

// WriteStartArray opens a new array container.
func (w *Writer) WriteStartArray() error {
	if err := w.checkAlive(); err != nil {
		return err
	}
	if w.stack.depth()+1 > w.MaxDepth {
		return w.fail(errs.NewEncodeError(errs.ErrMaxDepthExceeded, "WriteStartArray"))
	}
	w.buf.WriteByte(token.StartArray) //nolint:errcheck
	w.stack.pushArray()
	return nil
}

// WriteEndArray closes the most recently opened array. It is an error to
// call this when the innermost open container is an object, or when no
// container is open.
func (w *Writer) WriteEndArray() error {
	if err := w.checkAlive(); err != nil {
		return err
	}
	if !w.stack.popArray() {
		return w.fail(errs.NewEncodeError(errs.ErrUnbalancedContainer, "WriteEndArray"))
	}
	w.buf.WriteByte(token.EndArray) //nolint:errcheck
	return nil
}

// WriteStartObject opens a new object container.
func (w *Writer) WriteStartObject() error {
	if err := w.checkAlive(); err != nil {
		return err
	}
	if w.stack.depth()+1 > w.MaxDepth {
		return w.fail(errs.NewEncodeError(errs.ErrMaxDepthExceeded, "WriteStartObject"))
	}
	w.buf.WriteByte(token.StartObject) //nolint:errcheck
	w.stack.pushObject()
	return nil
}

// WriteEndObject closes the most recently opened object.
func (w *Writer) WriteEndObject() error {
	if err := w.checkAlive(); err != nil {
		return err
	}
	if !w.stack.popObject() {
		return w.fail(errs.NewEncodeError(errs.ErrUnbalancedContainer, "WriteEndObject"))
	}
	w.buf.WriteByte(token.EndObject) //nolint:errcheck
	return nil
}

// Depth returns the current container nesting depth (0 at the document
// root).
func (w *Writer) Depth() int { return w.stack.depth() }
