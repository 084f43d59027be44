package writer

import (
	"github.com/jhosmer/gosmile/errs"
	"github.com/jhosmer/gosmile/internal/bitutil"
	"github.com/jhosmer/gosmile/internal/varint"
	"github.com/jhosmer/gosmile/token"
)

// WriteBinary7Bit writes data using the 7-bit-safe encoding, portable
// regardless of the document's raw-binary header bit.
func (w *Writer) WriteBinary7Bit(data []byte) error {
	if err := w.checkAlive(); err != nil {
		return err
	}

	packed := bitutil.PackSevenBit(data)

	w.buf.WriteByte(token.Binary7Bit) //nolint:errcheck
	w.buf.B = varint.AppendUnsigned(w.buf.B, uint64(len(data)))
	w.buf.MustWrite(packed)

	return nil
}

// WriteBinaryRaw writes data as-is, with no 7-bit repacking. Requires the
// document header to have advertised raw-binary support; otherwise it
// poisons the Writer with errs.ErrUnsupportedFeature.
func (w *Writer) WriteBinaryRaw(data []byte) error {
	if err := w.checkAlive(); err != nil {
		return err
	}
	if w.Raw7Bit {
		return w.fail(errs.NewEncodeError(errs.ErrUnsupportedFeature, "WriteBinaryRaw: header did not advertise raw binary"))
	}

	w.buf.WriteByte(token.BinaryRaw) //nolint:errcheck
	w.buf.B = varint.AppendUnsigned(w.buf.B, uint64(len(data)))
	w.buf.MustWrite(data)

	return nil
}
