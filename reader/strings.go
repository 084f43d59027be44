package reader

import (
	"github.com/jhosmer/gosmile/errs"
	"github.com/jhosmer/gosmile/token"
)

// readShortString decodes one of the four short value-string forms
// (short/medium ASCII, tiny/short Unicode), given the already-consumed
// token byte b.
func (r *Reader) readShortString(b byte) (string, error) {
	var n int
	switch {
	case b <= token.ShortASCIIEnd:
		n = int(b&0x1F) + 1
	case b <= token.MediumASCIIEnd:
		n = int(b&0x1F) + 33
	case b <= token.TinyUnicodeEnd:
		n = int(b&0x1F) + 2
	default:
		n = int(b&0x1F) + 34
	}

	raw, ok := r.readN(n)
	if !ok {
		return "", r.fail(errs.ErrUnexpectedEOF)
	}
	return string(raw), nil
}

// readTerminatedString reads UTF-8 bytes up to (and consuming) the
// EndOfString terminator, used by long string/name literal forms.
func (r *Reader) readTerminatedString() (string, error) {
	start := r.pos
	for {
		b, ok := r.readByte()
		if !ok {
			return "", r.fail(errs.ErrMissingTerminator)
		}
		if b == token.EndOfString {
			return string(r.buf[start : r.pos-1]), nil
		}
	}
}
