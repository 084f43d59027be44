package writer

import (
	"github.com/jhosmer/gosmile/token"
)

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= 0x80 {
			return false
		}
	}
	return true
}

// WriteString writes s in value context: as a shared back-reference if it
// was already seen and is eligible, or as a literal (short/medium/tiny/long
// form chosen by byte length and ASCII-ness) otherwise. Eligible literals
// are inserted into the value table for future back-references.
func (w *Writer) WriteString(s string) error {
	if err := w.checkAlive(); err != nil {
		return err
	}

	if s == "" {
		w.buf.WriteByte(token.EmptyString) //nolint:errcheck
		return nil
	}

	eligible := w.SharedValues && sharedEligible(s)
	if eligible {
		if idx, ok := w.values.Lookup(s); ok {
			w.writeSharedValueRef(idx)
			return nil
		}
	}

	if err := w.writeStringLiteral(s); err != nil {
		return err
	}

	if eligible {
		w.values.Insert(s)
	}

	return nil
}

func (w *Writer) writeSharedValueRef(idx int) {
	if idx <= token.SharedValueShortMax-token.SharedValueShortBase {
		w.buf.WriteByte(byte(token.SharedValueShortBase + idx)) //nolint:errcheck
		return
	}
	b := byte(token.SharedValueLongBase) | byte((idx>>8)&0x03)
	w.buf.WriteByte(b)                //nolint:errcheck
	w.buf.WriteByte(byte(idx & 0xFF)) //nolint:errcheck
}

func (w *Writer) writeStringLiteral(s string) error {
	n := len(s)
	ascii := isASCII(s)

	switch {
	case ascii && n <= 32:
		w.buf.WriteByte(byte(token.ShortASCIIBase + n - 1)) //nolint:errcheck
		w.buf.MustWrite([]byte(s))
	case ascii && n <= 64:
		w.buf.WriteByte(byte(token.MediumASCIIBase + n - 33)) //nolint:errcheck
		w.buf.MustWrite([]byte(s))
	case !ascii && n <= 33:
		w.buf.WriteByte(byte(token.TinyUnicodeBase + n - 2)) //nolint:errcheck
		w.buf.MustWrite([]byte(s))
	case !ascii && n <= 64:
		w.buf.WriteByte(byte(token.ShortUnicodeBase + n - 34)) //nolint:errcheck
		w.buf.MustWrite([]byte(s))
	case ascii:
		w.buf.WriteByte(token.LongASCII) //nolint:errcheck
		w.buf.MustWrite([]byte(s))
		w.buf.WriteByte(token.EndOfString) //nolint:errcheck
	default:
		w.buf.WriteByte(token.LongUnicode) //nolint:errcheck
		w.buf.MustWrite([]byte(s))
		w.buf.WriteByte(token.EndOfString) //nolint:errcheck
	}

	return nil
}

// sharedEligible is the value-context eligibility check: short-form
// literals only, since a string requiring the long form is never worth
// back-referencing at the writer's discretion and the spec does not
// require it.
func sharedEligible(s string) bool {
	return len(s) <= token.MaxShortStringBytes
}

// WriteFieldName writes s as an object member name: a shared back-reference
// when eligible and already seen, or a literal otherwise (short ASCII,
// short Unicode, or the long terminated form for names exceeding the short
// Unicode ceiling).
func (w *Writer) WriteFieldName(s string) error {
	if err := w.checkAlive(); err != nil {
		return err
	}

	if s == "" {
		w.buf.WriteByte(token.KeyEmptyString) //nolint:errcheck
		return nil
	}

	eligible := w.SharedNames && sharedEligible(s)
	if eligible {
		if idx, ok := w.names.Lookup(s); ok {
			w.writeSharedNameRef(idx)
			return nil
		}
	}

	if err := w.writeFieldNameLiteral(s); err != nil {
		return err
	}

	if eligible {
		w.names.Insert(s)
	}

	return nil
}

func (w *Writer) writeSharedNameRef(idx int) {
	if idx < 64 {
		w.buf.WriteByte(byte(token.KeySharedShortBase + idx)) //nolint:errcheck
		return
	}
	b := byte(token.KeySharedLongBase) | byte((idx>>8)&0x03)
	w.buf.WriteByte(b)                //nolint:errcheck
	w.buf.WriteByte(byte(idx & 0xFF)) //nolint:errcheck
}

func (w *Writer) writeFieldNameLiteral(s string) error {
	n := len(s)
	ascii := isASCII(s)

	switch {
	case ascii && n <= 64:
		w.buf.WriteByte(byte(token.KeyShortASCIIBase + n - 1)) //nolint:errcheck
		w.buf.MustWrite([]byte(s))
	case !ascii && n <= token.MaxShortNameUnicodeBytes:
		w.buf.WriteByte(byte(token.KeyShortUnicodeBase + n - 2)) //nolint:errcheck
		w.buf.MustWrite([]byte(s))
	default:
		w.buf.WriteByte(token.KeyLongLiteral) //nolint:errcheck
		w.buf.MustWrite([]byte(s))
		w.buf.WriteByte(token.EndOfString) //nolint:errcheck
	}

	return nil
}
