package writer

import (
	"math"
	"math/big"

	"github.com/jhosmer/gosmile/errs"
	"github.com/jhosmer/gosmile/internal/bitutil"
	"github.com/jhosmer/gosmile/internal/varint"
	"github.com/jhosmer/gosmile/token"
)

// WriteInt64 writes a signed integer, choosing the smallest of the three
// integer forms (small-int, int32, int64) that losslessly represents n.
// SMILE encoders are free to always use the widest form; picking the
// narrowest one here is a pure size optimization decoders never observe.
func (w *Writer) WriteInt64(n int64) error {
	if err := w.checkAlive(); err != nil {
		return err
	}

	if n >= -16 && n <= 15 {
		z := bitutil.ZigZagEncode(n)
		w.buf.WriteByte(token.SmallIntBase | byte(z)) //nolint:errcheck
		return nil
	}

	if n >= int64(int32MinValue) && n <= int64(int32MaxValue) {
		w.buf.WriteByte(token.Int32) //nolint:errcheck
		w.buf.B = varint.AppendSigned(w.buf.B, n)
		return nil
	}

	w.buf.WriteByte(token.Int64) //nolint:errcheck
	w.buf.B = varint.AppendSigned(w.buf.B, n)

	return nil
}

const (
	int32MinValue = -2147483648
	int32MaxValue = 2147483647
)

// WriteInt32 is a convenience wrapper for the common case of a value that
// is already a native int32.
func (w *Writer) WriteInt32(n int32) error { return w.WriteInt64(int64(n)) }

// WriteBigInt writes an arbitrary-precision integer using the two's
// complement magnitude encoding, 7-bit packed.
func (w *Writer) WriteBigInt(n *big.Int) error {
	if err := w.checkAlive(); err != nil {
		return err
	}
	if n == nil {
		return w.WriteNull()
	}

	magnitude := bitutil.TwosComplementBytes(n)
	packed := bitutil.PackSevenBit(magnitude)

	w.buf.WriteByte(token.BigInteger) //nolint:errcheck
	w.buf.B = varint.AppendUnsigned(w.buf.B, uint64(len(magnitude)))
	w.buf.MustWrite(packed)

	return nil
}

// WriteFloat32 writes f using the 5-byte 7-bit-split encoding.
func (w *Writer) WriteFloat32(f float32) error {
	if err := w.checkAlive(); err != nil {
		return err
	}

	bits := bitutil.Float32ToBits(f)
	w.buf.WriteByte(token.Float32) //nolint:errcheck
	for i := 0; i < 5; i++ {
		w.buf.WriteByte(byte(bits & 0x7F)) //nolint:errcheck
		bits >>= 7
	}

	return nil
}

// WriteFloat64 writes f using the 9-byte 7-bit-split encoding. Non-finite
// values (NaN, ±Inf) always go through this path since they have no
// meaningful float32-narrowing.
func (w *Writer) WriteFloat64(f float64) error {
	if err := w.checkAlive(); err != nil {
		return err
	}

	bits := bitutil.Float64ToBits(f)
	w.buf.WriteByte(token.Float64) //nolint:errcheck
	for i := 0; i < 9; i++ {
		w.buf.WriteByte(byte(bits & 0x7F)) //nolint:errcheck
		bits >>= 7
	}

	return nil
}

// WriteFloat writes non-finite values (NaN, ±Inf) as Float64, and a finite
// f as Float32 unless narrowing it would overflow to an infinity, in which
// case it falls back to Float64. Narrowing is attempted even when it loses
// mantissa precision; a finite double like 4.20 is written as Float32
// despite not being exactly representable there, matching the reference
// encoder's behavior of only escalating on range overflow, never on
// precision loss.
func (w *Writer) WriteFloat(f float64) error {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return w.WriteFloat64(f)
	}
	f32 := float32(f)
	if math.IsInf(float64(f32), 0) && !math.IsInf(f, 0) {
		return w.WriteFloat64(f)
	}
	return w.WriteFloat32(f32)
}

// WriteBigDecimal writes an arbitrary-precision decimal as
// unscaled * 10^-scale, matching java.math.BigDecimal's (unscaledValue,
// scale) representation.
func (w *Writer) WriteBigDecimal(unscaled *big.Int, scale int32) error {
	if err := w.checkAlive(); err != nil {
		return err
	}
	if unscaled == nil {
		return w.fail(errs.NewEncodeError(errs.ErrUnsupportedType, "WriteBigDecimal: nil unscaled value"))
	}

	magnitude := bitutil.TwosComplementBytes(unscaled)
	packed := bitutil.PackSevenBit(magnitude)

	w.buf.WriteByte(token.BigDecimal) //nolint:errcheck
	w.buf.B = varint.AppendSigned(w.buf.B, int64(scale))
	w.buf.B = varint.AppendUnsigned(w.buf.B, uint64(len(magnitude)))
	w.buf.MustWrite(packed)

	return nil
}
