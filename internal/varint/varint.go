// Package varint implements SMILE's unsigned variable-length integer
// encoding: a sequence of 7-bit groups where the terminating byte is
// distinguished by its high bit and carries only 6 payload bits, not 7.
// This is deliberately not the same layout as encoding/binary's Uvarint
// (which terminates on a byte whose high bit is *clear*, and never
// special-cases the terminator's bit width); SMILE's scheme trades the
// ability to detect "more bytes follow" with a single bit test against a
// byte budget of 6 bits in the last byte instead of 7.
package varint

import (
	"github.com/jhosmer/gosmile/errs"
	"github.com/jhosmer/gosmile/internal/bitutil"
)

// AppendUnsigned appends the VarInt encoding of n to buf and returns the
// extended slice.
func AppendUnsigned(buf []byte, n uint64) []byte {
	// Collect 7-bit groups, most significant non-zero group first, then the
	// terminator carrying the low 6 bits.
	if n < 64 {
		return append(buf, 0x80|byte(n&0x3F))
	}

	// The terminator consumes the low 6 bits; everything above that is
	// split into 7-bit groups, most-significant first.
	rest := n >> 6
	var groups []byte
	for rest > 0 {
		groups = append(groups, byte(rest&0x7F))
		rest >>= 7
	}
	for i := len(groups) - 1; i >= 0; i-- {
		buf = append(buf, groups[i])
	}

	return append(buf, 0x80|byte(n&0x3F))
}

// AppendSigned ZigZag-encodes n and appends its VarInt form to buf.
func AppendSigned(buf []byte, n int64) []byte {
	return AppendUnsigned(buf, bitutil.ZigZagEncode(n))
}

// Len returns the number of bytes AppendUnsigned would emit for n, without
// allocating.
func Len(n uint64) int {
	if n < 64 {
		return 1
	}

	count := 1 // terminator
	rest := n >> 6
	for rest > 0 {
		count++
		rest >>= 7
	}

	return count
}

// ReadUnsigned decodes a VarInt starting at buf[0], returning the value and
// the number of bytes consumed. It fails if the terminator is not found
// within token.MaxVarintBytes bytes or the input is exhausted first.
func ReadUnsigned(buf []byte) (uint64, int, error) {
	var acc uint64

	for i := 0; i < len(buf); i++ {
		if i >= 10 {
			return 0, 0, errs.ErrVarintTooLong
		}

		b := buf[i]
		if b&0x80 == 0 {
			acc = (acc << 7) | uint64(b)
			continue
		}

		acc = (acc << 6) | uint64(b&0x3F)

		return acc, i + 1, nil
	}

	return 0, 0, errs.ErrUnexpectedEOF
}

// ReadSigned decodes a signed VarInt (ZigZag over the unsigned form).
func ReadSigned(buf []byte) (int64, int, error) {
	u, n, err := ReadUnsigned(buf)
	if err != nil {
		return 0, 0, err
	}

	return bitutil.ZigZagDecode(u), n, nil
}
