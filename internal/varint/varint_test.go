package varint

import (
	"math"
	"testing"

	"github.com/jhosmer/gosmile/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnsignedRoundTrip(t *testing.T) {
	cases := []uint64{0, 1, 63, 64, 65, 127, 128, 8191, 8192, 1 << 20, 1 << 31, math.MaxUint32, math.MaxUint64}
	for _, n := range cases {
		buf := AppendUnsigned(nil, n)
		got, consumed, err := ReadUnsigned(buf)
		require.NoError(t, err)
		assert.Equal(t, n, got, "value %d", n)
		assert.Equal(t, len(buf), consumed)
	}
}

func TestSingleByteForValuesUnder64(t *testing.T) {
	for n := uint64(0); n < 64; n++ {
		buf := AppendUnsigned(nil, n)
		assert.Len(t, buf, 1, "value %d should encode in one byte", n)
		assert.Equal(t, byte(0x80|n), buf[0])
	}
}

func TestLenMatchesAppendUnsigned(t *testing.T) {
	cases := []uint64{0, 63, 64, 8191, 1 << 31, math.MaxUint64}
	for _, n := range cases {
		buf := AppendUnsigned(nil, n)
		assert.Equal(t, len(buf), Len(n))
	}
}

func TestSignedRoundTrip(t *testing.T) {
	cases := []int64{0, 1, -1, 15, -16, 1000, -1000, math.MaxInt32, math.MinInt32, math.MaxInt64, math.MinInt64}
	for _, n := range cases {
		buf := AppendSigned(nil, n)
		got, _, err := ReadSigned(buf)
		require.NoError(t, err)
		assert.Equal(t, n, got)
	}
}

func TestReadUnsignedUnexpectedEOF(t *testing.T) {
	// A continuation byte (high bit clear) with nothing following.
	_, _, err := ReadUnsigned([]byte{0x01})
	assert.ErrorIs(t, err, errs.ErrUnexpectedEOF)
}

func TestReadUnsignedTooLong(t *testing.T) {
	buf := make([]byte, 11) // all continuation bytes, never terminates
	_, _, err := ReadUnsigned(buf)
	assert.Error(t, err)
}

func TestAppendUnsignedMultiByteMatchesReferenceShape(t *testing.T) {
	// 8192 = 0x2000. low6 = 0, rest = 8192>>6 = 128 = 0x80, which needs a
	// second 7-bit group: group1 = 128&0x7F=0, rest>>=7 => 1, group2 = 1.
	// Expect bytes: [0x01, 0x00, 0x80|0] = 3 bytes: most-significant group
	// first, then the next group, then the terminator.
	buf := AppendUnsigned(nil, 8192)
	assert.Equal(t, []byte{0x01, 0x00, 0x80}, buf)
}
