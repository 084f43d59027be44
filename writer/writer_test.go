package writer

import (
	"math/big"
	"testing"

	"github.com/jhosmer/gosmile/token"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustWriter(t *testing.T, opts ...Option) *Writer {
	t.Helper()
	w, err := New(opts...)
	require.NoError(t, err)
	return w
}

func TestScenario1SingleElementArray(t *testing.T) {
	w := mustWriter(t)
	require.NoError(t, w.WriteStartArray())
	require.NoError(t, w.WriteInt64(1))
	require.NoError(t, w.WriteEndArray())

	assert.Equal(t, []byte{0x3A, 0x29, 0x0A, 0x03, 0xF8, 0xC2, 0xF9}, w.Bytes())
}

func TestScenario2TwoElementArray(t *testing.T) {
	w := mustWriter(t)
	require.NoError(t, w.WriteStartArray())
	require.NoError(t, w.WriteInt64(1))
	require.NoError(t, w.WriteInt64(2))
	require.NoError(t, w.WriteEndArray())

	assert.Equal(t, []byte{0x3A, 0x29, 0x0A, 0x03, 0xF8, 0xC2, 0xC4, 0xF9}, w.Bytes())
}

func TestScenario3NestedObjectInArray(t *testing.T) {
	w := mustWriter(t)
	require.NoError(t, w.WriteStartArray())
	require.NoError(t, w.WriteInt64(1))
	require.NoError(t, w.WriteInt64(2))
	require.NoError(t, w.WriteStartObject())
	require.NoError(t, w.WriteFieldName("c"))
	require.NoError(t, w.WriteInt64(3))
	require.NoError(t, w.WriteEndObject())
	require.NoError(t, w.WriteEndArray())

	want := []byte{0x3A, 0x29, 0x0A, 0x03, 0xF8, 0xC2, 0xC4, 0xFA, 0x80, 0x63, 0xC6, 0xFB, 0xF9}
	assert.Equal(t, want, w.Bytes())
}

func TestScenario4SimpleObject(t *testing.T) {
	w := mustWriter(t)
	require.NoError(t, w.WriteStartObject())
	require.NoError(t, w.WriteFieldName("a"))
	require.NoError(t, w.WriteInt64(1))
	require.NoError(t, w.WriteEndObject())

	want := []byte{0x3A, 0x29, 0x0A, 0x03, 0xFA, 0x80, 0x61, 0xC2, 0xFB}
	assert.Equal(t, want, w.Bytes())
}

// TestScenario5MixedObject writes fields in the wire order the reference
// encoder used (a, c, b, e, d) rather than the input's declared order
// (a, b, c, d, e); this package's Writer preserves caller-supplied field
// order rather than re-deriving it, so the test supplies that order
// directly to reproduce the golden bytes.
func TestScenario5MixedObject(t *testing.T) {
	w := mustWriter(t)
	require.NoError(t, w.WriteStartObject())

	require.NoError(t, w.WriteFieldName("a"))
	require.NoError(t, w.WriteString("1"))

	require.NoError(t, w.WriteFieldName("c"))
	require.NoError(t, w.WriteStartArray())
	require.NoError(t, w.WriteInt64(3))
	require.NoError(t, w.WriteEndArray())

	require.NoError(t, w.WriteFieldName("b"))
	require.NoError(t, w.WriteInt64(2))

	require.NoError(t, w.WriteFieldName("e"))
	require.NoError(t, w.WriteFloat(4.20))

	require.NoError(t, w.WriteFieldName("d"))
	require.NoError(t, w.WriteInt64(-1))

	require.NoError(t, w.WriteEndObject())

	want := []byte{
		0x3A, 0x29, 0x0A, 0x03,
		0xFA,
		0x80, 0x61, 0x40, 0x31,
		0x80, 0x63, 0xF8, 0xC6, 0xF9,
		0x80, 0x62, 0xC4,
		0x80, 0x65, 0x28, 0x66, 0x4C, 0x19, 0x04, 0x04,
		0x80, 0x64, 0xC1,
		0xFB,
	}
	assert.Equal(t, want, w.Bytes())
}

func TestScenario6DeeplyNestedObjects(t *testing.T) {
	w := mustWriter(t)
	require.NoError(t, w.WriteStartObject())
	require.NoError(t, w.WriteFieldName("a"))
	require.NoError(t, w.WriteStartObject())
	require.NoError(t, w.WriteFieldName("b"))
	require.NoError(t, w.WriteStartObject())
	require.NoError(t, w.WriteFieldName("c"))
	require.NoError(t, w.WriteStartObject())
	require.NoError(t, w.WriteFieldName("d"))
	require.NoError(t, w.WriteStartArray())
	require.NoError(t, w.WriteString("e"))
	require.NoError(t, w.WriteEndArray())
	require.NoError(t, w.WriteEndObject())
	require.NoError(t, w.WriteEndObject())
	require.NoError(t, w.WriteEndObject())
	require.NoError(t, w.WriteEndObject())

	want := []byte{
		0x3A, 0x29, 0x0A, 0x03,
		0xFA, 0x80, 0x61,
		0xFA, 0x80, 0x62,
		0xFA, 0x80, 0x63,
		0xFA, 0x80, 0x64,
		0xF8, 0x40, 0x65, 0xF9,
		0xFB, 0xFB, 0xFB, 0xFB,
	}
	assert.Equal(t, want, w.Bytes())
}

func TestWriteBooleanAndNull(t *testing.T) {
	w := mustWriter(t, WithHeader(false))
	require.NoError(t, w.WriteNull())
	require.NoError(t, w.WriteBoolean(true))
	require.NoError(t, w.WriteBoolean(false))

	assert.Equal(t, []byte{0x21, 0x23, 0x22}, w.Bytes())
}

func TestUnbalancedEndArrayPoisonsWriter(t *testing.T) {
	w := mustWriter(t, WithHeader(false))
	err := w.WriteEndArray()
	require.Error(t, err)
	assert.Same(t, err, w.Err())

	err2 := w.WriteNull()
	assert.Same(t, err, err2)
}

func TestMaxDepthExceeded(t *testing.T) {
	w := mustWriter(t, WithHeader(false), WithMaxDepth(1))
	require.NoError(t, w.WriteStartArray())
	err := w.WriteStartArray()
	require.Error(t, err)
}

func TestWithMaxDepthRejectsNonPositive(t *testing.T) {
	_, err := New(WithMaxDepth(0))
	require.Error(t, err)
}

func TestSmallIntBoundaries(t *testing.T) {
	w := mustWriter(t, WithHeader(false))
	require.NoError(t, w.WriteInt64(-16))
	require.NoError(t, w.WriteInt64(15))
	require.NoError(t, w.WriteInt64(16))
	require.NoError(t, w.WriteInt64(-17))

	b := w.Bytes()
	assert.Equal(t, byte(0xC0|31), b[0]) // zigzag(-16) = 31
	assert.Equal(t, byte(0xC0|30), b[1]) // zigzag(15) = 30
	assert.Equal(t, byte(token.Int32), b[2])
}

func TestSharedValueBackReference(t *testing.T) {
	w := mustWriter(t, WithHeader(false))
	require.NoError(t, w.WriteString("repeat"))
	require.NoError(t, w.WriteString("repeat"))

	b := w.Bytes()
	// First occurrence: ShortASCIIBase + len-1 = 0x40 + 5, then 6 bytes.
	assert.Equal(t, byte(0x40+5), b[0])
	// Second occurrence: shared short back-ref, index 0 -> byte 0x01.
	assert.Equal(t, byte(0x01), b[len(b)-1])
}

func TestSharedValuesDisabledNeverEmitsBackReference(t *testing.T) {
	w := mustWriter(t, WithHeader(false), WithSharedValues(false))
	require.NoError(t, w.WriteString("repeat"))
	require.NoError(t, w.WriteString("repeat"))

	b := w.Bytes()
	// Both occurrences are full literals; no byte 0x01 shared-ref appears.
	assert.Equal(t, byte(0x40+5), b[0])
	assert.Equal(t, byte(0x40+5), b[7])
}

func TestSharedNameBackReference(t *testing.T) {
	w := mustWriter(t, WithHeader(false))
	require.NoError(t, w.WriteFieldName("name"))
	require.NoError(t, w.WriteFieldName("name"))

	b := w.Bytes()
	assert.Equal(t, byte(0x80+3), b[0]) // short ASCII key literal len 4
	assert.Equal(t, byte(0x40+0), b[len(b)-1]) // shared short key ref index 0
}

func TestWriteBigInt(t *testing.T) {
	w := mustWriter(t, WithHeader(false))
	n := new(big.Int)
	n.SetString("123456789012345678901234567890", 10)
	require.NoError(t, w.WriteBigInt(n))

	b := w.Bytes()
	require.NotEmpty(t, b)
	assert.Equal(t, byte(0x26), b[0])
}

func TestWriteBigDecimal(t *testing.T) {
	w := mustWriter(t, WithHeader(false))
	unscaled := big.NewInt(12345)
	require.NoError(t, w.WriteBigDecimal(unscaled, 2))

	b := w.Bytes()
	require.NotEmpty(t, b)
	assert.Equal(t, byte(0x2A), b[0])
}

func TestWriteFloat64ForOverflow(t *testing.T) {
	w := mustWriter(t, WithHeader(false))
	require.NoError(t, w.WriteFloat(1e300))

	b := w.Bytes()
	assert.Equal(t, byte(0x29), b[0])
}

func TestWriteBinary7Bit(t *testing.T) {
	w := mustWriter(t, WithHeader(false))
	data := []byte{0xFF, 0xFE, 0x00, 0x7F}
	require.NoError(t, w.WriteBinary7Bit(data))

	b := w.Bytes()
	assert.Equal(t, byte(0xE8), b[0])
	for _, x := range b[2:] {
		assert.Zero(t, x&0x80)
	}
}

func TestWriteBinaryRawRequiresHeaderBit(t *testing.T) {
	w := mustWriter(t, WithHeader(false))
	err := w.WriteBinaryRaw([]byte{1, 2, 3})
	require.Error(t, err)

	w2 := mustWriter(t, WithHeader(false), WithRaw7Bit(false))
	require.NoError(t, w2.WriteBinaryRaw([]byte{1, 2, 3}))
}

func TestLongStringLiteralUsesTerminator(t *testing.T) {
	w := mustWriter(t, WithHeader(false))
	s := make([]byte, 100)
	for i := range s {
		s[i] = 'a'
	}
	require.NoError(t, w.WriteString(string(s)))

	b := w.Bytes()
	assert.Equal(t, byte(0xE0), b[0])
	assert.Equal(t, byte(0xFC), b[len(b)-1])
}

func TestEmptyStringAndFieldName(t *testing.T) {
	w := mustWriter(t, WithHeader(false))
	require.NoError(t, w.WriteString(""))
	require.NoError(t, w.WriteFieldName(""))

	assert.Equal(t, []byte{0x20, 0x20}, w.Bytes())
}
