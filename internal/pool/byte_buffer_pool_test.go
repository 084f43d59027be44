package pool

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewByteBuffer(t *testing.T) {
	bb := NewByteBuffer(128)

	require.NotNil(t, bb)
	assert.Equal(t, 0, bb.Len())
	assert.Equal(t, 128, bb.Cap())
}

func TestByteBuffer_MustWriteAndBytes(t *testing.T) {
	bb := NewByteBuffer(DocumentBufferDefaultSize)
	bb.MustWrite([]byte{0x3A, 0x29, 0x0A, 0x03})

	assert.Equal(t, []byte{0x3A, 0x29, 0x0A, 0x03}, bb.Bytes())
	assert.Equal(t, 4, bb.Len())
}

func TestByteBuffer_WriteByte(t *testing.T) {
	bb := NewByteBuffer(0)
	require.NoError(t, bb.WriteByte(0xF8))
	require.NoError(t, bb.WriteByte(0xF9))

	assert.Equal(t, []byte{0xF8, 0xF9}, bb.Bytes())
}

func TestByteBuffer_Reset(t *testing.T) {
	bb := NewByteBuffer(DocumentBufferDefaultSize)
	bb.MustWrite([]byte("some token bytes"))
	capBefore := bb.Cap()

	bb.Reset()

	assert.Equal(t, 0, bb.Len())
	assert.Equal(t, capBefore, bb.Cap())
}

func TestByteBuffer_GrowBeyondCapacity(t *testing.T) {
	bb := NewByteBuffer(4)
	bb.MustWrite(make([]byte, 1000))

	assert.Equal(t, 1000, bb.Len())
	assert.GreaterOrEqual(t, bb.Cap(), 1000)
}

func TestByteBuffer_Write(t *testing.T) {
	bb := NewByteBuffer(0)
	n, err := bb.Write([]byte{1, 2, 3})

	require.NoError(t, err)
	assert.Equal(t, 3, n)
	assert.Equal(t, []byte{1, 2, 3}, bb.Bytes())
}

func TestBufferPool_GetPutRoundTrip(t *testing.T) {
	p := NewBufferPool(16, 64)

	bb := p.Get()
	require.NotNil(t, bb)
	bb.MustWrite([]byte("hello"))
	p.Put(bb)

	bb2 := p.Get()
	require.NotNil(t, bb2)
	assert.Equal(t, 0, bb2.Len(), "pooled buffer should be reset before reuse")
}

func TestBufferPool_DiscardsOversizedBuffers(t *testing.T) {
	p := NewBufferPool(4, 8)

	bb := p.Get()
	bb.MustWrite(make([]byte, 100))
	p.Put(bb) // should be discarded, not pooled, since cap now exceeds maxThreshold

	// A freshly minted buffer from New should be small again.
	bb2 := p.Get()
	assert.LessOrEqual(t, bb2.Cap(), 100)
}

func TestDocumentAndStreamBufferHelpers(t *testing.T) {
	doc := GetDocumentBuffer()
	require.NotNil(t, doc)
	doc.MustWrite([]byte{0x01})
	PutDocumentBuffer(doc)

	strm := GetStreamBuffer()
	require.NotNil(t, strm)
	strm.MustWrite([]byte{0x02})
	PutStreamBuffer(strm)
}
