// Package pool provides reusable growable byte buffers for the writer's
// output, so that encoding many small SMILE documents in a hot loop doesn't
// churn the allocator on every call.
package pool

import "sync"

// Default and maximum sizes for the two buffer classes this package pools.
// A single document's token stream is usually small; the stream class, for
// buffers holding many documents back to back, gets a larger default and a
// higher ceiling before a buffer is discarded instead of returned to the
// pool.
const (
	DocumentBufferDefaultSize  = 1024 * 4   // 4KiB, enough for most single documents
	DocumentBufferMaxThreshold = 1024 * 64  // 64KiB
	StreamBufferDefaultSize    = 1024 * 64  // 64KiB
	StreamBufferMaxThreshold   = 1024 * 1024 * 4 // 4MiB
)

// ByteBuffer is a growable byte slice wrapper with an amortized growth
// strategy, shaped for append-only token emission.
type ByteBuffer struct {
	B []byte
}

// NewByteBuffer creates a ByteBuffer with the given initial capacity.
func NewByteBuffer(initialCap int) *ByteBuffer {
	return &ByteBuffer{B: make([]byte, 0, initialCap)}
}

// Bytes returns the buffer's current contents. The slice is valid until the
// next mutating call on the buffer.
func (bb *ByteBuffer) Bytes() []byte { return bb.B }

// Reset empties the buffer while retaining its backing array.
func (bb *ByteBuffer) Reset() { bb.B = bb.B[:0] }

// Len returns the number of bytes currently written.
func (bb *ByteBuffer) Len() int { return len(bb.B) }

// Cap returns the buffer's current capacity.
func (bb *ByteBuffer) Cap() int { return cap(bb.B) }

// WriteByte appends a single byte, growing the buffer if necessary.
func (bb *ByteBuffer) WriteByte(b byte) error {
	bb.Grow(1)
	bb.B = append(bb.B, b)
	return nil
}

// MustWrite appends data, growing the buffer if necessary. It never fails.
func (bb *ByteBuffer) MustWrite(data []byte) {
	bb.Grow(len(data))
	bb.B = append(bb.B, data...)
}

// Grow ensures the buffer can accept requiredBytes more bytes without a
// further reallocation.
//
// Growth strategy: small buffers grow by a fixed chunk (DocumentBufferDefaultSize)
// to minimize reallocations during the early life of a document; once a
// buffer is already large, growing by 25% of current capacity avoids
// over-allocating for one-off oversized tokens (long strings, raw binary).
func (bb *ByteBuffer) Grow(requiredBytes int) {
	available := cap(bb.B) - len(bb.B)
	if available >= requiredBytes {
		return
	}

	growBy := DocumentBufferDefaultSize
	if cap(bb.B) > 4*DocumentBufferDefaultSize {
		growBy = cap(bb.B) / 4
	}
	if growBy < requiredBytes {
		growBy = requiredBytes
	}

	newBuf := make([]byte, len(bb.B), len(bb.B)+growBy)
	copy(newBuf, bb.B)
	bb.B = newBuf
}

// Write implements io.Writer.
func (bb *ByteBuffer) Write(data []byte) (int, error) {
	bb.MustWrite(data)
	return len(data), nil
}

// BufferPool pools ByteBuffers of a given size class via sync.Pool.
// Oversized buffers (beyond maxThreshold) are dropped rather than retained,
// to keep one pathologically large document from inflating the pool's
// steady-state footprint.
type BufferPool struct {
	pool         sync.Pool
	maxThreshold int
}

// NewBufferPool creates a pool whose buffers start at defaultSize and are
// discarded, rather than recycled, once they grow past maxThreshold.
func NewBufferPool(defaultSize, maxThreshold int) *BufferPool {
	return &BufferPool{
		pool: sync.Pool{
			New: func() any { return NewByteBuffer(defaultSize) },
		},
		maxThreshold: maxThreshold,
	}
}

// Get retrieves a ByteBuffer from the pool.
func (p *BufferPool) Get() *ByteBuffer {
	bb, _ := p.pool.Get().(*ByteBuffer)
	return bb
}

// Put returns a ByteBuffer to the pool, discarding it instead if it has
// grown beyond the pool's threshold.
func (p *BufferPool) Put(bb *ByteBuffer) {
	if bb == nil {
		return
	}
	if p.maxThreshold > 0 && cap(bb.B) > p.maxThreshold {
		return
	}
	bb.Reset()
	p.pool.Put(bb)
}

var (
	documentPool = NewBufferPool(DocumentBufferDefaultSize, DocumentBufferMaxThreshold)
	streamPool   = NewBufferPool(StreamBufferDefaultSize, StreamBufferMaxThreshold)
)

// GetDocumentBuffer retrieves a buffer sized for a single SMILE document
// from the shared pool.
func GetDocumentBuffer() *ByteBuffer { return documentPool.Get() }

// PutDocumentBuffer returns a single-document buffer to the shared pool.
func PutDocumentBuffer(bb *ByteBuffer) { documentPool.Put(bb) }

// GetStreamBuffer retrieves a buffer sized for a multi-document stream from
// the shared pool.
func GetStreamBuffer() *ByteBuffer { return streamPool.Get() }

// PutStreamBuffer returns a multi-document stream buffer to the shared pool.
func PutStreamBuffer(bb *ByteBuffer) { streamPool.Put(bb) }
