package pool

import (
	"io"
	"sync"
)

const (
	PuzzleBufferDefaultSize  = 1024 * 4  // 4KiB, enough for a 15x15 puzzle with clues
	PuzzleBufferMaxThreshold = 1024 * 64 // 64KiB
)

// ByteBuffer is an append-only byte slice used to assemble serialized puzzles.
type ByteBuffer struct {
	B []byte
}

// NewByteBuffer creates a ByteBuffer with the given initial capacity.
func NewByteBuffer(defaultSize int) *ByteBuffer {
	return &ByteBuffer{
		B: make([]byte, 0, defaultSize),
	}
}

// Bytes returns the buffer contents. The slice is only valid until the buffer
// is reset or returned to its pool.
func (bb *ByteBuffer) Bytes() []byte {
	return bb.B
}

// Reset empties the buffer, keeping its capacity.
func (bb *ByteBuffer) Reset() {
	bb.B = bb.B[:0]
}

func (bb *ByteBuffer) Len() int {
	return len(bb.B)
}

// Grow ensures at least requiredBytes can be appended without reallocating.
func (bb *ByteBuffer) Grow(requiredBytes int) {
	available := cap(bb.B) - len(bb.B)
	if available >= requiredBytes {
		return
	}

	growBy := PuzzleBufferDefaultSize
	if cap(bb.B) > 4*PuzzleBufferDefaultSize {
		growBy = cap(bb.B) / 4
	}

	if growBy < requiredBytes {
		growBy = requiredBytes
	}

	newBuf := make([]byte, len(bb.B), len(bb.B)+growBy)
	copy(newBuf, bb.B)
	bb.B = newBuf
}

// Write appends data. It never fails.
func (bb *ByteBuffer) Write(data []byte) (int, error) {
	bb.B = append(bb.B, data...)
	return len(data), nil
}

// WriteByte appends a single byte. It never fails.
func (bb *ByteBuffer) WriteByte(c byte) error {
	bb.B = append(bb.B, c)
	return nil
}

// WriteTo writes the buffer contents to w.
func (bb *ByteBuffer) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(bb.B)
	return int64(n), err
}

// ByteBufferPool recycles ByteBuffers. Buffers that grew beyond maxThreshold
// are dropped instead of pooled.
type ByteBufferPool struct {
	pool         sync.Pool
	maxThreshold int
}

// NewByteBufferPool creates a pool of buffers with defaultSize initial capacity.
func NewByteBufferPool(defaultSize int, maxThreshold int) *ByteBufferPool {
	return &ByteBufferPool{
		pool: sync.Pool{
			New: func() any {
				return NewByteBuffer(defaultSize)
			},
		},
		maxThreshold: maxThreshold,
	}
}

// Get returns an empty buffer.
func (bbp *ByteBufferPool) Get() *ByteBuffer {
	bb, _ := bbp.pool.Get().(*ByteBuffer)
	return bb
}

// Put resets bb and returns it to the pool. A nil buffer is ignored.
func (bbp *ByteBufferPool) Put(bb *ByteBuffer) {
	if bb == nil {
		return
	}

	if bbp.maxThreshold > 0 && cap(bb.B) > bbp.maxThreshold {
		return
	}

	bb.Reset()
	bbp.pool.Put(bb)
}

var puzzleDefaultPool = NewByteBufferPool(PuzzleBufferDefaultSize, PuzzleBufferMaxThreshold)

// GetPuzzleBuffer retrieves a ByteBuffer from the default puzzle pool.
func GetPuzzleBuffer() *ByteBuffer {
	return puzzleDefaultPool.Get()
}

// PutPuzzleBuffer returns a ByteBuffer to the default puzzle pool.
func PutPuzzleBuffer(bb *ByteBuffer) {
	puzzleDefaultPool.Put(bb)
}
