package cursor

import (
	"encoding/binary"
	"fmt"

	"github.com/arloliu/puz/encoding"
	"github.com/arloliu/puz/internal/pool"
)

// Writer appends to a pooled buffer. Call Release when done; Bytes returns a
// copy that stays valid afterwards.
type Writer struct {
	buf *pool.ByteBuffer
	enc encoding.Text
}

// NewWriter returns a Writer encoding text with enc; a nil enc means ISO-8859-1.
func NewWriter(enc encoding.Text) *Writer {
	if enc == nil {
		enc = encoding.Latin1
	}

	return &Writer{buf: pool.GetPuzzleBuffer(), enc: enc}
}

// Grow reserves room for n more bytes.
func (w *Writer) Grow(n int) {
	w.buf.Grow(n)
}

func (w *Writer) Len() int {
	return w.buf.Len()
}

func (w *Writer) WriteBytes(b []byte) {
	_, _ = w.buf.Write(b)
}

func (w *Writer) WriteByte(c byte) error {
	return w.buf.WriteByte(c)
}

func (w *Writer) WriteString(s string) {
	w.buf.B = append(w.buf.B, s...)
}

// WriteText encodes s and appends it followed by a NUL terminator. Nothing is
// written when s cannot be encoded.
func (w *Writer) WriteText(s string) error {
	b, err := w.enc.Encode(s)
	if err != nil {
		return err
	}

	w.WriteBytes(b)

	return w.WriteByte(0)
}

// WriteFixed appends each value in little-endian order. Supported values are
// uint8, uint16, uint32, uint64, and byte arrays of length 2, 4, 8, 11 and 12.
func (w *Writer) WriteFixed(values ...any) error {
	b := w.buf.B
	for i, v := range values {
		switch x := v.(type) {
		case uint8:
			b = append(b, x)
		case uint16:
			b = binary.LittleEndian.AppendUint16(b, x)
		case uint32:
			b = binary.LittleEndian.AppendUint32(b, x)
		case uint64:
			b = binary.LittleEndian.AppendUint64(b, x)
		case [2]byte:
			b = append(b, x[:]...)
		case [4]byte:
			b = append(b, x[:]...)
		case [8]byte:
			b = append(b, x[:]...)
		case [11]byte:
			b = append(b, x[:]...)
		case [12]byte:
			b = append(b, x[:]...)
		default:
			return fmt.Errorf("cursor: unsupported fixed value %d of type %T", i, v)
		}
	}
	w.buf.B = b

	return nil
}

// Bytes returns a copy of everything written so far.
func (w *Writer) Bytes() []byte {
	out := make([]byte, w.buf.Len())
	copy(out, w.buf.Bytes())

	return out
}

// Release returns the buffer to the pool. The Writer must not be used again.
func (w *Writer) Release() {
	pool.PutPuzzleBuffer(w.buf)
	w.buf = nil
}
