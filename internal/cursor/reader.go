// Package cursor provides position-tracked reading and append-only writing
// over puzzle byte buffers.
package cursor

import (
	"bytes"
	"fmt"

	"github.com/arloliu/puz/encoding"
	"github.com/arloliu/puz/errs"
)

// Reader is a forward-only view over a byte slice. Returned slices alias the
// underlying data.
type Reader struct {
	data []byte
	pos  int
	enc  encoding.Text
}

// NewReader returns a Reader positioned at the start of data. Text fields are
// decoded with enc; a nil enc means ISO-8859-1.
func NewReader(data []byte, enc encoding.Text) *Reader {
	if enc == nil {
		enc = encoding.Latin1
	}

	return &Reader{data: data, enc: enc}
}

// SetEncoding changes the decoding used by ReadUntil.
func (r *Reader) SetEncoding(enc encoding.Text) {
	if enc != nil {
		r.enc = enc
	}
}

func (r *Reader) Pos() int       { return r.pos }
func (r *Reader) Len() int       { return len(r.data) }
func (r *Reader) Remaining() int { return len(r.data) - r.pos }

// CanRead reports whether at least n more bytes are available.
func (r *Reader) CanRead(n int) bool {
	return n >= 0 && r.Remaining() >= n
}

// Read returns the next n bytes and advances past them.
func (r *Reader) Read(n int) ([]byte, error) {
	if !r.CanRead(n) {
		return nil, fmt.Errorf("%w: need %d bytes at offset %d, have %d", errs.ErrTruncatedBuffer, n, r.pos, r.Remaining())
	}

	b := r.data[r.pos : r.pos+n]
	r.pos += n

	return b, nil
}

// ReadUntil returns the text up to the next marker byte, decoded with the
// reader's encoding, and advances past the marker.
func (r *Reader) ReadUntil(marker byte) (string, error) {
	raw, err := r.ReadRawUntil(marker)
	if err != nil {
		return "", err
	}

	s, err := r.enc.Decode(raw)
	if err != nil {
		return "", fmt.Errorf("text at offset %d: %w", r.pos-len(raw)-1, err)
	}

	return s, nil
}

// ReadRawUntil is ReadUntil without decoding.
func (r *Reader) ReadRawUntil(marker byte) ([]byte, error) {
	idx := bytes.IndexByte(r.data[r.pos:], marker)
	if idx < 0 {
		return nil, fmt.Errorf("%w: no %#02x after offset %d", errs.ErrMissingTerminator, marker, r.pos)
	}

	b := r.data[r.pos : r.pos+idx]
	r.pos += idx + 1

	return b, nil
}

// Locate scans forward from the cursor for marker and moves the cursor to the
// match position plus offset. It reports whether marker was found; on a miss,
// or when the adjusted position would leave the buffer, the cursor is unchanged.
func (r *Reader) Locate(marker []byte, offset int) bool {
	idx := bytes.Index(r.data[r.pos:], marker)
	if idx < 0 {
		return false
	}

	target := r.pos + idx + offset
	if target < 0 || target > len(r.data) {
		return false
	}

	r.pos = target

	return true
}

// Rest consumes and returns every remaining byte.
func (r *Reader) Rest() []byte {
	b := r.data[r.pos:]
	r.pos = len(r.data)

	return b
}

// Consumed returns the bytes before the cursor.
func (r *Reader) Consumed() []byte {
	return r.data[:r.pos]
}
