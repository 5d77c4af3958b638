package puzzle

import (
	"fmt"
	"io"

	"github.com/arloliu/puz/errs"
	"github.com/arloliu/puz/extension"
	"github.com/arloliu/puz/internal/cursor"
	"github.com/arloliu/puz/section"
)

// Bytes serializes the puzzle with freshly computed checksums. Views that
// have not been committed are ignored.
//
// It fails when the grids do not match the dimensions, when the puzzle does
// not fit the header fields, or when a text field cannot be represented in the
// encoding of the puzzle's version.
func (p *Puzzle) Bytes() ([]byte, error) {
	cells := p.Cells()
	if len(p.Solution) != cells || len(p.Fill) != cells {
		return nil, fmt.Errorf("%w: solution %d, fill %d, want %d", errs.ErrGridSize, len(p.Solution), len(p.Fill), cells)
	}

	h, err := p.header()
	if err != nil {
		return nil, err
	}

	enc := p.Encoding()
	text, err := p.encodeText(enc)
	if err != nil {
		return nil, err
	}

	sums := p.checksums(&h, text)
	h.HeaderChecksum = sums.Header
	h.GlobalChecksum = sums.Global
	h.MagicChecksum = sums.Magic

	w := cursor.NewWriter(enc)
	defer w.Release()

	w.Grow(len(p.Preamble) + section.HeaderSize + 2*cells + len(p.Postscript))
	w.WriteBytes(p.Preamble)
	w.WriteBytes(h.Bytes())
	w.WriteString(p.Solution)
	w.WriteString(p.Fill)

	fields := make([]string, 0, len(p.Clues)+4)
	fields = append(fields, p.Title, p.Author, p.Copyright)
	fields = append(fields, p.Clues...)
	fields = append(fields, p.Notes)
	for _, s := range fields {
		if err := w.WriteText(s); err != nil {
			return nil, err
		}
	}

	if p.Extensions != nil {
		if err := extension.Encode(w, p.Extensions); err != nil {
			return nil, err
		}
	}
	w.WriteBytes(p.Postscript)

	return w.Bytes(), nil
}

// WriteTo writes the serialized puzzle to dst.
func (p *Puzzle) WriteTo(dst io.Writer) (int64, error) {
	b, err := p.Bytes()
	if err != nil {
		return 0, err
	}

	n, err := dst.Write(b)

	return int64(n), err
}
