package extension

import (
	"fmt"

	"github.com/arloliu/puz/errs"
	"github.com/arloliu/puz/format"
)

// Markup is the decoded view of the GEXT record.
type Markup struct {
	set   *Set
	cells []format.MarkupFlag
}

// DecodeMarkup builds a markup view over set for a grid of cells squares.
func DecodeMarkup(set *Set, cells int) (*Markup, error) {
	m := &Markup{set: set, cells: make([]format.MarkupFlag, cells)}

	if payload, ok := set.Get(CodeMarkup); ok {
		if len(payload) != cells {
			return nil, fmt.Errorf("%w: GEXT has %d bytes for %d cells", errs.ErrInvalidExtension, len(payload), cells)
		}
		for i, b := range payload {
			m.cells[i] = format.MarkupFlag(b)
		}
	}

	return m, nil
}

// Has reports whether any cell carries a flag.
func (m *Markup) Has() bool {
	for _, f := range m.cells {
		if f != 0 {
			return true
		}
	}

	return false
}

// Squares returns the indexes of flagged cells.
func (m *Markup) Squares() []int {
	var out []int
	for i, f := range m.cells {
		if f != 0 {
			out = append(out, i)
		}
	}

	return out
}

func (m *Markup) Flags(cell int) format.MarkupFlag {
	if cell < 0 || cell >= len(m.cells) {
		return 0
	}

	return m.cells[cell]
}

// Is reports whether cell carries flag.
func (m *Markup) Is(cell int, flag format.MarkupFlag) bool {
	return m.Flags(cell).Has(flag)
}

// Set replaces the flags of cell.
func (m *Markup) Set(cell int, flags format.MarkupFlag) error {
	if cell < 0 || cell >= len(m.cells) {
		return fmt.Errorf("%w: cell %d outside %d cells", errs.ErrInvalidExtension, cell, len(m.cells))
	}
	m.cells[cell] = flags

	return nil
}

// Commit writes the view back into its set when it has any flag or the record
// already existed.
func (m *Markup) Commit() error {
	if !m.Has() && !m.set.Has(CodeMarkup) {
		return nil
	}

	payload := make([]byte, len(m.cells))
	for i, f := range m.cells {
		payload[i] = byte(f)
	}
	m.set.Set(CodeMarkup, payload)

	return nil
}
