package extension

import (
	"fmt"
	"maps"
	"slices"

	"github.com/arloliu/puz/encoding"
	"github.com/arloliu/puz/errs"
)

// Rebus is the decoded view of the GRBS, RTBL and RUSR records.
type Rebus struct {
	set   *Set
	enc   encoding.Text
	cells int
	grid  []byte
	table map[int]string
	fill  map[int]string
}

// DecodeRebus builds a Rebus view over set for a grid of cells squares.
// Table text is decoded and later committed with enc; a nil enc means
// ISO-8859-1. Missing records decode as empty.
func DecodeRebus(set *Set, cells int, enc encoding.Text) (*Rebus, error) {
	if enc == nil {
		enc = encoding.Latin1
	}
	r := &Rebus{set: set, enc: enc, cells: cells, grid: make([]byte, cells)}

	if grid, ok := set.Get(CodeRebusGrid); ok {
		if len(grid) != cells {
			return nil, fmt.Errorf("%w: GRBS has %d bytes for %d cells", errs.ErrInvalidExtension, len(grid), cells)
		}
		copy(r.grid, grid)
	}

	var err error
	if r.table, err = decodeTable(set, CodeRebusTable, enc); err != nil {
		return nil, err
	}
	if r.fill, err = decodeTable(set, CodeRebusUser, enc); err != nil {
		return nil, err
	}

	return r, nil
}

func decodeTable(set *Set, code Code, enc encoding.Text) (map[int]string, error) {
	payload, ok := set.Get(code)
	if !ok {
		return map[int]string{}, nil
	}

	t, err := parseTable(payload, enc)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", code, err)
	}

	return t, nil
}

// HasRebus reports whether any cell holds a rebus.
func (r *Rebus) HasRebus() bool {
	return len(r.Squares()) > 0
}

func (r *Rebus) IsRebusSquare(cell int) bool {
	return cell >= 0 && cell < r.cells && r.grid[cell] != 0
}

// Squares returns the indexes of rebus cells in ascending order.
func (r *Rebus) Squares() []int {
	var out []int
	for i, v := range r.grid {
		if v != 0 {
			out = append(out, i)
		}
	}

	return out
}

// Solution returns the rebus solution of cell.
func (r *Rebus) Solution(cell int) (string, bool) {
	if !r.IsRebusSquare(cell) {
		return "", false
	}
	s, ok := r.table[int(r.grid[cell])-1]

	return s, ok
}

// UserFill returns the solver's rebus entry for cell.
func (r *Rebus) UserFill(cell int) (string, bool) {
	s, ok := r.fill[cell]
	return s, ok
}

// SetUserFill records the solver's rebus entry for cell. An empty value
// clears it.
func (r *Rebus) SetUserFill(cell int, value string) error {
	if cell < 0 || cell >= r.cells {
		return fmt.Errorf("%w: cell %d outside %d cells", errs.ErrInvalidExtension, cell, r.cells)
	}
	if value == "" {
		delete(r.fill, cell)
		return nil
	}
	r.fill[cell] = value

	return nil
}

// Add registers solution under a new key and marks cells as rebus squares
// using it. It returns the new key.
func (r *Rebus) Add(solution string, cells ...int) (int, error) {
	for _, c := range cells {
		if c < 0 || c >= r.cells {
			return 0, fmt.Errorf("%w: cell %d outside %d cells", errs.ErrInvalidExtension, c, r.cells)
		}
	}

	key := 0
	if len(r.table) > 0 {
		key = slices.Max(slices.Collect(maps.Keys(r.table))) + 1
	}
	if key+1 > 0xFF {
		return 0, fmt.Errorf("%w: rebus table is full", errs.ErrInvalidExtension)
	}

	r.table[key] = solution
	for _, c := range cells {
		r.grid[c] = byte(key + 1)
	}

	return key, nil
}

// Commit writes the view back into its set. Records are written only when
// they have content or were already present.
// Nothing is written when a table value cannot be encoded.
func (r *Rebus) Commit() error {
	writeTable := len(r.table) > 0 || r.set.Has(CodeRebusTable)
	writeFill := len(r.fill) > 0 || r.set.Has(CodeRebusUser)

	var table, fill []byte
	var err error
	if writeTable {
		if table, err = formatTable(r.table, r.enc); err != nil {
			return fmt.Errorf("%s: %w", CodeRebusTable, err)
		}
	}
	if writeFill {
		if fill, err = formatTable(r.fill, r.enc); err != nil {
			return fmt.Errorf("%s: %w", CodeRebusUser, err)
		}
	}

	if r.HasRebus() || r.set.Has(CodeRebusGrid) {
		r.set.Set(CodeRebusGrid, r.grid)
	}
	if writeTable {
		r.set.Set(CodeRebusTable, table)
	}
	if writeFill {
		r.set.Set(CodeRebusUser, fill)
	}

	return nil
}
