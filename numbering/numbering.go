// Package numbering derives clue numbers and clue assignments from a grid.
//
// Cells are visited in row-major order. A white cell starts an across entry
// when it is on the left edge or follows a black square and the run to its
// right is longer than the minimum run; down entries use the cell above and
// the run below. A cell that starts any entry takes the next number, and the
// flat clue list is consumed across first, then down, cell by cell.
package numbering

import (
	"fmt"

	"github.com/arloliu/puz/errs"
	"github.com/arloliu/puz/format"
	"github.com/arloliu/puz/internal/options"
)

// DefaultMinRun is the run length an entry must exceed unless WithMinRun
// says otherwise.
const DefaultMinRun = 1

type Direction uint8

const (
	Across Direction = iota
	Down
)

func (d Direction) String() string {
	if d == Down {
		return "down"
	}

	return "across"
}

// Entry is one numbered word in the grid.
type Entry struct {
	Number    int
	Direction Direction
	ClueIndex int    // index into the clue list
	Clue      string // empty when the clue list ran out
	Cell      int    // row-major index of the first cell
	Row       int
	Col       int
	Length    int
}

// Numbering is the result of a grid walk.
type Numbering struct {
	Across []Entry
	Down   []Entry
	// Entries holds every entry in clue order.
	Entries []Entry
}

// Required is the number of clues the grid calls for.
func (n *Numbering) Required() int {
	return len(n.Entries)
}

// Find returns the entry with the given number and direction.
func (n *Numbering) Find(number int, dir Direction) (Entry, bool) {
	list := n.Across
	if dir == Down {
		list = n.Down
	}
	for _, e := range list {
		if e.Number == number {
			return e, true
		}
	}

	return Entry{}, false
}

type config struct {
	minRun int
}

// Option configures Number.
type Option = options.Option[*config]

// WithMinRun sets the length a run must exceed to become an entry.
func WithMinRun(n int) Option {
	return options.New(func(c *config) error {
		if n < 0 {
			return fmt.Errorf("numbering: minimum run %d is negative", n)
		}
		c.minRun = n

		return nil
	})
}

// Number walks grid and assigns clues. When the walk needs a different number
// of clues than were supplied, the full numbering is returned together with a
// *errs.ClueCountError.
func Number(grid string, clues []string, width, height int, opts ...Option) (*Numbering, error) {
	cfg := &config{minRun: DefaultMinRun}
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	if width < 0 || height < 0 || len(grid) != width*height {
		return nil, fmt.Errorf("%w: %d cells for %dx%d", errs.ErrGridSize, len(grid), width, height)
	}

	black := func(row, col int) bool {
		return format.IsBlack(grid[row*width+col])
	}

	n := &Numbering{}
	number := 1
	clue := 0

	next := func(e Entry) Entry {
		e.ClueIndex = clue
		if clue < len(clues) {
			e.Clue = clues[clue]
		}
		clue++

		return e
	}

	for row := 0; row < height; row++ {
		for col := 0; col < width; col++ {
			if black(row, col) {
				continue
			}

			base := Entry{Number: number, Cell: row*width + col, Row: row, Col: col}
			started := false

			if col == 0 || black(row, col-1) {
				length := 0
				for c := col; c < width && !black(row, c); c++ {
					length++
				}
				if length > cfg.minRun {
					e := base
					e.Direction = Across
					e.Length = length
					e = next(e)
					n.Across = append(n.Across, e)
					n.Entries = append(n.Entries, e)
					started = true
				}
			}

			if row == 0 || black(row-1, col) {
				length := 0
				for r := row; r < height && !black(r, col); r++ {
					length++
				}
				if length > cfg.minRun {
					e := base
					e.Direction = Down
					e.Length = length
					e = next(e)
					n.Down = append(n.Down, e)
					n.Entries = append(n.Entries, e)
					started = true
				}
			}

			if started {
				number++
			}
		}
	}

	if clue != len(clues) {
		return n, &errs.ClueCountError{Required: clue, Available: len(clues)}
	}

	return n, nil
}
