package extension

import (
	"fmt"

	"github.com/arloliu/puz/errs"
)

// Code is the 4-byte record type tag.
type Code [4]byte

var (
	// CodeRebusGrid (GRBS) holds one byte per cell: 0 for a plain cell, otherwise
	// one more than the cell's key in CodeRebusTable.
	CodeRebusGrid = Code{'G', 'R', 'B', 'S'}
	// CodeRebusTable (RTBL) maps rebus keys to solutions as " k:VALUE;" pairs.
	CodeRebusTable = Code{'R', 'T', 'B', 'L'}
	// CodeRebusUser (RUSR) maps cell indexes to the solver's rebus entries, using
	// the CodeRebusTable encoding.
	CodeRebusUser = Code{'R', 'U', 'S', 'R'}
	// CodeTimer (LTIM) is "<seconds>,<stopped>".
	CodeTimer = Code{'L', 'T', 'I', 'M'}
	// CodeMarkup (GEXT) holds one MarkupFlag byte per cell.
	CodeMarkup = Code{'G', 'E', 'X', 'T'}
)

// ParseCode converts a 4-character string to a Code.
func ParseCode(s string) (Code, error) {
	var c Code
	if len(s) != len(c) {
		return c, fmt.Errorf("%w: code %q must be %d bytes", errs.ErrInvalidExtension, s, len(c))
	}
	copy(c[:], s)

	return c, nil
}

func (c Code) String() string {
	return string(c[:])
}

// Known reports whether c is one of the codes with a typed view.
func (c Code) Known() bool {
	switch c {
	case CodeRebusGrid, CodeRebusTable, CodeRebusUser, CodeTimer, CodeMarkup:
		return true
	default:
		return false
	}
}
