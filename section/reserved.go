package section

import (
	"encoding/binary"

	"github.com/arloliu/puz/format"
)

// Reserved holds the header bytes that carry no known meaning. They are kept
// verbatim so a parsed file serializes back to identical bytes.
type Reserved struct {
	AfterMagic byte     // offset 0x0D
	Region1C   [2]byte  // offset 0x1C
	Region20   [12]byte // offset 0x20
}

// Fields is the layout-independent view of the version-dependent header bytes.
// Both layouts map onto it without loss.
type Fields struct {
	Reserved          Reserved
	ScrambledChecksum uint16
	Type              format.PuzzleType
	State             format.SolutionState
}

// Fields flattens the header layout.
func (h *Header) Fields() Fields {
	f := Fields{}
	f.Reserved.AfterMagic = h.Reserved0D

	switch l := h.layout().(type) {
	case *LegacyLayout:
		copy(f.Reserved.Region1C[:], l.Reserved[0:2])
		f.ScrambledChecksum = binary.LittleEndian.Uint16(l.Reserved[2:4])
		copy(f.Reserved.Region20[:], l.Reserved[4:16])
		f.Type = l.PuzzleType()
		f.State = l.SolutionState()
	case *CurrentLayout:
		f.Reserved.Region1C = l.Reserved1C
		f.ScrambledChecksum = l.ScrambledChecksum
		f.Reserved.Region20 = l.Reserved20
		f.Type = l.Type
		f.State = l.State
	}

	return f
}

// SetFields stores f into the header using the layout selected by the
// header's version.
func (h *Header) SetFields(f Fields) {
	h.Reserved0D = f.Reserved.AfterMagic

	if h.Version.Layout() == LayoutLegacy {
		l := &LegacyLayout{Flags: uint32(f.Type) | uint32(f.State)<<16}
		copy(l.Reserved[0:2], f.Reserved.Region1C[:])
		binary.LittleEndian.PutUint16(l.Reserved[2:4], f.ScrambledChecksum)
		copy(l.Reserved[4:16], f.Reserved.Region20[:])
		h.Layout = l

		return
	}

	h.Layout = &CurrentLayout{
		Reserved1C:        f.Reserved.Region1C,
		ScrambledChecksum: f.ScrambledChecksum,
		Reserved20:        f.Reserved.Region20,
		Type:              f.Type,
		State:             f.State,
	}
}
