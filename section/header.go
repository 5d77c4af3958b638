package section

import (
	"encoding/binary"
	"fmt"

	"github.com/arloliu/puz/errs"
	"github.com/arloliu/puz/format"
)

// LayoutKind identifies which interpretation of the version-dependent header
// bytes a puzzle uses.
type LayoutKind uint8

const (
	// LayoutCurrent (1.2 and later) has a scrambled checksum slot and separate
	// puzzle type and solution state words.
	LayoutCurrent LayoutKind = iota
	// LayoutLegacy treats 0x1C-0x2B as opaque bytes and 0x30-0x33 as a single
	// flags word.
	LayoutLegacy
)

func (k LayoutKind) String() string {
	if k == LayoutLegacy {
		return "legacy"
	}

	return "current"
}

// Layout is the version-dependent part of the header: the 16 bytes at
// 0x1C-0x2B and the 4 bytes at 0x30-0x33. It is implemented by
// *CurrentLayout and *LegacyLayout.
type Layout interface {
	Kind() LayoutKind
	// PuzzleType and SolutionState expose the flags under either layout.
	PuzzleType() format.PuzzleType
	SolutionState() format.SolutionState

	putMiddle(b []byte)
	putTail(b []byte)
}

// CurrentLayout is the header layout of format 1.2 and later.
type CurrentLayout struct {
	Reserved1C        [2]byte  // offset 0x1C, often uninitialized memory
	ScrambledChecksum uint16   // offset 0x1E
	Reserved20        [12]byte // offset 0x20
	Type              format.PuzzleType
	State             format.SolutionState
}

var _ Layout = (*CurrentLayout)(nil)

func (l *CurrentLayout) Kind() LayoutKind                    { return LayoutCurrent }
func (l *CurrentLayout) PuzzleType() format.PuzzleType       { return l.Type }
func (l *CurrentLayout) SolutionState() format.SolutionState { return l.State }

func (l *CurrentLayout) putMiddle(b []byte) {
	copy(b[0:2], l.Reserved1C[:])
	binary.LittleEndian.PutUint16(b[2:4], l.ScrambledChecksum)
	copy(b[4:16], l.Reserved20[:])
}

func (l *CurrentLayout) putTail(b []byte) {
	binary.LittleEndian.PutUint16(b[0:2], uint16(l.Type))
	binary.LittleEndian.PutUint16(b[2:4], uint16(l.State))
}

// LegacyLayout is the header layout of versions before 1.2.
type LegacyLayout struct {
	Reserved [16]byte // offset 0x1C
	Flags    uint32   // offset 0x30
}

var _ Layout = (*LegacyLayout)(nil)

func (l *LegacyLayout) Kind() LayoutKind { return LayoutLegacy }

func (l *LegacyLayout) PuzzleType() format.PuzzleType {
	return format.PuzzleType(l.Flags & 0xFFFF) //nolint:gosec
}

func (l *LegacyLayout) SolutionState() format.SolutionState {
	return format.SolutionState(l.Flags >> 16) //nolint:gosec
}

func (l *LegacyLayout) putMiddle(b []byte) {
	copy(b[0:16], l.Reserved[:])
}

func (l *LegacyLayout) putTail(b []byte) {
	binary.LittleEndian.PutUint32(b[0:4], l.Flags)
}

// Header is the fixed 52-byte record at the start of a puzzle.
//
//	Offset | Size | Field
//	-------|------|------------------------------------------
//	0x00   | 2    | global checksum
//	0x02   | 11   | "ACROSS&DOWN"
//	0x0D   | 1    | reserved
//	0x0E   | 2    | header checksum
//	0x10   | 8    | magic checksum
//	0x18   | 4    | version, NUL padded
//	0x1C   | 16   | layout dependent (see CurrentLayout)
//	0x2C   | 1    | width
//	0x2D   | 1    | height
//	0x2E   | 2    | clue count
//	0x30   | 4    | layout dependent (type and state)
type Header struct {
	GlobalChecksum uint16
	Reserved0D     byte
	HeaderChecksum uint16
	MagicChecksum  uint64
	Version        Version
	Width          uint8
	Height         uint8
	ClueCount      uint16
	Layout         Layout
}

// ParseHeader decodes the first HeaderSize bytes of data. The layout is
// chosen from the version field.
func ParseHeader(data []byte) (Header, error) {
	if len(data) < HeaderSize {
		return Header{}, fmt.Errorf("%w: header needs %d bytes, have %d", errs.ErrTruncatedBuffer, HeaderSize, len(data))
	}

	if string(data[MagicOffset:MagicOffset+len(MagicLiteral)]) != MagicLiteral {
		return Header{}, errs.ErrMissingMarker
	}

	le := binary.LittleEndian
	h := Header{
		GlobalChecksum: le.Uint16(data[GlobalChecksumOffset:]),
		Reserved0D:     data[Reserved0DOffset],
		HeaderChecksum: le.Uint16(data[HeaderChecksumOffset:]),
		MagicChecksum:  le.Uint64(data[MagicChecksumOffset:]),
		Width:          data[WidthOffset],
		Height:         data[HeightOffset],
		ClueCount:      le.Uint16(data[ClueCountOffset:]),
	}
	copy(h.Version[:], data[VersionOffset:VersionOffset+4])

	switch h.Version.Layout() {
	case LayoutLegacy:
		l := &LegacyLayout{Flags: le.Uint32(data[PuzzleTypeOffset:])}
		copy(l.Reserved[:], data[Reserved1COffset:WidthOffset])
		h.Layout = l
	default:
		l := &CurrentLayout{
			ScrambledChecksum: le.Uint16(data[ScrambledOffset:]),
			Type:              format.PuzzleType(le.Uint16(data[PuzzleTypeOffset:])),
			State:             format.SolutionState(le.Uint16(data[SolutionStateOffset:])),
		}
		copy(l.Reserved1C[:], data[Reserved1COffset:ScrambledOffset])
		copy(l.Reserved20[:], data[Reserved20Offset:WidthOffset])
		h.Layout = l
	}

	return h, nil
}

// Bytes serializes the header into a new HeaderSize slice.
func (h *Header) Bytes() []byte {
	b := make([]byte, HeaderSize)

	le := binary.LittleEndian
	le.PutUint16(b[GlobalChecksumOffset:], h.GlobalChecksum)
	copy(b[MagicOffset:], MagicLiteral)
	b[Reserved0DOffset] = h.Reserved0D
	le.PutUint16(b[HeaderChecksumOffset:], h.HeaderChecksum)
	le.PutUint64(b[MagicChecksumOffset:], h.MagicChecksum)
	copy(b[VersionOffset:VersionOffset+4], h.Version[:])
	copy(b[ChecksumRegionOffset:], h.ChecksumRegion())

	layout := h.layout()
	layout.putMiddle(b[Reserved1COffset:WidthOffset])

	return b
}

// ChecksumRegion returns the 8 bytes covered by the header checksum.
func (h *Header) ChecksumRegion() []byte {
	b := make([]byte, ChecksumRegionSize)
	b[0] = h.Width
	b[1] = h.Height
	binary.LittleEndian.PutUint16(b[2:4], h.ClueCount)
	h.layout().putTail(b[4:8])

	return b
}

func (h *Header) layout() Layout {
	if h.Layout == nil {
		return &CurrentLayout{}
	}

	return h.Layout
}
