package section

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/puz/encoding"
	"github.com/arloliu/puz/errs"
	"github.com/arloliu/puz/format"
)

func sampleHeaderBytes() []byte {
	b := make([]byte, HeaderSize)
	b[0], b[1] = 0x34, 0x12
	copy(b[MagicOffset:], MagicLiteral)
	b[Reserved0DOffset] = 0x00
	b[HeaderChecksumOffset], b[HeaderChecksumOffset+1] = 0xCD, 0xAB
	for i := 0; i < 8; i++ {
		b[MagicChecksumOffset+i] = byte(i + 1)
	}
	copy(b[VersionOffset:], "1.3\x00")
	b[Reserved1COffset], b[Reserved1COffset+1] = 0xDE, 0xAD
	b[ScrambledOffset], b[ScrambledOffset+1] = 0x89, 0xCC
	b[Reserved20Offset+5] = 0x77
	b[WidthOffset] = 15
	b[HeightOffset] = 15
	b[ClueCountOffset] = 78
	b[PuzzleTypeOffset] = 0x01
	b[SolutionStateOffset] = 0x04

	return b
}

func TestParseHeader(t *testing.T) {
	t.Run("Current layout", func(t *testing.T) {
		data := sampleHeaderBytes()

		h, err := ParseHeader(data)
		require.NoError(t, err)
		require.Equal(t, uint16(0x1234), h.GlobalChecksum)
		require.Equal(t, uint16(0xABCD), h.HeaderChecksum)
		require.Equal(t, uint64(0x0807060504030201), h.MagicChecksum)
		require.Equal(t, "1.3", h.Version.String())
		require.Equal(t, uint8(15), h.Width)
		require.Equal(t, uint8(15), h.Height)
		require.Equal(t, uint16(78), h.ClueCount)

		l, ok := h.Layout.(*CurrentLayout)
		require.True(t, ok)
		require.Equal(t, LayoutCurrent, l.Kind())
		require.Equal(t, uint16(0xCC89), l.ScrambledChecksum)
		require.Equal(t, [2]byte{0xDE, 0xAD}, l.Reserved1C)
		require.Equal(t, byte(0x77), l.Reserved20[5])
		require.Equal(t, format.PuzzleNormal, h.Layout.PuzzleType())
		require.Equal(t, format.SolutionLocked, h.Layout.SolutionState())

		require.Equal(t, data, h.Bytes())
	})

	t.Run("Legacy layout", func(t *testing.T) {
		data := sampleHeaderBytes()
		copy(data[VersionOffset:], "1.1\x00")

		h, err := ParseHeader(data)
		require.NoError(t, err)

		l, ok := h.Layout.(*LegacyLayout)
		require.True(t, ok)
		require.Equal(t, LayoutLegacy, l.Kind())
		require.Equal(t, uint32(0x00040001), l.Flags)
		require.Equal(t, byte(0x89), l.Reserved[2])
		require.Equal(t, format.PuzzleNormal, h.Layout.PuzzleType())
		require.Equal(t, format.SolutionLocked, h.Layout.SolutionState())

		require.Equal(t, data, h.Bytes())
	})

	t.Run("Too short", func(t *testing.T) {
		_, err := ParseHeader(make([]byte, HeaderSize-1))
		require.ErrorIs(t, err, errs.ErrTruncatedBuffer)
	})

	t.Run("Wrong magic", func(t *testing.T) {
		data := sampleHeaderBytes()
		data[MagicOffset] = 'X'
		_, err := ParseHeader(data)
		require.ErrorIs(t, err, errs.ErrMissingMarker)
	})
}

func TestHeader_ChecksumRegion(t *testing.T) {
	h := Header{
		Width:     3,
		Height:    4,
		ClueCount: 0x0102,
		Layout:    &CurrentLayout{Type: format.PuzzleDiagramless, State: format.SolutionLocked},
	}

	require.Equal(t, []byte{3, 4, 0x02, 0x01, 0x01, 0x04, 0x04, 0x00}, h.ChecksumRegion())

	// Legacy flags pack to the same bytes.
	h.Layout = &LegacyLayout{Flags: 0x00040401}
	require.Equal(t, []byte{3, 4, 0x02, 0x01, 0x01, 0x04, 0x04, 0x00}, h.ChecksumRegion())
}

func TestHeader_BytesDefaultsLayout(t *testing.T) {
	h := Header{Version: NewVersion("1.3")}
	b := h.Bytes()

	require.Len(t, b, HeaderSize)
	require.Equal(t, MagicLiteral, string(b[MagicOffset:MagicOffset+len(MagicLiteral)]))
}

func TestVersion(t *testing.T) {
	tests := []struct {
		raw      string
		str      string
		major    int
		minor    int
		ok       bool
		layout   LayoutKind
		revision Revision
		notes    bool
	}{
		{"1.3\x00", "1.3", 1, 3, true, LayoutCurrent, Revision1, true},
		{"1.2c", "1.2c", 1, 2, true, LayoutCurrent, Revision1, false},
		{"1.4\x00", "1.4", 1, 4, true, LayoutCurrent, Revision1, false},
		{"2.0\x00", "2.0", 2, 0, true, LayoutCurrent, Revision2, false},
		{"1.1\x00", "1.1", 1, 1, true, LayoutLegacy, Revision1, false},
		{"\x00\x00\x00\x00", "", 0, 0, false, LayoutLegacy, Revision1, false},
		{"abc\x00", "abc", 0, 0, false, LayoutLegacy, Revision1, false},
	}

	for _, tt := range tests {
		t.Run(tt.str, func(t *testing.T) {
			var v Version
			copy(v[:], tt.raw)

			require.Equal(t, tt.str, v.String())
			major, minor, ok := v.Number()
			require.Equal(t, tt.ok, ok)
			require.Equal(t, tt.major, major)
			require.Equal(t, tt.minor, minor)
			require.Equal(t, tt.layout, v.Layout())
			require.Equal(t, tt.revision, v.Revision())
			require.Equal(t, tt.notes, v.NotesInChecksum())
		})
	}
}

func TestNewVersion(t *testing.T) {
	require.Equal(t, Version{'2', '.', '0', 0}, NewVersion("2.0"))
	require.Equal(t, Version{'1', '.', '2', 'c'}, NewVersion("1.2cX"))
}

func TestRevision(t *testing.T) {
	require.Equal(t, encoding.Latin1, Revision1.Encoding())
	require.Equal(t, encoding.UTF8, Revision2.Encoding())
	require.Equal(t, 1, Revision1.MinClueRun())
	require.Equal(t, "2.x", Revision2.String())
}

func TestHeader_Fields(t *testing.T) {
	for _, version := range []string{"1.3\x00", "1.1\x00"} {
		t.Run(version[:3], func(t *testing.T) {
			data := sampleHeaderBytes()
			copy(data[VersionOffset:], version)

			h, err := ParseHeader(data)
			require.NoError(t, err)

			f := h.Fields()
			require.Equal(t, uint16(0xCC89), f.ScrambledChecksum)
			require.Equal(t, [2]byte{0xDE, 0xAD}, f.Reserved.Region1C)
			require.Equal(t, byte(0x77), f.Reserved.Region20[5])
			require.Equal(t, format.PuzzleNormal, f.Type)
			require.Equal(t, format.SolutionLocked, f.State)

			rebuilt := Header{
				GlobalChecksum: h.GlobalChecksum,
				HeaderChecksum: h.HeaderChecksum,
				MagicChecksum:  h.MagicChecksum,
				Version:        h.Version,
				Width:          h.Width,
				Height:         h.Height,
				ClueCount:      h.ClueCount,
			}
			rebuilt.SetFields(f)
			require.Equal(t, h.Layout.Kind(), rebuilt.Layout.Kind())
			require.Equal(t, data, rebuilt.Bytes())
		})
	}
}
