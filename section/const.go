package section

// Offsets and sizes of the fixed header, relative to the start of the header
// (two bytes before the magic literal).
const (
	HeaderSize = 0x34 // fixed header size in bytes

	GlobalChecksumOffset = 0x00
	MagicOffset          = 0x02 // byte offset of the magic literal
	Reserved0DOffset     = 0x0D // byte following the 11-byte magic literal
	HeaderChecksumOffset = 0x0E
	MagicChecksumOffset  = 0x10
	VersionOffset        = 0x18
	Reserved1COffset     = 0x1C
	ScrambledOffset      = 0x1E
	Reserved20Offset     = 0x20
	WidthOffset          = 0x2C
	HeightOffset         = 0x2D
	ClueCountOffset      = 0x2E
	PuzzleTypeOffset     = 0x30
	SolutionStateOffset  = 0x32

	// ChecksumRegionOffset and ChecksumRegionSize delimit the bytes covered by
	// the header checksum: width, height, clue count and the type/state word.
	ChecksumRegionOffset = WidthOffset
	ChecksumRegionSize   = HeaderSize - WidthOffset

	// ExtensionHeaderSize is the size of an extension record header:
	// 4-byte code, uint16 length, uint16 checksum.
	ExtensionHeaderSize = 8
	// ExtensionPadding is the trailing byte after every extension payload.
	ExtensionPadding = 1

	MaxExtensionSize = 0xFFFF
	MaxClueCount     = 0xFFFF
	MaxDimension     = 0xFF
)

// MagicLiteral anchors the header; parsing locates it and backs up two bytes.
const MagicLiteral = "ACROSS&DOWN"

// DefaultVersion is the version written by New.
const DefaultVersion = "1.3"
