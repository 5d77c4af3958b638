package format

type (
	PuzzleType      uint16
	SolutionState   uint16
	MarkupFlag      uint8
	CompressionType uint8
)

const (
	PuzzleNormal      PuzzleType = 0x0001 // PuzzleNormal is a regular crossword.
	PuzzleDiagramless PuzzleType = 0x0401 // PuzzleDiagramless hides black squares from the solver.

	SolutionUnlocked SolutionState = 0x0000 // SolutionUnlocked means the solution grid is plain text.
	SolutionLocked   SolutionState = 0x0004 // SolutionLocked means the solution grid is scrambled.

	MarkupNone                MarkupFlag = 0x00 // MarkupNone is an unmarked cell.
	MarkupPreviouslyIncorrect MarkupFlag = 0x10 // MarkupPreviouslyIncorrect marks a cell that was once wrong.
	MarkupIncorrect           MarkupFlag = 0x20 // MarkupIncorrect marks a cell that is currently wrong.
	MarkupRevealed            MarkupFlag = 0x40 // MarkupRevealed marks a cell whose answer was given.
	MarkupCircled             MarkupFlag = 0x80 // MarkupCircled marks a circled cell.

	CompressionNone CompressionType = 0x1 // CompressionNone stores the puzzle bytes as-is.
	CompressionZstd CompressionType = 0x2 // CompressionZstd wraps the puzzle in a Zstandard frame.
	CompressionS2   CompressionType = 0x3 // CompressionS2 wraps the puzzle in an S2 stream.
	CompressionLZ4  CompressionType = 0x4 // CompressionLZ4 wraps the puzzle in an LZ4 frame.
	CompressionXZ   CompressionType = 0x5 // CompressionXZ wraps the puzzle in an xz stream.
)

// Grid sentinels.
const (
	BlackSquare            = '.' // BlackSquare marks a cell with no letter.
	DiagramlessBlackSquare = ':' // DiagramlessBlackSquare is used by diagramless grids.
	EmptyCell              = '-' // EmptyCell is an unfilled cell in the fill grid.
)

// IsBlack reports whether c is one of the black-square sentinels.
func IsBlack(c byte) bool {
	return c == BlackSquare || c == DiagramlessBlackSquare
}

// BlackFor returns the sentinel used by grids of the given puzzle type.
func BlackFor(t PuzzleType) byte {
	if t == PuzzleDiagramless {
		return DiagramlessBlackSquare
	}

	return BlackSquare
}

func (t PuzzleType) String() string {
	switch t {
	case PuzzleNormal:
		return "Normal"
	case PuzzleDiagramless:
		return "Diagramless"
	default:
		return "Unknown"
	}
}

func (s SolutionState) String() string {
	switch s {
	case SolutionUnlocked:
		return "Unlocked"
	case SolutionLocked:
		return "Locked"
	default:
		return "Unknown"
	}
}

// Has reports whether all bits of flag are set in m.
func (m MarkupFlag) Has(flag MarkupFlag) bool {
	return m&flag == flag && flag != 0
}

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	case CompressionXZ:
		return "XZ"
	default:
		return "Unknown"
	}
}
