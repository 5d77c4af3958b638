package puzzle

import (
	"bytes"
	"slices"

	"github.com/arloliu/puz/encoding"
	"github.com/arloliu/puz/extension"
	"github.com/arloliu/puz/format"
	"github.com/arloliu/puz/internal/hash"
	"github.com/arloliu/puz/numbering"
	"github.com/arloliu/puz/section"
)

// Puzzle is an Across Lite crossword.
//
// Solution and Fill hold one byte per cell in row-major order. Black squares
// are '.', or ':' in the fill of a diagramless puzzle; empty fill cells are
// '-'. Text fields are Go strings and are encoded according to Version when
// written.
type Puzzle struct {
	Width  int
	Height int

	Solution string
	Fill     string

	Title     string
	Author    string
	Copyright string
	Notes     string
	Clues     []string

	Extensions *extension.Set

	Type              format.PuzzleType
	State             format.SolutionState
	ScrambledChecksum uint16
	Version           section.Version
	Reserved          section.Reserved

	Preamble   []byte
	Postscript []byte

	rebus  *extension.Rebus
	markup *extension.Markup
	timer  *extension.Timer
}

// New returns an empty, unlocked, normal puzzle at version 1.3.
func New() *Puzzle {
	return &Puzzle{
		Extensions: extension.NewSet(),
		Type:       format.PuzzleNormal,
		State:      format.SolutionUnlocked,
		Version:    section.NewVersion(section.DefaultVersion),
	}
}

// NewBlank returns a puzzle of the given size whose fill is empty cells.
// The solution starts out as all black squares.
func NewBlank(width, height int) *Puzzle {
	p := New()
	p.Width, p.Height = width, height
	p.Solution = string(bytes.Repeat([]byte{format.BlackSquare}, width*height))
	p.Fill = string(bytes.Repeat([]byte{format.EmptyCell}, width*height))

	return p
}

// Layout returns the header layout selected by the puzzle's version.
func (p *Puzzle) Layout() section.LayoutKind {
	return p.Version.Layout()
}

// Encoding returns the text encoding selected by the puzzle's version.
func (p *Puzzle) Encoding() encoding.Text {
	return p.Version.Revision().Encoding()
}

// Cells is Width*Height.
func (p *Puzzle) Cells() int {
	return p.Width * p.Height
}

// IsLocked reports whether the solution is scrambled.
func (p *Puzzle) IsLocked() bool {
	return p.State == format.SolutionLocked
}

// Clone returns a deep copy. Views that were not committed are not copied.
func (p *Puzzle) Clone() *Puzzle {
	c := *p
	c.Clues = slices.Clone(p.Clues)
	c.Preamble = bytes.Clone(p.Preamble)
	c.Postscript = bytes.Clone(p.Postscript)
	if p.Extensions != nil {
		c.Extensions = p.Extensions.Clone()
	}
	c.rebus, c.markup, c.timer = nil, nil, nil

	return &c
}

// Fingerprint identifies the puzzle by its dimensions, solution and clues.
// Locking changes the fingerprint.
func (p *Puzzle) Fingerprint() uint64 {
	f := hash.NewFingerprint()
	f.AddInt(p.Width)
	f.AddInt(p.Height)
	f.AddString(p.Solution)
	f.AddInt(len(p.Clues))
	for _, c := range p.Clues {
		f.AddString(c)
	}

	return f.Sum64()
}

// ClueNumbering numbers the fill grid and assigns the clues. The minimum run
// defaults to the one implied by the puzzle's version.
func (p *Puzzle) ClueNumbering(opts ...numbering.Option) (*numbering.Numbering, error) {
	all := append([]numbering.Option{numbering.WithMinRun(p.Version.Revision().MinClueRun())}, opts...)

	return numbering.Number(p.Fill, p.Clues, p.Width, p.Height, all...)
}

func (p *Puzzle) extensions() *extension.Set {
	if p.Extensions == nil {
		p.Extensions = extension.NewSet()
	}

	return p.Extensions
}
