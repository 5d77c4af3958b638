// Package puz reads and writes Across Lite .puz crossword files.
//
// A .puz file is a little-endian binary container: a fixed 52-byte header
// anchored by the ACROSS&DOWN literal, the solution and fill grids, a run of
// NUL-terminated text fields, and optional extension records carrying rebus,
// markup and timer data. Every section is guarded by a 16-bit rolling
// checksum, and the solution may be scrambled with a four-digit key.
//
// # Core Features
//
//   - Byte-exact round trips, including unknown header bytes, leading
//     preamble bytes and trailing postscript bytes
//   - Checksum verification on read and recomputation on write
//   - Version 1.x (ISO-8859-1) and 2.x (UTF-8) text
//   - Solution locking, unlocking and key recovery
//   - Rebus, markup and timer views over extension records
//   - Clue numbering derived from the grid
//   - Optional Zstandard, S2, LZ4 or xz framing for files on disk
//
// # Basic Usage
//
// Reading a puzzle and walking its clues:
//
//	import "github.com/arloliu/puz"
//
//	p, err := puz.Read("monday.puz")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	n, err := p.ClueNumbering()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, e := range n.Entries {
//	    fmt.Printf("%d%s %s\n", e.Number, e.Direction, e.Clue)
//	}
//
// Unlocking a scrambled solution and saving a compressed copy:
//
//	key, _ := cipher.ParseKey("1234")
//	if err := p.Unlock(key); err != nil {
//	    log.Fatal(err)
//	}
//	if err := puz.Write(p, "monday.puz.zst"); err != nil {
//	    log.Fatal(err)
//	}
//
// # Package Structure
//
// This package provides top-level wrappers around the puzzle package for the
// most common cases. Use puzzle, extension, cipher and numbering directly for
// finer control.
package puz

import (
	"github.com/arloliu/puz/internal/hash"
	"github.com/arloliu/puz/puzzle"
)

// Puzzle is the decoded form of a .puz file.
type Puzzle = puzzle.Puzzle

// Read parses the puzzle stored at path. Compressed files are recognized by
// their frame header.
//
// Example:
//
//	p, err := puz.Read("monday.puz", puzzle.WithClueCheck())
func Read(path string, opts ...puzzle.ParseOption) (*Puzzle, error) {
	return puzzle.ReadFile(path, opts...)
}

// Load parses an in-memory .puz image.
func Load(data []byte, opts ...puzzle.ParseOption) (*Puzzle, error) {
	return puzzle.Parse(data, opts...)
}

// Write serializes p to path, framing the output according to the file
// suffix (.zst, .s2, .lz4, .xz, or none).
func Write(p *Puzzle, path string) error {
	return puzzle.WriteFile(p, path)
}

// New returns an empty version 1.3 puzzle.
func New() *Puzzle {
	return puzzle.New()
}

// NewBlank returns a width×height puzzle with an empty fill and an all-black
// solution.
func NewBlank(width, height int) *Puzzle {
	return puzzle.NewBlank(width, height)
}

// TextID returns the xxHash64 of s, the hash function behind
// Puzzle.Fingerprint. It is handy for keying puzzles by title or author.
func TextID(s string) uint64 {
	return hash.ID(s)
}
