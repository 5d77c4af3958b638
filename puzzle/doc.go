// Package puzzle reads and writes Across Lite (.puz) crossword files.
//
// Parse turns a file into a Puzzle and Bytes turns it back. For every file
// written by a compliant tool the pair is a fixed point:
//
//	p, err := puzzle.Parse(data)
//	out, err := p.Bytes()
//	// bytes.Equal(data, out)
//
// This holds for bytes before the header (Preamble), bytes after the last
// extension record (Postscript), extension order and reserved header bytes.
// Checksums are validated on Parse and always recomputed by Bytes.
//
// Locked puzzles carry a scrambled solution. Lock and Unlock convert between
// the two states with a four digit key, and CheckAnswers verifies a candidate
// solution against a locked puzzle without the key.
//
// The rebus, markup and timer extensions are available as decoded views
// through Rebus, Markup and Timer. Changes made through a view reach the
// serialized file only after Commit.
package puzzle
