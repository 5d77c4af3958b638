// Package errs defines the error values returned by the puz packages.
//
// Structural parse failures are fatal for the call that produced them and are
// reported through the sentinels below, either directly or wrapped with
// context. Callers should match them with errors.Is:
//
//	p, err := puzzle.Parse(data)
//	switch {
//	case errors.Is(err, errs.ErrMissingMarker):
//	    // not an Across Lite file at all
//	case errors.Is(err, errs.ErrChecksumMismatch):
//	    // the right format, but damaged
//	}
//
// ErrWrongUnlockKey is the one expected, non-fatal outcome: it is returned by
// Unlock when the key does not verify, and the puzzle is left unchanged.
package errs

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingMarker means the input does not contain the ACROSS&DOWN magic literal.
	ErrMissingMarker = errors.New("puz: magic marker not found")
	// ErrTruncatedBuffer means a declared length runs past the end of the input.
	ErrTruncatedBuffer = errors.New("puz: truncated buffer")
	// ErrMissingTerminator means a text field has no NUL terminator before the end of the input.
	ErrMissingTerminator = errors.New("puz: missing text terminator")
	// ErrChecksumMismatch is matched by every *ChecksumError.
	ErrChecksumMismatch = errors.New("puz: checksum mismatch")
	// ErrWrongUnlockKey means the key did not reproduce the stored scrambled checksum.
	ErrWrongUnlockKey = errors.New("puz: wrong unlock key")

	ErrInvalidHeaderSize  = errors.New("puz: invalid header size")
	ErrInvalidText        = errors.New("puz: text is not valid in the declared encoding")
	ErrUnencodableText    = errors.New("puz: text cannot be represented in the declared encoding")
	ErrInvalidKey         = errors.New("puz: unlock key must have at most 4 decimal digits")
	ErrUnscrambleable     = errors.New("puz: grid contains characters outside A-Z")
	ErrGridSize           = errors.New("puz: grid length does not match width*height")
	ErrDimensions         = errors.New("puz: width and height must fit in one byte")
	ErrTooManyClues       = errors.New("puz: clue count exceeds 65535")
	ErrExtensionTooLarge  = errors.New("puz: extension payload exceeds 65535 bytes")
	ErrInvalidExtension   = errors.New("puz: malformed extension payload")
	ErrClueCountMismatch  = errors.New("puz: clue count does not match grid")
	ErrUnsupportedFraming = errors.New("puz: unsupported file compression")
)

// ChecksumError reports which stored checksum disagreed with the recomputed value.
type ChecksumError struct {
	Which    string // "header", "global", "magic" or "extension GRBS" etc.
	Stored   uint64
	Computed uint64
}

func (e *ChecksumError) Error() string {
	return fmt.Sprintf("puz: %s checksum does not match (stored %#x, computed %#x)", e.Which, e.Stored, e.Computed)
}

func (e *ChecksumError) Unwrap() error {
	return ErrChecksumMismatch
}

// ClueCountError is returned alongside a clue numbering whose walk needed a
// different number of clues than the puzzle carries.
type ClueCountError struct {
	Required  int
	Available int
}

func (e *ClueCountError) Error() string {
	return fmt.Sprintf("puz: grid requires %d clues but %d are present", e.Required, e.Available)
}

func (e *ClueCountError) Unwrap() error {
	return ErrClueCountMismatch
}
