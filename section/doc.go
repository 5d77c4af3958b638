// Package section defines the fixed binary structures of the Across Lite
// puzzle format: the 52-byte header, the version field and the extension
// record header.
//
// # File Structure
//
//	┌──────────────────────────────────────────────┐
//	│ Preamble (optional, arbitrary bytes)          │
//	├──────────────────────────────────────────────┤
//	│ Header (52 bytes, fixed)                      │
//	├──────────────────────────────────────────────┤
//	│ Solution grid (width×height bytes)            │
//	│ Fill grid (width×height bytes)                │
//	├──────────────────────────────────────────────┤
//	│ Title, author, copyright (NUL terminated)     │
//	│ Clues × clue count (NUL terminated)           │
//	│ Notes (NUL terminated)                        │
//	├──────────────────────────────────────────────┤
//	│ Extension records (zero or more)              │
//	│  - code (4) | length (2) | checksum (2)       │
//	│  - payload (length) | padding (1)             │
//	├──────────────────────────────────────────────┤
//	│ Postscript (fewer than 8 trailing bytes)      │
//	└──────────────────────────────────────────────┘
//
// All multi-byte integers are little-endian.
//
// # Versions
//
// The version field selects two independent things:
//
//   - the header Layout: versions 1.2 and later use CurrentLayout, which
//     names the scrambled checksum and splits the trailing word into puzzle
//     type and solution state; older or unparseable versions use
//     LegacyLayout, which keeps those bytes opaque.
//   - the Revision: 2.0 and later store text as UTF-8, earlier versions as
//     ISO-8859-1.
//
// Both layouts serialize to the same 52 bytes; the distinction only decides
// which fields a puzzle may interpret and modify.
package section
