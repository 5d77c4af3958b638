package section

import (
	"github.com/arloliu/puz/encoding"
)

// Version is the 4-byte, NUL padded version field, e.g. "1.3\x00".
//
// It is kept as raw bytes so unusual values such as "1.2c" round-trip.
type Version [4]byte

// NewVersion builds a Version from a string such as "1.3" or "2.0".
// Strings longer than four bytes are truncated.
func NewVersion(s string) Version {
	var v Version
	copy(v[:], s)

	return v
}

// String returns the version up to the first NUL.
func (v Version) String() string {
	for i, b := range v {
		if b == 0 {
			return string(v[:i])
		}
	}

	return string(v[:])
}

// Number parses the leading "major.minor" digits. ok is false when the
// version does not start with that shape.
func (v Version) Number() (major, minor int, ok bool) {
	i := 0
	major, i, ok = digits(v[:], i)
	if !ok || i >= len(v) || v[i] != '.' {
		return 0, 0, false
	}
	minor, _, ok = digits(v[:], i+1)
	if !ok {
		return 0, 0, false
	}

	return major, minor, true
}

// AtLeast reports whether the version is major.minor or newer.
// Unparseable versions are never at least anything.
func (v Version) AtLeast(major, minor int) bool {
	maj, mnr, ok := v.Number()
	if !ok {
		return false
	}

	return maj > major || (maj == major && mnr >= minor)
}

// NotesInChecksum reports whether the notes field feeds the text checksum,
// which is the case for version 1.3 only.
func (v Version) NotesInChecksum() bool {
	return v.String() == "1.3"
}

// Revision returns the behavior profile for this version.
func (v Version) Revision() Revision {
	if v.AtLeast(2, 0) {
		return Revision2
	}

	return Revision1
}

// Layout returns the header layout used by this version.
func (v Version) Layout() LayoutKind {
	if v.AtLeast(1, 2) {
		return LayoutCurrent
	}

	return LayoutLegacy
}

func digits(b []byte, i int) (int, int, bool) {
	n, start := 0, i
	for i < len(b) && b[i] >= '0' && b[i] <= '9' {
		n = n*10 + int(b[i]-'0')
		i++
	}

	return n, i, i > start
}

// Revision groups the version-dependent behaviors of the format other than
// header layout.
type Revision uint8

const (
	// Revision1 covers versions before 2.0: ISO-8859-1 text.
	Revision1 Revision = iota + 1
	// Revision2 covers 2.0 and later: UTF-8 text.
	Revision2
)

// Encoding returns the text encoding for the revision.
func (r Revision) Encoding() encoding.Text {
	if r == Revision2 {
		return encoding.UTF8
	}

	return encoding.Latin1
}

// MinClueRun is the run length a word must exceed to be numbered.
func (r Revision) MinClueRun() int {
	return 1
}

func (r Revision) String() string {
	switch r {
	case Revision1:
		return "1.x"
	case Revision2:
		return "2.x"
	default:
		return "unknown"
	}
}
