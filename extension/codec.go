package extension

import (
	"encoding/binary"
	"fmt"

	"github.com/arloliu/puz/checksum"
	"github.com/arloliu/puz/errs"
	"github.com/arloliu/puz/internal/cursor"
	"github.com/arloliu/puz/section"
)

// Stored is the checksum a record carried on disk next to the checksum of the
// payload that was actually read.
type Stored struct {
	Code     Code
	Checksum uint16
	Computed uint16
}

// Verify returns a *errs.ChecksumError when the stored and computed checksums
// disagree.
func (s Stored) Verify() error {
	if s.Checksum == s.Computed {
		return nil
	}

	return &errs.ChecksumError{Which: "extension " + s.Code.String(), Stored: uint64(s.Checksum), Computed: uint64(s.Computed)}
}

// Decode reads records while a full record header is available. Bytes left
// after the loop stay unread for the caller to keep as a postscript.
//
// When a code appears twice the later payload replaces the earlier one in
// place. Stored lists every record in read order, duplicates included.
func Decode(r *cursor.Reader) (*Set, []Stored, error) {
	set := NewSet()
	var stored []Stored

	for r.CanRead(section.ExtensionHeaderSize) {
		hdr, _ := r.Read(section.ExtensionHeaderSize)

		var code Code
		copy(code[:], hdr[0:4])
		length := int(binary.LittleEndian.Uint16(hdr[4:6]))
		sum := binary.LittleEndian.Uint16(hdr[6:8])

		payload, err := r.Read(length)
		if err != nil {
			return nil, nil, fmt.Errorf("extension %s: %w", code, err)
		}
		if _, err := r.Read(section.ExtensionPadding); err != nil {
			return nil, nil, fmt.Errorf("extension %s padding: %w", code, err)
		}

		set.Set(code, payload)
		stored = append(stored, Stored{Code: code, Checksum: sum, Computed: checksum.Sum(payload, 0)})
	}

	return set, stored, nil
}

// Encode appends every record in set order with a freshly computed length
// and checksum.
func Encode(w *cursor.Writer, set *Set) error {
	if set == nil {
		return nil
	}

	for code, payload := range set.All() {
		if len(payload) > section.MaxExtensionSize {
			return fmt.Errorf("%w: %s has %d bytes", errs.ErrExtensionTooLarge, code, len(payload))
		}
	}

	for code, payload := range set.All() {
		if err := w.WriteFixed([4]byte(code), uint16(len(payload)), checksum.Sum(payload, 0)); err != nil { //nolint:gosec
			return err
		}
		w.WriteBytes(payload)
		if err := w.WriteByte(0); err != nil {
			return err
		}
	}

	return nil
}
