package puzzle

import (
	"fmt"

	"github.com/arloliu/puz/checksum"
	"github.com/arloliu/puz/encoding"
	"github.com/arloliu/puz/errs"
	"github.com/arloliu/puz/section"
)

// Checksums are the values a writer stores in the header, derived from the
// puzzle's fields alone.
type Checksums struct {
	Header   uint16
	Solution uint16
	Fill     uint16
	Text     uint16
	Global   uint16
	Magic    uint64
}

// Checksums computes every header checksum for the current field values. It
// fails only when a text field cannot be encoded or the dimensions do not fit
// the header.
func (p *Puzzle) Checksums() (Checksums, error) {
	h, err := p.header()
	if err != nil {
		return Checksums{}, err
	}
	text, err := p.encodeText(p.Encoding())
	if err != nil {
		return Checksums{}, err
	}

	return p.checksums(&h, text), nil
}

func (p *Puzzle) checksums(h *section.Header, text *encodedText) Checksums {
	var c Checksums
	c.Header = checksum.Sum(h.ChecksumRegion(), 0)
	c.Solution = checksum.SumString(p.Solution, 0)
	c.Fill = checksum.SumString(p.Fill, 0)
	c.Text = text.checksum(0, p.Version.NotesInChecksum())

	global := checksum.NewHasher(c.Header)
	_, _ = global.WriteString(p.Solution)
	_, _ = global.WriteString(p.Fill)
	c.Global = text.checksum(global.Sum16(), p.Version.NotesInChecksum())

	c.Magic = checksum.Magic([4]uint16{c.Header, c.Solution, c.Fill, c.Text})

	return c
}

// encodedText is the text section in file encoding, without terminators.
type encodedText struct {
	title, author, copyright, notes []byte
	clues                           [][]byte
}

func (p *Puzzle) encodeText(enc encoding.Text) (*encodedText, error) {
	var (
		t   encodedText
		err error
	)

	fields := []struct {
		name string
		src  string
		dst  *[]byte
	}{
		{"title", p.Title, &t.title},
		{"author", p.Author, &t.author},
		{"copyright", p.Copyright, &t.copyright},
		{"notes", p.Notes, &t.notes},
	}
	for _, f := range fields {
		if *f.dst, err = enc.Encode(f.src); err != nil {
			return nil, fmt.Errorf("%s: %w", f.name, err)
		}
	}

	t.clues = make([][]byte, len(p.Clues))
	for i, c := range p.Clues {
		if t.clues[i], err = enc.Encode(c); err != nil {
			return nil, fmt.Errorf("clue %d: %w", i, err)
		}
	}

	return &t, nil
}

// checksum chains the text fields onto seed. Title, author, copyright and
// notes include their terminator and are skipped when empty; clues never
// include it.
func (t *encodedText) checksum(seed uint16, withNotes bool) uint16 {
	h := checksum.NewHasher(seed)

	for _, f := range [][]byte{t.title, t.author, t.copyright} {
		if len(f) > 0 {
			_, _ = h.Write(f)
			_ = h.WriteByte(0)
		}
	}
	for _, c := range t.clues {
		if len(c) > 0 {
			_, _ = h.Write(c)
		}
	}
	if withNotes && len(t.notes) > 0 {
		_, _ = h.Write(t.notes)
		_ = h.WriteByte(0)
	}

	return h.Sum16()
}

// header builds the header for the current fields, without checksums.
func (p *Puzzle) header() (section.Header, error) {
	if p.Width < 0 || p.Width > section.MaxDimension || p.Height < 0 || p.Height > section.MaxDimension {
		return section.Header{}, fmt.Errorf("%w: %dx%d", errs.ErrDimensions, p.Width, p.Height)
	}
	if len(p.Clues) > section.MaxClueCount {
		return section.Header{}, fmt.Errorf("%w: %d", errs.ErrTooManyClues, len(p.Clues))
	}

	h := section.Header{
		Version:   p.Version,
		Width:     uint8(p.Width),       //nolint:gosec
		Height:    uint8(p.Height),      //nolint:gosec
		ClueCount: uint16(len(p.Clues)), //nolint:gosec
	}
	h.SetFields(section.Fields{
		Reserved:          p.Reserved,
		ScrambledChecksum: p.ScrambledChecksum,
		Type:              p.Type,
		State:             p.State,
	})

	return h, nil
}

// verify compares the stored header checksums with freshly computed ones, in
// the order header, global, magic.
func verify(stored *section.Header, computed Checksums) error {
	if stored.HeaderChecksum != computed.Header {
		return &errs.ChecksumError{Which: "header", Stored: uint64(stored.HeaderChecksum), Computed: uint64(computed.Header)}
	}
	if stored.GlobalChecksum != computed.Global {
		return &errs.ChecksumError{Which: "global", Stored: uint64(stored.GlobalChecksum), Computed: uint64(computed.Global)}
	}
	if stored.MagicChecksum != computed.Magic {
		return &errs.ChecksumError{Which: "magic", Stored: stored.MagicChecksum, Computed: computed.Magic}
	}

	return nil
}
