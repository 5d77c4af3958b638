package puzzle

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/arloliu/puz/errs"
	"github.com/arloliu/puz/extension"
	"github.com/arloliu/puz/internal/cursor"
	"github.com/arloliu/puz/internal/options"
	"github.com/arloliu/puz/section"
)

// Parse decodes a complete .puz file. Bytes before the ACROSS&DOWN header
// become the Preamble and bytes after the last extension record become the
// Postscript.
//
// Structural problems are reported with errs.ErrMissingMarker,
// errs.ErrTruncatedBuffer or errs.ErrMissingTerminator; checksum problems
// with a *errs.ChecksumError. No puzzle is returned on error.
func Parse(data []byte, opts ...ParseOption) (*Puzzle, error) {
	cfg := newParseConfig()
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	r := cursor.NewReader(data, nil)
	if !r.Locate([]byte(section.MagicLiteral), -section.MagicOffset) {
		if bytes.Contains(data, []byte(section.MagicLiteral)) {
			return nil, fmt.Errorf("%w: header starts before the buffer", errs.ErrTruncatedBuffer)
		}

		return nil, errs.ErrMissingMarker
	}

	p := &Puzzle{Preamble: bytes.Clone(r.Consumed())}

	raw, err := r.Read(section.HeaderSize)
	if err != nil {
		return nil, fmt.Errorf("header: %w", err)
	}
	h, err := section.ParseHeader(raw)
	if err != nil {
		return nil, err
	}

	fields := h.Fields()
	p.Width, p.Height = int(h.Width), int(h.Height)
	p.Version = h.Version
	p.Reserved = fields.Reserved
	p.ScrambledChecksum = fields.ScrambledChecksum
	p.Type = fields.Type
	p.State = fields.State

	r.SetEncoding(p.Encoding())

	if err := p.readBody(r, int(h.ClueCount)); err != nil {
		return nil, err
	}

	set, stored, err := extension.Decode(r)
	if err != nil {
		return nil, err
	}
	p.Extensions = set
	p.Postscript = bytes.Clone(r.Rest())

	cfg.logger.Debug("parsed puzzle",
		"version", p.Version.String(),
		"width", p.Width,
		"height", p.Height,
		"clues", len(p.Clues),
		"extensions", set.Len(),
		"preamble", len(p.Preamble),
		"postscript", len(p.Postscript),
	)

	if err := p.validate(&h, stored, cfg); err != nil {
		return nil, err
	}

	if cfg.clueCheck {
		p.checkClues(cfg)
	}

	return p, nil
}

// Load is Parse with default options.
func Load(data []byte) (*Puzzle, error) {
	return Parse(data)
}

func (p *Puzzle) readBody(r *cursor.Reader, clueCount int) error {
	cells := p.Cells()

	solution, err := r.Read(cells)
	if err != nil {
		return fmt.Errorf("solution grid: %w", err)
	}
	fill, err := r.Read(cells)
	if err != nil {
		return fmt.Errorf("fill grid: %w", err)
	}
	p.Solution, p.Fill = string(solution), string(fill)

	for _, f := range []struct {
		name string
		dst  *string
	}{
		{"title", &p.Title},
		{"author", &p.Author},
		{"copyright", &p.Copyright},
	} {
		if *f.dst, err = r.ReadUntil(0); err != nil {
			return fmt.Errorf("%s: %w", f.name, err)
		}
	}

	p.Clues = make([]string, clueCount)
	for i := range p.Clues {
		if p.Clues[i], err = r.ReadUntil(0); err != nil {
			return fmt.Errorf("clue %d of %d: %w", i+1, clueCount, err)
		}
	}

	if p.Notes, err = r.ReadUntil(0); err != nil {
		return fmt.Errorf("notes: %w", err)
	}

	return nil
}

// validate checks the header checksums, then every extension record in read
// order.
func (p *Puzzle) validate(h *section.Header, stored []extension.Stored, cfg *parseConfig) error {
	text, err := p.encodeText(p.Encoding())
	if err != nil {
		return err
	}

	computed := p.checksums(h, text)

	errList := []error{verify(h, computed)}
	for _, s := range stored {
		errList = append(errList, s.Verify())
	}

	for _, err := range errList {
		if err == nil {
			continue
		}
		if cfg.validate {
			return err
		}
		cfg.logger.Warn("ignoring checksum mismatch", "error", err)
	}

	return nil
}

func (p *Puzzle) checkClues(cfg *parseConfig) {
	_, err := p.ClueNumbering()

	var ce *errs.ClueCountError
	switch {
	case errors.As(err, &ce):
		cfg.logger.Warn("clue count does not match grid",
			"required", ce.Required,
			"available", ce.Available,
		)
	case err != nil:
		cfg.logger.Warn("cannot number grid", "error", err)
	}
}
