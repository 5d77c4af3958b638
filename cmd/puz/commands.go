package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/arloliu/puz/cipher"
	"github.com/arloliu/puz/compress"
	"github.com/arloliu/puz/errs"
	"github.com/arloliu/puz/extension"
	"github.com/arloliu/puz/format"
	"github.com/arloliu/puz/internal/collision"
	"github.com/arloliu/puz/internal/hash"
	"github.com/arloliu/puz/numbering"
	"github.com/arloliu/puz/puzzle"
	"github.com/arloliu/puz/section"
)

// InfoCmd prints a summary of one puzzle.
type InfoCmd struct {
	Path        string `arg:"" help:"Puzzle file" type:"existingfile"`
	NoChecksums bool   `name:"no-checksums" help:"Accept files with bad checksums"`
}

func (c *InfoCmd) Run(out io.Writer, logger *slog.Logger) error {
	p, err := puzzle.ReadFile(c.Path, parseOptions(logger, c.NoChecksums)...)
	if err != nil {
		return err
	}

	sums, err := p.Checksums()
	if err != nil {
		return err
	}
	data, err := p.Bytes()
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "title:       %s\n", p.Title)
	fmt.Fprintf(out, "author:      %s\n", p.Author)
	fmt.Fprintf(out, "copyright:   %s\n", p.Copyright)
	fmt.Fprintf(out, "size:        %dx%d\n", p.Width, p.Height)
	fmt.Fprintf(out, "version:     %s (%s)\n", p.Version, p.Version.Revision())
	fmt.Fprintf(out, "type:        %s\n", p.Type)
	fmt.Fprintf(out, "locked:      %t\n", p.IsLocked())
	fmt.Fprintf(out, "clues:       %d\n", len(p.Clues))
	for _, code := range p.Extensions.Codes() {
		payload, _ := p.Extensions.Get(code)
		fmt.Fprintf(out, "extension:   %s (%d bytes)\n", code, len(payload))
	}
	if p.HasRebus() {
		r, err := p.Rebus()
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "rebus:       %d squares\n", len(r.Squares()))
	}
	if p.Extensions.Has(extension.CodeTimer) {
		tm, err := p.Timer()
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "timer:       %s (running: %t)\n", tm.Elapsed, tm.Running())
	}
	if p.Notes != "" {
		fmt.Fprintf(out, "notes:       %s\n", p.Notes)
	}
	fmt.Fprintf(out, "checksums:   header=%04x global=%04x magic=%016x\n", sums.Header, sums.Global, sums.Magic)
	fmt.Fprintf(out, "fingerprint: %016x\n", p.Fingerprint())
	fmt.Fprintf(out, "digest:      blake3:%s\n", hash.Digest(data))

	return nil
}

// VerifyCmd checks that every file round-trips byte for byte and reports
// files holding the same puzzle.
type VerifyCmd struct {
	Paths []string `arg:"" help:"Puzzle files"`
}

func (c *VerifyCmd) Run(out io.Writer, logger *slog.Logger) error {
	tracker := collision.NewTracker()
	failed := 0
	for _, path := range c.Paths {
		p, err := verifyFile(path, logger)
		if err != nil {
			failed++
			fmt.Fprintf(out, "FAIL %s: %v\n", path, err)

			continue
		}
		fmt.Fprintf(out, "ok   %s\n", path)
		tracker.Track(path, p.Fingerprint())
	}

	if tracker.HasDuplicates() {
		for _, d := range tracker.Duplicates() {
			fmt.Fprintf(out, "dup  %s: same puzzle as %s\n", d.Name, d.First)
		}
	}
	fmt.Fprintf(out, "%d files, %d distinct puzzles, %d duplicates, %d failed\n",
		len(c.Paths), tracker.Count(), len(tracker.Duplicates()), failed)

	if failed > 0 {
		return fmt.Errorf("%d of %d files failed", failed, len(c.Paths))
	}

	return nil
}

// verifyFile parses path and checks that serializing the result reproduces
// the file's (decompressed) bytes.
func verifyFile(path string, logger *slog.Logger) (*puzzle.Puzzle, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	if typ := compress.Detect(data); typ != format.CompressionNone {
		logger.Debug("decompressing", "path", path, "framing", typ.String())
		codec, err := compress.GetCodec(typ)
		if err != nil {
			return nil, err
		}
		if data, err = codec.Decompress(data); err != nil {
			return nil, err
		}
	}

	p, err := puzzle.Parse(data, puzzle.WithLogger(logger))
	if err != nil {
		return nil, err
	}

	again, err := p.Bytes()
	if err != nil {
		return nil, err
	}

	if !bytes.Equal(data, again) {
		at := mismatchAt(data, again)
		logger.Info("round trip differs", "path", path, "offset", at, "in", len(data), "out", len(again))

		return nil, fmt.Errorf("serialized bytes differ at offset %d", at)
	}

	return p, nil
}

func mismatchAt(a, b []byte) int {
	n := min(len(a), len(b))
	for i := range n {
		if a[i] != b[i] {
			return i
		}
	}

	return n
}

// CluesCmd lists the numbered clues of a puzzle.
type CluesCmd struct {
	Path   string `arg:"" help:"Puzzle file" type:"existingfile"`
	MinRun int    `name:"min-run" default:"-1" help:"Treat runs longer than this many cells as words; negative uses the version default"`
}

func (c *CluesCmd) Run(out io.Writer, logger *slog.Logger) error {
	p, err := puzzle.ReadFile(c.Path, puzzle.WithLogger(logger))
	if err != nil {
		return err
	}

	var opts []numbering.Option
	if c.MinRun >= 0 {
		opts = append(opts, numbering.WithMinRun(c.MinRun))
	}

	n, err := p.ClueNumbering(opts...)
	var countErr *errs.ClueCountError
	switch {
	case errors.As(err, &countErr):
		logger.Warn("clue count does not match grid", "required", countErr.Required, "available", countErr.Available)
	case err != nil:
		return err
	}

	for _, e := range n.Entries {
		fmt.Fprintf(out, "%3d %-6s %2d  %s\n", e.Number, e.Direction, e.Length, e.Clue)
	}

	return nil
}

// LockCmd scrambles a puzzle's solution.
type LockCmd struct {
	Path string `arg:"" help:"Puzzle file" type:"existingfile"`
	Key  string `required:"" help:"Four-digit key"`
	Out  string `required:"" help:"Output path" type:"path"`
}

func (c *LockCmd) Run(out io.Writer, logger *slog.Logger) error {
	key, err := cipher.ParseKey(c.Key)
	if err != nil {
		return err
	}

	p, err := puzzle.ReadFile(c.Path, puzzle.WithLogger(logger))
	if err != nil {
		return err
	}

	if p.IsLocked() {
		logger.Warn("puzzle is already locked", "path", c.Path)
	}
	if err := p.Lock(key); err != nil {
		return err
	}

	if err := puzzle.WriteFile(p, c.Out); err != nil {
		return err
	}
	fmt.Fprintf(out, "locked %s -> %s\n", c.Path, c.Out)

	return nil
}

// UnlockCmd unscrambles a puzzle's solution, by key or by search.
type UnlockCmd struct {
	Path    string `arg:"" help:"Puzzle file" type:"existingfile"`
	Key     string `xor:"key" required:"" help:"Four-digit key"`
	Recover bool   `xor:"key" required:"" help:"Search all keys for one that unlocks the solution"`
	Out     string `required:"" help:"Output path" type:"path"`
}

func (c *UnlockCmd) Run(out io.Writer, logger *slog.Logger) error {
	p, err := puzzle.ReadFile(c.Path, puzzle.WithLogger(logger))
	if err != nil {
		return err
	}

	if !p.IsLocked() {
		logger.Warn("puzzle is not locked", "path", c.Path)
	}

	var key cipher.Key
	if c.Recover {
		if key, err = p.RecoverKey(); err != nil {
			return err
		}
		fmt.Fprintf(out, "key: %s\n", key)
	} else if key, err = cipher.ParseKey(c.Key); err != nil {
		return err
	}

	if err := p.Unlock(key); err != nil {
		return err
	}

	if err := puzzle.WriteFile(p, c.Out); err != nil {
		return err
	}
	fmt.Fprintf(out, "unlocked %s -> %s\n", c.Path, c.Out)

	return nil
}

// ConvertCmd rewrites a puzzle. The output compression follows the output
// file suffix.
type ConvertCmd struct {
	Path        string `arg:"" help:"Input puzzle file" type:"existingfile"`
	Out         string `arg:"" help:"Output path (.puz, .puz.zst, .puz.s2, .puz.lz4 or .puz.xz)" type:"path"`
	SetVersion  string `name:"set-version" help:"Rewrite the version string, e.g. 2.0 for UTF-8 text"`
	NoChecksums bool   `name:"no-checksums" help:"Accept files with bad checksums"`
}

func (c *ConvertCmd) Run(out io.Writer, logger *slog.Logger) error {
	p, err := puzzle.ReadFile(c.Path, parseOptions(logger, c.NoChecksums)...)
	if err != nil {
		return err
	}

	if c.SetVersion != "" {
		v := section.NewVersion(c.SetVersion)
		if _, _, ok := v.Number(); !ok {
			return fmt.Errorf("invalid version %q", c.SetVersion)
		}
		if v.Layout() != p.Layout() {
			logger.Info("header layout changes", "from", p.Layout(), "to", v.Layout())
		}
		p.Version = v
	}

	if err := puzzle.WriteFile(p, c.Out); err != nil {
		return err
	}
	fmt.Fprintf(out, "wrote %s (version %s, %s)\n", c.Out, p.Version, compress.ForPath(c.Out))

	return nil
}

// VersionCmd prints the tool version.
type VersionCmd struct{}

func (c *VersionCmd) Run(out io.Writer) error {
	fmt.Fprintf(out, "puz version %s\n", version)

	return nil
}

func parseOptions(logger *slog.Logger, noChecksums bool) []puzzle.ParseOption {
	opts := []puzzle.ParseOption{puzzle.WithLogger(logger), puzzle.WithClueCheck()}
	if noChecksums {
		opts = append(opts, puzzle.WithoutChecksumValidation())
	}

	return opts
}
