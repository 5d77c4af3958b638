package puzzle

import (
	"fmt"
	"os"

	"github.com/arloliu/puz/compress"
	"github.com/arloliu/puz/format"
)

// ReadFile reads and parses the puzzle at path. Zstandard, S2, LZ4 and xz framed
// files are recognized by their content and decompressed first.
func ReadFile(path string, opts ...ParseOption) (*Puzzle, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	if typ := compress.Detect(data); typ != format.CompressionNone {
		codec, err := compress.GetCodec(typ)
		if err != nil {
			return nil, err
		}
		if data, err = codec.Decompress(data); err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
	}

	p, err := Parse(data, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return p, nil
}

// WriteFile serializes p to path. The compression frame is chosen from the
// file extension; see compress.ForPath.
func WriteFile(p *Puzzle, path string) error {
	data, err := p.Bytes()
	if err != nil {
		return err
	}

	codec, err := compress.GetCodec(compress.ForPath(path))
	if err != nil {
		return err
	}
	if data, err = codec.Compress(data); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	return os.WriteFile(path, data, 0o644) //nolint:gosec
}
