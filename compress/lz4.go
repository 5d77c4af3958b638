package compress

import (
	"bytes"
	"fmt"

	"github.com/pierrec/lz4/v4"

	"github.com/arloliu/puz/format"
)

// LZ4Compressor frames data as an LZ4 frame, the format of the lz4 tool.
type LZ4Compressor struct{}

var _ Codec = (*LZ4Compressor)(nil)

func NewLZ4Compressor() LZ4Compressor {
	return LZ4Compressor{}
}

func (c LZ4Compressor) Type() format.CompressionType { return format.CompressionLZ4 }

func (c LZ4Compressor) Compress(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	w := lz4.NewWriter(&buf)
	if err := w.Apply(lz4.ChecksumOption(true), lz4.ConcurrencyOption(1)); err != nil {
		return nil, fmt.Errorf("lz4 compression failed: %w", err)
	}
	if _, err := w.Write(data); err != nil {
		return nil, fmt.Errorf("lz4 compression failed: %w", err)
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("lz4 compression failed: %w", err)
	}

	return buf.Bytes(), nil
}

func (c LZ4Compressor) Decompress(data []byte) ([]byte, error) {
	out, err := readLimited(lz4.NewReader(bytes.NewReader(data)))
	if err != nil {
		return nil, fmt.Errorf("lz4 decompression failed: %w", err)
	}

	return out, nil
}
