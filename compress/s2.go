package compress

import (
	"bytes"
	"fmt"

	"github.com/klauspost/compress/s2"

	"github.com/arloliu/puz/format"
)

// S2Compressor frames data as an S2 stream, the format written by the s2c
// tool.
type S2Compressor struct{}

var _ Codec = (*S2Compressor)(nil)

func NewS2Compressor() S2Compressor {
	return S2Compressor{}
}

func (c S2Compressor) Type() format.CompressionType { return format.CompressionS2 }

func (c S2Compressor) Compress(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	w := s2.NewWriter(&buf, s2.WriterConcurrency(1))
	if _, err := w.Write(data); err != nil {
		return nil, fmt.Errorf("s2 compression failed: %w", err)
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("s2 compression failed: %w", err)
	}

	return buf.Bytes(), nil
}

func (c S2Compressor) Decompress(data []byte) ([]byte, error) {
	out, err := readLimited(s2.NewReader(bytes.NewReader(data)))
	if err != nil {
		return nil, fmt.Errorf("s2 decompression failed: %w", err)
	}

	return out, nil
}
