package compress

import (
	"bytes"
	"fmt"

	"github.com/ulikunitz/xz"

	"github.com/arloliu/puz/format"
)

// XZCompressor frames data as an .xz stream.
type XZCompressor struct{}

var _ Codec = (*XZCompressor)(nil)

func NewXZCompressor() XZCompressor {
	return XZCompressor{}
}

func (c XZCompressor) Type() format.CompressionType { return format.CompressionXZ }

func (c XZCompressor) Compress(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	w, err := xz.NewWriter(&buf)
	if err != nil {
		return nil, fmt.Errorf("xz compression failed: %w", err)
	}
	if _, err := w.Write(data); err != nil {
		return nil, fmt.Errorf("xz compression failed: %w", err)
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("xz compression failed: %w", err)
	}

	return buf.Bytes(), nil
}

func (c XZCompressor) Decompress(data []byte) ([]byte, error) {
	r, err := xz.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("xz decompression failed: %w", err)
	}

	out, err := readLimited(r)
	if err != nil {
		return nil, fmt.Errorf("xz decompression failed: %w", err)
	}

	return out, nil
}
