package compress

import "github.com/arloliu/puz/format"

// NoOpCompressor passes data through unchanged. The returned slice shares
// memory with the input.
type NoOpCompressor struct{}

var _ Codec = (*NoOpCompressor)(nil)

func NewNoOpCompressor() NoOpCompressor {
	return NoOpCompressor{}
}

func (c NoOpCompressor) Type() format.CompressionType { return format.CompressionNone }

func (c NoOpCompressor) Compress(data []byte) ([]byte, error) {
	return data, nil
}

func (c NoOpCompressor) Decompress(data []byte) ([]byte, error) {
	return data, nil
}
