package compress

import (
	"bytes"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/arloliu/puz/errs"
	"github.com/arloliu/puz/format"
)

// MaxDecompressedSize bounds the output of Decompress. No real puzzle comes
// close; the limit only stops malformed frames from exhausting memory.
const MaxDecompressedSize = 16 << 20

// Compressor produces a complete, self-describing frame.
type Compressor interface {
	Compress(data []byte) ([]byte, error)
}

// Decompressor reverses Compressor.
type Decompressor interface {
	Decompress(data []byte) ([]byte, error)
}

// Codec combines both directions.
type Codec interface {
	Compressor
	Decompressor
	Type() format.CompressionType
}

var builtinCodecs = map[format.CompressionType]Codec{
	format.CompressionNone: NewNoOpCompressor(),
	format.CompressionZstd: NewZstdCompressor(),
	format.CompressionS2:   NewS2Compressor(),
	format.CompressionLZ4:  NewLZ4Compressor(),
	format.CompressionXZ:   NewXZCompressor(),
}

// GetCodec returns the built-in Codec for compressionType.
func GetCodec(compressionType format.CompressionType) (Codec, error) {
	if codec, ok := builtinCodecs[compressionType]; ok {
		return codec, nil
	}

	return nil, fmt.Errorf("%w: %s", errs.ErrUnsupportedFraming, compressionType)
}

var suffixes = []struct {
	ext string
	typ format.CompressionType
}{
	{".zst", format.CompressionZstd},
	{".zstd", format.CompressionZstd},
	{".s2", format.CompressionS2},
	{".lz4", format.CompressionLZ4},
	{".xz", format.CompressionXZ},
}

// ForPath picks the compression for a file name by its final extension.
// Unknown extensions, including ".puz", mean no compression.
func ForPath(path string) format.CompressionType {
	ext := strings.ToLower(filepath.Ext(path))
	for _, s := range suffixes {
		if s.ext == ext {
			return s.typ
		}
	}

	return format.CompressionNone
}

var (
	zstdMagic = []byte{0x28, 0xB5, 0x2F, 0xFD}
	lz4Magic  = []byte{0x04, 0x22, 0x4D, 0x18}
	s2Magic   = []byte("\xff\x06\x00\x00S2sTwO")
	xzMagic   = []byte{0xFD, '7', 'z', 'X', 'Z', 0x00}
)

// Detect identifies a compression frame from its magic bytes.
func Detect(data []byte) format.CompressionType {
	switch {
	case bytes.HasPrefix(data, zstdMagic):
		return format.CompressionZstd
	case bytes.HasPrefix(data, lz4Magic):
		return format.CompressionLZ4
	case bytes.HasPrefix(data, s2Magic):
		return format.CompressionS2
	case bytes.HasPrefix(data, xzMagic):
		return format.CompressionXZ
	default:
		return format.CompressionNone
	}
}

// readLimited drains r, failing once more than MaxDecompressedSize bytes
// come out.
func readLimited(r io.Reader) ([]byte, error) {
	out, err := io.ReadAll(io.LimitReader(r, MaxDecompressedSize+1))
	if err != nil {
		return nil, err
	}
	if len(out) > MaxDecompressedSize {
		return nil, fmt.Errorf("decompressed data exceeds %d bytes", MaxDecompressedSize)
	}

	return out, nil
}
