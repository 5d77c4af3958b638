package compress

import (
	"bytes"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/puz/errs"
	"github.com/arloliu/puz/format"
)

func samplePuzzleBytes() []byte {
	var b bytes.Buffer
	b.WriteString("\x00\x00ACROSS&DOWN\x00")
	for i := 0; i < 40; i++ {
		b.WriteString("A clue that repeats a lot\x00")
	}

	return b.Bytes()
}

func getAllCodecs() map[string]Codec {
	return map[string]Codec{
		"None": NewNoOpCompressor(),
		"Zstd": NewZstdCompressor(),
		"S2":   NewS2Compressor(),
		"LZ4":  NewLZ4Compressor(),
		"XZ":   NewXZCompressor(),
	}
}

func TestAllCodecs_RoundTrip(t *testing.T) {
	data := samplePuzzleBytes()

	for name, codec := range getAllCodecs() {
		t.Run(name, func(t *testing.T) {
			compressed, err := codec.Compress(data)
			require.NoError(t, err)
			if codec.Type() != format.CompressionNone {
				require.Less(t, len(compressed), len(data))
			}
			require.Equal(t, codec.Type(), Detect(compressed))

			out, err := codec.Decompress(compressed)
			require.NoError(t, err)
			require.Equal(t, data, out)
		})
	}
}

func TestAllCodecs_EmptyData(t *testing.T) {
	for name, codec := range getAllCodecs() {
		t.Run(name, func(t *testing.T) {
			compressed, err := codec.Compress(nil)
			require.NoError(t, err)

			out, err := codec.Decompress(compressed)
			require.NoError(t, err)
			require.Empty(t, out)
		})
	}
}

func TestAllCodecs_InvalidData(t *testing.T) {
	garbage := []byte("definitely not a compressed frame")

	for name, codec := range getAllCodecs() {
		if codec.Type() == format.CompressionNone {
			continue
		}
		t.Run(name, func(t *testing.T) {
			_, err := codec.Decompress(garbage)
			require.Error(t, err)
		})
	}
}

func TestAllCodecs_ConcurrentUsage(t *testing.T) {
	data := samplePuzzleBytes()

	for name, codec := range getAllCodecs() {
		t.Run(name, func(t *testing.T) {
			var wg sync.WaitGroup
			for i := 0; i < 8; i++ {
				wg.Add(1)
				go func() {
					defer wg.Done()
					compressed, err := codec.Compress(data)
					require.NoError(t, err)
					out, err := codec.Decompress(compressed)
					require.NoError(t, err)
					require.Equal(t, data, out)
				}()
			}
			wg.Wait()
		})
	}
}

func TestGetCodec(t *testing.T) {
	for _, typ := range []format.CompressionType{format.CompressionNone, format.CompressionZstd, format.CompressionS2, format.CompressionLZ4, format.CompressionXZ} {
		codec, err := GetCodec(typ)
		require.NoError(t, err)
		require.Equal(t, typ, codec.Type())
	}

	_, err := GetCodec(format.CompressionType(99))
	require.ErrorIs(t, err, errs.ErrUnsupportedFraming)
}

func TestForPath(t *testing.T) {
	tests := []struct {
		path string
		want format.CompressionType
	}{
		{"daily.puz", format.CompressionNone},
		{"daily", format.CompressionNone},
		{"daily.puz.zst", format.CompressionZstd},
		{"archive/daily.puz.ZSTD", format.CompressionZstd},
		{"daily.puz.s2", format.CompressionS2},
		{"daily.puz.lz4", format.CompressionLZ4},
		{"daily.lz4.puz", format.CompressionNone},
		{"daily.puz.xz", format.CompressionXZ},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			require.Equal(t, tt.want, ForPath(tt.path))
		})
	}
}

func TestDetect_Plain(t *testing.T) {
	require.Equal(t, format.CompressionNone, Detect(samplePuzzleBytes()))
	require.Equal(t, format.CompressionNone, Detect(nil))
}
