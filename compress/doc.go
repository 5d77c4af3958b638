// Package compress wraps whole puzzle files in an optional compression frame.
//
// Puzzles are stored uncompressed by default. A file whose name ends in one
// of the suffixes below is framed with the matching codec:
//
//	.zst, .zstd  Zstandard frame        (klauspost/compress/zstd)
//	.s2          S2 stream              (klauspost/compress/s2)
//	.lz4         LZ4 frame              (pierrec/lz4/v4)
//	.xz          xz stream              (ulikunitz/xz)
//
// The frame formats are the standard self-describing ones, so the files can
// be produced and read by the usual command-line tools. Detect recognizes
// each frame by its leading magic bytes.
package compress
