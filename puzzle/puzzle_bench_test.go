package puzzle

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/arloliu/puz/cipher"
)

// createBenchmarkPuzzle builds a size×size puzzle with every fifth cell black.
func createBenchmarkPuzzle(b *testing.B, size int) *Puzzle {
	b.Helper()

	grid := []byte(strings.Repeat("ABCDEFGHIJKLMNOPQRSTUVWXYZ", size*size/26+1)[:size*size])
	fill := bytes.Repeat([]byte{'-'}, size*size)
	for i := 4; i < len(grid); i += 5 {
		grid[i], fill[i] = '.', '.'
	}

	p := NewBlank(size, size)
	p.Solution = string(grid)
	p.Fill = string(fill)
	p.Title = "Benchmark"
	p.Author = "Bench Author"

	n, _ := p.ClueNumbering()
	p.Clues = make([]string, n.Required())
	for i := range p.Clues {
		p.Clues[i] = fmt.Sprintf("Clue %d", i+1)
	}

	return p
}

var benchmarkSizes = []int{5, 15, 21}

func BenchmarkParse(b *testing.B) {
	for _, size := range benchmarkSizes {
		b.Run(fmt.Sprintf("%dx%d", size, size), func(b *testing.B) {
			data, err := createBenchmarkPuzzle(b, size).Bytes()
			if err != nil {
				b.Fatal(err)
			}

			b.ReportAllocs()
			b.SetBytes(int64(len(data)))
			b.ResetTimer()

			for b.Loop() {
				_, _ = Parse(data)
			}
		})
	}
}

func BenchmarkBytes(b *testing.B) {
	for _, size := range benchmarkSizes {
		b.Run(fmt.Sprintf("%dx%d", size, size), func(b *testing.B) {
			p := createBenchmarkPuzzle(b, size)

			b.ReportAllocs()
			b.ResetTimer()

			for b.Loop() {
				_, _ = p.Bytes()
			}
		})
	}
}

func BenchmarkRecoverKey(b *testing.B) {
	p := createBenchmarkPuzzle(b, 15)
	if err := p.Lock(cipher.MustKey(9876)); err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.ResetTimer()

	for b.Loop() {
		_, _ = p.RecoverKey()
	}
}
