// Package cipher implements the reversible transposition/substitution cipher
// Across Lite uses to lock a puzzle's solution grid.
//
// A locked grid is produced in five steps:
//
//  1. transpose the grid to column-major order,
//  2. drop black squares, remembering where they were,
//  3. for each of the four key digits k: shift every letter forward by the
//     key digit at its position (cyclic over the key), rotate left by k, then
//     interleave the two halves of the sequence,
//  4. put the black squares back,
//  5. transpose back to row-major order.
//
// Unscrambling runs the inverse of step 3 with the digits in reverse order.
// Only the letters A-Z can be scrambled.
package cipher

import (
	"fmt"
	"strconv"

	"github.com/arloliu/puz/checksum"
	"github.com/arloliu/puz/errs"
	"github.com/arloliu/puz/format"
)

const alphabetSize = 26

// Key is a four digit unlock code, most significant digit first.
type Key [4]uint8

// NewKey converts n (0-9999) into its zero padded digits.
func NewKey(n int) (Key, error) {
	var k Key
	if n < 0 || n > 9999 {
		return k, fmt.Errorf("%w: %d", errs.ErrInvalidKey, n)
	}

	for i := len(k) - 1; i >= 0; i-- {
		k[i] = uint8(n % 10) //nolint:gosec
		n /= 10
	}

	return k, nil
}

// ParseKey parses a decimal key such as "7844" or "0042".
func ParseKey(s string) (Key, error) {
	if len(s) == 0 || len(s) > 4 {
		return Key{}, fmt.Errorf("%w: %q", errs.ErrInvalidKey, s)
	}

	n, err := strconv.Atoi(s)
	if err != nil {
		return Key{}, fmt.Errorf("%w: %q", errs.ErrInvalidKey, s)
	}

	return NewKey(n)
}

// MustKey is NewKey for constants; it panics on an out of range value.
func MustKey(n int) Key {
	k, err := NewKey(n)
	if err != nil {
		panic(err)
	}

	return k
}

// Int returns the key as an integer.
func (k Key) Int() int {
	n := 0
	for _, d := range k {
		n = n*10 + int(d)
	}

	return n
}

func (k Key) String() string {
	return fmt.Sprintf("%04d", k.Int())
}

func (k Key) valid() bool {
	for _, d := range k {
		if d > 9 {
			return false
		}
	}

	return true
}

// ScrambleString scrambles a sequence of letters A-Z.
func ScrambleString(s string, key Key) (string, error) {
	buf, err := letters(s, key)
	if err != nil {
		return "", err
	}

	return string(scramble(buf, key)), nil
}

// UnscrambleString is the inverse of ScrambleString.
func UnscrambleString(s string, key Key) (string, error) {
	buf, err := letters(s, key)
	if err != nil {
		return "", err
	}

	return string(unscramble(buf, key)), nil
}

// ScrambleSolution scrambles a row-major width×height grid that uses '.' for
// black squares.
func ScrambleSolution(grid string, width, height int, key Key) (string, error) {
	return ScrambleGrid(grid, width, height, key, format.BlackSquare)
}

// UnscrambleSolution is the inverse of ScrambleSolution.
func UnscrambleSolution(grid string, width, height int, key Key) (string, error) {
	return UnscrambleGrid(grid, width, height, key, format.BlackSquare)
}

// ScrambleGrid is ScrambleSolution with an explicit black-square sentinel.
func ScrambleGrid(grid string, width, height int, key Key, black byte) (string, error) {
	return transform(grid, width, height, key, black, scramble)
}

// UnscrambleGrid is UnscrambleSolution with an explicit black-square sentinel.
func UnscrambleGrid(grid string, width, height int, key Key, black byte) (string, error) {
	return transform(grid, width, height, key, black, unscramble)
}

// LockedChecksum is the rolling checksum of the column-major grid with black
// squares removed. It is the value stored as the scrambled checksum of a
// locked puzzle, computed over the plain solution, so a candidate answer can
// be verified without unscrambling. A grid whose length does not match
// width×height is summed as-is.
func LockedChecksum(grid string, width, height int, black byte) uint16 {
	if len(grid) != width*height {
		return checksum.SumString(grid, 0)
	}

	return checksum.Sum(stripBlack(transpose([]byte(grid), width, height), black), 0)
}

func transform(grid string, width, height int, key Key, black byte, fn func([]byte, Key) []byte) (string, error) {
	if width < 0 || height < 0 || len(grid) != width*height {
		return "", fmt.Errorf("%w: %d cells for %dx%d", errs.ErrGridSize, len(grid), width, height)
	}

	columns := transpose([]byte(grid), width, height)
	body, err := letters(string(stripBlack(columns, black)), key)
	if err != nil {
		return "", err
	}

	restored := restoreBlack(columns, fn(body, key), black)

	return string(transpose(restored, height, width)), nil
}

func letters(s string, key Key) ([]byte, error) {
	if !key.valid() {
		return nil, errs.ErrInvalidKey
	}

	buf := []byte(s)
	for i, c := range buf {
		if c < 'A' || c > 'Z' {
			return nil, fmt.Errorf("%w: %q at %d", errs.ErrUnscrambleable, c, i)
		}
	}

	return buf, nil
}

func scramble(s []byte, key Key) []byte {
	for _, k := range key {
		s = shift(s, key, 1)
		s = rotateLeft(s, int(k))
		s = interleave(s)
	}

	return s
}

func unscramble(s []byte, key Key) []byte {
	for i := len(key) - 1; i >= 0; i-- {
		s = deinterleave(s)
		if k := rotation(len(s), int(key[i])); k > 0 {
			s = rotateLeft(s, len(s)-k)
		}
		s = shift(s, key, -1)
	}

	return s
}

// shift moves the letter at position i by dir*key[i%4] places, wrapping A-Z.
func shift(s []byte, key Key, dir int) []byte {
	out := make([]byte, len(s))
	for i, c := range s {
		n := (int(c-'A') + dir*int(key[i%len(key)])) % alphabetSize
		if n < 0 {
			n += alphabetSize
		}
		out[i] = byte('A' + n)
	}

	return out
}

// rotation is the effective left rotation of an n-letter sequence by key
// digit k. Digits at or beyond the length leave the sequence as is.
func rotation(n, k int) int {
	if k <= 0 || k >= n {
		return 0
	}

	return k
}

func rotateLeft(s []byte, k int) []byte {
	k = rotation(len(s), k)
	out := make([]byte, 0, len(s))
	out = append(out, s[k:]...)

	return append(out, s[:k]...)
}

// interleave alternates the second half with the first half, second half
// leading. An odd trailing element stays last.
func interleave(s []byte) []byte {
	mid := len(s) / 2
	out := make([]byte, 0, len(s))
	for i := 0; i < mid; i++ {
		out = append(out, s[mid+i], s[i])
	}
	if len(s)%2 == 1 {
		out = append(out, s[len(s)-1])
	}

	return out
}

// deinterleave takes odd positions followed by even positions.
func deinterleave(s []byte) []byte {
	out := make([]byte, 0, len(s))
	for i := 1; i < len(s); i += 2 {
		out = append(out, s[i])
	}
	for i := 0; i < len(s); i += 2 {
		out = append(out, s[i])
	}

	return out
}

// transpose reads a row-major width×height grid column by column.
func transpose(grid []byte, width, height int) []byte {
	out := make([]byte, 0, len(grid))
	for c := 0; c < width; c++ {
		for r := 0; r < height; r++ {
			out = append(out, grid[r*width+c])
		}
	}

	return out
}

func stripBlack(s []byte, black byte) []byte {
	out := make([]byte, 0, len(s))
	for _, c := range s {
		if c != black {
			out = append(out, c)
		}
	}

	return out
}

func restoreBlack(template, body []byte, black byte) []byte {
	out := make([]byte, len(template))
	j := 0
	for i, c := range template {
		if c == black {
			out[i] = black
			continue
		}
		out[i] = body[j]
		j++
	}

	return out
}
