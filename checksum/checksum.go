// Package checksum implements the 16-bit rolling checksum used throughout the
// Across Lite format, and the masked 64-bit "magic" checksum built from it.
//
// The rolling checksum is not a CRC. For each byte the accumulator is rotated
// right by one bit, then the byte is added modulo 65536:
//
//	sum = (sum >> 1) | (sum << 15)
//	sum += uint16(b)
//
// Byte order and seed chaining both matter: the result of one call is the seed
// of the next when a checksum spans several fields.
package checksum

// MaskString is XORed into the component checksums of the magic checksum.
const MaskString = "ICHEATED"

// Sum folds data into the rolling checksum starting from seed.
func Sum(data []byte, seed uint16) uint16 {
	sum := seed
	for _, b := range data {
		sum = (sum >> 1) | (sum << 15)
		sum += uint16(b)
	}

	return sum
}

// SumString is Sum over the bytes of s.
func SumString(s string, seed uint16) uint16 {
	sum := seed
	for i := 0; i < len(s); i++ {
		sum = (sum >> 1) | (sum << 15)
		sum += uint16(s[i])
	}

	return sum
}

// Hasher accumulates a chained rolling checksum across several writes.
//
// The zero value is a checksum seeded at 0.
type Hasher struct {
	sum uint16
}

// NewHasher returns a Hasher seeded with seed.
func NewHasher(seed uint16) *Hasher {
	return &Hasher{sum: seed}
}

// Write folds p into the checksum. It never fails.
func (h *Hasher) Write(p []byte) (int, error) {
	h.sum = Sum(p, h.sum)
	return len(p), nil
}

// WriteString folds s into the checksum.
func (h *Hasher) WriteString(s string) (int, error) {
	h.sum = SumString(s, h.sum)
	return len(s), nil
}

// WriteByte folds a single byte into the checksum.
func (h *Hasher) WriteByte(b byte) error {
	h.sum = (h.sum >> 1) | (h.sum << 15)
	h.sum += uint16(b)

	return nil
}

// Sum16 returns the current checksum.
func (h *Hasher) Sum16() uint16 {
	return h.sum
}

// Reset reseeds the checksum.
func (h *Hasher) Reset(seed uint16) {
	h.sum = seed
}

// Magic combines the header, solution, fill and text checksums, in that order,
// into the masked 64-bit value stored in the file header.
//
// Byte i of the little-endian result is the low byte of parts[i] XOR
// MaskString[i]; byte i+4 is the high byte of parts[i] XOR MaskString[i+4].
func Magic(parts [4]uint16) uint64 {
	var magic uint64
	for i := len(parts) - 1; i >= 0; i-- {
		low := uint64(MaskString[i] ^ byte(parts[i]))
		high := uint64(MaskString[i+4] ^ byte(parts[i]>>8))
		magic |= low << (8 * i)
		magic |= high << (32 + 8*i)
	}

	return magic
}
