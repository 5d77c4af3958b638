// Package hash computes stable content identities with xxHash64.
package hash

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
)

// Fingerprint hashes a sequence of fields. Each field is prefixed with its
// length so that field boundaries affect the result.
type Fingerprint struct {
	d *xxhash.Digest
}

func NewFingerprint() *Fingerprint {
	return &Fingerprint{d: xxhash.New()}
}

func (f *Fingerprint) AddBytes(b []byte) {
	f.addLen(len(b))
	_, _ = f.d.Write(b)
}

func (f *Fingerprint) AddString(s string) {
	f.addLen(len(s))
	_, _ = f.d.WriteString(s)
}

func (f *Fingerprint) AddInt(n int) {
	f.addLen(n)
}

func (f *Fingerprint) Sum64() uint64 {
	return f.d.Sum64()
}

func (f *Fingerprint) addLen(n int) {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], uint64(n)) //nolint:gosec
	_, _ = f.d.Write(b[:])
}

// ID computes the xxHash64 of a single string.
func ID(data string) uint64 {
	return xxhash.Sum64String(data)
}
