package extension

import (
	"bytes"
	"iter"

	"github.com/elliotchance/orderedmap/v3"
)

// Set is an ordered association from record code to payload. Replacing the
// payload of an existing code keeps its position; new codes are appended.
//
// The zero value is not usable; create sets with NewSet.
type Set struct {
	m *orderedmap.OrderedMap[Code, []byte]
}

func NewSet() *Set {
	return &Set{m: orderedmap.NewOrderedMap[Code, []byte]()}
}

// Get returns the payload stored for code. The slice must not be modified.
func (s *Set) Get(code Code) ([]byte, bool) {
	return s.m.Get(code)
}

// Set stores a copy of payload under code.
func (s *Set) Set(code Code, payload []byte) {
	s.m.Set(code, bytes.Clone(payload))
}

// Delete removes code, reporting whether it was present.
func (s *Set) Delete(code Code) bool {
	return s.m.Delete(code)
}

func (s *Set) Has(code Code) bool {
	return s.m.Has(code)
}

func (s *Set) Len() int {
	return s.m.Len()
}

// Codes returns the codes in serialization order.
func (s *Set) Codes() []Code {
	codes := make([]Code, 0, s.m.Len())
	for c := range s.m.Keys() {
		codes = append(codes, c)
	}

	return codes
}

// All iterates the records in serialization order.
func (s *Set) All() iter.Seq2[Code, []byte] {
	return s.m.AllFromFront()
}

// Clone returns a deep copy.
func (s *Set) Clone() *Set {
	out := NewSet()
	for c, p := range s.m.AllFromFront() {
		out.Set(c, p)
	}

	return out
}

// Equal reports whether both sets hold the same records in the same order.
func (s *Set) Equal(other *Set) bool {
	if s.Len() != other.Len() {
		return false
	}

	next, stop := iter.Pull2(other.All())
	defer stop()

	for c, p := range s.All() {
		oc, op, ok := next()
		if !ok || oc != c || !bytes.Equal(op, p) {
			return false
		}
	}

	return true
}
